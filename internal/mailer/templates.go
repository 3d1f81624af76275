package mailer

import (
	"html/template"
	"strings"
	"time"
)

// The wrapper matches the look of the rest of the CADECO mails; variables
// go through html/template so candidate-supplied names cannot inject
// markup.
var baseTpl = template.Must(template.New("base").Parse(`
<div style="font-family:Arial,sans-serif;background:#0b1220;padding:20px">
  <div style="max-width:640px;margin:0 auto;background:#111a2e;border-radius:14px;padding:22px;border:1px solid rgba(255,255,255,.08)">
    <div style="color:#fff;font-size:18px;font-weight:700;margin-bottom:10px">{{.Title}}</div>
    <div style="color:#d7e0ff;font-size:14px;line-height:1.6">{{.Body}}</div>
    <div style="margin-top:18px;color:#9fb0e8;font-size:12px">
      © {{.Year}} CADECO — Recrutement
    </div>
  </div>
</div>`))

var confirmationTpl = template.Must(template.New("confirmation").Parse(
	`Bonjour <b>{{.FullName}}</b>,<br/><br/>
Votre candidature a bien été enregistrée.<br/>
Numéro de suivi : <b>{{.TrackingCode}}</b><br/><br/>
Vous pouvez suivre l’évolution de votre dossier via la page « Suivi ».<br/><br/>
Cordialement,<br/>
CADECO — Recrutement`))

var statusChangeTpl = template.Must(template.New("status_change").Parse(
	`Bonjour <b>{{.FullName}}</b>,<br/><br/>
Votre candidature (<b>{{.TrackingCode}}</b>) a été mise à jour.<br/>
Nouveau statut : <b>{{.Status}}</b><br/><br/>
Cordialement,<br/>
CADECO — Recrutement`))

func renderConfirmation(fullName, trackingCode string) (string, error) {
	body, err := render(confirmationTpl, map[string]any{
		"FullName":     fullName,
		"TrackingCode": trackingCode,
	})
	if err != nil {
		return "", err
	}
	return wrap("Confirmation de candidature", body)
}

func renderStatusChange(fullName, trackingCode, status string) (string, error) {
	body, err := render(statusChangeTpl, map[string]any{
		"FullName":     fullName,
		"TrackingCode": trackingCode,
		"Status":       status,
	})
	if err != nil {
		return "", err
	}
	return wrap("Mise à jour de votre candidature", body)
}

func wrap(title, body string) (string, error) {
	return render(baseTpl, map[string]any{
		"Title": title,
		"Body":  template.HTML(body),
		"Year":  time.Now().Year(),
	})
}

func render(tpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
