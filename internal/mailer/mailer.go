// Package mailer sends applicant notifications. Delivery is always
// best-effort: the submission or status change has already been committed
// by the time a mail goes out, and a mail failure must never undo it.
package mailer

import (
	"context"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"recrutement/internal/config"
)

type Mailer struct {
	cfg *config.Config
	lg  *zap.SugaredLogger
}

func New(cfg *config.Config, lg *zap.SugaredLogger) *Mailer {
	return &Mailer{cfg: cfg, lg: lg}
}

// SendConfirmation acknowledges a new submission.
func (m *Mailer) SendConfirmation(ctx context.Context, to, fullName, trackingCode string) {
	html, err := renderConfirmation(fullName, trackingCode)
	if err != nil {
		m.lg.Errorw("mail template failed", "template", "confirmation", "error", err)
		return
	}
	m.send(ctx, to, "CADECO — Confirmation de candidature", html)
}

// SendStatusChange notifies the candidate that their file moved.
func (m *Mailer) SendStatusChange(ctx context.Context, to, fullName, trackingCode, status string) {
	html, err := renderStatusChange(fullName, trackingCode, status)
	if err != nil {
		m.lg.Errorw("mail template failed", "template", "status_change", "error", err)
		return
	}
	m.send(ctx, to, "CADECO — Mise à jour de votre candidature", html)
}

func (m *Mailer) send(ctx context.Context, to, subject, html string) {
	if !m.cfg.MailEnabled() {
		m.lg.Debugw("mail disabled, skipping", "to", to, "subject", subject)
		return
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.MailFrom); err != nil {
		m.lg.Errorw("mail from invalid", "from", m.cfg.MailFrom, "error", err)
		return
	}
	if err := msg.To(to); err != nil {
		m.lg.Errorw("mail recipient invalid", "to", to, "error", err)
		return
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	client, err := mail.NewClient(m.cfg.SMTPHost,
		mail.WithPort(m.cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.SMTPUser),
		mail.WithPassword(m.cfg.SMTPPass),
		mail.WithTimeout(m.cfg.MailTimeout),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		m.lg.Errorw("mail client init failed", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, m.cfg.MailTimeout)
	defer cancel()
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		m.lg.Errorw("mail send failed", "to", to, "subject", subject, "error", err)
		return
	}
	m.lg.Infow("mail sent", "to", to, "subject", subject)
}
