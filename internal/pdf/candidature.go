// Package pdf renders the printable application sheet admins download.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"recrutement/internal/models"
)

// Candidature renders an A4 summary sheet for one application.
func Candidature(app *models.Application) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(18, 18, 18)
	doc.AddPage()
	// Core fonts are cp1252; the translator keeps the French accents.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, tr("CADECO — FICHE DE CANDIDATURE"), "", 1, "C", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "", 12)
	line(doc, tr, "Numéro de suivi : %s", orDash(app.TrackingCode))
	line(doc, tr, "Statut : %s", orDash(app.Status))
	line(doc, tr, "Créé le : %s", app.CreatedAt.Format("02/01/2006 15:04"))
	doc.Ln(6)

	section(doc, tr, "Identité")
	line(doc, tr, "Nom complet : %s", orDash(app.FullName))
	line(doc, tr, "Téléphone : %s", orDash(app.Phone))
	line(doc, tr, "Email : %s", orDash(app.Email))
	line(doc, tr, "Ville : %s", orDash(app.City))
	line(doc, tr, "Années d'expérience : %d", app.YearsExp)
	doc.Ln(6)

	section(doc, tr, "Poste visé")
	title := "-"
	if app.JobTitle != nil && *app.JobTitle != "" {
		title = *app.JobTitle
	} else if app.JobID != nil {
		title = fmt.Sprintf("%d", *app.JobID)
	}
	line(doc, tr, "%s", title)
	doc.Ln(6)

	section(doc, tr, "Fichiers")
	line(doc, tr, "CV : %s", orDash(app.CVPath))
	line(doc, tr, "Pièce d'identité : %s", orDash(app.IDPath))

	doc.Ln(12)
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(128, 128, 128)
	footer := fmt.Sprintf("Document généré automatiquement le %s — CADECO Recrutement.",
		time.Now().Format("02/01/2006"))
	doc.CellFormat(0, 6, tr(footer), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func section(doc *fpdf.Fpdf, tr func(string) string, title string) {
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 8, tr(title), "B", 1, "L", false, 0, "")
	doc.Ln(2)
	doc.SetFont("Helvetica", "", 12)
}

func line(doc *fpdf.Fpdf, tr func(string) string, format string, args ...any) {
	doc.CellFormat(0, 7, tr(fmt.Sprintf(format, args...)), "", 1, "L", false, 0, "")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
