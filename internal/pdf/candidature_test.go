package pdf

import (
	"bytes"
	"testing"
	"time"

	"recrutement/internal/models"
)

func TestCandidatureRendersPDF(t *testing.T) {
	title := "Caissiers"
	jobID := int64(7)
	app := &models.Application{
		ID:           12,
		FullName:     "Jane Doe",
		Email:        "jane@x.com",
		Phone:        "0811111111",
		City:         "Kinshasa",
		YearsExp:     4,
		JobID:        &jobID,
		JobTitle:     &title,
		CVPath:       "cv-abc.pdf",
		Status:       models.StatusInterview,
		TrackingCode: "CD-2025-ABCDEF",
		CreatedAt:    time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	out, err := Candidature(app)
	if err != nil {
		t.Fatalf("Candidature: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty document")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", out[:min(8, len(out))])
	}
}

func TestCandidatureHandlesSparseRows(t *testing.T) {
	// Rows migrated from old deployments can miss nearly everything.
	out, err := Candidature(&models.Application{ID: 1, Status: models.StatusReceived})
	if err != nil {
		t.Fatalf("Candidature: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}
