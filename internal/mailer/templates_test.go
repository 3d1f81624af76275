package mailer

import (
	"strings"
	"testing"
)

func TestRenderConfirmation(t *testing.T) {
	html, err := renderConfirmation("Jane Doe", "CD-2025-ABCDEF")
	if err != nil {
		t.Fatalf("renderConfirmation: %v", err)
	}
	for _, want := range []string{"Jane Doe", "CD-2025-ABCDEF", "Confirmation de candidature", "CADECO"} {
		if !strings.Contains(html, want) {
			t.Fatalf("confirmation mail missing %q", want)
		}
	}
}

func TestRenderStatusChange(t *testing.T) {
	html, err := renderStatusChange("Jane Doe", "CD-2025-ABCDEF", "INTERVIEW")
	if err != nil {
		t.Fatalf("renderStatusChange: %v", err)
	}
	for _, want := range []string{"Jane Doe", "CD-2025-ABCDEF", "INTERVIEW", "Mise à jour de votre candidature"} {
		if !strings.Contains(html, want) {
			t.Fatalf("status mail missing %q", want)
		}
	}
}

func TestTemplatesEscapeCandidateInput(t *testing.T) {
	html, err := renderConfirmation(`<script>alert("x")</script>`, "CD-2025-ABCDEF")
	if err != nil {
		t.Fatalf("renderConfirmation: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatal("candidate-supplied name must be escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatal("expected escaped markup in the body")
	}
}
