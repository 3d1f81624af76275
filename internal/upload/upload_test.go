package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildUpload assembles a real multipart request so Save sees the same
// *multipart.FileHeader the handler would.
func buildUpload(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest("POST", "/api/apply", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}
	return req.MultipartForm.File[field][0]
}

func TestSaveWritesFileAndReturnsRelativePath(t *testing.T) {
	dir := t.TempDir()
	saver, err := NewSaver(dir)
	if err != nil {
		t.Fatalf("NewSaver: %v", err)
	}

	fh := buildUpload(t, "cv", "mon cv.PDF", []byte("%PDF-1.4 fake"))
	rel, err := saver.Save(fh, "cv", []string{".pdf"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.IsAbs(rel) || strings.Contains(rel, string(filepath.Separator)) {
		t.Fatalf("expected a bare relative filename, got %q", rel)
	}
	if !strings.HasPrefix(rel, "cv-") || !strings.HasSuffix(rel, ".pdf") {
		t.Fatalf("unexpected stored name %q", rel)
	}
	data, err := os.ReadFile(filepath.Join(dir, rel))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "%PDF-1.4 fake" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestSaveRejectsUnsupportedExtension(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	if err != nil {
		t.Fatalf("NewSaver: %v", err)
	}
	fh := buildUpload(t, "cv", "cv.exe", []byte("MZ"))
	if _, err := saver.Save(fh, "cv", []string{".pdf"}); !errors.Is(err, ErrUnsupportedExt) {
		t.Fatalf("expected ErrUnsupportedExt, got %v", err)
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	if err != nil {
		t.Fatalf("NewSaver: %v", err)
	}
	fh := buildUpload(t, "cv", "cv.pdf", []byte("x"))
	fh.Size = MaxFileSize + 1
	if _, err := saver.Save(fh, "cv", []string{".pdf"}); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestDistinctNamesForSameOriginalFilename(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	if err != nil {
		t.Fatalf("NewSaver: %v", err)
	}
	a, err := saver.Save(buildUpload(t, "cv", "cv.pdf", []byte("a")), "cv", []string{".pdf"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := saver.Save(buildUpload(t, "cv", "cv.pdf", []byte("b")), "cv", []string{".pdf"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if a == b {
		t.Fatalf("two uploads stored under the same name %q", a)
	}
}
