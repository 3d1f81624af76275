// Package upload persists candidate attachments. Files land on disk
// before the database row referencing them is written, so a crash in
// between leaves an orphaned file, never a dangling path.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize bounds a single attachment.
const MaxFileSize = 10 << 20 // 10 MB

var (
	ErrTooLarge       = errors.New("upload: file too large")
	ErrUnsupportedExt = errors.New("upload: unsupported file type")
)

// Saver writes attachments under a base directory and hands back paths
// relative to it, so rows stay portable across deployments.
type Saver struct {
	dir string
}

func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Saver{dir: dir}, nil
}

// Dir returns the base directory, for static file serving.
func (s *Saver) Dir() string { return s.dir }

// Save stores one multipart file under a random name and returns its
// relative path. allowedExts is a lowercase extension allow-list
// (".pdf", ...).
func (s *Saver) Save(fh *multipart.FileHeader, field string, allowedExts []string) (string, error) {
	if fh.Size > MaxFileSize {
		return "", ErrTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	allowed := false
	for _, e := range allowedExts {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", ErrUnsupportedExt
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%s-%s%s", field, uuid.NewString(), ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, MaxFileSize+1)); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return name, nil
}
