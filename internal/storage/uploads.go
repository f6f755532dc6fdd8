// Package storage persists uploaded property attachments on the local
// filesystem under generated unique names.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type UploadStore struct {
	dir        string
	extensions map[string]bool
}

func NewUploadStore(dir string, allowedExtensions []string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	extensions := make(map[string]bool, len(allowedExtensions))
	for _, extension := range allowedExtensions {
		extensions[strings.ToLower(strings.TrimSpace(extension))] = true
	}
	return &UploadStore{dir: dir, extensions: extensions}, nil
}

// Allowed reports whether the filename carries an accepted extension.
func (store *UploadStore) Allowed(filename string) bool {
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if extension == "" {
		return false
	}
	return store.extensions[extension]
}

// Save writes the content under a unique name derived from the original
// filename and returns the stored name.
func (store *UploadStore) Save(filename string, content io.Reader) (string, error) {
	if !store.Allowed(filename) {
		return "", fmt.Errorf("file type not allowed: %s", filename)
	}

	storedName := uuid.NewString() + "_" + sanitizeFilename(filename)
	target, err := os.Create(filepath.Join(store.dir, storedName))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer target.Close()

	if _, err := io.Copy(target, content); err != nil {
		_ = os.Remove(target.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return storedName, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (store *UploadStore) Remove(storedName string) error {
	if strings.TrimSpace(storedName) == "" {
		return nil
	}
	err := os.Remove(filepath.Join(store.dir, filepath.Base(storedName)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

func (store *UploadStore) Dir() string {
	return store.dir
}

// sanitizeFilename strips path components and collapses anything outside a
// conservative character set, so stored names stay portable.
func sanitizeFilename(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	cleaned := unsafeFilenameChars.ReplaceAllString(base, "_")
	cleaned = strings.Trim(cleaned, "._")
	if cleaned == "" {
		return "file"
	}
	return cleaned
}
