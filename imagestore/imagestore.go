// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package imagestore

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/stylemehq/styleme-server/auth"
)

var (
	ErrInvalidFilename = errors.New("invalid image filename")
	ErrInvalidImage    = errors.New("invalid image data")
)

// Store writes uploaded images into a single content directory under
// generated filenames.
type Store struct {
	dir string
}

// New creates the content directory if needed and returns a Store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the content directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes data under a freshly generated filename and returns
// that name.
func (s *Store) Save(data []byte) (string, error) {
	name := auth.GenerateImageName()
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return name, nil
}

// Delete removes a stored image. A file that is already gone is not
// an error.
func (s *Store) Delete(name string) error {
	if !validName(name) {
		return ErrInvalidFilename
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// Open opens a stored image for reading. The caller closes the file.
func (s *Store) Open(name string) (*os.File, error) {
	if !validName(name) {
		return nil, ErrInvalidFilename
	}
	return os.Open(filepath.Join(s.dir, name))
}

// validName rejects anything that could escape the content directory.
// Stored names are always generated by auth.GenerateImageName, so a
// rejection here means a forged request path.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, "/\\") && filepath.Base(name) == name
}

// DecodeDataURL strips an optional "data:image/...;base64," prefix and
// decodes the remaining base64 payload.
func DecodeDataURL(data string) ([]byte, error) {
	if strings.HasPrefix(data, "data:") {
		idx := strings.Index(data, "base64,")
		if idx < 0 {
			return nil, ErrInvalidImage
		}
		data = data[idx+len("base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, ErrInvalidImage
	}
	return raw, nil
}
