// Package storage implements the file storage area for product images: a
// single flat directory holding uploaded files under sanitized names.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrFileNotFound is returned when a requested file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidName is returned when a file name is empty or would resolve
// outside the storage root.
var ErrInvalidName = errors.New("invalid file name")

// Dir stores files directly under a single root directory.
type Dir struct {
	root string
}

// NewDir opens a storage area rooted at dir, creating it if necessary.
func NewDir(dir string) (*Dir, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &Dir{root: abs}, nil
}

// Root returns the absolute path of the storage root directory.
func (d *Dir) Root() string {
	return d.root
}

// SafeName reduces name to its final path element, stripping any directory
// components. Names that reduce to nothing are rejected.
func SafeName(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	if name == "" || name == "." || name == ".." || name == "/" {
		return "", ErrInvalidName
	}
	return name, nil
}

func (d *Dir) resolve(name string) (string, error) {
	safe, err := SafeName(name)
	if err != nil || safe != name {
		return "", ErrInvalidName
	}
	return filepath.Join(d.root, safe), nil
}

// Save writes the contents of r to name under the root, overwriting any
// existing file with that name.
func (d *Dir) Save(name string, r io.Reader) error {
	target, err := d.resolve(name)
	if err != nil {
		return err
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	return f.Close()
}

// Open reads the file stored under name and returns its contents together
// with a best-effort content type.
func (d *Dir) Open(name string) ([]byte, string, error) {
	target, err := d.resolve(name)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(target)
	if errors.Is(err, os.ErrNotExist) {
		return nil, "", ErrFileNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		// DetectContentType falls back to application/octet-stream itself.
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

// List returns the names of all files directly under the root.
func (d *Dir) List() ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list storage root: %w", err)
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
