package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func newTestDir(t *testing.T) *Dir {
	t.Helper()
	d, err := NewDir(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("NewDir failed: %v", err)
	}
	return d
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain file name", input: "photo.png", want: "photo.png"},
		{name: "unix traversal", input: "../../etc/passwd", want: "passwd"},
		{name: "windows traversal", input: `..\..\evil.exe`, want: "evil.exe"},
		{name: "nested path", input: "a/b/c.png", want: "c.png"},
		{name: "leading slash", input: "/photo.png", want: "photo.png"},
		{name: "empty", input: "", wantErr: true},
		{name: "dot", input: ".", wantErr: true},
		{name: "dot dot", input: "..", wantErr: true},
		{name: "slash only", input: "/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SafeName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidName) {
					t.Fatalf("expected ErrInvalidName, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSaveOpenRoundTrip(t *testing.T) {
	d := newTestDir(t)
	content := []byte("\x89PNG fake image bytes")

	if err := d.Save("photo.png", bytes.NewReader(content)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, contentType, err := d.Open("photo.png")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("expected %q, got %q", content, data)
	}
	if contentType != "image/png" {
		t.Errorf("expected content type image/png, got %q", contentType)
	}
}

func TestOpenUnknownExtensionFallsBack(t *testing.T) {
	d := newTestDir(t)
	content := []byte{0x00, 0x01, 0x02, 0x03}

	if err := d.Save("blob.xyz123", bytes.NewReader(content)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	_, contentType, err := d.Open("blob.xyz123")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if contentType != "application/octet-stream" {
		t.Errorf("expected application/octet-stream, got %q", contentType)
	}
}

func TestSaveOverwrites(t *testing.T) {
	d := newTestDir(t)

	if err := d.Save("photo.png", strings.NewReader("first")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := d.Save("photo.png", strings.NewReader("second")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, _, err := d.Open("photo.png")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("expected overwritten content, got %q", data)
	}
}

func TestSaveRejectsUnsanitizedNames(t *testing.T) {
	d := newTestDir(t)

	for _, name := range []string{"../escape.png", "sub/child.png", "..", ""} {
		if err := d.Save(name, strings.NewReader("x")); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Save(%q): expected ErrInvalidName, got %v", name, err)
		}
	}

	// Nothing may have been written outside the root.
	if _, err := os.Stat(filepath.Join(d.Root(), "..", "escape.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("file escaped the storage root: %v", err)
	}
}

func TestOpenRejectsUnsanitizedNames(t *testing.T) {
	d := newTestDir(t)

	for _, name := range []string{"..", "../x", "a/b.png"} {
		if _, _, err := d.Open(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Open(%q): expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestOpenMissingFile(t *testing.T) {
	d := newTestDir(t)

	if _, _, err := d.Open("nope.png"); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	d := newTestDir(t)

	names, err := d.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected empty list, got %v", names)
	}

	for _, name := range []string{"a.png", "b.jpg"} {
		if err := d.Save(name, strings.NewReader("x")); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	names, err = d.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 2 || !slices.Contains(names, "a.png") || !slices.Contains(names, "b.jpg") {
		t.Errorf("expected [a.png b.jpg], got %v", names)
	}
}
