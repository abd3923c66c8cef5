package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromFile_Txt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("Plain text content."), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := FromFile(path); got != "Plain text content." {
		t.Errorf("Expected file content, got %q", got)
	}
}

func TestFromFile_ExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "NOTES.TXT")
	if err := os.WriteFile(path, []byte("upper"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := FromFile(path); got != "upper" {
		t.Errorf("Expected file content, got %q", got)
	}
}

func TestFromFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte("a,b,c"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := FromFile(path); got != "" {
		t.Errorf("Expected empty text for unsupported extension, got %q", got)
	}
}

func TestFromFile_MissingFile(t *testing.T) {
	if got := FromFile("/nonexistent/file.txt"); got != "" {
		t.Errorf("Expected empty text for a missing file, got %q", got)
	}
}

func TestFromFile_CorruptPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	if err := os.WriteFile(path, []byte("not a real pdf"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := FromFile(path); got != "" {
		t.Errorf("Expected empty text for a corrupt PDF, got %q", got)
	}
}

func TestListDocuments(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	paths := ListDocuments(dir)
	if len(paths) != 2 {
		t.Fatalf("Expected 2 documents, got %d: %v", len(paths), paths)
	}
	for _, p := range paths {
		if filepath.Dir(p) != dir {
			t.Errorf("Expected paths inside %s, got %s", dir, p)
		}
	}
}

func TestListDocuments_MissingDir(t *testing.T) {
	if paths := ListDocuments("/nonexistent/docs"); paths != nil {
		t.Errorf("Expected nil for a missing directory, got %v", paths)
	}
}
