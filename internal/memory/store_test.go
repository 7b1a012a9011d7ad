package memory

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureIsIdempotent(t *testing.T) {
	store := NewStore(t.TempDir())

	created, err := store.Ensure()
	if err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	if !created {
		t.Error("Expected first Ensure to create the folder")
	}

	created, err = store.Ensure()
	if err != nil {
		t.Fatalf("Second Ensure failed: %v", err)
	}
	if created {
		t.Error("Expected second Ensure to find the folder in place")
	}
}

func TestWriteNewNeverOverwrites(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, err := store.Ensure(); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	written, name, err := store.WriteNew("brief.md", "original")
	if err != nil || !written {
		t.Fatalf("First write failed: written=%v err=%v", written, err)
	}
	if name != "brief.md" {
		t.Errorf("Unexpected sanitized name: %s", name)
	}

	written, _, err = store.WriteNew("brief.md", "replacement")
	if err != nil {
		t.Fatalf("Second write errored: %v", err)
	}
	if written {
		t.Error("Expected existing file to be left untouched")
	}

	content, err := store.Read("brief")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if content != "original" {
		t.Errorf("Content was overwritten: %q", content)
	}
}

func TestWriteNewRejectsNonMarkdown(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, err := store.Ensure(); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	_, _, err := store.WriteNew("config.yaml", "data")
	if !errors.Is(err, ErrNotMarkdown) {
		t.Errorf("Expected ErrNotMarkdown, got %v", err)
	}
}

func TestWriteNewStripsDirectoryComponents(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)
	if _, err := store.Ensure(); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	written, name, err := store.WriteNew("../escape.md", "content")
	if err != nil || !written {
		t.Fatalf("Write failed: written=%v err=%v", written, err)
	}
	if name != "escape.md" {
		t.Errorf("Expected sanitized name escape.md, got %s", name)
	}
	if _, err := os.Stat(filepath.Join(root, DirName, "escape.md")); err != nil {
		t.Errorf("File not inside the memory folder: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "escape.md")); err == nil {
		t.Error("File escaped the memory folder")
	}
}

func TestReadAllConcatenatesInOrder(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, err := store.Ensure(); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	if err := store.Write("progress", "done: nothing"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := store.Write("brief", "a planning tool"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	all, err := store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	briefIdx := strings.Index(all, "# brief.md")
	progressIdx := strings.Index(all, "# progress.md")
	if briefIdx < 0 || progressIdx < 0 {
		t.Fatalf("Missing filename headings in: %q", all)
	}
	if briefIdx > progressIdx {
		t.Error("Expected lexical file order")
	}
	if !strings.Contains(all, "a planning tool") || !strings.Contains(all, "done: nothing") {
		t.Error("Missing file contents in concatenation")
	}
}

func TestIsCanonical(t *testing.T) {
	for _, name := range CanonicalNames {
		if !IsCanonical(name) {
			t.Errorf("Expected %s to be canonical", name)
		}
	}
	if IsCanonical("random-notes") {
		t.Error("Expected random-notes to be rejected")
	}
}
