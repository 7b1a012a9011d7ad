package memory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotMarkdown is returned when a proposed filename lacks the .md
// extension.
var ErrNotMarkdown = errors.New("not a markdown file")

// DirName is the memory folder name inside the working directory.
const DirName = "memory-bank"

// CanonicalNames are the six core memory file base names (no extension),
// in their dependency order: brief shapes the three context files, which
// feed active-context, which feeds progress.
var CanonicalNames = []string{
	"brief",
	"product-context",
	"system-patterns",
	"tech-context",
	"active-context",
	"progress",
}

// IsCanonical reports whether name is one of the six core base names.
func IsCanonical(name string) bool {
	for _, n := range CanonicalNames {
		if n == name {
			return true
		}
	}
	return false
}

// Store persists flat markdown files in the memory folder. Files are
// created once and then only replaced by explicit updates, never deleted.
type Store struct {
	dir string
}

// NewStore returns a store rooted at <projectRoot>/memory-bank.
func NewStore(projectRoot string) *Store {
	return &Store{dir: filepath.Join(projectRoot, DirName)}
}

// Dir returns the memory folder path.
func (s *Store) Dir() string { return s.dir }

// Exists reports whether the memory folder is present.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

// Ensure creates the memory folder if absent. It reports whether the
// folder was newly created.
func (s *Store) Ensure() (bool, error) {
	if s.Exists() {
		return false, nil
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return false, fmt.Errorf("creating %s: %w", s.dir, err)
	}
	return true, nil
}

// path resolves a base name (no extension) to its markdown file path.
func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".md")
}

// HasFile reports whether the named memory file exists.
func (s *Store) HasFile(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// Read returns the content of the named memory file.
func (s *Store) Read(name string) (string, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write replaces the named memory file's content.
func (s *Store) Write(name, content string) error {
	return os.WriteFile(s.path(name), []byte(content), 0644)
}

// WriteNew writes a proposed file into the folder. The filename must carry
// a markdown extension; any directory component is stripped for safety.
// An existing file is left untouched. It reports whether the file was
// written, with the sanitized filename.
func (s *Store) WriteNew(filename, content string) (bool, string, error) {
	filename = strings.TrimSpace(filename)
	if !strings.HasSuffix(filename, ".md") {
		return false, filename, fmt.Errorf("%q: %w", filename, ErrNotMarkdown)
	}

	clean := filepath.Base(filename)
	target := filepath.Join(s.dir, clean)

	if _, err := os.Stat(target); err == nil {
		return false, clean, nil
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return false, clean, fmt.Errorf("writing %s: %w", clean, err)
	}
	return true, clean, nil
}

// ReadAll concatenates every markdown file in the folder, each prefixed
// with a heading carrying its filename, in lexical order.
func (s *Store) ReadAll() (string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var parts []string
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("# %s\n%s", name, string(data)))
	}
	return strings.Join(parts, "\n\n"), nil
}
