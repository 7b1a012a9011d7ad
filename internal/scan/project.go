package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ProjectInfo is the background context gathered from a project tree.
// It is read-only input for prompt assembly; nothing here mutates the tree.
type ProjectInfo struct {
	ProjectName string
	Directories []string       // top-level directory names
	Files       []string       // top-level file names
	FileTypes   map[string]int // extension -> occurrence count across the tree
	Languages   []string
	Frameworks  []string
	ReadmeText  string
}

// Gather walks the tree under root and collects the project context.
// Hidden directories, dependency-manager directories, and the memory folder
// are skipped. A README read failure is reported through warn and swallowed.
func Gather(root string, warn func(msg string)) (*ProjectInfo, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info := &ProjectInfo{
		ProjectName: filepath.Base(absRoot),
		FileTypes:   make(map[string]int),
	}

	langs := make(map[string]bool)
	fws := make(map[string]bool)

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries degrade coverage, never abort
		}
		name := d.Name()

		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			if strings.HasPrefix(name, ".") || excludedDirs[name] {
				return filepath.SkipDir
			}
			if filepath.Dir(path) == absRoot {
				info.Directories = append(info.Directories, name)
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}

		topLevel := filepath.Dir(path) == absRoot
		if topLevel {
			info.Files = append(info.Files, name)
		}

		if ext := filepath.Ext(name); ext != "" {
			info.FileTypes[ext]++
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			rel = path
		}
		for _, l := range matchLanguages(rel) {
			langs[l] = true
		}
		for _, f := range matchFrameworks(rel) {
			fws[f] = true
		}

		if topLevel && strings.EqualFold(name, "readme.md") {
			data, readErr := os.ReadFile(path)
			if readErr != nil {
				if warn != nil {
					warn(fmt.Sprintf("could not read README: %v", readErr))
				}
				return nil
			}
			info.ReadmeText = string(data)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", absRoot, err)
	}

	info.Languages = sortedKeys(langs)
	info.Frameworks = sortedKeys(fws)
	return info, nil
}

// Describe renders the gathered context as prompt-ready text.
func (p *ProjectInfo) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Project name: %s\n", p.ProjectName)
	fmt.Fprintf(&sb, "Top-level directories: %s\n", strings.Join(p.Directories, ", "))
	fmt.Fprintf(&sb, "Top-level files: %s\n", strings.Join(p.Files, ", "))

	exts := make([]string, 0, len(p.FileTypes))
	for ext := range p.FileTypes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	sb.WriteString("File types:\n")
	for _, ext := range exts {
		fmt.Fprintf(&sb, "  %s: %d\n", ext, p.FileTypes[ext])
	}

	fmt.Fprintf(&sb, "Detected languages: %s\n", strings.Join(p.Languages, ", "))
	fmt.Fprintf(&sb, "Detected frameworks: %s\n", strings.Join(p.Frameworks, ", "))
	if p.ReadmeText != "" {
		fmt.Fprintf(&sb, "\nREADME:\n%s\n", p.ReadmeText)
	}
	return sb.String()
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
