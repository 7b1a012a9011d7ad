package summarize

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// codeExtensions is the allow-list of source extensions considered for
// analysis, mapped to their display language.
var codeExtensions = map[string]string{
	".py":    "Python",
	".js":    "JavaScript",
	".jsx":   "React",
	".ts":    "TypeScript",
	".tsx":   "React TypeScript",
	".java":  "Java",
	".c":     "C",
	".cpp":   "C++",
	".h":     "C/C++ Header",
	".cs":    "C#",
	".rb":    "Ruby",
	".go":    "Go",
	".php":   "PHP",
	".swift": "Swift",
	".kt":    "Kotlin",
	".rs":    "Rust",
	".html":  "HTML",
	".css":   "CSS",
	".scss":  "SCSS",
	".json":  "JSON",
	".yml":   "YAML",
	".yaml":  "YAML",
	".md":    "Markdown",
	".xml":   "XML",
	".sql":   "SQL",
	".sh":    "Shell",
	".bat":   "Batch",
	".ps1":   "PowerShell",
}

// skippedDirs are never descended into while discovering candidates.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"memory-bank":  true,
	"__pycache__":  true,
	"venv":         true,
	".venv":        true,
	"vendor":       true,
}

type candidate struct {
	path    string // relative to root
	modTime time.Time
}

// discover enumerates candidate source files under the root, keeps the
// MaxFiles most recently modified, and reads their contents. It returns
// the files plus the number of older candidates dropped by the cap.
// Unreadable files are silently skipped.
func (s *Summarizer) discover() ([]CodeFile, int, error) {
	var candidates []candidate

	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path != s.Root && (strings.HasPrefix(name, ".") || skippedDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if _, ok := codeExtensions[strings.ToLower(filepath.Ext(name))]; !ok {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}
		rel, relErr := filepath.Rel(s.Root, path)
		if relErr != nil {
			rel = path
		}
		candidates = append(candidates, candidate{path: rel, modTime: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	// Most recently modified first; oldest beyond the cap are dropped.
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime.After(candidates[j].modTime)
	})

	truncated := 0
	if len(candidates) > s.MaxFiles {
		truncated = len(candidates) - s.MaxFiles
		candidates = candidates[:s.MaxFiles]
	}

	files := make([]CodeFile, 0, len(candidates))
	for _, c := range candidates {
		data, readErr := os.ReadFile(filepath.Join(s.Root, c.path))
		if readErr != nil {
			continue
		}
		files = append(files, CodeFile{
			Path:     c.path,
			Content:  string(data),
			Language: languageFor(c.path),
		})
	}
	return files, truncated, nil
}

// languageFor returns the display language for a file path, or "Unknown".
func languageFor(path string) string {
	if lang, ok := codeExtensions[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return "Unknown"
}
