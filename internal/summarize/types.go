package summarize

import (
	"fmt"
	"sort"
	"strings"
)

// CodeFile is one candidate source file read from disk. It lives only for
// the duration of a summarization run.
type CodeFile struct {
	Path     string // relative to the scanned root
	Content  string
	Language string
}

// Analysis is the outcome of a summarization run: a three-level hierarchy
// of natural-language descriptions. Coverage can be partial; files or
// directories whose generation calls failed are simply absent.
type Analysis struct {
	FileSummaries  map[string]string // file path -> summary
	DirSummaries   map[string]string // directory path -> summary
	ProjectSummary string
	Patterns       string
	Technologies   []string // single-shot path only

	// TruncatedFiles counts candidates dropped by the recency cap, so
	// callers are not misled about completeness.
	TruncatedFiles int
}

func newAnalysis() *Analysis {
	return &Analysis{
		FileSummaries: make(map[string]string),
		DirSummaries:  make(map[string]string),
	}
}

// Describe renders the analysis as prompt-ready text.
func (a *Analysis) Describe() string {
	var sb strings.Builder

	if a.ProjectSummary != "" {
		fmt.Fprintf(&sb, "Project summary:\n%s\n\n", a.ProjectSummary)
	}
	if len(a.DirSummaries) > 0 {
		sb.WriteString("Directory summaries:\n")
		for _, dir := range sortedMapKeys(a.DirSummaries) {
			fmt.Fprintf(&sb, "## %s\n%s\n\n", dir, a.DirSummaries[dir])
		}
	}
	if len(a.FileSummaries) > 0 {
		sb.WriteString("File summaries:\n")
		for _, path := range sortedMapKeys(a.FileSummaries) {
			fmt.Fprintf(&sb, "## %s\n%s\n\n", path, a.FileSummaries[path])
		}
	}
	if a.Patterns != "" {
		fmt.Fprintf(&sb, "Patterns and conventions:\n%s\n\n", a.Patterns)
	}
	if len(a.Technologies) > 0 {
		fmt.Fprintf(&sb, "Technologies: %s\n", strings.Join(a.Technologies, ", "))
	}
	if a.TruncatedFiles > 0 {
		fmt.Fprintf(&sb, "\nNote: %d older files were not analyzed (file cap).\n", a.TruncatedFiles)
	}
	return sb.String()
}

func sortedMapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
