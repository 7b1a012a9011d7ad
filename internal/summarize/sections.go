package summarize

import (
	"path/filepath"
	"strings"
)

// batchHeading is the per-file delimiter batch responses are asked to emit.
const batchHeading = "## FILE:"

// summaryWindow bounds the text window taken after a located file name
// when recovering summaries from free-form prose.
const (
	summaryWindow = 500
	windowLead    = 10
)

// parseSections splits a loosely structured response on heading lines
// ("# ..." or "## ...") and accumulates the following non-heading lines
// under the most recent heading.
func parseSections(text string) map[string]string {
	sections := make(map[string]string)
	var current string
	var body []string

	flush := func() {
		if current != "" && len(body) > 0 {
			sections[current] = strings.Join(body, "\n")
		}
		body = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "# ") || strings.HasPrefix(line, "## ") {
			flush()
			current = strings.TrimSpace(strings.TrimLeft(line, "#"))
			continue
		}
		if current != "" {
			body = append(body, line)
		}
	}
	flush()
	return sections
}

// findSection retrieves a labelled section, tolerating headings that carry
// extra decoration around the expected label.
func findSection(sections map[string]string, label string) (string, bool) {
	if body, ok := sections[label]; ok {
		return body, true
	}
	for heading, body := range sections {
		if strings.Contains(strings.ToUpper(heading), label) {
			return body, true
		}
	}
	return "", false
}

// extractFileSummaries recovers per-file summaries from prose by locating
// each file's base name and taking a bounded window after it, truncated at
// the next file name found inside the window. Best effort: a file whose
// name never appears verbatim receives no summary, and base names that are
// substrings of one another can misattribute text.
func extractFileSummaries(section string, files []CodeFile) map[string]string {
	summaries := make(map[string]string)

	for _, f := range files {
		base := filepath.Base(f.Path)
		idx := strings.Index(section, base)
		if idx < 0 {
			continue
		}

		start := idx - windowLead
		if start < 0 {
			start = 0
		}
		end := idx + summaryWindow
		if end > len(section) {
			end = len(section)
		}
		window := section[start:end]

		// Truncate at the first other file name appearing in the window.
		cut := len(window)
		for _, other := range files {
			otherBase := filepath.Base(other.Path)
			if otherBase == base {
				continue
			}
			if j := strings.Index(window, otherBase); j > 0 && j < cut {
				cut = j
			}
		}
		summaries[f.Path] = strings.TrimSpace(window[:cut])
	}
	return summaries
}

// extractDirSummaries recovers per-directory text windows the same way,
// keyed on the directory paths that had analyzed files.
func extractDirSummaries(section string, dirs []string) map[string]string {
	summaries := make(map[string]string)
	for _, dir := range dirs {
		idx := strings.Index(section, dir)
		if idx < 0 {
			continue
		}
		start := idx - windowLead
		if start < 0 {
			start = 0
		}
		end := idx + summaryWindow
		if end > len(section) {
			end = len(section)
		}
		summaries[dir] = strings.TrimSpace(section[start:end])
	}
	return summaries
}

// splitBatchSections attributes a batch response to its files by splitting
// on the per-file heading and matching each section's first line against
// the batch members' base names.
func splitBatchSections(response string, batch []CodeFile) map[string]string {
	summaries := make(map[string]string)

	for _, section := range strings.Split(response, batchHeading) {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}
		parts := strings.SplitN(section, "\n", 2)
		if len(parts) < 2 {
			continue
		}
		heading := strings.TrimSpace(parts[0])
		summary := strings.TrimSpace(parts[1])

		for _, f := range batch {
			if strings.Contains(heading, filepath.Base(f.Path)) {
				summaries[f.Path] = summary
				break
			}
		}
	}
	return summaries
}
