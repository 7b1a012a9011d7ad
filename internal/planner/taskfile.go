package planner

import (
	"regexp"
	"strings"
)

// TaskAnalysis holds what a regex scan recovered from a task description:
// fenced code blocks, filename-like tokens, backtick-quoted commands, and
// lines mentioning dependency-related keywords.
type TaskAnalysis struct {
	CodeSnippets          []string
	FileReferences        []string
	CommandReferences     []string
	PotentialDependencies []string
}

var (
	codeFenceRe = regexp.MustCompile("(?s)```(?:\\w+)?\\n(.*?)\\n```")
	fileRefRe   = regexp.MustCompile(`(?m)(?:^|\s)([a-zA-Z0-9_\-./]+\.[a-zA-Z0-9]+)`)
	backtickRe  = regexp.MustCompile("`([^`\n]+)`")
)

var dependencyKeywords = []string{
	"require", "import", "install", "package", "dependency", "module", "library",
}

// placeholderMarkers are tokens that signal an unfinished task description.
var placeholderMarkers = []string{"TBD", "TODO", "???", "TBC"}

// AnalyzeTaskText scans a task description for code blocks, file
// references, commands, and dependency mentions. Purely lexical.
func AnalyzeTaskText(text string) *TaskAnalysis {
	analysis := &TaskAnalysis{}

	for _, m := range codeFenceRe.FindAllStringSubmatch(text, -1) {
		analysis.CodeSnippets = append(analysis.CodeSnippets, m[1])
	}

	for _, m := range fileRefRe.FindAllStringSubmatch(text, -1) {
		ref := m[1]
		if !strings.HasSuffix(ref, ".") {
			analysis.FileReferences = append(analysis.FileReferences, ref)
		}
	}

	for _, m := range backtickRe.FindAllStringSubmatch(text, -1) {
		cmd := m[1]
		if strings.Contains(cmd, " ") && !strings.HasPrefix(cmd, "http") {
			analysis.CommandReferences = append(analysis.CommandReferences, cmd)
		}
	}

	lower := strings.ToLower(text)
	for _, keyword := range dependencyKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}
		for _, line := range strings.Split(lower, "\n") {
			if strings.Contains(line, keyword) {
				analysis.PotentialDependencies = append(analysis.PotentialDependencies, strings.TrimSpace(line))
			}
		}
	}

	return analysis
}

// PlaceholderMarkers returns which placeholder tokens appear in the text.
func PlaceholderMarkers(text string) []string {
	var found []string
	for _, marker := range placeholderMarkers {
		if strings.Contains(text, marker) {
			found = append(found, marker)
		}
	}
	return found
}
