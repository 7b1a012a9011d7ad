package summarize

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// System instructions for the different summarization calls.
const (
	systemCodebase   = "You are a software architect analyzing an entire codebase."
	systemChunk      = "You are a code analyst providing concise summaries of code files."
	systemFile       = "You are a code analyst providing integrated file summaries."
	systemBatch      = "You are a code analyst providing summaries of multiple code files."
	systemDirectory  = "You are a code architect providing module-level summaries."
	systemProject    = "You are a software architect creating high-level project overviews."
	systemPatterns   = "You are a code quality analyst identifying patterns and conventions in codebases."
	systemSingleFile = "You are a code analyst providing concise file summaries."
)

// Section labels the single-shot response is asked to produce.
const (
	sectionProject      = "PROJECT SUMMARY"
	sectionFiles        = "FILE SUMMARIES"
	sectionDirectories  = "DIRECTORY ORGANIZATION"
	sectionPatterns     = "PATTERNS AND CONVENTIONS"
	sectionTechnologies = "TECHNOLOGIES IDENTIFIED"
)

// fileBlock renders one file's content with its path and language tag.
func fileBlock(f CodeFile) string {
	return fmt.Sprintf("FILE: %s (%s)\n```%s\n%s\n```\n", f.Path, f.Language, strings.ToLower(f.Language), f.Content)
}

func singleShotPrompt(blocks []string) string {
	return fmt.Sprintf(`You are analyzing an entire codebase consisting of %d files.
Here are all the files:

%s

Analyze this codebase and provide:
1. An overview of the project architecture and organization
2. The purpose and functionality of each file
3. Key classes, functions, and components across the codebase
4. How components interact and data flows
5. Design patterns, coding conventions, and recurring practices
6. Technologies, frameworks, and libraries used

Organize your response in these sections:
- %s: Overall project description and architecture
- %s: Brief description of each file's purpose and key components
- %s: How files are organized into functional units
- %s: Recurring coding patterns and conventions
- %s: Languages, libraries, and frameworks used

Be comprehensive yet concise in your analysis.`,
		len(blocks), strings.Join(blocks, " "),
		sectionProject, sectionFiles, sectionDirectories, sectionPatterns, sectionTechnologies)
}

func chunkPrompt(f CodeFile, chunk string, index, total int) string {
	return fmt.Sprintf(`This is chunk %d of %d from file '%s' in a %s codebase.

Code chunk:
`+"```%s\n%s\n```"+`

Provide a brief analysis of this code chunk. Identify:
1. Classes and their responsibilities
2. Functions/methods and what they do
3. Key logic/algorithms
4. Important variables/data structures
5. Any imports/dependencies

Be concise but comprehensive.`,
		index+1, total, f.Path, f.Language, strings.ToLower(f.Language), chunk)
}

func fileSynthesisPrompt(f CodeFile, chunkSummaries []string) string {
	var sb strings.Builder
	for i, summary := range chunkSummaries {
		fmt.Fprintf(&sb, "Chunk %d:\n%s\n", i+1, summary)
	}
	return fmt.Sprintf(`I have a %s file '%s' that was analyzed in %d chunks.
Here are the summaries of each chunk:

%s
Please provide a unified summary of this file that explains:
1. The overall purpose and functionality of this file
2. Key classes, functions, and components
3. How these components interact
4. The file's role in the larger project (if apparent)
5. Any notable patterns, technologies, or techniques used

Keep the summary focused and informative.`,
		f.Language, f.Path, len(chunkSummaries), sb.String())
}

func batchPrompt(batch []CodeFile) string {
	var blocks []string
	for _, f := range batch {
		blocks = append(blocks, "\n"+fileBlock(f))
	}
	return fmt.Sprintf(`I'm analyzing a batch of %d files from a codebase.
Here are the files:

%s

For EACH file, provide a separate, concise summary that explains:
1. The overall purpose and functionality of the file
2. Key classes, functions, and components
3. How these components interact
4. The file's role in the larger project (if apparent)
5. Any notable patterns, technologies, or techniques used

Format your response with clear headings for each file:
%s [filename]
[summary]

Keep each file's summary focused and informative.`,
		len(batch), strings.Join(blocks, ""), batchHeading)
}

func singleFilePrompt(f CodeFile) string {
	return fmt.Sprintf(`Analyze this %s file '%s':

`+"```%s\n%s\n```"+`

Provide a concise summary that explains:
1. The overall purpose and functionality of this file
2. Key classes, functions, and components
3. How these components interact
4. The file's role in the larger project (if apparent)
5. Any notable patterns, technologies, or techniques used

Keep the summary focused and informative.`,
		f.Language, f.Path, strings.ToLower(f.Language), f.Content)
}

func directoryPrompt(dir string, files []string, summaries map[string]string) string {
	var sb strings.Builder
	for _, f := range files {
		fmt.Fprintf(&sb, "File: %s\nSummary: %s\n\n", filepath.Base(f), summaries[f])
	}
	return fmt.Sprintf(`I'm analyzing a directory '%s' with the following files:

%s
Based on these file summaries, provide a comprehensive overview of this directory that explains:
1. The overall purpose and functionality of this directory/module
2. How the files within it relate to each other
3. The key functionality or service provided by this directory
4. Any design patterns or architectural approaches evident
5. Technologies and techniques used

Focus on how these components fit together as a cohesive unit.`,
		dir, sb.String())
}

func projectPrompt(dirs []string, summaries map[string]string) string {
	var sb strings.Builder
	for _, dir := range dirs {
		fmt.Fprintf(&sb, "Directory: %s\nSummary: %s\n\n", dir, summaries[dir])
	}
	return fmt.Sprintf(`I've analyzed a software project with the following directories/modules:

%s
Based on these directory summaries, provide a comprehensive overview of the entire project that explains:
1. The overall architecture and how components interact
2. The main technologies, frameworks, and libraries used
3. Key design patterns and architectural approaches
4. The apparent purpose and functionality of the application
5. How data flows through the system
6. Any notable development practices or conventions

Focus on creating a cohesive picture of the entire codebase that would help someone understand how it all fits together.`,
		sb.String())
}

const highlightLimit = 5

func patternsPrompt(a *Analysis) string {
	var dirHighlights strings.Builder
	for i, dir := range sortedMapKeys(a.DirSummaries) {
		if i >= highlightLimit {
			break
		}
		fmt.Fprintf(&dirHighlights, "- %s: %s...\n", dir, clip(a.DirSummaries[dir], 100))
	}

	var fileHighlights strings.Builder
	for i, path := range sortedMapKeys(a.FileSummaries) {
		if i >= highlightLimit {
			break
		}
		fmt.Fprintf(&fileHighlights, "- %s: %s...\n", filepath.Base(path), clip(a.FileSummaries[path], 100))
	}

	return fmt.Sprintf(`Based on the file and directory analyses above, identify recurring patterns and coding conventions in this codebase:

%s

Directory highlights:
%s
File highlights:
%s
Please identify:
1. Naming conventions (for classes, functions, variables, etc.)
2. Design patterns and architectural patterns used
3. Code organization practices
4. Common techniques or idioms
5. Testing approaches
6. Error handling approaches
7. Common libraries and frameworks used
8. Other recurring patterns or practices

List each pattern with a brief explanation of how it's used in the codebase.`,
		a.ProjectSummary, dirHighlights.String(), fileHighlights.String())
}

// clip truncates s to at most n bytes, backing off to a rune boundary so
// the cut never produces invalid UTF-8.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
