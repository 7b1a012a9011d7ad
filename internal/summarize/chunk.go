package summarize

import "strings"

// SplitChunks splits content into ordered line-based chunks of at most
// limit characters each. Joining the chunks with a newline reproduces the
// original content exactly. A single line longer than the limit becomes a
// chunk of its own; that is the only way a chunk can exceed the limit.
func SplitChunks(content string, limit int) []string {
	lines := strings.Split(content, "\n")

	var chunks []string
	var current []string
	size := 0

	for _, line := range lines {
		lineSize := len(line) + 1 // the joining newline
		if len(current) > 0 && size+lineSize > limit {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = nil
			size = 0
		}
		current = append(current, line)
		size += lineSize
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n"))
	}
	return chunks
}
