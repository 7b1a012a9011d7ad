package ui

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	markdownOnce     sync.Once
	markdownRenderer *glamour.TermRenderer
)

// RenderMarkdown renders markdown content with terminal styling. When the
// renderer cannot be built the content is returned unchanged.
func RenderMarkdown(content string) string {
	markdownOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
			glamour.WithEmoji(),
		)
		if err == nil {
			markdownRenderer = r
		}
	})

	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(rendered)
}

// PrintMarkdown renders markdown to stdout.
func PrintMarkdown(content string) {
	os.Stdout.WriteString(RenderMarkdown(content))
	os.Stdout.WriteString("\n")
}
