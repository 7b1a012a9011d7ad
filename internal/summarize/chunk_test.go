package summarize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitChunksRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		content string
		limit   int
	}{
		{"empty", "", 100},
		{"single line", "package main", 100},
		{"many short lines", strings.Repeat("line of code\n", 200), 120},
		{"trailing newline", "a\nb\nc\n", 4},
		{"blank lines", "a\n\n\nb\n\nc", 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chunks := SplitChunks(tc.content, tc.limit)
			require.NotEmpty(t, chunks)
			assert.Equal(t, tc.content, strings.Join(chunks, "\n"),
				"joining chunks must reproduce the original content")
		})
	}
}

func TestSplitChunksRespectsLimit(t *testing.T) {
	content := strings.Repeat("0123456789\n", 50)
	limit := 100

	for i, chunk := range SplitChunks(content, limit) {
		assert.LessOrEqual(t, len(chunk), limit, "chunk %d over limit", i)
	}
}

func TestSplitChunksOversizedLineStandsAlone(t *testing.T) {
	long := strings.Repeat("x", 500)
	content := "short\n" + long + "\nshort again"

	chunks := SplitChunks(content, 100)
	require.Len(t, chunks, 3)
	assert.Equal(t, "short", chunks[0])
	assert.Equal(t, long, chunks[1])
	assert.Equal(t, "short again", chunks[2])
}
