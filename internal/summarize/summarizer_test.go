package summarize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tara-vision/taraplan/internal/llm"
)

// fakeClient records every request and answers through respond, or with a
// fixed placeholder when respond is nil.
type fakeClient struct {
	requests []llm.Request
	respond  func(req llm.Request) (string, error)
}

func (c *fakeClient) Generate(_ context.Context, req llm.Request) (string, error) {
	c.requests = append(c.requests, req)
	if c.respond != nil {
		return c.respond(req)
	}
	return "placeholder summary", nil
}

func (c *fakeClient) Name() string { return "fake" }

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for path, content := range files {
		full := filepath.Join(root, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
	return root
}

func TestRunSingleShotSmallCodebase(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.go":        "package main\n\nfunc main() {}\n",
		"web/server.go":  "package web\n\nfunc Serve() {}\n",
		"web/handler.go": "package web\n\nfunc Handle() {}\n",
	})

	client := &fakeClient{respond: func(req llm.Request) (string, error) {
		return `# PROJECT SUMMARY
A tiny Go service.

## FILE SUMMARIES
main.go is the entry point. server.go starts the listener. handler.go handles requests.

## DIRECTORY ORGANIZATION
web holds the HTTP layer.

## PATTERNS AND CONVENTIONS
Plain functions, no frameworks.

## TECHNOLOGIES IDENTIFIED
Go and nothing else.`, nil
	}}

	s := New(client, root)
	analysis, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, client.requests, 1, "a small codebase takes exactly one request")
	assert.Equal(t, llm.TierThinking, client.requests[0].Tier)

	assert.Equal(t, "A tiny Go service.", analysis.ProjectSummary)
	assert.Contains(t, analysis.FileSummaries["main.go"], "entry point")
	assert.Contains(t, analysis.FileSummaries[filepath.Join("web", "server.go")], "listener")
	assert.Equal(t, "Plain functions, no frameworks.", analysis.Patterns)
	assert.Contains(t, analysis.Technologies, "Go")
	assert.Zero(t, analysis.TruncatedFiles)
}

func TestRunSingleShotFailureAborts(t *testing.T) {
	root := writeTree(t, map[string]string{"main.go": "package main\n"})

	client := &fakeClient{respond: func(req llm.Request) (string, error) {
		return "", errors.New("boom")
	}}

	_, err := New(client, root).Run(context.Background())
	require.Error(t, err)
}

func TestRunHierarchicalWhenFileCountExceedsLimit(t *testing.T) {
	files := make(map[string]string)
	for i := 0; i < 4; i++ {
		files[fmt.Sprintf("pkg/f%d.go", i)] = "package pkg\n"
	}
	root := writeTree(t, files)

	client := &fakeClient{respond: func(req llm.Request) (string, error) {
		if req.System == systemBatch {
			var sb strings.Builder
			for i := 0; i < 4; i++ {
				fmt.Fprintf(&sb, "## FILE: f%d.go\nDoes thing %d.\n\n", i, i)
			}
			return sb.String(), nil
		}
		return "aggregate text", nil
	}}

	s := New(client, root)
	s.SingleShotFileLimit = 2

	analysis, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, analysis.FileSummaries, 4)
	assert.Equal(t, "aggregate text", analysis.DirSummaries["pkg"])
	assert.Equal(t, "aggregate text", analysis.ProjectSummary)
	assert.Equal(t, "aggregate text", analysis.Patterns)
	assert.Empty(t, analysis.Technologies, "technologies are only gathered on the single-pass path")
}

func TestRunSingleShotAtExactFileLimit(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.go": "package a\n",
		"b.go": "package b\n",
		"c.go": "package c\n",
	})

	client := &fakeClient{respond: func(req llm.Request) (string, error) {
		return "# PROJECT SUMMARY\nok\n", nil
	}}
	s := New(client, root)
	s.SingleShotFileLimit = 3

	_, err := s.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, client.requests, 1, "a file count equal to the limit stays on the single-pass path")
	assert.Equal(t, systemCodebase, client.requests[0].System)
}

func TestRunHierarchicalAtExactTokenCeiling(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.go": strings.Repeat("x", 400), // estimates to exactly 100 tokens
	})

	client := &fakeClient{}
	s := New(client, root)
	s.TokenCeiling = 100

	_, err := s.Run(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, client.requests)
	for _, req := range client.requests {
		assert.NotEqual(t, systemCodebase, req.System,
			"an estimate equal to the ceiling must take the hierarchical path")
	}
}

func TestRunHierarchicalWhenTokensExceedCeiling(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.go": strings.Repeat("x", 400),
		"b.go": strings.Repeat("y", 400),
	})

	client := &fakeClient{}
	s := New(client, root)
	s.TokenCeiling = 100 // 800 chars estimate to 200 tokens

	_, err := s.Run(context.Background())
	require.NoError(t, err)

	for _, req := range client.requests {
		assert.NotEqual(t, systemCodebase, req.System)
	}
}

func TestRunLargeFileChunkedThenSynthesized(t *testing.T) {
	big := strings.Repeat("line of code\n", 40) // 520 chars
	root := writeTree(t, map[string]string{"big.go": big})

	client := &fakeClient{respond: func(req llm.Request) (string, error) {
		if req.System == systemFile {
			return "unified summary", nil
		}
		return "chunk notes", nil
	}}

	s := New(client, root)
	s.SingleShotFileLimit = 0
	s.ChunkThreshold = 200

	analysis, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "unified summary", analysis.FileSummaries["big.go"])

	var chunkCalls, synthCalls int
	for _, req := range client.requests {
		switch req.System {
		case systemChunk:
			chunkCalls++
			assert.Equal(t, llm.TierFast, req.Tier)
		case systemFile:
			synthCalls++
			assert.Equal(t, llm.TierThinking, req.Tier)
		}
	}
	assert.Greater(t, chunkCalls, 1)
	assert.Equal(t, 1, synthCalls)
}

func TestRunBatchFailureFallsBackToFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.go": "package a\n",
		"b.go": "package b\n",
	})

	client := &fakeClient{respond: func(req llm.Request) (string, error) {
		switch req.System {
		case systemBatch:
			return "", errors.New("batch too big")
		case systemSingleFile:
			return "individual summary", nil
		default:
			return "aggregate text", nil
		}
	}}

	s := New(client, root)
	s.SingleShotFileLimit = 0

	analysis, err := s.Run(context.Background())
	require.NoError(t, err, "batch failures degrade coverage, they never abort")
	assert.Equal(t, "individual summary", analysis.FileSummaries["a.go"])
	assert.Equal(t, "individual summary", analysis.FileSummaries["b.go"])
}

func TestRunFileCapReportsTruncation(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.go": "package a\n",
		"b.go": "package b\n",
		"c.go": "package c\n",
	})

	client := &fakeClient{respond: func(req llm.Request) (string, error) {
		return "# PROJECT SUMMARY\nok\n", nil
	}}

	s := New(client, root)
	s.MaxFiles = 1

	analysis, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, analysis.TruncatedFiles)
}

func TestDiscoverSkipsHiddenAndExcluded(t *testing.T) {
	root := writeTree(t, map[string]string{
		"keep.go":              "package keep\n",
		".hidden.go":           "package hidden\n",
		"node_modules/dep.js":  "module.exports = {}\n",
		"memory-bank/brief.md": "# brief\n",
		"docs/notes.txt":       "not source\n",
		"sub/also.go":          "package sub\n",
	})

	s := New(&fakeClient{}, root)
	files, truncated, err := s.discover()
	require.NoError(t, err)
	assert.Zero(t, truncated)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	assert.ElementsMatch(t, []string{"keep.go", filepath.Join("sub", "also.go")}, paths)
}
