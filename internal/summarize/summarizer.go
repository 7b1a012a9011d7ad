// Package summarize produces a three-tier natural-language description of
// a codebase (per-file, per-directory, project-wide) through a
// text-generation client. Small codebases are summarized in a single
// request; larger ones fall back to a multi-level chunk/batch/aggregate
// scheme that respects an approximate context-window budget.
package summarize

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tara-vision/taraplan/internal/llm"
)

// Default limits. Token figures are estimates at four characters per
// token, not exact tokenization.
const (
	defaultMaxFiles        = 50
	defaultChunkThreshold  = 6000
	defaultTokenCeiling    = 150000
	defaultSingleShotFiles = 15
	defaultBatchTokenLimit = 8000
	defaultFileOverhead    = 200

	charsPerToken = 4
)

// Summarizer runs the hierarchical codebase analysis. All limits are
// explicit fields so tests can shrink them; zero values are filled with
// the defaults by New. Execution is strictly sequential: one generation
// call at a time, no shared state between calls.
type Summarizer struct {
	Client llm.Client
	Root   string

	// MaxFiles caps how many candidates are analyzed, most recently
	// modified first. Dropped files are counted on the result.
	MaxFiles int

	// ChunkThreshold is the content length in characters above which a
	// file is treated as "large" and chunked instead of batched.
	ChunkThreshold int

	// TokenCeiling is the estimated-token bound for the single-shot path.
	TokenCeiling int

	// SingleShotFileLimit is the file-count bound for the single-shot path.
	SingleShotFileLimit int

	// BatchTokenLimit bounds each small-file batch, including FileOverhead
	// estimated tokens of wrapping per file.
	BatchTokenLimit int
	FileOverhead    int

	// Report receives progress and degradation notices. Optional.
	Report func(format string, args ...any)
}

// New returns a summarizer with the default limits.
func New(client llm.Client, root string) *Summarizer {
	return &Summarizer{
		Client:              client,
		Root:                root,
		MaxFiles:            defaultMaxFiles,
		ChunkThreshold:      defaultChunkThreshold,
		TokenCeiling:        defaultTokenCeiling,
		SingleShotFileLimit: defaultSingleShotFiles,
		BatchTokenLimit:     defaultBatchTokenLimit,
		FileOverhead:        defaultFileOverhead,
	}
}

func (s *Summarizer) report(format string, args ...any) {
	if s.Report != nil {
		s.Report(format, args...)
	}
}

// Run analyzes the codebase under Root. Individual file, batch, and
// directory failures degrade coverage without aborting the run; only
// discovery errors and a failed single-shot request are returned.
func (s *Summarizer) Run(ctx context.Context) (*Analysis, error) {
	files, truncated, err := s.discover()
	if err != nil {
		return nil, err
	}

	analysis := newAnalysis()
	analysis.TruncatedFiles = truncated
	if truncated > 0 {
		s.report("note: %d older files beyond the %d-file cap were not analyzed", truncated, s.MaxFiles)
	}

	totalChars := 0
	for _, f := range files {
		totalChars += len(f.Content)
	}
	estimated := estimateTokens(totalChars)

	if estimated < s.TokenCeiling && len(files) <= s.SingleShotFileLimit {
		s.report("small codebase detected (%d files, ~%d tokens), analyzing in one pass", len(files), estimated)
		if err := s.singleShot(ctx, files, analysis); err != nil {
			return nil, err
		}
		return analysis, nil
	}

	s.report("large codebase detected (%d files, ~%d tokens), using hierarchical analysis", len(files), estimated)
	s.hierarchical(ctx, files, analysis)
	return analysis, nil
}

// singleShot embeds every file in one request and recovers the labelled
// report sections from the response.
func (s *Summarizer) singleShot(ctx context.Context, files []CodeFile, analysis *Analysis) error {
	techs := make(map[string]bool)
	var blocks []string
	var included []CodeFile
	for _, f := range files {
		if strings.TrimSpace(f.Content) == "" {
			continue
		}
		techs[f.Language] = true
		blocks = append(blocks, fileBlock(f))
		included = append(included, f)
	}

	response, err := s.Client.Generate(ctx, llm.Request{
		Prompt: singleShotPrompt(blocks),
		System: systemCodebase,
		Tier:   llm.TierThinking,
	})
	if err != nil {
		return err
	}

	sections := parseSections(response)

	if body, ok := findSection(sections, sectionProject); ok {
		analysis.ProjectSummary = strings.TrimSpace(body)
	}
	if body, ok := findSection(sections, sectionFiles); ok {
		analysis.FileSummaries = extractFileSummaries(body, included)
	}
	if body, ok := findSection(sections, sectionDirectories); ok {
		analysis.DirSummaries = extractDirSummaries(body, directoriesOf(included))
	}
	if body, ok := findSection(sections, sectionPatterns); ok {
		analysis.Patterns = strings.TrimSpace(body)
	}

	analysis.Technologies = sortedSet(techs)
	if body, ok := findSection(sections, sectionTechnologies); ok {
		lower := strings.ToLower(body)
		for _, lang := range codeExtensions {
			if strings.Contains(lower, strings.ToLower(lang)) && !techs[lang] {
				techs[lang] = true
			}
		}
		analysis.Technologies = sortedSet(techs)
	}
	return nil
}

// hierarchical runs the multi-level fallback: chunk large files, batch
// small ones, then aggregate per directory and project-wide.
func (s *Summarizer) hierarchical(ctx context.Context, files []CodeFile, analysis *Analysis) {
	var large, small []CodeFile
	for _, f := range files {
		if f.Content == "" {
			continue
		}
		if len(f.Content) > s.ChunkThreshold {
			large = append(large, f)
		} else {
			small = append(small, f)
		}
	}

	s.summarizeLarge(ctx, large, analysis)
	s.summarizeBatches(ctx, small, analysis)
	s.summarizeDirectories(ctx, files, analysis)
	s.summarizeProject(ctx, analysis)
	s.summarizePatterns(ctx, analysis)
}

// summarizeLarge chunks each oversized file, summarizes the chunks on the
// fast tier, and synthesizes one file summary on the thinking tier. An
// error on any step skips that file only.
func (s *Summarizer) summarizeLarge(ctx context.Context, large []CodeFile, analysis *Analysis) {
	for i, f := range large {
		s.report("processing large file %d/%d: %s", i+1, len(large), f.Path)

		chunks := SplitChunks(f.Content, s.ChunkThreshold)
		chunkSummaries := make([]string, 0, len(chunks))
		failed := false
		for j, chunk := range chunks {
			summary, err := s.Client.Generate(ctx, llm.Request{
				Prompt: chunkPrompt(f, chunk, j, len(chunks)),
				System: systemChunk,
				Tier:   llm.TierFast,
			})
			if err != nil {
				s.report("error analyzing large file %s: %v", f.Path, err)
				failed = true
				break
			}
			chunkSummaries = append(chunkSummaries, summary)
		}
		if failed {
			continue
		}

		summary, err := s.Client.Generate(ctx, llm.Request{
			Prompt: fileSynthesisPrompt(f, chunkSummaries),
			System: systemFile,
			Tier:   llm.TierThinking,
		})
		if err != nil {
			s.report("error analyzing large file %s: %v", f.Path, err)
			continue
		}
		analysis.FileSummaries[f.Path] = summary
	}
}

// summarizeBatches packs small files into batches and summarizes each in
// one request. A failed batch is retried file by file rather than
// abandoned; a failed individual file is skipped.
func (s *Summarizer) summarizeBatches(ctx context.Context, small []CodeFile, analysis *Analysis) {
	batches := PackBatches(small, s.BatchTokenLimit, s.FileOverhead)
	if len(batches) > 0 {
		s.report("created %d batches of smaller files", len(batches))
	}

	for i, batch := range batches {
		s.report("processing batch %d/%d (%d files)", i+1, len(batches), len(batch))

		response, err := s.Client.Generate(ctx, llm.Request{
			Prompt: batchPrompt(batch),
			System: systemBatch,
			Tier:   llm.TierThinking,
		})
		if err == nil {
			for path, summary := range splitBatchSections(response, batch) {
				analysis.FileSummaries[path] = summary
			}
			continue
		}

		s.report("error processing batch %d: %v; falling back to individual files", i+1, err)
		for _, f := range batch {
			summary, fileErr := s.Client.Generate(ctx, llm.Request{
				Prompt: singleFilePrompt(f),
				System: systemSingleFile,
				Tier:   llm.TierThinking,
			})
			if fileErr != nil {
				s.report("error analyzing file %s: %v", f.Path, fileErr)
				continue
			}
			analysis.FileSummaries[f.Path] = summary
		}
	}
}

// summarizeDirectories aggregates file summaries per containing directory.
func (s *Summarizer) summarizeDirectories(ctx context.Context, files []CodeFile, analysis *Analysis) {
	byDir := make(map[string][]string)
	for _, f := range files {
		if _, ok := analysis.FileSummaries[f.Path]; !ok {
			continue
		}
		dir := filepath.Dir(f.Path)
		byDir[dir] = append(byDir[dir], f.Path)
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	if len(dirs) > 0 {
		s.report("generating summaries for %d directories", len(dirs))
	}

	for _, dir := range dirs {
		summary, err := s.Client.Generate(ctx, llm.Request{
			Prompt: directoryPrompt(dir, byDir[dir], analysis.FileSummaries),
			System: systemDirectory,
			Tier:   llm.TierThinking,
		})
		if err != nil {
			s.report("error summarizing directory %s: %v", dir, err)
			continue
		}
		analysis.DirSummaries[dir] = summary
	}
}

// summarizeProject aggregates the directory summaries, when any exist.
func (s *Summarizer) summarizeProject(ctx context.Context, analysis *Analysis) {
	if len(analysis.DirSummaries) == 0 {
		return
	}
	s.report("creating overall project summary")

	summary, err := s.Client.Generate(ctx, llm.Request{
		Prompt: projectPrompt(sortedMapKeys(analysis.DirSummaries), analysis.DirSummaries),
		System: systemProject,
		Tier:   llm.TierThinking,
	})
	if err != nil {
		s.report("error creating project summary: %v", err)
		return
	}
	analysis.ProjectSummary = summary
}

// summarizePatterns extracts recurring patterns from the aggregate view.
func (s *Summarizer) summarizePatterns(ctx context.Context, analysis *Analysis) {
	s.report("identifying recurring patterns and conventions")

	patterns, err := s.Client.Generate(ctx, llm.Request{
		Prompt: patternsPrompt(analysis),
		System: systemPatterns,
		Tier:   llm.TierThinking,
	})
	if err != nil {
		s.report("error identifying patterns: %v", err)
		return
	}
	analysis.Patterns = patterns
}

// directoriesOf lists the distinct containing directories of the files.
func directoriesOf(files []CodeFile) []string {
	set := make(map[string]bool)
	for _, f := range files {
		set[filepath.Dir(f.Path)] = true
	}
	return sortedSet(set)
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
