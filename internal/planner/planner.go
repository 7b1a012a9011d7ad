// Package planner implements the three workflows built on the context
// gatherer, the hierarchical summarizer, and the text-generation client:
// initializing the memory bank, updating one memory file, and generating
// an implementation plan from a task description.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tara-vision/taraplan/internal/llm"
	"github.com/tara-vision/taraplan/internal/memory"
	"github.com/tara-vision/taraplan/internal/scan"
	"github.com/tara-vision/taraplan/internal/summarize"
)

// minInstructionLength is the length under which a task description is
// considered suspiciously brief.
const minInstructionLength = 50

// Planner wires the workflows together. The interactive touch points
// (yes/no confirmation, multi-line answer reading) are injected so the
// workflows run against plain readers in tests.
type Planner struct {
	Client llm.Client
	Store  *memory.Store
	Root   string

	// Report receives progress and status lines. Optional.
	Report func(format string, args ...any)

	// Confirm asks a yes/no question. Used when instructions look too
	// brief; answering yes aborts so the user can add detail.
	Confirm func(label string) bool

	// ReadAnswers collects the user's sentinel-terminated free text.
	ReadAnswers func() (string, error)
}

func (p *Planner) report(format string, args ...any) {
	if p.Report != nil {
		p.Report(format, args...)
	}
}

// proposedFile is one entry of the init response's files array.
type proposedFile struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// Initialize creates the memory folder if absent, analyzes the project,
// and asks the model to propose the memory bank files in JSON. Existing
// files are never overwritten. A response that cannot be parsed is
// returned as a *ResponseError carrying the raw output.
func (p *Planner) Initialize(ctx context.Context) error {
	created, err := p.Store.Ensure()
	if err != nil {
		return err
	}
	if created {
		p.report("created '%s' directory", p.Store.Dir())
	}

	p.report("analyzing project structure...")
	info, err := scan.Gather(p.Root, func(msg string) { p.report("%s", msg) })
	if err != nil {
		return err
	}

	p.report("starting hierarchical code analysis...")
	summarizer := summarize.New(p.Client, p.Root)
	summarizer.Report = p.Report
	analysis, err := summarizer.Run(ctx)
	if err != nil {
		return fmt.Errorf("code analysis: %w", err)
	}

	p.report("making a single call to propose memory bank files...")
	response, err := p.Client.Generate(ctx, llm.Request{
		Prompt: initPrompt(info.Describe(), analysis.Describe()),
		System: systemInit,
		Tier:   llm.TierThinking,
	})
	if err != nil {
		return err
	}

	var payload struct {
		Files []proposedFile `json:"files"`
	}
	if err := json.Unmarshal([]byte(response), &payload); err != nil {
		return &ResponseError{Raw: response, Err: err}
	}
	if len(payload.Files) == 0 {
		return &ResponseError{Raw: response}
	}

	for _, f := range payload.Files {
		written, name, err := p.Store.WriteNew(f.Filename, f.Content)
		if err != nil {
			if errors.Is(err, memory.ErrNotMarkdown) {
				p.report("skipping file %q: not a markdown file", f.Filename)
				continue
			}
			return err
		}
		if written {
			p.report("created '%s' in %s/", name, memory.DirName)
		} else {
			p.report("'%s' already exists, skipping", name)
		}
	}
	return nil
}

// ValidateUpdate checks that the memory folder and the named file exist.
// Callers run it before collecting the user's insights, so nobody types a
// full multi-line entry only to learn the update cannot proceed.
func (p *Planner) ValidateUpdate(name string) error {
	if !p.Store.Exists() {
		return ErrNoMemoryBank
	}
	if !p.Store.HasFile(name) {
		return fmt.Errorf("file '%s.md' not found in %s", name, p.Store.Dir())
	}
	return nil
}

// Update merges new insights into one canonical memory file and replaces
// its content with the model's rewrite, preferring new information on
// conflicts.
func (p *Planner) Update(ctx context.Context, name, insights string) error {
	if err := p.ValidateUpdate(name); err != nil {
		return err
	}

	current, err := p.Store.Read(name)
	if err != nil {
		return err
	}

	updated, err := p.Client.Generate(ctx, llm.Request{
		Prompt: updatePrompt(name, current, insights),
		System: systemUpdate,
		Tier:   llm.TierThinking,
	})
	if err != nil {
		return err
	}

	return p.Store.Write(name, updated)
}

// Plan reads a task description file, optionally clarifies it, generates
// an implementation plan, and appends the plan to the file under a fixed
// heading. The generated plan text is returned for display. When the
// description needs clarification the file is left untouched and
// ErrNeedsClarification is returned.
func (p *Planner) Plan(ctx context.Context, taskPath string, clarify bool) (string, error) {
	if !p.Store.Exists() {
		return "", ErrNoMemoryBank
	}

	memoryContext, err := p.Store.ReadAll()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(taskPath)
	if err != nil {
		return "", fmt.Errorf("reading task file: %w", err)
	}
	instructions := string(data)

	analysis := AnalyzeTaskText(instructions)

	info, err := scan.Gather(p.Root, func(msg string) { p.report("%s", msg) })
	if err != nil {
		return "", err
	}

	if clarify {
		updated, err := p.clarifyWithLLM(ctx, instructions, analysis, info)
		if err != nil {
			return "", err
		}
		if updated != "" {
			instructions = updated
		}
	} else if err := p.checkForClarifications(instructions); err != nil {
		return "", err
	}

	p.report("calling %s to create your plan...", p.Client.Name())
	planText, err := p.Client.Generate(ctx, llm.Request{
		Prompt: planPrompt(instructions, memoryContext, analysis, info),
		System: systemPlan,
		Tier:   llm.TierThinking,
	})
	if err != nil {
		return "", err
	}

	final := instructions + "\n\n" + PlanHeading + "\n" + planText
	if err := os.WriteFile(taskPath, []byte(final), 0644); err != nil {
		return "", fmt.Errorf("writing task file: %w", err)
	}
	return planText, nil
}

// checkForClarifications applies the local heuristics: placeholder markers
// abort outright; very short instructions ask the user whether to stop and
// add detail first.
func (p *Planner) checkForClarifications(instructions string) error {
	if markers := PlaceholderMarkers(instructions); len(markers) > 0 {
		p.report("it looks like there are placeholders in your instructions: %s", strings.Join(markers, ", "))
		return ErrNeedsClarification
	}

	if len(strings.TrimSpace(instructions)) < minInstructionLength {
		p.report("your instructions seem quite brief; this might lead to a less detailed plan")
		if p.Confirm != nil && p.Confirm("Would you like to add more details before proceeding") {
			p.report("please update your task file and run the command again")
			return ErrNeedsClarification
		}
	}
	return nil
}

// clarifyWithLLM asks for 1-3 clarifying questions, collects the user's
// answers, and returns the instructions augmented with the exchange. An
// empty return means no clarification was needed.
func (p *Planner) clarifyWithLLM(ctx context.Context, instructions string, analysis *TaskAnalysis, info *scan.ProjectInfo) (string, error) {
	p.report("analyzing your request for any ambiguities or missing details...")

	questions, err := p.Client.Generate(ctx, llm.Request{
		Prompt: clarifyPrompt(instructions, analysis, info),
		System: systemClarify,
		Tier:   llm.TierThinking,
	})
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(questions) == "" || strings.Contains(strings.ToLower(questions), "no clarification needed") {
		p.report("your request seems clear, no clarification needed")
		return "", nil
	}

	p.report("a few clarifying questions to make your plan more accurate:\n%s", questions)
	p.report("please provide answers (type 'EXIT' on a new line when finished):")

	answers := ""
	if p.ReadAnswers != nil {
		answers, err = p.ReadAnswers()
		if err != nil {
			return "", err
		}
	}

	return instructions + "\n\n## Clarifications:\n\n" + questions + "\n\n" + answers, nil
}
