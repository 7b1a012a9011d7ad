package llm

import "context"

// Tier selects how capable (and costly) the requested model should be.
type Tier string

const (
	// TierFast is for lightweight calls such as per-chunk summaries.
	TierFast Tier = "fast"
	// TierThinking is for calls that need deeper reasoning.
	TierThinking Tier = "thinking"
)

// Request is one text-generation call.
type Request struct {
	// Prompt is the user-role content.
	Prompt string
	// System is the system instruction. Empty means a generic default.
	System string
	// Tier selects the underlying model class.
	Tier Tier
}

// Client generates text from a prompt. Implementations block until a
// response or a hard failure; there is no streaming and no partial result.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)

	// Name returns the provider name for display.
	Name() string
}

const defaultSystemPrompt = "You are a helpful planning assistant."

// systemOrDefault fills in the generic system instruction when none is set.
func systemOrDefault(req Request) string {
	if req.System == "" {
		return defaultSystemPrompt
	}
	return req.System
}
