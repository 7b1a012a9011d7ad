package llm

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const defaultConnectTimeout = 10 * time.Second

// Model fallback lists per tier, tried in order. The first model that
// answers wins; later entries are cheaper/older models kept as a bounded
// fallback, not a retry policy.
var (
	thinkingModels = []string{"o3-mini", "gpt-3.5-turbo-16k", "gpt-3.5-turbo"}
	fastModels     = []string{"gpt-4o-mini", "gpt-3.5-turbo"}
)

// OpenAIClient talks to the OpenAI API, or any OpenAI-compatible server
// when a base URL override is configured.
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient builds a client for the given key. baseURL overrides the
// API endpoint when non-empty.
func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = newHTTPClient()
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg)}
}

// Name returns the provider name for display.
func (c *OpenAIClient) Name() string { return "openai" }

// Generate sends one chat-completion request, walking the tier's model
// fallback list until a model responds. It returns the first successful
// response text or the last model's error once the list is exhausted.
func (c *OpenAIClient) Generate(ctx context.Context, req Request) (string, error) {
	models := thinkingModels
	if req.Tier == TierFast {
		models = fastModels
	}

	var lastErr error
	for _, model := range models {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemOrDefault(req)},
				{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
			},
		})
		if err != nil {
			lastErr = fmt.Errorf("model %s: %w", model, err)
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("model %s: empty response", model)
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("all models failed: %w", lastErr)
}

// newHTTPClient builds an HTTP client for generation requests. The
// client-level timeout stays disabled; long calls are bounded by context.
func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   defaultConnectTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}
