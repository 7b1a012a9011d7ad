package llm

import (
	"fmt"

	"github.com/tara-vision/taraplan/internal/config"
)

// New builds the client matching the resolved provider settings.
func New(settings *config.Settings) (Client, error) {
	switch settings.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(settings.OpenAIKey, settings.OpenAIBaseURL), nil
	case config.ProviderAWS:
		return NewBedrockClient(), nil
	case config.ProviderAzure:
		return NewAzureClient(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", settings.Provider)
	}
}
