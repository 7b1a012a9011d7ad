package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Provider identifies which text-generation backend the run will use.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderAWS    Provider = "aws"
	ProviderAzure  Provider = "azure"
)

// ErrNoCredentials is returned when none of the supported credential
// groups are present in the environment.
var ErrNoCredentials = errors.New("no API credentials detected")

// SetupInstructions tells the user how to configure credentials.
const SetupInstructions = `Please set one of the following:
  - OpenAI: export OPENAI_API_KEY=<your_key>
  - AWS: export AWS_ACCESS_KEY_ID=<your_id> and AWS_SECRET_ACCESS_KEY=<your_key>
  - Azure: export AZURE_OPENAI_KEY=<your_key>`

// Settings carries the resolved provider selection and credentials.
// It is built once at startup and passed explicitly to every component
// that needs it; nothing reads credentials from the environment after Load.
type Settings struct {
	Provider Provider

	OpenAIKey     string
	OpenAIBaseURL string

	AWSAccessKeyID     string
	AWSSecretAccessKey string

	AzureKey string
}

// Load reads a .env file from the working directory (if present), binds the
// credential environment variables, and resolves the provider in fixed
// priority order: OpenAI, then AWS, then Azure. Returns ErrNoCredentials
// when no group is complete.
func Load() (*Settings, error) {
	// A missing .env file is fine; explicit environment still applies.
	_ = godotenv.Overload()

	v := viper.New()
	v.AutomaticEnv()
	_ = v.BindEnv("openai_api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("openai_base_url", "OPENAI_BASE_URL")
	_ = v.BindEnv("aws_access_key_id", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("aws_secret_access_key", "AWS_SECRET_ACCESS_KEY")
	_ = v.BindEnv("azure_openai_key", "AZURE_OPENAI_KEY")

	s := &Settings{
		OpenAIKey:          strings.TrimSpace(v.GetString("openai_api_key")),
		OpenAIBaseURL:      strings.TrimSpace(v.GetString("openai_base_url")),
		AWSAccessKeyID:     strings.TrimSpace(v.GetString("aws_access_key_id")),
		AWSSecretAccessKey: strings.TrimSpace(v.GetString("aws_secret_access_key")),
		AzureKey:           strings.TrimSpace(v.GetString("azure_openai_key")),
	}

	switch {
	case s.OpenAIKey != "":
		s.Provider = ProviderOpenAI
	case s.AWSAccessKeyID != "" && s.AWSSecretAccessKey != "":
		s.Provider = ProviderAWS
	case s.AzureKey != "":
		s.Provider = ProviderAzure
	default:
		return nil, ErrNoCredentials
	}

	return s, nil
}
