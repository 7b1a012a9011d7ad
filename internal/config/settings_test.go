package config

import (
	"errors"
	"testing"
)

func clearCredentials(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENAI_API_KEY", "OPENAI_BASE_URL",
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
		"AZURE_OPENAI_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadPrefersOpenAI(t *testing.T) {
	clearCredentials(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AZURE_OPENAI_KEY", "az")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Provider != ProviderOpenAI {
		t.Errorf("Expected openai provider, got %s", s.Provider)
	}
	if s.OpenAIKey != "sk-test" {
		t.Errorf("Unexpected key: %s", s.OpenAIKey)
	}
}

func TestLoadFallsBackToAWS(t *testing.T) {
	clearCredentials(t)
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AZURE_OPENAI_KEY", "az")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Provider != ProviderAWS {
		t.Errorf("Expected aws provider, got %s", s.Provider)
	}
}

func TestLoadRequiresBothAWSKeys(t *testing.T) {
	clearCredentials(t)
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA")
	t.Setenv("AZURE_OPENAI_KEY", "az")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Provider != ProviderAzure {
		t.Errorf("Expected azure with incomplete aws credentials, got %s", s.Provider)
	}
}

func TestLoadNoCredentials(t *testing.T) {
	clearCredentials(t)

	_, err := Load()
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("Expected ErrNoCredentials, got %v", err)
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	clearCredentials(t)
	t.Setenv("OPENAI_API_KEY", "  sk-padded  ")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.OpenAIKey != "sk-padded" {
		t.Errorf("Key not trimmed: %q", s.OpenAIKey)
	}
}
