package llm

import "context"

// StubClient is a placeholder for providers that are detected from
// credentials but not yet integrated. It never touches the network.
type StubClient struct {
	name    string
	message string
}

// NewBedrockClient returns the AWS Bedrock placeholder.
func NewBedrockClient() *StubClient {
	return &StubClient{
		name:    "aws",
		message: "# AWS Bedrock support\n\nThis is a placeholder for AWS Bedrock integration.",
	}
}

// NewAzureClient returns the Azure OpenAI placeholder.
func NewAzureClient() *StubClient {
	return &StubClient{
		name:    "azure",
		message: "# Azure OpenAI support\n\nThis is a placeholder for Azure OpenAI integration.",
	}
}

// Name returns the provider name for display.
func (c *StubClient) Name() string { return c.name }

// Generate returns the fixed placeholder text.
func (c *StubClient) Generate(_ context.Context, _ Request) (string, error) {
	return c.message, nil
}
