package llm

import (
	"context"
)

// Provider defines the interface for interacting with LLM services.
// name identifies the calling intent ("selection", "narration") and may
// select a different model per the configured profiles.
type Provider interface {
	// GenerateText sends a prompt and returns the text response.
	GenerateText(ctx context.Context, name, prompt string) (string, error)

	// HealthCheck verifies that the provider is configured.
	HealthCheck(ctx context.Context) error
}
