// Package narrator turns structured results into friendly prose via the
// LLM provider. It never returns an error: on any failure the caller gets
// an empty string and substitutes its own templated sentence.
package narrator

import (
	"context"
	"log/slog"

	"trailbuddy/pkg/llm"
)

// Narrator generates conversational prose for assistant replies.
type Narrator struct {
	provider llm.Provider
}

// New creates a Narrator. A nil provider disables generation entirely,
// which forces every caller onto its templated fallback.
func New(p llm.Provider) *Narrator {
	return &Narrator{provider: p}
}

// Generate asks the provider for prose. The intent names the call site for
// model-profile selection and prompt logging. Failures yield "".
func (n *Narrator) Generate(ctx context.Context, intent, prompt string) string {
	if n.provider == nil {
		return ""
	}
	text, err := n.provider.GenerateText(ctx, intent, prompt)
	if err != nil {
		slog.Warn("narrative generation failed, using template", "intent", intent, "error", err)
		return ""
	}
	return text
}
