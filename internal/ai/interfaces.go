package ai

import "context"

// TextGenerator is the single capability the recruitment pipeline needs from
// an AI backend: turn a prompt into free-form text. Implementations must
// return an error on network/auth/rate-limit problems; callers fall back to
// deterministic templates.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
