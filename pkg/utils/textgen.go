package utils

import "context"

// TextGenerator is the single surface the enrichment pipeline needs from a
// generative text provider. Implemented by the OpenAI and Gemini clients.
type TextGenerator interface {
	Generate(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error)
}

type disabledTextGenerator struct{}

func (disabledTextGenerator) Generate(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	return "", ErrProviderUnavailable
}

// NewDisabledTextGenerator is used when no provider credential is configured.
// Callers degrade to their fallback content instead of failing the request.
func NewDisabledTextGenerator() TextGenerator {
	return disabledTextGenerator{}
}
