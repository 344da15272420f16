// Package textgen abstracts the text-generation capability the engine leans
// on for ingredient analysis and last-resort price estimates. The engine only
// depends on the Generator interface; production wiring supplies the
// Anthropic-backed implementation.
package textgen

import "context"

// Generator produces text for a prompt under an optional persona. A failure
// is an ordinary error; callers degrade to their next fallback tier.
type Generator interface {
	Generate(ctx context.Context, persona, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, persona, prompt string) (string, error)

// Generate implements Generator.
func (f GeneratorFunc) Generate(ctx context.Context, persona, prompt string) (string, error) {
	return f(ctx, persona, prompt)
}
