package textgen

import (
	"context"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const (
	defaultModel     = "claude-haiku-4-5-20251001"
	defaultMaxTokens = 1024
	defaultTimeout   = 30 * time.Second
)

// AnthropicOption configures the Anthropic-backed generator.
type AnthropicOption func(*anthropicGenerator)

// WithModel overrides the default model.
func WithModel(model string) AnthropicOption {
	return func(g *anthropicGenerator) {
		g.model = model
	}
}

// WithMaxTokens overrides the default completion budget.
func WithMaxTokens(n int64) AnthropicOption {
	return func(g *anthropicGenerator) {
		g.maxTokens = n
	}
}

// WithTimeout overrides the per-call timeout.
func WithTimeout(d time.Duration) AnthropicOption {
	return func(g *anthropicGenerator) {
		g.timeout = d
	}
}

type anthropicGenerator struct {
	client    sdk.Client
	model     string
	maxTokens int64
	timeout   time.Duration
}

// NewAnthropic creates a Generator backed by the Anthropic API.
func NewAnthropic(apiKey string, opts ...AnthropicOption) Generator {
	g := &anthropicGenerator{
		client:    sdk.NewClient(option.WithAPIKey(apiKey)),
		model:     defaultModel,
		maxTokens: defaultMaxTokens,
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *anthropicGenerator) Generate(ctx context.Context, persona, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := sdk.MessageNewParams{
		Model:     sdk.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	}
	if persona != "" {
		params.System = []sdk.TextBlockParam{{Text: persona}}
	}

	msg, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return "", eris.Wrap(err, "textgen: create message")
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", eris.New("textgen: empty completion")
	}

	zap.L().Debug("textgen: completion",
		zap.String("model", g.model),
		zap.Int64("input_tokens", msg.Usage.InputTokens),
		zap.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return text, nil
}
