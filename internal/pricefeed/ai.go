package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/gonogo-cli/internal/model"
	"github.com/sells-group/gonogo-cli/pkg/textgen"
)

const aiPersona = "You are a commodity pricing analyst for the Indian wholesale market. Answer only with the JSON requested, no commentary."

// mentionRe matches rupee-per-kilogram figures in free text, e.g.
// "₹120/kg", "Rs. 1,450 per kilogram", "INR 85 / kg".
var mentionRe = regexp.MustCompile(`(?:₹|Rs\.?|INR)\s*([\d,]+(?:\.\d+)?)\s*(?:/|per\s+)\s*(?:kg|kilo(?:gram)?s?)\b`)

// priceMentions extracts per-kg prices from search snippet text.
func priceMentions(text string) []float64 {
	var out []float64
	for _, m := range mentionRe.FindAllStringSubmatch(text, -1) {
		raw := strings.ReplaceAll(m[1], ",", "")
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			out = append(out, v)
		}
	}
	return out
}

// aiEstimate is the structured answer requested from the generator.
type aiEstimate struct {
	PricePerKg float64 `json:"price_per_kg"`
	Confidence string  `json:"confidence"`
}

// resolveAI is tier 3: a bounded generation query constrained to one numeric
// estimate. The generator may claim High confidence; the resolver caps it at
// Medium because the figure is unverified.
func (r *Resolver) resolveAI(ctx context.Context, ingredient string) (model.PriceQuote, bool) {
	if r.gen == nil {
		return model.PriceQuote{}, false
	}
	ctx, cancel := context.WithTimeout(ctx, r.tierTimeout)
	defer cancel()

	prompt := fmt.Sprintf(
		`Estimate the current Indian wholesale price of %q in rupees per kilogram. Respond with JSON: {"price_per_kg": <number>, "confidence": "high"|"medium"|"low"}`,
		ingredient,
	)
	reply, err := r.gen.Generate(ctx, aiPersona, prompt)
	if err != nil {
		zap.L().Debug("pricefeed: ai estimate failed, trying next tier",
			zap.String("ingredient", ingredient),
			zap.Error(err),
		)
		return model.PriceQuote{}, false
	}

	payload, ok := textgen.ExtractJSON(reply)
	if !ok {
		return model.PriceQuote{}, false
	}
	var est aiEstimate
	if err := json.Unmarshal([]byte(payload), &est); err != nil || est.PricePerKg <= 0 {
		return model.PriceQuote{}, false
	}

	conf := model.Confidence(strings.ToLower(est.Confidence)).Cap(model.ConfidenceMedium)
	return model.PriceQuote{
		Ingredient: ingredient,
		PricePerKg: est.PricePerKg,
		Source:     model.SourceAIEstimate,
		Confidence: conf,
		Reasoning:  "AI wholesale price estimate (unverified)",
	}, true
}
