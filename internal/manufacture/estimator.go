// Package manufacture estimates per-unit manufacturing cost. Three paths, in
// order of preference: ingredient-level pricing, a single-shot AI estimate,
// and the deterministic category-average coefficient. Every path yields a
// populated breakdown with a reasoning string naming the path taken; the
// confidence indicators downstream depend on that provenance.
package manufacture

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/sells-group/gonogo-cli/internal/ingredients"
	"github.com/sells-group/gonogo-cli/internal/model"
	"github.com/sells-group/gonogo-cli/internal/pricefeed"
	"github.com/sells-group/gonogo-cli/internal/rates"
	"github.com/sells-group/gonogo-cli/pkg/textgen"
)

// Category-average fallback approximates raw materials as this fraction of
// the all-in per-gram coefficient, the rest being overhead and margin noise.
const rawMaterialShare = 0.7

const estimatorPersona = "You are a contract-manufacturing cost consultant for Indian FMCG brands. Answer only with the JSON requested."

// Estimator computes manufacturing breakdowns.
type Estimator struct {
	tables   *rates.Tables
	analyzer *ingredients.Analyzer
	resolver *pricefeed.Resolver
	gen      textgen.Generator
}

// NewEstimator creates an Estimator. analyzer, resolver and gen may be nil;
// estimation then degrades to the category-average path.
func NewEstimator(tables *rates.Tables, analyzer *ingredients.Analyzer, resolver *pricefeed.Resolver, gen textgen.Generator) *Estimator {
	return &Estimator{
		tables:   tables,
		analyzer: analyzer,
		resolver: resolver,
		gen:      gen,
	}
}

// Estimate produces the manufacturing breakdown for one unit.
func (e *Estimator) Estimate(ctx context.Context, description string, category model.Category, weightGrams float64) model.ManufacturingBreakdown {
	if e.analyzer != nil && e.resolver != nil {
		if analysis := e.analyzer.Analyze(ctx, description, category, weightGrams); analysis != nil {
			return e.fromIngredients(ctx, analysis, category, weightGrams)
		}
	}
	if bd, ok := e.fromAI(ctx, description, category, weightGrams); ok {
		return bd
	}
	return e.fromCategoryAverage(category, weightGrams)
}

// fromIngredients prices each ingredient through the resolver and applies
// category overhead on the raw-material total.
func (e *Estimator) fromIngredients(ctx context.Context, analysis *ingredients.Analysis, category model.Category, weightGrams float64) model.ManufacturingBreakdown {
	quotes := e.resolver.ResolveAll(ctx, analysis.Ingredients)

	var (
		raw         float64
		costs       = make([]model.IngredientCost, len(quotes))
		confidences = make([]model.Confidence, len(quotes))
	)
	for i, q := range quotes {
		req := analysis.Ingredients[i]
		cost := req.QuantityGrams / 1000 * q.PricePerKg
		raw += cost
		costs[i] = model.IngredientCost{Requirement: req, Quote: q, Cost: cost}
		confidences[i] = q.Confidence
	}

	overheadRate := e.tables.OverheadFor(category)
	overhead := raw * overheadRate
	total := raw + overhead

	reasoning := fmt.Sprintf("priced %d ingredients, %.0f%% %s overhead", len(costs), overheadRate*100, category)
	if analysis.Rescaled {
		reasoning += "; quantities rescaled to pack weight"
	}

	return model.ManufacturingBreakdown{
		RawMaterialCost: raw,
		OverheadCost:    overhead,
		TotalCost:       total,
		CostPerGram:     perGram(total, weightGrams),
		Method:          model.MethodIngredientPricing,
		Reasoning:       reasoning,
		Confidence:      model.WorstConfidence(confidences),
		Ingredients:     costs,
	}
}

// aiCostEstimate is the structured single-shot answer.
type aiCostEstimate struct {
	RawMaterialCost float64 `json:"raw_material_cost"`
	TotalCost       float64 `json:"total_cost"`
}

// fromAI is the single-shot fallback when ingredient analysis is
// unavailable. Confidence is Medium at best: the figure is plausible but
// unverified.
func (e *Estimator) fromAI(ctx context.Context, description string, category model.Category, weightGrams float64) (model.ManufacturingBreakdown, bool) {
	if e.gen == nil || description == "" {
		return model.ManufacturingBreakdown{}, false
	}

	prompt := fmt.Sprintf(
		`Estimate the per-unit manufacturing cost in rupees for one %.0fg pack of this %s product: %q
Respond with JSON: {"raw_material_cost": <number>, "total_cost": <number>} where total includes factory overhead.`,
		weightGrams, category, description,
	)
	reply, err := e.gen.Generate(ctx, estimatorPersona, prompt)
	if err != nil {
		zap.L().Debug("manufacture: ai estimate failed, using category average", zap.Error(err))
		return model.ManufacturingBreakdown{}, false
	}

	payload, ok := textgen.ExtractJSON(reply)
	if !ok {
		return model.ManufacturingBreakdown{}, false
	}
	var est aiCostEstimate
	if err := json.Unmarshal([]byte(payload), &est); err != nil || est.TotalCost <= 0 {
		return model.ManufacturingBreakdown{}, false
	}

	raw := est.RawMaterialCost
	if raw <= 0 || raw > est.TotalCost {
		raw = est.TotalCost / (1 + e.tables.OverheadFor(category))
	}
	return model.ManufacturingBreakdown{
		RawMaterialCost: raw,
		OverheadCost:    est.TotalCost - raw,
		TotalCost:       est.TotalCost,
		CostPerGram:     perGram(est.TotalCost, weightGrams),
		Method:          model.MethodAIEstimate,
		Reasoning:       "single-shot AI manufacturing estimate (ingredient analysis unavailable)",
		Confidence:      model.ConfidenceMedium,
	}, true
}

// fromCategoryAverage is the deterministic last resort.
func (e *Estimator) fromCategoryAverage(category model.Category, weightGrams float64) model.ManufacturingBreakdown {
	coeff := e.tables.ManufacturingPerGramFor(category)
	raw := coeff * weightGrams * rawMaterialShare
	overheadRate := e.tables.OverheadFor(category)
	overhead := raw * overheadRate
	total := raw + overhead

	return model.ManufacturingBreakdown{
		RawMaterialCost: raw,
		OverheadCost:    overhead,
		TotalCost:       total,
		CostPerGram:     perGram(total, weightGrams),
		Method:          model.MethodCategoryAverage,
		Reasoning:       fmt.Sprintf("category benchmark: ₹%.2f/g x %.0fg x %.0f%% raw share, %.0f%% overhead", coeff, weightGrams, rawMaterialShare*100, overheadRate*100),
		Confidence:      model.ConfidenceLow,
	}
}

func perGram(total, weightGrams float64) float64 {
	if weightGrams <= 0 {
		return 0
	}
	return total / weightGrams
}
