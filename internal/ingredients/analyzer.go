// Package ingredients turns a free-text product description into a
// structured ingredient list via the text-generation capability. The
// generator is an unreliable collaborator: any parse failure is reported as
// "analysis unavailable" (a nil result), never as an error, and callers fall
// back to category-average costing.
package ingredients

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/gonogo-cli/internal/model"
	"github.com/sells-group/gonogo-cli/internal/pricefeed"
	"github.com/sells-group/gonogo-cli/pkg/textgen"
)

const analyzerPersona = "You are a food technologist who reverse-engineers consumer product recipes. Answer only with the JSON requested."

// Mass sanity band: analyzer quantity totals within [0.8, 2.0] times the pack
// weight are accepted as-is (process loss explains totals above 1x). Totals
// outside the band are rescaled to rescaleTarget times pack weight.
const (
	massLowerFactor = 0.8
	massUpperFactor = 2.0
	rescaleTarget   = 1.1
)

// Analysis is a successfully parsed ingredient list. Rescaled reports
// whether the quantities were proportionally corrected against the pack
// weight; the manufacturing estimator surfaces this in its reasoning.
type Analysis struct {
	Ingredients []model.IngredientRequirement
	Rescaled    bool
}

// Analyzer extracts ingredient requirements from product descriptions.
type Analyzer struct {
	gen textgen.Generator
}

// NewAnalyzer creates an Analyzer. A nil generator yields an analyzer whose
// Analyze always reports unavailable.
func NewAnalyzer(gen textgen.Generator) *Analyzer {
	return &Analyzer{gen: gen}
}

// rawIngredient tolerates the field-name drift generators produce.
type rawIngredient struct {
	Name          string  `json:"name"`
	QuantityGrams float64 `json:"quantity_grams"`
	Grams         float64 `json:"grams"`
	Purpose       string  `json:"purpose"`
}

// Analyze returns the structured ingredient list for a description, or nil
// when analysis is unavailable (no generator, generation failure, or
// unparseable output). Callers must treat nil as "use the category-average
// fallback", not as an error.
func (a *Analyzer) Analyze(ctx context.Context, description string, category model.Category, targetWeightGrams float64) *Analysis {
	if a.gen == nil || strings.TrimSpace(description) == "" {
		return nil
	}

	prompt := fmt.Sprintf(
		`Break this %s product into its likely ingredient list for one %.0fg pack. Product: %q
Respond with JSON: [{"name": "...", "quantity_grams": <number>, "purpose": "..."}]
Quantities should cover the full pack weight including process loss. At most %d ingredients.`,
		category, targetWeightGrams, description, pricefeed.MaxIngredients,
	)

	reply, err := a.gen.Generate(ctx, analyzerPersona, prompt)
	if err != nil {
		zap.L().Debug("ingredients: analysis failed, falling back to category average",
			zap.String("category", string(category)),
			zap.Error(err),
		)
		return nil
	}

	payload, ok := textgen.ExtractJSON(reply)
	if !ok {
		zap.L().Debug("ingredients: no JSON payload in analyzer reply")
		return nil
	}

	var raw []rawIngredient
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		// Some generators wrap the list in an object.
		var wrapped struct {
			Ingredients []rawIngredient `json:"ingredients"`
		}
		if err := json.Unmarshal([]byte(payload), &wrapped); err != nil {
			zap.L().Debug("ingredients: unparseable analyzer reply", zap.Error(err))
			return nil
		}
		raw = wrapped.Ingredients
	}

	var reqs []model.IngredientRequirement
	for _, r := range raw {
		qty := r.QuantityGrams
		if qty <= 0 {
			qty = r.Grams
		}
		name := strings.TrimSpace(r.Name)
		if name == "" || qty <= 0 {
			continue
		}
		reqs = append(reqs, model.IngredientRequirement{
			Name:          name,
			QuantityGrams: qty,
			Purpose:       strings.TrimSpace(r.Purpose),
		})
		if len(reqs) == pricefeed.MaxIngredients {
			break
		}
	}
	if len(reqs) == 0 {
		return nil
	}

	return sanitize(reqs, targetWeightGrams)
}

// sanitize bounds the total ingredient mass against the pack weight. Without
// this, an implausible analyzer response (e.g. quantities summing to 10x the
// pack) silently inflates the manufacturing cost.
func sanitize(reqs []model.IngredientRequirement, targetWeightGrams float64) *Analysis {
	if targetWeightGrams <= 0 {
		return &Analysis{Ingredients: reqs}
	}
	total := 0.0
	for _, r := range reqs {
		total += r.QuantityGrams
	}
	if total >= targetWeightGrams*massLowerFactor && total <= targetWeightGrams*massUpperFactor {
		return &Analysis{Ingredients: reqs}
	}

	factor := targetWeightGrams * rescaleTarget / total
	scaled := make([]model.IngredientRequirement, len(reqs))
	for i, r := range reqs {
		r.QuantityGrams *= factor
		scaled[i] = r
	}
	zap.L().Debug("ingredients: quantities rescaled to pack weight",
		zap.Float64("reported_total_g", total),
		zap.Float64("target_g", targetWeightGrams),
	)
	return &Analysis{Ingredients: scaled, Rescaled: true}
}
