// Package packaging computes deterministic per-unit packaging cost: a
// primary SKU selected by category and weight bracket, fixed label and
// closure costs, and an amortized share of the outer shipping carton. All
// inputs are local table lookups, so estimation cannot fail.
package packaging

import (
	"github.com/sells-group/gonogo-cli/internal/model"
	"github.com/sells-group/gonogo-cli/internal/rates"
)

// Estimator selects packaging and sums its cost.
type Estimator struct {
	tables *rates.Tables
}

// NewEstimator creates an Estimator over the given tables.
func NewEstimator(tables *rates.Tables) *Estimator {
	return &Estimator{tables: tables}
}

// Estimate computes the packaging breakdown. An empty packagingType selects
// the catalog SKU for the category and weight; a non-empty override keeps
// the caller's type name with the bracket cost for a named catalog SKU when
// one matches, else the bracket default.
func (e *Estimator) Estimate(weightGrams float64, category model.Category, packagingType string) model.PackagingBreakdown {
	cat := e.tables.Packaging
	sku := cat.Select(category, weightGrams)

	name := sku.Name
	cost := sku.Cost
	if packagingType != "" {
		name = packagingType
		if named, ok := findSKU(cat, category, packagingType); ok {
			cost = named.Cost
		}
	}

	secondary := 0.0
	if cat.OuterCartonUnits > 0 {
		secondary = cat.OuterCartonCost / float64(cat.OuterCartonUnits)
	}

	return model.PackagingBreakdown{
		PackagingType: name,
		PrimaryCost:   cost,
		LabelCost:     cat.LabelCost,
		ClosureCost:   cat.ClosureCost,
		SecondaryCost: secondary,
		TotalCost:     cost + cat.LabelCost + cat.ClosureCost + secondary,
	}
}

// findSKU looks for a catalog SKU by name within a category (then the
// default catalog), so overrides like "large pouch" price correctly.
func findSKU(cat rates.PackagingTable, category model.Category, name string) (rates.PackagingSKU, bool) {
	for _, s := range cat.SKUs[category] {
		if s.Name == name {
			return s, true
		}
	}
	for _, s := range cat.DefaultSKUs {
		if s.Name == name {
			return s, true
		}
	}
	return rates.PackagingSKU{}, false
}
