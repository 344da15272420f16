package model

// PriceSource identifies where an ingredient price came from, ordered from
// most to least trustworthy.
type PriceSource string

// Price provenance tiers, in resolution order.
const (
	SourceB2B        PriceSource = "scraped_b2b"
	SourceSearch     PriceSource = "scraped_search"
	SourceAIEstimate PriceSource = "ai_estimate"
	SourceDatabase   PriceSource = "database_fallback"
	SourceDefault    PriceSource = "hard_default"
)

// Confidence is the provenance-derived reliability label attached to an
// estimated numeric input.
type Confidence string

// Confidence levels.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// rank orders confidences; higher is better. Unknown values rank lowest.
func (c Confidence) rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	}
	return 0
}

// Cap returns c lowered to at most max.
func (c Confidence) Cap(max Confidence) Confidence {
	if c.rank() > max.rank() {
		return max
	}
	if c.rank() == 0 {
		return ConfidenceLow
	}
	return c
}

// WorstConfidence returns the lowest confidence in the list, or
// ConfidenceLow for an empty list.
func WorstConfidence(cs []Confidence) Confidence {
	if len(cs) == 0 {
		return ConfidenceLow
	}
	worst := cs[0]
	for _, c := range cs[1:] {
		if c.rank() < worst.rank() {
			worst = c
		}
	}
	if worst.rank() == 0 {
		return ConfidenceLow
	}
	return worst
}

// PriceQuote is a per-kilogram ingredient price with its provenance.
// PricePerKg is always positive; the resolver's final tier guarantees a
// quote for any ingredient name.
type PriceQuote struct {
	Ingredient string      `json:"ingredient"`
	PricePerKg float64     `json:"price_per_kg"`
	Source     PriceSource `json:"source"`
	Confidence Confidence  `json:"confidence"`
	Listings   int         `json:"listings,omitempty"`
	Reasoning  string      `json:"reasoning,omitempty"`
}

// IngredientRequirement is one ingredient of a recipe as produced by the
// analyzer. Quantities should sum to at least the finished pack weight
// (process loss), but the analyzer output is advisory, not enforced.
type IngredientRequirement struct {
	Name          string  `json:"name"`
	QuantityGrams float64 `json:"quantity_grams"`
	Purpose       string  `json:"purpose,omitempty"`
}

// IngredientCost pairs a requirement with its resolved quote and the
// resulting cost for the required quantity.
type IngredientCost struct {
	Requirement IngredientRequirement `json:"requirement"`
	Quote       PriceQuote            `json:"quote"`
	Cost        float64               `json:"cost"`
}
