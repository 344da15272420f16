package model

import "time"

// CostComponent is one line of the cost waterfall.
type CostComponent struct {
	Label          string  `json:"label"`
	Amount         float64 `json:"amount"`
	PercentOfPrice float64 `json:"percent_of_price"`
}

// Manufacturing estimation methods, from most to least grounded.
const (
	MethodIngredientPricing = "ingredient_pricing"
	MethodAIEstimate        = "ai_estimate"
	MethodCategoryAverage   = "category_average"
)

// ManufacturingBreakdown itemizes raw material and overhead costs. Method and
// Reasoning identify which estimation path produced the figures; the
// downstream confidence indicators depend on them.
type ManufacturingBreakdown struct {
	RawMaterialCost float64          `json:"raw_material_cost"`
	OverheadCost    float64          `json:"overhead_cost"`
	TotalCost       float64          `json:"total_cost"`
	CostPerGram     float64          `json:"cost_per_gram"`
	Method          string           `json:"method"`
	Reasoning       string           `json:"reasoning"`
	Confidence      Confidence       `json:"confidence"`
	Ingredients     []IngredientCost `json:"ingredients,omitempty"`
}

// PackagingBreakdown itemizes primary packaging, label, closure and the
// amortized share of the outer shipping carton.
type PackagingBreakdown struct {
	PackagingType string  `json:"packaging_type"`
	PrimaryCost   float64 `json:"primary_cost"`
	LabelCost     float64 `json:"label_cost"`
	ClosureCost   float64 `json:"closure_cost"`
	SecondaryCost float64 `json:"secondary_cost"`
	TotalCost     float64 `json:"total_cost"`
}

// PlatformFee is the fee stack for a single marketplace.
type PlatformFee struct {
	Platform      string  `json:"platform"`
	Commission    float64 `json:"commission"`
	FixedFee      float64 `json:"fixed_fee"`
	ShippingFee   float64 `json:"shipping_fee"`
	CollectionFee float64 `json:"collection_fee,omitempty"`
	ListingFee    float64 `json:"listing_fee,omitempty"`
	GSTOnFees     float64 `json:"gst_on_fees"`
	Total         float64 `json:"total"`
}

// FeeBreakdown holds every platform computed for a channel plus the
// effective (averaged) figure that feeds the cost waterfall.
type FeeBreakdown struct {
	Channel   Channel       `json:"channel"`
	Platforms []PlatformFee `json:"platforms"`
	Effective float64       `json:"effective"`
	Reasoning string        `json:"reasoning,omitempty"`
}

// BreakevenEstimate reports monthly units needed to cover fixed cost.
// Achievable is false when net margin is zero or negative; UnitsPerMonth is
// meaningless in that case and must not be read as zero units.
type BreakevenEstimate struct {
	UnitsPerMonth    float64 `json:"units_per_month,omitempty"`
	Achievable       bool    `json:"achievable"`
	FixedMonthlyCost float64 `json:"fixed_monthly_cost"`
}

// UnitEconomicsReport is the aggregate result of one product evaluation.
// It is computed fresh per request and never mutated after being returned.
type UnitEconomicsReport struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	Category    Category `json:"category"`
	Channel     Channel  `json:"channel"`
	WeightGrams float64  `json:"weight_grams"`
	Price       float64  `json:"price"`

	Manufacturing ManufacturingBreakdown `json:"manufacturing"`
	Packaging     PackagingBreakdown     `json:"packaging"`
	PlatformFees  FeeBreakdown           `json:"platform_fees"`

	Waterfall    []CostComponent `json:"waterfall"`
	TotalCost    float64         `json:"total_cost"`
	GSTLiability float64         `json:"gst_liability"`

	NetMargin          float64           `json:"net_margin"`
	MarginPct          float64           `json:"margin_pct"`
	ContributionMargin float64           `json:"contribution_margin"`
	Breakeven          BreakevenEstimate `json:"breakeven"`

	ChannelRecommendation string     `json:"channel_recommendation"`
	Confidence            Confidence `json:"confidence"`
	Verdict               Verdict    `json:"verdict"`
}
