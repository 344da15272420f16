// Package rates holds the static reference tables the unit-economics engine
// consults: manufacturing coefficients, packaging catalog, marketplace fee
// schedules, carrier rates, GST and return rates, and the fallback ingredient
// price database. Every lookup resolves through a declared default; a lookup
// never fails and never silently yields zero.
package rates

import (
	"strings"

	"github.com/sells-group/gonogo-cli/internal/model"
)

// Zone is a shipping distance class. Fees increase local < regional < national.
type Zone string

// Shipping zones.
const (
	ZoneLocal    Zone = "local"
	ZoneRegional Zone = "regional"
	ZoneNational Zone = "national"
)

// ParseZone maps input to a zone, defaulting to national (the conservative
// assumption for a seller without regional warehouses).
func ParseZone(s string) Zone {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local":
		return ZoneLocal
	case "regional", "zonal":
		return ZoneRegional
	default:
		return ZoneNational
	}
}

// PriceBracket is a fee tier selected by selling price. MaxPrice <= 0 marks
// the open-ended top bracket.
type PriceBracket struct {
	MaxPrice float64 `yaml:"max_price"`
	Fee      float64 `yaml:"fee"`
}

// WeightBracket is a fee tier selected by shipment weight in grams.
// MaxGrams <= 0 marks the open-ended top bracket.
type WeightBracket struct {
	MaxGrams float64 `yaml:"max_grams"`
	Fee      float64 `yaml:"fee"`
}

// FeeByPrice returns the fee of the first bracket whose MaxPrice covers the
// price. Brackets must be ordered ascending with an open-ended last entry.
func FeeByPrice(brackets []PriceBracket, price float64) float64 {
	for _, b := range brackets {
		if b.MaxPrice <= 0 || price <= b.MaxPrice {
			return b.Fee
		}
	}
	if len(brackets) == 0 {
		return 0
	}
	return brackets[len(brackets)-1].Fee
}

// FeeByWeight returns the fee of the first bracket whose MaxGrams covers the
// weight. Brackets must be ordered ascending with an open-ended last entry.
func FeeByWeight(brackets []WeightBracket, grams float64) float64 {
	for _, b := range brackets {
		if b.MaxGrams <= 0 || grams <= b.MaxGrams {
			return b.Fee
		}
	}
	if len(brackets) == 0 {
		return 0
	}
	return brackets[len(brackets)-1].Fee
}

// PackagingSKU is one selectable primary packaging option for a
// category/weight bracket.
type PackagingSKU struct {
	MaxGrams float64 `yaml:"max_grams"`
	Name     string  `yaml:"name"`
	Cost     float64 `yaml:"cost"`
}

// PackagingTable is the packaging catalog plus ancillary costs.
type PackagingTable struct {
	SKUs        map[model.Category][]PackagingSKU `yaml:"skus"`
	DefaultSKUs []PackagingSKU                    `yaml:"default_skus"`
	LabelCost   float64                           `yaml:"label_cost"`
	ClosureCost float64                           `yaml:"closure_cost"`
	// Outer shipping carton, shared across OuterCartonUnits units.
	OuterCartonCost  float64 `yaml:"outer_carton_cost"`
	OuterCartonUnits int     `yaml:"outer_carton_units"`
}

// Select picks the primary packaging SKU for a category and weight.
func (p PackagingTable) Select(cat model.Category, grams float64) PackagingSKU {
	skus, ok := p.SKUs[cat]
	if !ok || len(skus) == 0 {
		skus = p.DefaultSKUs
	}
	for _, s := range skus {
		if s.MaxGrams <= 0 || grams <= s.MaxGrams {
			return s
		}
	}
	return skus[len(skus)-1]
}

// AmazonTable is the Amazon-style marketplace fee schedule.
type AmazonTable struct {
	ReferralRate        map[string]float64       `yaml:"referral_rate"`
	DefaultReferralRate float64                  `yaml:"default_referral_rate"`
	ClosingFee          []PriceBracket           `yaml:"closing_fee"`
	WeightHandling      map[Zone][]WeightBracket `yaml:"weight_handling"`
}

// FlipkartTable is the Flipkart-style marketplace fee schedule.
type FlipkartTable struct {
	CommissionRate        map[string]float64       `yaml:"commission_rate"`
	DefaultCommissionRate float64                  `yaml:"default_commission_rate"`
	FixedFee              []PriceBracket           `yaml:"fixed_fee"`
	Shipping              map[Zone][]WeightBracket `yaml:"shipping"`
	CollectionRate        float64                  `yaml:"collection_rate"`
}

// QuickCommerceApp is one quick-commerce platform's flat fee structure.
// App-based platforms carry no listing fee; warehouse-style platforms charge
// a monthly listing fee amortized per unit by the fee calculator.
type QuickCommerceApp struct {
	Name              string  `yaml:"name"`
	CommissionRate    float64 `yaml:"commission_rate"`
	ReturnRate        float64 `yaml:"return_rate"`
	MonthlyListingFee float64 `yaml:"monthly_listing_fee"`
	Warehouse         bool    `yaml:"warehouse"`
}

// D2CTable covers direct-to-consumer storefront costs.
type D2CTable struct {
	GatewayRate       float64 `yaml:"gateway_rate"`
	StorefrontMonthly float64 `yaml:"storefront_monthly"`
}

// Carrier is one logistics carrier's rate card.
type Carrier struct {
	Name  string                   `yaml:"name"`
	Rates map[Zone][]WeightBracket `yaml:"rates"`
}

// Tables is the full set of reference data. All tables are treated as
// immutable after construction.
type Tables struct {
	ManufacturingPerGram        map[model.Category]float64 `yaml:"manufacturing_per_gram"`
	DefaultManufacturingPerGram float64                    `yaml:"default_manufacturing_per_gram"`

	OverheadRate        map[model.Category]float64 `yaml:"overhead_rate"`
	DefaultOverheadRate float64                    `yaml:"default_overhead_rate"`

	GSTRate        map[model.Category]float64 `yaml:"gst_rate"`
	DefaultGSTRate float64                    `yaml:"default_gst_rate"`

	ReturnRate        map[model.Category]float64 `yaml:"return_rate"`
	DefaultReturnRate float64                    `yaml:"default_return_rate"`

	Packaging PackagingTable `yaml:"packaging"`

	Amazon           AmazonTable                `yaml:"amazon"`
	Flipkart         FlipkartTable              `yaml:"flipkart"`
	QuickApps        []QuickCommerceApp         `yaml:"quick_apps"`
	D2C              D2CTable                   `yaml:"d2c"`
	FeeGSTRate       float64                    `yaml:"fee_gst_rate"`
	AmazonCategory   map[model.Category]string  `yaml:"amazon_category"`
	FlipkartCategory map[model.Category]string  `yaml:"flipkart_category"`

	Carriers []Carrier `yaml:"carriers"`

	IngredientPricePerKg        map[string]float64 `yaml:"ingredient_price_per_kg"`
	DefaultIngredientPricePerKg float64            `yaml:"default_ingredient_price_per_kg"`
}

// ManufacturingPerGramFor returns the per-gram manufacturing coefficient.
func (t *Tables) ManufacturingPerGramFor(cat model.Category) float64 {
	if v, ok := t.ManufacturingPerGram[cat]; ok {
		return v
	}
	return t.DefaultManufacturingPerGram
}

// OverheadFor returns the manufacturing overhead rate.
func (t *Tables) OverheadFor(cat model.Category) float64 {
	if v, ok := t.OverheadRate[cat]; ok {
		return v
	}
	return t.DefaultOverheadRate
}

// GSTFor returns the output GST rate for a category.
func (t *Tables) GSTFor(cat model.Category) float64 {
	if v, ok := t.GSTRate[cat]; ok {
		return v
	}
	return t.DefaultGSTRate
}

// ReturnRateFor returns the e-commerce return rate for a category. Quick
// commerce overrides this with the per-app rates.
func (t *Tables) ReturnRateFor(cat model.Category) float64 {
	if v, ok := t.ReturnRate[cat]; ok {
		return v
	}
	return t.DefaultReturnRate
}

// QuickCommerceReturnRate is the mean of the configured apps' return rates,
// used as the channel-level override in the aggregator.
func (t *Tables) QuickCommerceReturnRate() float64 {
	if len(t.QuickApps) == 0 {
		return t.DefaultReturnRate
	}
	sum := 0.0
	for _, app := range t.QuickApps {
		sum += app.ReturnRate
	}
	return sum / float64(len(t.QuickApps))
}

// AmazonCategoryFor maps a product category to Amazon's category taxonomy,
// falling back to "Everything Else".
func (t *Tables) AmazonCategoryFor(cat model.Category) string {
	if v, ok := t.AmazonCategory[cat]; ok {
		return v
	}
	return "Everything Else"
}

// FlipkartCategoryFor maps a product category to Flipkart's taxonomy,
// falling back to "Other".
func (t *Tables) FlipkartCategoryFor(cat model.Category) string {
	if v, ok := t.FlipkartCategory[cat]; ok {
		return v
	}
	return "Other"
}

// CheapestCarrier returns the lowest-cost carrier and its fee for a zone and
// weight. The cheapest available rate stands in as the representative
// logistics cost.
func (t *Tables) CheapestCarrier(zone Zone, grams float64) (string, float64) {
	best := ""
	bestFee := 0.0
	for _, c := range t.Carriers {
		brackets, ok := c.Rates[zone]
		if !ok {
			continue
		}
		fee := FeeByWeight(brackets, grams)
		if best == "" || fee < bestFee {
			best = c.Name
			bestFee = fee
		}
	}
	return best, bestFee
}

// IngredientPrice looks up the static per-kilogram price for an ingredient
// name. The bool reports whether the name (or a containing key) was known;
// callers use the hard default when it is not.
func (t *Tables) IngredientPrice(name string) (float64, bool) {
	key := NormalizeIngredient(name)
	if key == "" {
		return 0, false
	}
	if v, ok := t.IngredientPricePerKg[key]; ok {
		return v, true
	}
	// Tolerate qualifiers like "organic jaggery powder" by substring match.
	for k, v := range t.IngredientPricePerKg {
		if strings.Contains(key, k) {
			return v, true
		}
	}
	return 0, false
}

// NormalizeIngredient lowercases and strips punctuation so that analyzer
// output and database keys compare equal.
func NormalizeIngredient(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.NewReplacer("(", " ", ")", " ", ",", " ", ".", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
