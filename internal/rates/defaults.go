package rates

import "github.com/sells-group/gonogo-cli/internal/model"

// Default returns the built-in reference tables. Values are benchmark
// assumptions for Indian D2C food and FMCG products circa FY2025 marketplace
// rate cards; overrides come in through configuration.
func Default() *Tables {
	return &Tables{
		ManufacturingPerGram: map[model.Category]float64{
			model.CategorySnacks:       0.15,
			model.CategoryPersonalCare: 0.25,
			model.CategorySupplements:  0.50,
			model.CategoryBeverages:    0.10,
			model.CategoryHomeCare:     0.12,
			model.CategoryBaby:         0.35,
			model.CategoryPetFood:      0.18,
		},
		DefaultManufacturingPerGram: 0.20,

		OverheadRate: map[model.Category]float64{
			model.CategorySnacks:       0.20,
			model.CategoryPersonalCare: 0.22,
			model.CategorySupplements:  0.25,
			model.CategoryBeverages:    0.18,
			model.CategoryHomeCare:     0.18,
			model.CategoryBaby:         0.22,
			model.CategoryPetFood:      0.20,
		},
		DefaultOverheadRate: 0.20,

		GSTRate: map[model.Category]float64{
			model.CategorySnacks:       0.12,
			model.CategoryPersonalCare: 0.18,
			model.CategorySupplements:  0.18,
			model.CategoryBeverages:    0.18,
			model.CategoryHomeCare:     0.18,
			model.CategoryBaby:         0.12,
			model.CategoryPetFood:      0.18,
		},
		DefaultGSTRate: 0.18,

		ReturnRate: map[model.Category]float64{
			model.CategorySnacks:       0.08,
			model.CategoryPersonalCare: 0.12,
			model.CategorySupplements:  0.06,
			model.CategoryBeverages:    0.05,
			model.CategoryHomeCare:     0.06,
			model.CategoryBaby:         0.10,
			model.CategoryPetFood:      0.07,
		},
		DefaultReturnRate: 0.08,

		Packaging: PackagingTable{
			SKUs: map[model.Category][]PackagingSKU{
				model.CategorySnacks: {
					{MaxGrams: 100, Name: "small pouch", Cost: 4.0},
					{MaxGrams: 250, Name: "medium pouch", Cost: 5.5},
					{MaxGrams: 500, Name: "large pouch", Cost: 7.5},
					{Name: "family pack pouch", Cost: 10.0},
				},
				model.CategoryBeverages: {
					{MaxGrams: 250, Name: "tetra pack", Cost: 8.0},
					{MaxGrams: 500, Name: "PET bottle", Cost: 9.5},
					{Name: "large PET bottle", Cost: 12.0},
				},
				model.CategorySupplements: {
					{MaxGrams: 150, Name: "HDPE jar", Cost: 11.0},
					{MaxGrams: 400, Name: "large jar", Cost: 16.0},
					{Name: "tub", Cost: 22.0},
				},
				model.CategoryPersonalCare: {
					{MaxGrams: 100, Name: "tube", Cost: 9.0},
					{MaxGrams: 250, Name: "pump bottle", Cost: 14.0},
					{Name: "large bottle", Cost: 18.0},
				},
				model.CategoryHomeCare: {
					{MaxGrams: 500, Name: "flexi pack", Cost: 7.0},
					{Name: "bottle", Cost: 11.0},
				},
				model.CategoryBaby: {
					{MaxGrams: 250, Name: "spouted pouch", Cost: 12.0},
					{Name: "jar", Cost: 16.0},
				},
				model.CategoryPetFood: {
					{MaxGrams: 500, Name: "pouch", Cost: 8.0},
					{Name: "bag", Cost: 13.0},
				},
			},
			DefaultSKUs: []PackagingSKU{
				{MaxGrams: 100, Name: "small pouch", Cost: 5.0},
				{MaxGrams: 250, Name: "medium pouch", Cost: 7.0},
				{MaxGrams: 500, Name: "bottle", Cost: 9.0},
				{Name: "box", Cost: 12.0},
			},
			LabelCost:        1.2,
			ClosureCost:      0.8,
			OuterCartonCost:  3.0,
			OuterCartonUnits: 6,
		},

		Amazon: AmazonTable{
			ReferralRate: map[string]float64{
				"Grocery & Gourmet":      0.08,
				"Health & Personal Care": 0.12,
				"Beauty":                 0.135,
				"Home & Kitchen":         0.115,
				"Baby Products":          0.09,
				"Pet Supplies":           0.125,
				"Everything Else":        0.15,
			},
			DefaultReferralRate: 0.15,
			ClosingFee: []PriceBracket{
				{MaxPrice: 300, Fee: 26},
				{MaxPrice: 500, Fee: 21},
				{MaxPrice: 1000, Fee: 26},
				{Fee: 51},
			},
			WeightHandling: map[Zone][]WeightBracket{
				ZoneLocal: {
					{MaxGrams: 500, Fee: 43},
					{MaxGrams: 1000, Fee: 48},
					{MaxGrams: 2000, Fee: 59},
					{Fee: 77},
				},
				ZoneRegional: {
					{MaxGrams: 500, Fee: 51},
					{MaxGrams: 1000, Fee: 58},
					{MaxGrams: 2000, Fee: 72},
					{Fee: 95},
				},
				ZoneNational: {
					{MaxGrams: 500, Fee: 76},
					{MaxGrams: 1000, Fee: 85},
					{MaxGrams: 2000, Fee: 104},
					{Fee: 136},
				},
			},
		},

		Flipkart: FlipkartTable{
			CommissionRate: map[string]float64{
				"Grocery":                0.05,
				"Health & Nutrition":     0.11,
				"Beauty & Personal Care": 0.10,
				"Home & Cleaning":        0.09,
				"Baby Care":              0.08,
				"Pet Supplies":           0.10,
				"Other":                  0.12,
			},
			DefaultCommissionRate: 0.12,
			FixedFee: []PriceBracket{
				{MaxPrice: 300, Fee: 15},
				{MaxPrice: 500, Fee: 20},
				{MaxPrice: 1000, Fee: 35},
				{Fee: 50},
			},
			Shipping: map[Zone][]WeightBracket{
				ZoneLocal: {
					{MaxGrams: 500, Fee: 35},
					{MaxGrams: 1000, Fee: 41},
					{MaxGrams: 2000, Fee: 53},
					{Fee: 69},
				},
				ZoneRegional: {
					{MaxGrams: 500, Fee: 41},
					{MaxGrams: 1000, Fee: 49},
					{MaxGrams: 2000, Fee: 63},
					{Fee: 83},
				},
				ZoneNational: {
					{MaxGrams: 500, Fee: 55},
					{MaxGrams: 1000, Fee: 65},
					{MaxGrams: 2000, Fee: 82},
					{Fee: 108},
				},
			},
			CollectionRate: 0.02,
		},

		QuickApps: []QuickCommerceApp{
			{Name: "Blinkit", CommissionRate: 0.22, ReturnRate: 0.02},
			{Name: "Zepto", CommissionRate: 0.23, ReturnRate: 0.02},
			{Name: "Swiggy Instamart", CommissionRate: 0.21, ReturnRate: 0.025},
			{Name: "BigBasket", CommissionRate: 0.18, ReturnRate: 0.02, MonthlyListingFee: 2000, Warehouse: true},
		},

		D2C: D2CTable{
			GatewayRate:       0.02,
			StorefrontMonthly: 1999,
		},

		FeeGSTRate: 0.18,

		AmazonCategory: map[model.Category]string{
			model.CategorySnacks:       "Grocery & Gourmet",
			model.CategoryBeverages:    "Grocery & Gourmet",
			model.CategorySupplements:  "Health & Personal Care",
			model.CategoryPersonalCare: "Beauty",
			model.CategoryHomeCare:     "Home & Kitchen",
			model.CategoryBaby:         "Baby Products",
			model.CategoryPetFood:      "Pet Supplies",
			model.CategoryOther:        "Everything Else",
		},
		FlipkartCategory: map[model.Category]string{
			model.CategorySnacks:       "Grocery",
			model.CategoryBeverages:    "Grocery",
			model.CategorySupplements:  "Health & Nutrition",
			model.CategoryPersonalCare: "Beauty & Personal Care",
			model.CategoryHomeCare:     "Home & Cleaning",
			model.CategoryBaby:         "Baby Care",
			model.CategoryPetFood:      "Pet Supplies",
			model.CategoryOther:        "Other",
		},

		Carriers: []Carrier{
			{
				Name: "Delhivery",
				Rates: map[Zone][]WeightBracket{
					ZoneLocal:    {{MaxGrams: 500, Fee: 38}, {MaxGrams: 1000, Fee: 45}, {MaxGrams: 2000, Fee: 56}, {Fee: 74}},
					ZoneRegional: {{MaxGrams: 500, Fee: 46}, {MaxGrams: 1000, Fee: 54}, {MaxGrams: 2000, Fee: 68}, {Fee: 88}},
					ZoneNational: {{MaxGrams: 500, Fee: 58}, {MaxGrams: 1000, Fee: 68}, {MaxGrams: 2000, Fee: 84}, {Fee: 110}},
				},
			},
			{
				Name: "Ekart",
				Rates: map[Zone][]WeightBracket{
					ZoneLocal:    {{MaxGrams: 500, Fee: 36}, {MaxGrams: 1000, Fee: 44}, {MaxGrams: 2000, Fee: 57}, {Fee: 76}},
					ZoneRegional: {{MaxGrams: 500, Fee: 48}, {MaxGrams: 1000, Fee: 57}, {MaxGrams: 2000, Fee: 70}, {Fee: 92}},
					ZoneNational: {{MaxGrams: 500, Fee: 62}, {MaxGrams: 1000, Fee: 72}, {MaxGrams: 2000, Fee: 88}, {Fee: 115}},
				},
			},
			{
				Name: "XpressBees",
				Rates: map[Zone][]WeightBracket{
					ZoneLocal:    {{MaxGrams: 500, Fee: 35}, {MaxGrams: 1000, Fee: 42}, {MaxGrams: 2000, Fee: 54}, {Fee: 72}},
					ZoneRegional: {{MaxGrams: 500, Fee: 45}, {MaxGrams: 1000, Fee: 52}, {MaxGrams: 2000, Fee: 66}, {Fee: 86}},
					ZoneNational: {{MaxGrams: 500, Fee: 45}, {MaxGrams: 1000, Fee: 55}, {MaxGrams: 2000, Fee: 70}, {Fee: 95}},
				},
			},
		},

		IngredientPricePerKg: map[string]float64{
			"wheat flour":     40,
			"rice":            55,
			"rice flour":      60,
			"sugar":           45,
			"jaggery":         60,
			"salt":            20,
			"peanuts":         120,
			"almonds":         700,
			"cashews":         800,
			"oats":            90,
			"ragi":            55,
			"millet":          70,
			"ghee":            550,
			"butter":          450,
			"milk powder":     320,
			"cocoa powder":    350,
			"chocolate":       400,
			"honey":           300,
			"coconut oil":     250,
			"sunflower oil":   140,
			"palm oil":        110,
			"whey protein":    900,
			"pea protein":     650,
			"ashwagandha":     600,
			"turmeric":        180,
			"cardamom":        3000,
			"cinnamon":        400,
			"raisins":         250,
			"dates":           200,
			"sesame seeds":    160,
			"flax seeds":      120,
			"chia seeds":      350,
			"quinoa":          250,
			"gram flour":      80,
			"lentils":         110,
			"tea":             350,
			"coffee":          500,
			"citric acid":     140,
			"natural flavour": 800,
		},
		DefaultIngredientPricePerKg: 150,
	}
}
