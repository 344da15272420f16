// Package model defines the domain types shared across the unit-economics engine.
package model

import "strings"

// Category is a product category from the fixed evaluation set.
type Category string

// Known product categories. Unknown inputs map to CategoryOther.
const (
	CategorySnacks       Category = "Packaged Snacks"
	CategoryPersonalCare Category = "Personal Care"
	CategorySupplements  Category = "Supplements"
	CategoryBeverages    Category = "Beverages"
	CategoryHomeCare     Category = "Home Care"
	CategoryBaby         Category = "Baby Products"
	CategoryPetFood      Category = "Pet Food"
	CategoryOther        Category = "Other"
)

// Categories returns every declared category, CategoryOther last.
func Categories() []Category {
	return []Category{
		CategorySnacks,
		CategoryPersonalCare,
		CategorySupplements,
		CategoryBeverages,
		CategoryHomeCare,
		CategoryBaby,
		CategoryPetFood,
		CategoryOther,
	}
}

// ParseCategory maps free-form input to a declared category, defaulting to
// CategoryOther. Matching is case-insensitive and tolerant of partial names.
func ParseCategory(s string) Category {
	needle := strings.ToLower(strings.TrimSpace(s))
	switch {
	case needle == "":
		return CategoryOther
	case strings.Contains(needle, "snack"):
		return CategorySnacks
	case strings.Contains(needle, "personal"), strings.Contains(needle, "care") && strings.Contains(needle, "skin"):
		return CategoryPersonalCare
	case strings.Contains(needle, "supplement"), strings.Contains(needle, "nutra"):
		return CategorySupplements
	case strings.Contains(needle, "beverage"), strings.Contains(needle, "drink"):
		return CategoryBeverages
	case strings.Contains(needle, "home"):
		return CategoryHomeCare
	case strings.Contains(needle, "baby"):
		return CategoryBaby
	case strings.Contains(needle, "pet"):
		return CategoryPetFood
	}
	for _, c := range Categories() {
		if strings.EqualFold(string(c), needle) {
			return c
		}
	}
	return CategoryOther
}

// Channel is the sales channel a product is evaluated against.
type Channel string

// Supported sales channels.
const (
	ChannelEcommerce     Channel = "E-commerce"
	ChannelQuickCommerce Channel = "Quick Commerce"
	ChannelD2C           Channel = "D2C"
)

// Channels returns every supported channel.
func Channels() []Channel {
	return []Channel{ChannelEcommerce, ChannelQuickCommerce, ChannelD2C}
}

// ParseChannel maps free-form input to a channel, defaulting to e-commerce.
func ParseChannel(s string) Channel {
	needle := strings.ToLower(strings.TrimSpace(s))
	needle = strings.NewReplacer("-", "", "_", "", " ", "").Replace(needle)
	switch needle {
	case "quickcommerce", "qcommerce", "qcom", "quick":
		return ChannelQuickCommerce
	case "d2c", "dtc", "direct", "website":
		return ChannelD2C
	default:
		return ChannelEcommerce
	}
}
