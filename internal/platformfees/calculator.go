// Package platformfees computes marketplace fee stacks: bracket-based
// Amazon- and Flipkart-style schedules, flat quick-commerce commissions per
// app, and D2C gateway costs. The math is entirely deterministic; GST on
// marketplace fees is charged on the summed fees, not on the selling price.
package platformfees

import (
	"fmt"

	"github.com/sells-group/gonogo-cli/internal/model"
	"github.com/sells-group/gonogo-cli/internal/rates"
)

// Calculator computes fee breakdowns from the rate tables.
type Calculator struct {
	tables *rates.Tables
	// Monthly fixed platform fees (warehouse listing, storefront
	// subscription) are amortized over this assumed unit volume.
	assumedMonthlyUnits float64
}

// NewCalculator creates a Calculator. assumedMonthlyUnits must be positive;
// it defaults to 500 when it is not.
func NewCalculator(tables *rates.Tables, assumedMonthlyUnits float64) *Calculator {
	if assumedMonthlyUnits <= 0 {
		assumedMonthlyUnits = 500
	}
	return &Calculator{tables: tables, assumedMonthlyUnits: assumedMonthlyUnits}
}

// Fees computes the fee breakdown for a channel. For e-commerce both Amazon
// and Flipkart stacks are computed and exposed; the effective figure is
// their average. For quick commerce the effective figure averages every
// configured app. The unmapped-category case is covered inside the per-
// platform calculators via the declared "Other" rates.
func (c *Calculator) Fees(price, weightGrams float64, category model.Category, channel model.Channel, zone rates.Zone) model.FeeBreakdown {
	switch channel {
	case model.ChannelQuickCommerce:
		platforms := c.QuickCommerce(price)
		return model.FeeBreakdown{
			Channel:   channel,
			Platforms: platforms,
			Effective: averageTotal(platforms),
			Reasoning: fmt.Sprintf("average of %d quick-commerce apps", len(platforms)),
		}
	case model.ChannelD2C:
		fee := c.D2C(price)
		return model.FeeBreakdown{
			Channel:   channel,
			Platforms: []model.PlatformFee{fee},
			Effective: fee.Total,
			Reasoning: "payment gateway plus amortized storefront subscription",
		}
	default:
		platforms := []model.PlatformFee{
			c.Amazon(price, weightGrams, category, zone),
			c.Flipkart(price, weightGrams, category, zone),
		}
		return model.FeeBreakdown{
			Channel:   model.ChannelEcommerce,
			Platforms: platforms,
			Effective: averageTotal(platforms),
			Reasoning: "average of Amazon and Flipkart fee stacks",
		}
	}
}

// Amazon computes the Amazon-style stack: referral percentage by mapped
// category, closing fee by price bracket, weight handling by weight bracket
// within the shipping zone, and GST on the fee sum.
func (c *Calculator) Amazon(price, weightGrams float64, category model.Category, zone rates.Zone) model.PlatformFee {
	t := c.tables.Amazon
	mapped := c.tables.AmazonCategoryFor(category)
	rate, ok := t.ReferralRate[mapped]
	if !ok {
		rate = t.DefaultReferralRate
	}

	referral := price * rate
	closing := rates.FeeByPrice(t.ClosingFee, price)
	handling := rates.FeeByWeight(t.WeightHandling[zone], weightGrams)

	sum := referral + closing + handling
	gst := sum * c.tables.FeeGSTRate
	return model.PlatformFee{
		Platform:    "Amazon",
		Commission:  referral,
		FixedFee:    closing,
		ShippingFee: handling,
		GSTOnFees:   gst,
		Total:       sum + gst,
	}
}

// Flipkart computes the Flipkart-style stack: commission by mapped category,
// fixed fee by price bracket, shipping by weight and zone, a flat
// collection-fee percentage of price, and GST on the fee sum.
func (c *Calculator) Flipkart(price, weightGrams float64, category model.Category, zone rates.Zone) model.PlatformFee {
	t := c.tables.Flipkart
	mapped := c.tables.FlipkartCategoryFor(category)
	rate, ok := t.CommissionRate[mapped]
	if !ok {
		rate = t.DefaultCommissionRate
	}

	commission := price * rate
	fixed := rates.FeeByPrice(t.FixedFee, price)
	shipping := rates.FeeByWeight(t.Shipping[zone], weightGrams)
	collection := price * t.CollectionRate

	sum := commission + fixed + shipping + collection
	gst := sum * c.tables.FeeGSTRate
	return model.PlatformFee{
		Platform:      "Flipkart",
		Commission:    commission,
		FixedFee:      fixed,
		ShippingFee:   shipping,
		CollectionFee: collection,
		GSTOnFees:     gst,
		Total:         sum + gst,
	}
}

// QuickCommerce computes each configured app's flat commission against MRP.
// App-based platforms carry no listing fee; warehouse-style platforms
// amortize their monthly listing fee over the assumed unit volume.
func (c *Calculator) QuickCommerce(price float64) []model.PlatformFee {
	apps := c.tables.QuickApps
	fees := make([]model.PlatformFee, len(apps))
	for i, app := range apps {
		commission := price * app.CommissionRate
		listing := 0.0
		if app.Warehouse && app.MonthlyListingFee > 0 {
			listing = app.MonthlyListingFee / c.assumedMonthlyUnits
		}
		sum := commission + listing
		gst := sum * c.tables.FeeGSTRate
		fees[i] = model.PlatformFee{
			Platform:   app.Name,
			Commission: commission,
			ListingFee: listing,
			GSTOnFees:  gst,
			Total:      sum + gst,
		}
	}
	return fees
}

// D2C computes the direct channel stack: payment gateway percentage plus the
// storefront subscription amortized per unit.
func (c *Calculator) D2C(price float64) model.PlatformFee {
	t := c.tables.D2C
	gateway := price * t.GatewayRate
	storefront := t.StorefrontMonthly / c.assumedMonthlyUnits
	sum := gateway + storefront
	gst := sum * c.tables.FeeGSTRate
	return model.PlatformFee{
		Platform:   "D2C storefront",
		Commission: gateway,
		ListingFee: storefront,
		GSTOnFees:  gst,
		Total:      sum + gst,
	}
}

func averageTotal(fees []model.PlatformFee) float64 {
	if len(fees) == 0 {
		return 0
	}
	sum := 0.0
	for _, f := range fees {
		sum += f.Total
	}
	return sum / float64(len(fees))
}
