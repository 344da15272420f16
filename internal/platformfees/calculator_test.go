package platformfees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/gonogo-cli/internal/model"
	"github.com/sells-group/gonogo-cli/internal/rates"
)

func TestCalculator_Amazon(t *testing.T) {
	t.Parallel()
	c := NewCalculator(rates.Default(), 500)

	// Snacks @ ₹250, 200g, national: 8% referral = 20, closing 26, handling 76.
	fee := c.Amazon(250, 200, model.CategorySnacks, rates.ZoneNational)

	assert.Equal(t, "Amazon", fee.Platform)
	assert.InDelta(t, 20.0, fee.Commission, 1e-9)
	assert.Equal(t, 26.0, fee.FixedFee)
	assert.Equal(t, 76.0, fee.ShippingFee)
	assert.InDelta(t, 122*0.18, fee.GSTOnFees, 1e-9)
	assert.InDelta(t, 122*1.18, fee.Total, 1e-9)
}

func TestCalculator_Amazon_ZoneAndBracketShifts(t *testing.T) {
	t.Parallel()
	c := NewCalculator(rates.Default(), 500)

	local := c.Amazon(250, 200, model.CategorySnacks, rates.ZoneLocal)
	national := c.Amazon(250, 200, model.CategorySnacks, rates.ZoneNational)
	assert.Less(t, local.ShippingFee, national.ShippingFee)

	// ₹450 falls in the 301-500 closing bracket.
	mid := c.Amazon(450, 200, model.CategorySnacks, rates.ZoneNational)
	assert.Equal(t, 21.0, mid.FixedFee)

	// Heavier shipments pay more handling.
	heavy := c.Amazon(250, 1800, model.CategorySnacks, rates.ZoneNational)
	assert.Equal(t, 104.0, heavy.ShippingFee)
}

func TestCalculator_Amazon_UnmappedCategory(t *testing.T) {
	t.Parallel()
	c := NewCalculator(rates.Default(), 500)

	fee := c.Amazon(100, 100, model.Category("Garden Tools"), rates.ZoneLocal)
	// Falls to "Everything Else" at 15%.
	assert.InDelta(t, 15.0, fee.Commission, 1e-9)
}

func TestCalculator_Flipkart(t *testing.T) {
	t.Parallel()
	c := NewCalculator(rates.Default(), 500)

	// Snacks @ ₹250, 200g, national: 5% grocery commission = 12.5, fixed 15,
	// shipping 55, collection 2% = 5.
	fee := c.Flipkart(250, 200, model.CategorySnacks, rates.ZoneNational)

	assert.Equal(t, "Flipkart", fee.Platform)
	assert.InDelta(t, 12.5, fee.Commission, 1e-9)
	assert.Equal(t, 15.0, fee.FixedFee)
	assert.Equal(t, 55.0, fee.ShippingFee)
	assert.InDelta(t, 5.0, fee.CollectionFee, 1e-9)
	sum := 12.5 + 15 + 55 + 5
	assert.InDelta(t, sum*0.18, fee.GSTOnFees, 1e-9)
	assert.InDelta(t, sum*1.18, fee.Total, 1e-9)
}

func TestCalculator_QuickCommerce(t *testing.T) {
	t.Parallel()
	c := NewCalculator(rates.Default(), 500)

	fees := c.QuickCommerce(200)
	require.Len(t, fees, 4)

	byName := map[string]model.PlatformFee{}
	for _, f := range fees {
		byName[f.Platform] = f
	}

	blinkit := byName["Blinkit"]
	assert.InDelta(t, 44.0, blinkit.Commission, 1e-9) // 22% of 200
	assert.Zero(t, blinkit.ListingFee)                // app-based, no listing fee
	assert.InDelta(t, 44*1.18, blinkit.Total, 1e-9)

	bigbasket := byName["BigBasket"]
	assert.InDelta(t, 36.0, bigbasket.Commission, 1e-9) // 18% of 200
	assert.InDelta(t, 4.0, bigbasket.ListingFee, 1e-9)  // 2000/month over 500 units
	assert.InDelta(t, 40*1.18, bigbasket.Total, 1e-9)
}

func TestCalculator_D2C(t *testing.T) {
	t.Parallel()
	c := NewCalculator(rates.Default(), 500)

	fee := c.D2C(400)
	assert.InDelta(t, 8.0, fee.Commission, 1e-9)      // 2% gateway
	assert.InDelta(t, 1999.0/500, fee.ListingFee, 1e-9) // storefront amortized
	sum := 8.0 + 1999.0/500
	assert.InDelta(t, sum*1.18, fee.Total, 1e-9)
}

func TestCalculator_Fees_Channels(t *testing.T) {
	t.Parallel()
	c := NewCalculator(rates.Default(), 500)

	ecom := c.Fees(250, 200, model.CategorySnacks, model.ChannelEcommerce, rates.ZoneNational)
	require.Len(t, ecom.Platforms, 2)
	assert.Equal(t, model.ChannelEcommerce, ecom.Channel)
	assert.InDelta(t, (ecom.Platforms[0].Total+ecom.Platforms[1].Total)/2, ecom.Effective, 1e-9)

	qc := c.Fees(250, 200, model.CategorySnacks, model.ChannelQuickCommerce, rates.ZoneNational)
	require.Len(t, qc.Platforms, 4)
	sum := 0.0
	for _, f := range qc.Platforms {
		sum += f.Total
	}
	assert.InDelta(t, sum/4, qc.Effective, 1e-9)

	d2c := c.Fees(250, 200, model.CategorySnacks, model.ChannelD2C, rates.ZoneNational)
	require.Len(t, d2c.Platforms, 1)
	assert.Equal(t, d2c.Platforms[0].Total, d2c.Effective)
}

func TestNewCalculator_DefaultsAssumedUnits(t *testing.T) {
	t.Parallel()

	c := NewCalculator(rates.Default(), 0)
	fee := c.D2C(100)
	// 1999/500 default amortization.
	assert.InDelta(t, 1999.0/500, fee.ListingFee, 1e-9)
}
