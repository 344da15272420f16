package pricefeed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/gonogo-cli/internal/model"
	"github.com/sells-group/gonogo-cli/internal/rates"
	"github.com/sells-group/gonogo-cli/pkg/indiamart"
	"github.com/sells-group/gonogo-cli/pkg/textgen"
	"github.com/sells-group/gonogo-cli/pkg/websearch"
)

// mockB2B implements indiamart.Client.
type mockB2B struct {
	listings []indiamart.Listing
	err      error
	calls    int
}

func (m *mockB2B) SearchListings(_ context.Context, _ string) ([]indiamart.Listing, error) {
	m.calls++
	return m.listings, m.err
}

// mockSearch implements websearch.Client.
type mockSearch struct {
	results []websearch.Result
	err     error
}

func (m *mockSearch) Search(_ context.Context, _ string) ([]websearch.Result, error) {
	return m.results, m.err
}

func failingGen(err error) textgen.Generator {
	return textgen.GeneratorFunc(func(_ context.Context, _, _ string) (string, error) {
		return "", err
	})
}

func staticGen(reply string) textgen.Generator {
	return textgen.GeneratorFunc(func(_ context.Context, _, _ string) (string, error) {
		return reply, nil
	})
}

func TestResolver_Resolve_B2BTier(t *testing.T) {
	t.Parallel()

	b2b := &mockB2B{listings: []indiamart.Listing{
		{Title: "Jaggery A", Price: 60, Unit: "kg"},
		{Title: "Jaggery B", Price: 80, Unit: "kg"},
		{Title: "Jaggery C", Price: 70, Unit: "kilogram"},
		{Title: "Jaggery bag", Price: 500, Unit: "bag"}, // non-kg, rejected
	}}

	r := NewResolver(rates.Default(), WithB2B(b2b))
	q := r.Resolve(context.Background(), "jaggery")

	assert.Equal(t, model.SourceB2B, q.Source)
	assert.Equal(t, model.ConfidenceHigh, q.Confidence)
	assert.Equal(t, 70.0, q.PricePerKg) // median of 60, 70, 80
	assert.Equal(t, 3, q.Listings)
}

func TestResolver_Resolve_B2BTwoListingsIsMedium(t *testing.T) {
	t.Parallel()

	b2b := &mockB2B{listings: []indiamart.Listing{
		{Price: 60, Unit: "kg"},
		{Price: 80, Unit: "kg"},
	}}

	r := NewResolver(rates.Default(), WithB2B(b2b))
	q := r.Resolve(context.Background(), "jaggery")

	assert.Equal(t, model.SourceB2B, q.Source)
	assert.Equal(t, model.ConfidenceMedium, q.Confidence)
	assert.Equal(t, 70.0, q.PricePerKg) // mean of the middle pair
}

func TestResolver_Resolve_UnitConversion(t *testing.T) {
	t.Parallel()

	// A quintal listing must land as a per-kg figure.
	b2b := &mockB2B{listings: []indiamart.Listing{
		{Price: 4500, Unit: "quintal"},
	}}

	r := NewResolver(rates.Default(), WithB2B(b2b))
	q := r.Resolve(context.Background(), "jaggery")

	assert.Equal(t, model.SourceB2B, q.Source)
	assert.Equal(t, 45.0, q.PricePerKg)
}

func TestResolver_Resolve_SearchTier(t *testing.T) {
	t.Parallel()

	b2b := &mockB2B{err: errors.New("blocked")}
	search := &mockSearch{results: []websearch.Result{
		{Content: "Current rate ₹120/kg in mandi", Description: "Rs. 140 per kg quoted"},
		{Title: "INR 130 / kg wholesale"},
	}}

	r := NewResolver(rates.Default(), WithB2B(b2b), WithSearch(search))
	q := r.Resolve(context.Background(), "peanuts")

	assert.Equal(t, model.SourceSearch, q.Source)
	assert.Equal(t, model.ConfidenceMedium, q.Confidence)
	assert.Equal(t, 130.0, q.PricePerKg) // median of 120, 130, 140
	assert.Equal(t, 3, q.Listings)
}

func TestResolver_Resolve_AITier(t *testing.T) {
	t.Parallel()

	b2b := &mockB2B{err: errors.New("blocked")}
	search := &mockSearch{err: errors.New("quota")}
	gen := staticGen(`The estimate is {"price_per_kg": 640, "confidence": "high"}`)

	r := NewResolver(rates.Default(), WithB2B(b2b), WithSearch(search), WithGenerator(gen))
	q := r.Resolve(context.Background(), "ashwagandha extract")

	assert.Equal(t, model.SourceAIEstimate, q.Source)
	assert.Equal(t, 640.0, q.PricePerKg)
	// The generator claimed high; the resolver caps AI estimates at medium.
	assert.Equal(t, model.ConfidenceMedium, q.Confidence)
}

func TestResolver_Resolve_AIGarbageFallsThrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reply string
	}{
		{name: "no json", reply: "I am not sure about that."},
		{name: "zero price", reply: `{"price_per_kg": 0, "confidence": "low"}`},
		{name: "negative price", reply: `{"price_per_kg": -5}`},
		{name: "wrong shape", reply: `{"price": "cheap"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NewResolver(rates.Default(), WithGenerator(staticGen(tt.reply)))
			q := r.Resolve(context.Background(), "jaggery")
			// Falls through to the static database.
			assert.Equal(t, model.SourceDatabase, q.Source)
			assert.Equal(t, 60.0, q.PricePerKg)
		})
	}
}

func TestResolver_Resolve_DatabaseTier(t *testing.T) {
	t.Parallel()

	// No external sources configured at all.
	r := NewResolver(rates.Default())
	q := r.Resolve(context.Background(), "almonds")

	assert.Equal(t, model.SourceDatabase, q.Source)
	assert.Equal(t, model.ConfidenceLow, q.Confidence)
	assert.Equal(t, 700.0, q.PricePerKg)
}

func TestResolver_Resolve_HardDefault(t *testing.T) {
	t.Parallel()

	r := NewResolver(rates.Default())
	q := r.Resolve(context.Background(), "unobtanium dust")

	assert.Equal(t, model.SourceDefault, q.Source)
	assert.Equal(t, model.ConfidenceLow, q.Confidence)
	assert.Equal(t, rates.Default().DefaultIngredientPricePerKg, q.PricePerKg)
}

func TestResolver_Resolve_AllTiersFailingStillQuotes(t *testing.T) {
	t.Parallel()

	r := NewResolver(rates.Default(),
		WithB2B(&mockB2B{err: errors.New("down")}),
		WithSearch(&mockSearch{err: errors.New("down")}),
		WithGenerator(failingGen(errors.New("down"))),
	)

	q := r.Resolve(context.Background(), "mystery compound")
	require.NotZero(t, q.PricePerKg)
	assert.Equal(t, model.SourceDefault, q.Source)
}

func TestResolver_ResolveAll(t *testing.T) {
	t.Parallel()

	r := NewResolver(rates.Default(), WithMaxParallel(3))

	reqs := []model.IngredientRequirement{
		{Name: "wheat flour", QuantityGrams: 100},
		{Name: "sugar", QuantityGrams: 40},
		{Name: "unknown thing", QuantityGrams: 10},
	}
	quotes := r.ResolveAll(context.Background(), reqs)

	require.Len(t, quotes, 3)
	assert.Equal(t, "wheat flour", quotes[0].Ingredient)
	assert.Equal(t, 40.0, quotes[0].PricePerKg)
	assert.Equal(t, "sugar", quotes[1].Ingredient)
	assert.Equal(t, 45.0, quotes[1].PricePerKg)
	assert.Equal(t, model.SourceDefault, quotes[2].Source)
}

func TestResolver_ResolveAll_TruncatesAtCap(t *testing.T) {
	t.Parallel()

	r := NewResolver(rates.Default())

	reqs := make([]model.IngredientRequirement, MaxIngredients+5)
	for i := range reqs {
		reqs[i] = model.IngredientRequirement{Name: "salt", QuantityGrams: 1}
	}
	quotes := r.ResolveAll(context.Background(), reqs)
	assert.Len(t, quotes, MaxIngredients)
}

func TestResolver_ResolveAll_IndependentDegradation(t *testing.T) {
	t.Parallel()

	// The B2B source only ever returns listings; one good quote must not be
	// affected by siblings that exhaust every network tier.
	b2b := &mockB2B{listings: []indiamart.Listing{
		{Price: 100, Unit: "kg"},
		{Price: 100, Unit: "kg"},
		{Price: 100, Unit: "kg"},
	}}
	r := NewResolver(rates.Default(), WithB2B(b2b), WithMaxParallel(1))

	quotes := r.ResolveAll(context.Background(), []model.IngredientRequirement{
		{Name: "peanuts", QuantityGrams: 50},
		{Name: "cashews", QuantityGrams: 20},
	})

	require.Len(t, quotes, 2)
	for _, q := range quotes {
		assert.Equal(t, model.SourceB2B, q.Source)
		assert.Equal(t, 100.0, q.PricePerKg)
	}
	assert.Equal(t, 2, b2b.calls)
}

func TestMedian(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 70.0, median([]float64{80, 60, 70}))
	assert.Equal(t, 70.0, median([]float64{60, 80}))
	assert.Equal(t, 42.0, median([]float64{42}))
}

func TestPriceMentions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []float64
	}{
		{name: "rupee slash", text: "today ₹120/kg at the mandi", want: []float64{120}},
		{name: "rs per kilogram", text: "quoted Rs. 1,450 per kilogram for bulk", want: []float64{1450}},
		{name: "inr spaced", text: "INR 85 / kg landed", want: []float64{85}},
		{name: "multiple mentions", text: "₹60/kg retail, Rs 45 per kg wholesale", want: []float64{60, 45}},
		{name: "per gram ignored", text: "₹2/gram premium pack", want: nil},
		{name: "no prices", text: "prices vary by season", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, priceMentions(tt.text))
		})
	}
}
