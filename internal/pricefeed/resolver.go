// Package pricefeed resolves per-kilogram ingredient prices through an
// ordered fallback cascade: B2B marketplace listings, web-search price
// mentions, a bounded AI estimate, the static price database, and finally a
// hard default. The cascade always yields a quote; failures along the way
// only degrade the confidence tag.
package pricefeed

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/gonogo-cli/internal/model"
	"github.com/sells-group/gonogo-cli/internal/rates"
	"github.com/sells-group/gonogo-cli/pkg/indiamart"
	"github.com/sells-group/gonogo-cli/pkg/textgen"
	"github.com/sells-group/gonogo-cli/pkg/websearch"
)

const (
	// Price resolution is capped at this many ingredients per product so a
	// single evaluation cannot fan out unboundedly.
	MaxIngredients = 15

	defaultTierTimeout = 15 * time.Second
	defaultMaxParallel = 5

	// Listings needed for a High confidence B2B quote.
	highConfidenceListings = 3
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithB2B supplies the B2B marketplace source (tier 1).
func WithB2B(c indiamart.Client) Option {
	return func(r *Resolver) { r.b2b = c }
}

// WithSearch supplies the web-search source (tier 2).
func WithSearch(c websearch.Client) Option {
	return func(r *Resolver) { r.search = c }
}

// WithGenerator supplies the text generator used for AI estimates (tier 3).
func WithGenerator(g textgen.Generator) Option {
	return func(r *Resolver) { r.gen = g }
}

// WithTierTimeout bounds each external tier attempt.
func WithTierTimeout(d time.Duration) Option {
	return func(r *Resolver) { r.tierTimeout = d }
}

// WithMaxParallel caps concurrent ingredient lookups in ResolveAll.
func WithMaxParallel(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxParallel = n
		}
	}
}

// Resolver runs the price cascade. Any of the external sources may be nil;
// their tiers are skipped and the cascade continues with local data, so a
// fully offline resolver still produces quotes.
type Resolver struct {
	tables *rates.Tables

	b2b    indiamart.Client
	search websearch.Client
	gen    textgen.Generator

	tierTimeout time.Duration
	maxParallel int
}

// NewResolver creates a Resolver over the given rate tables.
func NewResolver(tables *rates.Tables, opts ...Option) *Resolver {
	r := &Resolver{
		tables:      tables,
		tierTimeout: defaultTierTimeout,
		maxParallel: defaultMaxParallel,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve produces a price quote for one ingredient. It never fails: the
// final tiers are local lookups with a hard default.
func (r *Resolver) Resolve(ctx context.Context, ingredient string) model.PriceQuote {
	if q, ok := r.resolveB2B(ctx, ingredient); ok {
		return q
	}
	if q, ok := r.resolveSearch(ctx, ingredient); ok {
		return q
	}
	if q, ok := r.resolveAI(ctx, ingredient); ok {
		return q
	}
	if price, ok := r.tables.IngredientPrice(ingredient); ok {
		return model.PriceQuote{
			Ingredient: ingredient,
			PricePerKg: price,
			Source:     model.SourceDatabase,
			Confidence: model.ConfidenceLow,
			Reasoning:  "static ingredient price database",
		}
	}
	return model.PriceQuote{
		Ingredient: ingredient,
		PricePerKg: r.tables.DefaultIngredientPricePerKg,
		Source:     model.SourceDefault,
		Confidence: model.ConfidenceLow,
		Reasoning:  "ingredient unknown, fixed default price",
	}
}

// ResolveAll resolves up to MaxIngredients requirements in parallel. Each
// lookup degrades independently; one ingredient exhausting its network tiers
// never aborts the others. The returned slice is index-aligned with the
// (possibly truncated) input.
func (r *Resolver) ResolveAll(ctx context.Context, reqs []model.IngredientRequirement) []model.PriceQuote {
	if len(reqs) > MaxIngredients {
		zap.L().Warn("pricefeed: ingredient list truncated",
			zap.Int("requested", len(reqs)),
			zap.Int("cap", MaxIngredients),
		)
		reqs = reqs[:MaxIngredients]
	}

	quotes := make([]model.PriceQuote, len(reqs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxParallel)
	for i, req := range reqs {
		g.Go(func() error {
			quotes[i] = r.Resolve(gCtx, req.Name)
			return nil
		})
	}
	_ = g.Wait()
	return quotes
}

// resolveB2B is tier 1: structured marketplace listings. Listings priced in
// non-kilogram units (bags, pieces, litres) are rejected; the median of the
// qualifying prices resists scraped-outlier noise better than the mean.
func (r *Resolver) resolveB2B(ctx context.Context, ingredient string) (model.PriceQuote, bool) {
	if r.b2b == nil {
		return model.PriceQuote{}, false
	}
	ctx, cancel := context.WithTimeout(ctx, r.tierTimeout)
	defer cancel()

	listings, err := r.b2b.SearchListings(ctx, ingredient+" price per kg")
	if err != nil {
		zap.L().Debug("pricefeed: b2b lookup failed, trying next tier",
			zap.String("ingredient", ingredient),
			zap.Error(err),
		)
		return model.PriceQuote{}, false
	}

	var perKg []float64
	for _, l := range listings {
		if p, ok := indiamart.PerKilogram(l.Price, l.Unit); ok && p > 0 {
			perKg = append(perKg, p)
		}
	}
	if len(perKg) == 0 {
		return model.PriceQuote{}, false
	}

	conf := model.ConfidenceMedium
	if len(perKg) >= highConfidenceListings {
		conf = model.ConfidenceHigh
	}
	return model.PriceQuote{
		Ingredient: ingredient,
		PricePerKg: median(perKg),
		Source:     model.SourceB2B,
		Confidence: conf,
		Listings:   len(perKg),
		Reasoning:  fmt.Sprintf("median of %d B2B listings", len(perKg)),
	}, true
}

// resolveSearch is tier 2: price mentions parsed out of search result text.
// Search extraction is noisier than structured listings, so confidence stays
// Medium regardless of match count.
func (r *Resolver) resolveSearch(ctx context.Context, ingredient string) (model.PriceQuote, bool) {
	if r.search == nil {
		return model.PriceQuote{}, false
	}
	ctx, cancel := context.WithTimeout(ctx, r.tierTimeout)
	defer cancel()

	results, err := r.search.Search(ctx, ingredient+" wholesale price per kg india")
	if err != nil {
		zap.L().Debug("pricefeed: search lookup failed, trying next tier",
			zap.String("ingredient", ingredient),
			zap.Error(err),
		)
		return model.PriceQuote{}, false
	}

	var perKg []float64
	for _, res := range results {
		for _, text := range []string{res.Content, res.Description, res.Title} {
			mentions := priceMentions(text)
			perKg = append(perKg, mentions...)
		}
	}
	if len(perKg) == 0 {
		return model.PriceQuote{}, false
	}
	return model.PriceQuote{
		Ingredient: ingredient,
		PricePerKg: median(perKg),
		Source:     model.SourceSearch,
		Confidence: model.ConfidenceMedium,
		Listings:   len(perKg),
		Reasoning:  fmt.Sprintf("median of %d search price mentions", len(perKg)),
	}, true
}

func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
