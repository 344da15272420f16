package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/gonogo-cli/internal/config"
	"github.com/sells-group/gonogo-cli/internal/economics"
	"github.com/sells-group/gonogo-cli/internal/ingredients"
	"github.com/sells-group/gonogo-cli/internal/manufacture"
	"github.com/sells-group/gonogo-cli/internal/packaging"
	"github.com/sells-group/gonogo-cli/internal/platformfees"
	"github.com/sells-group/gonogo-cli/internal/pricefeed"
	"github.com/sells-group/gonogo-cli/internal/rates"
	"github.com/sells-group/gonogo-cli/internal/session"
	"github.com/sells-group/gonogo-cli/pkg/indiamart"
	"github.com/sells-group/gonogo-cli/pkg/textgen"
	"github.com/sells-group/gonogo-cli/pkg/websearch"
)

// env bundles everything one evaluation needs.
type env struct {
	Aggregator *economics.Aggregator
	Limits     session.Limits
	Zone       rates.Zone
}

// buildEnv wires clients and estimators from config. Missing API keys and
// offline mode degrade the price resolver, never fail construction.
func buildEnv(cfg *config.Config, offline bool) *env {
	tables := rates.Default()

	var gen textgen.Generator
	var b2b indiamart.Client
	var search websearch.Client

	offline = offline || cfg.Offline
	if offline {
		zap.L().Info("offline mode, network price tiers disabled")
	} else {
		if cfg.Anthropic.Key != "" {
			gen = textgen.NewAnthropic(cfg.Anthropic.Key,
				textgen.WithModel(cfg.Anthropic.Model),
				textgen.WithMaxTokens(int64(cfg.Anthropic.MaxTokens)),
				textgen.WithTimeout(time.Duration(cfg.Anthropic.TimeoutSecs)*time.Second),
			)
		} else {
			zap.L().Warn("no anthropic key, ingredient analysis and AI estimates disabled")
		}
		b2b = indiamart.NewClient(
			indiamart.WithBaseURL(cfg.IndiaMART.BaseURL),
			indiamart.WithRateLimit(cfg.IndiaMART.RequestsPerSec),
		)
		search = websearch.NewClient(cfg.Search.Key,
			websearch.WithBaseURL(cfg.Search.BaseURL),
		)
	}

	resolver := pricefeed.NewResolver(tables,
		pricefeed.WithB2B(b2b),
		pricefeed.WithSearch(search),
		pricefeed.WithGenerator(gen),
		pricefeed.WithTierTimeout(time.Duration(cfg.Economics.TierTimeoutSecs)*time.Second),
		pricefeed.WithMaxParallel(cfg.Economics.MaxParallelLookups),
	)

	analyzer := ingredients.NewAnalyzer(gen)
	mfg := manufacture.NewEstimator(tables, analyzer, resolver, gen)
	pack := packaging.NewEstimator(tables)
	fees := platformfees.NewCalculator(tables, float64(cfg.Economics.AssumedMonthlyUnits))

	agg := economics.NewAggregator(tables, mfg, pack, fees,
		cfg.Economics.MarketingRate, cfg.Economics.FixedMonthlyCost)

	return &env{
		Aggregator: agg,
		Limits: session.Limits{
			MinWeightGrams: cfg.Limits.MinWeightGrams,
			MaxWeightGrams: cfg.Limits.MaxWeightGrams,
			MinPrice:       cfg.Limits.MinPrice,
			MaxPrice:       cfg.Limits.MaxPrice,
		},
		Zone: rates.ParseZone(cfg.Economics.Zone),
	}
}
