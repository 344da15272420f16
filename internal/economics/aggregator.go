// Package economics composes the estimators into the unit cost waterfall and
// derives margin, break-even, channel recommendation, and the final verdict.
//
// Tax policy: GST is treated as included in the listed price. The output tax
// backed out of MRP is price * rate / (1 + rate); it appears once in the
// waterfall sum and is also reported separately on the report.
package economics

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/gonogo-cli/internal/manufacture"
	"github.com/sells-group/gonogo-cli/internal/model"
	"github.com/sells-group/gonogo-cli/internal/packaging"
	"github.com/sells-group/gonogo-cli/internal/platformfees"
	"github.com/sells-group/gonogo-cli/internal/rates"
)

// Waterfall line labels, in order.
const (
	LabelManufacturing = "Manufacturing"
	LabelPackaging     = "Packaging"
	LabelPlatformFees  = "Platform fees"
	LabelLogistics     = "Logistics"
	LabelReturns       = "Returns"
	LabelMarketing     = "Marketing"
	LabelGST           = "GST (in price)"
)

// Request carries the (already clamped) inputs for one evaluation.
type Request struct {
	Description   string
	Category      model.Category
	Channel       model.Channel
	WeightGrams   float64
	Price         float64
	Zone          rates.Zone
	PackagingType string
}

// Aggregator computes unit economics reports.
type Aggregator struct {
	tables      *rates.Tables
	manufacture *manufacture.Estimator
	packaging   *packaging.Estimator
	fees        *platformfees.Calculator

	marketingRate    float64
	fixedMonthlyCost float64
}

// NewAggregator wires the aggregator. marketingRate is the fixed fraction of
// price allocated to marketing (a simplifying assumption, not a CAC model);
// fixedMonthlyCost feeds the break-even estimate.
func NewAggregator(
	tables *rates.Tables,
	mfg *manufacture.Estimator,
	pkg *packaging.Estimator,
	fees *platformfees.Calculator,
	marketingRate, fixedMonthlyCost float64,
) *Aggregator {
	return &Aggregator{
		tables:           tables,
		manufacture:      mfg,
		packaging:        pkg,
		fees:             fees,
		marketingRate:    marketingRate,
		fixedMonthlyCost: fixedMonthlyCost,
	}
}

// Compute runs the full cost waterfall for one product evaluation. It always
// completes: every underlying estimator degrades rather than fails.
func (a *Aggregator) Compute(ctx context.Context, req Request) *model.UnitEconomicsReport {
	mfg := a.manufacture.Estimate(ctx, req.Description, req.Category, req.WeightGrams)
	pkg := a.packaging.Estimate(req.WeightGrams, req.Category, req.PackagingType)
	fees := a.fees.Fees(req.Price, req.WeightGrams, req.Category, req.Channel, req.Zone)

	logistics := a.logisticsCost(req)
	returns := req.Price * a.returnRate(req)
	marketing := req.Price * a.marketingRate

	gstRate := a.tables.GSTFor(req.Category)
	gst := req.Price * gstRate / (1 + gstRate)

	waterfall := []model.CostComponent{
		component(LabelManufacturing, mfg.TotalCost, req.Price),
		component(LabelPackaging, pkg.TotalCost, req.Price),
		component(LabelPlatformFees, fees.Effective, req.Price),
		component(LabelLogistics, logistics, req.Price),
		component(LabelReturns, returns, req.Price),
		component(LabelMarketing, marketing, req.Price),
		component(LabelGST, gst, req.Price),
	}

	total := 0.0
	for _, c := range waterfall {
		total += c.Amount
	}
	total = round2(total)

	netMargin := round2(req.Price - total)
	marginPct := 0.0
	if req.Price > 0 {
		marginPct = netMargin / req.Price * 100
	}

	report := &model.UnitEconomicsReport{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),

		Category:    req.Category,
		Channel:     req.Channel,
		WeightGrams: req.WeightGrams,
		Price:       req.Price,

		Manufacturing: mfg,
		Packaging:     pkg,
		PlatformFees:  fees,

		Waterfall:    waterfall,
		TotalCost:    total,
		GSTLiability: round2(gst),

		NetMargin:          netMargin,
		MarginPct:          marginPct,
		ContributionMargin: round2(req.Price - mfg.TotalCost - pkg.TotalCost),
		Breakeven:          a.breakeven(netMargin),

		ChannelRecommendation: recommend(req.Channel, marginPct),
		Confidence:            mfg.Confidence,
		Verdict:               model.ClassifyMargin(marginPct),
	}

	zap.L().Info("economics: report computed",
		zap.String("report_id", report.ID),
		zap.String("category", string(req.Category)),
		zap.String("channel", string(req.Channel)),
		zap.Float64("price", req.Price),
		zap.Float64("total_cost", total),
		zap.Float64("margin_pct", marginPct),
		zap.String("verdict", string(report.Verdict)),
	)
	return report
}

// logisticsCost is zero for quick commerce (bundled into the commission) and
// the cheapest carrier rate otherwise.
func (a *Aggregator) logisticsCost(req Request) float64 {
	if req.Channel == model.ChannelQuickCommerce {
		return 0
	}
	carrier, fee := a.tables.CheapestCarrier(req.Zone, req.WeightGrams)
	if carrier == "" {
		zap.L().Warn("economics: no carrier configured for zone", zap.String("zone", string(req.Zone)))
	}
	return fee
}

// returnRate is the category rate, overridden by the quick-commerce rate for
// that channel (rapid delivery sees far fewer returns).
func (a *Aggregator) returnRate(req Request) float64 {
	if req.Channel == model.ChannelQuickCommerce {
		return a.tables.QuickCommerceReturnRate()
	}
	return a.tables.ReturnRateFor(req.Category)
}

// breakeven derives monthly units from fixed cost and per-unit margin. A
// non-positive margin makes break-even unachievable; callers must not read
// that as zero units.
func (a *Aggregator) breakeven(netMargin float64) model.BreakevenEstimate {
	be := model.BreakevenEstimate{FixedMonthlyCost: a.fixedMonthlyCost}
	if netMargin > 0 {
		be.Achievable = true
		be.UnitsPerMonth = math.Ceil(a.fixedMonthlyCost / netMargin)
	}
	return be
}

func component(label string, amount, price float64) model.CostComponent {
	pct := 0.0
	if price > 0 {
		pct = amount / price * 100
	}
	return model.CostComponent{
		Label:          label,
		Amount:         round2(amount),
		PercentOfPrice: pct,
	}
}

// round2 applies the single rounding pass to two decimals (paise).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
