package economics

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/gonogo-cli/internal/model"
)

// Render formats a report for terminal output.
func Render(r *model.UnitEconomicsReport) string {
	p := message.NewPrinter(language.MustParse("en-IN"))
	var b strings.Builder

	p.Fprintf(&b, "Unit economics: %s, %vg @ ₹%.2f via %s\n", r.Category, r.WeightGrams, r.Price, r.Channel)
	b.WriteString(strings.Repeat("-", 56) + "\n")

	for _, c := range r.Waterfall {
		p.Fprintf(&b, "%-18s ₹%9.2f  (%5.1f%% of price)\n", c.Label, c.Amount, c.PercentOfPrice)
	}
	b.WriteString(strings.Repeat("-", 56) + "\n")
	p.Fprintf(&b, "%-18s ₹%9.2f\n", "Total cost", r.TotalCost)
	p.Fprintf(&b, "%-18s ₹%9.2f  (%.1f%%)\n", "Net margin", r.NetMargin, r.MarginPct)
	p.Fprintf(&b, "%-18s ₹%9.2f\n", "Contribution", r.ContributionMargin)

	if r.Breakeven.Achievable {
		p.Fprintf(&b, "%-18s %v units/month (fixed cost ₹%v)\n", "Break-even", int64(r.Breakeven.UnitsPerMonth), int64(r.Breakeven.FixedMonthlyCost))
	} else {
		b.WriteString("Break-even         not achievable at this margin\n")
	}

	b.WriteString("\n")
	p.Fprintf(&b, "Manufacturing path: %s (%s confidence)\n", r.Manufacturing.Method, r.Manufacturing.Confidence)
	if len(r.Manufacturing.Ingredients) > 0 {
		for _, ic := range r.Manufacturing.Ingredients {
			p.Fprintf(&b, "  %-20s %6.1fg x ₹%v/kg = ₹%.2f  [%s, %s]\n",
				ic.Requirement.Name, ic.Requirement.QuantityGrams,
				int64(ic.Quote.PricePerKg), ic.Cost, ic.Quote.Source, ic.Quote.Confidence)
		}
	}

	if len(r.PlatformFees.Platforms) > 1 {
		b.WriteString("Platform comparison:\n")
		for _, pf := range r.PlatformFees.Platforms {
			p.Fprintf(&b, "  %-18s ₹%8.2f\n", pf.Platform, pf.Total)
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Verdict: %s. %s\n", strings.ToUpper(string(r.Verdict)), r.Verdict.Narrative())
	fmt.Fprintf(&b, "%s\n", r.ChannelRecommendation)

	return b.String()
}
