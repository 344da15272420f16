package model

// Verdict is the three-way viability call derived from margin percentage.
type Verdict string

// Verdict values.
const (
	VerdictGo    Verdict = "go"
	VerdictPilot Verdict = "pilot"
	VerdictNoGo  Verdict = "no_go"
)

// ClassifyMargin maps a margin percentage to a verdict. Both boundaries are
// closed on the pilot side: exactly 10% and exactly 20% classify as pilot.
func ClassifyMargin(marginPct float64) Verdict {
	switch {
	case marginPct < 10:
		return VerdictNoGo
	case marginPct <= 20:
		return VerdictPilot
	default:
		return VerdictGo
	}
}

// Narrative returns the founder-facing explanation for a verdict.
func (v Verdict) Narrative() string {
	switch v {
	case VerdictGo:
		return "Unit economics support viability. Channel costs are sustainable at this price point."
	case VerdictPilot:
		return "Margins are tight but workable. Proceed with controlled testing and validate assumptions before scaling."
	default:
		return "Unit economics are structurally challenged. Consider revisiting pricing, costs, or channel strategy before proceeding."
	}
}
