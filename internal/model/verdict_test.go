package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMargin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		marginPct float64
		want      Verdict
	}{
		{name: "deeply negative", marginPct: -25, want: VerdictNoGo},
		{name: "just under ten", marginPct: 9.99, want: VerdictNoGo},
		{name: "exactly ten is pilot", marginPct: 10, want: VerdictPilot},
		{name: "mid band", marginPct: 15, want: VerdictPilot},
		{name: "exactly twenty is pilot", marginPct: 20, want: VerdictPilot},
		{name: "just over twenty", marginPct: 20.01, want: VerdictGo},
		{name: "healthy", marginPct: 35, want: VerdictGo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClassifyMargin(tt.marginPct))
		})
	}
}

func TestVerdict_Narrative(t *testing.T) {
	t.Parallel()

	assert.Contains(t, VerdictGo.Narrative(), "support viability")
	assert.Contains(t, VerdictPilot.Narrative(), "controlled testing")
	assert.Contains(t, VerdictNoGo.Narrative(), "structurally challenged")
	// Unknown verdicts read as the cautious case.
	assert.Equal(t, VerdictNoGo.Narrative(), Verdict("maybe").Narrative())
}
