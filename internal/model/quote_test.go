package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidence_Cap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    Confidence
		max  Confidence
		want Confidence
	}{
		{name: "high capped to medium", c: ConfidenceHigh, max: ConfidenceMedium, want: ConfidenceMedium},
		{name: "medium under high cap", c: ConfidenceMedium, max: ConfidenceHigh, want: ConfidenceMedium},
		{name: "low under medium cap", c: ConfidenceLow, max: ConfidenceMedium, want: ConfidenceLow},
		{name: "equal stays", c: ConfidenceMedium, max: ConfidenceMedium, want: ConfidenceMedium},
		{name: "unknown becomes low", c: Confidence("very sure"), max: ConfidenceHigh, want: ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.c.Cap(tt.max))
		})
	}
}

func TestWorstConfidence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cs   []Confidence
		want Confidence
	}{
		{name: "empty is low", cs: nil, want: ConfidenceLow},
		{name: "single high", cs: []Confidence{ConfidenceHigh}, want: ConfidenceHigh},
		{name: "mixed takes worst", cs: []Confidence{ConfidenceHigh, ConfidenceLow, ConfidenceMedium}, want: ConfidenceLow},
		{name: "all medium", cs: []Confidence{ConfidenceMedium, ConfidenceMedium}, want: ConfidenceMedium},
		{name: "unknown value is low", cs: []Confidence{ConfidenceHigh, Confidence("")}, want: ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, WorstConfidence(tt.cs))
		})
	}
}
