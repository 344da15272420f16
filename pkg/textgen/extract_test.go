package textgen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "bare object",
			input: `{"price_per_kg": 120}`,
			want:  `{"price_per_kg": 120}`,
			ok:    true,
		},
		{
			name:  "object wrapped in prose",
			input: `Sure! Here is the estimate: {"price_per_kg": 120, "confidence": "medium"} Hope that helps.`,
			want:  `{"price_per_kg": 120, "confidence": "medium"}`,
			ok:    true,
		},
		{
			name:  "fenced block",
			input: "```json\n{\"price_per_kg\": 85}\n```",
			want:  `{"price_per_kg": 85}`,
			ok:    true,
		},
		{
			name:  "array",
			input: `The list: [{"name": "sugar", "quantity_grams": 40}]`,
			want:  `[{"name": "sugar", "quantity_grams": 40}]`,
			ok:    true,
		},
		{
			name:  "nested braces",
			input: `{"outer": {"inner": 1}, "n": 2} trailing`,
			want:  `{"outer": {"inner": 1}, "n": 2}`,
			ok:    true,
		},
		{
			name:  "braces inside strings",
			input: `{"note": "a } inside", "n": 1}`,
			want:  `{"note": "a } inside", "n": 1}`,
			ok:    true,
		},
		{
			name:  "no json at all",
			input: "I cannot answer that.",
			ok:    false,
		},
		{
			name:  "unbalanced",
			input: `{"price_per_kg": 120`,
			ok:    false,
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ExtractJSON(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractJSON_FencedPayloadUnmarshals(t *testing.T) {
	t.Parallel()

	reply := "Here you go:\n```json\n[{\"name\": \"oats\", \"quantity_grams\": 60, \"purpose\": \"base\"}]\n```\nLet me know if you need more."
	payload, ok := ExtractJSON(reply)
	require.True(t, ok)

	var items []struct {
		Name          string  `json:"name"`
		QuantityGrams float64 `json:"quantity_grams"`
	}
	require.NoError(t, json.Unmarshal([]byte(payload), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "oats", items[0].Name)
	assert.Equal(t, 60.0, items[0].QuantityGrams)
}
