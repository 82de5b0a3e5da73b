package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "plain number", raw: `1234.5`, expected: "1234.5"},
		{name: "quoted number", raw: `"750"`, expected: "750"},
		{name: "comma decimal separator", raw: `"1234,56"`, expected: "1234.56"},
		{name: "nbsp grouping with comma decimal", raw: "\"1 234,56\"", expected: "1234.56"},
		{name: "narrow nbsp grouping", raw: "\"12 000\"", expected: "12000"},
		{name: "euro sign", raw: `"€12 000"`, expected: "12000"},
		{name: "dollar with comma grouping", raw: `"$1,234.56"`, expected: "1234.56"},
		{name: "apostrophe grouping", raw: `"1'250'000"`, expected: "1250000"},
		{name: "negative", raw: `"-480,25"`, expected: "-480.25"},
		{name: "null is zero", raw: `null`, expected: "0"},
		{name: "empty string is zero", raw: `""`, expected: "0"},
		{name: "unparseable is zero", raw: `"n/a"`, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Value Amount `json:"value"`
			}
			err := json.Unmarshal([]byte(`{"value": `+tt.raw+`}`), &out)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.Value.String())
		})
	}
}

func TestRate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{name: "plain number", raw: `0.2`, expected: 0.2},
		{name: "quoted comma decimal", raw: `"0,355"`, expected: 0.355},
		{name: "quoted with padding", raw: `"  0.05  "`, expected: 0.05},
		{name: "null is zero", raw: `null`, expected: 0},
		{name: "unparseable is zero", raw: `"tbd"`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Value Rate `json:"value"`
			}
			err := json.Unmarshal([]byte(`{"value": `+tt.raw+`}`), &out)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, float64(out.Value), 1e-9)
		})
	}
}
