package netscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

func TestTrilaterate(t *testing.T) {
	t.Run("success - recovers a known point", func(t *testing.T) {
		anchors := []domain.Position{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
		// Distances from (3, 4) to each anchor.
		distances := []float64{5, 8.0622577, 6.7082039}

		pos := Trilaterate(anchors, distances)
		assert.InDelta(t, 3, pos.X, 1e-3)
		assert.InDelta(t, 4, pos.Y, 1e-3)
	})

	t.Run("success - too few anchors falls back", func(t *testing.T) {
		pos := Trilaterate([]domain.Position{{X: 0, Y: 0}}, []float64{5})
		assert.Equal(t, fallbackPosition, pos)
	})

	t.Run("success - collinear anchors fall back", func(t *testing.T) {
		anchors := []domain.Position{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}
		pos := Trilaterate(anchors, []float64{5, 5, 5})
		assert.Equal(t, fallbackPosition, pos)
	})
}

func TestEstimatePositions(t *testing.T) {
	t.Run("success - every access point gets a position", func(t *testing.T) {
		aps := []domain.AccessPoint{
			{SSID: "alpha", Distance: 10},
			{SSID: "beta", Distance: 20},
			{SSID: "gamma", Distance: 30},
			{SSID: "hidden", Distance: -1},
		}

		positions := EstimatePositions(aps, DefaultAnchors())
		require.Len(t, positions, 4)
		for ssid, pos := range positions {
			assert.False(t, pos.X == 0 && pos.Y == 0, "ssid %s landed on the origin", ssid)
		}
	})

	t.Run("success - lone located point rings the center", func(t *testing.T) {
		positions := EstimatePositions([]domain.AccessPoint{{SSID: "solo", Distance: 15}}, nil)
		require.Len(t, positions, 1)
		assert.InDelta(t, 65, positions["solo"].X, 1e-9)
		assert.InDelta(t, 50, positions["solo"].Y, 1e-9)
	})

	t.Run("success - unlocated points spread evenly", func(t *testing.T) {
		aps := []domain.AccessPoint{
			{SSID: "a", Distance: -1},
			{SSID: "b", Distance: -1},
		}

		positions := EstimatePositions(aps, nil)
		require.Len(t, positions, 2)
		assert.NotEqual(t, positions["a"], positions["b"])
	})

	t.Run("success - no access points yields empty map", func(t *testing.T) {
		positions := EstimatePositions(nil, DefaultAnchors())
		assert.Empty(t, positions)
	})
}
