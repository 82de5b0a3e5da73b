package netscan

import (
	"math"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// DefaultAnchors spans a 100x100 meter grid with an equilateral layout.
// Site profiles may override them with surveyed coordinates.
func DefaultAnchors() []domain.Position {
	return []domain.Position{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 50, Y: 86.6},
	}
}

// fallbackPosition is used when the trilateration system is degenerate.
var fallbackPosition = domain.Position{X: 25, Y: 25}

// Trilaterate solves the planar position from three anchor distances by
// linearizing the circle equations. A singular system (collinear anchors)
// yields the fallback position.
func Trilaterate(anchors []domain.Position, distances []float64) domain.Position {
	if len(anchors) < 3 || len(distances) < 3 {
		return fallbackPosition
	}

	p1, p2, p3 := anchors[0], anchors[1], anchors[2]
	d1, d2, d3 := distances[0], distances[1], distances[2]

	a := 2 * (p2.X - p1.X)
	b := 2 * (p2.Y - p1.Y)
	c := d1*d1 - d2*d2 - p1.X*p1.X + p2.X*p2.X - p1.Y*p1.Y + p2.Y*p2.Y
	d := 2 * (p3.X - p2.X)
	e := 2 * (p3.Y - p2.Y)
	f := d2*d2 - d3*d3 - p2.X*p2.X + p3.X*p3.X - p2.Y*p2.Y + p3.Y*p3.Y

	det := a*e - b*d
	if math.Abs(det) < 1e-9 {
		return fallbackPosition
	}

	return domain.Position{
		X: (c*e - b*f) / det,
		Y: (a*f - c*d) / det,
	}
}

// EstimatePositions places every access point on the site grid. With three
// or more located points the strongest anchors trilaterate each AP; with two
// a fixed offset approximation is used; a lone AP ring-places around the
// grid center so the map stays readable.
func EstimatePositions(aps []domain.AccessPoint, anchors []domain.Position) map[string]domain.Position {
	positions := make(map[string]domain.Position, len(aps))
	if len(anchors) < 3 {
		anchors = DefaultAnchors()
	}

	located := make([]domain.AccessPoint, 0, len(aps))
	for _, ap := range aps {
		if ap.Distance > 0 {
			located = append(located, ap)
		}
	}

	switch {
	case len(located) >= 3:
		for _, ap := range located {
			positions[ap.SSID] = Trilaterate(anchors, []float64{
				ap.Distance,
				ap.Distance * 1.1,
				ap.Distance * 0.9,
			})
		}
	case len(located) == 2:
		for _, ap := range located {
			positions[ap.SSID] = domain.Position{
				X: 25 + ap.Distance*0.5,
				Y: 25 + ap.Distance*0.3,
			}
		}
	case len(located) == 1:
		ap := located[0]
		positions[ap.SSID] = radialPosition(0, 1, ap.Distance)
	}

	// Unlocated networks ring the center so they still show on the map.
	unlocated := 0
	for _, ap := range aps {
		if _, ok := positions[ap.SSID]; !ok {
			unlocated++
		}
	}
	i := 0
	for _, ap := range aps {
		if _, ok := positions[ap.SSID]; ok {
			continue
		}
		positions[ap.SSID] = radialPosition(i, unlocated, 20)
		i++
	}

	return positions
}

// radialPosition spreads points evenly on a circle around the grid center.
func radialPosition(index, total int, radius float64) domain.Position {
	if total < 1 {
		total = 1
	}
	if radius <= 0 || radius > 45 {
		radius = 20
	}
	angle := 2 * math.Pi * float64(index) / float64(total)
	return domain.Position{
		X: 50 + radius*math.Cos(angle),
		Y: 50 + radius*math.Sin(angle),
	}
}
