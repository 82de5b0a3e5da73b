package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	"github.com/venture-tools/plan-atlas/pkg/services/netscan"
)

const (
	svgSize   = 640
	svgMargin = 40.0
	svgScale  = 5.0
)

// WriteTopologySVG draws the estimated access point layout: one disk
// per network, sized by estimated range and colored by security class,
// with the observer marked at the grid center.
func WriteTopologySVG(w io.Writer, snapshot *domain.ScanSnapshot) {
	canvas := svg.New(w)
	canvas.Start(svgSize, svgSize)
	canvas.Rect(0, 0, svgSize, svgSize, "fill:#fafafa")

	title := fmt.Sprintf("%s - %s", snapshot.Site, snapshot.TakenAt.Format("2006-01-02 15:04"))
	canvas.Text(svgSize/2, 24, title, "text-anchor:middle;font-size:14px;fill:#333")

	// Observer at the grid center used by the radial fallback.
	ox, oy := toPixels(domain.Position{X: 50, Y: 50})
	canvas.Line(ox-6, oy, ox+6, oy, "stroke:#333;stroke-width:2")
	canvas.Line(ox, oy-6, ox, oy+6, "stroke:#333;stroke-width:2")
	canvas.Text(ox, oy+18, "observer", "text-anchor:middle;font-size:10px;fill:#333")

	for _, ap := range snapshot.AccessPoints {
		pos, ok := snapshot.Positions[ap.SSID]
		if !ok {
			continue
		}

		x, y := toPixels(pos)
		r := coverageRadius(ap.Distance)
		color := securityColor(ap.Security)

		canvas.Circle(x, y, r, fmt.Sprintf("fill:%s;fill-opacity:0.25;stroke:%s", color, color))
		canvas.Circle(x, y, 3, fmt.Sprintf("fill:%s", color))
		canvas.Text(x, y-r-4, ap.SSID, "text-anchor:middle;font-size:11px;fill:#222")
		canvas.Text(x, y+14, fmt.Sprintf("%d dBm", ap.RSSI), "text-anchor:middle;font-size:9px;fill:#555")
	}

	canvas.End()
}

func toPixels(pos domain.Position) (int, int) {
	x := int(svgMargin + pos.X*svgScale)
	y := int(svgMargin + pos.Y*svgScale)
	return clampPixel(x), clampPixel(y)
}

func clampPixel(v int) int {
	if v < 10 {
		return 10
	}
	if v > svgSize-10 {
		return svgSize - 10
	}
	return v
}

func coverageRadius(distance float64) int {
	if distance <= 0 {
		return 10
	}
	r := int(distance * svgScale)
	if r < 8 {
		return 8
	}
	if r > 120 {
		return 120
	}
	return r
}

func securityColor(raw string) string {
	switch netscan.ClassifySecurity(raw) {
	case domain.SecurityWPA3:
		return "#2e7d32"
	case domain.SecurityWPA2:
		return "#1565c0"
	case domain.SecurityWPA, domain.SecurityWEP:
		return "#ef6c00"
	default:
		return "#c62828"
	}
}
