package collectors

import (
	"math"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

const (
	// referenceRSSI is the expected signal at one meter from the antenna.
	referenceRSSI = -30

	// Log-distance path-loss exponents per band.
	pathLossExponent24 = 2.5
	pathLossExponent5  = 3.0

	// fiveGHzFactor compensates the shorter effective range of 5GHz gear.
	fiveGHzFactor = 0.8

	maxDistanceMeters = 100.0
)

// EstimateDistance converts an RSSI reading into an approximate distance in
// meters using the log-distance path-loss model. A zero RSSI means the
// reading is unknown and yields -1; anything at or above the one-meter
// reference clamps to one meter; results cap at 100 meters.
func EstimateDistance(rssi int, band domain.Band) float64 {
	if rssi == 0 {
		return -1
	}
	if rssi >= referenceRSSI {
		return 1
	}

	exponent := pathLossExponent24
	if band == domain.Band5GHz {
		exponent = pathLossExponent5
	}

	distance := math.Pow(10, float64(referenceRSSI-rssi)/(10*exponent))
	if band == domain.Band5GHz {
		distance *= fiveGHzFactor
	}
	if distance > maxDistanceMeters {
		return maxDistanceMeters
	}
	return distance
}

// SignalPercentToRSSI maps the 0-100 signal quality some drivers report
// onto the -90..-30 dBm range.
func SignalPercentToRSSI(percent int) int {
	switch {
	case percent <= 0:
		return -90
	case percent >= 100:
		return -30
	default:
		return -90 + int(float64(percent)*0.6)
	}
}

// ChannelToBand infers the band from an 802.11 channel number.
func ChannelToBand(channel int) domain.Band {
	if channel > 14 {
		return domain.Band5GHz
	}
	return domain.Band24GHz
}
