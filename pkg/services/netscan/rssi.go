package netscan

import (
	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	"github.com/venture-tools/plan-atlas/pkg/services/netscan/collectors"
)

// EstimateDistance converts an RSSI reading into an approximate distance in
// meters using the log-distance path-loss model. A zero RSSI means the
// reading is unknown and yields -1; anything at or above the one-meter
// reference clamps to one meter; results cap at 100 meters.
func EstimateDistance(rssi int, band domain.Band) float64 {
	return collectors.EstimateDistance(rssi, band)
}

// SignalPercentToRSSI maps the 0-100 signal quality some drivers report
// onto the -90..-30 dBm range.
func SignalPercentToRSSI(percent int) int {
	return collectors.SignalPercentToRSSI(percent)
}

// ChannelToBand infers the band from an 802.11 channel number.
func ChannelToBand(channel int) domain.Band {
	return collectors.ChannelToBand(channel)
}
