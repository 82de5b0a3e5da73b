package netscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

func TestClassifySecurity(t *testing.T) {
	tests := []struct {
		raw   string
		class domain.SecurityClass
	}{
		{"WPA3-SAE", domain.SecurityWPA3},
		{"WPA2-Personal", domain.SecurityWPA2},
		{"RSN WPA2 PSK CCMP", domain.SecurityWPA2},
		{"WPA-PSK", domain.SecurityWPA},
		{"WEP", domain.SecurityWEP},
		{"Open", domain.SecurityOpen},
		{"", domain.SecurityOpen},
		{"something unknown", domain.SecurityOpen},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.class, ClassifySecurity(tt.raw))
		})
	}
}

func TestAnalyzeSecurity(t *testing.T) {
	t.Run("success - counts and score", func(t *testing.T) {
		aps := []domain.AccessPoint{
			{SSID: "a", Security: "WPA2-Personal"},
			{SSID: "b", Security: "WPA3-SAE"},
			{SSID: "c", Security: "Open"},
			{SSID: "d", Security: "WEP"},
		}

		summary := AnalyzeSecurity(aps)
		assert.Equal(t, 4, summary.Total)
		assert.Equal(t, 1, summary.Counts[domain.SecurityWPA2])
		assert.Equal(t, 1, summary.Counts[domain.SecurityWPA3])
		assert.Equal(t, 1, summary.Counts[domain.SecurityOpen])
		assert.Equal(t, 1, summary.Counts[domain.SecurityWEP])
		assert.InDelta(t, 50, summary.Score, 1e-9)
	})

	t.Run("success - empty scan has every class zeroed", func(t *testing.T) {
		summary := AnalyzeSecurity(nil)
		assert.Equal(t, 0, summary.Total)
		assert.Zero(t, summary.Score)
		require.Len(t, summary.Counts, 5)
		for class, count := range summary.Counts {
			assert.Zero(t, count, "class %s", class)
		}
	})
}

func TestRecommend(t *testing.T) {
	t.Run("success - open networks come first", func(t *testing.T) {
		aps := []domain.AccessPoint{
			{SSID: "cafe", Security: "Open", RSSI: -40},
			{SSID: "office", Security: "WPA2", RSSI: -50},
		}
		summary := AnalyzeSecurity(aps)

		recs := Recommend(aps, nil, summary)
		require.NotEmpty(t, recs)
		assert.Contains(t, recs[0], "1 open network(s)")
	})

	t.Run("success - weak signal advice", func(t *testing.T) {
		aps := []domain.AccessPoint{
			{SSID: "far", Security: "WPA2", RSSI: -80},
			{SSID: "near", Security: "WPA2", RSSI: -45},
		}

		recs := Recommend(aps, nil, AnalyzeSecurity(aps))
		assert.Contains(t, recs, "1 network(s) below -70 dBm: reposition access points or add repeaters")
	})

	t.Run("success - crowded segment advice", func(t *testing.T) {
		devices := make([]domain.Device, 25)
		aps := []domain.AccessPoint{
			{SSID: "a", Security: "WPA2", RSSI: -40},
			{SSID: "b", Security: "WPA2", RSSI: -42},
		}

		recs := Recommend(aps, devices, AnalyzeSecurity(aps))
		assert.Contains(t, recs, "25 devices on one segment: consider VLAN segmentation")
	})

	t.Run("success - healthy site gets the all clear", func(t *testing.T) {
		aps := []domain.AccessPoint{
			{SSID: "a", Security: "WPA2", RSSI: -40},
			{SSID: "b", Security: "WPA3", RSSI: -45},
		}

		recs := Recommend(aps, nil, AnalyzeSecurity(aps))
		assert.Equal(t, []string{"network configuration looks optimal"}, recs)
	})

	t.Run("success - single access point warning", func(t *testing.T) {
		aps := []domain.AccessPoint{{SSID: "only", Security: "WPA2", RSSI: -40}}

		recs := Recommend(aps, nil, AnalyzeSecurity(aps))
		assert.Contains(t, recs, "single access point covers the site: add coverage for redundancy")
	})
}

func TestLookupVendor(t *testing.T) {
	assert.Equal(t, "Raspberry Pi Foundation", LookupVendor("b8:27:eb:aa:bb:cc"))
	assert.Equal(t, "VMware", LookupVendor("00-50-56-11-22-33"))
	assert.Equal(t, "Unknown", LookupVendor("ff:ff:ff:00:00:00"))
	assert.Equal(t, "Unknown", LookupVendor("short"))
}
