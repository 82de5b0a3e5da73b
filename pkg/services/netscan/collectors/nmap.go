package collectors

import (
	"context"
	"fmt"

	"github.com/Ullaakut/nmap/v3"
	"github.com/rs/zerolog"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

const SourceNmap = "nmap"

type nmapCollector struct {
	profile domain.SiteProfile
}

// NewNmapCollector ping-sweeps the profile's network for live hosts.
func NewNmapCollector(profile domain.SiteProfile) (Collector, error) {
	if profile.Network == "" {
		return nil, fmt.Errorf("profile %q has no network to sweep", profile.Name)
	}
	return &nmapCollector{profile: profile}, nil
}

func (c *nmapCollector) Source() string { return SourceNmap }

func (c *nmapCollector) Collect(ctx context.Context) (*Result, error) {
	scanner, err := nmap.NewScanner(ctx,
		nmap.WithTargets(c.profile.Network),
		nmap.WithPingScan(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating nmap scanner: %w", err)
	}

	run, warnings, err := scanner.Run()
	if err != nil {
		return nil, fmt.Errorf("running ping sweep on %s: %w", c.profile.Network, err)
	}
	if warnings != nil && len(*warnings) > 0 {
		zerolog.Ctx(ctx).Debug().Strs("warnings", *warnings).Msg("nmap finished with warnings")
	}

	devices := make([]domain.Device, 0, len(run.Hosts))
	for _, host := range run.Hosts {
		device := domain.Device{Source: SourceNmap}

		for _, addr := range host.Addresses {
			switch addr.AddrType {
			case "ipv4", "ipv6":
				device.IP = addr.Addr
			case "mac":
				device.MAC = addr.Addr
				device.Vendor = addr.Vendor
			}
		}
		if device.Vendor == "" && device.MAC != "" {
			device.Vendor = LookupVendor(device.MAC)
		}
		if len(host.Hostnames) > 0 {
			device.Hostname = host.Hostnames[0].Name
		}

		if device.IP != "" {
			devices = append(devices, device)
		}
	}

	return &Result{Devices: devices}, nil
}
