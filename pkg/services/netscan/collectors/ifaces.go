package collectors

import (
	"context"
	"fmt"

	gopsnet "github.com/shirou/gopsutil/v4/net"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

const SourceInterfaces = "interfaces"

type interfaceCollector struct {
	profile domain.SiteProfile
}

// NewInterfaceCollector inventories the local network interfaces, so scan
// reports show which adapter observed the site.
func NewInterfaceCollector(profile domain.SiteProfile) (Collector, error) {
	return &interfaceCollector{profile: profile}, nil
}

func (c *interfaceCollector) Source() string { return SourceInterfaces }

func (c *interfaceCollector) Collect(ctx context.Context) (*Result, error) {
	stats, err := gopsnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing interfaces: %w", err)
	}

	ifaces := make([]domain.Interface, 0, len(stats))
	for _, stat := range stats {
		iface := domain.Interface{
			Name: stat.Name,
			MAC:  stat.HardwareAddr,
		}
		for _, addr := range stat.Addrs {
			iface.Addrs = append(iface.Addrs, addr.Addr)
		}
		for _, flag := range stat.Flags {
			switch flag {
			case "up":
				iface.Up = true
			case "loopback":
				iface.Loopback = true
			}
		}
		ifaces = append(ifaces, iface)
	}

	return &Result{Interfaces: ifaces}, nil
}
