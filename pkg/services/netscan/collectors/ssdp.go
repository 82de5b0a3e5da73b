package collectors

import (
	"context"
	"fmt"

	"github.com/koron/go-ssdp"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

const SourceSSDP = "ssdp"

// ssdpSearcher is swapped in tests; the default multicasts an M-SEARCH.
type ssdpSearcher func(searchType string, waitSec int, localAddr string) ([]ssdp.Service, error)

const (
	ssdpSearchTarget = ssdp.RootDevice
	ssdpWaitSeconds  = 3
)

type ssdpCollector struct {
	profile domain.SiteProfile
	search  ssdpSearcher
}

// NewSSDPCollector discovers UPnP root devices via an SSDP M-SEARCH.
func NewSSDPCollector(profile domain.SiteProfile) (Collector, error) {
	return &ssdpCollector{profile: profile, search: ssdp.Search}, nil
}

func (c *ssdpCollector) Source() string { return SourceSSDP }

func (c *ssdpCollector) Collect(ctx context.Context) (*Result, error) {
	type searchResult struct {
		services []ssdp.Service
		err      error
	}

	// ssdp.Search blocks for the wait window and takes no context, so it
	// runs detached and loses the race against cancellation.
	done := make(chan searchResult, 1)
	go func() {
		services, err := c.search(ssdpSearchTarget, ssdpWaitSeconds, "")
		done <- searchResult{services: services, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("ssdp search: %w", res.err)
		}

		seen := make(map[string]struct{}, len(res.services))
		devices := make([]domain.UPnPDevice, 0, len(res.services))
		for _, svc := range res.services {
			if _, dup := seen[svc.USN]; dup {
				continue
			}
			seen[svc.USN] = struct{}{}
			devices = append(devices, domain.UPnPDevice{
				Location: svc.Location,
				Server:   svc.Server,
				USN:      svc.USN,
			})
		}
		return &Result{UPnPDevices: devices}, nil
	}
}
