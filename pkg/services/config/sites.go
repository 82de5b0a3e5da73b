package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// Registry resolves site profiles from the sites.ini file. A site
// section names the wireless interface, the network to sweep and the
// optional trilateration anchors:
//
//	[office]
//	interface = wlan0
//	network = 192.168.1.0/24
//	band = 2.4GHz
//	anchors = 0,0;100,0;50,86.6
//	nmap = true
//	ssdp = true
type Registry interface {
	GetSites(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, site string) (domain.SiteProfile, error)
}

type sitesRegistry struct {
	cfg *ini.File
}

// NewRegistry loads the sites file. A missing file yields an empty
// registry, so the default profile still works on a fresh install.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.LooseLoad(path)
	if err != nil {
		return nil, err
	}
	return &sitesRegistry{cfg: cfg}, nil
}

// DefaultProfile is the zero-config profile used when no site is named.
func DefaultProfile() domain.SiteProfile {
	return domain.SiteProfile{
		Name:      "default",
		Interface: "wlan0",
		SSDPScan:  true,
	}
}

func (sr *sitesRegistry) GetSites(_ context.Context) ([]string, error) {
	var sites []string
	for _, section := range sr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			sites = append(sites, section.Name())
		}
	}
	return sites, nil
}

func (sr *sitesRegistry) GetProfile(_ context.Context, site string) (domain.SiteProfile, error) {
	if site == "" || site == "default" {
		return DefaultProfile(), nil
	}

	section, err := sr.cfg.GetSection(site)
	if err != nil {
		return domain.SiteProfile{}, fmt.Errorf("site %s not found", site)
	}

	profile := domain.SiteProfile{
		Name:      site,
		Interface: section.Key("interface").MustString("wlan0"),
		Network:   section.Key("network").String(),
		Band:      domain.Band(section.Key("band").String()),
		NmapScan:  section.Key("nmap").MustBool(false),
		SSDPScan:  section.Key("ssdp").MustBool(true),
	}

	anchors, err := parseAnchors(section.Key("anchors").String())
	if err != nil {
		return domain.SiteProfile{}, fmt.Errorf("site %s: %w", site, err)
	}
	profile.Anchors = anchors

	return profile, nil
}

// parseAnchors reads "x,y;x,y;..." pairs.
func parseAnchors(raw string) ([]domain.Position, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var anchors []domain.Position
	for _, pair := range strings.Split(raw, ";") {
		parts := strings.Split(strings.TrimSpace(pair), ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid anchor %q", pair)
		}

		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid anchor %q: %w", pair, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid anchor %q: %w", pair, err)
		}
		anchors = append(anchors, domain.Position{X: x, Y: y})
	}
	return anchors, nil
}
