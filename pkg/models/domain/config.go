package domain

import "fmt"

// SiteProfile describes one scannable site: which interface to listen on,
// which network to sweep and where the trilateration anchors sit.
type SiteProfile struct {
	Name      string
	Interface string
	Network   string // CIDR swept by host discovery
	Band      Band
	Anchors   []Position
	NmapScan  bool
	SSDPScan  bool
}

func (s SiteProfile) String() string {
	return fmt.Sprintf("%s:%s", s.Name, s.Network)
}
