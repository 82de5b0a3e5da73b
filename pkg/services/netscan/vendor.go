package netscan

import "github.com/venture-tools/plan-atlas/pkg/services/netscan/collectors"

// LookupVendor resolves a MAC address to its hardware vendor by OUI prefix.
func LookupVendor(mac string) string {
	return collectors.LookupVendor(mac)
}
