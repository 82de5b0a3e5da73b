package collectors

import "strings"

// ouiVendors maps the best-known OUI prefixes to vendor names. Lookup is a
// prefix match on the upper-cased MAC, so one entry covers a whole block.
var ouiVendors = map[string]string{
	"00:03:93": "Apple",
	"00:05:02": "Apple",
	"00:0A:27": "Apple",
	"00:1B:63": "Apple",
	"00:1E:C2": "Apple",
	"3C:07:54": "Apple",
	"A4:5E:60": "Apple",
	"F0:18:98": "Apple",
	"00:05:69": "VMware",
	"00:0C:29": "VMware",
	"00:1C:14": "VMware",
	"00:50:56": "VMware",
	"08:00:27": "VirtualBox",
	"52:54:00": "QEMU",
	"00:15:5D": "Microsoft",
	"3C:5A:B4": "Google",
	"F4:F5:D8": "Google",
	"18:B4:30": "Nest Labs",
	"B8:27:EB": "Raspberry Pi Foundation",
	"DC:A6:32": "Raspberry Pi Trading",
	"E4:5F:01": "Raspberry Pi Trading",
	"00:17:88": "Philips Hue",
	"EC:FA:BC": "Espressif",
	"24:0A:C4": "Espressif",
	"FC:FB:FB": "Cisco",
	"00:26:99": "Cisco",
	"C0:25:E9": "TP-Link",
	"50:C7:BF": "TP-Link",
	"04:D4:C4": "ASUS",
	"2C:FD:A1": "ASUS",
	"00:09:5B": "Netgear",
	"A0:40:A0": "Netgear",
	"14:91:82": "Belkin",
	"00:24:D7": "Intel",
	"3C:A9:F4": "Intel",
	"F8:63:3F": "Xiaomi",
	"28:6C:07": "Xiaomi",
	"D8:3A:DD": "Samsung",
	"8C:77:12": "Samsung",
	"00:1A:11": "Google",
	"94:10:3E": "Belkin",
}

// LookupVendor resolves a MAC address to its hardware vendor by OUI prefix.
func LookupVendor(mac string) string {
	if len(mac) < 8 {
		return "Unknown"
	}
	prefix := strings.ToUpper(strings.ReplaceAll(mac, "-", ":"))[:8]
	if vendor, ok := ouiVendors[prefix]; ok {
		return vendor
	}
	return "Unknown"
}
