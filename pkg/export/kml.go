package export

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// The planar scan grid is anchored to a fixed geographic origin and
// scaled so one grid unit is about 0.001 degrees. The absolute
// placement is arbitrary; only relative positions carry meaning.
const (
	kmlBaseLatitude   = 40.7128
	kmlBaseLongitude  = -74.0060
	kmlDegreesPerUnit = 0.001
)

type kmlFile struct {
	XMLName  xml.Name    `xml:"kml"`
	Xmlns    string      `xml:"xmlns,attr"`
	Document kmlDocument `xml:"Document"`
}

type kmlDocument struct {
	Name       string         `xml:"name"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name        string   `xml:"name"`
	Description string   `xml:"description"`
	Point       kmlPoint `xml:"Point"`
}

type kmlPoint struct {
	Coordinates string `xml:"coordinates"`
}

// WriteKML exports the positioned access points of a snapshot as one
// placemark each, for viewing in any KML-capable map tool.
func WriteKML(w io.Writer, snapshot *domain.ScanSnapshot) error {
	doc := kmlFile{
		Xmlns: "http://www.opengis.net/kml/2.2",
		Document: kmlDocument{
			Name: fmt.Sprintf("Network scan - %s", snapshot.Site),
		},
	}

	for _, ap := range snapshot.AccessPoints {
		pos, ok := snapshot.Positions[ap.SSID]
		if !ok {
			continue
		}

		lon := kmlBaseLongitude + pos.X*kmlDegreesPerUnit
		lat := kmlBaseLatitude + pos.Y*kmlDegreesPerUnit
		doc.Document.Placemarks = append(doc.Document.Placemarks, kmlPlacemark{
			Name: ap.SSID,
			Description: fmt.Sprintf("BSSID: %s, RSSI: %d dBm, channel %d, %s",
				ap.BSSID, ap.RSSI, ap.Channel, ap.Security),
			Point: kmlPoint{
				Coordinates: fmt.Sprintf("%.6f,%.6f,0", lon, lat),
			},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode kml: %w", err)
	}
	return enc.Close()
}
