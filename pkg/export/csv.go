package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// WriteScanCSV exports the access points of a snapshot as CSV rows.
func WriteScanCSV(w io.Writer, snapshot *domain.ScanSnapshot) error {
	cw := csv.NewWriter(w)

	header := []string{"ssid", "bssid", "rssi_dbm", "signal_percent", "channel", "band", "security", "vendor", "distance_m"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, ap := range snapshot.AccessPoints {
		row := []string{
			ap.SSID,
			ap.BSSID,
			strconv.Itoa(ap.RSSI),
			strconv.Itoa(ap.SignalPercent),
			strconv.Itoa(ap.Channel),
			string(ap.Band),
			ap.Security,
			ap.Vendor,
			strconv.FormatFloat(ap.Distance, 'f', 1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteReportCSV flattens a report into label/value/unit/description
// rows, one block per section.
func WriteReportCSV(w io.Writer, report *domain.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"section", "name", "value", "unit", "description"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, section := range report.Sections {
		for _, detail := range section.Details {
			row := []string{
				section.Title,
				detail.Name,
				fmt.Sprint(detail.Value),
				detail.Unit,
				detail.Description,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
