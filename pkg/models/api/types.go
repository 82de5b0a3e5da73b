package api

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a money field that tolerates the way forms and spreadsheet
// exports write numbers: plain JSON numbers, quoted strings, comma
// decimal separators, grouping spaces and currency signs all parse.
// Anything unparseable counts as zero rather than failing the request;
// plan validation reports the suspicious inputs separately.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := normalizeNumeric(string(data))
	if s == "" {
		a.Decimal = decimal.Zero
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// Rate is a fractional rate (0.20 means 20%) with the same lenient
// parsing as Amount.
type Rate float64

func (r *Rate) UnmarshalJSON(data []byte) error {
	s := normalizeNumeric(string(data))
	if s == "" {
		*r = 0
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*r = 0
		return nil
	}
	*r = Rate(f)
	return nil
}

// normalizeNumeric strips quoting, grouping and unit noise from a raw
// JSON scalar. When both comma and dot appear the commas are grouping
// separators; a lone comma is a decimal separator.
func normalizeNumeric(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "null" {
		return ""
	}
	s = strings.Trim(s, `"`)

	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', ' ', ' ', '\'', '€', '$', '%':
			continue
		default:
			b.WriteRune(r)
		}
	}
	s = b.String()

	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ",", ".")
		}
	}
	return s
}
