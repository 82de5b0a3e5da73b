package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

const (
	pageWidth  = 190.0 // A4 portrait minus default margins
	lineHeight = 6.0
)

type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	num *message.Printer
}

// newPDFWriter sets up an A4 portrait document with page numbering.
// Numbers render in French convention (1 234,56) since the dossiers
// these PDFs feed are French-market business plans.
func newPDFWriter() *pdfWriter {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	return &pdfWriter{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		num: message.NewPrinter(language.French),
	}
}

// WritePlanPDF renders the financial dossier: a cover page with the
// company details followed by one block per statement report.
func WritePlanPDF(w io.Writer, plan *domain.Plan, reports []*domain.Report) error {
	pw := newPDFWriter()
	pw.cover(plan)

	for _, report := range reports {
		pw.report(report)
	}
	return pw.pdf.Output(w)
}

// WriteDocumentPDF renders a business-plan document section by
// section, with any statement reports appended after the narrative.
func WriteDocumentPDF(w io.Writer, doc *domain.Document, reports []*domain.Report) error {
	pw := newPDFWriter()

	pw.pdf.AddPage()
	pw.title(doc.Name)

	for _, section := range doc.Sections {
		pw.heading(section.Title)
		for _, field := range section.Fields {
			pw.field(field.Label, field.Value)
		}
		for _, table := range section.Tables {
			pw.subheading(table.Title)
			pw.table(table.Columns, table.Rows)
		}
		pw.pdf.Ln(4)
	}

	for _, report := range reports {
		pw.report(report)
	}
	return pw.pdf.Output(w)
}

func (pw *pdfWriter) cover(plan *domain.Plan) {
	pw.pdf.AddPage()
	pw.pdf.Ln(40)
	pw.pdf.SetFont("Helvetica", "B", 24)
	pw.pdf.CellFormat(0, 12, pw.tr(plan.Name), "", 1, "C", false, 0, "")

	pw.pdf.SetFont("Helvetica", "", 12)
	pw.pdf.CellFormat(0, 8, pw.tr(plan.Company.Name), "", 1, "C", false, 0, "")
	if plan.Company.Activity != "" {
		pw.pdf.CellFormat(0, 8, pw.tr(plan.Company.Activity), "", 1, "C", false, 0, "")
	}
	if plan.Company.LegalForm != "" {
		pw.pdf.CellFormat(0, 8, pw.tr(plan.Company.LegalForm), "", 1, "C", false, 0, "")
	}

	pw.pdf.Ln(8)
	start := plan.Assumptions.Start.Format("January 2006")
	horizon := fmt.Sprintf("%s, %d year projection", start, plan.Assumptions.Years)
	pw.pdf.SetFont("Helvetica", "I", 11)
	pw.pdf.CellFormat(0, 8, pw.tr(horizon), "", 1, "C", false, 0, "")
}

func (pw *pdfWriter) report(report *domain.Report) {
	pw.pdf.AddPage()
	pw.title(report.Title)

	for _, section := range report.Sections {
		pw.heading(section.Title)

		headers := []string{"", "Value", ""}
		var rows [][]string
		for _, detail := range section.Details {
			value := pw.formatValue(detail.Value)
			if detail.Unit != "" {
				value += " " + detail.Unit
			}
			rows = append(rows, []string{detail.Name, value, detail.Description})
		}
		pw.table(headers, rows)
		pw.pdf.Ln(4)
	}
}

func (pw *pdfWriter) title(text string) {
	pw.pdf.SetFont("Helvetica", "B", 18)
	pw.pdf.CellFormat(0, 10, pw.tr(text), "", 1, "L", false, 0, "")
	pw.pdf.Ln(2)
}

func (pw *pdfWriter) heading(text string) {
	pw.pdf.SetFont("Helvetica", "B", 13)
	pw.pdf.SetFillColor(235, 235, 235)
	pw.pdf.CellFormat(0, 8, pw.tr(text), "", 1, "L", true, 0, "")
	pw.pdf.Ln(2)
}

func (pw *pdfWriter) subheading(text string) {
	pw.pdf.SetFont("Helvetica", "B", 11)
	pw.pdf.CellFormat(0, 7, pw.tr(text), "", 1, "L", false, 0, "")
}

func (pw *pdfWriter) field(label, value string) {
	pw.pdf.SetFont("Helvetica", "B", 10)
	pw.pdf.CellFormat(0, lineHeight, pw.tr(label), "", 1, "L", false, 0, "")

	pw.pdf.SetFont("Helvetica", "", 10)
	if value == "" {
		value = "-"
	}
	pw.pdf.MultiCell(pageWidth, lineHeight-1, pw.tr(value), "", "L", false)
	pw.pdf.Ln(1)
}

func (pw *pdfWriter) table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}
	colWidth := pageWidth / float64(len(headers))

	pw.pdf.SetFont("Helvetica", "B", 9)
	pw.pdf.SetFillColor(235, 235, 235)
	for _, h := range headers {
		pw.pdf.CellFormat(colWidth, lineHeight, pw.tr(h), "1", 0, "L", true, 0, "")
	}
	pw.pdf.Ln(-1)

	pw.pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for i := 0; i < len(headers); i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pw.pdf.CellFormat(colWidth, lineHeight, pw.tr(cell), "1", 0, "L", false, 0, "")
		}
		pw.pdf.Ln(-1)
	}
}

func (pw *pdfWriter) formatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return pw.num.Sprintf("%.2f", x)
	case int:
		return pw.num.Sprintf("%d", x)
	case int64:
		return pw.num.Sprintf("%d", x)
	default:
		return fmt.Sprint(x)
	}
}
