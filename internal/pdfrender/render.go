package pdfrender

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageLeftMargin  = 15.0
	pageTopMargin   = 30.0
	pageRightMargin = 15.0
	bottomBreak     = 20.0
	contentWidth    = 180.0
)

// Input describes one document to render.
type Input struct {
	Title        string
	BusinessName string
	GeneratedAt  time.Time
	Body         string
}

// Render lays the document body out as a paginated A4 PDF. Lines with
// markdown-style leading markers get distinct styles; every page carries a
// 3-line header (title, business name, date) and a 1-line footer.
func Render(in Input) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageLeftMargin, pageTopMargin, pageRightMargin)
	pdf.SetAutoPageBreak(true, bottomBreak)

	// Core fonts take cp1252 text; LLM output is UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetY(10)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(contentWidth, 6, tr(in.Title), "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentWidth, 5, tr(in.BusinessName), "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(contentWidth, 4, "Generated on "+in.GeneratedAt.Format("2 January 2006"), "", 1, "C", false, 0, "")
		pdf.Ln(2)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		footer := fmt.Sprintf("StartUP Companion  |  %s  |  Page %d", tr(in.Title), pdf.PageNo())
		pdf.CellFormat(contentWidth, 5, footer, "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	for _, line := range strings.Split(in.Body, "\n") {
		writeLine(pdf, tr, line)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func writeLine(pdf *gofpdf.Fpdf, tr func(string) string, raw string) {
	line := strings.TrimRight(raw, " \t\r")
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		pdf.Ln(3)
	case strings.HasPrefix(trimmed, "### "):
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(contentWidth, 5.5, tr(stripBold(strings.TrimPrefix(trimmed, "### "))), "", "L", false)
		pdf.Ln(1)
	case strings.HasPrefix(trimmed, "## "):
		pdf.SetFont("Helvetica", "B", 12.5)
		pdf.MultiCell(contentWidth, 6, tr(stripBold(strings.TrimPrefix(trimmed, "## "))), "", "L", false)
		pdf.Ln(1)
	case strings.HasPrefix(trimmed, "# "):
		pdf.SetFont("Helvetica", "B", 15)
		pdf.MultiCell(contentWidth, 7, tr(stripBold(strings.TrimPrefix(trimmed, "# "))), "", "L", false)
		pdf.Ln(1.5)
	case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
		pdf.SetFont("Helvetica", "", 10)
		bullet := stripBold(trimmed[2:])
		pdf.SetX(pageLeftMargin + 4)
		pdf.MultiCell(contentWidth-4, 5, tr("• "+bullet), "", "L", false)
	case isBoldLine(trimmed):
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(contentWidth, 5, tr(stripBold(trimmed)), "", "L", false)
	default:
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(contentWidth, 5, tr(stripBold(trimmed)), "", "L", false)
	}
}

func isBoldLine(s string) bool {
	return len(s) > 4 && strings.HasPrefix(s, "**") && strings.HasSuffix(s, "**")
}

func stripBold(s string) string {
	return strings.ReplaceAll(s, "**", "")
}
