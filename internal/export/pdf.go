// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	"fmt"
	"io"

	"github.com/MKhiriev/billable-hours/models"
	"github.com/go-pdf/fpdf"
)

const (
	pdfFont       = "Helvetica"
	pdfMargin     = 10.0
	pdfRowHeight  = 6.0
	pdfTitleSize  = 14.0
	pdfHeaderSize = 9.0
	pdfBodySize   = 8.0
)

// column widths in millimetres for a landscape A4 page (277mm usable)
var (
	pdfColumnsWithDescription = []float64{22, 50, 24, 20, 85, 38, 38}
	pdfColumnsPlain           = []float64{26, 95, 30, 26, 50, 50}
)

// PDF writes entries as a paginated landscape table. The header row is
// repeated on every page and each page carries a "Page n/N" footer.
func PDF(w io.Writer, entries []models.TimeEntry, opts Options) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin+5)
	pdf.AliasNbPages("")

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	header := Header(opts.IncludeDescriptions)
	widths := pdfColumnsPlain
	if opts.IncludeDescriptions {
		widths = pdfColumnsWithDescription
	}

	inTable := true
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() == 1 && opts.Title != "" {
			pdf.SetFont(pdfFont, "B", pdfTitleSize)
			pdf.CellFormat(0, 10, tr(opts.Title), "", 1, "L", false, 0, "")
			pdf.Ln(2)
		}
		if inTable {
			writePDFHeader(pdf, header, widths)
		}
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfMargin - 2)
		pdf.SetFont(pdfFont, "I", pdfBodySize)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont(pdfFont, "", pdfBodySize)
	for _, e := range entries {
		writePDFRow(pdf, tr, Row(e, opts.IncludeDescriptions), widths)
	}

	if opts.IncludeTotals && len(entries) > 0 {
		inTable = false
		pdf.Ln(pdfRowHeight)
		pdf.SetFont(pdfFont, "B", pdfHeaderSize)
		pdf.CellFormat(0, pdfRowHeight, summaryLabel, "", 1, "L", false, 0, "")

		summaryWidths := []float64{35, 95, 30, 26}
		for _, row := range SummaryRows(entries) {
			pdf.SetFont(pdfFont, "", pdfBodySize)
			if row[0] == grandTotalLabel {
				pdf.SetFont(pdfFont, "B", pdfBodySize)
			}
			writePDFRow(pdf, tr, row, summaryWidths)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("error rendering pdf: %w", err)
	}

	return nil
}

func writePDFHeader(pdf *fpdf.Fpdf, header []string, widths []float64) {
	pdf.SetFont(pdfFont, "B", pdfHeaderSize)
	pdf.SetFillColor(230, 230, 230)
	for i, title := range header {
		pdf.CellFormat(widths[i], pdfRowHeight+1, title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(pdfFont, "", pdfBodySize)
}

func writePDFRow(pdf *fpdf.Fpdf, tr func(string) string, cells []string, widths []float64) {
	for i, cell := range cells {
		align := "L"
		if i == 2 || i == 3 {
			align = "R"
		}
		pdf.CellFormat(widths[i], pdfRowHeight, fit(pdf, tr(cell), widths[i]-2), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

// fit truncates s with an ellipsis so that it does not overflow width.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
