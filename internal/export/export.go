// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export renders time entries into downloadable CSV and PDF files.
//
// Both renderers expect entries already ordered by date (newest first) and
// creation time, joined with their project names, and share one column
// layout and one summary block.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/billable-hours/internal/hours"
	"github.com/MKhiriev/billable-hours/internal/report"
	"github.com/MKhiriev/billable-hours/models"
	"github.com/gosimple/slug"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

const (
	filenamePrefix  = "time_tracking_export"
	filenameDate    = "20060102"
	filenameStamp   = "20060102_150405"
	summaryLabel    = "SUMMARY"
	totalLabel      = "TOTAL"
	grandTotalLabel = "GRAND TOTAL"
	allProjects     = "All Projects"
)

// Options control optional columns and blocks of an export.
type Options struct {
	IncludeDescriptions bool
	IncludeTotals       bool

	// Title is printed above the PDF table. CSV ignores it.
	Title string
}

// Header returns the column titles of an export.
func Header(includeDescriptions bool) []string {
	header := []string{"Date", "Project", "Hours (Decimal)", "Hours (HH:MM)"}
	if includeDescriptions {
		header = append(header, "Description")
	}
	return append(header, "Created At", "Updated At")
}

// Row returns the cells of one entry in [Header] order.
func Row(e models.TimeEntry, includeDescriptions bool) []string {
	row := []string{
		e.Date.Format(models.DateLayout),
		e.ProjectName,
		hours.FormatDecimal(e.Hours),
		hours.Format(e.Hours),
	}
	if includeDescriptions {
		row = append(row, e.Description)
	}
	return append(row,
		e.CreatedAt.Format(models.TimestampLayout),
		e.UpdatedAt.Format(models.TimestampLayout),
	)
}

// SummaryRows returns one TOTAL row per project in first-seen order followed
// by the GRAND TOTAL row. It returns nil for an empty export.
func SummaryRows(entries []models.TimeEntry) [][]string {
	if len(entries) == 0 {
		return nil
	}

	totals := report.ProjectTotals(entries)
	rows := make([][]string, 0, len(totals)+1)
	for _, t := range totals {
		rows = append(rows, []string{totalLabel, t.ProjectName, hours.FormatDecimal(t.Hours), hours.Format(t.Hours)})
	}

	grand := report.SumHours(entries)
	return append(rows, []string{grandTotalLabel, allProjects, hours.FormatDecimal(grand), hours.Format(grand)})
}

// Write renders entries in the requested format.
func Write(w io.Writer, format models.ExportFormat, entries []models.TimeEntry, opts Options) error {
	switch format {
	case models.ExportCSV:
		return CSV(w, entries, opts)
	case models.ExportPDF:
		return PDF(w, entries, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ContentType returns the MIME type of format.
func ContentType(format models.ExportFormat) string {
	switch format {
	case models.ExportPDF:
		return "application/pdf"
	default:
		return "text/csv"
	}
}

// Filename builds the attachment name. It embeds the optional project, the
// resolved date range and the generation timestamp, e.g.
// time_tracking_export_20240125_to_20240224_20240301_101500.csv.
func Filename(from, to *time.Time, projectName string, format models.ExportFormat, now time.Time) string {
	var b strings.Builder
	b.WriteString(filenamePrefix)

	if projectName != "" {
		if s := slug.Make(projectName); s != "" {
			b.WriteString("_" + s)
		}
	}

	switch {
	case from != nil && to != nil:
		b.WriteString("_" + from.Format(filenameDate) + "_to_" + to.Format(filenameDate))
	case from != nil:
		b.WriteString("_from_" + from.Format(filenameDate))
	case to != nil:
		b.WriteString("_until_" + to.Format(filenameDate))
	}

	b.WriteString("_" + now.Format(filenameStamp) + "." + string(format))
	return b.String()
}
