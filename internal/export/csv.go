// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/MKhiriev/billable-hours/models"
)

// CSV writes entries as comma separated values with a header row and, when
// requested, a summary block separated by an empty row.
func CSV(w io.Writer, entries []models.TimeEntry, opts Options) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(Header(opts.IncludeDescriptions)); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}

	for _, e := range entries {
		if err := cw.Write(Row(e, opts.IncludeDescriptions)); err != nil {
			return fmt.Errorf("error writing csv row: %w", err)
		}
	}

	if opts.IncludeTotals && len(entries) > 0 {
		rows := append([][]string{{}, {summaryLabel}}, SummaryRows(entries)...)
		if err := cw.WriteAll(rows); err != nil {
			return fmt.Errorf("error writing csv summary: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("error flushing csv: %w", err)
	}

	return nil
}
