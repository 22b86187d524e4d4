// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ExportFormat selects the rendered file type of an export.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

// ExportRequest describes which entries to export and how.
type ExportRequest struct {
	UserID int64

	// From and To bound the entry dates; nil means unbounded.
	From *time.Time
	To   *time.Time

	// ProjectIDs restricts the export to the given projects when non-empty.
	ProjectIDs []int64

	IncludeDescriptions bool
	IncludeTotals       bool

	Format ExportFormat
}

// ExportFile is a rendered export ready to be sent as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
