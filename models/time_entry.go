// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DateLayout is the wire and form format of calendar dates.
const DateLayout = "2006-01-02"

// TimestampLayout is used for created / updated stamps in exports.
const TimestampLayout = "2006-01-02 15:04:05"

// MaxEntryHours is the upper bound of hours recorded in a single entry.
const MaxEntryHours = 24.0

// TimeEntry is one recorded unit of worked time against a project.
type TimeEntry struct {
	// ID is the unique identifier of the entry.
	ID int64 `json:"id"`

	// UserID is the owner of the entry.
	UserID *int64 `json:"user_id,omitempty"`

	// Date is the calendar day the work happened on, at UTC midnight.
	Date time.Time `json:"date"`

	// ProjectID references the project the hours are billed to.
	ProjectID int64 `json:"project_id"`

	// ProjectName is filled by joined reads only.
	ProjectName string `json:"project_name,omitempty"`

	// Hours is the worked time as a decimal, 1.5 meaning 1h30m.
	// Valid values lie in (0, 24].
	Hours float64 `json:"hours"`

	// Description is an optional note about the work.
	Description string `json:"description"`

	// CreatedAt is set once on insert.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt changes on every edit.
	UpdatedAt time.Time `json:"updated_at"`
}

// EntryFilter selects time entries. Zero values mean "no constraint".
type EntryFilter struct {
	UserID int64

	// From and To bound the entry date, both inclusive.
	From *time.Time
	To   *time.Time

	ProjectIDs []int64

	// Query is matched case-insensitively against the entry description
	// and the project name.
	Query string

	// Limit caps the number of returned rows when positive.
	Limit uint64
}

// EntryGroup is a set of entries that share the same date.
type EntryGroup struct {
	Date    time.Time
	Entries []TimeEntry
	Total   float64
}

// Date truncates t to its calendar day at UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a form date in [DateLayout].
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
