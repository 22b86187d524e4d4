// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Cycle is one billing window. Monthly cycles start on the 25th and end on
// the 24th of the following month; custom and weekly windows reuse the type.
// Cycles are derived values and never persisted.
type Cycle struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
	Name  string    `json:"name"`
}

// Contains reports whether the calendar day of d lies within the window.
func (c Cycle) Contains(d time.Time) bool {
	day := Date(d)
	return !day.Before(c.Start) && !day.After(c.End)
}

// Days returns the number of calendar days in the window.
func (c Cycle) Days() int {
	return int(c.End.Sub(c.Start).Hours()/24) + 1
}

// Key is the form value identifying the cycle, its start date.
func (c Cycle) Key() string {
	return c.Start.Format(DateLayout)
}
