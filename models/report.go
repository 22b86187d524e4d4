// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ReportFilter scopes aggregate queries to a user and a date window.
type ReportFilter struct {
	UserID int64
	From   time.Time
	To     time.Time
}

// DailyTotal is the sum of hours recorded on one date.
type DailyTotal struct {
	Date  time.Time `json:"date"`
	Hours float64   `json:"hours"`
}

// ProjectStat aggregates the entries of one project.
type ProjectStat struct {
	ProjectName string  `json:"project_name"`
	TotalHours  float64 `json:"total_hours"`
	EntryCount  int64   `json:"entry_count"`
	AvgHours    float64 `json:"avg_hours"`
}

// ProjectTotal is a project's share of an export or a listing.
type ProjectTotal struct {
	ProjectName string
	Hours       float64
}

// HourlyStat groups entries by the hour of day they were created at.
type HourlyStat struct {
	Hour       int     `json:"hour"`
	Entries    int64   `json:"entries"`
	TotalHours float64 `json:"total_hours"`
}

// WeekdayStat groups entries by the weekday of their date.
type WeekdayStat struct {
	Weekday    time.Weekday `json:"day_of_week"`
	AvgHours   float64      `json:"avg_hours"`
	TotalHours float64      `json:"total_hours"`
}

// CycleStats is the progress of a window against the monthly goal.
// It is also the JSON body of the cycle stats API.
type CycleStats struct {
	CycleName          string  `json:"cycle_name"`
	TotalHours         float64 `json:"total_hours"`
	MonthlyGoal        float64 `json:"monthly_goal"`
	RemainingHours     float64 `json:"remaining_hours"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// Dashboard is everything the landing page shows for one window.
type Dashboard struct {
	Cycle           Cycle
	Stats           CycleStats
	RecentEntries   []TimeEntry
	DailyTotals     []DailyTotal
	DaysCompleted   int
	TotalDays       int
	AvailableCycles []Cycle
}

// Report is the analytics page payload for one window.
type Report struct {
	Cycle        Cycle
	ProjectStats []ProjectStat
	HourlyStats  []HourlyStat
	WeekdayStats []WeekdayStat
	TotalHours   float64
	MonthlyGoal  float64
	HourlyRate   float64
	Currency     string
	Earnings     float64
}
