// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report holds the in-memory aggregation rules shared by the
// dashboard, the entry listings and the exports.
package report

import (
	"math"
	"slices"
	"time"

	"github.com/MKhiriev/billable-hours/models"
)

// ProgressPercentage returns total as a share of goal, capped at 100.
// A goal that is not positive means "no goal" and yields 0.
func ProgressPercentage(total, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Min(100, total/goal*100)
}

// RemainingHours returns the hours still missing to reach goal, never negative.
func RemainingHours(total, goal float64) float64 {
	return math.Max(0, goal-total)
}

// Stats builds the progress summary of window c.
func Stats(c models.Cycle, total, goal float64) models.CycleStats {
	return models.CycleStats{
		CycleName:          c.Name,
		TotalHours:         total,
		MonthlyGoal:        goal,
		RemainingHours:     RemainingHours(total, goal),
		ProgressPercentage: ProgressPercentage(total, goal),
	}
}

// SumHours adds up the hours of all entries.
func SumHours(entries []models.TimeEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Hours
	}
	return total
}

// GroupByDate splits entries into runs of equal dates, preserving the input
// order. Entries are expected to be sorted by date already.
func GroupByDate(entries []models.TimeEntry) []models.EntryGroup {
	groups := make([]models.EntryGroup, 0)
	for _, e := range entries {
		n := len(groups)
		if n == 0 || !groups[n-1].Date.Equal(e.Date) {
			groups = append(groups, models.EntryGroup{Date: e.Date})
			n++
		}
		groups[n-1].Entries = append(groups[n-1].Entries, e)
		groups[n-1].Total += e.Hours
	}
	return groups
}

// DailyTotals sums hours per date, newest date first.
func DailyTotals(entries []models.TimeEntry) []models.DailyTotal {
	byDate := make(map[time.Time]float64)
	order := make([]time.Time, 0)
	for _, e := range entries {
		d := models.Date(e.Date)
		if _, seen := byDate[d]; !seen {
			order = append(order, d)
		}
		byDate[d] += e.Hours
	}

	totals := make([]models.DailyTotal, 0, len(order))
	for _, d := range order {
		totals = append(totals, models.DailyTotal{Date: d, Hours: byDate[d]})
	}
	slices.SortFunc(totals, func(a, b models.DailyTotal) int {
		return b.Date.Compare(a.Date)
	})

	return totals
}

// ProjectTotals sums hours per project name in first-seen order.
func ProjectTotals(entries []models.TimeEntry) []models.ProjectTotal {
	index := make(map[string]int)
	totals := make([]models.ProjectTotal, 0)
	for _, e := range entries {
		i, ok := index[e.ProjectName]
		if !ok {
			i = len(totals)
			index[e.ProjectName] = i
			totals = append(totals, models.ProjectTotal{ProjectName: e.ProjectName})
		}
		totals[i].Hours += e.Hours
	}
	return totals
}

// DaysCompleted returns how many days of c have started by today, and the
// total number of days in c.
func DaysCompleted(c models.Cycle, today time.Time) (completed, total int) {
	total = c.Days()
	today = models.Date(today)
	if today.Before(c.Start) {
		return 0, total
	}

	completed = int(today.Sub(c.Start).Hours()/24) + 1
	return min(completed, total), total
}
