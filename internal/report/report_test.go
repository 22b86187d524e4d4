// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"testing"
	"time"

	"github.com/MKhiriev/billable-hours/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, time.February, d, 0, 0, 0, 0, time.UTC)
}

func entry(d int, project string, h float64) models.TimeEntry {
	return models.TimeEntry{Date: day(d), ProjectName: project, Hours: h}
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		goal  float64
		want  float64
	}{
		{"half way", 80, 160, 50},
		{"capped at 100", 200, 160, 100},
		{"zero goal means no goal", 50, 0, 0},
		{"negative goal means no goal", 50, -10, 0},
		{"nothing logged", 0, 160, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ProgressPercentage(tt.total, tt.goal), 1e-9)
		})
	}
}

func TestRemainingHours(t *testing.T) {
	assert.Equal(t, 60.0, RemainingHours(100, 160))
	assert.Equal(t, 0.0, RemainingHours(200, 160))
}

func TestStats(t *testing.T) {
	c := models.Cycle{Name: "Jan 2024 - Feb 2024"}

	got := Stats(c, 40, 160)

	assert.Equal(t, models.CycleStats{
		CycleName:          "Jan 2024 - Feb 2024",
		TotalHours:         40,
		MonthlyGoal:        160,
		RemainingHours:     120,
		ProgressPercentage: 25,
	}, got)
}

// TestDailyTotals_SumMatchesEntries verifies that the daily aggregate over a
// window adds up to the sum of the individual entries.
func TestDailyTotals_SumMatchesEntries(t *testing.T) {
	entries := []models.TimeEntry{
		entry(3, "A", 2.5),
		entry(1, "B", 1),
		entry(3, "B", 4),
		entry(2, "A", 0.25),
		entry(1, "A", 7.75),
	}

	totals := DailyTotals(entries)
	require.Len(t, totals, 3)

	assert.Equal(t, day(3), totals[0].Date)
	assert.Equal(t, day(2), totals[1].Date)
	assert.Equal(t, day(1), totals[2].Date)
	assert.Equal(t, 6.5, totals[0].Hours)
	assert.Equal(t, 8.75, totals[2].Hours)

	var sum float64
	for _, d := range totals {
		sum += d.Hours
	}
	assert.InDelta(t, SumHours(entries), sum, 1e-9)
}

func TestGroupByDate(t *testing.T) {
	entries := []models.TimeEntry{
		entry(3, "A", 1),
		entry(3, "B", 2),
		entry(2, "A", 3),
	}

	groups := GroupByDate(entries)

	require.Len(t, groups, 2)
	assert.Equal(t, day(3), groups[0].Date)
	assert.Len(t, groups[0].Entries, 2)
	assert.Equal(t, 3.0, groups[0].Total)
	assert.Equal(t, day(2), groups[1].Date)
	assert.Equal(t, 3.0, groups[1].Total)
}

func TestGroupByDate_Empty(t *testing.T) {
	assert.Empty(t, GroupByDate(nil))
}

func TestProjectTotals_FirstSeenOrder(t *testing.T) {
	entries := []models.TimeEntry{
		entry(3, "Beta", 1),
		entry(2, "Alpha", 2),
		entry(1, "Beta", 3),
	}

	assert.Equal(t, []models.ProjectTotal{
		{ProjectName: "Beta", Hours: 4},
		{ProjectName: "Alpha", Hours: 2},
	}, ProjectTotals(entries))
}

func TestDaysCompleted(t *testing.T) {
	c := models.Cycle{
		Start: time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.February, 24, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name          string
		today         time.Time
		wantCompleted int
	}{
		{"before start", time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC), 0},
		{"first day", time.Date(2024, time.January, 25, 9, 0, 0, 0, time.UTC), 1},
		{"mid cycle", time.Date(2024, time.February, 4, 0, 0, 0, 0, time.UTC), 11},
		{"after end", time.Date(2024, time.March, 30, 0, 0, 0, 0, time.UTC), 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completed, total := DaysCompleted(c, tt.today)
			assert.Equal(t, 31, total)
			assert.Equal(t, tt.wantCompleted, completed)
		})
	}
}
