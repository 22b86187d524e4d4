// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cycle computes billing windows.
//
// A monthly cycle starts on the 25th of one month and ends on the 24th of
// the next one. All functions operate on naive calendar dates: the time of
// day and the location of the input are dropped and results are returned
// at UTC midnight.
package cycle

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/billable-hours/models"
)

const (
	// StartDay is the day of month every monthly cycle starts on.
	StartDay = 25
	// EndDay is the day of month every monthly cycle ends on.
	EndDay = 24

	monthLayout = "Jan 2006"
	dayLayout   = "Jan 02, 2006"
)

var (
	ErrInvalidRange = errors.New("end date is before start date")
	ErrInvalidWeek  = errors.New("week must look like 2024-W05")
)

// For returns the monthly cycle that contains d.
func For(d time.Time) models.Cycle {
	y, m, day := d.Date()

	// time.Date normalizes month 0 and month 13, rolling the year.
	var start, end time.Time
	if day < StartDay {
		start = time.Date(y, m-1, StartDay, 0, 0, 0, 0, time.UTC)
		end = time.Date(y, m, EndDay, 0, 0, 0, 0, time.UTC)
	} else {
		start = time.Date(y, m, StartDay, 0, 0, 0, 0, time.UTC)
		end = time.Date(y, m+1, EndDay, 0, 0, 0, 0, time.UTC)
	}

	return models.Cycle{
		Start: start,
		End:   end,
		Name:  start.Format(monthLayout) + " - " + end.Format(monthLayout),
	}
}

// Prior returns the monthly cycle immediately before c.
func Prior(c models.Cycle) models.Cycle {
	return For(c.Start.AddDate(0, 0, -1))
}

// Backward yields from and then every earlier monthly cycle, newest first.
// The sequence is unbounded; callers stop ranging when they have enough.
func Backward(from models.Cycle) iter.Seq[models.Cycle] {
	return func(yield func(models.Cycle) bool) {
		for c := from; ; c = Prior(c) {
			if !yield(c) {
				return
			}
		}
	}
}

// Previous returns n consecutive monthly cycles ending with the one that
// contains from, in descending order.
func Previous(from time.Time, n int) []models.Cycle {
	if n <= 0 {
		return []models.Cycle{}
	}

	cycles := make([]models.Cycle, 0, n)
	for c := range Backward(For(from)) {
		cycles = append(cycles, c)
		if len(cycles) == n {
			break
		}
	}

	return cycles
}

// Range builds a custom window between two dates, both inclusive.
func Range(start, end time.Time) (models.Cycle, error) {
	start, end = models.Date(start), models.Date(end)
	if end.Before(start) {
		return models.Cycle{}, ErrInvalidRange
	}

	return models.Cycle{
		Start: start,
		End:   end,
		Name:  start.Format(dayLayout) + " - " + end.Format(dayLayout),
	}, nil
}

// Week builds the Monday to Sunday window of an ISO week given as
// "YYYY-Www", the value format of an HTML week input.
func Week(value string) (models.Cycle, error) {
	yearPart, weekPart, ok := strings.Cut(value, "-W")
	if !ok {
		return models.Cycle{}, ErrInvalidWeek
	}

	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return models.Cycle{}, fmt.Errorf("%w: %w", ErrInvalidWeek, err)
	}
	week, err := strconv.Atoi(weekPart)
	if err != nil {
		return models.Cycle{}, fmt.Errorf("%w: %w", ErrInvalidWeek, err)
	}

	// January 4th always falls into ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekOneMonday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
	start := weekOneMonday.AddDate(0, 0, (week-1)*7)

	if y, w := start.ISOWeek(); y != year || w != week {
		return models.Cycle{}, ErrInvalidWeek
	}

	return models.Cycle{
		Start: start,
		End:   start.AddDate(0, 0, 6),
		Name:  fmt.Sprintf("Week %d, %d", week, year),
	}, nil
}

// Calculator resolves cycles relative to "now". The clock is injected so
// that callers and tests agree on what today is.
type Calculator struct {
	now func() time.Time
}

// NewCalculator returns a Calculator using now as its clock.
// A nil clock falls back to [time.Now].
func NewCalculator(now func() time.Time) *Calculator {
	if now == nil {
		now = time.Now
	}
	return &Calculator{now: now}
}

// Today returns the current calendar day.
func (c *Calculator) Today() time.Time {
	return models.Date(c.now())
}

// Current returns the monthly cycle containing today.
func (c *Calculator) Current() models.Cycle {
	return For(c.now())
}

// Previous returns the n most recent monthly cycles, current first.
func (c *Calculator) Previous(n int) []models.Cycle {
	return Previous(c.now(), n)
}

// Now returns the current instant of the calculator's clock.
func (c *Calculator) Now() time.Time {
	return c.now()
}
