// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Dialect captures the few places where SQLite and PostgreSQL SQL differ.
type Dialect struct {
	// Name is the goose dialect and migration directory name.
	Name string

	// Placeholder is the bind variable style of the driver.
	Placeholder sq.PlaceholderFormat

	hourFormat    string
	weekdayFormat string
}

var (
	SQLiteDialect = Dialect{
		Name:          "sqlite3",
		Placeholder:   sq.Question,
		hourFormat:    "CAST(strftime('%%H', %s) AS INTEGER)",
		weekdayFormat: "CAST(strftime('%%w', %s) AS INTEGER)",
	}

	PostgresDialect = Dialect{
		Name:          "postgres",
		Placeholder:   sq.Dollar,
		hourFormat:    "CAST(EXTRACT(HOUR FROM %s) AS INTEGER)",
		weekdayFormat: "CAST(EXTRACT(DOW FROM %s) AS INTEGER)",
	}
)

// HourOf returns an expression yielding the hour (0-23) of a timestamp column.
func (d Dialect) HourOf(column string) string {
	return fmt.Sprintf(d.hourFormat, column)
}

// WeekdayOf returns an expression yielding the weekday of a date column,
// 0 being Sunday.
func (d Dialect) WeekdayOf(column string) string {
	return fmt.Sprintf(d.weekdayFormat, column)
}

// Builder returns a squirrel statement builder bound to the dialect's
// placeholder format.
func (d Dialect) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.Placeholder)
}

// Rebind rewrites "?" placeholders of a hand-written query for the dialect.
func (d Dialect) Rebind(query string) string {
	q, err := d.Placeholder.ReplacePlaceholders(query)
	if err != nil {
		return query
	}
	return q
}
