// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/billable-hours/models"
)

// timeLayouts are the text forms SQLite stores DATE and TIMESTAMP values in.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	models.DateLayout,
}

// dbTime scans DATE and TIMESTAMP columns regardless of whether the driver
// returns them as time.Time or as text. Values are normalized to UTC.
type dbTime struct {
	time.Time
}

func (t *dbTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into time", src)
	}
}

func (t *dbTime) parse(s string) error {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as time", s)
}

// dbDate is a [dbTime] truncated to the calendar day.
type dbDate struct {
	dbTime
}

func (d *dbDate) Scan(src any) error {
	if err := d.dbTime.Scan(src); err != nil {
		return err
	}
	if !d.Time.IsZero() {
		d.Time = models.Date(d.Time)
	}
	return nil
}

// dateArg renders a calendar date the way every dialect compares it.
func dateArg(t time.Time) string {
	return t.Format(models.DateLayout)
}

func nullInt64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func int64PtrArg(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}
