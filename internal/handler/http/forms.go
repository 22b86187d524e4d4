// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/billable-hours/internal/hours"
	"github.com/MKhiriev/billable-hours/models"
	"github.com/go-chi/chi/v5"
)

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// parseDate parses a YYYY-MM-DD value.
func parseDate(value string) (time.Time, error) {
	d, err := models.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	return d, nil
}

// parseOptionalDate treats an empty value as "no bound".
func parseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseIDs parses every non-empty value; malformed ones are skipped.
func parseIDs(values []string) []int64 {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func parseID(value string) int64 {
	id, _ := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	return id
}

func checkbox(r *http.Request, name string) bool {
	switch r.PostFormValue(name) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// entryForm is the submitted entry form, kept as text for re-rendering.
type entryForm struct {
	ID          int64
	Date        string
	ProjectID   int64
	Hours       string
	Description string
	Stay        bool
}

func readEntryForm(r *http.Request) entryForm {
	return entryForm{
		Date:        strings.TrimSpace(r.PostFormValue("date")),
		ProjectID:   parseID(r.PostFormValue("project_id")),
		Hours:       strings.TrimSpace(r.PostFormValue("hours")),
		Description: r.PostFormValue("description"),
		Stay:        checkbox(r, "stay"),
	}
}

func entryFormOf(e models.TimeEntry) entryForm {
	return entryForm{
		ID:          e.ID,
		Date:        e.Date.Format(models.DateLayout),
		ProjectID:   e.ProjectID,
		Hours:       hours.FormatInput(e.Hours),
		Description: e.Description,
	}
}

// entry converts the form into a TimeEntry owned by userID. A malformed date
// is left zero and rejected by validation together with the other fields.
func (f entryForm) entry(userID int64) models.TimeEntry {
	date, _ := models.ParseDate(f.Date)
	return models.TimeEntry{
		ID:          f.ID,
		UserID:      &userID,
		Date:        date,
		ProjectID:   f.ProjectID,
		Hours:       hours.ToDecimal(f.Hours),
		Description: f.Description,
	}
}
