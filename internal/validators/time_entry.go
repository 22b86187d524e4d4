// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/MKhiriev/billable-hours/models"
)

// Field names accepted by [TimeEntryValidator].
const (
	FieldDate        = "date"
	FieldProject     = "project"
	FieldHours       = "hours"
	FieldDescription = "description"
	FieldUserID      = "user_id"
)

const maxEntryDescription = 500

// TimeEntryValidator validates [models.TimeEntry] values.
type TimeEntryValidator struct{}

func NewTimeEntryValidator() Validator {
	return &TimeEntryValidator{}
}

func (v *TimeEntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TimeEntry:
		return v.validateTimeEntry(value, fields...)
	case *models.TimeEntry:
		return v.validateTimeEntry(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *TimeEntryValidator) validateTimeEntry(entry models.TimeEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldProject, FieldHours, FieldDescription, FieldUserID}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldDate:
			if entry.Date.IsZero() {
				errs = append(errs, ErrInvalidDate)
			}
		case FieldProject:
			if entry.ProjectID <= 0 {
				errs = append(errs, ErrProjectRequired)
			}
		case FieldHours:
			if entry.Hours <= 0 {
				errs = append(errs, ErrHoursNotPositive)
			}
			if entry.Hours > models.MaxEntryHours {
				errs = append(errs, ErrHoursExceedDay)
			}
		case FieldDescription:
			if utf8.RuneCountInString(entry.Description) > maxEntryDescription {
				errs = append(errs, ErrEntryDescriptionLong)
			}
		case FieldUserID:
			if entry.UserID == nil || *entry.UserID <= 0 {
				errs = append(errs, ErrInvalidUserID)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}
