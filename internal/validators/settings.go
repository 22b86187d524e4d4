// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/MKhiriev/billable-hours/models"
)

// Field names accepted by [SettingsValidator].
const (
	FieldMonthlyGoal    = "monthly_goal_hours"
	FieldCurrencySymbol = "currency_symbol"
	FieldHourlyRate     = "default_hourly_rate"
)

const maxCurrencySymbol = 5

// SettingsValidator validates [models.Settings] values.
type SettingsValidator struct{}

func NewSettingsValidator() Validator {
	return &SettingsValidator{}
}

func (v *SettingsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Settings:
		return v.validateSettings(value, fields...)
	case *models.Settings:
		return v.validateSettings(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SettingsValidator) validateSettings(s models.Settings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMonthlyGoal, FieldCurrencySymbol, FieldHourlyRate}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldMonthlyGoal:
			if s.MonthlyGoalHours <= 0 {
				errs = append(errs, ErrMonthlyGoalNotPositive)
			}
		case FieldCurrencySymbol:
			if n := utf8.RuneCountInString(s.CurrencySymbol); n == 0 || n > maxCurrencySymbol {
				errs = append(errs, ErrCurrencySymbolInvalid)
			}
		case FieldHourlyRate:
			if s.DefaultHourlyRate < 0 {
				errs = append(errs, ErrHourlyRateNegative)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}
