// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// Validation errors. [Messages] turns them into the flash messages shown to
// the user.
var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidDate          = errors.New("please provide a valid date")
	ErrProjectRequired      = errors.New("please select a project")
	ErrProjectUnavailable   = errors.New("invalid project selected")
	ErrHoursNotPositive     = errors.New("please provide valid hours (greater than 0)")
	ErrHoursExceedDay       = errors.New("hours cannot exceed 24 per day")
	ErrEntryDescriptionLong = errors.New("description cannot exceed 500 characters")
	ErrInvalidUserID        = errors.New("invalid user")

	ErrProjectNameRequired    = errors.New("project name is required")
	ErrProjectNameTooLong     = errors.New("project name cannot exceed 100 characters")
	ErrProjectDescriptionLong = errors.New("project description cannot exceed 255 characters")

	ErrMonthlyGoalNotPositive = errors.New("monthly goal must be greater than 0")
	ErrCurrencySymbolInvalid  = errors.New("currency symbol must be 1 to 5 characters")
	ErrHourlyRateNegative     = errors.New("hourly rate cannot be negative")

	ErrUsernameRequired    = errors.New("username is required")
	ErrUsernameInvalid     = errors.New("username must be 3 to 80 characters without spaces")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
)
