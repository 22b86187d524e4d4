// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"slices"
	"unicode"
	"unicode/utf8"
)

// Messages flattens a (possibly joined or wrapped) validation error into the
// user-facing messages it carries, one per violation. An error without any
// validation violation yields its own message.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var msgs []string
	collect(err, &msgs)
	if len(msgs) == 0 {
		return []string{sentence(err.Error())}
	}
	return msgs
}

func collect(err error, msgs *[]string) {
	if slices.Contains(validationErrors, err) {
		*msgs = append(*msgs, sentence(err.Error()))
		return
	}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			collect(inner, msgs)
		}
	case interface{ Unwrap() error }:
		if inner := e.Unwrap(); inner != nil {
			collect(inner, msgs)
		}
	}
}

func sentence(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// IsValidation reports whether err contains at least one validation error
// produced by this package.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var validationErrors = []error{
	ErrInvalidDate, ErrProjectRequired, ErrProjectUnavailable, ErrHoursNotPositive, ErrHoursExceedDay,
	ErrEntryDescriptionLong, ErrInvalidUserID,
	ErrProjectNameRequired, ErrProjectNameTooLong, ErrProjectDescriptionLong,
	ErrMonthlyGoalNotPositive, ErrCurrencySymbolInvalid, ErrHourlyRateNegative,
	ErrUsernameRequired, ErrUsernameInvalid, ErrPasswordTooShort, ErrPasswordsDoNotMatch,
}
