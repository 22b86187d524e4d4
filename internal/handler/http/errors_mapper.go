// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/billable-hours/internal/cycle"
	"github.com/MKhiriev/billable-hours/internal/export"
	"github.com/MKhiriev/billable-hours/internal/service"
	"github.com/MKhiriev/billable-hours/internal/store"
	"github.com/MKhiriev/billable-hours/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidDate:  http.StatusBadRequest,
	ErrInvalidWeek:  http.StatusBadRequest,
	ErrInvalidID:    http.StatusNotFound,
	ErrInvalidForm:  http.StatusBadRequest,
	ErrNoSession:    http.StatusUnauthorized,
	ErrAdminOnly:    http.StatusForbidden,
	ErrPasswordsMix: http.StatusBadRequest,

	cycle.ErrInvalidRange:       http.StatusBadRequest,
	cycle.ErrInvalidWeek:        http.StatusBadRequest,
	export.ErrUnsupportedFormat: http.StatusBadRequest,

	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	service.ErrWrongCredentials:          http.StatusUnauthorized,
	service.ErrWrongPassword:             http.StatusBadRequest,
	service.ErrSessionIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:                 http.StatusForbidden,
	service.ErrCannotChangeOwnRole:       http.StatusBadRequest,
	service.ErrAdminRequired:             http.StatusForbidden,
	service.ErrUnknownQuickExport:        http.StatusBadRequest,
	service.ErrUsersAlreadyExist:         http.StatusConflict,

	store.ErrUsernameTaken:      http.StatusConflict,
	store.ErrProjectNameTaken:   http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrLastAdmin:          http.StatusConflict,
	store.ErrProjectNotFound:    http.StatusNotFound,
	store.ErrEntryNotFound:      http.StatusNotFound,
	store.ErrInvalidReference:   http.StatusBadRequest,
	store.ErrConstraintViolated: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if validators.IsValidation(err) {
		return http.StatusBadRequest
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// userFacingErrors are sentinels whose text can be shown to the user as is,
// most specific first.
var userFacingErrors = []error{
	ErrInvalidDate, ErrInvalidWeek, ErrPasswordsMix,
	cycle.ErrInvalidRange, export.ErrUnsupportedFormat,
	store.ErrUsernameTaken, store.ErrProjectNameTaken,
	store.ErrProjectNotFound, store.ErrEntryNotFound, store.ErrUserNotFound,
	service.ErrWrongCredentials, service.ErrWrongPassword, service.ErrForbidden,
	service.ErrCannotChangeOwnRole, service.ErrAdminRequired, store.ErrLastAdmin,
	service.ErrUnknownQuickExport,
}

// userMessages returns the flash texts describing err. Validation failures
// yield one message per violation, unexpected errors a generic one.
func userMessages(err error) []string {
	if validators.IsValidation(err) {
		return validators.Messages(err)
	}
	for _, target := range userFacingErrors {
		if errors.Is(err, target) {
			return []string{capitalize(target.Error())}
		}
	}
	if statusFromError(err) == http.StatusInternalServerError {
		return []string{"Something went wrong. Please try again."}
	}
	return []string{capitalize(err.Error())}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
