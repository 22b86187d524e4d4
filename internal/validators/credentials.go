// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/billable-hours/models"
)

// Field names accepted by [CredentialsValidator].
const (
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldConfirmation = "confirmation"
)

const (
	minUsername = 3
	maxUsername = 80
	minPassword = 6
)

// CredentialsValidator validates signup credentials and password changes.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	case models.PasswordChange:
		return v.validatePasswordChange(value)
	case *models.PasswordChange:
		return v.validatePasswordChange(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldUsername:
			n := utf8.RuneCountInString(c.Username)
			switch {
			case strings.TrimSpace(c.Username) == "":
				errs = append(errs, ErrUsernameRequired)
			case n < minUsername || n > maxUsername || strings.ContainsAny(c.Username, " \t\r\n"):
				errs = append(errs, ErrUsernameInvalid)
			}
		case FieldPassword:
			if utf8.RuneCountInString(c.Password) < minPassword {
				errs = append(errs, ErrPasswordTooShort)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

func (v *CredentialsValidator) validatePasswordChange(c models.PasswordChange) error {
	var errs []error
	if c.UserID <= 0 {
		errs = append(errs, ErrInvalidUserID)
	}
	if utf8.RuneCountInString(c.NewPassword) < minPassword {
		errs = append(errs, ErrPasswordTooShort)
	}
	if c.NewPassword != c.Confirmation {
		errs = append(errs, ErrPasswordsDoNotMatch)
	}
	return errors.Join(errs...)
}
