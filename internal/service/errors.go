// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("invalid username or password")
	ErrWrongPassword       = errors.New("current password is incorrect")

	ErrTokenCreationFailed       = errors.New("session token creation failed")
	ErrSessionIsExpiredOrInvalid = errors.New("session is expired or invalid")

	ErrForbidden           = errors.New("you are not allowed to modify this project")
	ErrUsersAlreadyExist   = errors.New("users already exist")
	ErrCannotChangeOwnRole = errors.New("you cannot change your own admin status")
	ErrAdminRequired       = errors.New("admin access required")

	ErrUnknownQuickExport = errors.New("unknown quick export")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
