// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading request parameters. Their texts are
// shown to the user as flash messages.
var (
	ErrInvalidDate  = errors.New("Invalid date format. Please use YYYY-MM-DD.")
	ErrInvalidWeek  = errors.New("Invalid week format")
	ErrInvalidID    = errors.New("invalid identifier in path")
	ErrInvalidForm  = errors.New("invalid form submitted")
	ErrUnknownView  = errors.New("unknown view")
	ErrNoSession    = errors.New("Please log in to access this page.")
	ErrAdminOnly    = errors.New("Admin access required.")
	ErrPasswordsMix = errors.New("Passwords do not match")
)
