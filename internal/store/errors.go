// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Domain errors returned by the repositories.
var (
	ErrUsernameTaken = errors.New("username already exists")

	ErrUserNotFound = errors.New("no user was found")

	ErrLastAdmin = errors.New("at least one admin must remain")

	ErrProjectNameTaken = errors.New("a project with this name already exists")

	ErrProjectNotFound = errors.New("project was not found")

	ErrEntryNotFound = errors.New("time entry was not found")

	// ErrInvalidReference is returned when a write points at a missing
	// user or project.
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrConstraintViolated is returned when a CHECK or NOT NULL constraint
	// rejects a write.
	ErrConstraintViolated = errors.New("value violates a database constraint")
)

// Infrastructure errors. They wrap the driver error with %w.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")

	ErrCommittingTransaction = errors.New("failed to commit transaction")

	ErrScanningRow = errors.New("failed to scan row")

	ErrScanningRows = errors.New("failed to iterate rows")
)
