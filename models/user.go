// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account that owns projects and time entries.
type User struct {
	// ID is the unique identifier of the user in the database.
	ID int64 `json:"id"`

	// Username is the unique login name chosen at signup.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// IsAdmin grants access to settings and user management.
	IsAdmin bool `json:"is_admin"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the login / signup form payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordChange is the payload of the change-password form.
type PasswordChange struct {
	UserID          int64
	CurrentPassword string
	NewPassword     string
	Confirmation    string
}
