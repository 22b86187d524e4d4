// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Project is a named bucket that time entries are recorded against.
type Project struct {
	// ID is the unique identifier of the project.
	ID int64 `json:"id"`

	// UserID is the owner of the project. Nil marks a shared project
	// that is visible to every user (seeded defaults).
	UserID *int64 `json:"user_id,omitempty"`

	// Name is unique among all projects.
	Name string `json:"name"`

	// Description is an optional free-text note.
	Description string `json:"description"`

	// Active projects are offered in the entry forms.
	Active bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsShared reports whether the project has no owner.
func (p Project) IsShared() bool {
	return p.UserID == nil
}

// OwnedBy reports whether userID may modify the project.
func (p Project) OwnedBy(userID int64) bool {
	return p.UserID != nil && *p.UserID == userID
}

// ProjectFilter narrows project listings.
type ProjectFilter struct {
	// UserID limits the listing to the user's own and shared projects.
	UserID int64

	// ActiveOnly hides deactivated projects.
	ActiveOnly bool

	// NewestFirst orders by creation time instead of by name.
	NewestFirst bool
}
