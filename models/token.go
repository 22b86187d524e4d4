// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the JWT payload stored in the session cookie.
// The registered subject claim carries the user ID.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Username is copied into the token so views can greet the user
	// without a database round trip.
	Username string `json:"usr"`

	// IsAdmin mirrors [User.IsAdmin] at the moment of login.
	IsAdmin bool `json:"adm"`
}

// SessionToken is a freshly signed session token.
type SessionToken struct {
	// SignedString is the compact JWT placed into the session cookie.
	SignedString string

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time
}

func (t SessionToken) String() string {
	return t.SignedString
}

// Session is the typed, validated session of an authenticated request.
// The auth middleware places it into the request context.
type Session struct {
	UserID    int64
	Username  string
	IsAdmin   bool
	ExpiresAt time.Time
}

// IsZero reports whether s carries no authenticated user.
func (s Session) IsZero() bool {
	return s.UserID == 0
}
