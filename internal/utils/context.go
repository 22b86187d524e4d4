// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the HTTP layer, the services
// and the admin CLI: typed context keys, session tokens, password hashing
// and JSON responses.
package utils

import (
	"context"

	"github.com/MKhiriev/billable-hours/models"
)

// contextKey is a private type for context keys, so values stored by this
// package never collide with string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key the auth middleware stores [models.Session] under.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, s)
}

// SessionFromContext returns the session stored by [WithSession].
// ok is false when the request is anonymous.
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(SessionCtxKey).(models.Session)
	if !ok || s.IsZero() {
		return models.Session{}, false
	}
	return s, true
}

// UserIDFromContext is a shortcut for the ID of the session user.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	s, ok := SessionFromContext(ctx)
	return s.UserID, ok
}
