// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a running billable-hours server over HTTP.
//
// [ServerAdapter] is used by the hoursctl tool to check a deployment and to
// read cycle progress the same way the dashboard does. It keeps the session
// cookie returned by Login and sends it with every later request.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrUnavailable] for 503).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/billable-hours/models"
)

// ServerAdapter defines the client side of the billable-hours HTTP API.
type ServerAdapter interface {
	// Login posts the login form. On success the session cookie is kept for
	// subsequent requests. Wrong credentials yield [ErrUnauthorized].
	Login(ctx context.Context, credentials models.Credentials) error

	// CycleStats returns the progress of the cycle containing date for the
	// logged in user.
	CycleStats(ctx context.Context, date time.Time) (models.CycleStats, error)

	// Health returns nil when the server and its database are reachable.
	Health(ctx context.Context) error

	// Version returns the version string the server was built with.
	Version(ctx context.Context) (string, error)
}
