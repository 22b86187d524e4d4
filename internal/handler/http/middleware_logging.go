// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/go-chi/chi/v5"
)

// accessRecord collects what inner middleware learns about a request
// for its access log line.
type accessRecord struct {
	userID int64
}

type accessRecordKey struct{}

// noteUser puts the session user on the access log line of r.
func noteUser(r *http.Request, userID int64) {
	if rec, ok := r.Context().Value(accessRecordKey{}).(*accessRecord); ok {
		rec.userID = userID
	}
}

// withLogging writes one access log line per request. Besides the raw URI
// it records the matched route, e.g. /edit_entry/{id}, and the signed-in
// user, so activity can be grouped per page and per user.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		rec := &accessRecord{}
		r = r.WithContext(context.WithValue(r.Context(), accessRecordKey{}, rec))
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		event := log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method)
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				event = event.Str("route", pattern)
			}
		}
		if rec.userID != 0 {
			event = event.Int64("user_id", rec.userID)
		}

		event.
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
