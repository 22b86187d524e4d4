// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/billable-hours/internal/logger"
)

// withRecover turns a panicking handler into the 500 page. http.ErrAbortHandler
// is re-raised so the server can drop the connection as usual.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("uri", r.RequestURI).
				Msg("handler panicked")

			h.renderError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}()

		next.ServeHTTP(w, r)
	})
}
