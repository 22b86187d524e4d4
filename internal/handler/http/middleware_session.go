// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/service"
	"github.com/MKhiriev/billable-hours/internal/utils"
)

// withSession resolves the session cookie into a typed [models.Session] and
// stores it in the request context via [utils.WithSession]. Requests without
// a valid cookie continue anonymously; an invalid cookie, or one naming a
// deleted user, is cleared. The admin flag is the one currently stored.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ParseSessionToken(ctx, cookie.Value)
		if err != nil && !errors.Is(err, service.ErrSessionIsExpiredOrInvalid) {
			logger.FromRequest(r).Err(err).Msg("session lookup failed")
			h.renderError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
			return
		}
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("session cookie rejected")
			h.cookies.clearSession(w)
			next.ServeHTTP(w, r)
			return
		}

		noteUser(r, session.UserID)
		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, session)))
	})
}

// requireSession rejects anonymous requests. Pages redirect to the login
// form remembering the requested URL; JSON endpoints answer 401.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.SessionFromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/") {
			utils.WriteJSONError(w, ErrNoSession.Error(), http.StatusUnauthorized)
			return
		}

		h.flashes.add(w, r, flashInfo, ErrNoSession.Error())
		http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
	})
}

// requireAdmin must run after requireSession.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := utils.SessionFromContext(r.Context())
		if !session.IsAdmin {
			logger.FromRequest(r).Warn().Int64("user_id", session.UserID).Str("uri", r.RequestURI).Msg("admin route refused")
			h.flashes.add(w, r, flashDanger, ErrAdminOnly.Error())
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
