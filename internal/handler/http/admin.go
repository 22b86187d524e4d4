// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/models"
)

func (h *Handler) users(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "users", "Users", struct {
		Users   []models.User
		ActorID int64
	}{users, sessionFrom(r).UserID})
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.services.UserService.ResetPassword(r.Context(), id, r.PostFormValue("new_password")); err != nil {
		h.flashError(w, r, err)
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", id).Int64("actor_id", sessionFrom(r).UserID).Msg("password reset by admin")
	h.redirect(w, r, "/admin/users", flashSuccess, "Password reset successfully!")
}

func (h *Handler) toggleAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	user, err := h.services.UserService.ToggleAdmin(r.Context(), sessionFrom(r), id)
	if err != nil {
		h.flashError(w, r, err)
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	state := "revoked from"
	if user.IsAdmin {
		state = "granted to"
	}
	h.redirect(w, r, "/admin/users", flashSuccess, fmt.Sprintf("Admin access %s %s.", state, user.Username))
}
