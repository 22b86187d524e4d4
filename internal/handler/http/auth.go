// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/service"
	"github.com/MKhiriev/billable-hours/internal/utils"
	"github.com/MKhiriev/billable-hours/models"
)

type authView struct {
	Username string
	Next     string
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.SessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, "login", "Log in", authView{Next: safeNext(r.URL.Query().Get("next"))})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials := models.Credentials{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}
	view := authView{Username: credentials.Username, Next: safeNext(r.PostFormValue("next"))}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			err = service.ErrWrongCredentials
		}
		log.Debug().Err(err).Str("username", credentials.Username).Msg("login failed")
		h.flashError(w, r, err)
		h.render(w, r, statusFromError(err), "login", "Log in", view)
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("user logged in")
	target := view.Next
	if target == "" {
		target = "/"
	}
	h.redirect(w, r, target, flashSuccess, "Logged in successfully.")
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.SessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, "signup", "Sign up", authView{})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	credentials := models.Credentials{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}
	view := authView{Username: credentials.Username}

	if credentials.Password != r.PostFormValue("confirm_password") {
		h.flashError(w, r, ErrPasswordsMix)
		h.render(w, r, http.StatusBadRequest, "signup", "Sign up", view)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, credentials)
	if err != nil {
		h.flashError(w, r, err)
		h.render(w, r, statusFromError(err), "signup", "Sign up", view)
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	message := "Account created successfully!"
	if user.IsAdmin {
		message = "Account created successfully! As the first user you are the administrator."
	}
	h.redirect(w, r, "/", flashSuccess, message)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.clearSession(w)
	h.redirect(w, r, "/login", flashInfo, "You have been logged out.")
}

func (h *Handler) passwordPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "password", "Change password", nil)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	err := h.services.AuthService.ChangePassword(r.Context(), models.PasswordChange{
		UserID:          sessionFrom(r).UserID,
		CurrentPassword: r.PostFormValue("current_password"),
		NewPassword:     r.PostFormValue("new_password"),
		Confirmation:    r.PostFormValue("confirm_password"),
	})
	if err != nil {
		h.flashError(w, r, err)
		h.render(w, r, statusFromError(err), "password", "Change password", nil)
		return
	}

	h.redirect(w, r, "/", flashSuccess, "Password changed successfully!")
}

// startSession issues a session token for user and stores it in the session
// cookie. On failure it renders the error page and returns false.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User) bool {
	token, err := h.services.AuthService.CreateSessionToken(r.Context(), user)
	if err != nil {
		h.fail(w, r, err)
		return false
	}
	h.cookies.setSession(w, token)
	return true
}

// safeNext keeps only local paths so the login form cannot redirect to
// another host.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}
