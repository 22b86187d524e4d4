// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/utils"
	"github.com/MKhiriev/billable-hours/models"
)

// page is the data every view receives. Data holds the view-specific part.
type page struct {
	Title    string
	Session  models.Session
	LoggedIn bool
	Flashes  []flashMessage
	Data     any
}

type errorView struct {
	Status  int
	Message string
	TraceID string
}

// render executes view name into a buffer first, so a failing template
// never leaves a half-written page behind.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	session, loggedIn := utils.SessionFromContext(r.Context())
	p := page{
		Title:    title,
		Session:  session,
		LoggedIn: loggedIn,
		Flashes:  h.flashes.pop(w, r),
		Data:     data,
	}

	var buf bytes.Buffer
	if err := h.views.render(&buf, name, p); err != nil {
		logger.FromRequest(r).Err(err).Str("view", name).Msg("rendering view failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.render(w, r, status, "error", http.StatusText(status), errorView{
		Status:  status,
		Message: message,
		TraceID: w.Header().Get(traceIDHeader),
	})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusNotFound, "The page you are looking for does not exist.")
}

// fail answers a request whose main operation failed with err and that has
// no form to go back to.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	switch status {
	case http.StatusNotFound:
		log.Debug().Err(err).Str("uri", r.RequestURI).Msg("resource not found")
		h.notFound(w, r)
	case http.StatusInternalServerError:
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
		h.renderError(w, r, status, "Something went wrong. Please try again.")
	default:
		log.Debug().Err(err).Str("uri", r.RequestURI).Msg("request rejected")
		h.renderError(w, r, status, userMessages(err)[0])
	}
}

// redirect queues the messages and sends the browser to target.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, target, category string, messages ...string) {
	if len(messages) > 0 {
		h.flashes.add(w, r, category, messages...)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// flashError queues the user-facing description of err and logs
// unexpected failures.
func (h *Handler) flashError(w http.ResponseWriter, r *http.Request, err error) {
	if statusFromError(err) == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("request failed")
	}
	h.flashes.add(w, r, flashDanger, userMessages(err)...)
}

func sessionFrom(r *http.Request) models.Session {
	session, _ := utils.SessionFromContext(r.Context())
	return session
}
