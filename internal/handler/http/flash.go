// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/gorilla/sessions"
)

const flashCookieName = "billable_hours_flash"

// Flash categories, used as CSS classes by the layout.
const (
	flashSuccess = "success"
	flashInfo    = "info"
	flashWarning = "warning"
	flashDanger  = "danger"
)

var flashCategories = []string{flashDanger, flashWarning, flashSuccess, flashInfo}

// flashMessage is a one-shot message shown on the next rendered page.
type flashMessage struct {
	Category string
	Message  string
}

// flashStore keeps flash messages in an authenticated cookie until the next
// page is rendered.
type flashStore struct {
	store *sessions.CookieStore
}

func newFlashStore(key string, secure bool) *flashStore {
	store := sessions.NewCookieStore([]byte(key))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &flashStore{store: store}
}

// add queues messages under category. It must be called before the
// response headers are written.
func (f *flashStore) add(w http.ResponseWriter, r *http.Request, category string, messages ...string) {
	log := logger.FromRequest(r)

	// A tampered or stale cookie yields a fresh session together with an error.
	session, err := f.store.Get(r, flashCookieName)
	if err != nil {
		log.Debug().Err(err).Msg("flash cookie discarded")
	}
	for _, m := range messages {
		session.AddFlash(m, category)
	}
	if err := session.Save(r, w); err != nil {
		log.Err(err).Msg("saving flash cookie failed")
	}
}

// pop returns and clears all queued messages.
func (f *flashStore) pop(w http.ResponseWriter, r *http.Request) []flashMessage {
	// On a decoding error Get still returns a usable empty session.
	session, _ := f.store.Get(r, flashCookieName)

	var messages []flashMessage
	for _, category := range flashCategories {
		for _, v := range session.Flashes(category) {
			if s, ok := v.(string); ok {
				messages = append(messages, flashMessage{Category: category, Message: s})
			}
		}
	}
	if len(messages) > 0 {
		if err := session.Save(r, w); err != nil {
			logger.FromRequest(r).Err(err).Msg("clearing flash cookie failed")
		}
	}
	return messages
}
