// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/billable-hours/models"
)

type settingsForm struct {
	MonthlyGoalHours  string
	CurrencySymbol    string
	DefaultHourlyRate string
}

func (h *Handler) settingsPage(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.SettingsService.GetSettings(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "settings", "Settings", settingsForm{
		MonthlyGoalHours:  strconv.FormatFloat(settings.MonthlyGoalHours, 'f', -1, 64),
		CurrencySymbol:    settings.CurrencySymbol,
		DefaultHourlyRate: strconv.FormatFloat(settings.DefaultHourlyRate, 'f', -1, 64),
	})
}

func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	form := settingsForm{
		MonthlyGoalHours:  strings.TrimSpace(r.PostFormValue("monthly_goal_hours")),
		CurrencySymbol:    strings.TrimSpace(r.PostFormValue("currency_symbol")),
		DefaultHourlyRate: strings.TrimSpace(r.PostFormValue("default_hourly_rate")),
	}

	// Unparseable numbers become zero or negative and fail validation.
	goal, err := strconv.ParseFloat(form.MonthlyGoalHours, 64)
	if err != nil {
		goal = 0
	}
	rate, err := strconv.ParseFloat(form.DefaultHourlyRate, 64)
	if err != nil {
		rate = -1
	}

	err = h.services.SettingsService.SaveSettings(r.Context(), models.Settings{
		MonthlyGoalHours:  goal,
		CurrencySymbol:    form.CurrencySymbol,
		DefaultHourlyRate: rate,
	})
	if err != nil {
		h.flashError(w, r, err)
		h.render(w, r, statusFromError(err), "settings", "Settings", form)
		return
	}

	h.redirect(w, r, "/settings", flashSuccess, "Settings updated successfully!")
}
