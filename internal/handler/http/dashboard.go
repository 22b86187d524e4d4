// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/billable-hours/internal/cycle"
	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/utils"
	"github.com/MKhiriev/billable-hours/models"
	"github.com/go-chi/chi/v5"
)

type dashboardView struct {
	models.Dashboard
	Currency  string
	StartDate string
	EndDate   string
	Custom    bool
}

// dashboard shows the current cycle, or the custom window given by the
// start_date and end_date query parameters.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := sessionFrom(r)
	query := r.URL.Query()

	view := dashboardView{StartDate: query.Get("start_date"), EndDate: query.Get("end_date")}

	var window *models.Cycle
	if view.StartDate != "" && view.EndDate != "" {
		custom, err := customWindow(view.StartDate, view.EndDate)
		if err != nil {
			h.flashError(w, r, err)
		} else {
			window, view.Custom = &custom, true
		}
	}

	dashboard, err := h.services.ReportService.Dashboard(ctx, session.UserID, window)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	settings, err := h.services.SettingsService.GetSettings(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	view.Dashboard = dashboard
	view.Currency = settings.CurrencySymbol
	h.render(w, r, http.StatusOK, "dashboard", "Dashboard", view)
}

func customWindow(start, end string) (models.Cycle, error) {
	from, err := parseDate(start)
	if err != nil {
		return models.Cycle{}, err
	}
	to, err := parseDate(end)
	if err != nil {
		return models.Cycle{}, err
	}
	return cycle.Range(from, to)
}

// cycleStats answers the progress of the cycle containing {date} as JSON.
func (h *Handler) cycleStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		utils.WriteJSONError(w, ErrInvalidDate.Error(), http.StatusBadRequest)
		return
	}

	stats, err := h.services.ReportService.CycleStats(r.Context(), sessionFrom(r).UserID, cycle.For(date))
	if err != nil {
		log.Err(err).Msg("cycle stats failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, stats, http.StatusOK); err != nil {
		log.Err(err).Msg("writing cycle stats failed")
	}
}

// reports shows the analytics of the cycle containing cycle_date, or of the
// current cycle.
func (h *Handler) reports(w http.ResponseWriter, r *http.Request) {
	window := h.services.Cycles.Current()
	if value := r.URL.Query().Get("cycle_date"); value != "" {
		date, err := parseDate(value)
		if err != nil {
			h.flashError(w, r, err)
		} else {
			window = cycle.For(date)
		}
	}

	report, err := h.services.ReportService.Report(r.Context(), sessionFrom(r).UserID, window)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "reports", "Reports", struct {
		models.Report
		AvailableCycles []models.Cycle
	}{report, h.services.Cycles.Previous(12)})
}
