// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/billable-hours/internal/report"
	"github.com/MKhiriev/billable-hours/internal/service"
	"github.com/MKhiriev/billable-hours/models"
)

type searchView struct {
	Query     string
	ProjectID int64
	DateFrom  string
	DateTo    string
	Searched  bool
	Results   []models.TimeEntry
	Total     float64
	Limited   bool
	Projects  []models.Project
}

// search matches q against descriptions and project names, optionally
// narrowed by project and date range. Without any criterion only the form
// is shown.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := sessionFrom(r)
	query := r.URL.Query()

	view := searchView{
		Query:     strings.TrimSpace(query.Get("q")),
		ProjectID: parseID(query.Get("project")),
		DateFrom:  query.Get("date_from"),
		DateTo:    query.Get("date_to"),
	}

	projects, err := h.services.ProjectService.ListProjects(ctx, session, models.ProjectFilter{})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	view.Projects = projects

	status := http.StatusOK
	if view.Query != "" || view.ProjectID > 0 || view.DateFrom != "" || view.DateTo != "" {
		if err := h.runSearch(r, session, &view); err != nil {
			h.flashError(w, r, err)
			status = statusFromError(err)
		}
	}

	h.render(w, r, status, "search", "Search", view)
}

func (h *Handler) runSearch(r *http.Request, session models.Session, view *searchView) error {
	from, err := parseOptionalDate(view.DateFrom)
	if err != nil {
		return err
	}
	to, err := parseOptionalDate(view.DateTo)
	if err != nil {
		return err
	}

	filter := models.EntryFilter{UserID: session.UserID, From: from, To: to, Query: view.Query}
	if view.ProjectID > 0 {
		filter.ProjectIDs = []int64{view.ProjectID}
	}

	results, err := h.services.EntryService.SearchEntries(r.Context(), filter)
	if err != nil {
		return err
	}

	view.Searched = true
	view.Results = results
	view.Total = report.SumHours(results)
	view.Limited = len(results) >= service.SearchLimit
	return nil
}
