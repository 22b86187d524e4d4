// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/models"
)

type exportView struct {
	Projects  []models.Project
	StartDate string
	EndDate   string
	Cycle     models.Cycle
}

func (h *Handler) exportPage(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.ListProjects(r.Context(), sessionFrom(r), models.ProjectFilter{})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	current := h.services.Cycles.Current()
	h.render(w, r, http.StatusOK, "export", "Export", exportView{
		Projects:  projects,
		StartDate: current.Start.Format(models.DateLayout),
		EndDate:   current.End.Format(models.DateLayout),
		Cycle:     current,
	})
}

// quickExport serves the one-click exports selected by the quick parameter.
func (h *Handler) quickExport(w http.ResponseWriter, r *http.Request) {
	request, err := h.services.ExportService.QuickExportRequest(sessionFrom(r).UserID, r.URL.Query().Get("quick"))
	if err != nil {
		h.flashError(w, r, err)
		http.Redirect(w, r, "/export", http.StatusSeeOther)
		return
	}

	h.sendExport(w, r, request)
}

func (h *Handler) exportData(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.flashError(w, r, fmt.Errorf("%w: %w", ErrInvalidForm, err))
		http.Redirect(w, r, "/export", http.StatusSeeOther)
		return
	}

	from, err := parseOptionalDate(r.PostFormValue("start_date"))
	if err != nil {
		h.redirect(w, r, "/export", flashDanger, ErrInvalidDate.Error())
		return
	}
	to, err := parseOptionalDate(r.PostFormValue("end_date"))
	if err != nil {
		h.redirect(w, r, "/export", flashDanger, ErrInvalidDate.Error())
		return
	}

	format := models.ExportFormat(r.PostFormValue("format"))
	if format == "" {
		format = models.ExportCSV
	}

	h.sendExport(w, r, models.ExportRequest{
		UserID:              sessionFrom(r).UserID,
		From:                from,
		To:                  to,
		ProjectIDs:          parseIDs(r.PostForm["project_ids"]),
		IncludeDescriptions: checkbox(r, "include_descriptions"),
		IncludeTotals:       checkbox(r, "include_totals"),
		Format:              format,
	})
}

func (h *Handler) sendExport(w http.ResponseWriter, r *http.Request, request models.ExportRequest) {
	file, err := h.services.ExportService.Export(r.Context(), request)
	if err != nil {
		h.flashError(w, r, err)
		http.Redirect(w, r, "/export", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Body); err != nil {
		logger.FromRequest(r).Err(err).Str("filename", file.Filename).Msg("writing export failed")
	}
}
