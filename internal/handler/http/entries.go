// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/billable-hours/internal/cycle"
	"github.com/MKhiriev/billable-hours/internal/report"
	"github.com/MKhiriev/billable-hours/models"
	"github.com/go-chi/chi/v5"
)

type entriesView struct {
	Cycle           models.Cycle
	AllEntries      bool
	Week            string
	ProjectID       int64
	Groups          []models.EntryGroup
	Total           float64
	Count           int
	Projects        []models.Project
	AvailableCycles []models.Cycle
}

type entryFormView struct {
	Form     entryForm
	Projects []models.Project
	Editing  bool
}

// entries lists the entries of one window: the ISO week given by week, the
// cycle containing {cycle_date}, or the current cycle.
func (h *Handler) entries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	view := entriesView{
		Cycle:     h.services.Cycles.Current(),
		Week:      query.Get("week"),
		ProjectID: parseID(query.Get("project_id")),
	}

	if value := chi.URLParam(r, "cycle_date"); value != "" {
		date, err := parseDate(value)
		if err != nil {
			h.flashError(w, r, err)
		} else {
			view.Cycle = cycle.For(date)
		}
	}
	if view.Week != "" {
		week, err := cycle.Week(view.Week)
		if err != nil {
			h.flashError(w, r, ErrInvalidWeek)
		} else {
			view.Cycle = week
		}
	}

	filter := models.EntryFilter{
		UserID: sessionFrom(r).UserID,
		From:   &view.Cycle.Start,
		To:     &view.Cycle.End,
	}
	if view.ProjectID > 0 {
		filter.ProjectIDs = []int64{view.ProjectID}
	}

	h.renderEntries(w, r, filter, view)
}

func (h *Handler) allEntries(w http.ResponseWriter, r *http.Request) {
	h.renderEntries(w, r, models.EntryFilter{UserID: sessionFrom(r).UserID}, entriesView{AllEntries: true})
}

func (h *Handler) renderEntries(w http.ResponseWriter, r *http.Request, filter models.EntryFilter, view entriesView) {
	ctx := r.Context()

	entries, err := h.services.EntryService.ListEntries(ctx, filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	projects, err := h.services.ProjectService.ListProjects(ctx, sessionFrom(r), models.ProjectFilter{})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	view.Groups = report.GroupByDate(entries)
	view.Total = report.SumHours(entries)
	view.Count = len(entries)
	view.Projects = projects
	view.AvailableCycles = h.services.Cycles.Previous(12)

	title := "Entries - " + view.Cycle.Name
	if view.AllEntries {
		title = "All entries"
	}
	h.render(w, r, http.StatusOK, "entries", title, view)
}

func (h *Handler) addEntryPage(w http.ResponseWriter, r *http.Request) {
	form := entryForm{Date: h.services.Cycles.Today().Format(models.DateLayout)}
	if value := r.URL.Query().Get("date"); value != "" {
		if _, err := parseDate(value); err == nil {
			form.Date = value
		}
	}
	form.ProjectID = parseID(r.URL.Query().Get("project_id"))

	h.renderEntryForm(w, r, http.StatusOK, form, false)
}

func (h *Handler) addEntry(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	form := readEntryForm(r)

	created, err := h.services.EntryService.CreateEntry(r.Context(), form.entry(session.UserID))
	if err != nil {
		h.flashError(w, r, err)
		h.renderEntryForm(w, r, statusFromError(err), form, false)
		return
	}

	date := created.Date.Format(models.DateLayout)
	if form.Stay {
		target := "/add_entry?" + url.Values{
			"date":       {date},
			"project_id": {strconv.FormatInt(form.ProjectID, 10)},
		}.Encode()
		h.redirect(w, r, target, flashSuccess, "Time entry added successfully!")
		return
	}
	h.redirect(w, r, "/entries/"+date, flashSuccess, "Time entry added successfully!")
}

func (h *Handler) editEntryPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	entry, err := h.services.EntryService.GetEntry(r.Context(), sessionFrom(r).UserID, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.renderEntryForm(w, r, http.StatusOK, entryFormOf(entry), true)
}

func (h *Handler) editEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	form := readEntryForm(r)
	form.ID = id

	updated, err := h.services.EntryService.UpdateEntry(r.Context(), form.entry(sessionFrom(r).UserID))
	if err != nil {
		if statusFromError(err) == http.StatusNotFound {
			h.fail(w, r, err)
			return
		}
		h.flashError(w, r, err)
		h.renderEntryForm(w, r, statusFromError(err), form, true)
		return
	}

	h.redirect(w, r, "/entries/"+updated.Date.Format(models.DateLayout), flashSuccess, "Time entry updated successfully!")
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.services.EntryService.DeleteEntry(r.Context(), sessionFrom(r).UserID, id); err != nil {
		h.flashError(w, r, err)
		http.Redirect(w, r, backTo(r, "/entries"), http.StatusSeeOther)
		return
	}

	h.redirect(w, r, backTo(r, "/entries"), flashSuccess, "Time entry deleted successfully!")
}

func (h *Handler) renderEntryForm(w http.ResponseWriter, r *http.Request, status int, form entryForm, editing bool) {
	projects, err := h.services.ProjectService.ListProjects(r.Context(), sessionFrom(r), models.ProjectFilter{ActiveOnly: true})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	title := "Add time entry"
	if editing {
		title = "Edit time entry"
	}
	h.render(w, r, status, "entry_form", title, entryFormView{Form: form, Projects: projects, Editing: editing})
}

// backTo returns the local path the form was posted from, or fallback.
func backTo(r *http.Request, fallback string) string {
	if next := safeNext(r.PostFormValue("next")); next != "" {
		return next
	}
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return fallback
	}
	if next := safeNext(ref.RequestURI()); next != "" {
		return next
	}
	return fallback
}
