// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/billable-hours/models"
)

type projectsView struct {
	Projects []models.Project
	UserID   int64
	IsAdmin  bool
}

type projectFormView struct {
	Project models.Project
	Editing bool
}

func (h *Handler) projects(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)

	projects, err := h.services.ProjectService.ListProjects(r.Context(), session, models.ProjectFilter{})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "projects", "Projects", projectsView{
		Projects: projects,
		UserID:   session.UserID,
		IsAdmin:  session.IsAdmin,
	})
}

func (h *Handler) addProjectPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "project_form", "Add project", projectFormView{})
}

// addProjectFromPage handles the standalone form; on failure the form is
// shown again with the submitted values.
func (h *Handler) addProjectFromPage(w http.ResponseWriter, r *http.Request) {
	project := readProjectForm(r)

	created, err := h.services.ProjectService.CreateProject(r.Context(), sessionFrom(r), project)
	if err != nil {
		h.flashError(w, r, err)
		h.render(w, r, statusFromError(err), "project_form", "Add project", projectFormView{Project: project})
		return
	}

	h.redirect(w, r, "/projects", flashSuccess, fmt.Sprintf("Project \"%s\" added successfully!", created.Name))
}

func (h *Handler) editProjectPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	project, err := h.services.ProjectService.GetProject(r.Context(), sessionFrom(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "project_form", "Edit project", projectFormView{Project: project, Editing: true})
}

func (h *Handler) editProjectFromPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	project := readProjectForm(r)
	project.ID = id

	updated, err := h.services.ProjectService.UpdateProject(r.Context(), sessionFrom(r), project)
	if err != nil {
		if statusFromError(err) == http.StatusNotFound {
			h.fail(w, r, err)
			return
		}
		h.flashError(w, r, err)
		h.render(w, r, statusFromError(err), "project_form", "Edit project", projectFormView{Project: project, Editing: true})
		return
	}

	h.redirect(w, r, "/projects", flashSuccess, fmt.Sprintf("Project \"%s\" updated successfully!", updated.Name))
}

// addProject handles the inline form of the projects page.
func (h *Handler) addProject(w http.ResponseWriter, r *http.Request) {
	created, err := h.services.ProjectService.CreateProject(r.Context(), sessionFrom(r), readProjectForm(r))
	if err != nil {
		h.flashError(w, r, err)
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
		return
	}

	h.redirect(w, r, "/projects", flashSuccess, fmt.Sprintf("Project \"%s\" added successfully!", created.Name))
}

func (h *Handler) editProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	project := readProjectForm(r)
	project.ID = id

	updated, err := h.services.ProjectService.UpdateProject(r.Context(), sessionFrom(r), project)
	if err != nil {
		h.flashError(w, r, err)
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
		return
	}

	h.redirect(w, r, "/projects", flashSuccess, fmt.Sprintf("Project \"%s\" updated successfully!", updated.Name))
}

func (h *Handler) toggleProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	project, err := h.services.ProjectService.ToggleProject(r.Context(), sessionFrom(r), id)
	if err != nil {
		h.flashError(w, r, err)
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
		return
	}

	state := "deactivated"
	if project.Active {
		state = "activated"
	}
	h.redirect(w, r, "/projects", flashSuccess, fmt.Sprintf("Project \"%s\" %s successfully!", project.Name, state))
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	project, err := h.services.ProjectService.DeleteProject(r.Context(), sessionFrom(r), id)
	if err != nil {
		h.flashError(w, r, err)
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
		return
	}

	h.redirect(w, r, "/projects", flashSuccess, fmt.Sprintf("Project \"%s\" and all its time entries have been deleted.", project.Name))
}

func readProjectForm(r *http.Request) models.Project {
	return models.Project{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}
}
