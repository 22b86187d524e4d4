// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP, h.withTraceID, h.withLogging, h.withRecover, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withSession)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/signup", h.signupPage)
		r.Post("/signup", h.signup)
		r.Get("/logout", h.logout)
		r.Post("/logout", h.logout)
		r.Get("/healthz", h.healthz)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/", h.dashboard)
		r.Get("/api/cycle_stats/{date}", h.cycleStats)

		r.Get("/entries", h.entries)
		r.Get("/entries/{cycle_date}", h.entries)
		r.Get("/all_entries", h.allEntries)
		r.Get("/add_entry", h.addEntryPage)
		r.Post("/add_entry", h.addEntry)
		r.Get("/edit_entry/{id}", h.editEntryPage)
		r.Post("/edit_entry/{id}", h.editEntry)
		r.Post("/delete_entry/{id}", h.deleteEntry)

		r.Get("/projects", h.projects)
		r.Get("/project/add", h.addProjectPage)
		r.Post("/project/add", h.addProjectFromPage)
		r.Get("/project/edit/{id}", h.editProjectPage)
		r.Post("/project/edit/{id}", h.editProjectFromPage)
		r.Post("/add_project", h.addProject)
		r.Post("/edit_project/{id}", h.editProject)
		r.Post("/toggle_project/{id}", h.toggleProject)
		r.Post("/delete_project/{id}", h.deleteProject)

		r.Get("/export", h.exportPage)
		r.Get("/export_data", h.quickExport)
		r.Post("/export_data", h.exportData)

		r.Get("/search", h.search)
		r.Get("/reports", h.reports)

		r.Get("/account/password", h.passwordPage)
		r.Post("/account/password", h.changePassword)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.requireSession, h.requireAdmin)

		r.Get("/settings", h.settingsPage)
		r.Post("/settings", h.saveSettings)
		r.Get("/admin/users", h.users)
		r.Post("/admin/users/{id}/reset_password", h.resetPassword)
		r.Post("/admin/users/{id}/toggle_admin", h.toggleAdmin)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}
