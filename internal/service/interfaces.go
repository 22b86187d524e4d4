// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/billable-hours/models"
)

type AuthService interface {
	// Signup registers a regular account. The very first account becomes an admin.
	Signup(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	// CreateAdmin registers an admin account, but only into an empty database.
	CreateAdmin(ctx context.Context, credentials models.Credentials) (models.User, error)
	ChangePassword(ctx context.Context, change models.PasswordChange) error

	CreateSessionToken(ctx context.Context, user models.User) (models.SessionToken, error)
	// ParseSessionToken verifies the token and reloads its user, so a
	// deleted user or a changed admin flag takes effect immediately.
	ParseSessionToken(ctx context.Context, tokenString string) (models.Session, error)
}

// UserService is the admin-only account management.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ResetPassword(ctx context.Context, userID int64, newPassword string) error
	ResetPasswordByUsername(ctx context.Context, username, newPassword string) error
	ToggleAdmin(ctx context.Context, actor models.Session, userID int64) (models.User, error)
	SetAdminByUsername(ctx context.Context, username string, isAdmin bool) (models.User, error)
}

// ProjectService manages projects on behalf of a session. Users see shared
// projects and their own; they modify their own, admins also the shared ones.
type ProjectService interface {
	ListProjects(ctx context.Context, session models.Session, filter models.ProjectFilter) ([]models.Project, error)
	GetProject(ctx context.Context, session models.Session, projectID int64) (models.Project, error)
	CreateProject(ctx context.Context, session models.Session, project models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, session models.Session, project models.Project) (models.Project, error)
	ToggleProject(ctx context.Context, session models.Session, projectID int64) (models.Project, error)
	// DeleteProject removes the project with all of its entries and returns
	// the project as it was before deletion.
	DeleteProject(ctx context.Context, session models.Session, projectID int64) (models.Project, error)
}

type EntryService interface {
	CreateEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error)
	UpdateEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID int64) error
	GetEntry(ctx context.Context, userID, entryID int64) (models.TimeEntry, error)
	ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.TimeEntry, error)
	// SearchEntries is ListEntries capped at [SearchLimit] results.
	SearchEntries(ctx context.Context, filter models.EntryFilter) ([]models.TimeEntry, error)
}

type SettingsService interface {
	// GetSettings returns the typed settings, falling back to defaults for
	// missing or malformed values.
	GetSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error
}

type ReportService interface {
	// Dashboard builds the landing page for window, or for the current
	// cycle when window is nil.
	Dashboard(ctx context.Context, userID int64, window *models.Cycle) (models.Dashboard, error)
	CycleStats(ctx context.Context, userID int64, window models.Cycle) (models.CycleStats, error)
	Report(ctx context.Context, userID int64, window models.Cycle) (models.Report, error)
}

type ExportService interface {
	Export(ctx context.Context, request models.ExportRequest) (models.ExportFile, error)
	// QuickExportRequest expands a one-click export ("current_month" or
	// "all_data") into a full request.
	QuickExportRequest(userID int64, quick string) (models.ExportRequest, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// GetAppStatus is served by the health endpoint.
	GetAppStatus(ctx context.Context) models.AppStatus
}

// EntryServiceWrapper defines middleware composition for EntryService.
// Implementations wrap an existing EntryService to add behavior such as
// validation.
type EntryServiceWrapper interface {
	Wrap(EntryService) EntryService
}
