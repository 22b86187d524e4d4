// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/billable-hours/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator categorizes driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser inserts user. The very first user is always stored as an
	// admin, whatever user.IsAdmin says.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
	// SetAdmin refuses to revoke the rights of the last admin with ErrLastAdmin.
	SetAdmin(ctx context.Context, userID int64, isAdmin bool) error
}

// ProjectRepository persists projects.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)
	// ToggleProject flips the active flag and returns the updated project.
	ToggleProject(ctx context.Context, projectID int64) (models.Project, error)
	// DeleteProject removes the project together with all of its entries.
	DeleteProject(ctx context.Context, projectID int64) error
	FindProjectByID(ctx context.Context, projectID int64) (models.Project, error)
	ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
}

// EntryRepository persists time entries. Every method is scoped to the
// owning user.
type EntryRepository interface {
	CreateEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error)
	UpdateEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID int64) error
	FindEntryByID(ctx context.Context, userID, entryID int64) (models.TimeEntry, error)
	// ListEntries returns entries joined with their project name, newest
	// date first and, within a date, newest first.
	ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.TimeEntry, error)
}

// SettingRepository persists global key-value settings.
type SettingRepository interface {
	ListSettings(ctx context.Context) ([]models.Setting, error)
	// SaveSettings upserts all settings in one transaction.
	SaveSettings(ctx context.Context, settings []models.Setting) error
}

// ReportRepository runs aggregate queries over a user's entries within a
// date window.
type ReportRepository interface {
	TotalHours(ctx context.Context, filter models.ReportFilter) (float64, error)
	DailyTotals(ctx context.Context, filter models.ReportFilter) ([]models.DailyTotal, error)
	ProjectStats(ctx context.Context, filter models.ReportFilter) ([]models.ProjectStat, error)
	HourlyStats(ctx context.Context, filter models.ReportFilter) ([]models.HourlyStat, error)
	WeekdayStats(ctx context.Context, filter models.ReportFilter) ([]models.WeekdayStat, error)
}
