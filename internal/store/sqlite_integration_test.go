// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/billable-hours/models"
)

// These tests run every repository against a migrated in-memory database
// using the pure Go SQLite driver.

func createTestUser(t *testing.T, s *Storages, name string) models.User {
	t.Helper()
	user, err := s.UserRepository.CreateUser(testContext(), models.User{Username: name, PasswordHash: "hash-" + name})
	require.NoError(t, err)
	return user
}

func firstSharedProject(t *testing.T, s *Storages) models.Project {
	t.Helper()
	projects, err := s.ProjectRepository.ListProjects(testContext(), models.ProjectFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, projects)
	return projects[0]
}

func addEntry(t *testing.T, s *Storages, userID, projectID int64, date time.Time, hours float64, description string) models.TimeEntry {
	t.Helper()
	entry, err := s.EntryRepository.CreateEntry(testContext(), models.TimeEntry{
		UserID: &userID, ProjectID: projectID, Date: date, Hours: hours, Description: description,
	})
	require.NoError(t, err)
	return entry
}

func TestSQLite_FirstUserBecomesAdmin(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	assert.True(t, alice.IsAdmin)
	assert.False(t, bob.IsAdmin)
	assert.False(t, alice.CreatedAt.IsZero())

	_, err := s.UserRepository.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	n, err := s.UserRepository.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, s.UserRepository.SetAdmin(ctx, bob.ID, true))
	found, err := s.UserRepository.FindUserByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, found.IsAdmin)
}

func TestSQLite_LastAdminCannotBeRevoked(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")
	require.NoError(t, s.UserRepository.SetAdmin(ctx, bob.ID, true))

	// bob demotes alice, then alice's stale rights must not demote bob.
	require.NoError(t, s.UserRepository.SetAdmin(ctx, alice.ID, false))
	assert.ErrorIs(t, s.UserRepository.SetAdmin(ctx, bob.ID, false), ErrLastAdmin)

	found, err := s.UserRepository.FindUserByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.True(t, found.IsAdmin)

	// Revoking from a regular user is a no-op, a missing user is reported.
	assert.NoError(t, s.UserRepository.SetAdmin(ctx, alice.ID, false))
	assert.ErrorIs(t, s.UserRepository.SetAdmin(ctx, 999, false), ErrUserNotFound)
}

func TestSQLite_SeededDefaults(t *testing.T) {
	s := newSQLiteStorages(t)

	projects, err := s.ProjectRepository.ListProjects(testContext(), models.ProjectFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, projects, 5)
	for _, p := range projects {
		assert.True(t, p.IsShared(), p.Name)
	}
	assert.Equal(t, "Client A - Development", projects[0].Name)

	settings, err := s.SettingRepository.ListSettings(testContext())
	require.NoError(t, err)
	assert.Len(t, settings, 3)
}

func TestSQLite_Projects(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	own, err := s.ProjectRepository.CreateProject(ctx, models.Project{UserID: &bob.ID, Name: "Bob's side gig", Active: true})
	require.NoError(t, err)
	assert.True(t, own.OwnedBy(bob.ID))

	_, err = s.ProjectRepository.CreateProject(ctx, models.Project{UserID: &alice.ID, Name: "Client A - Development", Active: true})
	assert.ErrorIs(t, err, ErrProjectNameTaken)

	visibleToAlice, err := s.ProjectRepository.ListProjects(ctx, models.ProjectFilter{UserID: alice.ID})
	require.NoError(t, err)
	assert.Len(t, visibleToAlice, 5)

	visibleToBob, err := s.ProjectRepository.ListProjects(ctx, models.ProjectFilter{UserID: bob.ID, NewestFirst: true})
	require.NoError(t, err)
	assert.Len(t, visibleToBob, 6)

	toggled, err := s.ProjectRepository.ToggleProject(ctx, own.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	active, err := s.ProjectRepository.ListProjects(ctx, models.ProjectFilter{UserID: bob.ID, ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 5)

	own.Name, own.Description, own.Active = "Renamed", "now with notes", true
	updated, err := s.ProjectRepository.UpdateProject(ctx, own)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.True(t, updated.Active)

	_, err = s.ProjectRepository.ToggleProject(ctx, 9999)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestSQLite_DeleteProjectRemovesItsEntries(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	user := createTestUser(t, s, "alice")

	project, err := s.ProjectRepository.CreateProject(ctx, models.Project{UserID: &user.ID, Name: "Doomed", Active: true})
	require.NoError(t, err)
	other := firstSharedProject(t, s)

	addEntry(t, s, user.ID, project.ID, day(2024, time.January, 10), 2, "a")
	addEntry(t, s, user.ID, project.ID, day(2024, time.January, 11), 3, "b")
	kept := addEntry(t, s, user.ID, other.ID, day(2024, time.January, 11), 1, "c")

	require.NoError(t, s.ProjectRepository.DeleteProject(ctx, project.ID))

	entries, err := s.EntryRepository.ListEntries(ctx, models.EntryFilter{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, kept.ID, entries[0].ID)

	_, err = s.ProjectRepository.FindProjectByID(ctx, project.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	assert.ErrorIs(t, s.ProjectRepository.DeleteProject(ctx, project.ID), ErrProjectNotFound)
}

func TestSQLite_DeleteEntryKeepsProject(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	user := createTestUser(t, s, "alice")
	project := firstSharedProject(t, s)

	entry := addEntry(t, s, user.ID, project.ID, day(2024, time.January, 10), 2, "")

	require.NoError(t, s.EntryRepository.DeleteEntry(ctx, user.ID, entry.ID))
	assert.ErrorIs(t, s.EntryRepository.DeleteEntry(ctx, user.ID, entry.ID), ErrEntryNotFound)

	_, err := s.ProjectRepository.FindProjectByID(ctx, project.ID)
	assert.NoError(t, err)
}

func TestSQLite_EntriesAreScopedToOwner(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")
	project := firstSharedProject(t, s)

	entry := addEntry(t, s, alice.ID, project.ID, day(2024, time.January, 10), 2, "alice's")

	_, err := s.EntryRepository.FindEntryByID(ctx, bob.ID, entry.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	entry.UserID = &bob.ID
	_, err = s.EntryRepository.UpdateEntry(ctx, entry)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	assert.ErrorIs(t, s.EntryRepository.DeleteEntry(ctx, bob.ID, entry.ID), ErrEntryNotFound)

	entry.UserID = &alice.ID
	entry.Hours = 4.25
	entry.Date = day(2024, time.January, 12)
	updated, err := s.EntryRepository.UpdateEntry(ctx, entry)
	require.NoError(t, err)

	found, err := s.EntryRepository.FindEntryByID(ctx, alice.ID, entry.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.25, found.Hours, 1e-9)
	assert.Equal(t, day(2024, time.January, 12), found.Date)
	assert.Equal(t, project.Name, found.ProjectName)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
}

func TestSQLite_EntryConstraints(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	user := createTestUser(t, s, "alice")
	project := firstSharedProject(t, s)

	_, err := s.EntryRepository.CreateEntry(ctx, models.TimeEntry{
		UserID: &user.ID, ProjectID: project.ID, Date: day(2024, time.January, 1), Hours: 25,
	})
	assert.ErrorIs(t, err, ErrConstraintViolated)

	_, err = s.EntryRepository.CreateEntry(ctx, models.TimeEntry{
		UserID: &user.ID, ProjectID: 9999, Date: day(2024, time.January, 1), Hours: 1,
	})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestSQLite_ListEntriesFiltersAndOrder(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	user := createTestUser(t, s, "alice")
	projects, err := s.ProjectRepository.ListProjects(ctx, models.ProjectFilter{})
	require.NoError(t, err)
	a, b := projects[0], projects[1]

	first := addEntry(t, s, user.ID, a.ID, day(2024, time.January, 10), 1, "Morning STANDUP")
	second := addEntry(t, s, user.ID, a.ID, day(2024, time.January, 10), 2, "code review")
	addEntry(t, s, user.ID, b.ID, day(2024, time.January, 20), 3, "workshop")
	addEntry(t, s, user.ID, b.ID, day(2024, time.February, 1), 4, "")

	all, err := s.EntryRepository.ListEntries(ctx, models.EntryFilter{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, day(2024, time.February, 1), all[0].Date)
	assert.Equal(t, second.ID, all[2].ID)
	assert.Equal(t, first.ID, all[3].ID)

	from, to := day(2024, time.January, 10), day(2024, time.January, 20)
	windowed, err := s.EntryRepository.ListEntries(ctx, models.EntryFilter{UserID: user.ID, From: &from, To: &to, ProjectIDs: []int64{b.ID}})
	require.NoError(t, err)
	require.Len(t, windowed, 1)
	assert.Equal(t, "workshop", windowed[0].Description)

	search, err := s.EntryRepository.ListEntries(ctx, models.EntryFilter{UserID: user.ID, Query: "standup"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, first.ID, search[0].ID)

	byProjectName, err := s.EntryRepository.ListEntries(ctx, models.EntryFilter{UserID: user.ID, Query: b.Name})
	require.NoError(t, err)
	assert.Len(t, byProjectName, 2)

	limited, err := s.EntryRepository.ListEntries(ctx, models.EntryFilter{UserID: user.ID, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSQLite_ReportsAgreeWithEntries(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	user := createTestUser(t, s, "alice")
	other := createTestUser(t, s, "bob")
	projects, err := s.ProjectRepository.ListProjects(ctx, models.ProjectFilter{})
	require.NoError(t, err)

	// 2024-01-31 is a Wednesday, 2024-02-05 a Monday.
	addEntry(t, s, user.ID, projects[0].ID, day(2024, time.January, 31), 2.5, "")
	addEntry(t, s, user.ID, projects[0].ID, day(2024, time.January, 31), 1.25, "")
	addEntry(t, s, user.ID, projects[1].ID, day(2024, time.February, 5), 4, "")
	addEntry(t, s, user.ID, projects[1].ID, day(2024, time.March, 1), 8, "outside the window")
	addEntry(t, s, other.ID, projects[0].ID, day(2024, time.February, 1), 6, "someone else")

	filter := models.ReportFilter{UserID: user.ID, From: day(2024, time.January, 25), To: day(2024, time.February, 24)}

	total, err := s.ReportRepository.TotalHours(ctx, filter)
	require.NoError(t, err)
	assert.InDelta(t, 7.75, total, 1e-9)

	daily, err := s.ReportRepository.DailyTotals(ctx, filter)
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, day(2024, time.February, 5), daily[0].Date)
	var dailySum float64
	for _, d := range daily {
		dailySum += d.Hours
	}
	assert.InDelta(t, total, dailySum, 1e-9)

	stats, err := s.ReportRepository.ProjectStats(ctx, filter)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, projects[1].Name, stats[0].ProjectName)
	assert.InDelta(t, 3.75, stats[1].TotalHours, 1e-9)
	assert.Equal(t, int64(2), stats[1].EntryCount)
	assert.InDelta(t, 1.875, stats[1].AvgHours, 1e-9)

	weekdays, err := s.ReportRepository.WeekdayStats(ctx, filter)
	require.NoError(t, err)
	require.Len(t, weekdays, 2)
	assert.Equal(t, time.Monday, weekdays[0].Weekday)
	assert.Equal(t, time.Wednesday, weekdays[1].Weekday)
	assert.InDelta(t, 1.875, weekdays[1].AvgHours, 1e-9)

	hourly, err := s.ReportRepository.HourlyStats(ctx, filter)
	require.NoError(t, err)
	var hourlyEntries int64
	for _, h := range hourly {
		assert.GreaterOrEqual(t, h.Hour, 0)
		assert.Less(t, h.Hour, 24)
		hourlyEntries += h.Entries
	}
	assert.Equal(t, int64(3), hourlyEntries)

	empty, err := s.ReportRepository.TotalHours(ctx, models.ReportFilter{UserID: user.ID, From: day(2020, 1, 1), To: day(2020, 1, 2)})
	require.NoError(t, err)
	assert.Zero(t, empty)
}

func TestSQLite_SaveSettingsUpserts(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	require.NoError(t, s.SettingRepository.SaveSettings(ctx, []models.Setting{
		{Key: models.SettingMonthlyGoalHours, Value: "120"},
		{Key: "theme", Value: "dark"},
	}))

	settings, err := s.SettingRepository.ListSettings(ctx)
	require.NoError(t, err)

	values := make(map[string]string, len(settings))
	for _, st := range settings {
		values[st.Key] = st.Value
	}
	assert.Equal(t, "120", values[models.SettingMonthlyGoalHours])
	assert.Equal(t, "$", values[models.SettingCurrencySymbol])
	assert.Equal(t, "dark", values["theme"])
	assert.Len(t, values, 4)

	require.NoError(t, s.Ping(ctx))
}
