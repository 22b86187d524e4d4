// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/billable-hours/models"
)

// Static queries use "?" placeholders and are passed through
// [Dialect.Rebind] before execution.
const (
	userColumns = `id, username, password_hash, is_admin, created_at`

	// The first account ever created becomes an admin.
	createUser = `INSERT INTO users (username, password_hash, is_admin)
		SELECT ?, ?, (? OR NOT EXISTS (SELECT 1 FROM users))
		RETURNING ` + userColumns

	findUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = ?`

	findUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	listUsers = `SELECT ` + userColumns + ` FROM users ORDER BY username`

	countUsers = `SELECT COUNT(*) FROM users`

	updatePasswordHash = `UPDATE users SET password_hash = ? WHERE id = ?`

	grantUserAdmin = `UPDATE users SET is_admin = TRUE WHERE id = ?`

	// revokeUserAdmin leaves the row untouched when it would remove the
	// last admin.
	revokeUserAdmin = `UPDATE users SET is_admin = FALSE
		WHERE id = ? AND (is_admin = FALSE OR (SELECT COUNT(*) FROM users WHERE is_admin = TRUE) > 1)`

	projectColumns = `id, user_id, name, description, active, created_at, updated_at`

	createProject = `INSERT INTO projects (user_id, name, description, active)
		VALUES (?, ?, ?, ?)
		RETURNING ` + projectColumns

	updateProject = `UPDATE projects
		SET name = ?, description = ?, active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
		RETURNING ` + projectColumns

	toggleProject = `UPDATE projects
		SET active = NOT active, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
		RETURNING ` + projectColumns

	findProjectByID = `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	deleteProjectEntries = `DELETE FROM time_entries WHERE project_id = ?`

	deleteProject = `DELETE FROM projects WHERE id = ?`

	createEntry = `INSERT INTO time_entries (user_id, project_id, date, hours, description)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, created_at, updated_at`

	updateEntry = `UPDATE time_entries
		SET project_id = ?, date = ?, hours = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?
		RETURNING created_at, updated_at`

	deleteEntry = `DELETE FROM time_entries WHERE id = ? AND user_id = ?`

	listSettings = `SELECT key, value, updated_at FROM settings ORDER BY key`

	upsertSetting = `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
)

var entryColumns = []string{
	"e.id", "e.user_id", "e.date", "e.project_id", "p.name",
	"e.hours", "e.description", "e.created_at", "e.updated_at",
}

func selectEntries(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(entryColumns...).
		From("time_entries e").
		Join("projects p ON p.id = e.project_id")
}

// buildListEntriesQuery builds the filtered, joined entry listing used by
// the entries pages, search, the dashboard and exports.
func buildListEntriesQuery(b sq.StatementBuilderType, filter models.EntryFilter) (string, []any, error) {
	q := selectEntries(b).Where(sq.Eq{"e.user_id": filter.UserID})

	if filter.From != nil {
		q = q.Where(sq.GtOrEq{"e.date": dateArg(*filter.From)})
	}
	if filter.To != nil {
		q = q.Where(sq.LtOrEq{"e.date": dateArg(*filter.To)})
	}
	if len(filter.ProjectIDs) > 0 {
		q = q.Where(sq.Eq{"e.project_id": filter.ProjectIDs})
	}
	if text := strings.TrimSpace(filter.Query); text != "" {
		pattern := "%" + strings.ToLower(text) + "%"
		q = q.Where(sq.Or{
			sq.Expr("LOWER(e.description) LIKE ?", pattern),
			sq.Expr("LOWER(p.name) LIKE ?", pattern),
		})
	}

	q = q.OrderBy("e.date DESC", "e.created_at DESC", "e.id DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	return q.ToSql()
}

func buildFindEntryQuery(b sq.StatementBuilderType, userID, entryID int64) (string, []any, error) {
	return selectEntries(b).
		Where(sq.Eq{"e.id": entryID, "e.user_id": userID}).
		ToSql()
}

func buildListProjectsQuery(b sq.StatementBuilderType, filter models.ProjectFilter) (string, []any, error) {
	q := b.Select(strings.Split(projectColumns, ", ")...).From("projects")

	if filter.UserID > 0 {
		q = q.Where(sq.Or{sq.Eq{"user_id": nil}, sq.Eq{"user_id": filter.UserID}})
	}
	if filter.ActiveOnly {
		q = q.Where(sq.Eq{"active": true})
	}

	if filter.NewestFirst {
		q = q.OrderBy("created_at DESC", "id DESC")
	} else {
		q = q.OrderBy("name")
	}

	return q.ToSql()
}

// window restricts aggregate queries to one user and an inclusive date range.
func window(prefix string, filter models.ReportFilter) sq.And {
	return sq.And{
		sq.Eq{prefix + "user_id": filter.UserID},
		sq.GtOrEq{prefix + "date": dateArg(filter.From)},
		sq.LtOrEq{prefix + "date": dateArg(filter.To)},
	}
}

func buildTotalHoursQuery(b sq.StatementBuilderType, filter models.ReportFilter) (string, []any, error) {
	return b.Select("COALESCE(SUM(hours), 0)").
		From("time_entries").
		Where(window("", filter)).
		ToSql()
}

func buildDailyTotalsQuery(b sq.StatementBuilderType, filter models.ReportFilter) (string, []any, error) {
	return b.Select("date", "SUM(hours)").
		From("time_entries").
		Where(window("", filter)).
		GroupBy("date").
		OrderBy("date DESC").
		ToSql()
}

func buildProjectStatsQuery(b sq.StatementBuilderType, filter models.ReportFilter) (string, []any, error) {
	return b.Select("p.name", "SUM(e.hours) AS total_hours", "COUNT(e.id)", "AVG(e.hours)").
		From("time_entries e").
		Join("projects p ON p.id = e.project_id").
		Where(window("e.", filter)).
		GroupBy("p.id", "p.name").
		OrderBy("total_hours DESC", "p.name").
		ToSql()
}

func buildHourlyStatsQuery(d Dialect, filter models.ReportFilter) (string, []any, error) {
	return d.Builder().Select(d.HourOf("created_at")+" AS hour_of_day", "COUNT(id)", "SUM(hours)").
		From("time_entries").
		Where(window("", filter)).
		GroupBy("hour_of_day").
		OrderBy("hour_of_day").
		ToSql()
}

func buildWeekdayStatsQuery(d Dialect, filter models.ReportFilter) (string, []any, error) {
	return d.Builder().Select(d.WeekdayOf("date")+" AS day_of_week", "AVG(hours)", "SUM(hours)").
		From("time_entries").
		Where(window("", filter)).
		GroupBy("day_of_week").
		OrderBy("day_of_week").
		ToSql()
}
