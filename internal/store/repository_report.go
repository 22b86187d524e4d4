// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/models"
)

type reportRepository struct {
	*DB
	logger *logger.Logger
}

func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	logger.Debug().Msg("creating report repository")
	return &reportRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *reportRepository) TotalHours(ctx context.Context, filter models.ReportFilter) (float64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTotalHoursQuery(r.dialect.Builder(), filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total float64
	if err := r.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*reportRepository.TotalHours").Int64("user_id", filter.UserID).Msg("failed to sum hours")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

func (r *reportRepository) DailyTotals(ctx context.Context, filter models.ReportFilter) ([]models.DailyTotal, error) {
	query, args, err := buildDailyTotalsQuery(r.dialect.Builder(), filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return collect(ctx, r.DB, "*reportRepository.DailyTotals", query, args, func(rows *sql.Rows) (models.DailyTotal, error) {
		var (
			total models.DailyTotal
			date  dbDate
		)
		err := rows.Scan(&date, &total.Hours)
		total.Date = date.Time
		return total, err
	})
}

func (r *reportRepository) ProjectStats(ctx context.Context, filter models.ReportFilter) ([]models.ProjectStat, error) {
	query, args, err := buildProjectStatsQuery(r.dialect.Builder(), filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return collect(ctx, r.DB, "*reportRepository.ProjectStats", query, args, func(rows *sql.Rows) (models.ProjectStat, error) {
		var stat models.ProjectStat
		err := rows.Scan(&stat.ProjectName, &stat.TotalHours, &stat.EntryCount, &stat.AvgHours)
		return stat, err
	})
}

func (r *reportRepository) HourlyStats(ctx context.Context, filter models.ReportFilter) ([]models.HourlyStat, error) {
	query, args, err := buildHourlyStatsQuery(r.dialect, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return collect(ctx, r.DB, "*reportRepository.HourlyStats", query, args, func(rows *sql.Rows) (models.HourlyStat, error) {
		var stat models.HourlyStat
		err := rows.Scan(&stat.Hour, &stat.Entries, &stat.TotalHours)
		return stat, err
	})
}

func (r *reportRepository) WeekdayStats(ctx context.Context, filter models.ReportFilter) ([]models.WeekdayStat, error) {
	query, args, err := buildWeekdayStatsQuery(r.dialect, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return collect(ctx, r.DB, "*reportRepository.WeekdayStats", query, args, func(rows *sql.Rows) (models.WeekdayStat, error) {
		var (
			stat models.WeekdayStat
			dow  int
		)
		err := rows.Scan(&dow, &stat.AvgHours, &stat.TotalHours)
		stat.Weekday = time.Weekday(dow)
		return stat, err
	})
}

// collect runs query and scans every row with scan.
func collect[T any](ctx context.Context, db *DB, funcName, query string, args []any, scan func(*sql.Rows) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]T, 0, 16)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
