// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/billable-hours/internal/cycle"
	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/report"
	"github.com/MKhiriev/billable-hours/internal/store"
	"github.com/MKhiriev/billable-hours/models"
	"golang.org/x/sync/errgroup"
)

const (
	// recentEntriesLimit is the number of entries shown on the dashboard.
	recentEntriesLimit = 10
	// availableCycles is the number of cycles offered by the cycle picker.
	availableCycles = 12
)

type reportService struct {
	reportRepository store.ReportRepository
	entryRepository  store.EntryRepository
	settingsService  SettingsService
	cycles           *cycle.Calculator

	logger *logger.Logger
}

func NewReportService(
	reportRepository store.ReportRepository,
	entryRepository store.EntryRepository,
	settingsService SettingsService,
	cycles *cycle.Calculator,
	logger *logger.Logger,
) ReportService {
	return &reportService{
		reportRepository: reportRepository,
		entryRepository:  entryRepository,
		settingsService:  settingsService,
		cycles:           cycles,
		logger:           logger,
	}
}

func (r *reportService) Dashboard(ctx context.Context, userID int64, window *models.Cycle) (models.Dashboard, error) {
	c := r.cycles.Current()
	if window != nil {
		c = *window
	}
	filter := reportFilter(userID, c)

	var (
		dashboard = models.Dashboard{Cycle: c, AvailableCycles: r.cycles.Previous(availableCycles)}
		total     float64
		settings  models.Settings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = r.reportRepository.TotalHours(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		dashboard.DailyTotals, err = r.reportRepository.DailyTotals(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		dashboard.RecentEntries, err = r.entryRepository.ListEntries(gctx, models.EntryFilter{
			UserID: userID,
			From:   &c.Start,
			To:     &c.End,
			Limit:  recentEntriesLimit,
		})
		return err
	})
	g.Go(func() (err error) {
		settings, err = r.settingsService.GetSettings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reportService.Dashboard").Int64("user_id", userID).Msg("building dashboard failed")
		return models.Dashboard{}, fmt.Errorf("building dashboard failed: %w", err)
	}

	dashboard.Stats = report.Stats(c, total, settings.MonthlyGoalHours)
	dashboard.DaysCompleted, dashboard.TotalDays = report.DaysCompleted(c, r.cycles.Today())

	return dashboard, nil
}

func (r *reportService) CycleStats(ctx context.Context, userID int64, window models.Cycle) (models.CycleStats, error) {
	total, err := r.reportRepository.TotalHours(ctx, reportFilter(userID, window))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reportService.CycleStats").Int64("user_id", userID).Msg("total hours query failed")
		return models.CycleStats{}, fmt.Errorf("total hours query failed: %w", err)
	}

	settings, err := r.settingsService.GetSettings(ctx)
	if err != nil {
		return models.CycleStats{}, err
	}

	return report.Stats(window, total, settings.MonthlyGoalHours), nil
}

// Report aggregates the window per project, per hour of creation and per
// weekday. Earnings use the default hourly rate.
func (r *reportService) Report(ctx context.Context, userID int64, window models.Cycle) (models.Report, error) {
	filter := reportFilter(userID, window)
	result := models.Report{Cycle: window}

	var settings models.Settings

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		result.ProjectStats, err = r.reportRepository.ProjectStats(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		result.HourlyStats, err = r.reportRepository.HourlyStats(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		result.WeekdayStats, err = r.reportRepository.WeekdayStats(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		settings, err = r.settingsService.GetSettings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reportService.Report").Int64("user_id", userID).Msg("building report failed")
		return models.Report{}, fmt.Errorf("building report failed: %w", err)
	}

	for _, stat := range result.ProjectStats {
		result.TotalHours += stat.TotalHours
	}
	result.MonthlyGoal = settings.MonthlyGoalHours
	result.HourlyRate = settings.DefaultHourlyRate
	result.Currency = settings.CurrencySymbol
	result.Earnings = result.TotalHours * settings.DefaultHourlyRate

	return result, nil
}

func reportFilter(userID int64, c models.Cycle) models.ReportFilter {
	return models.ReportFilter{UserID: userID, From: c.Start, To: c.End}
}
