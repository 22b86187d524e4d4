// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/billable-hours/internal/config"
	"github.com/MKhiriev/billable-hours/internal/cycle"
	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/store"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	ProjectService  ProjectService
	EntryService    EntryService
	SettingsService SettingsService
	ReportService   ReportService
	ExportService   ExportService
	AppInfoService  AppInfoService

	// Cycles resolves billing windows against the application clock.
	Cycles *cycle.Calculator
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, cycles *cycle.Calculator, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, cycles, logger)
	if err != nil {
		return nil, err
	}

	settingsService := NewSettingsService(storages.SettingRepository, logger)
	entryService := NewEntryValidationService().Wrap(
		NewEntryService(storages.EntryRepository, storages.ProjectRepository, logger),
	)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:     NewUserService(storages.UserRepository, cfg.App, logger),
		ProjectService:  NewProjectService(storages.ProjectRepository, logger),
		EntryService:    entryService,
		SettingsService: settingsService,
		ReportService:   NewReportService(storages.ReportRepository, storages.EntryRepository, settingsService, cycles, logger),
		ExportService:   NewExportService(storages.EntryRepository, storages.ProjectRepository, cycles, logger),
		AppInfoService:  appInfoService,
		Cycles:          cycles,
	}, nil
}
