// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/billable-hours/internal/config"
	"github.com/MKhiriev/billable-hours/internal/cycle"
	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/models"
)

const appStatusOK = "ok"

type appInfoService struct {
	appVersion string
	cycles     *cycle.Calculator

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, cycles *cycle.Calculator, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		cycles:     cycles,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetAppStatus reports the version together with the billing cycle the
// server clock currently falls into, so a skewed clock or timezone shows up
// in health checks before it misfiles entries.
func (s *appInfoService) GetAppStatus(ctx context.Context) models.AppStatus {
	return models.AppStatus{
		Status:       appStatusOK,
		Version:      s.appVersion,
		CurrentCycle: s.cycles.Current(),
	}
}
