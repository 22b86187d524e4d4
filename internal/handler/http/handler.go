// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/billable-hours/internal/config"
	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/service"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	pinger   Pinger

	views   *views
	flashes *flashStore
	cookies cookieSettings

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, pinger Pinger, cfg config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	views, err := newViews()
	if err != nil {
		return nil, fmt.Errorf("parsing templates failed: %w", err)
	}

	flashKey := cfg.App.FlashKey
	if flashKey == "" {
		flashKey = cfg.App.SessionSignKey
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		pinger:         pinger,
		views:          views,
		flashes:        newFlashStore(flashKey, cfg.Server.SecureCookies),
		cookies:        cookieSettings{secure: cfg.Server.SecureCookies},
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}, nil
}
