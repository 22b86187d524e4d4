// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command hoursctl administers a billable-hours installation.
//
// Account commands open the configured database directly, the same way the
// server does. Remote commands talk to a running server over HTTP.
//
//	hoursctl create-admin -username root -password secret1
//	hoursctl reset-password -username alice -password newsecret
//	hoursctl set-admin -username alice [-revoke]
//	hoursctl stats -server localhost:8080 -username alice -password secret1
//	hoursctl health -server localhost:8080
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/billable-hours/internal/adapter"
	"github.com/MKhiriev/billable-hours/internal/config"
	"github.com/MKhiriev/billable-hours/internal/cycle"
	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/service"
	"github.com/MKhiriev/billable-hours/internal/store"
	"github.com/MKhiriev/billable-hours/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env := &environment{
		stdout:      os.Stdout,
		logger:      logger.NewConsoleLogger("hoursctl", os.Stderr),
		buildInfo:   models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		openService: openServices,
		newAdapter:  newAdapter,
	}

	code := run(ctx, env, os.Args[1:])
	stop()
	os.Exit(code)
}

// environment holds everything a command needs. Tests replace the
// constructors with fakes.
type environment struct {
	stdout    io.Writer
	logger    *logger.Logger
	buildInfo models.AppBuildInfo

	openService func(ctx context.Context, log *logger.Logger) (*service.Services, func(), error)
	newAdapter  func(cfg adapter.Config, log *logger.Logger) (adapter.ServerAdapter, error)
}

// openServices connects to the database from the server configuration
// (.env, environment and the optional JSON file).
func openServices(ctx context.Context, log *logger.Logger) (*service.Services, func(), error) {
	cfg, err := config.GetEnvConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return nil, nil, err
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating storages: %w", err)
	}

	services, err := service.NewServices(storages, *cfg, cycle.NewCalculator(nil), log)
	if err != nil {
		_ = storages.Close()
		return nil, nil, fmt.Errorf("error creating services: %w", err)
	}

	return services, func() { _ = storages.Close() }, nil
}

func newAdapter(cfg adapter.Config, log *logger.Logger) (adapter.ServerAdapter, error) {
	return adapter.NewHTTPServerAdapter(cfg, log)
}
