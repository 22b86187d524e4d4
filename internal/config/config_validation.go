// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"time"
)

const (
	// DriverSQLite is the cgo SQLite driver (mattn/go-sqlite3).
	DriverSQLite = "sqlite3"
	// DriverSQLitePure is the pure Go SQLite driver (modernc.org/sqlite).
	DriverSQLitePure = "sqlite"
	DriverPostgres   = "postgres"

	defaultDriver          = DriverSQLite
	defaultSQLiteDSN       = "time_tracker.db"
	defaultHTTPAddress     = "localhost:8080"
	defaultSessionIssuer   = "billable-hours"
	defaultSessionDuration = 12 * time.Hour
	defaultPasswordCost    = 10
	defaultLogLevel        = "info"
)

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// applyDefaults fills every optional field left empty by all sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDriver
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.IsSQLite() {
		cfg.Storage.DB.DSN = defaultSQLiteDSN
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.App.SessionIssuer == "" {
		cfg.App.SessionIssuer = defaultSessionIssuer
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = defaultSessionDuration
	}
	if cfg.App.FlashKey == "" {
		cfg.App.FlashKey = cfg.App.SessionSignKey
	}
	if cfg.App.PasswordCost == 0 {
		cfg.App.PasswordCost = defaultPasswordCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
}

func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSignKey == "" {
		return fmt.Errorf("%w: session sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.SessionDuration < 0 {
		return fmt.Errorf("%w: session duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordCost < 4 || cfg.App.PasswordCost > 31 {
		return fmt.Errorf("%w: password cost must be between 4 and 31", ErrInvalidAppConfigs)
	}
	if !slices.Contains(logLevels, cfg.App.LogLevel) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverSQLitePure, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}

// IsSQLite reports whether the configured driver is one of the SQLite drivers.
func (db DB) IsSQLite() bool {
	return db.Driver == DriverSQLite || db.Driver == DriverSQLitePure
}
