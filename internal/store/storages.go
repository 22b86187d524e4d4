// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/billable-hours/internal/config"
	"github.com/MKhiriev/billable-hours/internal/logger"
)

// Storages bundles every repository over one database connection.
type Storages struct {
	db *DB

	UserRepository    UserRepository
	ProjectRepository ProjectRepository
	EntryRepository   EntryRepository
	SettingRepository SettingRepository
	ReportRepository  ReportRepository
}

// NewStorages connects to the configured database, applies all pending
// migrations and builds the repositories. The caller owns the returned
// Storages and must Close it.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch {
	case cfg.DB.IsSQLite():
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	case cfg.DB.Driver == config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB builds the repositories over an already migrated DB.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		db:                db,
		UserRepository:    NewUserRepository(db, logger),
		ProjectRepository: NewProjectRepository(db, logger),
		EntryRepository:   NewEntryRepository(db, logger),
		SettingRepository: NewSettingRepository(db, logger),
		ReportRepository:  NewReportRepository(db, logger),
	}
}

// Ping verifies the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storages) Close() error {
	return s.db.Close()
}
