// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/models"
)

type settingRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingRepository(db *DB, logger *logger.Logger) SettingRepository {
	logger.Debug().Msg("creating setting repository")
	return &settingRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *settingRepository) ListSettings(ctx context.Context) ([]models.Setting, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, listSettings)
	if err != nil {
		log.Err(err).Str("func", "*settingRepository.ListSettings").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	settings := make([]models.Setting, 0, 4)
	for rows.Next() {
		var (
			setting   models.Setting
			updatedAt dbTime
		)
		if err := rows.Scan(&setting.Key, &setting.Value, &updatedAt); err != nil {
			log.Err(err).Str("func", "*settingRepository.ListSettings").Msg("failed to scan setting row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		setting.UpdatedAt = updatedAt.Time
		settings = append(settings, setting)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*settingRepository.ListSettings").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return settings, nil
}

func (r *settingRepository) SaveSettings(ctx context.Context, settings []models.Setting) error {
	log := logger.FromContext(ctx)

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		query := r.dialect.Rebind(upsertSetting)
		for _, s := range settings {
			if _, err := tx.ExecContext(ctx, query, s.Key, s.Value); err != nil {
				return fmt.Errorf("%w: saving %s: %w", ErrExecutingQuery, s.Key, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*settingRepository.SaveSettings").Int("count", len(settings)).Msg("error saving settings")
		return err
	}

	return nil
}
