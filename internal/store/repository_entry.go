// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/models"
)

type entryRepository struct {
	*DB
	logger *logger.Logger
}

func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating time entry repository")
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

func scanEntry(row rowScanner) (models.TimeEntry, error) {
	var (
		entry                models.TimeEntry
		userID               sql.NullInt64
		description          sql.NullString
		date                 dbDate
		createdAt, updatedAt dbTime
	)
	err := row.Scan(&entry.ID, &userID, &date, &entry.ProjectID, &entry.ProjectName,
		&entry.Hours, &description, &createdAt, &updatedAt)
	if err != nil {
		return models.TimeEntry{}, err
	}
	entry.UserID = nullInt64Ptr(userID)
	entry.Description = description.String
	entry.Date = date.Time
	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time
	return entry, nil
}

func (r *entryRepository) entryWriteError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrEntryNotFound
	}
	switch r.classify(err) {
	case ForeignKeyViolation:
		return ErrInvalidReference
	case CheckViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolated, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func (r *entryRepository) CreateEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error) {
	log := logger.FromContext(ctx)

	var createdAt, updatedAt dbTime
	err := r.QueryRowContext(ctx, r.dialect.Rebind(createEntry),
		int64PtrArg(entry.UserID), entry.ProjectID, dateArg(entry.Date), entry.Hours, entry.Description,
	).Scan(&entry.ID, &createdAt, &updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Int64("project_id", entry.ProjectID).Msg("error creating time entry")
		return models.TimeEntry{}, r.entryWriteError(err)
	}

	entry.Date = models.Date(entry.Date)
	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time
	return entry, nil
}

func (r *entryRepository) UpdateEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error) {
	log := logger.FromContext(ctx)

	var userID int64
	if entry.UserID != nil {
		userID = *entry.UserID
	}

	var createdAt, updatedAt dbTime
	err := r.QueryRowContext(ctx, r.dialect.Rebind(updateEntry),
		entry.ProjectID, dateArg(entry.Date), entry.Hours, entry.Description, entry.ID, userID,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateEntry").Int64("entry_id", entry.ID).Msg("error updating time entry")
		return models.TimeEntry{}, r.entryWriteError(err)
	}

	entry.Date = models.Date(entry.Date)
	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time
	return entry, nil
}

func (r *entryRepository) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.ExecContext(ctx, r.dialect.Rebind(deleteEntry), entryID, userID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Int64("entry_id", entryID).Msg("error deleting time entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *entryRepository) FindEntryByID(ctx context.Context, userID, entryID int64) (models.TimeEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindEntryQuery(r.dialect.Builder(), userID, entryID)
	if err != nil {
		return models.TimeEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanEntry(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TimeEntry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.FindEntryByID").Int64("entry_id", entryID).Msg("error finding time entry")
		return models.TimeEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

func (r *entryRepository) ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.TimeEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(r.dialect.Builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.ListEntries").
			Int64("user_id", filter.UserID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.TimeEntry, 0, 64)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("failed to scan time entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
