// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/store"
	"github.com/MKhiriev/billable-hours/internal/validators"
	"github.com/MKhiriev/billable-hours/models"
)

// SearchLimit caps the number of entries returned by a search.
const SearchLimit = 100

var errProjectUnavailable = fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrProjectUnavailable)

type entryService struct {
	entryRepository   store.EntryRepository
	projectRepository store.ProjectRepository

	logger *logger.Logger
}

func NewEntryService(entryRepository store.EntryRepository, projectRepository store.ProjectRepository, logger *logger.Logger) EntryService {
	return &entryService{
		entryRepository:   entryRepository,
		projectRepository: projectRepository,
		logger:            logger,
	}
}

func (e *entryService) CreateEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error) {
	log := logger.FromContext(ctx)

	entry.Date = models.Date(entry.Date)
	entry.Description = strings.TrimSpace(entry.Description)
	if err := e.checkProject(ctx, owner(entry), entry.ProjectID); err != nil {
		return models.TimeEntry{}, err
	}

	created, err := e.entryRepository.CreateEntry(ctx, entry)
	if errors.Is(err, store.ErrInvalidReference) {
		return models.TimeEntry{}, errProjectUnavailable
	}
	if err != nil {
		log.Err(err).Str("func", "*entryService.CreateEntry").Int64("user_id", owner(entry)).Msg("entry creation failed")
		return models.TimeEntry{}, fmt.Errorf("entry creation failed: %w", err)
	}

	log.Debug().Int64("entry_id", created.ID).Float64("hours", created.Hours).Msg("entry created")
	return created, nil
}

func (e *entryService) UpdateEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error) {
	entry.Date = models.Date(entry.Date)
	entry.Description = strings.TrimSpace(entry.Description)
	if err := e.checkProject(ctx, owner(entry), entry.ProjectID); err != nil {
		return models.TimeEntry{}, err
	}

	updated, err := e.entryRepository.UpdateEntry(ctx, entry)
	if errors.Is(err, store.ErrInvalidReference) {
		return models.TimeEntry{}, errProjectUnavailable
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryService.UpdateEntry").Int64("entry_id", entry.ID).Msg("entry update failed")
		return models.TimeEntry{}, fmt.Errorf("entry update failed: %w", err)
	}
	return updated, nil
}

func (e *entryService) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	if err := e.entryRepository.DeleteEntry(ctx, userID, entryID); err != nil {
		return fmt.Errorf("entry deletion failed: %w", err)
	}
	return nil
}

func (e *entryService) GetEntry(ctx context.Context, userID, entryID int64) (models.TimeEntry, error) {
	return e.entryRepository.FindEntryByID(ctx, userID, entryID)
}

func (e *entryService) ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.TimeEntry, error) {
	filter.Query = strings.TrimSpace(filter.Query)

	entries, err := e.entryRepository.ListEntries(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryService.ListEntries").Int64("user_id", filter.UserID).Msg("listing entries failed")
		return nil, fmt.Errorf("listing entries failed: %w", err)
	}
	return entries, nil
}

func (e *entryService) SearchEntries(ctx context.Context, filter models.EntryFilter) ([]models.TimeEntry, error) {
	if filter.Limit == 0 || filter.Limit > SearchLimit {
		filter.Limit = SearchLimit
	}
	return e.ListEntries(ctx, filter)
}

// checkProject makes sure the entry points at a project the user can see.
func (e *entryService) checkProject(ctx context.Context, userID, projectID int64) error {
	project, err := e.projectRepository.FindProjectByID(ctx, projectID)
	if errors.Is(err, store.ErrProjectNotFound) {
		return errProjectUnavailable
	}
	if err != nil {
		return fmt.Errorf("project search failed: %w", err)
	}
	if !project.IsShared() && !project.OwnedBy(userID) {
		return errProjectUnavailable
	}
	return nil
}

func owner(entry models.TimeEntry) int64 {
	if entry.UserID == nil {
		return 0
	}
	return *entry.UserID
}
