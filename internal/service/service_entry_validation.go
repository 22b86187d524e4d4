// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/billable-hours/internal/validators"
	"github.com/MKhiriev/billable-hours/models"
)

// EntryValidationService rejects malformed entries before they reach the
// wrapped EntryService.
type EntryValidationService struct {
	inner     EntryService
	validator validators.Validator
}

func NewEntryValidationService() EntryServiceWrapper {
	return &EntryValidationService{
		validator: validators.NewTimeEntryValidator(),
	}
}

func (v *EntryValidationService) CreateEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error) {
	if err := v.validator.Validate(ctx, entry); err != nil {
		return models.TimeEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateEntry(ctx, entry)
}

func (v *EntryValidationService) UpdateEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error) {
	if entry.ID <= 0 {
		return models.TimeEntry{}, ErrInvalidDataProvided
	}
	if err := v.validator.Validate(ctx, entry); err != nil {
		return models.TimeEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateEntry(ctx, entry)
}

func (v *EntryValidationService) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	return v.inner.DeleteEntry(ctx, userID, entryID)
}

func (v *EntryValidationService) GetEntry(ctx context.Context, userID, entryID int64) (models.TimeEntry, error) {
	return v.inner.GetEntry(ctx, userID, entryID)
}

func (v *EntryValidationService) ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.TimeEntry, error) {
	if err := validateWindow(filter); err != nil {
		return nil, err
	}
	return v.inner.ListEntries(ctx, filter)
}

func (v *EntryValidationService) SearchEntries(ctx context.Context, filter models.EntryFilter) ([]models.TimeEntry, error) {
	if err := validateWindow(filter); err != nil {
		return nil, err
	}
	return v.inner.SearchEntries(ctx, filter)
}

func (v *EntryValidationService) Wrap(wrapped EntryService) EntryService {
	v.inner = wrapped
	return v
}

func validateWindow(filter models.EntryFilter) error {
	if filter.UserID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidDataProvided)
	}
	return nil
}
