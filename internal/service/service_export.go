// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/billable-hours/internal/cycle"
	"github.com/MKhiriev/billable-hours/internal/export"
	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/store"
	"github.com/MKhiriev/billable-hours/models"
)

const (
	QuickExportCurrentMonth = "current_month"
	QuickExportAllData      = "all_data"

	exportTitle = "Time Tracking Export"
)

type exportService struct {
	entryRepository   store.EntryRepository
	projectRepository store.ProjectRepository
	cycles            *cycle.Calculator

	logger *logger.Logger
}

func NewExportService(entryRepository store.EntryRepository, projectRepository store.ProjectRepository, cycles *cycle.Calculator, logger *logger.Logger) ExportService {
	return &exportService{
		entryRepository:   entryRepository,
		projectRepository: projectRepository,
		cycles:            cycles,
		logger:            logger,
	}
}

// Export renders the user's entries matching request into a file.
func (e *exportService) Export(ctx context.Context, request models.ExportRequest) (models.ExportFile, error) {
	log := logger.FromContext(ctx)

	if request.Format != models.ExportCSV && request.Format != models.ExportPDF {
		return models.ExportFile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, export.ErrUnsupportedFormat)
	}
	if request.From != nil && request.To != nil && request.To.Before(*request.From) {
		return models.ExportFile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, cycle.ErrInvalidRange)
	}

	entries, err := e.entryRepository.ListEntries(ctx, models.EntryFilter{
		UserID:     request.UserID,
		From:       request.From,
		To:         request.To,
		ProjectIDs: request.ProjectIDs,
	})
	if err != nil {
		log.Err(err).Str("func", "*exportService.Export").Int64("user_id", request.UserID).Msg("listing entries for export failed")
		return models.ExportFile{}, fmt.Errorf("listing entries for export failed: %w", err)
	}

	var projectName string
	if len(request.ProjectIDs) == 1 {
		// Foreign private projects stay out of the filename.
		project, err := e.projectRepository.FindProjectByID(ctx, request.ProjectIDs[0])
		if err == nil && (project.IsShared() || project.OwnedBy(request.UserID)) {
			projectName = project.Name
		}
	}

	var body bytes.Buffer
	err = export.Write(&body, request.Format, entries, export.Options{
		IncludeDescriptions: request.IncludeDescriptions,
		IncludeTotals:       request.IncludeTotals,
		Title:               exportTitle,
	})
	if err != nil {
		log.Err(err).Str("func", "*exportService.Export").Str("format", string(request.Format)).Msg("rendering export failed")
		return models.ExportFile{}, fmt.Errorf("rendering export failed: %w", err)
	}

	log.Info().Int64("user_id", request.UserID).Int("entries", len(entries)).Str("format", string(request.Format)).Msg("export rendered")

	return models.ExportFile{
		Filename:    export.Filename(request.From, request.To, projectName, request.Format, e.cycles.Now()),
		ContentType: export.ContentType(request.Format),
		Body:        body.Bytes(),
	}, nil
}

// QuickExportRequest builds a CSV request with descriptions and totals,
// limited to the current cycle or covering everything.
func (e *exportService) QuickExportRequest(userID int64, quick string) (models.ExportRequest, error) {
	request := models.ExportRequest{
		UserID:              userID,
		IncludeDescriptions: true,
		IncludeTotals:       true,
		Format:              models.ExportCSV,
	}

	switch quick {
	case QuickExportCurrentMonth:
		c := e.cycles.Current()
		request.From, request.To = &c.Start, &c.End
	case QuickExportAllData:
	default:
		return models.ExportRequest{}, fmt.Errorf("%w: %q", ErrUnknownQuickExport, quick)
	}

	return request, nil
}
