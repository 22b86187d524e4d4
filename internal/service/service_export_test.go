// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/billable-hours/internal/cycle"
	"github.com/MKhiriev/billable-hours/internal/export"
	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/mock"
	"github.com/MKhiriev/billable-hours/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var exportNow = time.Date(2024, time.March, 1, 10, 15, 0, 0, time.UTC)

type exportMocks struct {
	entries  *mock.MockEntryRepository
	projects *mock.MockProjectRepository
}

func newTestExportService(t *testing.T) (ExportService, exportMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := exportMocks{
		entries:  mock.NewMockEntryRepository(ctrl),
		projects: mock.NewMockProjectRepository(ctrl),
	}
	calc := cycle.NewCalculator(func() time.Time { return exportNow })
	return NewExportService(m.entries, m.projects, calc, logger.Nop()), m
}

func exportEntries() []models.TimeEntry {
	return []models.TimeEntry{
		{Date: day(2024, time.February, 27), ProjectName: "Alice Client", Hours: 2, Description: "work"},
		{Date: day(2024, time.February, 26), ProjectName: "Alice Client", Hours: 1.25},
	}
}

// ─────────────────────────────────────────────
// Export
// ─────────────────────────────────────────────

func TestExportService_Export_CSV(t *testing.T) {
	svc, m := newTestExportService(t)
	from, to := day(2024, time.February, 25), day(2024, time.March, 24)

	m.entries.EXPECT().
		ListEntries(gomock.Any(), models.EntryFilter{UserID: 2, From: &from, To: &to}).
		Return(exportEntries(), nil)

	file, err := svc.Export(testContext(), models.ExportRequest{
		UserID: 2, From: &from, To: &to, IncludeDescriptions: true, IncludeTotals: true, Format: models.ExportCSV,
	})

	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, "time_tracking_export_20240225_to_20240324_20240301_101500.csv", file.Filename)

	var want bytes.Buffer
	require.NoError(t, export.CSV(&want, exportEntries(), export.Options{IncludeDescriptions: true, IncludeTotals: true}))
	assert.Equal(t, want.String(), string(file.Body))
}

func TestExportService_Export_SingleProjectNamesFile(t *testing.T) {
	svc, m := newTestExportService(t)

	m.entries.EXPECT().ListEntries(gomock.Any(), gomock.Any()).Return(exportEntries(), nil)
	m.projects.EXPECT().FindProjectByID(gomock.Any(), aliceProject.ID).Return(aliceProject, nil)

	file, err := svc.Export(testContext(), models.ExportRequest{
		UserID: 2, ProjectIDs: []int64{aliceProject.ID}, Format: models.ExportPDF,
	})

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(file.Filename, "time_tracking_export_alice-client_"))
	assert.True(t, bytes.HasPrefix(file.Body, []byte("%PDF-")))
}

func TestExportService_Export_ProjectNameVisibility(t *testing.T) {
	tests := []struct {
		name    string
		project models.Project
		prefix  string
	}{
		{"shared project", sharedProject, "time_tracking_export_internal-admin_"},
		{"own project", aliceProject, "time_tracking_export_alice-client_"},
		{"foreign private project", bobProject, "time_tracking_export_2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestExportService(t)

			m.entries.EXPECT().ListEntries(gomock.Any(), gomock.Any()).Return(nil, nil)
			m.projects.EXPECT().FindProjectByID(gomock.Any(), tt.project.ID).Return(tt.project, nil)

			file, err := svc.Export(testContext(), models.ExportRequest{
				UserID: 2, ProjectIDs: []int64{tt.project.ID}, Format: models.ExportCSV,
			})

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(file.Filename, tt.prefix), file.Filename)
			assert.NotContains(t, file.Filename, "bob")
		})
	}
}

func TestExportService_Export_Rejects(t *testing.T) {
	svc, _ := newTestExportService(t)
	from, to := day(2024, time.March, 10), day(2024, time.March, 1)

	_, err := svc.Export(testContext(), models.ExportRequest{UserID: 2, Format: "xlsx"})
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)

	_, err = svc.Export(testContext(), models.ExportRequest{UserID: 2, From: &from, To: &to, Format: models.ExportCSV})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestExportService_Export_StorageError(t *testing.T) {
	svc, m := newTestExportService(t)

	m.entries.EXPECT().ListEntries(gomock.Any(), gomock.Any()).Return(nil, errStorage)

	_, err := svc.Export(context.Background(), models.ExportRequest{UserID: 2, Format: models.ExportCSV})

	assert.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// QuickExportRequest
// ─────────────────────────────────────────────

func TestExportService_QuickExportRequest(t *testing.T) {
	svc, _ := newTestExportService(t)

	current, err := svc.QuickExportRequest(2, QuickExportCurrentMonth)
	require.NoError(t, err)
	require.NotNil(t, current.From)
	require.NotNil(t, current.To)
	assert.Equal(t, day(2024, time.February, 25), *current.From)
	assert.Equal(t, day(2024, time.March, 24), *current.To)
	assert.True(t, current.IncludeDescriptions)
	assert.True(t, current.IncludeTotals)
	assert.Equal(t, models.ExportCSV, current.Format)

	all, err := svc.QuickExportRequest(2, QuickExportAllData)
	require.NoError(t, err)
	assert.Nil(t, all.From)
	assert.Nil(t, all.To)
	assert.Equal(t, int64(2), all.UserID)

	_, err = svc.QuickExportRequest(2, "last_year")
	assert.ErrorIs(t, err, ErrUnknownQuickExport)
}
