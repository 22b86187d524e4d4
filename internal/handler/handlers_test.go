// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"
	"testing"

	"github.com/MKhiriev/billable-hours/internal/config"
	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPinger struct{}

func (nopPinger) Ping(context.Context) error { return nil }

// newTestServices returns an empty *service.Services. NewHandlers only stores
// the pointer, so construction-time tests need no implementations.
func newTestServices() *service.Services {
	return &service.Services{}
}

// TestNewHandlers_HTTP verifies that a configured HTTP address yields an HTTP
// handler with parsed templates.
func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.StructuredConfig{
		App:    config.App{SessionSignKey: "test-key"},
		Server: config.Server{HTTPAddress: ":8080"},
	}

	h, err := NewHandlers(newTestServices(), nopPinger{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

// TestNewHandlers_NoAddress verifies that an empty HTTP address is rejected.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), nopPinger{}, config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
