// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/store"
	"github.com/MKhiriev/billable-hours/internal/validators"
	"github.com/MKhiriev/billable-hours/models"
)

type settingsService struct {
	settingRepository store.SettingRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewSettingsService(settingRepository store.SettingRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingRepository: settingRepository,
		validator:         validators.NewSettingsValidator(),
		logger:            logger,
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx)

	stored, err := s.settingRepository.ListSettings(ctx)
	if err != nil {
		log.Err(err).Str("func", "*settingsService.GetSettings").Msg("listing settings failed")
		return models.Settings{}, fmt.Errorf("listing settings failed: %w", err)
	}

	settings := models.DefaultSettings()
	for _, setting := range stored {
		switch setting.Key {
		case models.SettingMonthlyGoalHours:
			if v, err := strconv.ParseFloat(setting.Value, 64); err == nil {
				settings.MonthlyGoalHours = v
			} else {
				log.Warn().Str("key", setting.Key).Str("value", setting.Value).Msg("malformed setting ignored")
			}
		case models.SettingDefaultHourlyRate:
			if v, err := strconv.ParseFloat(setting.Value, 64); err == nil {
				settings.DefaultHourlyRate = v
			} else {
				log.Warn().Str("key", setting.Key).Str("value", setting.Value).Msg("malformed setting ignored")
			}
		case models.SettingCurrencySymbol:
			if setting.Value != "" {
				settings.CurrencySymbol = setting.Value
			}
		}
	}

	return settings, nil
}

func (s *settingsService) SaveSettings(ctx context.Context, settings models.Settings) error {
	settings.CurrencySymbol = strings.TrimSpace(settings.CurrencySymbol)
	if err := s.validator.Validate(ctx, settings); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	err := s.settingRepository.SaveSettings(ctx, []models.Setting{
		{Key: models.SettingMonthlyGoalHours, Value: strconv.FormatFloat(settings.MonthlyGoalHours, 'f', -1, 64)},
		{Key: models.SettingCurrencySymbol, Value: settings.CurrencySymbol},
		{Key: models.SettingDefaultHourlyRate, Value: strconv.FormatFloat(settings.DefaultHourlyRate, 'f', -1, 64)},
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*settingsService.SaveSettings").Msg("saving settings failed")
		return fmt.Errorf("saving settings failed: %w", err)
	}
	return nil
}
