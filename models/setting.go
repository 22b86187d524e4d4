// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Setting keys known to the application.
const (
	SettingMonthlyGoalHours  = "monthly_goal_hours"
	SettingCurrencySymbol    = "currency_symbol"
	SettingDefaultHourlyRate = "default_hourly_rate"
)

// Default setting values, used when a key is missing from the store.
const (
	DefaultMonthlyGoalHours  = 160.0
	DefaultCurrencySymbol    = "$"
	DefaultDefaultHourlyRate = 75.0
)

// Setting is a raw key-value pair persisted in the settings table.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Settings is the typed view over the known setting keys.
type Settings struct {
	MonthlyGoalHours  float64 `json:"monthly_goal_hours"`
	CurrencySymbol    string  `json:"currency_symbol"`
	DefaultHourlyRate float64 `json:"default_hourly_rate"`
}

// DefaultSettings returns the values seeded into a fresh database.
func DefaultSettings() Settings {
	return Settings{
		MonthlyGoalHours:  DefaultMonthlyGoalHours,
		CurrencySymbol:    DefaultCurrencySymbol,
		DefaultHourlyRate: DefaultDefaultHourlyRate,
	}
}
