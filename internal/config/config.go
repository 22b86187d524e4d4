// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the complete runtime configuration of the server and
// the admin CLI.
type StructuredConfig struct {
	// App holds session, password hashing and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is an optional path to a JSON config file.
	JSONFilePath string `env:"CONFIG"`
}

type App struct {
	// SessionSignKey signs the session JWT. Required.
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	SessionIssuer string `env:"SESSION_ISSUER"`

	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// FlashKey authenticates the flash message cookie. Defaults to SessionSignKey.
	FlashKey string `env:"FLASH_KEY"`

	// PasswordCost is the bcrypt cost used for new password hashes.
	PasswordCost int `env:"PASSWORD_COST"`

	// LogLevel is a zerolog level name: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL"`

	Version string `env:"VERSION"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`
}

type DB struct {
	// Driver is "sqlite3", "sqlite" or "postgres".
	Driver string `env:"DRIVER"`

	DSN string `env:"DATABASE_URI"`
}

type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request when positive.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SecureCookies marks the session and flash cookies Secure.
	SecureCookies bool `env:"SECURE_COOKIES"`
}

// GetStructuredConfig assembles the server configuration from .env, the
// environment, the command line and an optional JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// GetEnvConfig assembles the configuration without command-line flags.
// The admin CLI uses it because it owns its own argument parsing.
func GetEnvConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withJSON().
		build()
}
