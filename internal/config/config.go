// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dariel Marte

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// puntoventa terminal. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the terminal role label
	// and the application version.
	App App `envPrefix:"APP_"`

	// Remote holds the backend endpoint address, timeout and API key used
	// by the HTTP adapter.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the local SQLite database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes, most
	// importantly the sync interval.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds tuning knobs of the sync manager: queue retention and the
	// connectivity fallback probe interval.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// StoreID optionally pins the tenant/store identifier instead of
	// resolving it from the cached session profile. Mostly used in tests
	// and kiosk provisioning.
	// Env: APP_STORE_ID
	StoreID string `env:"STORE_ID"`
}

// Remote holds network settings for the outbound backend transport.
type Remote struct {
	// BaseURL is the backend HTTP endpoint, e.g. "https://api.example.com".
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the static project key sent with every request, distinct
	// from the per-session bearer token.
	// Env: REMOTE_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "15s"). Timeouts are owned by the transport, not by the sync
	// core.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains local database connection settings.
type DB struct {
	// DSN is the SQLite file path used by the terminal.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers contains background worker settings.
type Workers struct {
	// SyncInterval defines how often the background sync worker runs while
	// online (e.g. "30s").
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Sync contains sync-manager tuning values.
type Sync struct {
	// RetentionDays is how long confirmed queue items are kept before the
	// retention sweep deletes them.
	// Env: SYNC_RETENTION_DAYS
	RetentionDays int `env:"RETENTION_DAYS"`

	// ProbeInterval is the connectivity fallback poll period. The probe
	// only catches missed transition notifications; it is not the primary
	// signal.
	// Env: SYNC_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}
