package config

import (
	"fmt"
	"time"
)

// Default values applied by [GetPOSConfig] when neither env, flags nor JSON
// provide an explicit setting.
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultSyncInterval   = 30 * time.Second
	DefaultProbeInterval  = 30 * time.Second
	DefaultRetentionDays  = 7
)

// POSApp holds application-level terminal settings.
type POSApp struct {
	// Version is the application version string.
	Version string
	// StoreID optionally pins the tenant/store identifier.
	StoreID string
}

// POSRemote holds network settings used by the backend adapter.
type POSRemote struct {
	// BaseURL is the backend HTTP endpoint address.
	BaseURL string
	// APIKey is the static project key sent with every request.
	APIKey string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// POSStorage groups local storage backend settings.
type POSStorage struct {
	// DB holds local SQLite settings.
	DB DB
}

// POSWorkers contains background worker settings.
type POSWorkers struct {
	// SyncInterval defines how often the sync worker should run.
	SyncInterval time.Duration
}

// POSSync contains sync-manager tuning values.
type POSSync struct {
	// RetentionDays is the confirmed-queue-item retention window.
	RetentionDays int
	// ProbeInterval is the connectivity fallback poll period.
	ProbeInterval time.Duration
}

// POSConfig is the top-level terminal configuration assembled from
// [StructuredConfig].
type POSConfig struct {
	// App contains application-level settings.
	App POSApp
	// Remote contains backend transport address, key and timeout.
	Remote POSRemote
	// Storage contains local storage settings.
	Storage POSStorage
	// Workers contains background job settings.
	Workers POSWorkers
	// Sync contains sync-manager tuning values.
	Sync POSSync
}

// GetStructuredConfig builds the merged [StructuredConfig] from command-line
// flags, environment variables, and an optional JSON file. Flags override
// env values, which in turn override the file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
}

// GetPOSConfig builds and validates a terminal-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the POS runtime, fills in defaults for unset durations, and
// validates the resulting [POSConfig].
func GetPOSConfig() (*POSConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	posCfg := &POSConfig{
		App: POSApp{
			Version: cfg.App.Version,
			StoreID: cfg.App.StoreID,
		},
		Remote: POSRemote{
			BaseURL:        cfg.Remote.BaseURL,
			APIKey:         cfg.Remote.APIKey,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: POSStorage{
			DB: DB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: POSWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Sync: POSSync{
			RetentionDays: cfg.Sync.RetentionDays,
			ProbeInterval: cfg.Sync.ProbeInterval,
		},
	}

	posCfg.applyDefaults()

	return posCfg, posCfg.validate()
}

func (cfg *POSConfig) applyDefaults() {
	if cfg.Remote.RequestTimeout <= 0 {
		cfg.Remote.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Sync.ProbeInterval <= 0 {
		cfg.Sync.ProbeInterval = DefaultProbeInterval
	}
	if cfg.Sync.RetentionDays <= 0 {
		cfg.Sync.RetentionDays = DefaultRetentionDays
	}
}
