// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dariel Marte

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the narrowed [POSConfig] view carries the
// real validation rules.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *POSConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.BaseURL == "" || cfg.Remote.RequestTimeout == 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Sync.RetentionDays <= 0 || cfg.Sync.ProbeInterval == 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
