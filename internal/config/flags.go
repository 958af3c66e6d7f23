package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-r backend base URL
//	-d local database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-api-key backend project API key
//	-store-id pinned store identifier
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-sync-interval background sync interval (e.g., "30s")
//	-retention-days queue retention window in days
//	-probe-interval connectivity fallback poll period
func ParseFlags() *StructuredConfig {
	var remoteBaseURL string
	var databaseDSN string
	var jsonConfigPath string
	var apiKey string
	var storeID string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var retentionDays int
	var probeInterval time.Duration

	flag.StringVar(&remoteBaseURL, "r", "", "Backend base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&apiKey, "api-key", "", "Backend project API key")
	flag.StringVar(&storeID, "store-id", "", "Pinned store identifier")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 30s)")
	flag.IntVar(&retentionDays, "retention-days", 0, "Queue retention window in days")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity fallback poll period")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			StoreID: storeID,
		},
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			APIKey:         apiKey,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Sync: Sync{
			RetentionDays: retentionDays,
			ProbeInterval: probeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
