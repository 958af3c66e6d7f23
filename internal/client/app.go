// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dariel Marte

package client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmarte/puntoventa/internal/adapter"
	"github.com/dmarte/puntoventa/internal/config"
	"github.com/dmarte/puntoventa/internal/connectivity"
	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/internal/service"
	"github.com/dmarte/puntoventa/internal/store"
	"github.com/dmarte/puntoventa/internal/workers"
	"github.com/dmarte/puntoventa/models"
)

// accessTokenEnv carries the terminal's session token. It is deliberately
// not part of the merged config files.
const accessTokenEnv = "POS_ACCESS_TOKEN"

// App wires the terminal runtime: local storage, remote adapter,
// connectivity monitor, services and background workers.
type App struct {
	cfg      *config.POSConfig
	logger   *logger.Logger
	storages *store.Storages
	remote   adapter.RemoteBackend
	monitor  *connectivity.Monitor
	services *service.Services

	workers    *workers.Workers
	syncWorker *workers.SyncWorker
}

func NewApp(cfg *config.POSConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		// ErrStorageUnavailable is wrapped inside; the caller decides
		// whether running without local durability is acceptable
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote, err := adapter.NewHTTPRemoteBackend(cfg.Remote, log)
	if err != nil {
		return nil, fmt.Errorf("create remote backend adapter: %w", err)
	}
	if token := os.Getenv(accessTokenEnv); token != "" {
		remote.SetToken(token)
	}

	monitor := connectivity.NewMonitor(remote, cfg.Sync.ProbeInterval, log)

	app := &App{
		cfg:      cfg,
		logger:   log,
		storages: storages,
		remote:   remote,
		monitor:  monitor,
	}

	runtimeCfg := *cfg
	runtimeCfg.App.StoreID = app.bootstrapIdentity(context.Background())

	app.services = service.NewServices(*storages, remote, monitor, runtimeCfg, log)
	app.syncWorker = workers.NewSyncWorker(app.services.Sync, monitor, cfg.Workers.SyncInterval, log)
	app.workers = workers.NewWorkers(app.syncWorker)

	return app, nil
}

// Services exposes the service layer to the presentation code.
func (a *App) Services() *service.Services {
	return a.services
}

// Monitor exposes the connectivity monitor so outer layers can feed it
// environment signals.
func (a *App) Monitor() *connectivity.Monitor {
	return a.monitor
}

// Run starts the background machinery and blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	log := a.logger.With().Str("func", "App.Run").Logger()

	if err := a.remote.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("backend unreachable at startup, running offline")
	} else {
		a.monitor.SetOnline(true)
	}

	a.monitor.Run(ctx)
	a.workers.Run()
	// first pass as soon as the loop is up
	a.syncWorker.Trigger()

	<-ctx.Done()
	a.Shutdown()
	return nil
}

// Shutdown stops the workers and the probe loop, letting any in-flight sync
// pass finish.
func (a *App) Shutdown() {
	a.syncWorker.Stop()
	a.monitor.Shutdown()
	a.logger.Info().Str("func", "App.Shutdown").Msg("terminal stopped")
}

// bootstrapIdentity determines the tenant/store this terminal belongs to:
// explicit config wins, then a live profile lookup, then the cached profile
// from the last online session.
func (a *App) bootstrapIdentity(ctx context.Context) string {
	log := a.logger.With().Str("func", "App.bootstrapIdentity").Logger()

	if a.cfg.App.StoreID != "" {
		return a.cfg.App.StoreID
	}

	var cached models.StoreProfile
	haveCached := a.storages.Settings.Get(ctx, store.SettingsKeyProfile, &cached) == nil
	if haveCached && cached.AccessToken != "" && os.Getenv(accessTokenEnv) == "" {
		a.remote.SetToken(cached.AccessToken)
	}

	profile, err := a.remote.ResolveProfile(ctx)
	if err == nil && profile.StoreID != "" {
		if haveCached && cached.StoreID != "" && cached.StoreID != profile.StoreID {
			// the cached catalog belongs to another store; a terminal
			// re-provisioned to a new tenant must not sell from it
			log.Warn().
				Str("cached_store_id", cached.StoreID).
				Str("store_id", profile.StoreID).
				Msg("store identity changed, clearing cached catalog")
			if clearErr := a.storages.Products.Clear(ctx); clearErr != nil {
				log.Error().Err(clearErr).Msg("failed to clear cached catalog")
			}
		}
		profile.CachedAt = time.Now().UTC()
		if putErr := a.storages.Settings.Put(ctx, store.SettingsKeyProfile, profile); putErr != nil {
			log.Error().Err(putErr).Msg("failed to cache store profile")
		}
		a.monitor.SetOnline(true)
		return profile.StoreID
	}
	log.Warn().Err(err).Msg("profile lookup failed, falling back to cached profile")

	if haveCached {
		return cached.StoreID
	}

	log.Warn().Msg("no store identity available yet, sync will be unscoped until first login")
	return ""
}
