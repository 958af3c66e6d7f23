// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dariel Marte

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/internal/service"
)

// ConnectivitySource is the monitor surface the worker needs: the current
// belief plus transition notifications.
type ConnectivitySource interface {
	IsOnline() bool
	Subscribe(fn func(online bool))
}

// SyncWorker drives the sync manager: one pass on every ticker beat while
// online, plus an immediate pass whenever the terminal transitions back
// online. The manager's own in-progress guard absorbs overlapping triggers.
type SyncWorker struct {
	manager  service.SyncManager
	monitor  ConnectivitySource
	interval time.Duration
	logger   *logger.Logger

	trigger chan struct{}
	stop    chan struct{}
	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

func NewSyncWorker(manager service.SyncManager, monitor ConnectivitySource, interval time.Duration, log *logger.Logger) *SyncWorker {
	return &SyncWorker{
		manager:  manager,
		monitor:  monitor,
		interval: interval,
		logger:   log,
		trigger:  make(chan struct{}, 1),
		stop:     make(chan struct{}),
	}
}

func (w *SyncWorker) Run() {
	w.monitor.Subscribe(func(online bool) {
		if online {
			w.Trigger()
		}
	})

	w.wg.Add(1)
	go w.loop()

	w.logger.Info().
		Str("func", "SyncWorker.Run").
		Dur("interval", w.interval).
		Msg("sync worker started")
}

// Trigger requests a sync pass outside the ticker beat. Requests made while
// one is already queued collapse into it.
func (w *SyncWorker) Trigger() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

func (w *SyncWorker) loop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	ctx := context.Background()
	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			if !w.monitor.IsOnline() {
				continue
			}
			w.manager.Sync(ctx)
		case <-w.trigger:
			w.manager.Sync(ctx)
		}
	}
}

// Stop halts the loop and waits for it to exit. Safe to call twice.
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	if !w.stopped {
		w.stopped = true
		close(w.stop)
	}
	w.mu.Unlock()
	w.wg.Wait()
}
