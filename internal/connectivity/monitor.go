// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dariel Marte

// Package connectivity tracks whether the terminal can currently reach the
// backend. The flag flips pessimistically: any failed remote call marks the
// terminal offline, and a background probe (or the next successful call)
// marks it back online.
package connectivity

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmarte/puntoventa/internal/logger"
)

// Prober is the minimal remote surface the monitor needs: a cheap
// reachability check.
type Prober interface {
	Ping(ctx context.Context) error
}

// Monitor holds the current online/offline state and notifies subscribers
// on every transition. Notifications run synchronously in the caller's
// goroutine, so subscribers must not block.
type Monitor struct {
	prober   Prober
	interval time.Duration
	logger   *logger.Logger

	online atomic.Bool

	mu          sync.Mutex
	subscribers []func(online bool)
	stop        chan struct{}
	stopped     bool
	wg          sync.WaitGroup
}

func NewMonitor(prober Prober, probeInterval time.Duration, log *logger.Logger) *Monitor {
	return &Monitor{
		prober:   prober,
		interval: probeInterval,
		logger:   log,
		stop:     make(chan struct{}),
	}
}

// IsOnline reports the last known connectivity state. A true value is a
// hint, not a guarantee: the next remote call can still fail.
func (m *Monitor) IsOnline() bool {
	return m.online.Load()
}

// SetOnline records an observed connectivity state. Remote adapters call it
// after every request so the monitor learns about outages without waiting
// for the probe. Subscribers fire only on actual transitions.
func (m *Monitor) SetOnline(online bool) {
	previous := m.online.Swap(online)
	if previous == online {
		return
	}

	m.logger.Info().Bool("online", online).Str("func", "Monitor.SetOnline").Msg("connectivity changed")
	m.notify(online)
}

// Subscribe registers a transition callback. There is no unsubscribe:
// subscribers live as long as the process.
func (m *Monitor) Subscribe(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

func (m *Monitor) notify(online bool) {
	m.mu.Lock()
	subs := make([]func(bool), len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(online)
	}
}

// Run starts the fallback probe loop: while the terminal believes it is
// offline, the prober is pinged on every tick so recovery is noticed even
// when no user action touches the network. Returns immediately; stop with
// Shutdown.
func (m *Monitor) Run(ctx context.Context) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-m.stop:
				return
			case <-ticker.C:
				if m.IsOnline() {
					continue
				}
				m.probe(ctx)
			}
		}
	}()
}

func (m *Monitor) probe(ctx context.Context) {
	log := m.logger.With().Str("func", "Monitor.probe").Logger()

	if err := m.prober.Ping(ctx); err != nil {
		log.Debug().Err(err).Msg("backend still unreachable")
		return
	}
	m.SetOnline(true)
}

// Shutdown stops the probe loop and waits for it to exit.
func (m *Monitor) Shutdown() {
	m.mu.Lock()
	if !m.stopped {
		m.stopped = true
		close(m.stop)
	}
	m.mu.Unlock()
	m.wg.Wait()
}
