package connectivity

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarte/puntoventa/internal/logger"
)

type fakeProber struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (p *fakeProber) Ping(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.err
}

func (p *fakeProber) setErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func (p *fakeProber) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestMonitor_StartsOffline(t *testing.T) {
	m := NewMonitor(&fakeProber{}, time.Minute, logger.Nop())
	assert.False(t, m.IsOnline())
}

func TestMonitor_SetOnlineNotifiesOnTransitionOnly(t *testing.T) {
	m := NewMonitor(&fakeProber{}, time.Minute, logger.Nop())

	var transitions []bool
	m.Subscribe(func(online bool) {
		transitions = append(transitions, online)
	})

	m.SetOnline(true)
	m.SetOnline(true) // no transition
	m.SetOnline(false)
	m.SetOnline(false) // no transition
	m.SetOnline(true)

	assert.Equal(t, []bool{true, false, true}, transitions)
}

func TestMonitor_ProbeRecoversFromOffline(t *testing.T) {
	prober := &fakeProber{}
	prober.setErr(errors.New("refused"))

	m := NewMonitor(prober, 10*time.Millisecond, logger.Nop())
	defer m.Shutdown()

	recovered := make(chan bool, 1)
	m.Subscribe(func(online bool) {
		if online {
			select {
			case recovered <- true:
			default:
			}
		}
	})

	m.Run(context.Background())

	// let the probe fail a few times, then restore the backend
	require.Eventually(t, func() bool { return prober.callCount() >= 2 }, time.Second, 5*time.Millisecond)
	assert.False(t, m.IsOnline())

	prober.setErr(nil)

	select {
	case <-recovered:
	case <-time.After(time.Second):
		t.Fatal("monitor never reported recovery")
	}
	assert.True(t, m.IsOnline())
}

func TestMonitor_ProbeSkippedWhileOnline(t *testing.T) {
	prober := &fakeProber{}
	m := NewMonitor(prober, 10*time.Millisecond, logger.Nop())
	defer m.Shutdown()

	m.SetOnline(true)
	m.Run(context.Background())

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, prober.callCount())
}

func TestMonitor_ShutdownIsIdempotent(t *testing.T) {
	m := NewMonitor(&fakeProber{}, time.Minute, logger.Nop())
	m.Run(context.Background())

	m.Shutdown()
	m.Shutdown()
}
