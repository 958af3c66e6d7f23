package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/internal/mock"
	"github.com/dmarte/puntoventa/internal/store"
	"github.com/dmarte/puntoventa/models"
)

// memSettings is a stateful in-memory SettingsRepository. The counter tests
// need real read-modify-write behaviour, which call-by-call mocks cannot
// express cleanly.
type memSettings struct {
	values map[string]json.RawMessage
}

func newMemSettings() *memSettings {
	return &memSettings{values: map[string]json.RawMessage{}}
}

func (s *memSettings) Put(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.values[key] = raw
	return nil
}

func (s *memSettings) Get(_ context.Context, key string, dest any) error {
	raw, ok := s.values[key]
	if !ok {
		return store.ErrNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (s *memSettings) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

func newTestSequenceService(t *testing.T, settings store.SettingsRepository, types []models.DocumentType) SequenceService {
	t.Helper()
	ctrl := gomock.NewController(t)

	reference := mock.NewMockReferenceRepository(ctrl)
	reference.EXPECT().GetAllDocumentTypes(gomock.Any()).Return(types, nil).AnyTimes()

	return NewSequenceService(settings, reference, logger.Nop())
}

// seedCounters installs an (empty) counter configuration so the generator is
// past its cold-start state.
func seedCounters(t *testing.T, settings *memSettings, counters map[string]models.SequenceCounter) {
	t.Helper()
	require.NoError(t, settings.Put(context.Background(), store.SettingsKeySequences, counters))
}

func TestNextLocalNumber_ColdStartPlaceholder(t *testing.T) {
	settings := newMemSettings()
	s := newTestSequenceService(t, settings, nil)

	number, err := s.NextLocalNumber(context.Background(), "B02")

	require.NoError(t, err)
	assert.Contains(t, number, "OFFLINE")
	assert.Contains(t, number, "B02")
}

func TestNextLocalNumber_StrictlyIncreasing(t *testing.T) {
	settings := newMemSettings()
	seedCounters(t, settings, map[string]models.SequenceCounter{})
	s := newTestSequenceService(t, settings, nil)

	var got []string
	for i := 0; i < 3; i++ {
		number, err := s.NextLocalNumber(context.Background(), "B02")
		require.NoError(t, err)
		got = append(got, number)
	}

	assert.Equal(t, []string{"B02-00000001", "B02-00000002", "B02-00000003"}, got)
}

func TestNextLocalNumber_IndependentPerCode(t *testing.T) {
	settings := newMemSettings()
	seedCounters(t, settings, map[string]models.SequenceCounter{})
	s := newTestSequenceService(t, settings, nil)

	b02, err := s.NextLocalNumber(context.Background(), "B02")
	require.NoError(t, err)
	b01, err := s.NextLocalNumber(context.Background(), "B01")
	require.NoError(t, err)

	assert.Equal(t, "B02-00000001", b02)
	assert.Equal(t, "B01-00000001", b01)
}

func TestNextLocalNumber_ResolvesOpaqueTypeID(t *testing.T) {
	settings := newMemSettings()
	seedCounters(t, settings, map[string]models.SequenceCounter{})
	types := []models.DocumentType{{ID: "9f3a2c1d", Code: "B01", Name: "Factura fiscal"}}
	s := newTestSequenceService(t, settings, types)

	number, err := s.NextLocalNumber(context.Background(), "9f3a2c1d")

	require.NoError(t, err)
	assert.Equal(t, "B01-00000001", number)
}

func TestNextLocalNumber_UnresolvedIdentFallsBackRaw(t *testing.T) {
	settings := newMemSettings()
	seedCounters(t, settings, map[string]models.SequenceCounter{})
	s := newTestSequenceService(t, settings, []models.DocumentType{{ID: "dt-1", Code: "B01"}})

	number, err := s.NextLocalNumber(context.Background(), "unknown-ident")

	require.NoError(t, err)
	assert.Equal(t, "unknown-ident-00000001", number)
}

func TestReconcile_RaisesCounter(t *testing.T) {
	settings := newMemSettings()
	seedCounters(t, settings, map[string]models.SequenceCounter{})
	s := newTestSequenceService(t, settings, nil)

	require.NoError(t, s.Reconcile(context.Background(), "B02", "B02-00000007"))

	number, err := s.NextLocalNumber(context.Background(), "B02")
	require.NoError(t, err)
	assert.Equal(t, "B02-00000008", number)
}

func TestReconcile_NeverLowersCounter(t *testing.T) {
	settings := newMemSettings()
	seedCounters(t, settings, map[string]models.SequenceCounter{
		"B02": {Current: 7, Prefix: "B02-"},
	})
	s := newTestSequenceService(t, settings, nil)

	require.NoError(t, s.Reconcile(context.Background(), "B02", "B02-00000003"))

	number, err := s.NextLocalNumber(context.Background(), "B02")
	require.NoError(t, err)
	assert.Equal(t, "B02-00000008", number)
}

func TestReconcile_NoNumericSuffixIsNoop(t *testing.T) {
	settings := newMemSettings()
	seedCounters(t, settings, map[string]models.SequenceCounter{
		"B02": {Current: 5, Prefix: "B02-"},
	})
	s := newTestSequenceService(t, settings, nil)

	require.NoError(t, s.Reconcile(context.Background(), "B02", "B02-ANULADA"))

	number, err := s.NextLocalNumber(context.Background(), "B02")
	require.NoError(t, err)
	assert.Equal(t, "B02-00000006", number)
}

// A cold-start placeholder ends in a unix-millisecond timestamp. Feeding it
// back through Reconcile must never raise the counter to that timestamp.
func TestReconcile_IgnoresColdStartPlaceholder(t *testing.T) {
	settings := newMemSettings()
	s := newTestSequenceService(t, settings, nil)

	placeholder, err := s.NextLocalNumber(context.Background(), "B02")
	require.NoError(t, err)
	require.Contains(t, placeholder, "OFFLINE")

	require.NoError(t, s.Reconcile(context.Background(), "B02", placeholder))

	// the terminal must still be cold: no counter configuration was created
	_, ok := settings.values[store.SettingsKeySequences]
	assert.False(t, ok, "reconciling a placeholder must not create counters")
}

func TestReconcile_PlaceholderDoesNotPoisonSeededCounter(t *testing.T) {
	settings := newMemSettings()
	seedCounters(t, settings, map[string]models.SequenceCounter{
		"B02": {Current: 5, Prefix: "B02-"},
	})
	s := newTestSequenceService(t, settings, nil)

	// shape produced by the cold-start path of another terminal
	require.NoError(t, s.Reconcile(context.Background(), "B02", offlinePlaceholder("B02")))

	number, err := s.NextLocalNumber(context.Background(), "B02")
	require.NoError(t, err)
	assert.Equal(t, "B02-00000006", number)
}

// Full cold-start lifecycle: placeholder, failed reconcile attempt with that
// placeholder, then the first pull seeds the real counter.
func TestColdStart_PlaceholderThenSeededSequence(t *testing.T) {
	settings := newMemSettings()
	s := newTestSequenceService(t, settings, nil)

	placeholder, err := s.NextLocalNumber(context.Background(), "B02")
	require.NoError(t, err)
	require.NoError(t, s.Reconcile(context.Background(), "B02", placeholder))

	require.NoError(t, s.SeedFromRemote(context.Background(), []models.RemoteSequence{{Code: "B02", Current: 5}}))

	number, err := s.NextLocalNumber(context.Background(), "B02")
	require.NoError(t, err)
	assert.Equal(t, "B02-00000006", number)
}

func TestSeedFromRemote_RaisesAndCreatesCounters(t *testing.T) {
	settings := newMemSettings()
	seedCounters(t, settings, map[string]models.SequenceCounter{
		"B02": {Current: 10, Prefix: "B02-"},
	})
	s := newTestSequenceService(t, settings, nil)

	err := s.SeedFromRemote(context.Background(), []models.RemoteSequence{
		{Code: "B02", Current: 4},  // lower, must not regress
		{Code: "B01", Current: 40}, // new code
	})
	require.NoError(t, err)

	b02, err := s.NextLocalNumber(context.Background(), "B02")
	require.NoError(t, err)
	b01, err := s.NextLocalNumber(context.Background(), "B01")
	require.NoError(t, err)

	assert.Equal(t, "B02-00000011", b02)
	assert.Equal(t, "B01-00000041", b01)
}

func TestSeedFromRemote_CreatesConfigurationOnColdTerminal(t *testing.T) {
	settings := newMemSettings()
	s := newTestSequenceService(t, settings, nil)

	err := s.SeedFromRemote(context.Background(), []models.RemoteSequence{{Code: "B02", Current: 3}})
	require.NoError(t, err)

	// the terminal is no longer cold: real numbers from here on
	number, err := s.NextLocalNumber(context.Background(), "B02")
	require.NoError(t, err)
	assert.Equal(t, "B02-00000004", number)
}

func TestTrailingNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"B02-00000042", 42, true},
		{"B02-1", 1, true},
		{"B02-OFFLINE-x", 0, false},
		{"", 0, false},
		{"42", 42, true},
	}

	for _, tt := range tests {
		got, ok := trailingNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
