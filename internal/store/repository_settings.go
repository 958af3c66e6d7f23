package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmarte/puntoventa/internal/logger"
)

// Well-known settings keys.
const (
	// SettingsKeySequences holds the per-document-type invoice counters as
	// a JSON object keyed by type code.
	SettingsKeySequences = "invoice_sequences"

	// SettingsKeyProfile holds the cached session/store profile.
	SettingsKeyProfile = "store_profile"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *settingsRepository) Put(ctx context.Context, key string, value any) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(value)
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Put").
			Str("key", key).
			Msg("failed to encode settings value")
		return fmt.Errorf("failed to encode settings value (key=%s): %w", key, err)
	}

	if _, err = r.DB.ExecContext(ctx, putSetting, key, string(payload)); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Put").
			Str("key", key).
			Msg("failed to upsert settings value")
		return fmt.Errorf("failed to put setting (key=%s): %w", key, err)
	}

	return nil
}

func (r *settingsRepository) Get(ctx context.Context, key string, dest any) error {
	log := logger.FromContext(ctx)

	var payload string
	row := r.DB.QueryRowContext(ctx, getSetting, key)
	if scanErr := row.Scan(&payload); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return fmt.Errorf("setting %s: %w", key, ErrNotFound)
		}
		log.Err(scanErr).
			Str("func", "settingsRepository.Get").
			Str("key", key).
			Msg("failed to scan settings row")
		return fmt.Errorf("failed to scan setting (key=%s): %w", key, scanErr)
	}

	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Get").
			Str("key", key).
			Msg("failed to decode settings value")
		return fmt.Errorf("failed to decode setting (key=%s): %w", key, err)
	}

	return nil
}

func (r *settingsRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteSetting, key); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Delete").
			Str("key", key).
			Msg("failed to delete settings value")
		return fmt.Errorf("failed to delete setting (key=%s): %w", key, err)
	}

	return nil
}
