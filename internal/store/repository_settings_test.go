package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/models"
)

func newTestSettingsRepo(t *testing.T) (*settingsRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &settingsRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSettingsPut_EncodesJSON(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	counters := map[string]models.SequenceCounter{
		"B02": {Current: 3, Prefix: "B02-"},
	}

	mock.ExpectExec("INSERT INTO settings").
		WithArgs(SettingsKeySequences, `{"B02":{"current":3,"prefix":"B02-"}}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Put(context.Background(), SettingsKeySequences, counters); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSettingsGet_DecodesJSON(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).
		AddRow(`{"B02":{"current":7,"prefix":"B02-"}}`)

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs(SettingsKeySequences).
		WillReturnRows(rows)

	var counters map[string]models.SequenceCounter
	if err := repo.Get(context.Background(), SettingsKeySequences, &counters); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counters["B02"].Current != 7 {
		t.Errorf("expected current=7, got %d", counters["B02"].Current)
	}
}

func TestSettingsGet_MissingKey(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs("absent").
		WillReturnError(sql.ErrNoRows)

	var dest map[string]any
	err := repo.Get(context.Background(), "absent", &dest)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSettingsDelete_Success(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM settings").
		WithArgs(SettingsKeyProfile).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), SettingsKeyProfile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
