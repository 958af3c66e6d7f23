package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/models"
)

func newTestQueueRepo(t *testing.T) (*queueRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &queueRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestEnqueue_Success(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	ctx := context.Background()
	item := models.SyncQueueItem{
		Collection: models.CollectionSales,
		Op:         models.OpCreate,
		Payload:    []byte(`{"id":"sale-1"}`),
	}

	mock.ExpectExec("INSERT INTO sync_queue").
		WithArgs(item.Collection, item.Op, string(item.Payload), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Enqueue(ctx, item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("expected queue id 7, got %d", id)
	}
}

func TestEnqueue_ExecError(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_queue").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Enqueue(context.Background(), models.SyncQueueItem{
		Collection: models.CollectionProducts,
		Op:         models.OpUpdate,
		Payload:    []byte(`{}`),
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestListPending_ReturnsFIFO(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "collection", "op", "payload", "synced", "last_error", "created_at"}).
		AddRow(1, "sales", "create", `{"id":"s1"}`, false, "", now).
		AddRow(2, "products", "update", `{"id":"p1"}`, false, "timeout", now)

	mock.ExpectQuery("SELECT (.+) FROM sync_queue").
		WillReturnRows(rows)

	items, err := repo.ListPending(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 pending items, got %d", len(items))
	}
	if items[0].ID != 1 || items[1].ID != 2 {
		t.Errorf("expected FIFO order [1 2], got [%d %d]", items[0].ID, items[1].ID)
	}
	if items[1].LastError != "timeout" {
		t.Errorf("expected recorded error to survive listing, got %q", items[1].LastError)
	}
	if string(items[0].Payload) != `{"id":"s1"}` {
		t.Errorf("unexpected payload: %s", items[0].Payload)
	}
}

func TestListPending_QueryError(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sync_queue").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.ListPending(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestMarkSynced_Success(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE sync_queue SET synced = 1").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkSynced(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMarkSynced_NotFound(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE sync_queue SET synced = 1").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkSynced(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMarkError_LeavesItemPending(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	// only last_error is touched: the synced flag must stay untouched so
	// the item is retried next pass
	mock.ExpectExec("UPDATE sync_queue SET last_error").
		WithArgs("connection refused", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkError(context.Background(), 4, "connection refused"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPurgeSynced_ReturnsPurgedCount(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	cutoff := time.Now().AddDate(0, 0, -7)

	mock.ExpectExec("DELETE FROM sync_queue").
		WillReturnResult(sqlmock.NewResult(0, 5))

	purged, err := repo.PurgeSynced(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purged != 5 {
		t.Errorf("expected 5 purged rows, got %d", purged)
	}
}
