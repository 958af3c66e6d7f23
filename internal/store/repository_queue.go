package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/models"
)

type queueRepository struct {
	*DB
	logger *logger.Logger
}

func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	return &queueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *queueRepository) Enqueue(ctx context.Context, item models.SyncQueueItem) (int64, error) {
	log := logger.FromContext(ctx)

	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := r.DB.ExecContext(ctx, enqueueItem,
		item.Collection,
		item.Op,
		string(item.Payload),
		createdAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Enqueue").
			Str("collection", item.Collection).
			Str("op", item.Op).
			Msg("failed to enqueue sync item")
		return 0, fmt.Errorf("failed to enqueue %s/%s: %w", item.Collection, item.Op, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Enqueue").
			Msg("failed to get inserted queue item id")
		return 0, fmt.Errorf("failed to get queue item id: %w", err)
	}

	log.Debug().
		Str("func", "queueRepository.Enqueue").
		Int64("queue_id", id).
		Str("collection", item.Collection).
		Str("op", item.Op).
		Msg("queued offline mutation")

	return id, nil
}

func (r *queueRepository) ListPending(ctx context.Context) ([]models.SyncQueueItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPendingQuery()
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.ListPending").
			Msg("failed to build pending query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.ListPending").
			Msg("failed to execute query for pending items")
		return nil, fmt.Errorf("failed to query pending items: %w", err)
	}
	defer rows.Close()

	var items []models.SyncQueueItem

	for rows.Next() {
		var (
			item    models.SyncQueueItem
			payload string
		)

		scanErr := rows.Scan(
			&item.ID,
			&item.Collection,
			&item.Op,
			&payload,
			&item.Synced,
			&item.LastError,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "queueRepository.ListPending").
				Msg("failed to scan queue item row")
			return nil, fmt.Errorf("failed to scan queue item row: %w", scanErr)
		}

		item.Payload = []byte(payload)
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "queueRepository.ListPending").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating queue rows: %w", rowsErr)
	}

	return items, nil
}

func (r *queueRepository) MarkSynced(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, markQueueItemSynced, id)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.MarkSynced").
			Int64("queue_id", id).
			Msg("failed to mark queue item synced")
		return fmt.Errorf("failed to mark queue item synced (id=%d): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%d): %w", id, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("failed to mark queue item synced (id=%d): %w", id, ErrNotFound)
	}

	return nil
}

func (r *queueRepository) MarkError(ctx context.Context, id int64, message string) error {
	log := logger.FromContext(ctx)

	// the item stays pending: only last_error changes, retried next pass
	_, err := r.DB.ExecContext(ctx, markQueueItemError, message, id)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.MarkError").
			Int64("queue_id", id).
			Msg("failed to record queue item error")
		return fmt.Errorf("failed to record queue item error (id=%d): %w", id, err)
	}

	return nil
}

func (r *queueRepository) PurgeSynced(ctx context.Context, olderThan time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPurgeSyncedQuery(olderThan)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.PurgeSynced").
			Msg("failed to build purge query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.PurgeSynced").
			Msg("failed to purge synced queue items")
		return 0, fmt.Errorf("failed to purge synced queue items: %w", err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get purged row count: %w", err)
	}

	if purged > 0 {
		log.Debug().
			Str("func", "queueRepository.PurgeSynced").
			Int64("purged", purged).
			Time("older_than", olderThan).
			Msg("purged confirmed queue items")
	}

	return purged, nil
}
