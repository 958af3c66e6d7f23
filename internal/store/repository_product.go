package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/models"
)

type productRepository struct {
	*DB
	logger *logger.Logger
}

func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	return &productRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *productRepository) Save(ctx context.Context, products ...models.Product) error {
	log := logger.FromContext(ctx)

	for _, p := range products {
		_, err := r.DB.ExecContext(ctx, upsertProduct,
			p.ID,
			p.Name,
			p.Price,
			p.Cost,
			p.Stock,
			p.MinStock,
			p.CategoryID,
			p.Status,
			p.StoreID,
			p.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "productRepository.Save").
				Str("product_id", p.ID).
				Msg("failed to execute upsert for product")
			return fmt.Errorf("failed to save product (id=%s): %w", p.ID, err)
		}
	}

	return nil
}

func (r *productRepository) Get(ctx context.Context, id string) (models.Product, error) {
	log := logger.FromContext(ctx)

	var p models.Product
	row := r.DB.QueryRowContext(ctx, getSingleProduct, id)

	scanErr := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Cost,
		&p.Stock,
		&p.MinStock,
		&p.CategoryID,
		&p.Status,
		&p.StoreID,
		&p.UpdatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		log.Err(scanErr).
			Str("func", "productRepository.Get").
			Str("product_id", id).
			Msg("failed to scan product row")
		return models.Product{}, fmt.Errorf("failed to scan product row: %w", scanErr)
	}

	return p, nil
}

func (r *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.queryProducts(ctx, "productRepository.GetAll", getAllProducts)
}

func (r *productRepository) GetByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return r.queryProducts(ctx, "productRepository.GetByCategory", getProductsByCategory, categoryID)
}

func (r *productRepository) queryProducts(ctx context.Context, fn, query string, args ...any) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Msg("failed to execute query for products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var items []models.Product

	for rows.Next() {
		var p models.Product

		scanErr := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Cost,
			&p.Stock,
			&p.MinStock,
			&p.CategoryID,
			&p.Status,
			&p.StoreID,
			&p.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", fn).
				Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product row: %w", scanErr)
		}

		items = append(items, p)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", fn).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating product rows: %w", rowsErr)
	}

	return items, nil
}

func (r *productRepository) AdjustStock(ctx context.Context, id string, delta int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, adjustProductStock, delta, id)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.AdjustStock").
			Str("product_id", id).
			Int64("delta", delta).
			Msg("failed to execute stock adjustment")
		return fmt.Errorf("failed to adjust stock (id=%s): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.AdjustStock").
			Str("product_id", id).
			Msg("failed to get rows affected after stock adjustment")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "productRepository.AdjustStock").
			Str("product_id", id).
			Msg("no rows affected during stock adjustment: product not found")
		return fmt.Errorf("failed to adjust stock (id=%s): %w", id, ErrNotFound)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteProduct, id)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.Delete").
			Str("product_id", id).
			Msg("failed to execute delete for product")
		return fmt.Errorf("failed to delete product (id=%s): %w", id, err)
	}

	return nil
}

func (r *productRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, clearProducts)
	if err != nil {
		log.Err(err).
			Str("func", "productRepository.Clear").
			Msg("failed to clear products collection")
		return fmt.Errorf("failed to clear products: %w", err)
	}

	return nil
}
