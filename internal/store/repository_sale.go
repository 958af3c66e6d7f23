package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/models"
)

type saleRepository struct {
	*DB
	logger *logger.Logger
}

func NewSaleRepository(db *DB, logger *logger.Logger) SaleRepository {
	return &saleRepository{
		DB:     db,
		logger: logger,
	}
}

// Save writes the sale header and all its line items in one transaction so a
// partially written sale can never become visible locally.
func (r *saleRepository) Save(ctx context.Context, sale models.Sale) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "saleRepository.Save").
			Str("sale_id", sale.ID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertSale,
		sale.ID,
		sale.InvoiceNumber,
		sale.DocumentType,
		sale.CustomerID,
		sale.Subtotal,
		sale.Tax,
		sale.Total,
		sale.PaymentMethod,
		sale.AmountPaid,
		sale.Change,
		sale.Synced,
		sale.StoreID,
		sale.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "saleRepository.Save").
			Str("sale_id", sale.ID).
			Msg("failed to insert sale header")
		return fmt.Errorf("failed to save sale (id=%s): %w", sale.ID, err)
	}

	for _, item := range sale.Items {
		_, err = tx.ExecContext(ctx, insertSaleItem,
			sale.ID,
			item.ProductID,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.TaxRate,
			item.LineTotal,
		)
		if err != nil {
			log.Err(err).
				Str("func", "saleRepository.Save").
				Str("sale_id", sale.ID).
				Str("product_id", item.ProductID).
				Msg("failed to insert sale item")
			return fmt.Errorf("failed to save sale item (sale_id=%s): %w", sale.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "saleRepository.Save").
			Str("sale_id", sale.ID).
			Msg("failed to commit sale transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *saleRepository) Get(ctx context.Context, id string) (models.Sale, error) {
	log := logger.FromContext(ctx)

	var s models.Sale
	row := r.DB.QueryRowContext(ctx, getSingleSale, id)

	scanErr := row.Scan(
		&s.ID,
		&s.InvoiceNumber,
		&s.DocumentType,
		&s.CustomerID,
		&s.Subtotal,
		&s.Tax,
		&s.Total,
		&s.PaymentMethod,
		&s.AmountPaid,
		&s.Change,
		&s.Synced,
		&s.StoreID,
		&s.CreatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Sale{}, fmt.Errorf("sale %s: %w", id, ErrNotFound)
		}
		log.Err(scanErr).
			Str("func", "saleRepository.Get").
			Str("sale_id", id).
			Msg("failed to scan sale row")
		return models.Sale{}, fmt.Errorf("failed to scan sale row: %w", scanErr)
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return models.Sale{}, err
	}
	s.Items = items

	return s, nil
}

func (r *saleRepository) GetAll(ctx context.Context) ([]models.Sale, error) {
	return r.querySales(ctx, "saleRepository.GetAll", getAllSales)
}

func (r *saleRepository) GetUnsynced(ctx context.Context) ([]models.Sale, error) {
	return r.querySales(ctx, "saleRepository.GetUnsynced", getUnsyncedSales)
}

func (r *saleRepository) querySales(ctx context.Context, fn, query string) ([]models.Sale, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Msg("failed to execute query for sales")
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var sales []models.Sale

	for rows.Next() {
		var s models.Sale

		scanErr := rows.Scan(
			&s.ID,
			&s.InvoiceNumber,
			&s.DocumentType,
			&s.CustomerID,
			&s.Subtotal,
			&s.Tax,
			&s.Total,
			&s.PaymentMethod,
			&s.AmountPaid,
			&s.Change,
			&s.Synced,
			&s.StoreID,
			&s.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", fn).
				Msg("failed to scan sale row")
			return nil, fmt.Errorf("failed to scan sale row: %w", scanErr)
		}

		sales = append(sales, s)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", fn).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating sale rows: %w", rowsErr)
	}

	for i := range sales {
		items, err := r.loadItems(ctx, sales[i].ID)
		if err != nil {
			return nil, err
		}
		sales[i].Items = items
	}

	return sales, nil
}

func (r *saleRepository) loadItems(ctx context.Context, saleID string) ([]models.SaleItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getSaleItems, saleID)
	if err != nil {
		log.Err(err).
			Str("func", "saleRepository.loadItems").
			Str("sale_id", saleID).
			Msg("failed to execute query for sale items")
		return nil, fmt.Errorf("failed to query sale items: %w", err)
	}
	defer rows.Close()

	var items []models.SaleItem

	for rows.Next() {
		var item models.SaleItem

		scanErr := rows.Scan(
			&item.SaleID,
			&item.ProductID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.TaxRate,
			&item.LineTotal,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "saleRepository.loadItems").
				Str("sale_id", saleID).
				Msg("failed to scan sale item row")
			return nil, fmt.Errorf("failed to scan sale item row: %w", scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "saleRepository.loadItems").
			Str("sale_id", saleID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating sale item rows: %w", rowsErr)
	}

	return items, nil
}

func (r *saleRepository) MarkSynced(ctx context.Context, id string, invoiceNumber string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, markSaleSynced, invoiceNumber, id)
	if err != nil {
		log.Err(err).
			Str("func", "saleRepository.MarkSynced").
			Str("sale_id", id).
			Msg("failed to mark sale synced")
		return fmt.Errorf("failed to mark sale synced (id=%s): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "saleRepository.MarkSynced").
			Str("sale_id", id).
			Msg("no rows affected: sale not found")
		return fmt.Errorf("failed to mark sale synced (id=%s): %w", id, ErrNotFound)
	}

	return nil
}
