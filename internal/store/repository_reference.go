package store

import (
	"context"
	"fmt"

	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/models"
)

// referenceRepository holds the pulled read-through caches. Rows are
// overwritten wholesale during the pull phase; the terminal never authors
// categories, customers or document types on its own except through the
// pending queue.
type referenceRepository struct {
	*DB
	logger *logger.Logger
}

func NewReferenceRepository(db *DB, logger *logger.Logger) ReferenceRepository {
	return &referenceRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *referenceRepository) SaveCategories(ctx context.Context, categories ...models.Category) error {
	log := logger.FromContext(ctx)

	for _, c := range categories {
		if _, err := r.DB.ExecContext(ctx, upsertCategory, c.ID, c.Name, c.StoreID); err != nil {
			log.Err(err).
				Str("func", "referenceRepository.SaveCategories").
				Str("category_id", c.ID).
				Msg("failed to execute upsert for category")
			return fmt.Errorf("failed to save category (id=%s): %w", c.ID, err)
		}
	}

	return nil
}

func (r *referenceRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllCategories)
	if err != nil {
		log.Err(err).
			Str("func", "referenceRepository.GetAllCategories").
			Msg("failed to execute query for categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category

	for rows.Next() {
		var c models.Category
		if scanErr := rows.Scan(&c.ID, &c.Name, &c.StoreID); scanErr != nil {
			log.Err(scanErr).
				Str("func", "referenceRepository.GetAllCategories").
				Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category row: %w", scanErr)
		}
		items = append(items, c)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rowsErr)
	}

	return items, nil
}

func (r *referenceRepository) DeleteCategory(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteCategory, id); err != nil {
		log.Err(err).
			Str("func", "referenceRepository.DeleteCategory").
			Str("category_id", id).
			Msg("failed to execute delete for category")
		return fmt.Errorf("failed to delete category (id=%s): %w", id, err)
	}

	return nil
}

func (r *referenceRepository) SaveCustomers(ctx context.Context, customers ...models.Customer) error {
	log := logger.FromContext(ctx)

	for _, c := range customers {
		_, err := r.DB.ExecContext(ctx, upsertCustomer, c.ID, c.Name, c.Phone, c.Email, c.TaxID, c.StoreID)
		if err != nil {
			log.Err(err).
				Str("func", "referenceRepository.SaveCustomers").
				Str("customer_id", c.ID).
				Msg("failed to execute upsert for customer")
			return fmt.Errorf("failed to save customer (id=%s): %w", c.ID, err)
		}
	}

	return nil
}

func (r *referenceRepository) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllCustomers)
	if err != nil {
		log.Err(err).
			Str("func", "referenceRepository.GetAllCustomers").
			Msg("failed to execute query for customers")
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var items []models.Customer

	for rows.Next() {
		var c models.Customer
		if scanErr := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.TaxID, &c.StoreID); scanErr != nil {
			log.Err(scanErr).
				Str("func", "referenceRepository.GetAllCustomers").
				Msg("failed to scan customer row")
			return nil, fmt.Errorf("failed to scan customer row: %w", scanErr)
		}
		items = append(items, c)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", rowsErr)
	}

	return items, nil
}

func (r *referenceRepository) DeleteCustomer(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteCustomer, id); err != nil {
		log.Err(err).
			Str("func", "referenceRepository.DeleteCustomer").
			Str("customer_id", id).
			Msg("failed to execute delete for customer")
		return fmt.Errorf("failed to delete customer (id=%s): %w", id, err)
	}

	return nil
}

func (r *referenceRepository) SaveDocumentTypes(ctx context.Context, types ...models.DocumentType) error {
	log := logger.FromContext(ctx)

	for _, dt := range types {
		_, err := r.DB.ExecContext(ctx, upsertDocumentType, dt.ID, dt.Code, dt.Name, dt.StoreID)
		if err != nil {
			log.Err(err).
				Str("func", "referenceRepository.SaveDocumentTypes").
				Str("type_id", dt.ID).
				Msg("failed to execute upsert for document type")
			return fmt.Errorf("failed to save document type (id=%s): %w", dt.ID, err)
		}
	}

	return nil
}

func (r *referenceRepository) GetAllDocumentTypes(ctx context.Context) ([]models.DocumentType, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllDocumentTypes)
	if err != nil {
		log.Err(err).
			Str("func", "referenceRepository.GetAllDocumentTypes").
			Msg("failed to execute query for document types")
		return nil, fmt.Errorf("failed to query document types: %w", err)
	}
	defer rows.Close()

	var items []models.DocumentType

	for rows.Next() {
		var dt models.DocumentType
		if scanErr := rows.Scan(&dt.ID, &dt.Code, &dt.Name, &dt.StoreID); scanErr != nil {
			log.Err(scanErr).
				Str("func", "referenceRepository.GetAllDocumentTypes").
				Msg("failed to scan document type row")
			return nil, fmt.Errorf("failed to scan document type row: %w", scanErr)
		}
		items = append(items, dt)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating document type rows: %w", rowsErr)
	}

	return items, nil
}
