package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmarte/puntoventa/internal/adapter"
	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/internal/store"
	"github.com/dmarte/puntoventa/internal/validators"
	"github.com/dmarte/puntoventa/models"
)

type catalogService struct {
	products  store.ProductRepository
	reference store.ReferenceRepository
	queue     store.QueueRepository
	remote    adapter.RemoteBackend
	conn      Connectivity
	valid     validators.Validator
	storeID   string
	logger    *logger.Logger
}

func NewCatalogService(
	storages store.Storages,
	remote adapter.RemoteBackend,
	conn Connectivity,
	storeID string,
	logger *logger.Logger,
) CatalogService {
	return &catalogService{
		products:  storages.Products,
		reference: storages.Reference,
		queue:     storages.Queue,
		remote:    remote,
		conn:      conn,
		valid:     validators.NewPOSValidator(),
		storeID:   storeID,
		logger:    logger,
	}
}

// SaveProduct upserts the product locally and mirrors the change to the
// backend, queueing it when the backend cannot be reached.
func (c *catalogService) SaveProduct(ctx context.Context, product models.Product) error {
	if err := c.valid.Validate(ctx, product); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}

	op := models.OpUpdate
	if product.ID == "" {
		product.ID = uuid.NewString()
		op = models.OpCreate
	} else if _, err := c.products.Get(ctx, product.ID); errors.Is(err, store.ErrNotFound) {
		op = models.OpCreate
	}
	if product.StoreID == "" {
		product.StoreID = c.storeID
	}
	product.UpdatedAt = time.Now().UTC()

	if err := c.products.Save(ctx, product); err != nil {
		return fmt.Errorf("save product locally: %w", err)
	}

	c.mirror(ctx, models.CollectionProducts, op, product, func() error {
		if op == models.OpCreate {
			return c.remote.CreateProduct(ctx, product)
		}
		return c.remote.UpdateProduct(ctx, product)
	})
	return nil
}

func (c *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := c.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product locally: %w", err)
	}

	c.mirror(ctx, models.CollectionProducts, models.OpDelete, models.Product{ID: id}, func() error {
		return c.remote.DeleteProduct(ctx, id)
	})
	return nil
}

func (c *catalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return c.products.GetAll(ctx)
}

func (c *catalogService) ListProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return c.products.GetByCategory(ctx, categoryID)
}

func (c *catalogService) SaveCustomer(ctx context.Context, customer models.Customer) error {
	if err := c.valid.Validate(ctx, customer); err != nil {
		return fmt.Errorf("invalid customer: %w", err)
	}

	op := models.OpUpdate
	if customer.ID == "" {
		customer.ID = uuid.NewString()
		op = models.OpCreate
	}
	if customer.StoreID == "" {
		customer.StoreID = c.storeID
	}

	if err := c.reference.SaveCustomers(ctx, customer); err != nil {
		return fmt.Errorf("save customer locally: %w", err)
	}

	c.mirror(ctx, models.CollectionCustomers, op, customer, func() error {
		if op == models.OpCreate {
			return c.remote.CreateCustomer(ctx, customer)
		}
		return c.remote.UpdateCustomer(ctx, customer)
	})
	return nil
}

func (c *catalogService) DeleteCustomer(ctx context.Context, id string) error {
	if err := c.reference.DeleteCustomer(ctx, id); err != nil {
		return fmt.Errorf("delete customer locally: %w", err)
	}

	c.mirror(ctx, models.CollectionCustomers, models.OpDelete, models.Customer{ID: id}, func() error {
		return c.remote.DeleteCustomer(ctx, id)
	})
	return nil
}

func (c *catalogService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return c.reference.GetAllCustomers(ctx)
}

func (c *catalogService) SaveCategory(ctx context.Context, category models.Category) error {
	if err := c.valid.Validate(ctx, category); err != nil {
		return fmt.Errorf("invalid category: %w", err)
	}

	op := models.OpUpdate
	if category.ID == "" {
		category.ID = uuid.NewString()
		op = models.OpCreate
	}
	if category.StoreID == "" {
		category.StoreID = c.storeID
	}

	if err := c.reference.SaveCategories(ctx, category); err != nil {
		return fmt.Errorf("save category locally: %w", err)
	}

	c.mirror(ctx, models.CollectionCategories, op, category, func() error {
		if op == models.OpCreate {
			return c.remote.CreateCategory(ctx, category)
		}
		return c.remote.UpdateCategory(ctx, category)
	})
	return nil
}

func (c *catalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := c.reference.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("delete category locally: %w", err)
	}

	c.mirror(ctx, models.CollectionCategories, models.OpDelete, models.Category{ID: id}, func() error {
		return c.remote.DeleteCategory(ctx, id)
	})
	return nil
}

func (c *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return c.reference.GetAllCategories(ctx)
}

func (c *catalogService) ListDocumentTypes(ctx context.Context) ([]models.DocumentType, error) {
	return c.reference.GetAllDocumentTypes(ctx)
}

// mirror tries the remote mutation when online and falls back to enqueueing
// the snapshot. The local write already happened, so failures here never
// bubble up to the caller.
func (c *catalogService) mirror(ctx context.Context, collection, op string, entity any, remoteCall func() error) {
	log := c.logger.With().
		Str("func", "catalogService.mirror").
		Str("collection", collection).
		Str("op", op).
		Logger()

	if c.conn.IsOnline() {
		err := remoteCall()
		if err == nil {
			return
		}
		log.Warn().Err(err).Msg("remote mutation failed, queueing")
		if errors.Is(err, adapter.ErrRemoteUnavailable) {
			c.conn.SetOnline(false)
		}
	}

	payload, err := json.Marshal(entity)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal queue payload")
		return
	}
	if _, err = c.queue.Enqueue(ctx, models.SyncQueueItem{
		Collection: collection,
		Op:         op,
		Payload:    payload,
	}); err != nil {
		log.Error().Err(err).Msg("failed to enqueue mutation")
	}
}
