package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/dmarte/puntoventa/internal/config"
	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/models"
)

type httpRemoteBackend struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPRemoteBackend builds the resty-based [RemoteBackend] from the
// remote transport configuration. The request timeout lives here; the sync
// core does not manage its own deadlines.
func NewHTTPRemoteBackend(cfg config.POSRemote, log *logger.Logger) (RemoteBackend, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: empty base url", ErrBadRequest)
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	if cfg.APIKey != "" {
		cli.SetHeader("apikey", cfg.APIKey)
	}

	return &httpRemoteBackend{client: cli, logger: log}, nil
}

func (h *httpRemoteBackend) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteBackend) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteBackend) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("%w: ping: %w", ErrRemoteUnavailable, err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteBackend) ResolveProfile(ctx context.Context) (models.StoreProfile, error) {
	resp, err := h.authedRequest(ctx).Get("/auth/profile")
	if err != nil {
		return models.StoreProfile{}, fmt.Errorf("%w: resolve profile: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoreProfile{}, err
	}

	var profile models.StoreProfile
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.StoreProfile{}, fmt.Errorf("decode profile response: %w", err)
	}

	// some deployments omit store_id in the profile body and only carry it
	// as a token claim
	if profile.StoreID == "" {
		if storeID, claimErr := storeIDFromToken(h.Token()); claimErr == nil {
			profile.StoreID = storeID
		}
	}
	if profile.AccessToken == "" {
		profile.AccessToken = h.Token()
	}

	return profile, nil
}

func (h *httpRemoteBackend) FetchProducts(ctx context.Context, storeID string) ([]models.Product, error) {
	var items []models.Product
	if err := h.fetch(ctx, "/rest/products", storeID, &items); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return items, nil
}

func (h *httpRemoteBackend) FetchCategories(ctx context.Context, storeID string) ([]models.Category, error) {
	var items []models.Category
	if err := h.fetch(ctx, "/rest/categories", storeID, &items); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	return items, nil
}

func (h *httpRemoteBackend) FetchCustomers(ctx context.Context, storeID string) ([]models.Customer, error) {
	var items []models.Customer
	if err := h.fetch(ctx, "/rest/customers", storeID, &items); err != nil {
		return nil, fmt.Errorf("fetch customers: %w", err)
	}
	return items, nil
}

func (h *httpRemoteBackend) FetchDocumentTypes(ctx context.Context, storeID string) ([]models.DocumentType, error) {
	var items []models.DocumentType
	if err := h.fetch(ctx, "/rest/document_types", storeID, &items); err != nil {
		return nil, fmt.Errorf("fetch document types: %w", err)
	}
	return items, nil
}

func (h *httpRemoteBackend) FetchSequences(ctx context.Context, storeID string) ([]models.RemoteSequence, error) {
	var items []models.RemoteSequence
	if err := h.fetch(ctx, "/rest/invoice_sequences", storeID, &items); err != nil {
		return nil, fmt.Errorf("fetch invoice sequences: %w", err)
	}
	return items, nil
}

func (h *httpRemoteBackend) fetch(ctx context.Context, path, storeID string, dest any) error {
	req := h.authedRequest(ctx)
	if storeID != "" {
		req.SetQueryParam("store_id", storeID)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (h *httpRemoteBackend) GetNextInvoiceNumber(ctx context.Context, typeCode string) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"type_code": typeCode}).
		Post("/rpc/get_next_invoice_number")
	if err != nil {
		return "", fmt.Errorf("%w: issue invoice number: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	// the RPC returns either a bare JSON string or an object wrapping it
	var number string
	if err = json.Unmarshal(resp.Body(), &number); err == nil && number != "" {
		return number, nil
	}

	var wrapped struct {
		InvoiceNumber string `json:"invoice_number"`
	}
	if err = json.Unmarshal(resp.Body(), &wrapped); err != nil || wrapped.InvoiceNumber == "" {
		return "", fmt.Errorf("decode invoice number response: %s", resp.Body())
	}
	return wrapped.InvoiceNumber, nil
}

func (h *httpRemoteBackend) InsertSale(ctx context.Context, sale models.Sale) error {
	// items travel in their own bulk insert; strip them from the header row
	header := sale
	header.Items = nil

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(header).
		Post("/rest/sales")
	if err != nil {
		return fmt.Errorf("%w: insert sale: %w", ErrRemoteUnavailable, err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteBackend) InsertSaleItems(ctx context.Context, items []models.SaleItem) error {
	if len(items) == 0 {
		return nil
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(items).
		Post("/rest/sale_items")
	if err != nil {
		return fmt.Errorf("%w: insert sale items: %w", ErrRemoteUnavailable, err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteBackend) DecrementStock(ctx context.Context, productID string, quantity int64) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"product_id": productID, "quantity": quantity}).
		Post("/rpc/decrement_stock")
	if err != nil {
		return fmt.Errorf("%w: decrement stock: %w", ErrRemoteUnavailable, err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteBackend) CreateProduct(ctx context.Context, product models.Product) error {
	return h.create(ctx, "/rest/products", product, "create product")
}

func (h *httpRemoteBackend) UpdateProduct(ctx context.Context, product models.Product) error {
	return h.update(ctx, "/rest/products/"+product.ID, product, "update product")
}

func (h *httpRemoteBackend) DeleteProduct(ctx context.Context, id string) error {
	return h.delete(ctx, "/rest/products/"+id, "delete product")
}

func (h *httpRemoteBackend) CreateCustomer(ctx context.Context, customer models.Customer) error {
	return h.create(ctx, "/rest/customers", customer, "create customer")
}

func (h *httpRemoteBackend) UpdateCustomer(ctx context.Context, customer models.Customer) error {
	return h.update(ctx, "/rest/customers/"+customer.ID, customer, "update customer")
}

func (h *httpRemoteBackend) DeleteCustomer(ctx context.Context, id string) error {
	return h.delete(ctx, "/rest/customers/"+id, "delete customer")
}

func (h *httpRemoteBackend) CreateCategory(ctx context.Context, category models.Category) error {
	return h.create(ctx, "/rest/categories", category, "create category")
}

func (h *httpRemoteBackend) UpdateCategory(ctx context.Context, category models.Category) error {
	return h.update(ctx, "/rest/categories/"+category.ID, category, "update category")
}

func (h *httpRemoteBackend) DeleteCategory(ctx context.Context, id string) error {
	return h.delete(ctx, "/rest/categories/"+id, "delete category")
}

func (h *httpRemoteBackend) create(ctx context.Context, path string, body any, op string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRemoteUnavailable, op, err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteBackend) update(ctx context.Context, path string, body any, op string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Patch(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRemoteUnavailable, op, err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteBackend) delete(ctx context.Context, path string, op string) error {
	resp, err := h.authedRequest(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRemoteUnavailable, op, err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteBackend) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
