// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dariel Marte

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarte/puntoventa/internal/config"
	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/models"
)

func newTestBackend(t *testing.T, serverURL string) *httpRemoteBackend {
	t.Helper()
	cfg := config.POSRemote{
		BaseURL:        serverURL,
		APIKey:         "test-api-key",
		RequestTimeout: 5 * time.Second,
	}

	b, err := NewHTTPRemoteBackend(cfg, logger.Nop())
	require.NoError(t, err)
	return b.(*httpRemoteBackend)
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// ── Ping ────────────────────────────────────────────────────────────────────

func TestPing_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/health", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("apikey"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	require.NoError(t, b.Ping(context.Background()))
}

func TestPing_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	b := newTestBackend(t, srv.URL)
	err := b.Ping(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

// ── ResolveProfile ──────────────────────────────────────────────────────────

func TestResolveProfile_Success(t *testing.T) {
	want := models.StoreProfile{StoreID: "store-7", UserID: "user-1"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/profile", r.URL.Path)
		assert.Equal(t, "Bearer some-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	b.SetToken("some-token")
	got, err := b.ResolveProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want.StoreID, got.StoreID)
	assert.Equal(t, "some-token", got.AccessToken)
}

func TestResolveProfile_StoreIDFromTokenClaim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.StoreProfile{UserID: "user-1"})
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	b.SetToken(signedToken(t, jwt.MapClaims{"store_id": "store-9"}))
	got, err := b.ResolveProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "store-9", got.StoreID)
}

func TestResolveProfile_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid token"))
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	_, err := b.ResolveProfile(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Fetch* ──────────────────────────────────────────────────────────────────

func TestFetchProducts_Success(t *testing.T) {
	want := []models.Product{
		{ID: "p-1", Name: "Cafe molido", Price: 250, Stock: 12, StoreID: "store-7"},
		{ID: "p-2", Name: "Azucar crema", Price: 65, Stock: 40, StoreID: "store-7"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/products", r.URL.Path)
		assert.Equal(t, "store-7", r.URL.Query().Get("store_id"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	got, err := b.FetchProducts(context.Background(), "store-7")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, want[0].Name, got[0].Name)
	assert.Equal(t, want[1].Stock, got[1].Stock)
}

func TestFetchSequences_Success(t *testing.T) {
	want := []models.RemoteSequence{
		{TypeID: "dt-1", Code: "B02", Current: 41},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/invoice_sequences", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	got, err := b.FetchSequences(context.Background(), "store-7")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(41), got[0].Current)
}

func TestFetchProducts_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	b := newTestBackend(t, srv.URL)
	_, err := b.FetchProducts(context.Background(), "store-7")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

// ── GetNextInvoiceNumber ────────────────────────────────────────────────────

func TestGetNextInvoiceNumber_BareString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rpc/get_next_invoice_number", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "B02", body["type_code"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`"B02-00000042"`))
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	got, err := b.GetNextInvoiceNumber(context.Background(), "B02")

	require.NoError(t, err)
	assert.Equal(t, "B02-00000042", got)
}

func TestGetNextInvoiceNumber_WrappedObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"invoice_number":"B01-00000007"}`))
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	got, err := b.GetNextInvoiceNumber(context.Background(), "B01")

	require.NoError(t, err)
	assert.Equal(t, "B01-00000007", got)
}

func TestGetNextInvoiceNumber_DuplicateKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`duplicate key value violates unique constraint "sales_invoice_number_key"`))
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	_, err := b.GetNextInvoiceNumber(context.Background(), "B02")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

// ── InsertSale ──────────────────────────────────────────────────────────────

func TestInsertSale_StripsItemsFromHeader(t *testing.T) {
	sale := models.Sale{
		ID:            "sale-1",
		InvoiceNumber: "B02-00000001",
		StoreID:       "store-7",
		Items:         []models.SaleItem{{SaleID: "sale-1", Quantity: 2}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/sales", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "B02-00000001", body["invoice_number"])
		assert.NotContains(t, body, "items")

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	require.NoError(t, b.InsertSale(context.Background(), sale))
}

func TestInsertSaleItems_EmptyIsNoop(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	require.NoError(t, b.InsertSaleItems(context.Background(), nil))
	assert.False(t, called)
}

// ── DecrementStock ──────────────────────────────────────────────────────────

func TestDecrementStock_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rpc/decrement_stock", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "p-1", body["product_id"])
		assert.Equal(t, float64(3), body["quantity"])

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	require.NoError(t, b.DecrementStock(context.Background(), "p-1", 3))
}

// ── Catalog mutations ───────────────────────────────────────────────────────

func TestUpdateProduct_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/rest/products/p-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	require.NoError(t, b.UpdateProduct(context.Background(), models.Product{ID: "p-1", Name: "Cafe"}))
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no rows"))
	}))
	defer srv.Close()

	b := newTestBackend(t, srv.URL)
	err := b.DeleteCustomer(context.Background(), "c-404")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── storeIDFromToken ────────────────────────────────────────────────────────

func TestStoreIDFromToken(t *testing.T) {
	tests := []struct {
		name    string
		claims  jwt.MapClaims
		want    string
		wantErr bool
	}{
		{name: "top level claim", claims: jwt.MapClaims{"store_id": "store-1"}, want: "store-1"},
		{name: "app metadata claim", claims: jwt.MapClaims{"app_metadata": map[string]any{"store_id": "store-2"}}, want: "store-2"},
		{name: "no claim", claims: jwt.MapClaims{"sub": "user-1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := storeIDFromToken(signedToken(t, tt.claims))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStoreIDFromToken_Empty(t *testing.T) {
	_, err := storeIDFromToken("")
	require.Error(t, err)
}
