// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dariel Marte

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarte/puntoventa/models"
)

func validSale() models.Sale {
	return models.Sale{
		DocumentType:  "B02",
		PaymentMethod: "cash",
		Total:         250,
		AmountPaid:    300,
		Items: []models.SaleItem{
			{ProductID: "p-1", Description: "Cafe molido", Quantity: 2, UnitPrice: 100},
			{Description: "Linea manual", Quantity: 1, UnitPrice: 50},
		},
	}
}

func validProduct() models.Product {
	return models.Product{ID: "p-1", Name: "Cafe molido", Price: 250, Stock: 10}
}

func TestNewPOSValidator(t *testing.T) {
	v := NewPOSValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewPOSValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("sale value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validSale()))
	})

	t.Run("sale pointer", func(t *testing.T) {
		s := validSale()
		require.NoError(t, v.Validate(ctx, &s))
	})

	t.Run("product value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validProduct()))
	})

	t.Run("product pointer", func(t *testing.T) {
		p := validProduct()
		require.NoError(t, v.Validate(ctx, &p))
	})

	t.Run("customer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.Customer{Name: "Juana Perez"}))
	})

	t.Run("category", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.Category{Name: "Bebidas"}))
	})
}

func TestValidateSale(t *testing.T) {
	v := NewPOSValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Sale)
		fields  []string
		wantErr error
	}{
		{
			name:    "missing document type",
			mutate:  func(s *models.Sale) { s.DocumentType = "" },
			wantErr: ErrEmptyDocumentType,
		},
		{
			name:    "no line items",
			mutate:  func(s *models.Sale) { s.Items = nil },
			wantErr: ErrNoLineItems,
		},
		{
			name:    "zero quantity",
			mutate:  func(s *models.Sale) { s.Items[0].Quantity = 0 },
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "negative quantity",
			mutate:  func(s *models.Sale) { s.Items[1].Quantity = -1 },
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "negative unit price",
			mutate:  func(s *models.Sale) { s.Items[0].UnitPrice = -10 },
			wantErr: ErrNegativeUnitPrice,
		},
		{
			name:    "missing payment method",
			mutate:  func(s *models.Sale) { s.PaymentMethod = "" },
			wantErr: ErrEmptyPaymentMethod,
		},
		{
			name:    "underpaid",
			mutate:  func(s *models.Sale) { s.AmountPaid = 100 },
			wantErr: ErrInsufficientPayment,
		},
		{
			name:    "underpaid ignored when payment not requested",
			mutate:  func(s *models.Sale) { s.AmountPaid = 100 },
			fields:  []string{FieldDocumentType, FieldItems, FieldPaymentMethod},
			wantErr: nil,
		},
		{
			name:    "unknown field",
			mutate:  func(s *models.Sale) {},
			fields:  []string{"discount"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := validSale()
			tt.mutate(&sale)

			err := v.Validate(ctx, sale, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateProduct(t *testing.T) {
	v := NewPOSValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Product)
		wantErr error
	}{
		{
			name:    "missing name",
			mutate:  func(p *models.Product) { p.Name = "" },
			wantErr: ErrEmptyName,
		},
		{
			name:    "negative price",
			mutate:  func(p *models.Product) { p.Price = -1 },
			wantErr: ErrNegativePrice,
		},
		{
			name:    "negative stock",
			mutate:  func(p *models.Product) { p.Stock = -5 },
			wantErr: ErrNegativeStock,
		},
		{
			name:    "zero price is allowed",
			mutate:  func(p *models.Product) { p.Price = 0 },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := validProduct()
			tt.mutate(&product)

			err := v.Validate(ctx, product)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateReference(t *testing.T) {
	v := NewPOSValidator()
	ctx := context.Background()

	t.Run("customer without name", func(t *testing.T) {
		err := v.Validate(ctx, models.Customer{})
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("category without name", func(t *testing.T) {
		err := v.Validate(ctx, models.Category{})
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("single field scoping", func(t *testing.T) {
		err := v.Validate(ctx, models.Customer{Name: "Juana"}, FieldName)
		require.NoError(t, err)
	})
}
