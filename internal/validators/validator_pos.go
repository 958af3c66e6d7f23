package validators

import (
	"context"
	"fmt"

	"github.com/dmarte/puntoventa/models"
)

const (
	FieldName          = "name"
	FieldPrice         = "price"
	FieldStock         = "stock"
	FieldDocumentType  = "document_type"
	FieldItems         = "items"
	FieldPaymentMethod = "payment_method"
	FieldPayment       = "payment"
)

// POSValidator checks sale drafts and catalog entities before they reach the
// local store. It validates shape and business rules, not identity: IDs are
// assigned by the services.
type POSValidator struct {
}

func NewPOSValidator() Validator {
	return &POSValidator{}
}

func (v *POSValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Sale:
		return v.validateSale(ctx, value, fields...)
	case *models.Sale:
		return v.validateSale(ctx, *value, fields...)

	case models.Product:
		return v.validateProduct(ctx, value, fields...)
	case *models.Product:
		return v.validateProduct(ctx, *value, fields...)

	case models.Customer:
		return v.validateCustomer(ctx, value, fields...)
	case *models.Customer:
		return v.validateCustomer(ctx, *value, fields...)

	case models.Category:
		return v.validateCategory(ctx, value, fields...)
	case *models.Category:
		return v.validateCategory(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *POSValidator) validateSale(_ context.Context, sale models.Sale, fields ...string) error {
	for _, field := range selectedFields(fields, FieldDocumentType, FieldItems, FieldPaymentMethod, FieldPayment) {
		switch field {
		case FieldDocumentType:
			if sale.DocumentType == "" {
				return ErrEmptyDocumentType
			}
		case FieldItems:
			if len(sale.Items) == 0 {
				return ErrNoLineItems
			}
			for _, item := range sale.Items {
				if item.Quantity <= 0 {
					return fmt.Errorf("%w: %q", ErrInvalidQuantity, item.Description)
				}
				if item.UnitPrice < 0 {
					return fmt.Errorf("%w: %q", ErrNegativeUnitPrice, item.Description)
				}
			}
		case FieldPaymentMethod:
			if sale.PaymentMethod == "" {
				return ErrEmptyPaymentMethod
			}
		case FieldPayment:
			if sale.Total > 0 && sale.AmountPaid < sale.Total {
				return ErrInsufficientPayment
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *POSValidator) validateProduct(_ context.Context, product models.Product, fields ...string) error {
	for _, field := range selectedFields(fields, FieldName, FieldPrice, FieldStock) {
		switch field {
		case FieldName:
			if product.Name == "" {
				return ErrEmptyName
			}
		case FieldPrice:
			if product.Price < 0 {
				return ErrNegativePrice
			}
		case FieldStock:
			if product.Stock < 0 {
				return ErrNegativeStock
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *POSValidator) validateCustomer(_ context.Context, customer models.Customer, fields ...string) error {
	for _, field := range selectedFields(fields, FieldName) {
		switch field {
		case FieldName:
			if customer.Name == "" {
				return ErrEmptyName
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *POSValidator) validateCategory(_ context.Context, category models.Category, fields ...string) error {
	for _, field := range selectedFields(fields, FieldName) {
		switch field {
		case FieldName:
			if category.Name == "" {
				return ErrEmptyName
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

// selectedFields returns the requested fields, or every known field when the
// caller named none.
func selectedFields(requested []string, all ...string) []string {
	if len(requested) == 0 {
		return all
	}
	return requested
}
