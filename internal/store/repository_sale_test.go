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

func newTestSaleRepo(t *testing.T) (*saleRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &saleRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testSale() models.Sale {
	return models.Sale{
		ID:            "sale-1",
		InvoiceNumber: "B02-00000001",
		DocumentType:  "B02",
		CustomerID:    "cust-1",
		Subtotal:      250,
		Tax:           45,
		Total:         295,
		PaymentMethod: "cash",
		AmountPaid:    300,
		Change:        5,
		StoreID:       "store-1",
		CreatedAt:     time.Now(),
		Items: []models.SaleItem{
			{SaleID: "sale-1", ProductID: "p-1", Description: "Cafe", Quantity: 2, UnitPrice: 100, TaxRate: 0.18, LineTotal: 200},
			{SaleID: "sale-1", Description: "Manual", Quantity: 1, UnitPrice: 50, LineTotal: 50},
		},
	}
}

func TestSaleSave_HeaderAndItemsInOneTransaction(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	s := testSale()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sales").
		WithArgs(s.ID, s.InvoiceNumber, s.DocumentType, s.CustomerID, s.Subtotal, s.Tax, s.Total,
			s.PaymentMethod, s.AmountPaid, s.Change, s.Synced, s.StoreID, s.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	for _, item := range s.Items {
		mock.ExpectExec("INSERT INTO sale_items").
			WithArgs(s.ID, item.ProductID, item.Description, item.Quantity, item.UnitPrice, item.TaxRate, item.LineTotal).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	if err := repo.Save(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaleSave_ItemFailureRollsBack(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	s := testSale()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sales").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO sale_items").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	if err := repo.Save(context.Background(), s); err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaleGet_LoadsItems(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	now := time.Now()
	header := sqlmock.
		NewRows([]string{"id", "invoice_number", "document_type", "customer_id", "subtotal", "tax", "total",
			"payment_method", "amount_paid", "change", "synced", "store_id", "created_at"}).
		AddRow("sale-1", "B02-00000001", "B02", "cust-1", 250.0, 45.0, 295.0, "cash", 300.0, 5.0, false, "store-1", now)
	items := sqlmock.
		NewRows([]string{"sale_id", "product_id", "description", "quantity", "unit_price", "tax_rate", "line_total"}).
		AddRow("sale-1", "p-1", "Cafe", 2, 100.0, 0.18, 200.0).
		AddRow("sale-1", "", "Manual", 1, 50.0, 0.0, 50.0)

	mock.ExpectQuery("SELECT (.+) FROM sales").WithArgs("sale-1").WillReturnRows(header)
	mock.ExpectQuery("SELECT (.+) FROM sale_items").WithArgs("sale-1").WillReturnRows(items)

	got, err := repo.Get(context.Background(), "sale-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.InvoiceNumber != "B02-00000001" || len(got.Items) != 2 {
		t.Errorf("unexpected sale scanned: %+v", got)
	}
}

func TestSaleGet_NotFound(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sales").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaleMarkSynced_UpdatesInvoiceNumber(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE sales").
		WithArgs("B02-00000042", "sale-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkSynced(context.Background(), "sale-1", "B02-00000042"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaleMarkSynced_UnknownSale(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE sales").
		WithArgs("B02-00000042", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkSynced(context.Background(), "ghost", "B02-00000042")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaleGetUnsynced_ScansRowsAndItems(t *testing.T) {
	repo, mock, db := newTestSaleRepo(t)
	defer db.Close()

	now := time.Now()
	headers := sqlmock.
		NewRows([]string{"id", "invoice_number", "document_type", "customer_id", "subtotal", "tax", "total",
			"payment_method", "amount_paid", "change", "synced", "store_id", "created_at"}).
		AddRow("sale-1", "B02-OFFLINE-1", "B02", "", 100.0, 0.0, 100.0, "cash", 100.0, 0.0, false, "store-1", now)
	items := sqlmock.
		NewRows([]string{"sale_id", "product_id", "description", "quantity", "unit_price", "tax_rate", "line_total"}).
		AddRow("sale-1", "p-1", "Cafe", 1, 100.0, 0.0, 100.0)

	mock.ExpectQuery("SELECT (.+) FROM sales").WillReturnRows(headers)
	mock.ExpectQuery("SELECT (.+) FROM sale_items").WithArgs("sale-1").WillReturnRows(items)

	sales, err := repo.GetUnsynced(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sales) != 1 || len(sales[0].Items) != 1 {
		t.Fatalf("unexpected unsynced sales: %+v", sales)
	}
}
