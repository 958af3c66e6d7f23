// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dariel Marte

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	upsertProduct = `
		INSERT INTO products (
			id,
			name,
			price,
			cost,
			stock,
			min_stock,
			category_id,
			status,
			store_id,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name        = excluded.name,
			price       = excluded.price,
			cost        = excluded.cost,
			stock       = excluded.stock,
			min_stock   = excluded.min_stock,
			category_id = excluded.category_id,
			status      = excluded.status,
			store_id    = excluded.store_id,
			updated_at  = excluded.updated_at;`

	getSingleProduct = `
		SELECT id, name, price, cost, stock, min_stock, category_id, status, store_id, updated_at
		FROM products
		WHERE id = $1;`

	getAllProducts = `
		SELECT id, name, price, cost, stock, min_stock, category_id, status, store_id, updated_at
		FROM products
		ORDER BY name;`

	getProductsByCategory = `
		SELECT id, name, price, cost, stock, min_stock, category_id, status, store_id, updated_at
		FROM products
		WHERE category_id = $1
		ORDER BY name;`

	adjustProductStock = `
		UPDATE products
		SET stock      = MAX(stock + $1, 0),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $2;`

	deleteProduct = `DELETE FROM products WHERE id = $1;`

	deleteCategory = `DELETE FROM categories WHERE id = $1;`

	deleteCustomer = `DELETE FROM customers WHERE id = $1;`
	clearProducts = `DELETE FROM products;`

	insertSale = `
		INSERT INTO sales (
			id,
			invoice_number,
			document_type,
			customer_id,
			subtotal,
			tax,
			total,
			payment_method,
			amount_paid,
			change,
			synced,
			store_id,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	insertSaleItem = `
		INSERT INTO sale_items (
			sale_id,
			product_id,
			description,
			quantity,
			unit_price,
			tax_rate,
			line_total
		) VALUES ($1, $2, $3, $4, $5, $6, $7);`

	getSingleSale = `
		SELECT id, invoice_number, document_type, customer_id, subtotal, tax, total,
		       payment_method, amount_paid, change, synced, store_id, created_at
		FROM sales
		WHERE id = $1;`

	getAllSales = `
		SELECT id, invoice_number, document_type, customer_id, subtotal, tax, total,
		       payment_method, amount_paid, change, synced, store_id, created_at
		FROM sales
		ORDER BY created_at;`

	getUnsyncedSales = `
		SELECT id, invoice_number, document_type, customer_id, subtotal, tax, total,
		       payment_method, amount_paid, change, synced, store_id, created_at
		FROM sales
		WHERE synced = 0
		ORDER BY created_at;`

	getSaleItems = `
		SELECT sale_id, product_id, description, quantity, unit_price, tax_rate, line_total
		FROM sale_items
		WHERE sale_id = $1;`

	markSaleSynced = `
		UPDATE sales
		SET synced         = 1,
		    invoice_number = $1
		WHERE id = $2;`

	upsertCategory = `
		INSERT INTO categories (id, name, store_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			name     = excluded.name,
			store_id = excluded.store_id;`

	getAllCategories = `SELECT id, name, store_id FROM categories ORDER BY name;`

	upsertCustomer = `
		INSERT INTO customers (id, name, phone, email, tax_id, store_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name     = excluded.name,
			phone    = excluded.phone,
			email    = excluded.email,
			tax_id   = excluded.tax_id,
			store_id = excluded.store_id;`

	getAllCustomers = `SELECT id, name, phone, email, tax_id, store_id FROM customers ORDER BY name;`

	upsertDocumentType = `
		INSERT INTO document_types (id, code, name, store_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			code     = excluded.code,
			name     = excluded.name,
			store_id = excluded.store_id;`

	getAllDocumentTypes = `SELECT id, code, name, store_id FROM document_types ORDER BY code;`

	enqueueItem = `
		INSERT INTO sync_queue (collection, op, payload, synced, last_error, created_at)
		VALUES ($1, $2, $3, 0, '', $4);`

	markQueueItemSynced = `UPDATE sync_queue SET synced = 1 WHERE id = $1;`

	markQueueItemError = `UPDATE sync_queue SET last_error = $1 WHERE id = $2;`

	putSetting = `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	getSetting = `SELECT value FROM settings WHERE key = $1;`

	deleteSetting = `DELETE FROM settings WHERE key = $1;`
)

// buildListPendingQuery produces the tolerant pending filter. Queue rows
// written by older exports stored synced as a boolean literal instead of an
// integer, so both representations must count as "not yet confirmed".
func buildListPendingQuery() (string, []any, error) {
	return sq.Select("id", "collection", "op", "payload", "synced", "last_error", "created_at").
		From("sync_queue").
		Where(sq.Or{
			sq.Eq{"synced": 0},
			sq.Eq{"synced": false},
			sq.Eq{"synced": "false"},
		}).
		OrderBy("id ASC").
		ToSql()
}

// buildPurgeSyncedQuery deletes confirmed queue items created before the
// retention cutoff, again tolerating both synced representations.
func buildPurgeSyncedQuery(olderThan time.Time) (string, []any, error) {
	return sq.Delete("sync_queue").
		Where(sq.Or{
			sq.Eq{"synced": 1},
			sq.Eq{"synced": true},
			sq.Eq{"synced": "true"},
		}).
		Where(sq.Lt{"created_at": olderThan}).
		ToSql()
}
