package store

import (
	"database/sql"

	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/migrations"
)

// DB wraps the shared *sql.DB handle all repositories operate on.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the local schema up to date.
func (db *DB) Migrate() error {
	return migrations.Run(db.DB)
}
