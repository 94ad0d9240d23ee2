// Package storage opens the local sqlite database and bundles the
// repositories built on top of it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/bookswap/internal/client/migrations"
	"github.com/dmitrijs2005/bookswap/internal/client/repositories/catalog"
	"github.com/dmitrijs2005/bookswap/internal/client/repositories/credentials"
	"github.com/pressly/goose/v3"
)

// Repositories is the bundle of local stores handed to the application.
type Repositories struct {
	Credentials credentials.Repository
	Catalog     catalog.Repository

	db *sql.DB
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error {
	return r.db.Close()
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (or creates) the sqlite database at dsn, migrates it,
// and returns the repository bundle.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Credentials: credentials.NewSQLiteRepository(db),
		Catalog:     catalog.NewSQLiteRepository(db),
		db:          db,
	}, nil
}
