// Package catalog caches the last fetched book listing locally so the CLI
// can still show something when the server is unreachable.
package catalog

import (
	"context"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

// Repository stores a snapshot of the remote listing.
type Repository interface {
	// ReplaceAll atomically swaps the cached listing for books.
	ReplaceAll(ctx context.Context, books []models.Book) error
	// GetAll returns the cached listing, possibly empty.
	GetAll(ctx context.Context) ([]models.Book, error)
}
