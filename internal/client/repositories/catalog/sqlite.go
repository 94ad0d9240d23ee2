package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
	"github.com/dmitrijs2005/bookswap/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// ReplaceAll swaps the snapshot inside one transaction so readers never see
// a half-replaced listing.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, books []models.Book) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM books_cache`); err != nil {
			return fmt.Errorf("failed to clear books cache: %w", err)
		}
		for _, b := range books {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO books_cache (id, title, author, condition, description, image_url, owner_id, owner_name)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, b.ID, b.Title, b.Author, b.Condition, b.Description, b.ImageURL, b.OwnerID, b.OwnerName)
			if err != nil {
				return fmt.Errorf("failed to cache book %s: %w", b.ID, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Book, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, author, condition, description, image_url, owner_id, owner_name
		FROM books_cache ORDER BY title
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to read books cache: %w", err)
	}
	defer rows.Close()

	var result []models.Book
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Condition, &b.Description, &b.ImageURL, &b.OwnerID, &b.OwnerName); err != nil {
			return nil, fmt.Errorf("failed to scan cached book: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books cache: %w", err)
	}
	return result, nil
}
