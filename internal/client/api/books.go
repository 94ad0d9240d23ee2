package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

// BookParams carries the fields of a book listing for create/update.
// Image is optional; when present it is streamed into the multipart body
// under the "image" field with ImageFilename as the part's file name.
type BookParams struct {
	Title         string
	Author        string
	Condition     string
	Description   string
	Image         io.Reader
	ImageFilename string
}

// ListBooks returns all listings.
func (c *Client) ListBooks(ctx context.Context) ([]models.Book, error) {
	var out []models.Book
	if err := c.doJSON(ctx, http.MethodGet, "/books", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBook fetches one listing by id.
func (c *Client) GetBook(ctx context.Context, id string) (*models.Book, error) {
	var out models.Book
	if err := c.doJSON(ctx, http.MethodGet, "/books/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchBooks runs a filtered search. Empty parameters are omitted from
// the query string.
func (c *Client) SearchBooks(ctx context.Context, title, condition string) ([]models.Book, error) {
	q := url.Values{}
	if title != "" {
		q.Set("title", title)
	}
	if condition != "" {
		q.Set("condition", condition)
	}
	var out []models.Book
	if err := c.do(ctx, http.MethodGet, "/books/search", q, nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBook creates a listing. The payload is multipart form data because
// it may carry an image.
func (c *Client) CreateBook(ctx context.Context, p BookParams) (*models.Book, error) {
	body, contentType, err := encodeBookForm(p)
	if err != nil {
		return nil, err
	}
	var out models.Book
	if err := c.do(ctx, http.MethodPost, "/books", nil, body, contentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBook updates a listing, same encoding as CreateBook.
func (c *Client) UpdateBook(ctx context.Context, id string, p BookParams) (*models.Book, error) {
	body, contentType, err := encodeBookForm(p)
	if err != nil {
		return nil, err
	}
	var out models.Book
	if err := c.do(ctx, http.MethodPut, "/books/"+url.PathEscape(id), nil, body, contentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBook removes a listing.
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/books/"+url.PathEscape(id), nil, nil)
}

// ListMyBooks returns the caller's own listings.
func (c *Client) ListMyBooks(ctx context.Context) ([]models.Book, error) {
	var out []models.Book
	if err := c.doJSON(ctx, http.MethodGet, "/books/my/books", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// encodeBookForm builds the multipart body shared by CreateBook and
// UpdateBook.
func encodeBookForm(p BookParams) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":       p.Title,
		"author":      p.Author,
		"condition":   p.Condition,
		"description": p.Description,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if p.Image != nil {
		filename := p.ImageFilename
		if filename == "" {
			filename = "image"
		}
		part, err := w.CreateFormFile("image", filename)
		if err != nil {
			return nil, "", fmt.Errorf("create image part: %w", err)
		}
		if _, err := io.Copy(part, p.Image); err != nil {
			return nil, "", fmt.Errorf("copy image: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
