package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

type createRequestBody struct {
	BookID  string `json:"book_id"`
	Message string `json:"message"`
}

type updateStatusBody struct {
	Status models.RequestStatus `json:"status"`
}

// CreateRequest opens a trade request for a book.
func (c *Client) CreateRequest(ctx context.Context, bookID, message string) (*models.TradeRequest, error) {
	var out models.TradeRequest
	err := c.doJSON(ctx, http.MethodPost, "/requests", createRequestBody{BookID: bookID, Message: message}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRequest fetches one trade request by id.
func (c *Client) GetRequest(ctx context.Context, id string) (*models.TradeRequest, error) {
	var out models.TradeRequest
	if err := c.doJSON(ctx, http.MethodGet, "/requests/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListReceived returns requests other users opened on the caller's books.
func (c *Client) ListReceived(ctx context.Context) ([]models.TradeRequest, error) {
	var out []models.TradeRequest
	if err := c.doJSON(ctx, http.MethodGet, "/requests/received", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSent returns the caller's outgoing requests.
func (c *Client) ListSent(ctx context.Context) ([]models.TradeRequest, error) {
	var out []models.TradeRequest
	if err := c.doJSON(ctx, http.MethodGet, "/requests/sent", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateRequestStatus accepts or declines a request on one of the caller's
// books.
func (c *Client) UpdateRequestStatus(ctx context.Context, id string, status models.RequestStatus) (*models.TradeRequest, error) {
	var out models.TradeRequest
	err := c.doJSON(ctx, http.MethodPut, "/requests/"+url.PathEscape(id), updateStatusBody{Status: status}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRequest cancels one of the caller's outgoing requests.
func (c *Client) DeleteRequest(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/requests/"+url.PathEscape(id), nil, nil)
}
