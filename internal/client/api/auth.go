package api

import (
	"context"
	"net/http"
)

// RawUser is the identity record exactly as the server sends it. The
// primary key may arrive under "_id" (with "id" as a legacy alias); the
// session layer normalizes this into models.User before anything else
// sees it.
type RawUser struct {
	PrimaryID string `json:"_id"`
	AliasID   string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// AuthPayload is the response to a successful login or registration.
type AuthPayload struct {
	Token string  `json:"token"`
	User  RawUser `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token and identity.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	var out AuthPayload
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns a token and identity, same shape
// as Login.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthPayload, error) {
	var out AuthPayload
	err := c.doJSON(ctx, http.MethodPost, "/auth/register", registerRequest{Name: name, Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile resolves the identity owning the currently held token.
func (c *Client) Profile(ctx context.Context) (RawUser, error) {
	var out RawUser
	err := c.doJSON(ctx, http.MethodGet, "/auth/profile", nil, &out)
	if err != nil {
		return RawUser{}, err
	}
	return out, nil
}
