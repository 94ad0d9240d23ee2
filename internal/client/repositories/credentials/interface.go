// Package credentials is the durable local store for the bearer token,
// the CLI's analogue of the browser's local storage entry.
package credentials

import "context"

// Repository persists the bearer credential under a fixed key. An empty
// token from Token means anonymous.
type Repository interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
