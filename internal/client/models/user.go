// Package models defines client-side data models used by the BookSwap CLI.
package models

// User is the normalized identity record exposed to the rest of the
// application. ID is the canonical identifier; raw API responses may carry
// the key under either "_id" or "id", the session layer resolves that
// before a User is ever handed out.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
