// Package common contains shared constants and sentinel errors used across
// BookSwap client components.
package common

const (
	// AuthorizationHeaderName is the HTTP header carrying the bearer
	// credential on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix is prepended to the token in the authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName carries a client-generated id for request tracing.
	RequestIDHeaderName = "X-Request-ID"

	// TokenStorageKey is the fixed key under which the bearer token is kept
	// in the local metadata store. Absence of the key means anonymous.
	TokenStorageKey = "token"
)
