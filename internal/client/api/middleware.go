package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bookswap/internal/common"
	"github.com/google/uuid"
)

// RequestHook mutates an outgoing request before it is sent. Returning an
// error aborts the call.
type RequestHook func(req *http.Request) error

// ResponseHook observes every response before status handling. Hooks run in
// registration order and cannot suppress the error the caller receives.
type ResponseHook func(resp *http.Response) error

// TokenSource yields the current bearer credential. An empty token means
// anonymous. It is consulted per request, never cached at client
// construction, so a credential set after the client exists still applies.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// BearerAuth returns a request hook that attaches the credential from
// source as an authorization header. Requests go out without the header
// when the source holds no token.
func BearerAuth(source TokenSource) RequestHook {
	return func(req *http.Request) error {
		token, err := source.Token(req.Context())
		if err != nil {
			return err
		}
		if token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
		return nil
	}
}

// RequestID returns a request hook that stamps every call with a fresh
// client-generated id for tracing.
func RequestID() RequestHook {
	return func(req *http.Request) error {
		req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
		return nil
	}
}

// OnUnauthorized returns a response hook that fires fn exactly once per
// 401 response. The hook runs before the error reaches the caller, so the
// session is already invalidated when the caller sees ErrUnauthorized.
func OnUnauthorized(fn func()) ResponseHook {
	return func(resp *http.Response) error {
		if resp.StatusCode == http.StatusUnauthorized {
			fn()
		}
		return nil
	}
}
