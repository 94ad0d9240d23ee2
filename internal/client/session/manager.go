// Package session owns the single source of truth for "who is logged in".
// All credential lifecycle transitions go through the Manager; consumers
// read the current state and subscribe to changes.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/bookswap/internal/client/api"
	"github.com/dmitrijs2005/bookswap/internal/client/models"
	"github.com/dmitrijs2005/bookswap/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/bookswap/internal/logging"
)

// State is the session lifecycle state.
type State string

const (
	// StateUninitialized is the state before Resolve has run.
	StateUninitialized State = "uninitialized"
	// StateResolving means a stored credential exists and its owning
	// identity is being fetched.
	StateResolving State = "resolving"
	// StateAuthenticated means the identity is known.
	StateAuthenticated State = "authenticated"
	// StateAnonymous means no credential is held, or it was rejected.
	StateAnonymous State = "anonymous"
)

// Fallback messages used when the API error carries no message payload.
const (
	loginFallbackMessage    = "Login failed"
	registerFallbackMessage = "Registration failed"
	supersededMessage       = "superseded by a newer sign-in attempt"
	persistFailedMessage    = "failed to persist credential"
)

// Result is the structured outcome of Login and Register. Failures are
// reported here, never panicked or returned as errors, so callers always
// get a presentable message.
type Result struct {
	Success bool
	Message string
}

// API is the slice of the HTTP client the manager needs.
type API interface {
	Login(ctx context.Context, email, password string) (*api.AuthPayload, error)
	Register(ctx context.Context, name, email, password string) (*api.AuthPayload, error)
	Profile(ctx context.Context) (api.RawUser, error)
}

// Manager is an injectable session container. It implements
// api.TokenSource, so the HTTP client's bearer hook reads the persisted
// credential through it on every request.
type Manager struct {
	api   API
	creds credentials.Repository
	log   logging.Logger

	mu        sync.Mutex
	state     State
	user      *models.User
	attempts  uint64
	observers []func(State)

	// applyMu serializes the staleness check, the credential persist, and
	// the identity install of a sign-in response. Without it a response
	// could pass the check and then be overtaken by a newer attempt before
	// its token hits the store.
	applyMu sync.Mutex
}

// NewManager constructs a Manager in the Uninitialized state.
func NewManager(apiClient API, creds credentials.Repository, log logging.Logger) *Manager {
	return &Manager{
		api:   apiClient,
		creds: creds,
		log:   log,
		state: StateUninitialized,
	}
}

// OnChange registers an observer notified after every state transition.
func (m *Manager) OnChange(fn func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns the normalized identity, or nil when anonymous.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Token implements api.TokenSource by reading the persisted credential.
// The store is consulted per request, so a logout immediately strips the
// header from every subsequent call.
func (m *Manager) Token(ctx context.Context) (string, error) {
	return m.creds.Token(ctx)
}

// Resolve runs once at startup. With no stored credential it drops straight
// to Anonymous; otherwise it fetches the owning identity. Any failure is
// swallowed after a full clear, equivalent to never having logged in,
// since there is no user-facing context to report to at this point.
func (m *Manager) Resolve(ctx context.Context) {
	token, err := m.creds.Token(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to read stored credential", "error", err)
		m.clear(ctx)
		return
	}
	if token == "" {
		m.setState(StateAnonymous)
		return
	}

	m.setState(StateResolving)

	raw, err := m.api.Profile(ctx)
	if err != nil {
		m.log.Warn(ctx, "profile resolution failed", "error", err)
		m.clear(ctx)
		return
	}

	m.mu.Lock()
	m.user = normalizeUser(raw)
	m.mu.Unlock()
	m.setState(StateAuthenticated)
}

// Login authenticates with the given credentials. On failure the state is
// left untouched and the result carries the server's message, or a fixed
// fallback when there is none.
func (m *Manager) Login(ctx context.Context, email, password string) Result {
	if email == "" || password == "" {
		return Result{Success: false, Message: "email and password are required"}
	}

	seq := m.beginAttempt()
	payload, err := m.api.Login(ctx, email, password)
	if err != nil {
		return Result{Success: false, Message: messageOrFallback(err, loginFallbackMessage)}
	}
	return m.applyAuth(ctx, seq, payload)
}

// Register creates an account and, like the original flow, signs the new
// user straight in. Result shape matches Login.
func (m *Manager) Register(ctx context.Context, name, email, password string) Result {
	if name == "" || email == "" || password == "" {
		return Result{Success: false, Message: "name, email and password are required"}
	}

	seq := m.beginAttempt()
	payload, err := m.api.Register(ctx, name, email, password)
	if err != nil {
		return Result{Success: false, Message: messageOrFallback(err, registerFallbackMessage)}
	}
	return m.applyAuth(ctx, seq, payload)
}

// Logout clears the persisted credential and drops to Anonymous. It never
// fails and is idempotent; a store error is logged, the in-memory state
// still drops.
func (m *Manager) Logout(ctx context.Context) {
	m.clear(ctx)
}

// Invalidate is the session-invalidated event handler, wired to the HTTP
// client's 401 hook. It clears everything before the failing call's error
// reaches its caller.
func (m *Manager) Invalidate(ctx context.Context) {
	m.clear(ctx)
}

// beginAttempt issues a monotonically increasing id for a sign-in attempt.
// Responses belonging to attempts older than the latest issued one are
// discarded in applyAuth, so a slow first response cannot clobber the
// session established by a newer attempt.
func (m *Manager) beginAttempt() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts++
	return m.attempts
}

func (m *Manager) applyAuth(ctx context.Context, seq uint64, payload *api.AuthPayload) Result {
	m.applyMu.Lock()
	defer m.applyMu.Unlock()

	m.mu.Lock()
	if seq < m.attempts {
		m.mu.Unlock()
		return Result{Success: false, Message: supersededMessage}
	}
	m.mu.Unlock()

	if err := m.creds.Save(ctx, payload.Token); err != nil {
		m.log.Error(ctx, "failed to persist credential", "error", err)
		return Result{Success: false, Message: persistFailedMessage}
	}

	m.mu.Lock()
	m.user = normalizeUser(payload.User)
	m.mu.Unlock()
	m.setState(StateAuthenticated)

	return Result{Success: true}
}

// clear wipes the persisted credential and in-memory identity and settles
// on Anonymous, regardless of prior state.
func (m *Manager) clear(ctx context.Context) {
	if err := m.creds.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear stored credential", "error", err)
	}
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
	m.setState(StateAnonymous)
}

// setState transitions to next and notifies observers. Observers run
// without the lock held and only when the state actually changed.
func (m *Manager) setState(next State) {
	m.mu.Lock()
	if m.state == next {
		m.mu.Unlock()
		return
	}
	m.state = next
	observers := make([]func(State), len(m.observers))
	copy(observers, m.observers)
	m.mu.Unlock()

	for _, fn := range observers {
		fn(next)
	}
}

// normalizeUser maps the raw identity onto the canonical record: the
// primary key wins, the alias is only a fallback.
func normalizeUser(raw api.RawUser) *models.User {
	id := raw.PrimaryID
	if id == "" {
		id = raw.AliasID
	}
	return &models.User{ID: id, Name: raw.Name, Email: raw.Email}
}

// messageOrFallback extracts the server's message from an APIError, or
// returns fallback for sentinel and transport errors.
func messageOrFallback(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
