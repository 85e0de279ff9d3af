package session

import (
	"context"

	"github.com/aka-Harsh/eventbook/internal/client/api"
	"github.com/aka-Harsh/eventbook/internal/client/models"
	"github.com/aka-Harsh/eventbook/internal/logging"
)

// Result is the outcome shape of every store operation that talks to the
// service. Failure handling is total: transport faults, decode faults and
// service rejections all land here, distinguished only by Message text.
type Result struct {
	OK      bool
	Message string
}

func success() Result           { return Result{OK: true} }
func failure(msg string) Result { return Result{OK: false, Message: msg} }

// Store is the single source of truth for the authenticated identity. It is
// constructed once at startup and handed to every consumer; there is no
// package-level instance.
type Store struct {
	client  api.Client
	persist Persistence
	log     logging.Logger

	user *models.User
}

// NewStore wires the store to the service client and a persistence backend.
func NewStore(client api.Client, persist Persistence, log logging.Logger) *Store {
	return &Store{client: client, persist: persist, log: log.With("component", "session")}
}

// Current returns the identity, or nil when logged out.
func (s *Store) Current() *models.User { return s.user }

// LoggedIn reports whether an identity is present.
func (s *Store) LoggedIn() bool { return s.user != nil }

// Restore rehydrates the identity persisted by a previous run. It runs once
// before the first render; a missing or malformed record means logged out
// and is never surfaced as an error.
func (s *Store) Restore(ctx context.Context) {
	u, err := s.persist.Load()
	if err != nil {
		s.log.Warn(ctx, "discarding persisted session", "error", err)
		return
	}
	s.user = u
}

// Login authenticates against the service. On success the identity is kept
// in memory and persisted verbatim; on any failure the identity stays unset
// and the result carries a user-facing message.
func (s *Store) Login(ctx context.Context, email, password string) Result {
	u, err := s.client.Authenticate(ctx, email, password)
	if err != nil {
		s.log.Warn(ctx, "login rejected", "error", err)
		return failure(api.UserMessage(err, "Login failed"))
	}

	s.user = u
	if err := s.persist.Save(u); err != nil {
		// The in-memory session is still valid; only the next restart
		// will start logged out.
		s.log.Warn(ctx, "could not persist session", "error", err)
	}
	s.log.Info(ctx, "logged in", "user", u.Email, "role", u.Role)
	return success()
}

// Logout clears the identity and removes the persisted record. It always
// succeeds and performs no server round-trip.
func (s *Store) Logout(ctx context.Context) {
	s.user = nil
	if err := s.persist.Clear(); err != nil {
		s.log.Warn(ctx, "could not clear persisted session", "error", err)
	}
	s.log.Info(ctx, "logged out")
}

// Register creates a new account. It does not log the user in; callers
// prompt for a login afterwards.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) Result {
	if _, err := s.client.Register(ctx, req); err != nil {
		s.log.Warn(ctx, "registration rejected", "error", err)
		return failure(api.UserMessage(err, "Registration failed"))
	}
	return success()
}
