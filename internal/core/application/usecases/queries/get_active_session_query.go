package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"bookstore/internal/core/domain/model/identity"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var (
	ErrGetActiveSessionQueryIsNotConstructed = errors.New(
		"GetActiveSessionQuery must be created via NewGetActiveSessionQuery constructor",
	)

	ErrMissingSession = errs.NewUnauthorizedError("missing or invalid session token")
)

// GetActiveSessionQuery resolves the token every API call carries.
type GetActiveSessionQuery struct {
	token identity.Token
	guard guard.ConstructorGuard
}

// NewGetActiveSessionQuery fails with ErrMissingSession for an empty or
// malformed token.
func NewGetActiveSessionQuery(token string) (GetActiveSessionQuery, error) {
	t, err := identity.ParseToken(strings.TrimSpace(token))
	if err != nil {
		return GetActiveSessionQuery{}, ErrMissingSession
	}
	return GetActiveSessionQuery{token: t, guard: guard.NewConstructorGuard()}, nil
}

func (q GetActiveSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveSessionQueryIsNotConstructed)
}

type ActiveSession struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

type GetActiveSessionQueryHandler struct {
	sessions ports.SessionStore
	clock    kernel.Clock
}

func NewGetActiveSessionQueryHandler(sessions ports.SessionStore, clock kernel.Clock) GetActiveSessionQueryHandler {
	return GetActiveSessionQueryHandler{sessions: sessions, clock: clock}
}

// Handle reports unknown and expired sessions as errs.ErrUnauthorized.
func (h GetActiveSessionQueryHandler) Handle(ctx context.Context, query GetActiveSessionQuery) (ActiveSession, error) {
	if err := query.Validate(); err != nil {
		return ActiveSession{}, err
	}

	session, err := h.sessions.Get(ctx, query.token)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ActiveSession{}, ErrMissingSession
	}
	if err != nil {
		return ActiveSession{}, err
	}

	if session.IsExpired(h.clock.Now()) {
		return ActiveSession{}, identity.ErrSessionExpired
	}

	return ActiveSession{
		Token:     session.Token().String(),
		Username:  session.Username(),
		ExpiresAt: session.ExpiresAt(),
	}, nil
}
