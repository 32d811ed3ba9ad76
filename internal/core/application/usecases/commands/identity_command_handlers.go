package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookstore/internal/core/domain/model/identity"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/errs"
)

// Operators and sessions live outside the order transaction boundary, so
// these handlers talk to their stores directly.

type CreateOperatorCommandHandler struct {
	operators ports.OperatorRepository
}

func NewCreateOperatorCommandHandler(operators ports.OperatorRepository) CreateOperatorCommandHandler {
	return CreateOperatorCommandHandler{operators: operators}
}

func (h CreateOperatorCommandHandler) Handle(ctx context.Context, cmd CreateOperatorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	operator, err := identity.NewOperator(cmd.Username(), cmd.Password())
	if err != nil {
		return err
	}

	return h.operators.Add(ctx, operator)
}

// LoginCommandHandler checks the credentials and opens a session valid for ttl.
// An unknown username and a wrong password produce the same error.
type LoginCommandHandler struct {
	operators ports.OperatorRepository
	sessions  ports.SessionStore
	clock     kernel.Clock
	ttl       time.Duration
}

func NewLoginCommandHandler(
	operators ports.OperatorRepository,
	sessions ports.SessionStore,
	clock kernel.Clock,
	ttl time.Duration,
) LoginCommandHandler {
	return LoginCommandHandler{operators: operators, sessions: sessions, clock: clock, ttl: ttl}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (*identity.Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	operator, err := h.operators.Get(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, identity.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err = operator.Authenticate(cmd.Password()); err != nil {
		return nil, err
	}

	session, err := identity.NewSession(operator.Username(), h.clock.Now(), h.ttl)
	if err != nil {
		return nil, err
	}

	if err = h.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

type LogoutCommandHandler struct {
	sessions ports.SessionStore
}

func NewLogoutCommandHandler(sessions ports.SessionStore) LogoutCommandHandler {
	return LogoutCommandHandler{sessions: sessions}
}

// Handle is idempotent: logging out an unknown token succeeds.
func (h LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.sessions.Delete(ctx, cmd.Token())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	return err
}

// PurgeExpiredSessionsCommandHandler is run periodically by the session
// cleanup job.
type PurgeExpiredSessionsCommandHandler struct {
	sessions ports.SessionStore
	clock    kernel.Clock
}

func NewPurgeExpiredSessionsCommandHandler(sessions ports.SessionStore, clock kernel.Clock) PurgeExpiredSessionsCommandHandler {
	return PurgeExpiredSessionsCommandHandler{sessions: sessions, clock: clock}
}

func (h PurgeExpiredSessionsCommandHandler) Handle(ctx context.Context) (int64, error) {
	return h.sessions.DeleteExpired(ctx, h.clock.Now())
}
