package ports

import (
	"context"
	"time"

	"bookstore/internal/core/domain/model/identity"
)

type OperatorRepository interface {
	Add(ctx context.Context, operator *identity.Operator) error

	Get(ctx context.Context, username string) (*identity.Operator, error)
}

// SessionStore keeps active sessions. Get returns a not-found error for unknown
// or already purged tokens.
type SessionStore interface {
	Save(ctx context.Context, session *identity.Session) error

	Get(ctx context.Context, token identity.Token) (*identity.Session, error)

	Delete(ctx context.Context, token identity.Token) error

	// DeleteExpired removes sessions that expired before now and reports how many.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
