package identity

import (
	"fmt"
	"time"

	"bookstore/internal/pkg/errs"
)

var ErrSessionExpired = errs.NewUnauthorizedError("session expired")

// Session binds a token to an operator until ExpiresAt.
type Session struct {
	token     Token
	username  string
	issuedAt  time.Time
	expiresAt time.Time
}

func NewSession(username string, issuedAt time.Time, ttl time.Duration) (*Session, error) {
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("session ttl", fmt.Errorf("%s is not positive", ttl))
	}
	return RestoreSession(NewToken(), username, issuedAt, issuedAt.Add(ttl))
}

func RestoreSession(token Token, username string, issuedAt, expiresAt time.Time) (*Session, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if !expiresAt.After(issuedAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause("session expiry", fmt.Errorf("%s is not after %s", expiresAt, issuedAt))
	}
	return &Session{token: token, username: username, issuedAt: issuedAt, expiresAt: expiresAt}, nil
}

func (s *Session) Token() Token {
	return s.token
}

func (s *Session) Username() string {
	return s.username
}

func (s *Session) IssuedAt() time.Time {
	return s.issuedAt
}

func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}

func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

// TTL is the remaining lifetime at now, never negative.
func (s *Session) TTL(now time.Time) time.Duration {
	if s.IsExpired(now) {
		return 0
	}
	return s.expiresAt.Sub(now)
}
