// Package redisstore keeps operator sessions in Redis. Each session is a hash
// that Redis expires on its own at the session's expiry.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookstore/internal/core/domain/model/identity"
	"bookstore/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	scanBatchSize    = 100
)

const (
	fieldUsername  = "username"
	fieldIssuedAt  = "issued_at"
	fieldExpiresAt = "expires_at"
)

type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(token identity.Token) string {
	return sessionKeyPrefix + token.String()
}

func (s *SessionStore) Save(ctx context.Context, session *identity.Session) error {
	key := sessionKey(session.Token())
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			fieldUsername, session.Username(),
			fieldIssuedAt, session.IssuedAt().UTC().Format(time.RFC3339Nano),
			fieldExpiresAt, session.ExpiresAt().UTC().Format(time.RFC3339Nano),
		)
		pipe.ExpireAt(ctx, key, session.ExpiresAt())
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token identity.Token) (*identity.Session, error) {
	fields, err := s.client.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if len(fields) == 0 {
		return nil, errs.NewObjectNotFoundError("session", token.String())
	}
	return decodeSession(token, fields)
}

func (s *SessionStore) Delete(ctx context.Context, token identity.Token) error {
	removed, err := s.client.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if removed == 0 {
		return errs.NewObjectNotFoundError("session", token.String())
	}
	return nil
}

// DeleteExpired removes sessions whose recorded expiry is not after now. Redis
// normally expires them first; this catches keys written with a skewed clock.
func (s *SessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var removed int64
	iter := s.client.Scan(ctx, 0, sessionKeyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		raw, err := s.client.HGet(ctx, key, fieldExpiresAt).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return removed, fmt.Errorf("read session expiry: %w", err)
		}

		expiresAt, err := time.Parse(time.RFC3339Nano, raw)
		if err == nil && expiresAt.After(now) {
			continue
		}

		n, err := s.client.Del(ctx, key).Result()
		if err != nil {
			return removed, fmt.Errorf("delete session %s: %w", strings.TrimPrefix(key, sessionKeyPrefix), err)
		}
		removed += n
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("scan sessions: %w", err)
	}
	return removed, nil
}

func decodeSession(token identity.Token, fields map[string]string) (*identity.Session, error) {
	issuedAt, errIssued := time.Parse(time.RFC3339Nano, fields[fieldIssuedAt])
	expiresAt, errExpires := time.Parse(time.RFC3339Nano, fields[fieldExpiresAt])
	if err := errors.Join(errIssued, errExpires); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("stored session", err)
	}
	return identity.RestoreSession(token, fields[fieldUsername], issuedAt, expiresAt)
}
