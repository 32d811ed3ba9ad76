// Package identityrepo stores operators and, unless Redis is configured,
// their sessions.
package identityrepo

import (
	"time"

	"bookstore/internal/core/domain/model/identity"

	"github.com/google/uuid"
)

type OperatorDTO struct {
	Username     string    `gorm:"primaryKey;size:150"`
	PasswordHash []byte    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (OperatorDTO) TableName() string {
	return "operators"
}

type SessionDTO struct {
	Token     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"size:150;not null;index"`
	IssuedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

func (SessionDTO) TableName() string {
	return "sessions"
}

func sessionFromDomain(s *identity.Session) SessionDTO {
	return SessionDTO{
		Token:     s.Token().UUID(),
		Username:  s.Username(),
		IssuedAt:  s.IssuedAt(),
		ExpiresAt: s.ExpiresAt(),
	}
}

func sessionToDomain(dto SessionDTO) (*identity.Session, error) {
	token, err := identity.ParseToken(dto.Token.String())
	if err != nil {
		return nil, err
	}
	return identity.RestoreSession(token, dto.Username, dto.IssuedAt, dto.ExpiresAt)
}
