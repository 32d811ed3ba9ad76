package identityrepo

import (
	"context"
	"errors"
	"time"

	"bookstore/internal/adapters/out/postgres/integrity"
	"bookstore/internal/core/domain/model/identity"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormOperatorRepository struct {
	db *gorm.DB
}

func NewGormOperatorRepository(db *gorm.DB) *GormOperatorRepository {
	return &GormOperatorRepository{db: db}
}

func (r *GormOperatorRepository) Add(ctx context.Context, operator *identity.Operator) error {
	dto := OperatorDTO{Username: operator.Username(), PasswordHash: operator.PasswordHash()}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return integrity.TranslateError(err, "operator")
	}
	return nil
}

func (r *GormOperatorRepository) Get(ctx context.Context, username string) (*identity.Operator, error) {
	var dto OperatorDTO
	err := r.db.WithContext(ctx).Take(&dto, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("operator", username)
	}
	if err != nil {
		return nil, integrity.TranslateError(err, "operator")
	}
	return identity.RestoreOperator(dto.Username, dto.PasswordHash)
}

// GormSessionStore keeps sessions in a table. Expired rows stay until
// DeleteExpired runs; callers check expiry themselves.
type GormSessionStore struct {
	db *gorm.DB
}

func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{db: db}
}

func (s *GormSessionStore) Save(ctx context.Context, session *identity.Session) error {
	dto := sessionFromDomain(session)
	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return integrity.TranslateError(err, "session")
	}
	return nil
}

func (s *GormSessionStore) Get(ctx context.Context, token identity.Token) (*identity.Session, error) {
	var dto SessionDTO
	err := s.db.WithContext(ctx).Take(&dto, "token = ?", token.UUID()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("session", token.String())
	}
	if err != nil {
		return nil, integrity.TranslateError(err, "session")
	}
	return sessionToDomain(dto)
}

func (s *GormSessionStore) Delete(ctx context.Context, token identity.Token) error {
	result := s.db.WithContext(ctx).Delete(&SessionDTO{}, "token = ?", token.UUID())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("session", token.String())
	}
	return nil
}

func (s *GormSessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&SessionDTO{}, "expires_at <= ?", now)
	return result.RowsAffected, result.Error
}
