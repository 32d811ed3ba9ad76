package integrity

import (
	"errors"

	"bookstore/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the store distinguishes.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeRestrictViolation    = "23001"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// TranslateError maps database failures onto error kinds by SQLSTATE. object
// names the record being written. Unknown errors are returned unchanged.
func TranslateError(err error, object string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return errs.NewUniqueConstraintViolationErrorWithCause(object, pgErr.ConstraintName, err)
		case codeForeignKeyViolation, codeRestrictViolation:
			return errs.NewReferentialIntegrityViolationErrorWithCause(object, nil, referencedBy(pgErr), err)
		case codeSerializationFailure, codeDeadlockDetected:
			return errs.NewTransactionConflictError(err)
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewUniqueConstraintViolationErrorWithCause(object, "", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewReferentialIntegrityViolationErrorWithCause(object, nil, "", err)
	}

	return err
}

func referencedBy(pgErr *pgconn.PgError) string {
	for _, r := range Relations {
		if r.ConstraintName() == pgErr.ConstraintName {
			return r.Parent
		}
	}
	return pgErr.TableName
}
