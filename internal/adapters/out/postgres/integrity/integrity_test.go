package integrity_test

import (
	"errors"
	"fmt"
	"testing"

	"bookstore/internal/adapters/out/postgres/integrity"
	"bookstore/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	t.Run("should map unique violations with the constraint name", func(t *testing.T) {
		err := integrity.TranslateError(&pgconn.PgError{Code: "23505", ConstraintName: "customers_email_key"}, "customer")

		require.ErrorIs(t, err, errs.ErrUniqueConstraintViolation)
		var unique *errs.UniqueConstraintViolationError
		require.ErrorAs(t, err, &unique)
		assert.Equal(t, "customers_email_key", unique.Constraint)
		assert.Equal(t, "customer", unique.Object)
	})

	t.Run("should map foreign key and restrict violations", func(t *testing.T) {
		for _, code := range []string{"23503", "23001"} {
			err := integrity.TranslateError(fmt.Errorf("exec: %w", &pgconn.PgError{
				Code:           code,
				ConstraintName: "fk_orders_customer_national_id",
			}), "order")
			require.ErrorIs(t, err, errs.ErrReferentialIntegrityViolation, code)

			var ref *errs.ReferentialIntegrityViolationError
			require.ErrorAs(t, err, &ref)
			assert.Equal(t, "customers", ref.Dependent)
		}
	})

	t.Run("should map serialization failures and deadlocks to conflicts", func(t *testing.T) {
		for _, code := range []string{"40001", "40P01"} {
			err := integrity.TranslateError(&pgconn.PgError{Code: code}, "order")
			require.ErrorIs(t, err, errs.ErrTransactionConflict, code)
			assert.Equal(t, errs.KindTransactionConflict, errs.KindOf(err))
		}
	})

	t.Run("should fall back to gorm translated errors", func(t *testing.T) {
		require.ErrorIs(t, integrity.TranslateError(gorm.ErrDuplicatedKey, "category"), errs.ErrUniqueConstraintViolation)
		require.ErrorIs(t, integrity.TranslateError(gorm.ErrForeignKeyViolated, "product"), errs.ErrReferentialIntegrityViolation)
	})

	t.Run("should pass other errors through unchanged", func(t *testing.T) {
		other := errors.New("connection reset")
		assert.Same(t, other, integrity.TranslateError(other, "order"))
		require.NoError(t, integrity.TranslateError(nil, "order"))
	})
}

func TestRelations(t *testing.T) {
	t.Run("should carry the deletion policy of every relationship", func(t *testing.T) {
		policies := map[string]integrity.Policy{}
		for _, r := range integrity.Relations {
			policies[r.Parent+"->"+r.Child+"."+r.ChildColumn] = r.Policy
		}

		assert.Equal(t, map[string]integrity.Policy{
			"categories->products.category_id":                     integrity.SetNull,
			"customers->orders.customer_national_id":               integrity.Protect,
			"delivery_persons->orders.delivery_person_national_id": integrity.SetNull,
			"products->order_lines.product_serial_number":          integrity.Protect,
			"orders->order_lines.order_number":                     integrity.Cascade,
		}, policies)
	})

	t.Run("should render referential actions", func(t *testing.T) {
		assert.Equal(t, "RESTRICT", integrity.Protect.OnDelete())
		assert.Equal(t, "CASCADE", integrity.Cascade.OnDelete())
		assert.Equal(t, "SET NULL", integrity.SetNull.OnDelete())
	})

	t.Run("should find relations by parent table", func(t *testing.T) {
		rels := integrity.RelationsOf("orders")
		require.Len(t, rels, 1)
		assert.Equal(t, "order_lines", rels[0].Child)
		assert.Empty(t, integrity.RelationsOf("order_lines"))
	})
}
