package kernel_test

import (
	"strings"
	"testing"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNationalID(t *testing.T) {
	t.Run("should trim surrounding spaces", func(t *testing.T) {
		id, err := kernel.NewNationalID("  45879632 ")

		require.NoError(t, err)
		assert.Equal(t, "45879632", id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should reject empty value", func(t *testing.T) {
		_, err := kernel.NewNationalID("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject values longer than the column", func(t *testing.T) {
		_, err := kernel.NewNationalID(strings.Repeat("1", kernel.MaxNationalIDLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject inner whitespace", func(t *testing.T) {
		_, err := kernel.NewNationalID("458 796")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should compare by value", func(t *testing.T) {
		a := kernel.MustNationalID("X-100")
		b := kernel.MustNationalID("X-100")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(kernel.MustNationalID("X-101")))
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.NationalID

		assert.True(t, id.IsZero())
		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})
}

func TestNewEmail(t *testing.T) {
	t.Run("should normalise case", func(t *testing.T) {
		email, err := kernel.NewEmail(" Ana.Torres@Example.COM ")

		require.NoError(t, err)
		assert.Equal(t, "ana.torres@example.com", email.String())
	})

	t.Run("should reject malformed address", func(t *testing.T) {
		_, err := kernel.NewEmail("ana.torres")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := kernel.NewEmail("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
