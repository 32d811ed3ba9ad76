package identity

import (
	"fmt"

	"bookstore/internal/pkg/errs"

	"github.com/google/uuid"
)

// Token is a random session identifier. The zero value is invalid.
type Token struct {
	id uuid.UUID
}

func NewToken() Token {
	return Token{id: uuid.New()}
}

// ParseToken accepts the canonical textual UUID form.
func ParseToken(s string) (Token, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Token{}, errs.NewValueIsInvalidErrorWithCause("session token", fmt.Errorf("invalid format: %w", err))
	}
	t := Token{id: id}
	if err = t.Validate(); err != nil {
		return Token{}, err
	}
	return t, nil
}

func (t Token) String() string {
	return t.id.String()
}

func (t Token) UUID() uuid.UUID {
	return t.id
}

func (t Token) IsEqual(other Token) bool {
	return t.id == other.id
}

func (t Token) Validate() error {
	if t.id == uuid.Nil {
		return errs.NewValueIsRequiredError("session token")
	}
	return nil
}
