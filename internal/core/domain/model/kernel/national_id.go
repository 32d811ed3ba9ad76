package kernel

import (
	"fmt"
	"strings"
	"unicode"

	"bookstore/internal/pkg/errs"
)

const MaxNationalIDLength = 15

// NationalID is the natural key of customers and delivery personnel.
type NationalID struct {
	value string
}

func NewNationalID(value string) (NationalID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return NationalID{}, errs.NewValueIsRequiredError("national id")
	}
	if len(value) > MaxNationalIDLength {
		return NationalID{}, errs.NewValueIsOutOfRangeError("national id length", len(value), 1, MaxNationalIDLength)
	}
	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
			return NationalID{}, errs.NewValueIsInvalidErrorWithCause(
				"national id",
				fmt.Errorf("unexpected character %q", r),
			)
		}
	}

	return NationalID{value: value}, nil
}

// MustNationalID panics on invalid input. Intended for fixtures and tests.
func MustNationalID(value string) NationalID {
	id, err := NewNationalID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (n NationalID) String() string {
	return n.value
}

func (n NationalID) IsEqual(other NationalID) bool {
	return n.value == other.value
}

func (n NationalID) IsZero() bool {
	return n.value == ""
}

func (n NationalID) Validate() error {
	if n.IsZero() {
		return errs.NewValueIsRequiredError("national id")
	}
	return nil
}
