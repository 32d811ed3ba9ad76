package identity

import (
	"errors"
	"strings"

	"bookstore/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	MaxPasswordLength = 72
)

var ErrInvalidCredentials = errs.NewUnauthorizedError("invalid username or password")

// Operator is a back-office user. Only the bcrypt hash of the password is kept.
type Operator struct {
	username     string
	passwordHash []byte
}

func NewOperator(username, password string) (*Operator, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return nil, errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, MaxPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Operator{username: username, passwordHash: hash}, nil
}

func RestoreOperator(username string, passwordHash []byte) (*Operator, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if len(passwordHash) == 0 {
		return nil, errs.NewValueIsRequiredError("password hash")
	}
	return &Operator{username: username, passwordHash: passwordHash}, nil
}

func (o *Operator) Username() string {
	return o.username
}

func (o *Operator) PasswordHash() []byte {
	return o.passwordHash
}

// Authenticate returns ErrInvalidCredentials when password does not match.
func (o *Operator) Authenticate(password string) error {
	err := bcrypt.CompareHashAndPassword(o.passwordHash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidCredentials
	}
	return err
}
