package commands

import (
	"errors"
	"strings"

	"bookstore/internal/core/domain/model/identity"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var (
	ErrCreateOperatorCommandIsNotConstructed = errors.New("CreateOperatorCommand must be created via NewCreateOperatorCommand constructor")
	ErrLoginCommandIsNotConstructed          = errors.New("LoginCommand must be created via NewLoginCommand constructor")
	ErrLogoutCommandIsNotConstructed         = errors.New("LogoutCommand must be created via NewLogoutCommand constructor")
)

type CreateOperatorCommand struct {
	username string
	password string
	guard    guard.ConstructorGuard
}

func NewCreateOperatorCommand(username, password string) (CreateOperatorCommand, error) {
	username = strings.TrimSpace(username)
	if err := errors.Join(requireText("username", username), requireText("password", password)); err != nil {
		return CreateOperatorCommand{}, err
	}
	return CreateOperatorCommand{username: username, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateOperatorCommand) Validate() error {
	return c.guard.Validate(ErrCreateOperatorCommandIsNotConstructed)
}

func (c CreateOperatorCommand) Username() string {
	return c.username
}

func (c CreateOperatorCommand) Password() string {
	return c.password
}

type LoginCommand struct {
	username string
	password string
	guard    guard.ConstructorGuard
}

func NewLoginCommand(username, password string) (LoginCommand, error) {
	username = strings.TrimSpace(username)
	if err := errors.Join(requireText("username", username), requireText("password", password)); err != nil {
		return LoginCommand{}, err
	}
	return LoginCommand{username: username, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Username() string {
	return c.username
}

func (c LoginCommand) Password() string {
	return c.password
}

type LogoutCommand struct {
	token identity.Token
	guard guard.ConstructorGuard
}

func NewLogoutCommand(token string) (LogoutCommand, error) {
	t, err := identity.ParseToken(strings.TrimSpace(token))
	if err != nil {
		return LogoutCommand{}, err
	}
	return LogoutCommand{token: t, guard: guard.NewConstructorGuard()}, nil
}

func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

func (c LogoutCommand) Token() identity.Token {
	return c.token
}

func requireText(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
