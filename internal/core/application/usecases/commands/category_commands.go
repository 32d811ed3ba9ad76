package commands

import (
	"errors"
	"fmt"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var (
	ErrCreateCategoryCommandIsNotConstructed = errors.New("CreateCategoryCommand must be created via NewCreateCategoryCommand constructor")
	ErrUpdateCategoryCommandIsNotConstructed = errors.New("UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor")
	ErrDeleteCategoryCommandIsNotConstructed = errors.New("DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor")
)

type CreateCategoryCommand struct {
	name        string
	description string
	guard       guard.ConstructorGuard
}

// NewCreateCategoryCommand leaves field rules to catalog.NewCategory.
func NewCreateCategoryCommand(name, description string) (CreateCategoryCommand, error) {
	return CreateCategoryCommand{name: name, description: description, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) Name() string {
	return c.name
}

func (c CreateCategoryCommand) Description() string {
	return c.description
}

type UpdateCategoryCommand struct {
	id          int64
	name        string
	description string
	guard       guard.ConstructorGuard
}

func NewUpdateCategoryCommand(id int64, name, description string) (UpdateCategoryCommand, error) {
	if err := validateCategoryID(id); err != nil {
		return UpdateCategoryCommand{}, err
	}
	return UpdateCategoryCommand{id: id, name: name, description: description, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

func (c UpdateCategoryCommand) ID() int64 {
	return c.id
}

func (c UpdateCategoryCommand) Name() string {
	return c.name
}

func (c UpdateCategoryCommand) Description() string {
	return c.description
}

// DeleteCategoryCommand removes a category; its products become uncategorised.
type DeleteCategoryCommand struct {
	id    int64
	guard guard.ConstructorGuard
}

func NewDeleteCategoryCommand(id int64) (DeleteCategoryCommand, error) {
	if err := validateCategoryID(id); err != nil {
		return DeleteCategoryCommand{}, err
	}
	return DeleteCategoryCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

func (c DeleteCategoryCommand) ID() int64 {
	return c.id
}

func validateCategoryID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("category id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}
