package catalog

import (
	"errors"
	"fmt"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

const MaxCategoryNameLength = 100

var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups products. Its id is assigned by the store on first save.
type Category struct {
	id          int64
	name        string
	description string
	guard       guard.ConstructorGuard
}

func NewCategory(name, description string) (*Category, error) {
	c := &Category{guard: guard.NewConstructorGuard()}
	if err := c.Edit(name, description); err != nil {
		return nil, err
	}
	return c, nil
}

func RestoreCategory(id int64, name, description string) (*Category, error) {
	c, err := NewCategory(name, description)
	if err != nil {
		return nil, err
	}
	if err = c.AssignID(id); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

func (c *Category) ID() int64 {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Description() string {
	return c.description
}

// AssignID stores the surrogate key. It can only be set once.
func (c *Category) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("category id", fmt.Errorf("%d is not positive", id))
	}
	if c.id != 0 && c.id != id {
		return errs.NewValueIsInvalidErrorWithCause("category id", fmt.Errorf("already assigned %d", c.id))
	}
	c.id = id
	return nil
}

func (c *Category) Edit(name, description string) error {
	name, nameErr := requiredText("category name", name, MaxCategoryNameLength)
	description, descErr := optionalText("category description", description, 0)
	if err := errors.Join(nameErr, descErr); err != nil {
		return err
	}

	c.name = name
	c.description = description
	return nil
}
