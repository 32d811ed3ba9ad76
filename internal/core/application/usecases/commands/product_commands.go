package commands

import (
	"errors"
	"strings"

	"bookstore/internal/core/domain/model/catalog"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New("CreateProductCommand must be created via NewCreateProductCommand constructor")
	ErrUpdateProductCommandIsNotConstructed = errors.New("UpdateProductCommand must be created via NewUpdateProductCommand constructor")
	ErrDeleteProductCommandIsNotConstructed = errors.New("DeleteProductCommand must be created via NewDeleteProductCommand constructor")
)

type CreateProductCommand struct {
	serialNumber string
	details      catalog.ProductDetails
	guard        guard.ConstructorGuard
}

// NewCreateProductCommand requires a serial number; the remaining fields are
// checked by catalog.NewProduct.
func NewCreateProductCommand(serialNumber string, details catalog.ProductDetails) (CreateProductCommand, error) {
	serialNumber = strings.TrimSpace(serialNumber)
	if serialNumber == "" {
		return CreateProductCommand{}, errs.NewValueIsRequiredError("serial number")
	}
	return CreateProductCommand{serialNumber: serialNumber, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) SerialNumber() string {
	return c.serialNumber
}

func (c CreateProductCommand) Details() catalog.ProductDetails {
	return c.details
}

type UpdateProductCommand struct {
	serialNumber string
	details      catalog.ProductDetails
	guard        guard.ConstructorGuard
}

func NewUpdateProductCommand(serialNumber string, details catalog.ProductDetails) (UpdateProductCommand, error) {
	cmd, err := NewCreateProductCommand(serialNumber, details)
	if err != nil {
		return UpdateProductCommand{}, err
	}
	return UpdateProductCommand{serialNumber: cmd.serialNumber, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) SerialNumber() string {
	return c.serialNumber
}

func (c UpdateProductCommand) Details() catalog.ProductDetails {
	return c.details
}

// DeleteProductCommand fails with a referential integrity violation once the
// product appears on any order line.
type DeleteProductCommand struct {
	serialNumber string
	guard        guard.ConstructorGuard
}

func NewDeleteProductCommand(serialNumber string) (DeleteProductCommand, error) {
	serialNumber = strings.TrimSpace(serialNumber)
	if serialNumber == "" {
		return DeleteProductCommand{}, errs.NewValueIsRequiredError("serial number")
	}
	return DeleteProductCommand{serialNumber: serialNumber, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) SerialNumber() string {
	return c.serialNumber
}
