package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/catalog"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New("CreateCustomerCommand must be created via NewCreateCustomerCommand constructor")
	ErrUpdateCustomerCommandIsNotConstructed = errors.New("UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor")
	ErrDeleteCustomerCommandIsNotConstructed = errors.New("DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor")
)

// CustomerInput carries the raw customer fields of create and update requests.
type CustomerInput struct {
	FirstNames string
	LastNames  string
	Address    string
	District   string
	Email      string
	Phone      string
}

func (in CustomerInput) profile() (catalog.CustomerProfile, error) {
	email, err := kernel.NewEmail(in.Email)
	if err != nil {
		return catalog.CustomerProfile{}, err
	}
	return catalog.CustomerProfile{
		FirstNames: in.FirstNames,
		LastNames:  in.LastNames,
		Address:    in.Address,
		District:   in.District,
		Email:      email,
		Phone:      in.Phone,
	}, nil
}

type CreateCustomerCommand struct {
	nationalID kernel.NationalID
	profile    catalog.CustomerProfile
	guard      guard.ConstructorGuard
}

func NewCreateCustomerCommand(nationalID string, in CustomerInput) (CreateCustomerCommand, error) {
	nid, nidErr := kernel.NewNationalID(nationalID)
	profile, profileErr := in.profile()
	if err := errors.Join(nidErr, profileErr); err != nil {
		return CreateCustomerCommand{}, err
	}
	return CreateCustomerCommand{nationalID: nid, profile: profile, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) NationalID() kernel.NationalID {
	return c.nationalID
}

func (c CreateCustomerCommand) Profile() catalog.CustomerProfile {
	return c.profile
}

// UpdateCustomerCommand replaces the profile; the national id cannot change.
type UpdateCustomerCommand struct {
	nationalID kernel.NationalID
	profile    catalog.CustomerProfile
	guard      guard.ConstructorGuard
}

func NewUpdateCustomerCommand(nationalID string, in CustomerInput) (UpdateCustomerCommand, error) {
	cmd, err := NewCreateCustomerCommand(nationalID, in)
	if err != nil {
		return UpdateCustomerCommand{}, err
	}
	return UpdateCustomerCommand{nationalID: cmd.nationalID, profile: cmd.profile, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) NationalID() kernel.NationalID {
	return c.nationalID
}

func (c UpdateCustomerCommand) Profile() catalog.CustomerProfile {
	return c.profile
}

// DeleteCustomerCommand fails with a referential integrity violation while
// orders still reference the customer.
type DeleteCustomerCommand struct {
	nationalID kernel.NationalID
	guard      guard.ConstructorGuard
}

func NewDeleteCustomerCommand(nationalID string) (DeleteCustomerCommand, error) {
	nid, err := kernel.NewNationalID(nationalID)
	if err != nil {
		return DeleteCustomerCommand{}, err
	}
	return DeleteCustomerCommand{nationalID: nid, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

func (c DeleteCustomerCommand) NationalID() kernel.NationalID {
	return c.nationalID
}
