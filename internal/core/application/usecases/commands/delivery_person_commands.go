package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/catalog"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var (
	ErrCreateDeliveryPersonCommandIsNotConstructed = errors.New("CreateDeliveryPersonCommand must be created via NewCreateDeliveryPersonCommand constructor")
	ErrUpdateDeliveryPersonCommandIsNotConstructed = errors.New("UpdateDeliveryPersonCommand must be created via NewUpdateDeliveryPersonCommand constructor")
	ErrDeleteDeliveryPersonCommandIsNotConstructed = errors.New("DeleteDeliveryPersonCommand must be created via NewDeleteDeliveryPersonCommand constructor")
)

type CreateDeliveryPersonCommand struct {
	nationalID kernel.NationalID
	profile    catalog.DeliveryPersonProfile
	guard      guard.ConstructorGuard
}

func NewCreateDeliveryPersonCommand(
	nationalID string,
	profile catalog.DeliveryPersonProfile,
) (CreateDeliveryPersonCommand, error) {
	nid, err := kernel.NewNationalID(nationalID)
	if err != nil {
		return CreateDeliveryPersonCommand{}, err
	}
	return CreateDeliveryPersonCommand{nationalID: nid, profile: profile, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryPersonCommandIsNotConstructed)
}

func (c CreateDeliveryPersonCommand) NationalID() kernel.NationalID {
	return c.nationalID
}

func (c CreateDeliveryPersonCommand) Profile() catalog.DeliveryPersonProfile {
	return c.profile
}

type UpdateDeliveryPersonCommand struct {
	nationalID kernel.NationalID
	profile    catalog.DeliveryPersonProfile
	guard      guard.ConstructorGuard
}

func NewUpdateDeliveryPersonCommand(
	nationalID string,
	profile catalog.DeliveryPersonProfile,
) (UpdateDeliveryPersonCommand, error) {
	nid, err := kernel.NewNationalID(nationalID)
	if err != nil {
		return UpdateDeliveryPersonCommand{}, err
	}
	return UpdateDeliveryPersonCommand{nationalID: nid, profile: profile, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryPersonCommandIsNotConstructed)
}

func (c UpdateDeliveryPersonCommand) NationalID() kernel.NationalID {
	return c.nationalID
}

func (c UpdateDeliveryPersonCommand) Profile() catalog.DeliveryPersonProfile {
	return c.profile
}

// DeleteDeliveryPersonCommand removes the person; their orders keep existing
// without a delivery person.
type DeleteDeliveryPersonCommand struct {
	nationalID kernel.NationalID
	guard      guard.ConstructorGuard
}

func NewDeleteDeliveryPersonCommand(nationalID string) (DeleteDeliveryPersonCommand, error) {
	nid, err := kernel.NewNationalID(nationalID)
	if err != nil {
		return DeleteDeliveryPersonCommand{}, err
	}
	return DeleteDeliveryPersonCommand{nationalID: nid, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryPersonCommandIsNotConstructed)
}

func (c DeleteDeliveryPersonCommand) NationalID() kernel.NationalID {
	return c.nationalID
}
