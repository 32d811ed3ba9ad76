package catalog

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrDeliveryPersonIsNotConstructed = errors.New("DeliveryPerson must be created via NewDeliveryPerson constructor")

type DeliveryPersonProfile struct {
	FirstNames string
	LastNames  string
	Phone      string
}

// DeliveryPerson is a courier orders are handed to.
type DeliveryPerson struct {
	nationalID kernel.NationalID
	profile    DeliveryPersonProfile
	guard      guard.ConstructorGuard
}

func NewDeliveryPerson(nationalID kernel.NationalID, profile DeliveryPersonProfile) (*DeliveryPerson, error) {
	if err := nationalID.Validate(); err != nil {
		return nil, err
	}

	d := &DeliveryPerson{nationalID: nationalID, guard: guard.NewConstructorGuard()}
	if err := d.Edit(profile); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *DeliveryPerson) Validate() error {
	if d == nil {
		return ErrDeliveryPersonIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryPersonIsNotConstructed)
}

func (d *DeliveryPerson) Edit(profile DeliveryPersonProfile) error {
	var errFirst, errLast, errPhone error
	profile.FirstNames, errFirst = requiredText("first names", profile.FirstNames, 100)
	profile.LastNames, errLast = requiredText("last names", profile.LastNames, 100)
	profile.Phone, errPhone = optionalText("phone", profile.Phone, 20)
	if err := errors.Join(errFirst, errLast, errPhone); err != nil {
		return err
	}

	d.profile = profile
	return nil
}

func (d *DeliveryPerson) NationalID() kernel.NationalID {
	return d.nationalID
}

func (d *DeliveryPerson) Profile() DeliveryPersonProfile {
	return d.profile
}

func (d *DeliveryPerson) FullName() string {
	return d.profile.FirstNames + " " + d.profile.LastNames
}
