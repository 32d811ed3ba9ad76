package catalog

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// CustomerProfile is the editable part of a customer record.
type CustomerProfile struct {
	FirstNames string
	LastNames  string
	Address    string
	District   string
	Email      kernel.Email
	Phone      string
}

// Customer is identified by national id; the e-mail address is unique as well,
// which the store enforces.
type Customer struct {
	nationalID kernel.NationalID
	profile    CustomerProfile
	guard      guard.ConstructorGuard
}

func NewCustomer(nationalID kernel.NationalID, profile CustomerProfile) (*Customer, error) {
	if err := nationalID.Validate(); err != nil {
		return nil, err
	}

	c := &Customer{nationalID: nationalID, guard: guard.NewConstructorGuard()}
	if err := c.Edit(profile); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) Edit(profile CustomerProfile) error {
	var errFirst, errLast, errAddr, errDistrict, errPhone error
	profile.FirstNames, errFirst = requiredText("first names", profile.FirstNames, 100)
	profile.LastNames, errLast = requiredText("last names", profile.LastNames, 100)
	profile.Address, errAddr = optionalText("address", profile.Address, 255)
	profile.District, errDistrict = optionalText("district", profile.District, 100)
	profile.Phone, errPhone = optionalText("phone", profile.Phone, 20)

	if err := errors.Join(errFirst, errLast, errAddr, errDistrict, errPhone, profile.Email.Validate()); err != nil {
		return err
	}

	c.profile = profile
	return nil
}

func (c *Customer) NationalID() kernel.NationalID {
	return c.nationalID
}

func (c *Customer) Profile() CustomerProfile {
	return c.profile
}

func (c *Customer) FullName() string {
	return c.profile.FirstNames + " " + c.profile.LastNames
}
