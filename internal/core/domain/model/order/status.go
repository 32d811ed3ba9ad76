package order

import (
	"fmt"

	"bookstore/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ──> Delivered
//
// Cancelled exists so that records written by other tools can be loaded, but no
// operation in this package moves an order into it.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	Pending
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// ParseStatus is the inverse of String for valid statuses.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s != Pending && s != Delivered && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Deliver returns Delivered when the transition is allowed.
func (s Status) Deliver() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}
