package errs

import "errors"

// Kind is the discriminant callers switch on instead of matching error text.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidValue
	KindInvalidQuery
	KindEmptyOrder
	KindInsufficientStock
	KindUniqueConstraintViolation
	KindReferentialIntegrityViolation
	KindUnauthorized
	KindTransactionConflict
)

var kindSentinels = []struct {
	kind     Kind
	sentinel error
}{
	{KindNotFound, ErrObjectNotFound},
	{KindInvalidQuery, ErrQueryIsInvalid},
	{KindEmptyOrder, ErrEmptyOrder},
	{KindInsufficientStock, ErrInsufficientStock},
	{KindUniqueConstraintViolation, ErrUniqueConstraintViolation},
	{KindReferentialIntegrityViolation, ErrReferentialIntegrityViolation},
	{KindUnauthorized, ErrUnauthorized},
	{KindTransactionConflict, ErrTransactionConflict},
	{KindInvalidValue, ErrValueIsInvalid},
	{KindInvalidValue, ErrValueIsOutOfRange},
	{KindInvalidValue, ErrValueIsRequired},
}

// KindOf classifies err by the first sentinel found in its chain.
// Joined errors are classified by their first recognised member.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, ks := range kindSentinels {
		if errors.Is(err, ks.sentinel) {
			return ks.kind
		}
	}
	return KindUnknown
}

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidValue:
		return "InvalidValue"
	case KindInvalidQuery:
		return "InvalidQuery"
	case KindEmptyOrder:
		return "EmptyOrder"
	case KindInsufficientStock:
		return "InsufficientStock"
	case KindUniqueConstraintViolation:
		return "UniqueConstraintViolation"
	case KindReferentialIntegrityViolation:
		return "ReferentialIntegrityViolation"
	case KindUnauthorized:
		return "Unauthorized"
	case KindTransactionConflict:
		return "TransactionConflict"
	case KindUnknown:
		return "Unknown"
	}
	return "Unknown"
}
