// Package kernel holds the value objects shared by every aggregate in the
// bookstore domain: national identity numbers, e-mail addresses, the clock
// abstraction and the domain event contract.
//
// Value objects are immutable and their zero value is invalid; construct them
// through NewNationalID, NewEmail and friends.
package kernel
