// Package identity models the operators allowed to use the service and the
// sessions they open. A session is referenced by an opaque Token that callers
// pass explicitly with every request.
package identity
