package repository

import "errors"

// Common repository errors
var (
	// ErrNotFound is returned when no row matches the id and owner filters.
	// Absent rows and rows owned by another user are indistinguishable.
	ErrNotFound = errors.New("record not found")

	// ErrNoUser is returned when a provider auth call succeeds but carries
	// no user object
	ErrNoUser = errors.New("provider returned no user")

	// ErrNoSession is returned when a provider sign-in succeeds but carries
	// no session
	ErrNoSession = errors.New("provider returned no session")

	// ErrServiceKeyRequired is returned when the mirrored user row cannot be
	// inserted because neither a service-role client nor a session token is
	// available
	ErrServiceKeyRequired = errors.New("service role key or session token required")
)
