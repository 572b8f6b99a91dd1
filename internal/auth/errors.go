package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown username and for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStoreNil is returned when the service is built without an admin store.
	ErrStoreNil = errors.New("admin store is nil")
)
