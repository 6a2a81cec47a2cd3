// Package common defines the sentinel errors shared across the
// fleamarket core. Callers should use errors.Is to match these values;
// the core returns them as typed failures and never renders or logs them
// itself.
package common

import "errors"

var (
	// Registration and login.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// secret; callers must not be able to tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Session-gated operations.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotAuthorized    = errors.New("not authorized")

	// Referential lookups.
	ErrItemNotFound   = errors.New("item not found")
	ErrSellerNotFound = errors.New("seller not found")

	// Business-rule rejections.
	ErrSelfInterest = errors.New("cannot express interest in own item")
	ErrSelfDeletion = errors.New("admin cannot delete own account")

	// ErrUnknownEntityKind indicates a caller bug, not a user-facing
	// condition.
	ErrUnknownEntityKind = errors.New("unknown entity kind")

	// ErrStorage wraps I/O and encoding failures of the record store.
	ErrStorage = errors.New("storage error")
)
