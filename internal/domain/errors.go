package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates the request contradicts stored state,
	// e.g. an illegal order status transition.
	ErrConflict = errors.New("conflict")
)
