package data

import (
	"fmt"
)

// classedError is a sentinel that also names its metric class.
type classedError struct {
	msg   string
	class string
}

func (e *classedError) Error() string      { return e.msg }
func (e *classedError) ErrorClass() string { return e.class }

// Shared sentinel errors for data-layer repositories.
var (
	// ErrNotificationNotFound is returned when a notification id does not exist in the store.
	ErrNotificationNotFound error = &classedError{msg: "notification not found", class: "not_found"}
	// ErrStoreUnavailable is returned when the backing store cannot be reached.
	ErrStoreUnavailable error = &classedError{msg: "notification store unavailable", class: "store_unavailable"}
	// ErrCreateRequestRequired is returned when Create is called with a nil request.
	ErrCreateRequestRequired error = &classedError{msg: "create notification request is required", class: "invalid_argument"}
)

// unavailable joins ErrStoreUnavailable with the transport error so callers can match either.
func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
