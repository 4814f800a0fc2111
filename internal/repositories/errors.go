package repositories

import "errors"

// ErrNotFound is returned when a referenced record does not exist in its
// collection.
var ErrNotFound = errors.New("record not found")

// IsNotFoundError reports whether err indicates a missing record.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
