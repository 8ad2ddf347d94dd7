// Package errors holds the error kinds shared by the containers in this module,
// along with a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrKeyNotFound is returned when a lookup finds no live pair with an equal key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidArgument is returned when a key or value is nil (or points at nothing).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyCollection is returned when removing from a collection that holds no pairs.
	ErrEmptyCollection = errors.New("collection is empty")

	// ErrIndexOutOfRange is returned when a positional accessor is given an index
	// outside the live range of a collection.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of errors collected so far.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
