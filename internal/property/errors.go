package property

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors for the property package.
//
//	if errors.Is(err, property.ErrNotFound) {
//	    // 404
//	}
var (
	// ErrNotFound is returned when no listing has the requested id.
	ErrNotFound = errors.New("property: not found")

	// ErrEmptyCollection is returned by Stats when there is nothing to aggregate.
	ErrEmptyCollection = errors.New("property: collection is empty")

	// ErrInvalidProperty is returned when a listing fails validation.
	ErrInvalidProperty = errors.New("property: invalid")
)

// notFound wraps ErrNotFound with the requested id.
func notFound(id int) error {
	return fmt.Errorf("%w: property %d not found", ErrNotFound, id)
}

// ValidationError lists the fields that failed validation, keyed by JSON name.
// It matches ErrInvalidProperty under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, e.Fields[name])
	}
	return ErrInvalidProperty.Error() + ": " + strings.Join(msgs, " ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidProperty
}
