package container

import (
	"errors"
	"fmt"

	"github.com/amp-labs/magiccontainer/logger"
)

var (
	// ErrNotFound is returned by Remove when the value is not in the store.
	ErrNotFound = errors.New("element not found in container")

	// ErrEndOfSequence is returned when advancing a cursor that is already exhausted.
	ErrEndOfSequence = errors.New("cursor advanced beyond the last element")

	// ErrOutOfRange is returned when reading a cursor that does not point at an element.
	ErrOutOfRange = errors.New("cursor is out of range")

	// ErrCrossContainer is returned when assigning between cursors bound to
	// different stores (or, for side-cross cursors, different captured lengths).
	ErrCrossContainer = errors.New("cursors are bound to different containers")

	// ErrInvalidComparison is returned when ordering side-cross cursors that
	// cannot be ordered, e.g. because one of them is exhausted.
	ErrInvalidComparison = errors.New("invalid cursor comparison")
)

// Cursor kind names, used in error messages and log attributes.
const (
	kindAscending = "ascending"
	kindCross     = "side-cross"
	kindPrime     = "prime"
)

func errNotFound(value, size int) error {
	return logger.AnnotateError(
		fmt.Errorf("%w: %d", ErrNotFound, value),
		"value", value, "size", size)
}

func errEndOfSequence(kind string, position, size int) error {
	return logger.AnnotateError(
		fmt.Errorf("%w: %s cursor at position %d of %d", ErrEndOfSequence, kind, position, size),
		"cursor", kind, "position", position, "size", size)
}

func errOutOfRange(kind string, position, size int) error {
	return logger.AnnotateError(
		fmt.Errorf("%w: %s cursor at position %d of %d", ErrOutOfRange, kind, position, size),
		"cursor", kind, "position", position, "size", size)
}

func errCrossContainer(kind string) error {
	return logger.AnnotateError(
		fmt.Errorf("%w: cannot assign %s cursor", ErrCrossContainer, kind),
		"cursor", kind)
}

func errInvalidComparison(kind, reason string) error {
	return logger.AnnotateError(
		fmt.Errorf("%w: %s cursor %s", ErrInvalidComparison, kind, reason),
		"cursor", kind)
}
