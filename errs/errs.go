// Package errs defines the sentinel errors returned by tsblock packages.
//
// Errors are wrapped with additional context using fmt.Errorf and the %w verb,
// so callers should compare with errors.Is:
//
//	col, err := c.Region(offset, length)
//	if errors.Is(err, errs.ErrOutOfBounds) {
//	    // wrong index
//	}
//	if errors.Is(err, errs.ErrUnsupported) {
//	    // wrong encoding for this operation, materialize first
//	}
package errs

import "errors"

var (
	// ErrInvalidArgument is returned when a constructor or option receives arguments
	// violating its invariants (negative offsets or counts, backing arrays shorter
	// than the requested window, a run-length value with more than one position).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfBounds is returned when a position, offset or length lies outside
	// the valid range of a column or of a positions buffer.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrUnsupported is returned when an operation cannot be honored by the
	// column's encoding, e.g. SetNull on a dictionary column or bulk array
	// access on a run-length column.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrTypeMismatch is returned (or panicked with, for single-value accessors)
	// when an accessor is not valid for the column's data type.
	ErrTypeMismatch = errors.New("type mismatch")
)
