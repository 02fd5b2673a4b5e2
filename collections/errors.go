package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrInvalidInput is returned when a constructor is given data that is
	// neither a collection nor convertible into one, such as a bare number.
	ErrInvalidInput = errors.New("collections: input cannot be converted to a collection")

	// ErrInvalidOption is returned by [Options.Validate] and by sort helpers
	// given an unknown direction or flag.
	ErrInvalidOption = errors.New("collections: invalid option")

	// ErrInvalidRange is returned by [Range] for a zero step or bounds of
	// mixed kinds.
	ErrInvalidRange = errors.New("collections: invalid range")

	// ErrInvalidChunkSize is returned when Chunk or Split is called with a
	// size below 1.
	ErrInvalidChunkSize = errors.New("collections: chunk size must be greater than 0")

	// ErrMismatchedLengths is returned by ReplaceAllKeys, ReplaceAllValues
	// and [Combine] when keys and values differ in length.
	ErrMismatchedLengths = errors.New("collections: keys and values must have the same length")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)

// DecodeError reports input in a serialised format that could not be
// turned into a collection. It matches [ErrInvalidInput].
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return "collections: invalid " + e.Format + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrInvalidInput }

var errNotContainer = errors.New("top-level value must be an object or an array")
