package arr

import "errors"

// ErrMismatchedLengths is returned by [Combine] when keys and values differ
// in length.
var ErrMismatchedLengths = errors.New("arr: keys and values must have the same length")
