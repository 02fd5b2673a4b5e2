package collections

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/hasbyte1/go-arrayy/arr"
)

// Options configures path resolution and locale-aware sorting for a
// Collection. Every collection derived from another inherits its options.
type Options struct {
	// PathSeparator splits nested paths in Get, Set, Has and Remove.
	// Must be exactly one byte.
	PathSeparator string

	// Wildcard is the path segment that fans out over every element.
	Wildcard string

	// Locale is the BCP 47 tag used by [SortLocaleString].
	Locale string
}

// DefaultOptions returns the options used by [New], [From] and [Empty]:
// separator ".", wildcard "*", locale "en".
func DefaultOptions() Options {
	return Options{
		PathSeparator: ".",
		Wildcard:      "*",
		Locale:        "en",
	}
}

// Validate reports whether o is usable.
func (o Options) Validate() error {
	if len(o.PathSeparator) != 1 {
		return fmt.Errorf("%w: path separator must be a single byte, got %q", ErrInvalidOption, o.PathSeparator)
	}
	if o.Wildcard == "" {
		return fmt.Errorf("%w: wildcard must not be empty", ErrInvalidOption)
	}
	if strings.Contains(o.Wildcard, o.PathSeparator) {
		return fmt.Errorf("%w: wildcard %q contains the path separator", ErrInvalidOption, o.Wildcard)
	}
	if _, err := language.Parse(o.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalidOption, o.Locale, err)
	}
	return nil
}

func (o Options) notation() arr.Notation {
	return arr.Notation{Separator: o.PathSeparator, Wildcard: o.Wildcard}
}
