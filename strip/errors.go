package strip

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by Init when the triangle list is structurally
	// valid but produces zero faces.
	ErrEmpty = errors.New("strip: adjacency has no faces")

	// ErrNotInitialized is returned by Compute when called before a
	// successful Init.
	ErrNotInitialized = errors.New("strip: Compute called before a successful Init")
)

// stripErrorf wraps sentinel with method and formatted context, keeping it
// matchable via errors.Is(err, sentinel).
func stripErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("strip.%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
