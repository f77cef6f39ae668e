package meshadj

import (
	"errors"
	"fmt"
)

// Sentinel errors of this package; Build returns the first two. Wrap them
// with fmt.Errorf's %w (see meshadjErrorf) so callers can match with
// errors.Is regardless of the attached context.
var (
	// ErrBadInput is returned when the triangle list is structurally
	// invalid: nil, not a multiple of 3, or containing a degenerate
	// triangle whose two shared vertices don't actually coincide with
	// another face's edge.
	ErrBadInput = errors.New("meshadj: bad input")

	// ErrNonManifold is returned when an undirected edge is shared by
	// three or more faces.
	ErrNonManifold = errors.New("meshadj: non-manifold edge")

	// ErrNoSuchEdge names an edge ordinal outside [0,3). No function of
	// this package returns it: Face.Neighbour reports no error and panics
	// on such an ordinal.
	ErrNoSuchEdge = errors.New("meshadj: no such edge")
)

// meshadjErrorf wraps sentinel with method and formatted context, keeping
// it matchable via errors.Is(err, sentinel).
func meshadjErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("meshadj.%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
