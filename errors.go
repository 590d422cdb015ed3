package subplot

import (
	"errors"
	"fmt"
)

var (
	// ErrGridTooSmall is returned if a grid has fewer cells than panels.
	ErrGridTooSmall = errors.New("grid too small")

	// ErrInvalidGrid is returned for zero panels or negative grid dimensions.
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrInvalidGap is returned if a gap fraction lies outside [0,1) or is
	// not smaller than the cell it applies to.
	ErrInvalidGap = errors.New("invalid gap")

	// ErrUnsupportedTraceKind is returned for traces which cannot be bound
	// to a panel, either because their kind is unknown or because it does
	// not match the family of the other panels.
	ErrUnsupportedTraceKind = errors.New("unsupported trace kind for panel")

	// ErrNestedFigure is returned if a multi-panel figure is placed into
	// a single panel of another grid.
	ErrNestedFigure = errors.New("cannot nest multi-panel figure")
)

// GridError describes self-contradictory grid options.
type GridError struct {
	N          int     // N is the number of panels requested.
	Rows, Cols int     // Rows and Cols as resolved so far.
	HGap, VGap float64 // HGap and VGap as given.
	Err        error
}

func (e *GridError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidGap):
		return fmt.Sprintf("subplot: %s: hgap=%g vgap=%g for %dx%d grid",
			e.Err, e.HGap, e.VGap, e.Rows, e.Cols)
	}
	return fmt.Sprintf("subplot: %s: %d panels in %dx%d grid", e.Err, e.N, e.Rows, e.Cols)
}

func (e *GridError) Unwrap() error { return e.Err }

// TraceKindError reports a trace which cannot be placed into a panel.
type TraceKindError struct {
	Kind  string // Kind is the trace's type discriminator.
	Panel int    // Panel is the index of the target panel or -1.
	Err   error
}

func (e *TraceKindError) Error() string {
	if e.Panel < 0 {
		return fmt.Sprintf("subplot: trace type %q: %s", e.Kind, e.Err)
	}
	return fmt.Sprintf("subplot: trace type %q in panel %d: %s", e.Kind, e.Panel, e.Err)
}

func (e *TraceKindError) Unwrap() error { return e.Err }

// FacetError attaches the facet key of a failed panel to the original error.
type FacetError struct {
	Key string
	Err error
}

func (e *FacetError) Error() string {
	return fmt.Sprintf("subplot: facet %q: %v", e.Key, e.Err)
}

func (e *FacetError) Unwrap() error { return e.Err }
