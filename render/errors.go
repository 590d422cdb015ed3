// Package render turns figures into documents: JSON, standalone HTML pages
// and static images.
//
// The JSON and HTML backends keep every trace kind. The image backend
// draws cartesian figures only: scatter markers and lines, bars, box plots
// and histograms, arranged in the panels of the figure.
package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for unknown output formats.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrUnsupportedKind is returned if a backend cannot draw a trace.
	ErrUnsupportedKind = errors.New("unsupported trace kind")
)

// Error is the error returned by all backends.
type Error struct {
	Op     string // Op is the failing step, e.g. "encode" or "write".
	Format Format
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("render: %s %s: %v", e.Op, e.Format, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Format is an output format.
type Format int

const (
	FormatJSON Format = iota
	FormatHTML
	FormatPNG
	FormatJPEG
	FormatTIFF
	FormatSVG
	FormatPDF
	FormatEPS
)

var formatNames = []string{"json", "html", "png", "jpeg", "tiff", "svg", "pdf", "eps"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// Image reports whether f is drawn by the image backend.
func (f Format) Image() bool { return f >= FormatPNG && f <= FormatEPS }

// ParseFormat parses a format name or file extension like "jpg" or
// ".tif", case insensitive.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	switch s {
	case "jpg":
		return FormatJPEG, nil
	case "tif":
		return FormatTIFF, nil
	case "htm":
		return FormatHTML, nil
	}
	for i, name := range formatNames {
		if s == name {
			return Format(i), nil
		}
	}
	return 0, &Error{Op: "parse", Format: -1, Err: fmt.Errorf("%w %q", ErrUnsupportedFormat, s)}
}

// FormatOf returns the format selected by the extension of path.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}
