package subplot

import (
	"fmt"
	"strconv"
)

// Rect is a rectangle in normalized figure coordinates: (0,0) is the
// bottom-left and (1,1) the top-right corner of the figure.
type Rect struct {
	X0, X1 float64
	Y0, Y1 float64
}

// Contains reports whether r lies completely inside s.
func (s Rect) Contains(r Rect) bool {
	return r.X0 >= s.X0 && r.X1 <= s.X1 && r.Y0 >= s.Y0 && r.Y1 <= s.Y1
}

// Overlaps reports whether r and s share an interior point.
func (s Rect) Overlaps(r Rect) bool {
	return r.X0 < s.X1 && s.X0 < r.X1 && r.Y0 < s.Y1 && s.Y0 < r.Y1
}

func (s Rect) String() string {
	return fmt.Sprintf("[%.3f:%.3f]x[%.3f:%.3f]", s.X0, s.X1, s.Y0, s.Y1)
}

// ----------------------------------------------------------------------------
// Panel

// A Panel is one cell of a grid which receives traces. Panels are numbered
// in row-major order starting at the top-left cell.
type Panel struct {
	Index    int
	Row, Col int
	Domain   Rect
	Title    string
}

// suffix is appended to axis and subplot identifiers: the first panel
// uses the bare identifier, panel k the identifier followed by k+1.
func (p Panel) suffix() string {
	if p.Index == 0 {
		return ""
	}
	return strconv.Itoa(p.Index + 1)
}

// XAxis returns the x-axis reference of p as used in a cartesian trace,
// e.g. "x" or "x3".
func (p Panel) XAxis() string { return "x" + p.suffix() }

// YAxis returns the y-axis reference of p, e.g. "y" or "y3".
func (p Panel) YAxis() string { return "y" + p.suffix() }

// XAxisKey returns the layout key of the x-axis of p, e.g. "xaxis3".
func (p Panel) XAxisKey() string { return "xaxis" + p.suffix() }

// YAxisKey returns the layout key of the y-axis of p, e.g. "yaxis3".
func (p Panel) YAxisKey() string { return "yaxis" + p.suffix() }

// SubplotKey returns the identifier of the non-cartesian subplot of p for
// family f, e.g. "scene2" or "polar4". It is used as both the trace
// reference and the layout key. Domain and cartesian panels have none.
func (p Panel) SubplotKey(f Family) string {
	base := f.subplotBase()
	if base == "" {
		return ""
	}
	return base + p.suffix()
}
