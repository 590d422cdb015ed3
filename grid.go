package subplot

import "math"

// Default gaps between grid cells as fraction of the figure size.
const (
	DefaultHGap = 0.1
	DefaultVGap = 0.1

	// Facets sit closer together as they share their axes.
	DefaultFacetHGap = 0.05
	DefaultFacetVGap = 0.1
)

// Cell is one cell of a grid.
type Cell struct {
	Row, Col int
	Domain   Rect
}

// Grid is a regular layout of Rows x Cols cells of which the first N
// (in row-major order) hold a panel.
type Grid struct {
	N          int
	Rows, Cols int
	HGap, VGap float64
}

// NewGrid determines the shape of a grid holding n panels. A rows or cols
// value of 0 requests automatic sizing: if only one dimension is given the
// other is ceil(n/given), if none is given the grid is near-square with
// cols = ceil(sqrt(n)) and rows = ceil(n/cols).
//
// The gaps hgap and vgap are fractions of the figure width and height
// removed from every cell; they must lie in [0,1) and be smaller than the
// cell they apply to.
func NewGrid(n, rows, cols int, hgap, vgap float64) (*Grid, error) {
	g := &Grid{N: n, Rows: rows, Cols: cols, HGap: hgap, VGap: vgap}
	if n < 1 || rows < 0 || cols < 0 {
		return nil, g.error(ErrInvalidGrid)
	}

	switch {
	case rows > 0 && cols > 0:
		if rows*cols < n {
			return nil, g.error(ErrGridTooSmall)
		}
	case rows > 0:
		g.Cols = ceilDiv(n, rows)
	case cols > 0:
		g.Rows = ceilDiv(n, cols)
	default:
		g.Cols = int(math.Ceil(math.Sqrt(float64(n))))
		g.Rows = ceilDiv(n, g.Cols)
	}

	if !(hgap >= 0 && hgap < 1) || !(vgap >= 0 && vgap < 1) {
		return nil, g.error(ErrInvalidGap)
	}
	if hgap >= 1/float64(g.Cols) || vgap >= 1/float64(g.Rows) {
		return nil, g.error(ErrInvalidGap)
	}
	return g, nil
}

func (g *Grid) error(err error) error {
	return &GridError{N: g.N, Rows: g.Rows, Cols: g.Cols, HGap: g.HGap, VGap: g.VGap, Err: err}
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// Domain returns the rectangle of cell (row, col). Row 0 is the top row.
func (g *Grid) Domain(row, col int) Rect {
	w, h := 1/float64(g.Cols), 1/float64(g.Rows)
	return Rect{
		X0: float64(col)*w + g.HGap/2,
		X1: float64(col+1)*w - g.HGap/2,
		Y0: 1 - float64(row+1)*h + g.VGap/2,
		Y1: 1 - float64(row)*h - g.VGap/2,
	}
}

// Cells returns all Rows*Cols cells in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cells = append(cells, Cell{Row: r, Col: c, Domain: g.Domain(r, c)})
		}
	}
	return cells
}

// Panels returns the N panels of g.
func (g *Grid) Panels() []Panel {
	panels := make([]Panel, g.N)
	for i := range panels {
		r, c := i/g.Cols, i%g.Cols
		panels[i] = Panel{Index: i, Row: r, Col: c, Domain: g.Domain(r, c)}
	}
	return panels
}

// Blank returns the cells which do not hold a panel.
func (g *Grid) Blank() []Cell {
	return g.Cells()[g.N:]
}

// lowest reports whether no panel lies below panel i.
func (g *Grid) lowest(i int) bool {
	return i+g.Cols >= g.N
}
