package subplot

import (
	"github.com/vdobler/subplot/data"
)

// A Builder turns a table into traces. The builders in package geom
// implement it.
type Builder interface {
	Traces(t *data.Table) ([]Trace, error)
}

// A Learner is a Builder which needs to see the full table before it is
// asked for the traces of the individual facets, e.g. to assign group
// colors or marker sizes consistently across all panels.
type Learner interface {
	Learn(t *data.Table) error
}

// BuilderFunc adapts an ordinary function to a Builder.
type BuilderFunc func(t *data.Table) ([]Trace, error)

// Traces calls f(t).
func (f BuilderFunc) Traces(t *data.Table) ([]Trace, error) { return f(t) }

// Float returns a pointer to v. It is used to set the optional gaps of
// FacetConfig and GridConfig.
func Float(v float64) *float64 { return &v }

func orDefault(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// FacetConfig controls FacetWrap. The zero value is a valid configuration.
type FacetConfig struct {
	// Rows and Cols fix the grid dimensions. Zero values are computed
	// from the number of facets.
	Rows, Cols int

	// Scales determines the axis ranges. The zero value means Shared.
	Scales Scales

	// HGap and VGap are the gaps between panels as fraction of the figure
	// size. Nil selects DefaultFacetHGap and DefaultFacetVGap.
	HGap, VGap *float64

	// Sorter orders the facet keys; nil means Lexical.
	Sorter Sorter

	// Bins cuts a numeric facet column into that many equally wide
	// intervals. Zero facets on the distinct values.
	Bins int

	// Title of the figure. If empty the title of Layout is used.
	Title string

	// Layout is the layout template, see ComposeOptions.
	Layout Layout
}

// FacetWrap builds a figure with one panel per distinct value of column
// col of t. The traces of each panel are built by b from the rows sharing
// that value. The panels are wrapped into a grid row by row.
func FacetWrap(t *data.Table, col string, b Builder, cfg FacetConfig) (*Figure, error) {
	var facets []Facet
	var err error
	if cfg.Bins > 0 {
		facets, err = PartitionBins(t, col, cfg.Bins)
	} else {
		facets, err = Partition(t, col, cfg.Sorter)
	}
	if err != nil {
		return nil, err
	}

	grid, err := NewGrid(len(facets), cfg.Rows, cfg.Cols,
		orDefault(cfg.HGap, DefaultFacetHGap), orDefault(cfg.VGap, DefaultFacetVGap))
	if err != nil {
		return nil, err
	}

	if l, ok := b.(Learner); ok {
		if err := l.Learn(t); err != nil {
			return nil, err
		}
	}

	panels := make([]PanelTraces, len(facets))
	for i, f := range facets {
		trs, err := b.Traces(f.Rows)
		if err != nil {
			return nil, &FacetError{Key: f.Key, Err: err}
		}
		panels[i] = PanelTraces{Key: f.Key, Traces: trs}
	}

	scales := cfg.Scales
	if scales == 0 {
		scales = Shared
	}
	return Compose(panels, grid, ComposeOptions{
		Title:          cfg.Title,
		Scales:         scales,
		Layout:         cfg.Layout,
		EdgeAxisTitles: true,
	})
}

// GridConfig controls NewGridFigure. The zero value is a valid
// configuration.
type GridConfig struct {
	Rows, Cols int

	// Scales determines the axis ranges. The zero value means Free as the
	// plots are unrelated.
	Scales Scales

	// HGap and VGap default to DefaultHGap and DefaultVGap.
	HGap, VGap *float64

	Title  string
	Layout Layout
}

// NewGridFigure arranges independently built single-panel figures into a
// grid. Each plot keeps its axis definitions and its title becomes the
// panel title. Multi-panel figures cannot be nested.
func NewGridFigure(plots []*Figure, cfg GridConfig) (*Figure, error) {
	for _, p := range plots {
		if p == nil {
			return nil, &GridError{N: len(plots), Rows: cfg.Rows, Cols: cfg.Cols, Err: ErrInvalidGrid}
		}
		if p.Composite() {
			return nil, ErrNestedFigure
		}
	}
	grid, err := NewGrid(len(plots), cfg.Rows, cfg.Cols,
		orDefault(cfg.HGap, DefaultHGap), orDefault(cfg.VGap, DefaultVGap))
	if err != nil {
		return nil, err
	}

	panels := make([]PanelTraces, len(plots))
	for i, p := range plots {
		layout := p.Layout
		if layout == nil {
			layout = Layout{}
		}
		panels[i] = PanelTraces{Key: layout.Title(), Traces: p.Traces, Layout: layout}
	}

	scales := cfg.Scales
	if scales == 0 {
		scales = Free
	}
	return Compose(panels, grid, ComposeOptions{
		Title:  cfg.Title,
		Scales: scales,
		Layout: cfg.Layout,
	})
}
