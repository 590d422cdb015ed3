package geom

import (
	"errors"
	"math"
	"sort"

	"github.com/vdobler/subplot"
	"github.com/vdobler/subplot/data"
)

// Shape is a marker symbol.
type Shape int

const (
	Circle Shape = iota
	Square
	Diamond
	Cross
	X
	TriangleUp
	TriangleDown
	Star
	Pentagon
	Hexagon
)

// String returns the symbol name of s as used in trace documents.
func (s Shape) String() string {
	return []string{"circle", "square", "diamond", "cross", "x",
		"triangle-up", "triangle-down", "star", "pentagon", "hexagon"}[int(s)%10]
}

// Dash is a line dash pattern.
type Dash int

const (
	Solid Dash = iota
	Dot
	Dashed
	LongDash
	DashDot
	LongDashDot
)

// String returns the dash name of d as used in trace documents.
func (d Dash) String() string {
	return []string{"solid", "dot", "dash", "longdash", "dashdot", "longdashdot"}[int(d)%6]
}

// Style controls the appearance of the traces of a builder. Colors, Shapes
// and Dashes are indexed by group and wrap around; empty slices leave the
// choice to the renderer. Zero values of the scalar fields select the
// renderer's defaults.
type Style struct {
	Colors  []subplot.RGB
	Shapes  []Shape
	Dashes  []Dash
	Opacity float64 // Opacity in (0,1].
	Size    float64 // Size of markers.
	Width   float64 // Width of lines.
}

// marker returns the marker document for group k.
func (st Style) marker(k int) map[string]interface{} {
	m := map[string]interface{}{}
	if len(st.Colors) > 0 {
		m["color"] = st.Colors[k%len(st.Colors)].String()
	}
	if len(st.Shapes) > 0 {
		m["symbol"] = st.Shapes[k%len(st.Shapes)].String()
	}
	if st.Size > 0 {
		m["size"] = st.Size
	}
	return m
}

// line returns the line document for group k.
func (st Style) line(k int) map[string]interface{} {
	m := map[string]interface{}{}
	if len(st.Colors) > 0 {
		m["color"] = st.Colors[k%len(st.Colors)].String()
	}
	if len(st.Dashes) > 0 {
		m["dash"] = st.Dashes[k%len(st.Dashes)].String()
	}
	if st.Width > 0 {
		m["width"] = st.Width
	}
	return m
}

// apply sets the opacity of tr.
func (st Style) apply(tr subplot.Trace) {
	if st.Opacity > 0 && st.Opacity <= 1 {
		tr["opacity"] = st.Opacity
	}
}

// ----------------------------------------------------------------------------
// Grouping

// Grouping splits the rows of a table into groups by the values of column
// Group; every group becomes its own trace. Groups are sorted by SortGroups
// which defaults to lexical order.
//
// Learning the full table before faceting keeps the group index, and thus
// the group's style, the same in all panels.
type Grouping struct {
	Group      string
	SortGroups subplot.Sorter

	index map[string]int
}

// Learn records the order of all groups in t.
func (g *Grouping) Learn(t *data.Table) error {
	g.index = nil
	if g.Group == "" {
		return nil
	}
	facets, err := subplot.Partition(t, g.Group, g.SortGroups)
	if err != nil {
		return err
	}
	g.index = make(map[string]int, len(facets))
	for i, f := range facets {
		g.index[f.Key] = i
	}
	return nil
}

type group struct {
	key  string
	k    int // k is the style index.
	rows *data.Table
}

// split partitions t into groups. Without group column the whole table
// forms one group with key "".
func (g *Grouping) split(t *data.Table) ([]group, error) {
	if g.Group == "" {
		return []group{{rows: t}}, nil
	}
	facets, err := subplot.Partition(t, g.Group, g.SortGroups)
	if err != nil {
		return nil, err
	}
	groups := make([]group, len(facets))
	for i, f := range facets {
		k := i
		if idx, ok := g.index[f.Key]; ok {
			k = idx
		}
		groups[i] = group{key: f.Key, k: k, rows: f.Rows}
	}
	return groups, nil
}

// name returns the trace name of a group.
func name(g group, fallback string) string {
	if g.key != "" {
		return g.key
	}
	return fallback
}

// ----------------------------------------------------------------------------
// Column helpers

// ErrMissingColumn is returned if a required column is not configured.
var ErrMissingColumn = errors.New("geom: required column not set")

// values turns xs into a trace field. Missing values are encoded as null.
func values(xs []float64) interface{} {
	clean := true
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			clean = false
			break
		}
	}
	if clean {
		return xs
	}
	vs := make([]interface{}, len(xs))
	for i, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			vs[i] = x
		}
	}
	return vs
}

// numeric returns the numeric column col of t as a trace field.
func numeric(t *data.Table, col string) (interface{}, error) {
	if col == "" {
		return nil, ErrMissingColumn
	}
	xs, err := t.Numeric(col)
	if err != nil {
		return nil, err
	}
	return values(xs), nil
}

// column returns column col of t as a trace field: numeric if possible,
// as category labels otherwise.
func column(t *data.Table, col string) (interface{}, error) {
	if col == "" {
		return nil, ErrMissingColumn
	}
	xs, err := t.Numeric(col)
	if err == nil {
		return values(xs), nil
	}
	if !errors.Is(err, data.ErrTypeCast) {
		return nil, err
	}
	return t.Strings(col)
}

// levels returns the distinct values of column col in axis order: numeric
// columns sorted ascending, other columns in order of appearance. The
// returned index maps the string form of each cell to its level.
func levels(t *data.Table, col string) (axis interface{}, keys []string, index map[string]int, err error) {
	keys, err = t.Strings(col)
	if err != nil {
		return nil, nil, nil, err
	}
	var uniq []string
	seen := make(map[string]bool)
	for _, k := range keys {
		if k != "" && !seen[k] {
			seen[k] = true
			uniq = append(uniq, k)
		}
	}

	index = make(map[string]int, len(uniq))
	if xs, nerr := t.Numeric(col); nerr == nil {
		byKey := make(map[string]float64, len(xs))
		for i, x := range xs {
			byKey[keys[i]] = x
		}
		sort.SliceStable(uniq, func(i, j int) bool { return byKey[uniq[i]] < byKey[uniq[j]] })
		nums := make([]float64, len(uniq))
		for i, k := range uniq {
			nums[i] = byKey[k]
			index[k] = i
		}
		return nums, keys, index, nil
	}
	for i, k := range uniq {
		index[k] = i
	}
	return uniq, keys, index, nil
}
