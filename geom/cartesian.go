package geom

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/vdobler/subplot"
	"github.com/vdobler/subplot/data"
)

// ----------------------------------------------------------------------------
// Scatter

// DefaultSizeRange is the range of marker sizes SizeBy maps to.
var DefaultSizeRange = [2]float64{4, 20}

// Scatter draws points at (X,Y).
type Scatter struct {
	X, Y string // X and Y are required.

	// Text is an optional column of hover texts.
	Text string

	// SizeBy is an optional numeric column mapped to the marker size.
	// The marker area grows linearly with the value. A SizeRange starting
	// at 0 maps the value 0 to size 0 so the area is proportional to the
	// value.
	SizeBy    string
	SizeRange [2]float64 // Defaults to DefaultSizeRange.

	// Mode is "markers" (default), "lines" or "lines+markers".
	Mode string

	// Name is the trace name if no Group is set.
	Name string

	Grouping
	Style

	sizes *subplot.Interval // Learned range of SizeBy.
}

// Learn records the groups and the SizeBy range of the full table.
// Anything learned from an earlier table is forgotten.
func (s *Scatter) Learn(t *data.Table) error {
	s.sizes = nil
	if err := s.Grouping.Learn(t); err != nil {
		return err
	}
	if s.SizeBy == "" {
		return nil
	}
	xs, err := t.Numeric(s.SizeBy)
	if err != nil {
		return err
	}
	sizes := subplot.UnsetInterval()
	sizes.Update(xs...)
	s.sizes = &sizes
	return nil
}

// Traces implements subplot.Builder.
func (s Scatter) Traces(t *data.Table) ([]subplot.Trace, error) {
	groups, err := s.split(t)
	if err != nil {
		return nil, err
	}
	mode := s.Mode
	if mode == "" {
		mode = "markers"
	}
	sizes := subplot.UnsetInterval()
	if s.sizes != nil {
		sizes = *s.sizes
	} else if s.SizeBy != "" {
		xs, err := t.Numeric(s.SizeBy)
		if err != nil {
			return nil, err
		}
		sizes.Update(xs...)
	}

	var traces []subplot.Trace
	for _, g := range groups {
		x, err := column(g.rows, s.X)
		if err != nil {
			return nil, err
		}
		y, err := column(g.rows, s.Y)
		if err != nil {
			return nil, err
		}
		tr := subplot.Trace{"type": "scatter", "mode": mode, "x": x, "y": y}
		if n := name(g, s.Name); n != "" {
			tr["name"] = n
		}

		marker := s.marker(g.k)
		if s.SizeBy != "" {
			vs, err := g.rows.Numeric(s.SizeBy)
			if err != nil {
				return nil, err
			}
			marker["size"] = values(s.mapSizes(vs, sizes))
		}
		if len(marker) > 0 {
			tr["marker"] = marker
		}
		if strings.Contains(mode, "lines") {
			if line := s.line(g.k); len(line) > 0 {
				tr["line"] = line
			}
		}
		if s.Text != "" {
			txt, err := g.rows.Strings(s.Text)
			if err != nil {
				return nil, err
			}
			tr["text"] = txt
		}
		s.apply(tr)
		traces = append(traces, tr)
	}
	return traces, nil
}

// mapSizes maps vs from the data range to the marker size range.
func (s Scatter) mapSizes(vs []float64, from subplot.Interval) []float64 {
	r := s.SizeRange
	if r == [2]float64{} {
		r = DefaultSizeRange
	}
	to := subplot.Interval{Min: r[0], Max: r[1]}
	trans := subplot.SqrtTrans
	if to.Min == 0 && from.Min >= 0 {
		trans = subplot.SqrtTransFix0
	}
	sizes := make([]float64, len(vs))
	for i, v := range vs {
		switch {
		case math.IsNaN(v):
			sizes[i] = math.NaN()
		case from.Min == from.Max:
			sizes[i] = (to.Min + to.Max) / 2
		default:
			sizes[i] = trans.Trans(from, to, v)
		}
	}
	return sizes
}

// ----------------------------------------------------------------------------
// Line

// Line connects the points (X,Y) in order of the x values by straight line
// segments. Category x values keep their data order.
type Line struct {
	X, Y string

	// Markers draws markers on top of the line.
	Markers bool

	Name string

	Grouping
	Style
}

// Traces implements subplot.Builder.
func (l Line) Traces(t *data.Table) ([]subplot.Trace, error) {
	groups, err := l.split(t)
	if err != nil {
		return nil, err
	}
	mode := "lines"
	if l.Markers {
		mode = "lines+markers"
	}

	var traces []subplot.Trace
	for _, g := range groups {
		rows := g.rows
		if xs, err := rows.Numeric(l.X); err == nil {
			idx := make([]int, len(xs))
			for i := range idx {
				idx[i] = i
			}
			sort.SliceStable(idx, func(i, j int) bool { return xs[idx[i]] < xs[idx[j]] })
			rows = rows.Select(idx)
		} else if !errors.Is(err, data.ErrTypeCast) {
			return nil, err
		}

		x, err := column(rows, l.X)
		if err != nil {
			return nil, err
		}
		y, err := numeric(rows, l.Y)
		if err != nil {
			return nil, err
		}
		tr := subplot.Trace{"type": "scatter", "mode": mode, "x": x, "y": y}
		if n := name(g, l.Name); n != "" {
			tr["name"] = n
		}
		if line := l.line(g.k); len(line) > 0 {
			tr["line"] = line
		}
		if marker := l.marker(g.k); l.Markers && len(marker) > 0 {
			tr["marker"] = marker
		}
		l.apply(tr)
		traces = append(traces, tr)
	}
	return traces, nil
}

// ----------------------------------------------------------------------------
// Bar

// Bar draws bars of height Y standing at X.
type Bar struct {
	X, Y string

	// Error is an optional column of error bar lengths.
	Error string

	// Horizontal draws bars from the y-axis to the right, X then holds
	// the categories shown on the y-axis.
	Horizontal bool

	// Mode is the way bars of different groups are arranged: "group"
	// (default), "stack", "relative" or "overlay".
	Mode string

	Name string

	Grouping
	Style
}

func (b Bar) layout(l subplot.Layout) {
	mode := b.Mode
	if mode == "" {
		mode = "group"
	}
	l["barmode"] = mode
}

// Traces implements subplot.Builder.
func (b Bar) Traces(t *data.Table) ([]subplot.Trace, error) {
	groups, err := b.split(t)
	if err != nil {
		return nil, err
	}
	var traces []subplot.Trace
	for _, g := range groups {
		x, err := column(g.rows, b.X)
		if err != nil {
			return nil, err
		}
		y, err := numeric(g.rows, b.Y)
		if err != nil {
			return nil, err
		}
		tr := subplot.Trace{"type": "bar", "x": x, "y": y}
		errorField := "error_y"
		if b.Horizontal {
			tr["x"], tr["y"] = y, x
			tr["orientation"] = "h"
			errorField = "error_x"
		}
		if b.Error != "" {
			e, err := numeric(g.rows, b.Error)
			if err != nil {
				return nil, err
			}
			tr[errorField] = map[string]interface{}{"type": "data", "array": e, "visible": true}
		}
		if n := name(g, b.Name); n != "" {
			tr["name"] = n
		}
		if marker := b.marker(g.k); len(marker) > 0 {
			tr["marker"] = marker
		}
		b.apply(tr)
		traces = append(traces, tr)
	}
	return traces, nil
}

// ----------------------------------------------------------------------------
// Box

// Box draws box plots of the distribution of Y, one per value of the
// optional category column X.
type Box struct {
	X, Y string

	Horizontal bool

	// Points selects the sample points drawn next to the box: "outliers"
	// (default), "suspectedoutliers", "all" or "none".
	Points string

	Name string

	Grouping
	Style
}

func (b Box) layout(l subplot.Layout) {
	l["boxmode"] = "group"
}

// Traces implements subplot.Builder.
func (b Box) Traces(t *data.Table) ([]subplot.Trace, error) {
	groups, err := b.split(t)
	if err != nil {
		return nil, err
	}
	var traces []subplot.Trace
	for _, g := range groups {
		y, err := numeric(g.rows, b.Y)
		if err != nil {
			return nil, err
		}
		tr := subplot.Trace{"type": "box", "y": y}
		if b.X != "" {
			x, err := g.rows.Strings(b.X)
			if err != nil {
				return nil, err
			}
			tr["x"] = x
		}
		if b.Horizontal {
			tr["x"], tr["y"] = tr["y"], tr["x"]
			if tr["y"] == nil {
				delete(tr, "y")
			}
			tr["orientation"] = "h"
		}
		switch b.Points {
		case "":
		case "none":
			tr["boxpoints"] = false
		default:
			tr["boxpoints"] = b.Points
		}
		if n := name(g, b.Name); n != "" {
			tr["name"] = n
		}
		if marker := b.marker(g.k); len(marker) > 0 {
			tr["marker"] = marker
		}
		b.apply(tr)
		traces = append(traces, tr)
	}
	return traces, nil
}

// ----------------------------------------------------------------------------
// Histogram

// Histogram counts the values of X in equally wide bins.
type Histogram struct {
	X string

	// Bins is the maximum number of bins; zero lets the renderer choose.
	Bins int

	// Norm normalizes the counts: "" (counts), "percent", "probability",
	// "density" or "probability density".
	Norm string

	Name string

	Grouping
	Style
}

func (h Histogram) layout(l subplot.Layout) {
	l["barmode"] = "overlay"
}

// Traces implements subplot.Builder.
func (h Histogram) Traces(t *data.Table) ([]subplot.Trace, error) {
	groups, err := h.split(t)
	if err != nil {
		return nil, err
	}
	var traces []subplot.Trace
	for _, g := range groups {
		x, err := numeric(g.rows, h.X)
		if err != nil {
			return nil, err
		}
		tr := subplot.Trace{"type": "histogram", "x": x}
		if h.Bins > 0 {
			tr["nbinsx"] = h.Bins
		}
		if h.Norm != "" {
			tr["histnorm"] = h.Norm
		}
		if n := name(g, h.Name); n != "" {
			tr["name"] = n
		}
		if marker := h.marker(g.k); len(marker) > 0 {
			tr["marker"] = marker
		}
		if h.Group != "" && h.Opacity == 0 {
			// Overlaid groups must stay visible.
			tr["opacity"] = 0.6
		}
		h.apply(tr)
		traces = append(traces, tr)
	}
	return traces, nil
}

// ----------------------------------------------------------------------------
// Heatmap

// Heatmap colors the cells of the grid spanned by the distinct values of
// X and Y by the value of Z. Cells without data stay empty, of several
// rows for the same cell the last one wins.
type Heatmap struct {
	X, Y, Z string

	// ColorScale names the color scale, e.g. "Viridis".
	ColorScale string
	HideScale  bool

	Name string
}

// Traces implements subplot.Builder.
func (h Heatmap) Traces(t *data.Table) ([]subplot.Trace, error) {
	if h.X == "" || h.Y == "" || h.Z == "" {
		return nil, ErrMissingColumn
	}
	xaxis, xkeys, xidx, err := levels(t, h.X)
	if err != nil {
		return nil, err
	}
	yaxis, ykeys, yidx, err := levels(t, h.Y)
	if err != nil {
		return nil, err
	}
	zs, err := t.Numeric(h.Z)
	if err != nil {
		return nil, err
	}

	grid := make([][]float64, len(yidx))
	for i := range grid {
		grid[i] = make([]float64, len(xidx))
		for j := range grid[i] {
			grid[i][j] = math.NaN()
		}
	}
	for i, z := range zs {
		xi, xok := xidx[xkeys[i]]
		yi, yok := yidx[ykeys[i]]
		if xok && yok {
			grid[yi][xi] = z
		}
	}
	z := make([]interface{}, len(grid))
	for i, row := range grid {
		z[i] = values(row)
	}

	tr := subplot.Trace{"type": "heatmap", "x": xaxis, "y": yaxis, "z": z}
	if h.ColorScale != "" {
		tr["colorscale"] = h.ColorScale
	}
	if h.HideScale {
		tr["showscale"] = false
	}
	if h.Name != "" {
		tr["name"] = h.Name
	}
	return []subplot.Trace{tr}, nil
}
