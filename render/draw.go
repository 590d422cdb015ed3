package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/vdobler/subplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Axis

// axis maps the values of one panel axis onto the unit interval. Its
// scale holds the range in data units; on category axes the position of a
// label is its index.
type axis struct {
	*subplot.Scale
	title   string
	fixed   bool   // range given by the layout
	matches string // id of the axis whose range is shared
	cats    []string
	index   map[string]int
}

func newAxis(l subplot.Layout, key string) *axis {
	a := &axis{
		Scale: subplot.NewScale(),
		title: l.AxisTitle(key),
		index: make(map[string]int),
	}
	m, _ := l[key].(map[string]interface{})
	if t, _ := m["type"].(string); t == "log" {
		a.ScaleType = subplot.Logarithmic
	}
	a.matches, _ = m["matches"].(string)
	if r, ok := subplot.Numbers(m["range"]); ok && len(r) == 2 && r[0] < r[1] {
		a.Min, a.Max, a.fixed = r[0], r[1], true
		if a.log() {
			// Ranges of log axes are given in log10 units.
			a.Min, a.Max = math.Pow(10, r[0]), math.Pow(10, r[1])
		}
	}
	return a
}

func (a *axis) log() bool { return a.ScaleType == subplot.Logarithmic }

// category returns the position of label s, new labels are appended.
func (a *axis) category(s string) float64 {
	k, ok := a.index[s]
	if !ok {
		k = len(a.cats)
		a.index[s] = k
		a.cats = append(a.cats, s)
	}
	return float64(k)
}

// values returns the positions of the trace field v. A nil v yields the
// positions 0, 1, ... n-1. Non-positive values cannot be shown on log axes
// and become NaN.
func (a *axis) values(v interface{}, n int) []float64 {
	if v == nil {
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = float64(i)
		}
		return xs
	}
	if xs, ok := subplot.Numbers(v); ok {
		if !a.log() {
			return xs
		}
		ps := make([]float64, len(xs))
		for i, x := range xs {
			ps[i] = math.NaN()
			if x > 0 {
				ps[i] = x
			}
		}
		return ps
	}
	labels := strs(v)
	ps := make([]float64, len(labels))
	for i, s := range labels {
		ps[i] = a.category(s)
	}
	return ps
}

// finish determines the range of axes without fixed range.
func (a *axis) finish() {
	if a.fixed {
		return
	}
	if len(a.cats) > 0 {
		a.ScaleType = subplot.Discrete
		a.Min, a.Max = -0.5, float64(len(a.cats))-0.5
		return
	}
	a.Autoscale()
	if !a.IsSet() {
		a.ScaleType = subplot.Linear
		a.Min, a.Max = -1, 1
	}
}

var unitInterval = subplot.Interval{Min: 0, Max: 1}

// unit maps v onto the unit interval. Infinite values, e.g. the base of
// bars on a log axis, stay infinite.
func (a *axis) unit(v float64) float64 {
	if math.IsInf(v, 0) {
		return v
	}
	return a.Trans().Trans(a.Interval, unitInterval, v)
}

// ticks returns the tick marks of a: one per label on category axes,
// those of the scale's transformation otherwise.
func (a *axis) ticks() []plot.Tick {
	if len(a.cats) > 0 {
		ts := make([]plot.Tick, len(a.cats))
		for i, c := range a.cats {
			ts[i] = plot.Tick{Value: float64(i), Label: c}
		}
		return ts
	}
	return a.Trans().Ticker.Ticks(a.Min, a.Max)
}

// strs returns the labels held by the trace field v.
func strs(v interface{}) []string {
	switch vs := v.(type) {
	case []string:
		return vs
	case []interface{}:
		ss := make([]string, len(vs))
		for i, s := range vs {
			if s != nil {
				ss[i] = fmt.Sprint(s)
			}
		}
		return ss
	}
	return nil
}

// update extends iv by the finite values of xs.
func update(iv *subplot.Interval, xs ...float64) {
	for _, x := range xs {
		if !math.IsInf(x, 0) {
			iv.Update(x)
		}
	}
}

// ----------------------------------------------------------------------------
// Panel

// A panel is the drawing area of one subplot.
type panel struct {
	canvas draw.Canvas
	x, y   *axis
	title  string
	marks  []mark
}

// mapXY maps the axis position (x,y) onto the canvas. The second result
// reports whether the point lies inside the panel.
func (p *panel) mapXY(x, y float64) (vg.Point, bool) {
	xu, yu := p.x.unit(x), p.y.unit(y)
	size := p.canvas.Size()
	pt := vg.Point{
		X: p.canvas.Min.X + vg.Length(xu)*size.X,
		Y: p.canvas.Min.Y + vg.Length(yu)*size.Y,
	}
	return pt, xu >= 0 && xu <= 1 && yu >= 0 && yu <= 1
}

// A mark is a drawable part of a trace.
type mark interface {
	extent(x, y *subplot.Interval)
	draw(p *panel)
}

// build turns the traces of p into marks. Bars, boxes and histograms are
// drawn below scatter traces.
func (p *panel) build(trs []subplot.Trace, colors []color.Color, l subplot.Layout, sty *Style) error {
	var bars, boxes, hists []int
	var top []mark
	for i, tr := range trs {
		switch tr.Type() {
		case "scatter", "scattergl":
			top = append(top, p.scatter(tr, i, colors[i], sty)...)
		case "bar":
			bars = append(bars, i)
		case "box":
			boxes = append(boxes, i)
		case "histogram":
			hists = append(hists, i)
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedKind, tr.Type())
		}
	}
	barmode, _ := l["barmode"].(string)
	if barmode == "" {
		barmode = "group"
	}
	boxmode, _ := l["boxmode"].(string)

	p.bars(pick(trs, bars), pick(colors, bars), barmode, sty)
	p.boxes(pick(trs, boxes), pick(colors, boxes), boxmode, sty)
	p.histograms(pick(trs, hists), pick(colors, hists), sty)
	p.marks = append(p.marks, top...)

	for _, m := range p.marks {
		m.extent(&p.x.Data, &p.y.Data)
	}
	return nil
}

func pick[T any](xs []T, idx []int) []T {
	sel := make([]T, len(idx))
	for i, k := range idx {
		sel[i] = xs[k]
	}
	return sel
}

// ----------------------------------------------------------------------------
// Trace fields

func number(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	}
	return 0, false
}

func object(tr subplot.Trace, key string) map[string]interface{} {
	m, _ := tr[key].(map[string]interface{})
	return m
}

func horizontal(tr subplot.Trace) bool {
	o, _ := tr["orientation"].(string)
	return o == "h"
}

// opacity returns the opacity of tr, 1 if unset.
func opacity(tr subplot.Trace) float64 {
	if a, ok := number(tr["opacity"]); ok && a > 0 && a < 1 {
		return a
	}
	return 1
}

// fade applies the opacity alpha to col.
func fade(col color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return col
	}
	r, g, b, a := col.RGBA()
	return color.NRGBA64{
		R: uint16(r),
		G: uint16(g),
		B: uint16(b),
		A: uint16(float64(a) * alpha),
	}
}

// pixels converts a length in CSS pixels to vg units.
func pixels(px float64) vg.Length { return vg.Length(px) * vg.Inch / 96 }

var glyphs = map[string]draw.GlyphDrawer{
	"circle":        draw.CircleGlyph{},
	"square":        draw.BoxGlyph{},
	"cross":         draw.PlusGlyph{},
	"x":             draw.CrossGlyph{},
	"triangle-up":   draw.PyramidGlyph{},
	"triangle-down": draw.TriangleGlyph{},
	"circle-open":   draw.RingGlyph{},
	"square-open":   draw.SquareGlyph{},
}

var dashes = map[string]int{"solid": 0, "dash": 1, "dot": 2, "dashdot": 4, "longdash": 5, "longdashdot": 6}

// ----------------------------------------------------------------------------
// Scatter

func (p *panel) scatter(tr subplot.Trace, k int, col color.Color, sty *Style) []mark {
	n := fieldLen(tr["x"])
	if tr["x"] == nil {
		n = fieldLen(tr["y"])
	}
	xs, ys := p.x.values(tr["x"], n), p.y.values(tr["y"], n)
	if len(ys) < len(xs) {
		xs = xs[:len(ys)]
	}
	ys = ys[:len(xs)]

	mode, _ := tr["mode"].(string)
	if mode == "" {
		mode = "lines"
		if len(xs) < 20 {
			mode = "lines+markers"
		}
	}
	col = fade(col, opacity(tr))

	var ms []mark
	if strings.Contains(mode, "lines") {
		line := draw.LineStyle{Color: col, Width: sty.Geom.LineWidth}
		l := object(tr, "line")
		if w, ok := number(l["width"]); ok {
			line.Width = pixels(w)
		}
		if d, ok := l["dash"].(string); ok {
			line.Dashes = plotutil.Dashes(dashes[d])
		}
		ms = append(ms, path{xs: xs, ys: ys, line: line})
	}
	if strings.Contains(mode, "markers") {
		m := object(tr, "marker")
		glyph := draw.GlyphStyle{Color: col, Radius: sty.Geom.Radius, Shape: draw.CircleGlyph{}}
		if s, ok := m["symbol"].(string); ok {
			if g, ok := glyphs[s]; ok {
				glyph.Shape = g
			} else {
				glyph.Shape = plotutil.Shape(k)
			}
		}
		pts := points{xs: xs, ys: ys, glyph: glyph}
		if s, ok := number(m["size"]); ok {
			pts.glyph.Radius = pixels(s / 2)
		} else if sizes, ok := subplot.Numbers(m["size"]); ok && m["size"] != nil {
			pts.radii = make([]vg.Length, len(sizes))
			for i, s := range sizes {
				pts.radii[i] = pixels(s / 2)
			}
		}
		ms = append(ms, pts)
	}
	return ms
}

// fieldLen returns the number of values held by the trace field v.
func fieldLen(v interface{}) int {
	if xs, ok := subplot.Numbers(v); ok {
		return len(xs)
	}
	return len(strs(v))
}

// points draws one glyph per data point.
type points struct {
	xs, ys []float64
	glyph  draw.GlyphStyle
	radii  []vg.Length // Per point radii, optional.
}

func (m points) extent(x, y *subplot.Interval) {
	update(x, m.xs...)
	update(y, m.ys...)
}

func (m points) draw(p *panel) {
	for i := range m.xs {
		center, ok := p.mapXY(m.xs[i], m.ys[i])
		if !ok {
			continue
		}
		sty := m.glyph
		if m.radii != nil && i < len(m.radii) {
			sty.Radius = m.radii[i]
			if !(sty.Radius > 0) {
				continue
			}
		}
		p.canvas.DrawGlyph(sty, center)
	}
}

// path connects the data points by straight lines. Missing values break
// the path.
type path struct {
	xs, ys []float64
	line   draw.LineStyle
}

func (m path) extent(x, y *subplot.Interval) {
	update(x, m.xs...)
	update(y, m.ys...)
}

func (m path) draw(p *panel) {
	var run []vg.Point
	flush := func() {
		if len(run) > 1 {
			p.canvas.StrokeLines(m.line, p.canvas.ClipLinesXY(run)...)
		}
		run = nil
	}
	for i := range m.xs {
		x, y := m.xs[i], m.ys[i]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			flush()
			continue
		}
		pt, _ := p.mapXY(x, y) // Clipping done below.
		run = append(run, pt)
	}
	flush()
}

// ----------------------------------------------------------------------------
// Rectangles

type box struct{ x0, x1, y0, y1 float64 }

// rects draws filled rectangles. The border is drawn inside the rectangle.
type rects struct {
	boxes  []box
	fill   color.Color
	border draw.LineStyle
}

func (m rects) extent(x, y *subplot.Interval) {
	for _, b := range m.boxes {
		update(x, b.x0, b.x1)
		update(y, b.y0, b.y1)
	}
}

func (m rects) draw(p *panel) {
	for _, b := range m.boxes {
		min, minok := p.mapXY(b.x0, b.y0)
		max, maxok := p.mapXY(b.x1, b.y1)
		if !minok && !maxok && !overlaps(b, p) {
			continue
		}
		rect, ok := clipRect(vg.Rectangle{Min: min, Max: max}, p.canvas)
		if !ok {
			continue
		}
		p.canvas.SetColor(m.fill)
		p.canvas.Fill(rect.Path())

		border := m.border
		if border.Color == nil || border.Width <= 0 {
			continue
		}
		w := 0.499 * border.Width
		rect.Min.X += w
		rect.Min.Y += w
		rect.Max.X -= w
		rect.Max.Y -= w
		p.canvas.SetColor(border.Color)
		p.canvas.SetLineWidth(border.Width)
		p.canvas.SetLineDash(border.Dashes, border.DashOffs)
		p.canvas.Stroke(rect.Path())
	}
}

// overlaps reports whether b reaches into the visible range of p although
// both its corners lie outside.
func overlaps(b box, p *panel) bool {
	x0, x1 := math.Min(b.x0, b.x1), math.Max(b.x0, b.x1)
	y0, y1 := math.Min(b.y0, b.y1), math.Max(b.y0, b.y1)
	return x0 <= p.x.Max && x1 >= p.x.Min && y0 <= p.y.Max && y1 >= p.y.Min
}

// canonicRectangle returns the canonical form of r, i.e. its Min point
// having smaller coordinates than its Max point.
func canonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// clipRect clips rect to canvas. The returned rectangle is in the canonical
// form, false is returned if nothing is left.
func clipRect(rect vg.Rectangle, canvas draw.Canvas) (vg.Rectangle, bool) {
	rect = canonicRectangle(rect)
	limit := canonicRectangle(canvas.Rectangle)

	if rect.Min.X < limit.Min.X {
		rect.Min.X = limit.Min.X
	}
	if rect.Min.Y < limit.Min.Y {
		rect.Min.Y = limit.Min.Y
	}
	if rect.Max.X > limit.Max.X {
		rect.Max.X = limit.Max.X
	}
	if rect.Max.Y > limit.Max.Y {
		rect.Max.Y = limit.Max.Y
	}
	return rect, rect.Min.X < rect.Max.X && rect.Min.Y < rect.Max.Y
}
