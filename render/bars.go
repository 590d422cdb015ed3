package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/vdobler/subplot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Bars

// slots places the bars or boxes of n traces sharing the same positions.
// In mode "group" they are placed side by side, otherwise on top of each
// other.
type slots struct {
	mode  string
	gap   float64 // Gap between groups as fraction of the position distance.
	n     int
	delta float64 // Smallest distance between two positions.
}

func newSlots(mode string, gap float64, n int, positions []float64) slots {
	xs := make([]float64, 0, len(positions))
	for _, x := range positions {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			xs = append(xs, x)
		}
	}
	sort.Float64s(xs)
	delta := math.Inf(1)
	for i := 1; i < len(xs); i++ {
		if d := xs[i] - xs[i-1]; d > 0 && d < delta {
			delta = d
		}
	}
	if math.IsInf(delta, 1) {
		delta = 1
	}
	return slots{mode: mode, gap: gap, n: n, delta: delta}
}

// width returns the center and the half width of the bar of trace k at x.
func (s slots) width(x float64, k int) (center, halfwidth float64) {
	nonGapWidth := s.delta * (1 - s.gap)
	if s.mode != "group" || s.n <= 1 {
		return x, nonGapWidth / 2
	}
	halfwidth = nonGapWidth / float64(2*s.n)
	center = x + float64(2*k-s.n+1)*halfwidth
	return center, halfwidth
}

func (p *panel) bars(trs []subplot.Trace, colors []color.Color, mode string, sty *Style) {
	type bar struct {
		pos, val []float64
		h        bool
	}
	bs := make([]bar, len(trs))
	var all []float64
	for i, tr := range trs {
		pa, va, pf, vf := p.x, p.y, "x", "y"
		if horizontal(tr) {
			pa, va, pf, vf = p.y, p.x, "y", "x"
		}
		val := va.values(tr[vf], 0)
		pos := pa.values(tr[pf], len(val))
		bs[i] = bar{pos: pos, val: val, h: horizontal(tr)}
		all = append(all, pos...)
	}

	sl := newSlots(mode, sty.Geom.Gap, len(trs), all)
	stack := mode == "stack" || mode == "relative"
	above, below := make(map[float64]float64), make(map[float64]float64)
	for i, b := range bs {
		base := 0.0
		va := p.y
		if b.h {
			va = p.x
		}
		if va.log() {
			base = math.Inf(-1)
		}

		m := rects{fill: fade(colors[i], opacity(trs[i])), border: sty.Geom.Border}
		for j, x := range b.pos {
			if j >= len(b.val) || math.IsNaN(x) || math.IsNaN(b.val[j]) {
				continue
			}
			v := b.val[j]
			lo, hi := base, v
			if stack && !va.log() {
				if v >= 0 {
					lo, hi = above[x], above[x]+v
					above[x] = hi
				} else {
					lo, hi = below[x], below[x]+v
					below[x] = hi
				}
			}
			c, half := sl.width(x, i)
			r := box{c - half, c + half, lo, hi}
			if b.h {
				r = box{lo, hi, c - half, c + half}
			}
			m.boxes = append(m.boxes, r)
		}
		p.marks = append(p.marks, m)
	}
}

// ----------------------------------------------------------------------------
// Histograms

// sturges returns the number of bins for n samples.
func sturges(n int) int {
	if n < 2 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// histogram counts xs in the intervals of part and normalizes the counts
// as selected by norm.
func histogram(xs []float64, part *subplot.Partitioner, norm string) []float64 {
	n := part.Partitions
	counts := make([]float64, n)
	total := 0.0
	for _, x := range xs {
		if k := part.Bin(x); k >= 0 {
			counts[k]++
			total++
		}
	}
	width := (part.Range.Max - part.Range.Min) / float64(n)
	if width == 0 {
		width = 1
	}
	for k, c := range counts {
		switch norm {
		case "percent":
			counts[k] = 100 * c / total
		case "probability":
			counts[k] = c / total
		case "density":
			counts[k] = c / width
		case "probability density":
			counts[k] = c / (total * width)
		}
	}
	return counts
}

func (p *panel) histograms(trs []subplot.Trace, colors []color.Color, sty *Style) {
	if len(trs) == 0 {
		return
	}
	samples := make([][]float64, len(trs))
	bins, most := 0, 0
	for i, tr := range trs {
		samples[i] = p.x.values(tr["x"], 0)
		if nb, ok := number(tr["nbinsx"]); ok && int(nb) > bins {
			bins = int(nb)
		}
		if len(samples[i]) > most {
			most = len(samples[i])
		}
	}
	if bins == 0 {
		bins = sturges(most)
	}

	// All histograms of a panel share their bins.
	part := subplot.NewPartitioner(bins)
	for _, xs := range samples {
		part.Learn(xs...)
	}
	if !part.Range.IsSet() {
		return
	}
	lo, width := part.Range.Min, (part.Range.Max-part.Range.Min)/float64(bins)
	if width == 0 {
		lo, width = lo-0.5, 1
	}

	for i, tr := range trs {
		norm, _ := tr["histnorm"].(string)
		m := rects{fill: fade(colors[i], opacity(tr)), border: sty.Geom.Border}
		for k, c := range histogram(samples[i], part, norm) {
			if c == 0 {
				continue
			}
			x0 := lo + float64(k)*width
			m.boxes = append(m.boxes, box{x0, x0 + width, 0, c})
		}
		p.marks = append(p.marks, m)
	}
}

// ----------------------------------------------------------------------------
// Boxes

// boxStats returns the quartiles of the finite values of xs, the whisker
// ends at the most extreme values within 1.5 IQR of the box and the
// values beyond.
func boxStats(xs []float64) (q1, med, q3, lo, hi float64, outliers []float64, ok bool) {
	clean := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			clean = append(clean, x)
		}
	}
	if len(clean) == 0 {
		return 0, 0, 0, 0, 0, nil, false
	}
	sort.Float64s(clean)
	s := stats.Sample{Xs: clean, Sorted: true}
	q1, med, q3 = s.Quantile(0.25), s.Quantile(0.5), s.Quantile(0.75)

	iqr := q3 - q1
	lower, upper := q1-1.5*iqr, q3+1.5*iqr
	lo, hi = q1, q3
	for _, x := range clean {
		if x < lower || x > upper {
			outliers = append(outliers, x)
			continue
		}
		lo, hi = math.Min(lo, x), math.Max(hi, x)
	}
	return q1, med, q3, lo, hi, outliers, true
}

// boxplot draws one box with whiskers and outliers.
type boxplot struct {
	pos, half           float64
	q1, med, q3, lo, hi float64
	outliers            []float64
	h                   bool // horizontal
	fill                color.Color
	line                draw.LineStyle
	glyph               draw.GlyphStyle
}

// xy maps position c and value v of b onto the canvas of p.
func (b boxplot) xy(p *panel, c, v float64) vg.Point {
	if b.h {
		c, v = v, c
	}
	pt, _ := p.mapXY(c, v)
	return pt
}

func (b boxplot) extent(x, y *subplot.Interval) {
	c, v := x, y
	if b.h {
		c, v = y, x
	}
	update(c, b.pos-b.half, b.pos+b.half)
	update(v, b.lo, b.hi)
	update(v, b.outliers...)
}

func (b boxplot) draw(p *panel) {
	r, ok := clipRect(vg.Rectangle{
		Min: b.xy(p, b.pos-b.half, b.q1),
		Max: b.xy(p, b.pos+b.half, b.q3),
	}, p.canvas)
	if ok {
		p.canvas.SetColor(b.fill)
		p.canvas.Fill(r.Path())
	}

	lines := [][]vg.Point{
		{b.xy(p, b.pos-b.half, b.q1), b.xy(p, b.pos+b.half, b.q1),
			b.xy(p, b.pos+b.half, b.q3), b.xy(p, b.pos-b.half, b.q3),
			b.xy(p, b.pos-b.half, b.q1)},
		{b.xy(p, b.pos-b.half, b.med), b.xy(p, b.pos+b.half, b.med)},
		{b.xy(p, b.pos, b.q3), b.xy(p, b.pos, b.hi)},
		{b.xy(p, b.pos, b.q1), b.xy(p, b.pos, b.lo)},
		{b.xy(p, b.pos-b.half/2, b.hi), b.xy(p, b.pos+b.half/2, b.hi)},
		{b.xy(p, b.pos-b.half/2, b.lo), b.xy(p, b.pos+b.half/2, b.lo)},
	}
	p.canvas.StrokeLines(b.line, p.canvas.ClipLinesXY(lines...)...)

	for _, o := range b.outliers {
		pt := b.xy(p, b.pos, o)
		if p.canvas.Contains(pt) {
			p.canvas.DrawGlyph(b.glyph, pt)
		}
	}
}

func (p *panel) boxes(trs []subplot.Trace, colors []color.Color, mode string, sty *Style) {
	type sample struct {
		pos float64
		xs  []float64
	}
	groups := make([][]*sample, len(trs))
	var all []float64
	for i, tr := range trs {
		pa, va, pf, vf := p.x, p.y, "x", "y"
		if horizontal(tr) {
			pa, va, pf, vf = p.y, p.x, "y", "x"
		}
		vs := va.values(tr[vf], 0)

		var pos []float64
		if tr[pf] == nil {
			label := tr.Name()
			if label == "" {
				label = fmt.Sprintf("trace %d", i)
			}
			c := pa.category(label)
			pos = make([]float64, len(vs))
			for j := range pos {
				pos[j] = c
			}
		} else {
			pos = pa.values(tr[pf], len(vs))
		}

		byPos := make(map[float64]*sample)
		for j, v := range vs {
			if j >= len(pos) || math.IsNaN(pos[j]) {
				continue
			}
			s, ok := byPos[pos[j]]
			if !ok {
				s = &sample{pos: pos[j]}
				byPos[pos[j]] = s
				groups[i] = append(groups[i], s)
				all = append(all, pos[j])
			}
			s.xs = append(s.xs, v)
		}
	}

	sl := newSlots(mode, sty.Geom.Gap, len(trs), all)
	for i, tr := range trs {
		col := colors[i]
		line := draw.LineStyle{Color: col, Width: sty.Geom.Border.Width * 2}
		for _, s := range groups[i] {
			q1, med, q3, lo, hi, out, ok := boxStats(s.xs)
			if !ok {
				continue
			}
			c, half := sl.width(s.pos, i)
			p.marks = append(p.marks, boxplot{
				pos: c, half: half,
				q1: q1, med: med, q3: q3, lo: lo, hi: hi,
				outliers: out,
				h:        horizontal(tr),
				fill:     fade(col, 0.5*opacity(tr)),
				line:     line,
				glyph:    draw.GlyphStyle{Color: col, Radius: sty.Geom.Radius * 0.7, Shape: draw.CircleGlyph{}},
			})
		}
	}
}
