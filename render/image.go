package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/vdobler/subplot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// ImageOptions control the image backend. Zero values select defaults.
type ImageOptions struct {
	// Width and Height of the image in pixels, default to 800 and 600.
	Width, Height int

	// Scale multiplies the resolution of raster images.
	Scale float64

	// Style defaults to DefaultStyle(12).
	Style *Style
}

func (o ImageOptions) size() (w, h vg.Length) {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	return pixels(float64(o.Width)), pixels(float64(o.Height))
}

type canvasWriter interface {
	vg.CanvasSizer
	io.WriterTo
}

func newCanvas(f Format, opts ImageOptions) canvasWriter {
	w, h := opts.size()
	switch f {
	case FormatSVG:
		return vgsvg.New(w, h)
	case FormatPDF:
		return vgpdf.New(w, h)
	case FormatEPS:
		return vgeps.New(w, h)
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(int(math.Round(96*scale))))
	switch f {
	case FormatJPEG:
		return vgimg.JpegCanvas{Canvas: img}
	case FormatTIFF:
		return vgimg.TiffCanvas{Canvas: img}
	}
	return vgimg.PngCanvas{Canvas: img}
}

// Image draws the cartesian figure fig in the given image format to w.
func Image(w io.Writer, fig *subplot.Figure, format Format, opts ImageOptions) error {
	if !format.Image() {
		return &Error{Op: "draw", Format: format, Err: ErrUnsupportedFormat}
	}
	fam, err := fig.Family()
	if err != nil {
		return &Error{Op: "draw", Format: format, Err: err}
	}
	if fam != subplot.Cartesian {
		return &Error{Op: "draw", Format: format, Err: fmt.Errorf("%w: %s figure", ErrUnsupportedKind, fam)}
	}

	sty := opts.Style
	if sty == nil {
		def, err := DefaultStyle(12)
		if err != nil {
			return &Error{Op: "style", Format: format, Err: err}
		}
		sty = &def
	}

	c := newCanvas(format, opts)
	if err := drawFigure(draw.New(c), fig, sty); err != nil {
		return &Error{Op: "draw", Format: format, Err: err}
	}
	if _, err := c.WriteTo(w); err != nil {
		return &Error{Op: "write", Format: format, Err: err}
	}
	return nil
}

// drawFigure draws fig onto c: title, legend, the panels with their
// background, grid, strip and axes and finally the traces.
func drawFigure(c draw.Canvas, fig *subplot.Figure, sty *Style) error {
	c.SetColor(sty.Background)
	c.Fill(c.Rectangle.Path())
	c.Min.X += sty.Margin
	c.Min.Y += sty.Margin
	c.Max.X -= sty.Margin
	c.Max.Y -= sty.Margin

	if title := fig.Layout.Title(); title != "" {
		c.FillText(sty.Title, vg.Point{X: c.Center().X, Y: c.Max.Y}, title)
		c.Max.Y -= sty.TitleHeight
	}

	colors := make([]color.Color, len(fig.Traces))
	for i, tr := range fig.Traces {
		colors[i] = subplot.TraceColor(tr, subplot.DefaultColorway[i%len(subplot.DefaultColorway)])
	}

	if entries := legendEntries(fig.Traces, colors); len(entries) > 0 && sty.Legend.Width > 0 {
		lc := c
		lc.Min.X = c.Max.X - sty.Legend.Width
		c.Max.X = lc.Min.X - sty.Legend.Pad
		drawLegend(lc, entries, sty)
	}

	// Room for the outermost ticks, axis titles and strips.
	c.Min.X += sty.YAxis.Tick.Width + sty.YAxis.TitleWidth
	c.Min.Y += sty.XAxis.Tick.Height + sty.XAxis.TitleHeight
	strips := fig.Composite()
	if strips {
		c.Max.Y -= sty.Strip.Height
	}

	size := c.Size()
	panels := make([]*panel, len(fig.Panels))
	traces := make([][]subplot.Trace, len(fig.Panels))
	tcolors := make([][]color.Color, len(fig.Panels))
	for i, fp := range fig.Panels {
		pc := c
		pc.Min.X = c.Min.X + vg.Length(fp.Domain.X0)*size.X
		pc.Max.X = c.Min.X + vg.Length(fp.Domain.X1)*size.X
		pc.Min.Y = c.Min.Y + vg.Length(fp.Domain.Y0)*size.Y
		pc.Max.Y = c.Min.Y + vg.Length(fp.Domain.Y1)*size.Y
		panels[i] = &panel{
			canvas: pc,
			x:      newAxis(fig.Layout, fp.XAxisKey()),
			y:      newAxis(fig.Layout, fp.YAxisKey()),
			title:  fp.Title,
		}
	}
	for i, tr := range fig.Traces {
		k := subplot.PanelIndex(tr)
		if k < 0 || k >= len(panels) {
			return fmt.Errorf("trace %d bound to unknown panel", i)
		}
		traces[k] = append(traces[k], tr)
		tcolors[k] = append(tcolors[k], colors[i])
	}

	for i, p := range panels {
		if err := p.build(traces[i], tcolors[i], fig.Layout, sty); err != nil {
			return err
		}
	}
	linkAxes(panels, fig.Panels)
	for _, p := range panels {
		p.drawBackground(sty)
		if strips && p.title != "" {
			p.drawStrip(sty)
		}
		for _, m := range p.marks {
			m.draw(p)
		}
		p.drawAxes(sty)
	}
	return nil
}

// linkAxes lets every axis with a "matches" reference share the data
// range of the referenced axis and finishes all axes.
func linkAxes(panels []*panel, fps []subplot.Panel) {
	xs := make(map[string]*axis, len(panels))
	ys := make(map[string]*axis, len(panels))
	for i, fp := range fps {
		xs[fp.XAxis()], ys[fp.YAxis()] = panels[i].x, panels[i].y
	}
	for _, ids := range []map[string]*axis{xs, ys} {
		target := func(a *axis) *axis {
			t := ids[a.matches]
			if t == nil || t == a || a.fixed || len(a.cats) > 0 || len(t.cats) > 0 {
				return nil
			}
			return t
		}
		for _, a := range ids {
			if t := target(a); t != nil {
				t.Data = t.Data.Union(a.Data)
			}
		}
		for _, a := range ids {
			a.finish()
		}
		for _, a := range ids {
			if t := target(a); t != nil {
				s := *t.Scale
				a.Scale = &s
			}
		}
	}
}

// drawBackground fills the panel and draws the grid lines at the ticks.
func (p *panel) drawBackground(sty *Style) {
	p.canvas.SetColor(sty.Panel.Background)
	p.canvas.Fill(p.canvas.Rectangle.Path())
	if sty.Grid.Major.Color == nil {
		return
	}
	for _, tick := range p.x.ticks() {
		if !p.x.InRange(tick.Value) {
			continue
		}
		pt, _ := p.mapXY(tick.Value, p.y.Min)
		gs := sty.Grid.Major
		if tick.IsMinor() {
			gs = sty.Grid.Minor
		}
		p.canvas.StrokeLine2(gs, pt.X, p.canvas.Min.Y, pt.X, p.canvas.Max.Y)
	}
	for _, tick := range p.y.ticks() {
		if !p.y.InRange(tick.Value) {
			continue
		}
		pt, _ := p.mapXY(p.x.Min, tick.Value)
		gs := sty.Grid.Major
		if tick.IsMinor() {
			gs = sty.Grid.Minor
		}
		p.canvas.StrokeLine2(gs, p.canvas.Min.X, pt.Y, p.canvas.Max.X, pt.Y)
	}
}

// drawStrip draws the panel title in a strip on top of the panel.
func (p *panel) drawStrip(sty *Style) {
	cb := p.canvas
	cb.Min.Y = p.canvas.Max.Y
	cb.Max.Y = cb.Min.Y + sty.Strip.Height
	cb.SetColor(sty.Strip.Background)
	cb.Fill(cb.Rectangle.Path())
	cb.FillText(sty.Strip.TextStyle, cb.Center(), p.title)
}

// drawAxes draws the major ticks with their labels and the axis titles.
func (p *panel) drawAxes(sty *Style) {
	c := p.canvas
	for _, tick := range p.x.ticks() {
		if tick.IsMinor() || !p.x.InRange(tick.Value) {
			continue
		}
		pt, _ := p.mapXY(tick.Value, p.y.Min)
		y0 := c.Min.Y
		c.StrokeLine2(sty.XAxis.Tick.Major, pt.X, y0, pt.X, y0-sty.XAxis.Tick.Length)
		c.FillText(sty.XAxis.Tick.Label, vg.Point{X: pt.X, Y: y0 - sty.XAxis.Tick.Length}, tick.Label)
	}
	for _, tick := range p.y.ticks() {
		if tick.IsMinor() || !p.y.InRange(tick.Value) {
			continue
		}
		pt, _ := p.mapXY(p.x.Min, tick.Value)
		x0 := c.Min.X
		c.StrokeLine2(sty.YAxis.Tick.Major, x0-sty.YAxis.Tick.Length, pt.Y, x0, pt.Y)
		c.FillText(sty.YAxis.Tick.Label, vg.Point{X: x0 - sty.YAxis.Tick.Length, Y: pt.Y}, tick.Label)
	}

	if p.x.title != "" {
		c.FillText(sty.XAxis.Title, vg.Point{
			X: c.Center().X,
			Y: c.Min.Y - sty.XAxis.Tick.Height - sty.XAxis.TitleHeight,
		}, p.x.title)
	}
	if p.y.title != "" {
		c.FillText(sty.YAxis.Title, vg.Point{
			X: c.Min.X - sty.YAxis.Tick.Width - sty.YAxis.TitleWidth,
			Y: c.Center().Y,
		}, p.y.title)
	}
}

// ----------------------------------------------------------------------------
// Legend

type legendEntry struct {
	name  string
	color color.Color
	kind  string // "markers", "lines" or "fill"
}

// legendEntries returns one entry per distinct trace name. Traces with
// showlegend false are skipped.
func legendEntries(trs []subplot.Trace, colors []color.Color) []legendEntry {
	var entries []legendEntry
	seen := make(map[string]bool)
	for i, tr := range trs {
		name := tr.Name()
		if name == "" || seen[name] {
			continue
		}
		if show, ok := tr["showlegend"].(bool); ok && !show {
			continue
		}
		seen[name] = true
		kind := "fill"
		if tr.Type() == "scatter" || tr.Type() == "scattergl" {
			kind = "markers"
			if mode, _ := tr["mode"].(string); mode == "lines" {
				kind = "lines"
			}
		}
		entries = append(entries, legendEntry{name: name, color: colors[i], kind: kind})
	}
	return entries
}

func drawLegend(c draw.Canvas, entries []legendEntry, sty *Style) {
	size, pad := sty.Legend.Size, sty.Legend.Pad
	y := c.Max.Y
	for _, e := range entries {
		key := vg.Rectangle{
			Min: vg.Point{X: c.Min.X, Y: y - size},
			Max: vg.Point{X: c.Min.X + size, Y: y},
		}
		center := vg.Point{X: key.Min.X + size/2, Y: key.Min.Y + size/2}
		switch e.kind {
		case "markers":
			c.DrawGlyph(draw.GlyphStyle{Color: e.color, Radius: sty.Geom.Radius, Shape: draw.CircleGlyph{}}, center)
		case "lines":
			c.StrokeLine2(draw.LineStyle{Color: e.color, Width: sty.Geom.LineWidth},
				key.Min.X, center.Y, key.Max.X, center.Y)
		default:
			c.SetColor(e.color)
			c.Fill(key.Path())
		}
		c.FillText(sty.Legend.Label, vg.Point{X: key.Max.X + pad, Y: center.Y}, e.name)
		y -= size + pad
	}
}
