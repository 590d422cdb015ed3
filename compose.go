package subplot

import "strings"

// PanelTraces are the traces of one panel before they are bound to it.
type PanelTraces struct {
	// Key is the facet key or plot title shown above the panel.
	Key string

	Traces []Trace

	// Layout optionally provides the axis or subplot definitions for this
	// panel. If nil, the definitions from ComposeOptions.Layout are used.
	Layout Layout
}

// ComposeOptions control Compose.
type ComposeOptions struct {
	// Title of the whole figure. If empty the title of Layout is used.
	Title string

	// Scales determines axis ranges. The zero value means Shared.
	Scales Scales

	// Layout is the template of the figure layout. Its axis and subplot
	// definitions ("xaxis", "yaxis", "scene", ...) serve as template for
	// every panel, all other fields are copied as is.
	Layout Layout

	// EdgeAxisTitles restricts x-axis titles to the lowest panel of each
	// column and y-axis titles to the first column.
	EdgeAxisTitles bool
}

// Compose binds the traces of every panel to the corresponding panel of
// grid and assembles the layout: one axis (or subplot) definition per
// panel, axis ranges according to opts.Scales, panel titles and
// consistent legend entries and colors. All traces must belong to the same
// family. The first failing panel aborts the assembly with a *FacetError.
func Compose(panels []PanelTraces, grid *Grid, opts ComposeOptions) (*Figure, error) {
	if grid == nil || len(panels) != grid.N {
		g := &Grid{N: len(panels)}
		if grid != nil {
			g = grid
		}
		return nil, &GridError{N: len(panels), Rows: g.Rows, Cols: g.Cols, HGap: g.HGap, VGap: g.VGap, Err: ErrInvalidGrid}
	}

	ps := grid.Panels()
	bound := make([][]Trace, len(panels))
	fam, famSet := Cartesian, false
	for i, pt := range panels {
		ps[i].Title = pt.Key
		for _, tr := range pt.Traces {
			f, err := Classify(tr)
			if err != nil {
				err.(*TraceKindError).Panel = i
				return nil, &FacetError{Key: pt.Key, Err: err}
			}
			if famSet && f != fam {
				return nil, &FacetError{Key: pt.Key, Err: &TraceKindError{
					Kind: tr.Type(), Panel: i, Err: ErrUnsupportedTraceKind}}
			}
			fam, famSet = f, true
			bound[i] = append(bound[i], bind(tr, f, ps[i]))
		}
	}

	layout := globalLayout(opts.Layout)
	title := opts.Title
	if title == "" {
		title = opts.Layout.Title()
	}
	if title != "" {
		t := template(nil, opts.Layout, "title")
		t["text"] = title
		layout["title"] = t
	}

	switch fam {
	case Cartesian:
		cartesianAxes(layout, ps, bound, panels, grid, opts)
	case Domain:
		// Domain traces carry their rectangle themselves.
	default:
		base := fam.subplotBase()
		for i, p := range ps {
			sp := template(panels[i].Layout, opts.Layout, base)
			sp["domain"] = map[string]interface{}{
				"x": []float64{p.Domain.X0, p.Domain.X1},
				"y": []float64{p.Domain.Y0, p.Domain.Y1},
			}
			layout[p.SubplotKey(fam)] = sp
		}
	}

	if anns := panelTitles(layout["annotations"], ps); len(anns) > 0 {
		layout["annotations"] = anns
	}

	var traces []Trace
	for _, trs := range bound {
		traces = append(traces, trs...)
	}
	ApplyColorway(traces)
	dedupLegend(traces)

	return &Figure{Traces: traces, Layout: layout, Panels: ps, Grid: grid}, nil
}

func cartesianAxes(layout Layout, ps []Panel, bound [][]Trace, panels []PanelTraces, grid *Grid, opts ComposeOptions) {
	scales := opts.Scales
	if scales == 0 {
		scales = Shared
	}

	xs, ys := make([]extent, len(ps)), make([]extent, len(ps))
	allX, allY := newExtent(), newExtent()
	for i := range ps {
		xs[i], ys[i] = traceExtents(bound[i])
		allX.merge(xs[i])
		allY.merge(ys[i])
	}

	for i, p := range ps {
		xa := template(panels[i].Layout, opts.Layout, "xaxis")
		ya := template(panels[i].Layout, opts.Layout, "yaxis")

		ex, ey := xs[i], ys[i]
		if !scales.freeX() {
			ex = allX
		}
		if !scales.freeY() {
			ey = allY
		}
		mx, my := "", ""
		if i > 0 && !scales.freeX() {
			mx = ps[0].XAxis()
		}
		if i > 0 && !scales.freeY() {
			my = ps[0].YAxis()
		}
		fitAxis(xa, ex, mx)
		fitAxis(ya, ey, my)

		xa["domain"] = []float64{p.Domain.X0, p.Domain.X1}
		xa["anchor"] = p.YAxis()
		ya["domain"] = []float64{p.Domain.Y0, p.Domain.Y1}
		ya["anchor"] = p.XAxis()

		if opts.EdgeAxisTitles {
			if !grid.lowest(i) {
				delete(xa, "title")
			}
			if p.Col != 0 {
				delete(ya, "title")
			}
		}
		layout[p.XAxisKey()] = xa
		layout[p.YAxisKey()] = ya
	}
}

// fitAxis sets the range of axis a to cover e unless the range is fixed.
// A log axis which cannot show e turns linear. A shared axis without a
// computable range matches the axis with id match instead.
func fitAxis(a map[string]interface{}, e extent, match string) {
	if _, fixed := a["range"]; fixed {
		return
	}
	want := axisScaleType(a)
	r, st := axisRange(e, want)
	switch {
	case r != nil:
		a["range"] = r
		if st != want {
			a["type"] = st.String()
		}
	case match != "" && !e.categorical:
		a["matches"] = match
	}
}

func axisScaleType(axis map[string]interface{}) ScaleType {
	s, _ := axis["type"].(string)
	return scaleType(s)
}

// template returns a copy of the definition stored under key in the
// panel layout or, if the panel has none, in the figure template.
func template(panel, figure Layout, key string) map[string]interface{} {
	if m, ok := panel[key].(map[string]interface{}); ok {
		return cloneMap(m)
	}
	m, _ := figure[key].(map[string]interface{})
	return cloneMap(m)
}

// panelScoped reports whether key holds a per-panel definition.
func panelScoped(key string) bool {
	for _, prefix := range []string{"xaxis", "yaxis", "scene", "polar", "geo", "mapbox"} {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return key == "title"
}

// globalLayout returns the fields of l which apply to the whole figure.
func globalLayout(l Layout) Layout {
	g := Layout{}
	for k, v := range l.Clone() {
		if !panelScoped(k) {
			g[k] = v
		}
	}
	return g
}

// panelTitles appends one annotation per titled panel to existing, centred
// on top of the panel's rectangle.
func panelTitles(existing interface{}, ps []Panel) []interface{} {
	anns, _ := existing.([]interface{})
	for _, p := range ps {
		if p.Title == "" {
			continue
		}
		anns = append(anns, map[string]interface{}{
			"text":      p.Title,
			"x":         (p.Domain.X0 + p.Domain.X1) / 2,
			"y":         p.Domain.Y1,
			"xref":      "paper",
			"yref":      "paper",
			"xanchor":   "center",
			"yanchor":   "bottom",
			"showarrow": false,
		})
	}
	return anns
}

// dedupLegend shows the legend entry of every name once and groups
// traces of the same name so they toggle together.
func dedupLegend(trs []Trace) {
	seen := make(map[string]bool)
	for _, tr := range trs {
		name := tr.Name()
		if name == "" {
			continue
		}
		if _, ok := tr["legendgroup"]; !ok {
			tr["legendgroup"] = name
		}
		if seen[name] {
			tr["showlegend"] = false
		}
		seen[name] = true
	}
}
