// Package geom provides builders turning tabular data into traces.
//
// The overall concept is loosely based on ggplot2's geoms. Each builder has
// some required columns, typically an x and a y column, and optional
// columns which group the rows into several traces or map data to marker
// size, hover text and the like.
//
// The required columns are fields like X and Y in the various builders,
// optional styling is configured through the embedded Grouping and Style.
// Builders implement subplot.Builder; use a pointer to a builder to let
// faceting learn the groups of the full data set first, which keeps group
// styles consistent across panels.
package geom

import (
	"github.com/vdobler/subplot"
	"github.com/vdobler/subplot/data"
)

// Labels are the texts of a figure.
type Labels struct {
	Title   string
	X, Y, Z string // Axis titles.
	Legend  string // Legend title.
}

func text(s string) map[string]interface{} {
	return map[string]interface{}{"text": s}
}

func axisTitle(s string) map[string]interface{} {
	m := map[string]interface{}{}
	if s != "" {
		m["title"] = text(s)
	}
	return m
}

// Layout returns the layout template holding the labels: the figure
// title, the titles of the cartesian axes and of the axes of a 3-D scene
// and the legend title.
func (l Labels) Layout() subplot.Layout {
	lay := subplot.Layout{}
	if l.Title != "" {
		lay["title"] = text(l.Title)
	}
	if l.X != "" || l.Y != "" {
		lay["xaxis"] = axisTitle(l.X)
		lay["yaxis"] = axisTitle(l.Y)
	}
	if l.X != "" || l.Y != "" || l.Z != "" {
		lay["scene"] = map[string]interface{}{
			"xaxis": axisTitle(l.X),
			"yaxis": axisTitle(l.Y),
			"zaxis": axisTitle(l.Z),
		}
	}
	if l.Legend != "" {
		lay["legend"] = map[string]interface{}{"title": text(l.Legend)}
	}
	return lay
}

// layouter is implemented by builders which need figure level settings,
// e.g. the bar mode.
type layouter interface {
	layout(l subplot.Layout)
}

// Plot builds a single-panel figure from the traces b builds from t.
func Plot(b subplot.Builder, t *data.Table, l Labels) (*subplot.Figure, error) {
	if lr, ok := b.(subplot.Learner); ok {
		if err := lr.Learn(t); err != nil {
			return nil, err
		}
	}
	traces, err := b.Traces(t)
	if err != nil {
		return nil, err
	}

	lay := l.Layout()
	if lb, ok := b.(layouter); ok {
		lb.layout(lay)
	}
	fig := subplot.NewFigure(traces, lay)
	fam, err := fig.Family()
	if err != nil {
		return nil, err
	}
	if fam != subplot.Cartesian {
		delete(lay, "xaxis")
		delete(lay, "yaxis")
	}
	if fam != subplot.Scene {
		delete(lay, "scene")
	}
	subplot.ApplyColorway(traces)
	return fig, nil
}

// Facet builds one panel per distinct value of column col of t, see
// subplot.FacetWrap. The labels are merged into cfg.Layout.
func Facet(b subplot.Builder, t *data.Table, col string, l Labels, cfg subplot.FacetConfig) (*subplot.Figure, error) {
	lay := l.Layout()
	for k, v := range cfg.Layout {
		lay[k] = v
	}
	if lb, ok := b.(layouter); ok {
		lb.layout(lay)
	}
	cfg.Layout = lay
	return subplot.FacetWrap(t, col, b, cfg)
}
