package subplot

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Numbers extracts the numeric values of a trace field. It understands
// the slice types produced by the builders in package geom and by
// encoding/json. The second result is false if v holds non-numeric data,
// e.g. category labels.
func Numbers(v interface{}) ([]float64, bool) {
	switch xs := v.(type) {
	case nil:
		return nil, true
	case []float64:
		return xs, true
	case []int:
		fs := make([]float64, len(xs))
		for i, x := range xs {
			fs[i] = float64(x)
		}
		return fs, true
	case []interface{}:
		fs := make([]float64, 0, len(xs))
		for _, x := range xs {
			switch x := x.(type) {
			case float64:
				fs = append(fs, x)
			case int:
				fs = append(fs, float64(x))
			case nil:
				fs = append(fs, math.NaN())
			default:
				return nil, false
			}
		}
		return fs, true
	case [][]float64:
		var fs []float64
		for _, row := range xs {
			fs = append(fs, row...)
		}
		return fs, true
	}
	return nil, false
}

// bounds returns the range of the non-NaN values of xs.
func bounds(xs []float64) Interval {
	clean := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			clean = append(clean, x)
		}
	}
	if len(clean) == 0 {
		return UnsetInterval()
	}
	min, max := stats.Bounds(clean)
	return Interval{min, max}
}

// extent is the data range of one axis direction of one panel.
type extent struct {
	Interval
	categorical bool
}

func newExtent() extent { return extent{Interval: UnsetInterval()} }

func (e *extent) merge(f extent) {
	e.Interval = e.Interval.Union(f.Interval)
	e.categorical = e.categorical || f.categorical
}

// traceExtents returns the x and y data ranges covered by the cartesian
// traces trs. Histograms only contribute to the axis of their samples,
// horizontal bars and boxes swap their axes.
func traceExtents(trs []Trace) (x, y extent) {
	x, y = newExtent(), newExtent()
	for _, tr := range trs {
		xf, yf := "x", "y"
		if o, _ := tr["orientation"].(string); o == "h" {
			xf, yf = "y", "x"
		}
		ex, ey := fieldExtent(tr[xf]), fieldExtent(tr[yf])
		if tr.Type() == "bar" {
			// Bars start at zero.
			ey.Update(0)
		}
		if tr.Type() == "box" && tr[xf] == nil {
			// A box without positions sits on a category axis.
			ex.categorical = true
		}
		if xf == "y" {
			ex, ey = ey, ex
		}
		x.merge(ex)
		y.merge(ey)
	}
	return x, y
}

func fieldExtent(v interface{}) extent {
	xs, ok := Numbers(v)
	if !ok {
		return extent{Interval: UnsetInterval(), categorical: true}
	}
	return extent{Interval: bounds(xs)}
}

// axisRange computes the range of one axis from its data range together
// with the scale type the range is given in. Data a log axis cannot show
// yields a linear range. Nil is returned for categorical axes and axes
// without data.
func axisRange(e extent, st ScaleType) ([]float64, ScaleType) {
	if e.categorical || !e.IsSet() {
		return nil, st
	}
	s := NewScale()
	s.ScaleType = st
	s.UpdateData(e.Interval)
	s.Autoscale()
	if s.ScaleType == Logarithmic {
		return []float64{math.Log10(s.Min), math.Log10(s.Max)}, s.ScaleType
	}
	return []float64{s.Min, s.Max}, s.ScaleType
}
