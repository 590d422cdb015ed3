// Scale Transformations
//
// Scale transformations work like the ones in ggplot2.
package subplot

import (
	"math"

	"gonum.org/v1/plot"
)

// A Transformation bundles two functions Trans and Inverse together with
// an appropriate Ticker. Trans maps the interval from onto the interval
// to, Inverse maps a value of to back onto from.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
	Ticker  plot.Ticker
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name:    "Linear",
	Trans:   linear,
	Inverse: func(from, to Interval, y float64) float64 { return linear(to, from, y) },
	Ticker:  plot.DefaultTicks{},
}

func linear(from, to Interval, x float64) float64 {
	return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
}

// SqrtTrans implements a square root transformation suitable to map
// a data value to the size of a marker: the marker area grows linearly
// with the value. (ggplot's scale_size)
var SqrtTrans = Transformation{
	Name: "SquareRoot",
	Trans: func(from, to Interval, x float64) float64 {
		area := Interval{to.Min * to.Min, to.Max * to.Max}
		return math.Sqrt(linear(from, area, x))
	},
	Inverse: func(from, to Interval, y float64) float64 {
		area := Interval{to.Min * to.Min, to.Max * to.Max}
		return linear(area, from, y*y)
	},
	Ticker: plot.DefaultTicks{},
}

// SqrtTransFix0 is SqrtTrans with 0 always mapped to 0.
// (ggplot's scale_size_area)
var SqrtTransFix0 = Transformation{
	Name: "SquareRootFix0",
	Trans: func(from, to Interval, x float64) float64 {
		from.Min, to.Min = 0, 0
		return SqrtTrans.Trans(from, to, x)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		from.Min, to.Min = 0, 0
		return SqrtTrans.Inverse(from, to, y)
	},
	Ticker: plot.DefaultTicks{},
}

// Log10Trans maps from logarithmically onto to. Both edges of from must
// be positive.
var Log10Trans = Transformation{
	Name: "Log10",
	Trans: func(from, to Interval, x float64) float64 {
		t := math.Log10(x/from.Min) / math.Log10(from.Max/from.Min)
		return to.Min + t*(to.Max-to.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		t := (y - to.Min) / (to.Max - to.Min)
		return from.Min * math.Pow(from.Max/from.Min, t)
	},
	Ticker: plot.LogTicks{},
}
