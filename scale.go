package subplot

import (
	"fmt"
	"math"
)

// DefaultExpand is the fraction of the data range added on both sides of
// an autoscaled axis.
const DefaultExpand = 0.05

// Scales selects how axis ranges of a composite figure are determined.
// The zero value selects the default of the operation: faceted figures
// share their scales, grids of independent plots do not.
type Scales int

const (
	Shared Scales = iota + 1 // Shared ranges for all panels.
	FreeX                    // FreeX gives each panel its own x range.
	FreeY                    // FreeY gives each panel its own y range.
	Free                     // Free gives each panel its own x and y range.
)

// String returns the name of s.
func (s Scales) String() string {
	switch s {
	case Shared:
		return "shared"
	case FreeX:
		return "free_x"
	case FreeY:
		return "free_y"
	case Free:
		return "free"
	}
	return "default"
}

// ParseScales parses the names produced by Scales.String. The empty string
// yields the zero value.
func ParseScales(s string) (Scales, error) {
	switch s {
	case "":
		return 0, nil
	case "shared", "fixed":
		return Shared, nil
	case "free_x", "freex":
		return FreeX, nil
	case "free_y", "freey":
		return FreeY, nil
	case "free":
		return Free, nil
	}
	return 0, fmt.Errorf("subplot: unknown scales mode %q", s)
}

func (s Scales) freeX() bool { return s == FreeX || s == Free }
func (s Scales) freeY() bool { return s == FreeY || s == Free }

// ----------------------------------------------------------------------------
// Scale

// Scale is one axis of one panel.
type Scale struct {
	// Data is the range covered by actual data.
	Data Interval

	// Interval is the range of this scale after autoscaling. It may be
	// larger or smaller than the actual Data range.
	Interval

	// ScaleType determines the fundamental nature of the scale.
	ScaleType ScaleType

	// Autoscaling controls how Data is turned into Interval.
	Autoscaling
}

// NewScale returns a new linear scale which autoscales to the actual data
// expanded by DefaultExpand.
func NewScale() *Scale {
	s := &Scale{
		Data:      UnsetInterval(),
		Interval:  UnsetInterval(),
		ScaleType: Linear,
		Autoscaling: Autoscaling{
			MinRange: UnsetInterval(),
			MaxRange: UnsetInterval(),
		},
	}
	s.Expand.Relative = DefaultExpand
	return s
}

// UpdateData updates s to cover i.
func (s *Scale) UpdateData(i Interval) {
	s.Data.Update(i.Min, i.Max)
}

// FixMin fixes the min of s to x. If x is NaN the min is determined by
// autoscaling to the actual data.
func (s *Scale) FixMin(x float64) {
	s.MinRange.Min = x
	s.MinRange.Max = x
}

// FixMax fixes the max of s to x. If x is NaN the max is determined by
// autoscaling to the actual data.
func (s *Scale) FixMax(x float64) {
	s.MaxRange.Min = x
	s.MaxRange.Max = x
}

// HasData reports whether the Data interval of s is valid.
func (s *Scale) HasData() bool {
	return s.Data.IsSet()
}

// InRange reports whether x lies in the range of s.
func (s *Scale) InRange(x float64) bool {
	return x >= s.Min && x <= s.Max
}

// Trans returns the transformation which maps s to a display interval.
func (s *Scale) Trans() Transformation {
	if s.ScaleType == Logarithmic {
		return Log10Trans
	}
	return LinearTrans
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.2f:%.2f] Data=[%.2f:%.2f] %s",
		s.Min, s.Max, s.Data.Min, s.Data.Max, s.ScaleType)
}

// Autoscale turns the data range into the actual scale range. Scales
// without data stay unset. A degenerate data range [v:v] is widened to
// [v-1:v+1] (or [v/10:v*10] on a logarithmic scale).
func (s *Scale) Autoscale() {
	if !s.HasData() {
		return
	}

	lo, hi := s.Data.Min, s.Data.Max
	if s.ScaleType == Logarithmic && lo <= 0 {
		// Non-positive values cannot be shown; fall back to the data.
		s.ScaleType = Linear
	}
	if lo == hi {
		if s.ScaleType == Logarithmic {
			lo, hi = lo/10, hi*10
		} else {
			lo, hi = lo-1, hi+1
		}
	}

	switch s.ScaleType {
	case Linear, Time:
		ext := s.Expand.Relative*(hi-lo) + s.Expand.Absolute
		lo, hi = lo-ext, hi+ext
	case Discrete:
		ext := s.Expand.Relative*(hi-lo) + s.Expand.Absolute
		lo, hi = lo-0.5-ext, hi+0.5+ext
	case Logarithmic:
		l, h := math.Log10(lo), math.Log10(hi)
		ext := s.Expand.Relative*(h-l) + s.Expand.Absolute
		lo, hi = math.Pow(10, l-ext), math.Pow(10, h+ext)
	default:
		panic(s.ScaleType)
	}

	// Determine the left edge of s.
	if s.MinRange.Min == s.MinRange.Max {
		// Degenerate MinRange: the user has fixed Min.
		s.Min = s.MinRange.Min
	} else {
		s.Min = clip(lo, s.MinRange)
	}

	// Determine the right edge of s.
	if s.MaxRange.Min == s.MaxRange.Max {
		s.Max = s.MaxRange.Min
	} else {
		s.Max = clip(hi, s.MaxRange)
	}
}

// clip limits x to r. NaN edges of r do not limit.
func clip(x float64, r Interval) float64 {
	if r.Min > x {
		x = r.Min
	}
	if r.Max < x {
		x = r.Max
	}
	return x
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// yet determined.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the interval [NaN:NaN].
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Union returns the smallest interval covering i and j.
func (i Interval) Union(j Interval) Interval {
	i.Update(j.Min, j.Max)
	return i
}

// IsSet reports whether both edges of i are determined.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Equal reports whether i and j have the same edges. NaN edges are equal.
func (i Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects one of the handful known scale types.
type ScaleType int

const (
	Linear ScaleType = iota
	Discrete
	Time
	Logarithmic
)

// String returns the type of st.
func (st ScaleType) String() string {
	switch st {
	case Linear:
		return "linear"
	case Discrete:
		return "discrete"
	case Time:
		return "time"
	case Logarithmic:
		return "log"
	}
	return fmt.Sprintf("ScaleType(%d)", int(st))
}

// scaleType maps an axis "type" layout field to a ScaleType.
func scaleType(axisType string) ScaleType {
	switch axisType {
	case "log":
		return Logarithmic
	case "date":
		return Time
	case "category", "multicategory":
		return Discrete
	}
	return Linear
}

// ----------------------------------------------------------------------------
// Autoscaling

// Autoscaling controls how the min and max value of a scale are scaled.
// Setting a range to a degenerate interval [f:f] will turn off autoscaling
// and fix the value to f. A non-degenerate range [u:v] will allow autoscaling
// between u and v. A NaN value works like -Inf for u and +Inf for v.
type Autoscaling struct {
	// Expand determines how much the actual data range is expanded.
	Expand struct {
		Absolute float64
		Relative float64
	}

	MinRange Interval // MinRange determines the allowed range of the Min of a scale.
	MaxRange Interval // MaxRange determines the allowed range of the Max of a scale.
}
