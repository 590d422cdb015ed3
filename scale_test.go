package subplot

import (
	"math"
	"strconv"
	"testing"

	"github.com/tdewolff/test"
)

var nan = math.NaN()

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

var autoscaleTests = []struct {
	st       ScaleType
	min, max float64
	want     Interval
}{
	{Linear, 0, 10, Interval{-0.5, 10.5}},
	{Linear, 4, 4, Interval{2.9, 5.1}},
	{Discrete, 0, 2, Interval{-0.6, 2.6}},
	{Logarithmic, 1, 100, Interval{math.Pow(10, -0.1), math.Pow(10, 2.1)}},
	{Logarithmic, -1, 100, Interval{-6.05, 105.05}},
}

func TestAutoscale(t *testing.T) {
	for i, tc := range autoscaleTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			s := NewScale()
			s.ScaleType = tc.st
			s.UpdateData(Interval{tc.min, tc.max})
			s.Autoscale()
			if !equal64(s.Min, tc.want.Min) || !equal64(s.Max, tc.want.Max) {
				t.Errorf("autoscale %s [%g:%g] = %v, want %v",
					tc.st, tc.min, tc.max, s.Interval, tc.want)
			}
		})
	}
}

func TestAutoscaleFixed(t *testing.T) {
	s := NewScale()
	s.UpdateData(Interval{0, 10})
	s.FixMin(0)
	s.Autoscale()
	test.Float(t, s.Min, 0)
	test.Float(t, s.Max, 10.5)

	s = NewScale()
	s.Autoscale()
	test.That(t, !s.HasData())
	test.That(t, !s.Interval.IsSet())
}

func TestParseScales(t *testing.T) {
	for _, s := range []Scales{Shared, FreeX, FreeY, Free} {
		got, err := ParseScales(s.String())
		test.Error(t, err)
		test.T(t, got, s)
	}
	_, err := ParseScales("loose")
	test.That(t, err != nil)
}

func TestScaleTypeString(t *testing.T) {
	var tests = []struct {
		st   ScaleType
		want string
	}{
		{Linear, "linear"},
		{Discrete, "discrete"},
		{Time, "time"},
		{Logarithmic, "log"},
		{ScaleType(7), "ScaleType(7)"},
		{ScaleType(-1), "ScaleType(-1)"},
	}
	for i, tt := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			test.T(t, tt.st.String(), tt.want)
		})
	}
}

func equal64(a, b float64) bool {
	ai, af := math.Modf(a)
	bi, bf := math.Modf(b)
	if af == 0 && bf == 0 {
		return ai == bi
	}
	return math.Abs(a-b) < 0.006
}
