package data

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func one(x float64) *float64 { return &x }

func sample(t *testing.T) *Table {
	t.Helper()
	tbl, err := FromColumns(
		Column{Name: "name", Data: []string{"b", "a", "b", "c"}},
		Column{Name: "count", Data: []int{3, 1, 4, 1}},
		Column{Name: "value", Data: []float64{0.5, math.NaN(), 2, 1e21}},
		Column{Name: "text", Data: []string{"1.5", "NA", " 3 ", ""}},
		Column{Name: "flag", Data: []bool{true, false, true, true}},
		Column{Name: "opt", Data: []*float64{one(7), nil, one(8), nil}},
	)
	if err != nil {
		t.Fatalf("cannot build table: %v", err)
	}
	return tbl
}

func equalFloats(t *testing.T, got, want []float64) {
	t.Helper()
	test.T(t, len(got), len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			test.That(t, math.IsNaN(got[i]), "want NaN at", i)
			continue
		}
		test.Float(t, got[i], want[i])
	}
}

var numericTests = []struct {
	col  string
	want []float64
	err  error
}{
	{"count", []float64{3, 1, 4, 1}, nil},
	{"value", []float64{0.5, math.NaN(), 2, 1e21}, nil},
	{"text", []float64{1.5, math.NaN(), 3, math.NaN()}, nil},
	{"opt", []float64{7, math.NaN(), 8, math.NaN()}, nil},
	{"name", nil, ErrTypeCast},
	{"flag", nil, ErrTypeCast},
	{"missing", nil, ErrColumnNotFound},
}

func TestNumeric(t *testing.T) {
	tbl := sample(t)
	for i, tc := range numericTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got, err := tbl.Numeric(tc.col)
			if tc.err != nil {
				test.That(t, errors.Is(err, tc.err), "unexpected error", err)
				var ce *ColumnError
				test.That(t, errors.As(err, &ce))
				test.T(t, ce.Column, tc.col)
				return
			}
			test.Error(t, err)
			equalFloats(t, got, tc.want)
		})
	}
}

var stringsTests = []struct {
	col  string
	want []string
}{
	{"name", []string{"b", "a", "b", "c"}},
	{"count", []string{"3", "1", "4", "1"}},
	{"value", []string{"0.5", "", "2", "1e+21"}},
	{"flag", []string{"true", "false", "true", "true"}},
	{"opt", []string{"7", "", "8", ""}},
}

func TestStrings(t *testing.T) {
	tbl := sample(t)
	for i, tc := range stringsTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got, err := tbl.Strings(tc.col)
			test.Error(t, err)
			test.T(t, got, tc.want)
		})
	}
	_, err := tbl.Strings("missing")
	test.That(t, errors.Is(err, ErrColumnNotFound))
}

func TestColumnError(t *testing.T) {
	test.T(t, notFound("x").Error(), `data: column "x": column not found`)
	err := &ColumnError{Column: "x", Want: "numeric", Row: 2, Err: ErrTypeCast}
	test.T(t, err.Error(), `data: column "x" row 2: cannot cast column to numeric`)
	err.Row = -1
	test.T(t, err.Error(), `data: column "x": cannot cast column to numeric`)
}

func TestFromColumns(t *testing.T) {
	tbl := sample(t)
	test.T(t, tbl.Len(), 4)
	test.T(t, tbl.Columns(), []string{"name", "count", "value", "text", "flag", "opt"})
	test.That(t, tbl.Has("flag") && !tbl.Has("missing"))
	test.That(t, tbl.Raw() != nil)

	_, err := FromColumns(Column{Name: "a", Data: []int{1, 2}}, Column{Name: "b", Data: []int{1}})
	test.That(t, errors.Is(err, ErrLength))
	_, err = FromColumns(Column{Name: "a", Data: 3})
	test.That(t, errors.Is(err, ErrTypeCast))

	test.T(t, len(New(nil).Columns()), 0)
}

func TestReadCSV(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("name,terms,score\nWashington,2,1.5\nAdams,1,NA\n"))
	test.Error(t, err)
	test.T(t, tbl.Len(), 2)

	terms, err := tbl.Numeric("terms")
	test.Error(t, err)
	equalFloats(t, terms, []float64{2, 1})

	// NA keeps the column a string column but Numeric still parses it.
	score, err := tbl.Numeric("score")
	test.Error(t, err)
	equalFloats(t, score, []float64{1.5, math.NaN()})

	_, err = ReadCSV(strings.NewReader(""))
	test.That(t, err != nil, "empty input must fail")
}

func TestSelectAndWith(t *testing.T) {
	tbl := sample(t)
	sel := tbl.Select([]int{2, 0})
	names, err := sel.Strings("name")
	test.Error(t, err)
	test.T(t, names, []string{"b", "b"})
	counts, err := sel.Numeric("count")
	test.Error(t, err)
	equalFloats(t, counts, []float64{4, 3})

	wide, err := tbl.With("double", []float64{6, 2, 8, 2})
	test.Error(t, err)
	test.That(t, wide.Has("double") && !tbl.Has("double"), "With must not modify its receiver")

	_, err = tbl.With("short", []float64{1})
	test.That(t, errors.Is(err, ErrLength))
	_, err = tbl.With("scalar", 1.0)
	test.That(t, errors.Is(err, ErrTypeCast))
}

func TestGroupBy(t *testing.T) {
	tbl := sample(t)
	groups, err := tbl.GroupBy("name")
	test.Error(t, err)
	test.T(t, len(groups), 3)

	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	test.T(t, keys, []string{"b", "a", "c"})

	counts, err := groups[0].Rows.Numeric("count")
	test.Error(t, err)
	equalFloats(t, counts, []float64{3, 4})
	test.That(t, !groups[0].Rows.Has(keyColumn), "scratch column leaked")

	_, err = tbl.GroupBy("missing")
	test.That(t, errors.Is(err, ErrColumnNotFound))
}
