package subplot

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/tdewolff/test"
	"github.com/vdobler/subplot/data"
)

// penguins returns 18 rows, 6 per species, listed in non-sorted order.
func penguins(t *testing.T) *data.Table {
	t.Helper()
	var species []string
	var bill, flipper []float64
	for i := 0; i < 6; i++ {
		for j, s := range []string{"Gentoo", "Adelie", "Chinstrap"} {
			species = append(species, s)
			bill = append(bill, 35+float64(5*j)+float64(i))
			flipper = append(flipper, 180+float64(10*j)+2*float64(i))
		}
	}
	tbl, err := data.FromColumns(
		data.Column{Name: "species", Data: species},
		data.Column{Name: "bill_length", Data: bill},
		data.Column{Name: "flipper_length", Data: flipper},
	)
	if err != nil {
		t.Fatalf("cannot build table: %v", err)
	}
	return tbl
}

func TestPartition(t *testing.T) {
	tbl := penguins(t)
	facets, err := Partition(tbl, "species", nil)
	test.Error(t, err)
	test.T(t, len(facets), 3)

	total := 0
	for i, f := range facets {
		test.T(t, f.Key, []string{"Adelie", "Chinstrap", "Gentoo"}[i])
		species, err := f.Rows.Strings("species")
		test.Error(t, err)
		for _, s := range species {
			test.T(t, s, f.Key)
		}
		total += f.Rows.Len()
	}
	test.T(t, total, tbl.Len())
}

func TestPartitionSorter(t *testing.T) {
	tbl := penguins(t)
	byLength := func(a, b string) int { return len(a) - len(b) }
	facets, err := Partition(tbl, "species", byLength)
	test.Error(t, err)

	var keys []string
	for _, f := range facets {
		keys = append(keys, f.Key)
	}
	// Gentoo and Adelie tie, first-seen order is kept.
	test.T(t, strings.Join(keys, ","), "Gentoo,Adelie,Chinstrap")
}

func TestPartitionMissingColumn(t *testing.T) {
	_, err := Partition(penguins(t), "island", nil)
	test.That(t, errors.Is(err, data.ErrColumnNotFound))
}

var partitionerTests = []struct {
	x    float64
	want string
}{
	{0, "[0, 2.5)"},
	{2.4, "[0, 2.5)"},
	{2.5, "[2.5, 5)"},
	{9.9, "[7.5, 10]"},
	{10, "[7.5, 10]"},
	{12, "[7.5, 10]"},
	{-1, "[0, 2.5)"},
	{nan, ""},
}

func TestPartitioner(t *testing.T) {
	p := NewPartitioner(4)
	p.Learn(0, 3, 10)
	for i, tc := range partitionerTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := p.Partition(tc.x); got != tc.want {
				t.Errorf("Partition(%g) = %q, want %q", tc.x, got, tc.want)
			}
		})
	}
}

func TestPartitionBins(t *testing.T) {
	tbl := penguins(t)
	facets, err := PartitionBins(tbl, "bill_length", 2)
	test.Error(t, err)
	test.T(t, len(facets), 2)
	// bill_length covers [35, 50].
	test.T(t, facets[0].Key, "[35, 42.5)")
	test.T(t, facets[1].Key, "[42.5, 50]")
	test.T(t, facets[0].Rows.Len()+facets[1].Rows.Len(), tbl.Len())

	_, err = PartitionBins(tbl, "species", 2)
	test.That(t, errors.Is(err, data.ErrTypeCast))
}
