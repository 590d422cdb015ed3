package subplot

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vdobler/subplot/data"
)

// A Sorter orders facet keys. It returns a negative number if a sorts
// before b, a positive number if b sorts before a and zero otherwise.
type Sorter func(a, b string) int

// Lexical sorts keys by byte-wise string comparison.
var Lexical Sorter = strings.Compare

// A Facet is the subset of a table sharing one value of the facet column.
type Facet struct {
	Key  string
	Rows *data.Table
}

// Partition splits t by the string form of column col. The facet keys are
// sorted by sorter which defaults to Lexical. Sorting is stable, keys which
// compare equal keep the order they were first seen in. The facets are
// disjoint and together hold every row of t.
func Partition(t *data.Table, col string, sorter Sorter) ([]Facet, error) {
	groups, err := t.GroupBy(col)
	if err != nil {
		return nil, err
	}
	if sorter == nil {
		sorter = Lexical
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return sorter(groups[i].Key, groups[j].Key) < 0
	})

	facets := make([]Facet, len(groups))
	for i, g := range groups {
		facets[i] = Facet{Key: g.Key, Rows: g.Rows}
	}
	return facets, nil
}

// ----------------------------------------------------------------------------
// Binning

// A Partitioner turns a continuous value into a discrete factor by cutting
// the learned range into Partitions equally wide intervals.
type Partitioner struct {
	Partitions int
	Range      Interval
}

// NewPartitioner returns a Partitioner for n intervals with an unset range.
func NewPartitioner(n int) *Partitioner {
	return &Partitioner{Partitions: n, Range: UnsetInterval()}
}

// Learn extends the range of p to cover x.
func (p *Partitioner) Learn(x ...float64) { p.Range.Update(x...) }

// Bin returns the index of the interval x falls into. Values outside the
// learned range are clamped to the first and last interval; NaN yields -1.
func (p *Partitioner) Bin(x float64) int {
	if math.IsNaN(x) || !p.Range.IsSet() {
		return -1
	}
	n := p.partitions()
	w := (p.Range.Max - p.Range.Min) / float64(n)
	if w == 0 {
		return 0
	}
	k := int(math.Floor((x - p.Range.Min) / w))
	if k < 0 {
		k = 0
	}
	if k >= n {
		k = n - 1
	}
	return k
}

// Label returns the label of interval k. All intervals are half-open
// except the last one which includes the range maximum.
func (p *Partitioner) Label(k int) string {
	n := p.partitions()
	w := (p.Range.Max - p.Range.Min) / float64(n)
	a, b := p.Range.Min+float64(k)*w, p.Range.Min+float64(k+1)*w
	if k == n-1 {
		return fmt.Sprintf("[%g, %g]", a, p.Range.Max)
	}
	return fmt.Sprintf("[%g, %g)", a, b)
}

// Partition returns the label of the interval x falls into or "" for NaN.
func (p *Partitioner) Partition(x float64) string {
	k := p.Bin(x)
	if k < 0 {
		return ""
	}
	return p.Label(k)
}

func (p *Partitioner) partitions() int {
	if p.Partitions < 1 {
		return 1
	}
	return p.Partitions
}

// binColumn names the scratch column holding interval labels.
func binColumn(col string) string { return col + "\x00bin" }

// PartitionBins splits t into n intervals of the numeric column col. Keys
// are interval labels ordered by interval start; rows with a missing value
// form a facet with the empty key sorted last.
func PartitionBins(t *data.Table, col string, n int) ([]Facet, error) {
	xs, err := t.Numeric(col)
	if err != nil {
		return nil, err
	}
	p := NewPartitioner(n)
	p.Learn(xs...)

	labels := make([]string, len(xs))
	order := make(map[string]int)
	for i, x := range xs {
		k := p.Bin(x)
		if k < 0 {
			order[""] = math.MaxInt32
			continue
		}
		labels[i] = p.Label(k)
		order[labels[i]] = k
	}

	bc := binColumn(col)
	binned, err := t.With(bc, labels)
	if err != nil {
		return nil, err
	}
	return Partition(binned, bc, func(a, b string) int {
		return order[a] - order[b]
	})
}
