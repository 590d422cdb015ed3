package geom

import (
	"github.com/vdobler/subplot"
	"github.com/vdobler/subplot/data"
)

// Pie shows the share of each label. Without a Values column every row
// counts once, so the pie shows the label frequencies.
type Pie struct {
	Labels string
	Values string // Optional.

	// Hole is the fraction of the radius cut out, making it a donut.
	Hole float64

	Name  string
	Style // Colors are applied per slice.
}

// Traces implements subplot.Builder.
func (p Pie) Traces(t *data.Table) ([]subplot.Trace, error) {
	if p.Labels == "" {
		return nil, ErrMissingColumn
	}
	labels, err := t.Strings(p.Labels)
	if err != nil {
		return nil, err
	}

	var vals []float64
	if p.Values != "" {
		if vals, err = t.Numeric(p.Values); err != nil {
			return nil, err
		}
	} else {
		vals = make([]float64, len(labels))
		for i := range vals {
			vals[i] = 1
		}
	}

	// Sum the values per label, keeping the first-seen label order.
	var keys []string
	sums := make(map[string]float64)
	for i, l := range labels {
		if _, ok := sums[l]; !ok {
			keys = append(keys, l)
		}
		sums[l] += vals[i]
	}
	vs := make([]float64, len(keys))
	for i, k := range keys {
		vs[i] = sums[k]
	}

	tr := subplot.Trace{"type": "pie", "labels": keys, "values": values(vs)}
	if p.Hole > 0 && p.Hole < 1 {
		tr["hole"] = p.Hole
	}
	if len(p.Colors) > 0 {
		colors := make([]string, len(keys))
		for i := range keys {
			colors[i] = p.Colors[i%len(p.Colors)].String()
		}
		tr["marker"] = map[string]interface{}{"colors": colors}
	}
	if p.Name != "" {
		tr["name"] = p.Name
	}
	p.apply(tr)
	return []subplot.Trace{tr}, nil
}

// Sankey draws flows of size Value from node Source to node Target. The
// nodes are the distinct source and target labels in order of appearance.
type Sankey struct {
	Source, Target string
	Value          string // Optional, every row is a flow of 1 if empty.

	Name string
}

// Traces implements subplot.Builder.
func (s Sankey) Traces(t *data.Table) ([]subplot.Trace, error) {
	if s.Source == "" || s.Target == "" {
		return nil, ErrMissingColumn
	}
	src, err := t.Strings(s.Source)
	if err != nil {
		return nil, err
	}
	dst, err := t.Strings(s.Target)
	if err != nil {
		return nil, err
	}
	var vals []float64
	if s.Value != "" {
		if vals, err = t.Numeric(s.Value); err != nil {
			return nil, err
		}
	}

	var nodes []string
	index := make(map[string]int)
	node := func(l string) int {
		i, ok := index[l]
		if !ok {
			i = len(nodes)
			index[l] = i
			nodes = append(nodes, l)
		}
		return i
	}
	sources := make([]int, len(src))
	targets := make([]int, len(src))
	for i := range src {
		sources[i] = node(src[i])
		targets[i] = node(dst[i])
	}
	if vals == nil {
		vals = make([]float64, len(src))
		for i := range vals {
			vals[i] = 1
		}
	}

	tr := subplot.Trace{
		"type": "sankey",
		"node": map[string]interface{}{"label": nodes},
		"link": map[string]interface{}{
			"source": sources,
			"target": targets,
			"value":  values(vals),
		},
	}
	if s.Name != "" {
		tr["name"] = s.Name
	}
	return []subplot.Trace{tr}, nil
}

// TableChart shows the cells of a table. Columns defaults to all columns
// of the data.
type TableChart struct {
	Columns []string
	Name    string
}

// Traces implements subplot.Builder.
func (tc TableChart) Traces(t *data.Table) ([]subplot.Trace, error) {
	cols := tc.Columns
	if len(cols) == 0 {
		cols = t.Columns()
	}
	cells := make([][]string, len(cols))
	for i, col := range cols {
		ss, err := t.Strings(col)
		if err != nil {
			return nil, err
		}
		cells[i] = ss
	}
	tr := subplot.Trace{
		"type":   "table",
		"header": map[string]interface{}{"values": cols},
		"cells":  map[string]interface{}{"values": cells},
	}
	if tc.Name != "" {
		tr["name"] = tc.Name
	}
	return []subplot.Trace{tr}, nil
}
