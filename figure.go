package subplot

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Figure is a finished figure: the traces, the layout and the panels the
// traces are drawn into. A single plot has one panel covering the whole
// figure and a nil Grid.
type Figure struct {
	Traces []Trace
	Layout Layout
	Panels []Panel
	Grid   *Grid
}

// NewFigure returns a single-panel figure.
func NewFigure(traces []Trace, layout Layout) *Figure {
	if layout == nil {
		layout = Layout{}
	}
	return &Figure{
		Traces: traces,
		Layout: layout,
		Panels: []Panel{{Domain: Rect{0, 1, 0, 1}, Title: layout.Title()}},
	}
}

// MarshalJSON encodes f as {"data": [...], "layout": {...}}.
func (f *Figure) MarshalJSON() ([]byte, error) {
	doc := struct {
		Data   []Trace `json:"data"`
		Layout Layout  `json:"layout"`
	}{f.Traces, f.Layout}
	if doc.Data == nil {
		doc.Data = []Trace{}
	}
	if doc.Layout == nil {
		doc.Layout = Layout{}
	}
	return json.Marshal(doc)
}

// Composite reports whether f consists of more than one panel.
func (f *Figure) Composite() bool {
	return f.Grid != nil && f.Grid.N > 1 || len(f.Panels) > 1
}

// Family returns the family shared by all traces of f. Figures without
// traces are Cartesian.
func (f *Figure) Family() (Family, error) {
	fam := Cartesian
	for i, tr := range f.Traces {
		g, err := Classify(tr)
		if err != nil {
			return Cartesian, err
		}
		if i > 0 && g != fam {
			return Cartesian, &TraceKindError{Kind: tr.Type(), Panel: -1, Err: ErrUnsupportedTraceKind}
		}
		fam = g
	}
	return fam, nil
}

// PanelIndex returns the index of the panel tr is bound to. Unbound
// cartesian traces belong to the first panel, -1 is returned for traces
// whose binding cannot be resolved.
func PanelIndex(tr Trace) int {
	fam, err := Classify(tr)
	if err != nil {
		return -1
	}
	var ref, base string
	switch fam {
	case Cartesian:
		ref, _ = tr["xaxis"].(string)
		base = "x"
	case Domain:
		return -1
	default:
		ref, _ = tr[fam.traceField()].(string)
		base = fam.subplotBase()
	}
	if ref == "" || ref == base {
		return 0
	}
	k, err := strconv.Atoi(strings.TrimPrefix(ref, base))
	if err != nil || k < 2 {
		return -1
	}
	return k - 1
}
