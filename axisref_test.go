package subplot

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/tdewolff/test"
)

var classifyTests = []struct {
	kind string
	want Family
}{
	{"", Cartesian},
	{"scatter", Cartesian},
	{"bar", Cartesian},
	{"histogram", Cartesian},
	{"heatmap", Cartesian},
	{"scatter3d", Scene},
	{"mesh3d", Scene},
	{"surface", Scene},
	{"scatterpolar", Polar},
	{"barpolar", Polar},
	{"scattergeo", Geo},
	{"scattermapbox", Map},
	{"pie", Domain},
	{"sankey", Domain},
	{"table", Domain},
}

func TestClassify(t *testing.T) {
	for i, tc := range classifyTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			tr := Trace{}
			if tc.kind != "" {
				tr["type"] = tc.kind
			}
			got, err := Classify(tr)
			if err != nil {
				t.Fatalf("Classify(%q) failed: %v", tc.kind, err)
			}
			if got != tc.want {
				t.Errorf("Classify(%q) = %s, want %s", tc.kind, got, tc.want)
			}
		})
	}

	_, err := Classify(Trace{"type": "hologram"})
	test.That(t, errors.Is(err, ErrUnsupportedTraceKind))
}

var rebindTests = []struct {
	trace Trace
	field string
	want  interface{}
}{
	{Trace{"type": "scatter"}, "xaxis", "x3"},
	{Trace{"type": "scatter"}, "yaxis", "y3"},
	{Trace{"type": "bar", "xaxis": "x"}, "xaxis", "x3"},
	{Trace{"type": "scatter3d"}, "scene", "scene3"},
	{Trace{"type": "scatterpolar"}, "subplot", "polar3"},
	{Trace{"type": "densitymapbox"}, "subplot", "mapbox3"},
	{Trace{"type": "scattergeo"}, "geo", "geo3"},
	{Trace{"type": "pie"}, "domain", map[string]interface{}{
		"x": []float64{0.55, 0.95},
		"y": []float64{0.05, 0.45},
	}},
}

func TestRebind(t *testing.T) {
	g, err := NewGrid(3, 0, 0, 0.1, 0.1)
	test.Error(t, err)
	p := g.Panels()[2]
	p.Col = 1 // move it into the blank cell
	p.Domain = g.Domain(1, 1)

	for i, tc := range rebindTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			orig := tc.trace.Clone()
			got, err := Rebind(tc.trace, p)
			if err != nil {
				t.Fatalf("Rebind failed: %v", err)
			}
			if !reflect.DeepEqual(got[tc.field], tc.want) {
				t.Errorf("Rebind(%v).%s = %v, want %v", tc.trace, tc.field, got[tc.field], tc.want)
			}
			if !reflect.DeepEqual(tc.trace, orig) {
				t.Errorf("Rebind modified its input: %v", tc.trace)
			}

			again, err := Rebind(got, p)
			test.Error(t, err)
			if !reflect.DeepEqual(again, got) {
				t.Errorf("Rebind not idempotent: %v != %v", again, got)
			}
		})
	}
}

func TestRebindFirstPanel(t *testing.T) {
	tr := Trace{"type": "scatter", "x": []float64{1, 2}, "name": "a"}
	got, err := Rebind(tr, Panel{Domain: Rect{0, 1, 0, 1}})
	test.Error(t, err)
	test.T(t, got["xaxis"], "x")
	test.T(t, got["yaxis"], "y")
	test.T(t, got["name"], "a")
	test.T(t, PanelIndex(got), 0)

	got, err = Rebind(tr, Panel{Index: 11})
	test.Error(t, err)
	test.T(t, got["xaxis"], "x12")
	test.T(t, PanelIndex(got), 11)
}

func TestRebindUnknown(t *testing.T) {
	_, err := Rebind(Trace{"type": "hologram"}, Panel{Index: 4})
	var ke *TraceKindError
	test.That(t, errors.As(err, &ke))
	test.T(t, ke.Panel, 4)
	test.T(t, ke.Kind, "hologram")
}

func TestFamilyString(t *testing.T) {
	var tests = []struct {
		f    Family
		want string
	}{
		{Cartesian, "cartesian"},
		{Scene, "scene"},
		{Domain, "domain"},
		{Family(6), "Family(6)"},
		{Family(-2), "Family(-2)"},
	}
	for i, tt := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			test.T(t, tt.f.String(), tt.want)
		})
	}
}
