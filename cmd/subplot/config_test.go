package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/tdewolff/test"

	"github.com/vdobler/subplot"
	"github.com/vdobler/subplot/data"
	"github.com/vdobler/subplot/render"
)

const penguinsCSV = `species,island,bill,flipper
Adelie,Torgersen,39.1,181
Adelie,Biscoe,37.8,174
Gentoo,Biscoe,46.1,211
Gentoo,Biscoe,50.0,230
Chinstrap,Dream,46.5,192
Chinstrap,Dream,50.0,196
`

func penguins(t *testing.T) *data.Table {
	t.Helper()
	tbl, err := data.ReadCSV(strings.NewReader(penguinsCSV))
	if err != nil {
		t.Fatalf("cannot read table: %v", err)
	}
	return tbl
}

const facetYAML = `
title: Penguins
data: penguins.csv
labels:
  x: Bill length
  y: Flipper length
facet:
  column: species
  cols: 2
  scales: free_y
  order: [Gentoo]
layout:
  xaxis:
    type: log
plots:
  - kind: scatter
    x: bill
    y: flipper
    group: island
    colors: ["#1f77b4", red]
    shapes: [circle, square]
`

func TestFacetConfig(t *testing.T) {
	c, err := ParseConfig([]byte(facetYAML), ".yaml")
	test.Error(t, err)
	test.T(t, c.Facet.Column, "species")
	test.T(t, c.Facet.Order, []string{"Gentoo"})

	fig, err := c.Figure(penguins(t))
	test.Error(t, err)
	test.T(t, len(fig.Panels), 3)
	test.T(t, fig.Panels[0].Title, "Gentoo")
	test.T(t, fig.Panels[1].Title, "Adelie")
	test.T(t, fig.Layout.Title(), "Penguins")
	test.T(t, fig.Layout.AxisTitle("xaxis"), "")
	test.T(t, fig.Layout.AxisTitle("xaxis3"), "Bill length")

	xaxis := fig.Layout["xaxis2"].(map[string]interface{})
	test.T(t, xaxis["type"], "log")
}

const gridJSONC = `{
  // Two unrelated plots side by side.
  "title": "Overview",
  "grid": {"cols": 2, "hgap": 0.2},
  "plots": [
    {"kind": "bar", "title": "Bills", "x": "species", "y": "bill", "mode": "stack"},
    /* one box per island */
    {"kind": "box", "title": "Flippers", "x": "island", "y": "flipper", "y_title": "mm"},
  ],
}`

func TestGridConfig(t *testing.T) {
	c, err := ParseConfig([]byte(gridJSONC), ".jsonc")
	test.Error(t, err)
	test.T(t, len(c.Plots), 2)

	fig, err := c.Figure(penguins(t))
	test.Error(t, err)
	test.T(t, len(fig.Panels), 2)
	test.T(t, fig.Panels[0].Title, "Bills")
	test.T(t, fig.Panels[1].Title, "Flippers")
	test.T(t, fig.Layout.Title(), "Overview")
	test.Float(t, fig.Panels[1].Domain.X0-fig.Panels[0].Domain.X1, 0.2)
}

func TestSinglePlotConfig(t *testing.T) {
	c := &Config{
		Title:  "Sizes",
		Layout: map[string]interface{}{"xaxis": map[string]interface{}{"type": "log"}, "showlegend": false},
		Plots:  []PlotConfig{{X: "bill", Y: "flipper", XTitle: "bill"}},
	}
	fig, err := c.Figure(penguins(t))
	test.Error(t, err)
	test.T(t, fig.Layout.Title(), "Sizes")
	test.T(t, fig.Layout.AxisTitle("xaxis"), "bill")
	test.T(t, fig.Layout["showlegend"], false)
	test.T(t, fig.Traces[0].Type(), "scatter")
}

var configErrorTests = []struct {
	raw string
	ext string
}{
	{"title: x\nunknown: 1\n", ".yaml"},
	{`{"title": "x", "unknown": 1}`, ".json"},
	{"title: [\n", ".yml"},
	{"title = x", ".toml"},
}

func TestParseConfigErrors(t *testing.T) {
	for i, tc := range configErrorTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := ParseConfig([]byte(tc.raw), tc.ext)
			test.That(t, err != nil, "expected error")
		})
	}

	c, err := ParseConfig(nil, ".yaml")
	test.Error(t, err)
	_, err = c.Figure(penguins(t))
	test.That(t, errors.Is(err, errNoPlots))
}

var builderErrorTests = []Config{
	{Plots: []PlotConfig{{Kind: "violin"}}},
	{Plots: []PlotConfig{{X: "bill", Y: "flipper", Shapes: []string{"blob"}}}},
	{Plots: []PlotConfig{{X: "bill", Y: "flipper", Dashes: []string{"wavy"}}}},
	{Plots: []PlotConfig{{X: "bill", Y: "flipper", Colors: []string{"#12"}}}},
	{Plots: []PlotConfig{{Kind: "pie", Labels: "nope"}}},
	{Facet: &FacetConfig{}, Plots: []PlotConfig{{X: "bill", Y: "flipper"}}},
	{Facet: &FacetConfig{Column: "species", Scales: "loose"}, Plots: []PlotConfig{{X: "bill", Y: "flipper"}}},
	{Facet: &FacetConfig{Column: "species"}, Plots: []PlotConfig{{}, {}}},
	{Grid: GridConfig{Scales: "loose"}, Plots: []PlotConfig{{X: "bill", Y: "flipper"}, {X: "bill", Y: "flipper"}}},
}

func TestFigureErrors(t *testing.T) {
	tbl := penguins(t)
	for i, c := range builderErrorTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := c.Figure(tbl)
			test.That(t, err != nil, "expected error")
		})
	}
}

var allKinds = []PlotConfig{
	{Kind: "scatter", X: "bill", Y: "flipper", SizeBy: "bill", SizeRange: []float64{2, 10}},
	{Kind: "line", X: "bill", Y: "flipper", Markers: true, Dashes: []string{"dot"}},
	{Kind: "bar", X: "species", Y: "bill", Horizontal: true},
	{Kind: "box", Y: "bill", Points: "all"},
	{Kind: "histogram", X: "bill", Bins: 3, Norm: "percent"},
	{Kind: "heatmap", X: "species", Y: "island", Z: "bill"},
	{Kind: "pie", Labels: "species", Hole: 0.4},
	{Kind: "sankey", Source: "island", Target: "species"},
	{Kind: "table", Columns: []string{"species", "bill"}},
	{Kind: "scatter3d", X: "bill", Y: "flipper", Z: "bill"},
	{Kind: "mesh3d", X: "bill", Y: "flipper", Z: "bill"},
	{Kind: "scatterpolar", R: "bill", Theta: "species"},
	{Kind: "ScatterGeo", Lat: "bill", Lon: "flipper"},
}

func TestAllKinds(t *testing.T) {
	tbl := penguins(t)
	for i, p := range allKinds {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			c := &Config{Plots: []PlotConfig{p}}
			fig, err := c.Figure(tbl)
			test.Error(t, err)
			test.That(t, len(fig.Traces) > 0, "no traces")
		})
	}
}

func TestOrdered(t *testing.T) {
	less := ordered([]string{"z", "m"})
	test.That(t, less("z", "m") < 0)
	test.That(t, less("m", "a") < 0)
	test.That(t, less("b", "z") > 0)
	test.That(t, less("a", "b") < 0)
	test.T(t, less("q", "q"), 0)
}

func TestMergeLayout(t *testing.T) {
	orig := map[string]interface{}{"title": map[string]interface{}{"text": "x"}}
	dst := subplot.Layout{"xaxis": orig, "width": 300}
	mergeLayout(dst, map[string]interface{}{
		"xaxis":  map[string]interface{}{"type": "log"},
		"width":  map[string]interface{}{"not": "merged"},
		"height": 200,
	})
	test.T(t, dst.AxisTitle("xaxis"), "x")
	test.T(t, dst.Object("xaxis")["type"], "log")
	test.T(t, dst["height"], 200)
	_, ok := orig["type"]
	test.That(t, !ok, "source object must not be modified")
	_, ok = dst["width"].(map[string]interface{})
	test.That(t, ok, "non-object values are replaced")
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	test.Error(t, os.WriteFile(filepath.Join(dir, "penguins.csv"), []byte(penguinsCSV), 0o644))
	cfgPath := filepath.Join(dir, "fig.yaml")
	test.Error(t, os.WriteFile(cfgPath, []byte(facetYAML), 0o644))

	out := filepath.Join(dir, "fig.json")
	stderr := &bytes.Buffer{}
	test.Error(t, run([]string{"--config", cfgPath, "-o", out, "-v"}, stderr))
	test.That(t, strings.Contains(stderr.String(), "level=DEBUG"), "missing debug log")
	test.That(t, strings.Contains(stderr.String(), "wrote figure"), "missing info log")

	raw, err := os.ReadFile(out)
	test.Error(t, err)
	var doc map[string]interface{}
	test.Error(t, json.Unmarshal(raw, &doc))
	test.T(t, len(doc["data"].([]interface{})), 4)

	png := filepath.Join(dir, "fig.png")
	test.Error(t, run([]string{"-c", cfgPath, "--data", filepath.Join(dir, "penguins.csv"), "-o", png, "--width", "300", "--height", "200"}, stderr))
	_, err = os.Stat(png)
	test.Error(t, err)

	err = run([]string{"-c", cfgPath, "-o", filepath.Join(dir, "fig.gif")}, stderr)
	test.That(t, errors.Is(err, render.ErrUnsupportedFormat))
	test.That(t, run([]string{"-o", out}, stderr) != nil, "missing config must fail")
	test.That(t, run([]string{"-c", cfgPath, "extra"}, stderr) != nil, "extra argument must fail")
	test.Error(t, run([]string{"--help"}, stderr))
}
