package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/tdewolff/test"
	"github.com/vdobler/subplot"
	"github.com/vdobler/subplot/data"
	"github.com/vdobler/subplot/geom"
)

var nan = math.NaN()

func penguins(t *testing.T) *data.Table {
	t.Helper()
	var species, island []string
	var bill, flipper []float64
	for i := 0; i < 8; i++ {
		for j, s := range []string{"Adelie", "Chinstrap", "Gentoo"} {
			species = append(species, s)
			island = append(island, []string{"Biscoe", "Dream"}[(i+j)%2])
			bill = append(bill, 38+float64(4*j)+float64(i)/2)
			flipper = append(flipper, 185+float64(12*j)+float64(i))
		}
	}
	tbl, err := data.FromColumns(
		data.Column{Name: "species", Data: species},
		data.Column{Name: "island", Data: island},
		data.Column{Name: "bill", Data: bill},
		data.Column{Name: "flipper", Data: flipper},
	)
	if err != nil {
		t.Fatalf("cannot build table: %v", err)
	}
	return tbl
}

func facetFigure(t *testing.T) *subplot.Figure {
	t.Helper()
	fig, err := geom.Facet(&geom.Scatter{X: "bill", Y: "flipper", Grouping: geom.Grouping{Group: "island"}},
		penguins(t), "species", geom.Labels{Title: "Penguins", X: "bill", Y: "flipper"}, subplot.FacetConfig{})
	if err != nil {
		t.Fatalf("cannot build figure: %v", err)
	}
	return fig
}

var parseFormatTests = []struct {
	s    string
	want Format
}{
	{"json", FormatJSON},
	{".HTML", FormatHTML},
	{"htm", FormatHTML},
	{"png", FormatPNG},
	{".jpg", FormatJPEG},
	{"jpeg", FormatJPEG},
	{"tif", FormatTIFF},
	{"svg", FormatSVG},
	{"pdf", FormatPDF},
	{".eps", FormatEPS},
}

func TestParseFormat(t *testing.T) {
	for i, tc := range parseFormatTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got, err := ParseFormat(tc.s)
			test.Error(t, err)
			test.T(t, got, tc.want)
		})
	}

	_, err := ParseFormat("gif")
	test.That(t, errors.Is(err, ErrUnsupportedFormat))
	f, err := FormatOf("/tmp/fig.svg")
	test.Error(t, err)
	test.T(t, f, FormatSVG)
	test.T(t, FormatTIFF.String(), "tiff")
	test.That(t, FormatEPS.Image() && !FormatHTML.Image())
}

func TestJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, JSON(buf, facetFigure(t)))

	var doc struct {
		Data   []map[string]interface{} `json:"data"`
		Layout map[string]interface{}   `json:"layout"`
	}
	test.Error(t, json.Unmarshal(buf.Bytes(), &doc))
	test.T(t, len(doc.Data), 6)
	_, ok := doc.Layout["xaxis3"]
	test.That(t, ok, "missing xaxis3")
	test.That(t, strings.Contains(buf.String(), "\n  \"data\""), "output must be indented")
}

func TestHTML(t *testing.T) {
	for _, raw := range []bool{false, true} {
		buf := &bytes.Buffer{}
		test.Error(t, HTML(buf, facetFigure(t), HTMLOptions{Raw: raw}))
		page := buf.String()
		test.That(t, strings.Contains(page, "cdn.plot.ly"), "missing plotly bundle")
		test.That(t, strings.Contains(page, "Plotly.newPlot"), "missing plot call")
		test.That(t, strings.Contains(page, `"xaxis2"`), "missing figure")
		test.That(t, strings.Contains(page, "<title>Penguins</title>"), "missing title")
	}

	buf := &bytes.Buffer{}
	test.Error(t, HTML(buf, facetFigure(t), HTMLOptions{Title: "<b>", CDN: "plotly.js", Raw: true}))
	test.That(t, strings.Contains(buf.String(), "&lt;b&gt;"), "title must be escaped")
	test.That(t, strings.Contains(buf.String(), `src="plotly.js"`), "custom bundle not used")
}

var magics = []struct {
	format Format
	magic  string
}{
	{FormatPNG, "\x89PNG"},
	{FormatJPEG, "\xff\xd8"},
	{FormatTIFF, "II*\x00"},
	{FormatSVG, "<svg"},
	{FormatPDF, "%PDF"},
	{FormatEPS, "%%!PS-Adobe"},
}

func TestImageFormats(t *testing.T) {
	fig := facetFigure(t)
	for i, tc := range magics {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			buf := &bytes.Buffer{}
			test.Error(t, Image(buf, fig, tc.format, ImageOptions{Width: 400, Height: 300}))
			out := buf.String()
			if tc.format == FormatSVG {
				test.That(t, strings.Contains(out, tc.magic), "not an svg image")
				return
			}
			test.That(t, strings.HasPrefix(out, tc.magic), "bad magic for", tc.format.String())
		})
	}
}

func TestImageTraceKinds(t *testing.T) {
	tbl := penguins(t)
	builders := []subplot.Builder{
		geom.Bar{X: "species", Y: "bill", Grouping: geom.Grouping{Group: "island"}},
		geom.Bar{X: "species", Y: "bill", Horizontal: true, Mode: "stack", Grouping: geom.Grouping{Group: "island"}},
		&geom.Box{X: "species", Y: "flipper", Grouping: geom.Grouping{Group: "island"}},
		geom.Box{Y: "flipper", Horizontal: true},
		&geom.Histogram{X: "bill", Bins: 5, Norm: "probability", Grouping: geom.Grouping{Group: "island"}},
		geom.Line{X: "bill", Y: "flipper", Markers: true},
	}
	for i, b := range builders {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			fig, err := geom.Plot(b, tbl, geom.Labels{Title: "kinds", X: "x", Y: "y"})
			test.Error(t, err)
			buf := &bytes.Buffer{}
			test.Error(t, Image(buf, fig, FormatSVG, ImageOptions{}))
			test.That(t, buf.Len() > 0, "empty image")
		})
	}
}

func TestImageLogAxis(t *testing.T) {
	fig := subplot.NewFigure([]subplot.Trace{
		{"type": "scatter", "mode": "lines", "x": []float64{1, 10, 100, 1000}, "y": []interface{}{1.0, nil, 3.0, 4.0}},
	}, subplot.Layout{"xaxis": map[string]interface{}{"type": "log"}})
	buf := &bytes.Buffer{}
	test.Error(t, Image(buf, fig, FormatPNG, ImageOptions{Width: 300, Height: 200, Scale: 2}))
}

func TestImageErrors(t *testing.T) {
	tbl := penguins(t)
	pie, err := geom.Plot(geom.Pie{Labels: "species"}, tbl, geom.Labels{})
	test.Error(t, err)
	err = Image(&bytes.Buffer{}, pie, FormatPNG, ImageOptions{})
	test.That(t, errors.Is(err, ErrUnsupportedKind))
	var re *Error
	test.That(t, errors.As(err, &re))
	test.T(t, re.Format, FormatPNG)

	heat, err := geom.Plot(geom.Heatmap{X: "species", Y: "island", Z: "bill"}, tbl, geom.Labels{})
	test.Error(t, err)
	err = Image(&bytes.Buffer{}, heat, FormatSVG, ImageOptions{})
	test.That(t, errors.Is(err, ErrUnsupportedKind))

	err = Image(&bytes.Buffer{}, facetFigure(t), FormatJSON, ImageOptions{})
	test.That(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	fig := facetFigure(t)
	for _, name := range []string{"fig.json", "fig.html", "fig.png"} {
		path := filepath.Join(dir, name)
		test.Error(t, WriteFile(path, fig, ImageOptions{Width: 300, Height: 300}))
		info, err := os.Stat(path)
		test.Error(t, err)
		test.That(t, info.Size() > 0, "empty file", name)
	}

	path := filepath.Join(dir, "fig.gif")
	err := WriteFile(path, fig, ImageOptions{})
	test.That(t, errors.Is(err, ErrUnsupportedFormat))
	_, err = os.Stat(path)
	test.That(t, os.IsNotExist(err), "no file must be created for unknown formats")

	pie := subplot.NewFigure([]subplot.Trace{{"type": "pie"}}, nil)
	path = filepath.Join(dir, "pie.svg")
	err = WriteFile(path, pie, ImageOptions{})
	test.That(t, errors.Is(err, ErrUnsupportedKind))
	_, err = os.Stat(path)
	test.That(t, os.IsNotExist(err), "failed output must be removed")
}

func TestShow(t *testing.T) {
	var opened string
	defer func(open func(string) error) { openURL = open }(openURL)
	openURL = func(url string) error {
		opened = url
		return nil
	}

	name, err := Show(facetFigure(t))
	test.Error(t, err)
	defer os.Remove(name)
	test.That(t, strings.HasPrefix(opened, "file://"), "bad url", opened)
	page, err := os.ReadFile(name)
	test.Error(t, err)
	test.That(t, bytes.Contains(page, []byte("Plotly.newPlot")))

	boom := errors.New("no browser")
	openURL = func(string) error { return boom }
	name, err = Show(facetFigure(t))
	defer os.Remove(name)
	test.That(t, errors.Is(err, boom))
}

// ----------------------------------------------------------------------------
// Drawing internals

func TestSlots(t *testing.T) {
	s := newSlots("group", 0.2, 2, []float64{2, 0, 1, 1})
	c, half := s.width(1, 0)
	test.Float(t, c, 0.8)
	test.Float(t, half, 0.2)
	c, _ = s.width(1, 1)
	test.Float(t, c, 1.2)

	s = newSlots("overlay", 0.2, 2, []float64{5})
	c, half = s.width(5, 1)
	test.Float(t, c, 5)
	test.Float(t, half, 0.4)
}

func TestBoxStats(t *testing.T) {
	q1, med, q3, lo, hi, out, ok := boxStats([]float64{9, 8, 7, 6, 5, 4, 3, 2, 1, 100, nan})
	test.That(t, ok)
	test.That(t, q1 < med && med < q3, "quartiles out of order")
	test.Float(t, lo, 1)
	test.Float(t, hi, 9)
	test.T(t, out, []float64{100})

	_, _, _, _, _, _, ok = boxStats([]float64{nan})
	test.That(t, !ok, "no box without data")
}

var histogramTests = []struct {
	norm string
	want []float64
}{
	{"", []float64{2, 3}},
	{"percent", []float64{40, 60}},
	{"probability", []float64{0.4, 0.6}},
	{"density", []float64{1, 1.5}},
	{"probability density", []float64{0.2, 0.3}},
}

func TestHistogram(t *testing.T) {
	part := subplot.NewPartitioner(2)
	xs := []float64{0, 1, 2, 3, 4, nan}
	part.Learn(xs...)
	for i, tc := range histogramTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := histogram(xs, part, tc.norm)
			for k := range tc.want {
				test.Float(t, got[k], tc.want[k])
			}
		})
	}
	test.T(t, sturges(1), 1)
	test.T(t, sturges(100), 8)
}

func TestAxis(t *testing.T) {
	l := subplot.Layout{"xaxis": map[string]interface{}{
		"type":  "log",
		"range": []interface{}{0.0, 3.0},
		"title": map[string]interface{}{"text": "size"},
	}}
	a := newAxis(l, "xaxis")
	test.That(t, a.log() && a.fixed)
	test.T(t, a.title, "size")
	test.Float(t, a.Min, 1)
	test.Float(t, a.Max, 1000)
	vs := a.values([]float64{100, 0, -3}, 0)
	test.Float(t, vs[0], 100)
	test.That(t, math.IsNaN(vs[1]) && math.IsNaN(vs[2]), "non-positive values on a log axis")
	a.finish()
	test.Float(t, a.unit(10), 1.0/3)
	test.Float(t, a.unit(1000), 1)
	test.That(t, math.IsInf(a.unit(math.Inf(-1)), -1))
	test.That(t, a.InRange(500) && !a.InRange(2000))
	for _, tick := range a.ticks() {
		test.That(t, tick.Value > 0, "log ticks must be positive")
	}

	c := newAxis(l, "yaxis")
	test.T(t, c.values([]string{"b", "a", "b"}, 0), []float64{0, 1, 0})
	test.T(t, c.values(nil, 2), []float64{0, 1})
	c.finish()
	test.Float(t, c.Min, -0.5)
	test.Float(t, c.Max, 1.5)
	ticks := c.ticks()
	test.T(t, len(ticks), 2)
	test.T(t, ticks[1].Label, "a")

	u := newAxis(l, "xaxis2")
	u.finish()
	test.Float(t, u.Min, -1)
	test.Float(t, u.Max, 1)
}

var axisScaleTests = []struct {
	typ      string
	data     subplot.Interval
	log      bool
	min, max float64
	v, unit  float64
}{
	{"", subplot.Interval{Min: 0, Max: 10}, false, -0.5, 10.5, 5, 0.5},
	{"log", subplot.Interval{Min: 1, Max: 100}, true, math.Pow(10, -0.1), math.Pow(10, 2.1), 10, 0.5},
	{"log", subplot.Interval{Min: 0, Max: 100}, false, -5, 105, 50, 0.5},
}

func TestAxisScale(t *testing.T) {
	for i, tc := range axisScaleTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			a := newAxis(subplot.Layout{"xaxis": map[string]interface{}{"type": tc.typ}}, "xaxis")
			a.Data = tc.data
			a.finish()
			test.T(t, a.log(), tc.log)
			test.Float(t, a.Min, tc.min)
			test.Float(t, a.Max, tc.max)
			test.Float(t, a.unit(tc.v), tc.unit)
			test.That(t, len(a.ticks()) > 0)
		})
	}
}

var linkAxesTests = []struct {
	matches  string
	lo0, lo1 float64
	hi0, hi1 float64
}{
	{"", 0, 20, 10, 30},
	{"y", 0, 0, 30, 30},
	{"y5", 0, 20, 10, 30},
}

func TestLinkAxes(t *testing.T) {
	for i, tc := range linkAxesTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			l := subplot.Layout{"yaxis2": map[string]interface{}{"matches": tc.matches}}
			fps := []subplot.Panel{{Index: 0}, {Index: 1}}
			panels := make([]*panel, len(fps))
			for k, fp := range fps {
				panels[k] = &panel{x: newAxis(l, fp.XAxisKey()), y: newAxis(l, fp.YAxisKey())}
				panels[k].y.Data = subplot.Interval{Min: float64(20 * k), Max: float64(20*k + 10)}
			}
			linkAxes(panels, fps)
			test.That(t, panels[0].y.Data.Min == tc.lo0 && panels[0].y.Data.Max == tc.hi0, "first data", panels[0].y.Data)
			test.That(t, panels[1].y.Data.Min == tc.lo1 && panels[1].y.Data.Max == tc.hi1, "second data", panels[1].y.Data)
			test.Float(t, panels[1].y.Min, panels[1].y.Data.Min-0.05*(tc.hi1-tc.lo1))
			test.Float(t, panels[0].x.Min, -1)
		})
	}
}
