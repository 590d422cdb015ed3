package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/vdobler/subplot"
	"github.com/vdobler/subplot/data"
	"github.com/vdobler/subplot/geom"
)

// Config describes a figure. It is read from a YAML file or from a JSON
// file which may contain comments and trailing commas.
type Config struct {
	// Title of the figure.
	Title string `yaml:"title" json:"title"`

	// Data is the CSV file holding the table. Relative paths are
	// resolved against the directory of the config file.
	Data string `yaml:"data" json:"data"`

	// Labels are the axis and legend titles.
	Labels LabelsConfig `yaml:"labels" json:"labels"`

	// Facet splits the table into one panel per value of a column. A
	// faceted figure has exactly one plot.
	Facet *FacetConfig `yaml:"facet,omitempty" json:"facet,omitempty"`

	// Grid arranges several plots.
	Grid GridConfig `yaml:"grid" json:"grid"`

	// Layout is merged into the layout of the figure. Nested objects are
	// merged key by key.
	Layout map[string]interface{} `yaml:"layout" json:"layout"`

	Plots []PlotConfig `yaml:"plots" json:"plots"`
}

type LabelsConfig struct {
	X      string `yaml:"x" json:"x"`
	Y      string `yaml:"y" json:"y"`
	Z      string `yaml:"z" json:"z"`
	Legend string `yaml:"legend" json:"legend"`
}

type FacetConfig struct {
	Column string `yaml:"column" json:"column"`

	Rows int `yaml:"rows" json:"rows"`
	Cols int `yaml:"cols" json:"cols"`

	// Scales is one of shared, free_x, free_y or free.
	Scales string   `yaml:"scales" json:"scales"`
	HGap   *float64 `yaml:"hgap" json:"hgap"`
	VGap   *float64 `yaml:"vgap" json:"vgap"`

	// Bins facets a numeric column on that many intervals.
	Bins int `yaml:"bins" json:"bins"`

	// Order lists facet keys in the wanted order. Unlisted keys follow
	// in lexical order.
	Order []string `yaml:"order" json:"order"`
}

type GridConfig struct {
	Rows   int      `yaml:"rows" json:"rows"`
	Cols   int      `yaml:"cols" json:"cols"`
	Scales string   `yaml:"scales" json:"scales"`
	HGap   *float64 `yaml:"hgap" json:"hgap"`
	VGap   *float64 `yaml:"vgap" json:"vgap"`
}

// PlotConfig selects a builder by Kind and sets its fields. Fields which
// do not apply to Kind are ignored.
type PlotConfig struct {
	Kind   string `yaml:"kind" json:"kind"`
	Title  string `yaml:"title" json:"title"`
	XTitle string `yaml:"x_title" json:"x_title"`
	YTitle string `yaml:"y_title" json:"y_title"`
	Name   string `yaml:"name" json:"name"`

	X    string `yaml:"x" json:"x"`
	Y    string `yaml:"y" json:"y"`
	Z    string `yaml:"z" json:"z"`
	Text string `yaml:"text" json:"text"`

	Group     string    `yaml:"group" json:"group"`
	SizeBy    string    `yaml:"size_by" json:"size_by"`
	SizeRange []float64 `yaml:"size_range" json:"size_range"`

	Mode       string  `yaml:"mode" json:"mode"`
	Markers    bool    `yaml:"markers" json:"markers"`
	Error      string  `yaml:"error" json:"error"`
	Horizontal bool    `yaml:"horizontal" json:"horizontal"`
	Points     string  `yaml:"points" json:"points"`
	Bins       int     `yaml:"bins" json:"bins"`
	Norm       string  `yaml:"norm" json:"norm"`
	ColorScale string  `yaml:"colorscale" json:"colorscale"`
	Hole       float64 `yaml:"hole" json:"hole"`

	Labels  string   `yaml:"labels" json:"labels"`
	Values  string   `yaml:"values" json:"values"`
	Source  string   `yaml:"source" json:"source"`
	Target  string   `yaml:"target" json:"target"`
	Value   string   `yaml:"value" json:"value"`
	Columns []string `yaml:"columns" json:"columns"`

	R     string `yaml:"r" json:"r"`
	Theta string `yaml:"theta" json:"theta"`
	Lat   string `yaml:"lat" json:"lat"`
	Lon   string `yaml:"lon" json:"lon"`
	I     string `yaml:"i" json:"i"`
	J     string `yaml:"j" json:"j"`
	K     string `yaml:"k" json:"k"`

	Colors  []string `yaml:"colors" json:"colors"`
	Shapes  []string `yaml:"shapes" json:"shapes"`
	Dashes  []string `yaml:"dashes" json:"dashes"`
	Opacity float64  `yaml:"opacity" json:"opacity"`
	Size    float64  `yaml:"size" json:"size"`
	Width   float64  `yaml:"width" json:"width"`
}

var errNoPlots = errors.New("config has no plots")

// LoadConfig reads the config file path. The format is selected by the
// extension: .yaml and .yml for YAML, .json and .jsonc for JSON.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	c, err := ParseConfig(raw, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c.Data != "" && !filepath.IsAbs(c.Data) {
		c.Data = filepath.Join(filepath.Dir(path), c.Data)
	}
	return c, nil
}

// ParseConfig parses raw in the format given by the file extension ext.
// Unknown fields are an error.
func ParseConfig(raw []byte, ext string) (*Config, error) {
	c := &Config{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && err != io.EOF {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case ".json", ".jsonc":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(raw)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config format %q", ext)
	}
	return c, nil
}

// ReadData reads the CSV table c.Data.
func (c *Config) ReadData() (*data.Table, error) {
	if c.Data == "" {
		return nil, errors.New("no data file given")
	}
	f, err := os.Open(c.Data)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return data.ReadCSV(f)
}

// Figure builds the figure described by c from t.
func (c *Config) Figure(t *data.Table) (*subplot.Figure, error) {
	if len(c.Plots) == 0 {
		return nil, errNoPlots
	}
	labels := geom.Labels{Title: c.Title, X: c.Labels.X, Y: c.Labels.Y, Z: c.Labels.Z, Legend: c.Labels.Legend}

	if c.Facet != nil {
		if len(c.Plots) != 1 {
			return nil, fmt.Errorf("facet needs exactly one plot, got %d", len(c.Plots))
		}
		b, err := c.Plots[0].builder()
		if err != nil {
			return nil, err
		}
		cfg, err := c.Facet.config()
		if err != nil {
			return nil, err
		}
		cfg.Layout = labels.Layout()
		mergeLayout(cfg.Layout, c.Layout)
		return geom.Facet(b, t, c.Facet.Column, geom.Labels{}, cfg)
	}

	figs := make([]*subplot.Figure, len(c.Plots))
	for i, p := range c.Plots {
		b, err := p.builder()
		if err != nil {
			return nil, fmt.Errorf("plot %d: %w", i, err)
		}
		l := labels
		l.Title = p.Title
		if p.XTitle != "" {
			l.X = p.XTitle
		}
		if p.YTitle != "" {
			l.Y = p.YTitle
		}
		if len(c.Plots) == 1 && c.Title != "" {
			l.Title = c.Title
		}
		if figs[i], err = geom.Plot(b, t, l); err != nil {
			return nil, fmt.Errorf("plot %d: %w", i, err)
		}
	}
	if len(figs) == 1 {
		mergeLayout(figs[0].Layout, c.Layout)
		return figs[0], nil
	}

	scales, err := subplot.ParseScales(c.Grid.Scales)
	if err != nil {
		return nil, err
	}
	return subplot.NewGridFigure(figs, subplot.GridConfig{
		Rows:   c.Grid.Rows,
		Cols:   c.Grid.Cols,
		Scales: scales,
		HGap:   c.Grid.HGap,
		VGap:   c.Grid.VGap,
		Title:  c.Title,
		Layout: c.Layout,
	})
}

// mergeLayout copies src into dst. Objects present in both are merged.
func mergeLayout(dst subplot.Layout, src map[string]interface{}) {
	for k, v := range src {
		m, ok := v.(map[string]interface{})
		if _, exists := dst[k].(map[string]interface{}); !ok || !exists {
			dst[k] = v
			continue
		}
		obj := dst.Object(k)
		for kk, vv := range m {
			obj[kk] = vv
		}
	}
}

func (f *FacetConfig) config() (subplot.FacetConfig, error) {
	if f.Column == "" {
		return subplot.FacetConfig{}, errors.New("facet column not set")
	}
	scales, err := subplot.ParseScales(f.Scales)
	if err != nil {
		return subplot.FacetConfig{}, err
	}
	cfg := subplot.FacetConfig{
		Rows:   f.Rows,
		Cols:   f.Cols,
		Scales: scales,
		HGap:   f.HGap,
		VGap:   f.VGap,
		Bins:   f.Bins,
	}
	if len(f.Order) > 0 {
		cfg.Sorter = ordered(f.Order)
	}
	return cfg, nil
}

// ordered sorts the keys in order first, all others lexically after them.
func ordered(order []string) subplot.Sorter {
	rank := make(map[string]int, len(order))
	for i, k := range order {
		rank[k] = i
	}
	return func(a, b string) int {
		ra, oka := rank[a]
		rb, okb := rank[b]
		switch {
		case oka && okb:
			return ra - rb
		case oka:
			return -1
		case okb:
			return 1
		}
		return subplot.Lexical(a, b)
	}
}

func (p PlotConfig) style() (geom.Style, error) {
	st := geom.Style{Opacity: p.Opacity, Size: p.Size, Width: p.Width}
	for _, s := range p.Colors {
		c, err := subplot.ParseColor(s)
		if err != nil {
			return st, err
		}
		st.Colors = append(st.Colors, c)
	}
	for _, s := range p.Shapes {
		shape, ok := lookup(s, 10, func(i int) string { return geom.Shape(i).String() })
		if !ok {
			return st, fmt.Errorf("unknown shape %q", s)
		}
		st.Shapes = append(st.Shapes, geom.Shape(shape))
	}
	for _, s := range p.Dashes {
		dash, ok := lookup(s, 6, func(i int) string { return geom.Dash(i).String() })
		if !ok {
			return st, fmt.Errorf("unknown dash %q", s)
		}
		st.Dashes = append(st.Dashes, geom.Dash(dash))
	}
	return st, nil
}

func lookup(s string, n int, name func(int) string) (int, bool) {
	for i := 0; i < n; i++ {
		if name(i) == s {
			return i, true
		}
	}
	return 0, false
}

// builder returns the trace builder selected by p.Kind.
func (p PlotConfig) builder() (subplot.Builder, error) {
	st, err := p.style()
	if err != nil {
		return nil, err
	}
	g := geom.Grouping{Group: p.Group}

	switch strings.ToLower(p.Kind) {
	case "", "scatter":
		s := &geom.Scatter{X: p.X, Y: p.Y, Text: p.Text, SizeBy: p.SizeBy, Mode: p.Mode, Name: p.Name, Grouping: g, Style: st}
		if len(p.SizeRange) == 2 {
			s.SizeRange = [2]float64{p.SizeRange[0], p.SizeRange[1]}
		}
		return s, nil
	case "line":
		return &geom.Line{X: p.X, Y: p.Y, Markers: p.Markers, Name: p.Name, Grouping: g, Style: st}, nil
	case "bar":
		return &geom.Bar{X: p.X, Y: p.Y, Error: p.Error, Horizontal: p.Horizontal, Mode: p.Mode, Name: p.Name, Grouping: g, Style: st}, nil
	case "box":
		return &geom.Box{X: p.X, Y: p.Y, Horizontal: p.Horizontal, Points: p.Points, Name: p.Name, Grouping: g, Style: st}, nil
	case "histogram":
		return &geom.Histogram{X: p.X, Bins: p.Bins, Norm: p.Norm, Name: p.Name, Grouping: g, Style: st}, nil
	case "heatmap":
		return geom.Heatmap{X: p.X, Y: p.Y, Z: p.Z, ColorScale: p.ColorScale, Name: p.Name}, nil
	case "pie":
		return geom.Pie{Labels: p.Labels, Values: p.Values, Hole: p.Hole, Name: p.Name, Style: st}, nil
	case "sankey":
		return geom.Sankey{Source: p.Source, Target: p.Target, Value: p.Value, Name: p.Name}, nil
	case "table":
		return geom.TableChart{Columns: p.Columns, Name: p.Name}, nil
	case "scatter3d":
		return &geom.Scatter3D{X: p.X, Y: p.Y, Z: p.Z, Mode: p.Mode, Name: p.Name, Grouping: g, Style: st}, nil
	case "mesh3d":
		return geom.Mesh3D{X: p.X, Y: p.Y, Z: p.Z, I: p.I, J: p.J, K: p.K, Name: p.Name, Style: st}, nil
	case "scatterpolar":
		return &geom.ScatterPolar{R: p.R, Theta: p.Theta, Mode: p.Mode, Name: p.Name, Grouping: g, Style: st}, nil
	case "scattergeo":
		return &geom.ScatterGeo{Lat: p.Lat, Lon: p.Lon, Text: p.Text, Name: p.Name, Grouping: g, Style: st}, nil
	}
	return nil, fmt.Errorf("unknown plot kind %q", p.Kind)
}
