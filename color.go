package subplot

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is an opaque color. It implements image/color.Color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r, g, b = uint32(c.R), uint32(c.G), uint32(c.B)
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// String returns c in the form "rgb(31,119,180)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Hex returns c in the form "#1f77b4".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// DefaultColorway is the sequence of colors assigned to named traces.
var DefaultColorway = []RGB{
	{31, 119, 180},
	{255, 127, 14},
	{44, 160, 44},
	{214, 39, 40},
	{148, 103, 189},
	{140, 86, 75},
	{227, 119, 194},
	{127, 127, 127},
	{188, 189, 34},
	{23, 190, 207},
}

var namedColors = map[string]RGB{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"blue":    {0, 0, 255},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"orange":  {255, 165, 0},
	"purple":  {128, 0, 128},
	"brown":   {165, 42, 42},
	"pink":    {255, 192, 203},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
}

// ParseColor parses colors of the form "#rgb", "#rrggbb", "rgb(r,g,b)",
// "rgba(r,g,b,a)" and a few color names. The alpha channel is dropped.
func ParseColor(s string) (RGB, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	switch {
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			break
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			break
		}
		return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	case strings.HasPrefix(s, "rgb"):
		open, end := strings.IndexByte(s, '('), strings.IndexByte(s, ')')
		if open < 0 || end < open {
			break
		}
		parts := strings.Split(s[open+1:end], ",")
		if len(parts) < 3 {
			break
		}
		var c [3]uint8
		for i := range c {
			v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
			if err != nil || v < 0 || v > 255 {
				return RGB{}, fmt.Errorf("subplot: bad color %q", s)
			}
			c[i] = uint8(v)
		}
		return RGB{c[0], c[1], c[2]}, nil
	}
	return RGB{}, fmt.Errorf("subplot: bad color %q", s)
}

// ApplyColorway gives every named trace without explicit color a color
// from DefaultColorway. Traces with the same name get the same color,
// names are numbered in the order they are first seen.
func ApplyColorway(trs []Trace) {
	index := make(map[string]int)
	for _, tr := range trs {
		name := tr.Name()
		if name == "" {
			continue
		}
		k, ok := index[name]
		if !ok {
			k = len(index)
			index[name] = k
		}
		if hasColor(tr) || !colorable(tr) {
			continue
		}
		c := DefaultColorway[k%len(DefaultColorway)].String()
		marker, _ := tr["marker"].(map[string]interface{})
		marker = cloneMap(marker)
		marker["color"] = c
		tr["marker"] = marker
		if mode, _ := tr["mode"].(string); strings.Contains(mode, "lines") || tr["line"] != nil {
			line, _ := tr["line"].(map[string]interface{})
			line = cloneMap(line)
			line["color"] = c
			tr["line"] = line
		}
	}
}

// colorable reports whether a single color applies to the whole trace.
func colorable(tr Trace) bool {
	f, err := Classify(tr)
	if err != nil || f == Domain {
		return false
	}
	switch tr.Type() {
	case "heatmap", "contour", "histogram2d", "surface", "image", "choropleth":
		return false
	}
	return true
}

func hasColor(tr Trace) bool {
	for _, k := range []string{"marker", "line"} {
		if m, ok := tr[k].(map[string]interface{}); ok && m["color"] != nil {
			return true
		}
	}
	return false
}

// TraceColor returns the color of tr: its marker color, its line color or
// def. Colors which cannot be parsed yield def.
func TraceColor(tr Trace, def RGB) RGB {
	for _, k := range []string{"marker", "line"} {
		m, _ := tr[k].(map[string]interface{})
		if s, ok := m["color"].(string); ok {
			if c, err := ParseColor(s); err == nil {
				return c
			}
		}
	}
	return def
}
