//go:build ignore

package main

import (
	"log"
	"math"

	"github.com/vdobler/subplot"
	"github.com/vdobler/subplot/data"
	"github.com/vdobler/subplot/geom"
	"github.com/vdobler/subplot/render"
)

// The legend lists each curve once even though every panel holds a trace
// of each curve.
func main() {
	var panel, curve []string
	var x, y []float64
	for p, f := range []float64{1, 2, 3} {
		for c, phase := range []float64{0, math.Pi / 2, math.Pi} {
			for i := 0; i <= 40; i++ {
				t := float64(i) / 40 * 2 * math.Pi
				panel = append(panel, []string{"slow", "medium", "fast"}[p])
				curve = append(curve, []string{"sin", "cos", "-sin"}[c])
				x = append(x, t)
				y = append(y, math.Sin(f*t+phase))
			}
		}
	}
	t, err := data.FromColumns(
		data.Column{Name: "panel", Data: panel},
		data.Column{Name: "curve", Data: curve},
		data.Column{Name: "x", Data: x},
		data.Column{Name: "y", Data: y},
	)
	if err != nil {
		log.Fatal(err)
	}

	lines := &geom.Line{
		X: "x", Y: "y",
		Grouping: geom.Grouping{Group: "curve"},
		Style: geom.Style{
			Colors: []subplot.RGB{{R: 0xd6, G: 0x27, B: 0x28}, {R: 0x1f, G: 0x77, B: 0xb4}, {R: 0x2c, G: 0xa0, B: 0x2c}},
			Dashes: []geom.Dash{geom.Solid, geom.Dashed, geom.Dot},
		},
	}
	order := func(a, b string) int {
		rank := map[string]int{"slow": 0, "medium": 1, "fast": 2}
		return rank[a] - rank[b]
	}
	fig, err := geom.Facet(lines, t, "panel", geom.Labels{Title: "Legend", X: "t", Y: "f(t)", Legend: "Curve"},
		subplot.FacetConfig{Cols: 3, Sorter: order})
	if err != nil {
		log.Fatal(err)
	}
	if err := render.WriteFile("testdata/guide.png", fig, render.ImageOptions{Width: 900, Height: 350}); err != nil {
		log.Fatal(err)
	}
}
