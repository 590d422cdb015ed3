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

func main() {
	var x, y, z, size []float64
	var kind []string
	for i := 0; i < 60; i++ {
		a := float64(i) / 60 * 4 * math.Pi
		x = append(x, math.Cos(a)*float64(i))
		y = append(y, math.Sin(a)*float64(i))
		z = append(z, float64(i))
		size = append(size, float64(i%7))
		kind = append(kind, []string{"one", "two", "three"}[i%3])
	}
	t, err := data.FromColumns(
		data.Column{Name: "x", Data: x},
		data.Column{Name: "y", Data: y},
		data.Column{Name: "z", Data: z},
		data.Column{Name: "size", Data: size},
		data.Column{Name: "kind", Data: kind},
	)
	if err != nil {
		log.Fatal(err)
	}

	points := &geom.Scatter{
		X: "x", Y: "y", SizeBy: "size",
		Grouping: geom.Grouping{Group: "kind"},
		Style:    geom.Style{Shapes: []geom.Shape{geom.Circle, geom.TriangleUp, geom.Square}},
	}
	fig, err := geom.Plot(points, t, geom.Labels{Title: "Geom Points", X: "X-Axis", Y: "Y-Axis", Legend: "Kind"})
	if err != nil {
		log.Fatal(err)
	}
	if err := render.WriteFile("testdata/points.png", fig, render.ImageOptions{}); err != nil {
		log.Fatal(err)
	}

	// 3D and polar points can only be shown in the browser.
	spiral, err := geom.Plot(geom.Scatter3D{X: "x", Y: "y", Z: "z", Grouping: geom.Grouping{Group: "kind"}},
		t, geom.Labels{Title: "Spiral"})
	if err != nil {
		log.Fatal(err)
	}
	polar, err := geom.Plot(geom.ScatterPolar{R: "z", Theta: "kind"}, t, geom.Labels{Title: "Polar"})
	if err != nil {
		log.Fatal(err)
	}
	for name, f := range map[string]*subplot.Figure{"testdata/spiral.html": spiral, "testdata/polar.html": polar} {
		if err := render.WriteFile(name, f, render.ImageOptions{}); err != nil {
			log.Fatal(err)
		}
	}
}
