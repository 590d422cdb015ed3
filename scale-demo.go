//go:build ignore

package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/vdobler/subplot"
	"github.com/vdobler/subplot/data"
	"github.com/vdobler/subplot/geom"
	"github.com/vdobler/subplot/render"
)

func main() {
	var x, y []float64
	var group []string
	v := 10.0
	for i := 0; i < 50; i++ {
		x = append(x, v+rand.NormFloat64()+v/10)
		y = append(y, float64(i)+2*rand.NormFloat64())
		group = append(group, []string{"a", "b"}[i%2])
		v *= 1.2
	}
	t, err := data.FromColumns(
		data.Column{Name: "x", Data: x},
		data.Column{Name: "y", Data: y},
		data.Column{Name: "group", Data: group},
	)
	if err != nil {
		log.Fatal(err)
	}

	for i, sc := range []subplot.Scales{subplot.Shared, subplot.FreeX, subplot.FreeY, subplot.Free} {
		cfg := subplot.FacetConfig{
			Scales: sc,
			Layout: subplot.Layout{"xaxis": map[string]interface{}{"type": "log"}},
		}
		fig, err := geom.Facet(&geom.Scatter{X: "x", Y: "y"}, t, "group",
			geom.Labels{Title: "Scales " + sc.String(), X: "x (log)", Y: "y"}, cfg)
		if err != nil {
			log.Fatal(err)
		}
		name := fmt.Sprintf("testdata/scale-%02d.png", i)
		if err := render.WriteFile(name, fig, render.ImageOptions{Width: 600, Height: 480}); err != nil {
			log.Fatal(err)
		}
	}
}
