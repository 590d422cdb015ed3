//go:build ignore

package main

import (
	"log"
	"math"
	"math/rand"

	"github.com/vdobler/subplot"
	"github.com/vdobler/subplot/data"
	"github.com/vdobler/subplot/geom"
	"github.com/vdobler/subplot/render"
)

func main() {
	var site []string
	var day, temp, rain []float64
	for _, s := range []string{"Zurich", "Bern", "Lugano", "Davos", "Basel"} {
		base := 8 + 6*rand.Float64()
		for d := 0; d < 365; d += 7 {
			site = append(site, s)
			day = append(day, float64(d))
			temp = append(temp, base+10*math.Sin(2*math.Pi*float64(d-100)/365)+2*rand.NormFloat64())
			rain = append(rain, 40*rand.Float64())
		}
	}
	t, err := data.FromColumns(
		data.Column{Name: "site", Data: site},
		data.Column{Name: "day", Data: day},
		data.Column{Name: "temperature", Data: temp},
		data.Column{Name: "rain", Data: rain},
	)
	if err != nil {
		log.Fatal(err)
	}

	labels := geom.Labels{Title: "Weather", X: "Day of year", Y: "Temperature [°C]"}

	// One panel per site, two columns.
	fig, err := geom.Facet(&geom.Scatter{X: "day", Y: "temperature", Mode: "lines+markers"},
		t, "site", labels, subplot.FacetConfig{Cols: 2})
	if err != nil {
		log.Fatal(err)
	}
	for _, name := range []string{"testdata/facet.png", "testdata/facet.html"} {
		if err := render.WriteFile(name, fig, render.ImageOptions{Width: 800, Height: 900}); err != nil {
			log.Fatal(err)
		}
	}

	// Panels of rain binned into three intervals, grouped by site.
	fig, err = geom.Facet(&geom.Scatter{X: "day", Y: "temperature", Grouping: geom.Grouping{Group: "site"}},
		t, "rain", labels, subplot.FacetConfig{Bins: 3, Scales: subplot.FreeY})
	if err != nil {
		log.Fatal(err)
	}
	if err := render.WriteFile("testdata/facet-bins.png", fig, render.ImageOptions{Width: 1000, Height: 400}); err != nil {
		log.Fatal(err)
	}
}
