//go:build ignore

package main

import (
	"log"
	"math/rand"

	"github.com/vdobler/subplot/data"
	"github.com/vdobler/subplot/geom"
	"github.com/vdobler/subplot/render"
)

func main() {
	var x, y, pop []float64
	var continent []string
	for i := 0; i < 40; i++ {
		x = append(x, 1000+40000*rand.Float64())
		y = append(y, 50+30*rand.Float64())
		pop = append(pop, 1+200*rand.Float64()*rand.Float64())
		continent = append(continent, []string{"Africa", "Americas", "Asia", "Europe"}[i%4])
	}
	t, err := data.FromColumns(
		data.Column{Name: "gdp", Data: x},
		data.Column{Name: "life", Data: y},
		data.Column{Name: "pop", Data: pop},
		data.Column{Name: "continent", Data: continent},
	)
	if err != nil {
		log.Fatal(err)
	}

	bubbles := &geom.Scatter{
		X: "gdp", Y: "life",
		SizeBy:    "pop",
		SizeRange: [2]float64{4, 40},
		Grouping:  geom.Grouping{Group: "continent"},
		Style:     geom.Style{Opacity: 0.7},
	}
	fig, err := geom.Plot(bubbles, t, geom.Labels{Title: "Bubbles", X: "GDP per capita", Y: "Life expectancy"})
	if err != nil {
		log.Fatal(err)
	}
	if err := render.WriteFile("testdata/size.png", fig, render.ImageOptions{Width: 700, Height: 500, Scale: 2}); err != nil {
		log.Fatal(err)
	}
	if err := render.WriteFile("testdata/size.html", fig, render.ImageOptions{}); err != nil {
		log.Fatal(err)
	}
}
