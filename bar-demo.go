//go:build ignore

package main

import (
	"log"

	"github.com/vdobler/subplot"
	"github.com/vdobler/subplot/data"
	"github.com/vdobler/subplot/geom"
	"github.com/vdobler/subplot/render"
)

func main() {
	t, err := data.FromColumns(
		data.Column{Name: "fruit", Data: []string{"Apple", "Pear", "Plum", "Apple", "Pear", "Plum", "Apple", "Pear", "Plum"}},
		data.Column{Name: "shop", Data: []string{"North", "North", "North", "South", "South", "South", "West", "West", "West"}},
		data.Column{Name: "sold", Data: []float64{12, 7, 3, 9, 11, 6, 4, 8, 10}},
		data.Column{Name: "err", Data: []float64{1, 0.5, 0.8, 1.2, 2, 0.7, 0.4, 1, 1.5}},
	)
	if err != nil {
		log.Fatal(err)
	}

	var plots []*subplot.Figure
	for _, mode := range []string{"group", "stack", "overlay"} {
		fig, err := geom.Plot(geom.Bar{X: "fruit", Y: "sold", Error: "err", Mode: mode, Grouping: geom.Grouping{Group: "shop"}},
			t, geom.Labels{Title: "Bar mode " + mode, Y: "Sold"})
		if err != nil {
			log.Fatal(err)
		}
		plots = append(plots, fig)
	}
	fig, err := geom.Plot(geom.Bar{X: "fruit", Y: "sold", Horizontal: true, Mode: "stack", Grouping: geom.Grouping{Group: "shop"}},
		t, geom.Labels{Title: "Horizontal", X: "Sold"})
	if err != nil {
		log.Fatal(err)
	}
	plots = append(plots, fig)

	grid, err := subplot.NewGridFigure(plots, subplot.GridConfig{Rows: 2, Cols: 2, Title: "Fruit"})
	if err != nil {
		log.Fatal(err)
	}
	if err := render.WriteFile("testdata/bar.png", grid, render.ImageOptions{Width: 900, Height: 700}); err != nil {
		log.Fatal(err)
	}
}
