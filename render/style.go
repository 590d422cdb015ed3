package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how the image backend draws a figure.
type Style struct {
	Background color.Color

	Title       draw.TextStyle
	TitleHeight vg.Length

	// Margin is the empty space around the figure.
	Margin vg.Length

	Panel struct {
		Background color.Color
	}
	Strip struct {
		Background color.Color
		Height     vg.Length
		draw.TextStyle
	}

	Grid struct {
		Major draw.LineStyle
		Minor draw.LineStyle
	}

	XAxis struct {
		Title       draw.TextStyle
		TitleHeight vg.Length
		Tick        struct {
			Label  draw.TextStyle
			Major  draw.LineStyle
			Length vg.Length
			Height vg.Length // Height of ticks with labels.
		}
	}

	YAxis struct {
		Title      draw.TextStyle
		TitleWidth vg.Length
		Tick       struct {
			Label  draw.TextStyle
			Major  draw.LineStyle
			Length vg.Length
			Width  vg.Length // Width of ticks with labels.
		}
	}

	Legend struct {
		Label draw.TextStyle
		Width vg.Length // Zero hides the legend.
		Size  vg.Length // Size of the key.
		Pad   vg.Length
	}

	// Geom holds the defaults for the drawn traces.
	Geom struct {
		Radius    vg.Length // Marker radius.
		LineWidth vg.Length
		Border    draw.LineStyle // Border of bars and boxes.
		Gap       float64        // Gap between bar groups as fraction of the slot.
	}
}

// DefaultStyle returns a Style which mimics the appearance of ggplot2.
// The baseFontSize is the font size for axis titles and strip labels, the
// title is a bit bigger, tick labels a bit smaller.
func DefaultStyle(baseFontSize vg.Length) (Style, error) {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		return Style{}, err
	}
	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		return Style{}, err
	}
	tickFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		return Style{}, err
	}

	fs := Style{}
	fs.Background = color.White
	fs.Margin = scale(baseFontSize, 0.5)

	fs.TitleHeight = scale(baseFontSize, 3)
	fs.Title.Color = color.Black
	fs.Title.Font = titleFont
	fs.Title.XAlign = draw.XCenter
	fs.Title.YAlign = draw.YTop

	fs.Panel.Background = color.Gray16{0xeeee}

	fs.Strip.Background = color.Gray16{0xcccc}
	fs.Strip.Color = color.Black
	fs.Strip.Font = baseFont
	fs.Strip.Height = scale(baseFontSize, 1.8)
	fs.Strip.XAlign = draw.XCenter
	fs.Strip.YAlign = -0.3 // draw.YCenter

	fs.Grid.Major.Color = color.White
	fs.Grid.Major.Width = vg.Length(1)
	fs.Grid.Minor.Color = color.White
	fs.Grid.Minor.Width = vg.Length(0.5)

	fs.XAxis.Title.Color = color.Black
	fs.XAxis.Title.Font = baseFont
	fs.XAxis.Title.XAlign = draw.XCenter
	fs.XAxis.Title.YAlign = draw.YAlignment(0.3)
	fs.XAxis.TitleHeight = scale(baseFontSize, 2)
	fs.XAxis.Tick.Label.Color = color.Black
	fs.XAxis.Tick.Label.Font = tickFont
	fs.XAxis.Tick.Label.XAlign = draw.XCenter
	fs.XAxis.Tick.Label.YAlign = draw.YTop
	fs.XAxis.Tick.Major.Color = color.Gray16{0x1111}
	fs.XAxis.Tick.Major.Width = vg.Length(1)
	fs.XAxis.Tick.Length = vg.Length(4)
	fs.XAxis.Tick.Height = scale(baseFontSize, 1.6)

	fs.YAxis.Title.Color = color.Black
	fs.YAxis.Title.Font = baseFont
	fs.YAxis.Title.Rotation = math.Pi / 2
	fs.YAxis.Title.XAlign = draw.XCenter
	fs.YAxis.Title.YAlign = draw.YTop
	fs.YAxis.TitleWidth = scale(baseFontSize, 2)
	fs.YAxis.Tick.Label.Color = color.Black
	fs.YAxis.Tick.Label.Font = tickFont
	fs.YAxis.Tick.Label.XAlign = draw.XRight
	fs.YAxis.Tick.Label.YAlign = -0.3 // draw.YCenter
	fs.YAxis.Tick.Major.Color = color.Gray16{0x1111}
	fs.YAxis.Tick.Major.Width = vg.Length(1)
	fs.YAxis.Tick.Length = vg.Length(4)
	fs.YAxis.Tick.Width = scale(baseFontSize, 3.5)

	fs.Legend.Label.Color = color.Black
	fs.Legend.Label.Font = tickFont
	fs.Legend.Label.YAlign = -0.3 // draw.YCenter
	fs.Legend.Width = scale(baseFontSize, 8)
	fs.Legend.Size = scale(baseFontSize, 1.2)
	fs.Legend.Pad = vg.Length(4)

	fs.Geom.Radius = vg.Length(3)
	fs.Geom.LineWidth = vg.Length(1.5)
	fs.Geom.Border.Color = color.Gray16{0x3333}
	fs.Geom.Border.Width = vg.Length(0.5)
	fs.Geom.Gap = 0.2

	return fs, nil
}
