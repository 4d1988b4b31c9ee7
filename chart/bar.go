package chart

import (
	"fmt"
	"image/color"

	"cosmossdk.io/errors"
	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/freq"
)

// Bar draws one bar per row of a table. X names the column labelling
// the bars, Y the numeric column giving their height.
type Bar struct {
	X, Y  string
	Title string

	// Colors are cycled over the bars. If empty the bars are shaded
	// from Palette, a color name or "#rrggbb" code, or DefaultTheme.Colors
	// if Palette is empty too.
	Colors  []color.Color
	Palette string

	// Width is the width of the figure the chart will be saved at. The
	// bars are sized to fill 60% of it. Zero means BarWidth.
	Width vg.Length

	Logger zerolog.Logger
}

var _ Renderer = Bar{}

// BarPlot renders column y of table over the labels in column x.
func BarPlot(fig *plot.Plot, table *freq.DataFrame, x, y, title string) (*plot.Plot, error) {
	return Bar{X: x, Y: y, Title: title}.Render(fig, table)
}

func (b Bar) Render(fig *plot.Plot, table *freq.DataFrame) (*plot.Plot, error) {
	for _, c := range []string{b.X, b.Y} {
		if !table.Has(c) {
			return nil, errors.Wrapf(freq.ErrUnknownColumn, "no column %q in %s", c, table.Name)
		}
	}
	n := table.N()
	if n == 0 {
		return nil, errors.Wrapf(freq.ErrEmptyInput, "%s has no rows", table.Name)
	}

	labels := make([]string, n)
	heights := make([]float64, n)
	for i := range table.Rows {
		h, ok := table.Float(i, b.Y)
		if !ok {
			return nil, errors.Wrapf(freq.ErrInvalidParameter, "row %d of %s: %v in column %q is not a number",
				i, table.Name, table.Value(i, b.Y), b.Y)
		}
		heights[i] = h
		labels[i] = fmt.Sprint(table.Value(i, b.X))
	}

	cols, err := DefaultTheme.colors(b.Colors, b.Palette)
	if err != nil {
		return nil, err
	}
	fig, err = figure(fig)
	if err != nil {
		return nil, err
	}

	width := barWidth(b.Width, n)
	for i, h := range heights {
		bc, err := plotter.NewBarChart(plotter.Values{h}, width)
		if err != nil {
			return nil, errors.Wrapf(freq.ErrInvalidParameter, "bar %q: %v", labels[i], err)
		}
		bc.XMin = float64(i)
		bc.Color = cols[i%len(cols)]
		bc.LineStyle.Color = DefaultTheme.Outline
		bc.LineStyle.Width = DefaultTheme.OutlineWidth
		fig.Add(bc)
	}
	fig.NominalX(labels...)
	fig.Title.Text = b.Title
	fig.X.Label.Text = b.X
	fig.Y.Label.Text = b.Y

	b.Logger.Debug().
		Str("title", b.Title).
		Int("bars", n).
		Float64("width", float64(width)).
		Msg("bar chart rendered")

	return fig, nil
}

// barWidth is the width of each of n bars on a figure figWidth wide.
func barWidth(figWidth vg.Length, n int) vg.Length {
	if figWidth <= 0 {
		figWidth = BarWidth
	}
	return figWidth * 0.6 / vg.Length(n)
}
