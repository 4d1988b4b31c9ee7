// Package chart draws frequency tables computed by package freq as pie
// and bar charts.
//
// There is no global figure: every renderer takes the gonum plot it
// should draw on and returns it. A nil figure makes the renderer start
// a new one. Write the result with the plot's Save or WriterTo methods:
//
//      tab, _ := freq.Categorical(df, "Sex")
//      fig, err := chart.PiePlot(nil, tab, "Sex", "Participants")
//      ...
//      err = fig.Save(chart.PieSize, chart.PieSize, "sex.png")
package chart

import (
	"gonum.org/v1/plot"

	"github.com/vdobler/freq"
)

// Renderer draws a frequency table onto a figure.
type Renderer interface {
	Render(fig *plot.Plot, table *freq.DataFrame) (*plot.Plot, error)
}

// figure returns fig or a new, empty plot.
func figure(fig *plot.Plot) (*plot.Plot, error) {
	if fig != nil {
		return fig, nil
	}
	return plot.New()
}
