package chart

import (
	"fmt"
	"image/color"
	"math"

	"cosmossdk.io/errors"
	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/freq"
)

// Pie draws the two categories of a frequency table as a pie chart.
// Wedge sizes are taken from the freq.FreqAbsolute column, labels
// from Column.
type Pie struct {
	Column string
	Title  string

	// Explode moves wedge i outwards by Explode[i] radii.
	Explode []float64

	// StartAngle is the angle in degrees of the first wedge's start,
	// counted counter-clockwise from the positive x axis.
	StartAngle float64

	// Colors used for the wedges. If empty the wedges are shaded from
	// Palette, a color name or "#rrggbb" code, or DefaultTheme.Colors
	// if Palette is empty too.
	Colors  []color.Color
	Palette string

	Logger zerolog.Logger
}

var _ Renderer = Pie{}

// pctDistance is where the percentage labels sit, in radii.
const pctDistance = 0.6

// PiePlot renders table as a pie chart titled title with the second
// wedge pulled out, starting at 12 o'clock.
func PiePlot(fig *plot.Plot, table *freq.DataFrame, column, title string) (*plot.Plot, error) {
	return Pie{
		Column:     column,
		Title:      title,
		Explode:    []float64{0, 0.1},
		StartAngle: 90,
	}.Render(fig, table)
}

func (p Pie) Render(fig *plot.Plot, table *freq.DataFrame) (*plot.Plot, error) {
	for _, c := range []string{p.Column, freq.FreqAbsolute} {
		if !table.Has(c) {
			return nil, errors.Wrapf(freq.ErrUnknownColumn, "no column %q in %s", c, table.Name)
		}
	}
	if n := table.N(); n != 2 {
		return nil, errors.Wrapf(freq.ErrInvalidParameter, "pie chart needs 2 categories, %s has %d", table.Name, n)
	}

	values := make([]float64, table.N())
	labels := make([]string, table.N())
	total := 0.0
	for i := range table.Rows {
		v, ok := table.Float(i, freq.FreqAbsolute)
		if !ok || v < 0 || math.IsInf(v, 0) {
			return nil, errors.Wrapf(freq.ErrInvalidParameter, "row %d of %s: bad frequency %v",
				i, table.Name, table.Value(i, freq.FreqAbsolute))
		}
		values[i] = v
		labels[i] = fmt.Sprint(table.Value(i, p.Column))
		total += v
	}
	if total == 0 {
		return nil, errors.Wrapf(freq.ErrEmptyInput, "%s counts nothing", table.Name)
	}

	cols, err := DefaultTheme.colors(p.Colors, p.Palette)
	if err != nil {
		return nil, err
	}
	fig, err = figure(fig)
	if err != nil {
		return nil, err
	}

	w := &wedges{
		arcs:         arcs(values, p.StartAngle*math.Pi/180),
		explode:      p.Explode,
		colors:       cols,
		outline:      DefaultTheme.Outline,
		outlineWidth: DefaultTheme.OutlineWidth,
	}

	pcts := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(values)),
		Labels: make([]string, len(values)),
	}
	for i, a := range w.arcs {
		mid := a.start + a.sweep/2
		d := pctDistance + w.offset(i)
		pcts.XYs[i].X = d * math.Cos(mid)
		pcts.XYs[i].Y = d * math.Sin(mid)
		pcts.Labels[i] = fmt.Sprintf("%1.1f%%", values[i]/total*100)
	}
	lbls, err := plotter.NewLabels(pcts)
	if err != nil {
		return nil, err
	}

	fig.Add(w, lbls)
	for i, l := range labels {
		fig.Legend.Add(l, wedgeThumb{w.color(i)})
	}
	fig.Title.Text = p.Title
	fig.HideAxes()

	p.Logger.Debug().
		Str("title", p.Title).
		Strs("labels", labels).
		Float64("total", total).
		Msg("pie chart rendered")

	return fig, nil
}

type arc struct {
	start, sweep float64 // radians
}

// arcs splits the full circle proportional to values, counter-clockwise
// from start.
func arcs(values []float64, start float64) []arc {
	total := 0.0
	for _, v := range values {
		total += v
	}
	as := make([]arc, len(values))
	for i, v := range values {
		as[i] = arc{start: start, sweep: 2 * math.Pi * v / total}
		start += as[i].sweep
	}
	return as
}

// wedges is a plot.Plotter drawing pie wedges around the origin with
// unit radius.
type wedges struct {
	arcs         []arc
	explode      []float64
	colors       []color.Color
	outline      color.Color
	outlineWidth vg.Length
}

func (w *wedges) offset(i int) float64 {
	if i < len(w.explode) {
		return w.explode[i]
	}
	return 0
}

func (w *wedges) color(i int) color.Color {
	return w.colors[i%len(w.colors)]
}

func (w *wedges) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	r := vg.Length(math.Min(float64(trX(1)-trX(0)), float64(trY(1)-trY(0))))

	for i, a := range w.arcs {
		if a.sweep == 0 {
			continue
		}
		mid := a.start + a.sweep/2
		off := w.offset(i)
		ctr := vg.Point{X: trX(off * math.Cos(mid)), Y: trY(off * math.Sin(mid))}

		var path vg.Path
		path.Move(ctr)
		path.Line(vg.Point{
			X: ctr.X + r*vg.Length(math.Cos(a.start)),
			Y: ctr.Y + r*vg.Length(math.Sin(a.start)),
		})
		path.Arc(ctr, r, a.start, a.sweep)
		path.Close()

		c.SetColor(w.color(i))
		c.Fill(path)
		if w.outline != nil && w.outlineWidth > 0 {
			c.SetColor(w.outline)
			c.SetLineWidth(w.outlineWidth)
			c.Stroke(path)
		}
	}
}

// DataRange keeps the unit circle and exploded wedges inside the plot.
func (w *wedges) DataRange() (xmin, xmax, ymin, ymax float64) {
	e := 0.0
	for _, x := range w.explode {
		e = math.Max(e, x)
	}
	e += 1.05
	return -e, e, -e, e
}

type wedgeThumb struct {
	color color.Color
}

func (t wedgeThumb) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(t.color, c.ClipPolygonY(pts))
}
