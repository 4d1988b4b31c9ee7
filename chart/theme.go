package chart

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Figure sizes matching the charts' layout.
const (
	PieSize   = 3 * vg.Inch
	BarWidth  = 6 * vg.Inch
	BarHeight = 3 * vg.Inch
)

type Theme struct {
	// Colors is the palette cycled over pie wedges and bars.
	Colors []color.Color

	// Outline is drawn around wedges and bars.
	Outline      color.Color
	OutlineWidth vg.Length
}

var DefaultTheme = Theme{
	Colors:       DefaultPalette(),
	Outline:      NamedColors["white"],
	OutlineWidth: vg.Points(1),
}

// colors picks the fill colors of a chart: explicit cols win, then a
// light palette of the named base color, then the theme's palette.
func (t Theme) colors(cols []color.Color, base string) ([]color.Color, error) {
	if len(cols) > 0 {
		return cols, nil
	}
	if base != "" {
		return LightPaletteOf(base, paletteSize)
	}
	return t.Colors, nil
}
