package chart

import (
	"image/color"
	"strconv"
	"strings"

	"cosmossdk.io/errors"
	"github.com/aclements/go-gg/palette"

	"github.com/vdobler/freq"
)

// -------------------------------------------------------------------------
// Colors

// NamedColors are the colour names understood by ParseColor.
var NamedColors = map[string]color.RGBA{
	"white":     {0xff, 0xff, 0xff, 0xff},
	"black":     {0x00, 0x00, 0x00, 0xff},
	"seagreen":  {0x2e, 0x8b, 0x57, 0xff},
	"steelblue": {0x46, 0x82, 0xb4, 0xff},
	"firebrick": {0xb2, 0x22, 0x22, 0xff},
	"goldenrod": {0xda, 0xa5, 0x20, 0xff},
	"slategray": {0x70, 0x80, 0x90, 0xff},
	"gray93":    {0xed, 0xed, 0xed, 0xff},
}

// ParseColor understands "#rrggbb", "#rrggbbaa" and the NamedColors.
func ParseColor(s string) (color.Color, error) {
	if col, ok := NamedColors[strings.ToLower(s)]; ok {
		return col, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if hex == s || (len(hex) != 6 && len(hex) != 8) {
		return nil, errors.Wrapf(freq.ErrInvalidParameter, "unknown color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, errors.Wrapf(freq.ErrInvalidParameter, "bad color %q", s)
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// LightPalette returns n colors blending from a very light gray to c,
// lightest first.
func LightPalette(c color.Color, n int) []color.Color {
	if n <= 0 {
		return nil
	}
	start := NamedColors["gray93"]
	end := color.RGBAModel.Convert(c).(color.RGBA)
	if n == 1 {
		return []color.Color{end}
	}

	// The gradient's first segment only ever yields its first color,
	// so the blend happens on the second one.
	g := palette.RGBGradient{Colors: []color.RGBA{start, start, end}}
	cols := make([]color.Color, n)
	cols[0] = start
	for i := 1; i < n; i++ {
		cols[i] = g.Map(0.5 + float64(i)/float64(n-1)/2)
	}
	return cols
}

// LightPaletteOf is LightPalette for a color given by name or hex code.
func LightPaletteOf(name string, n int) ([]color.Color, error) {
	c, err := ParseColor(name)
	if err != nil {
		return nil, err
	}
	return LightPalette(c, n), nil
}

// DefaultPalette is the light seagreen palette used when a chart has no
// colors of its own.
func DefaultPalette() []color.Color {
	cols, err := LightPaletteOf("seagreen", paletteSize)
	if err != nil {
		panic(err)
	}
	return cols
}

// paletteSize is the number of shades in a light palette.
const paletteSize = 6
