package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"fruitsnake/internal/game"
)

type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorTrue
	Color256
	ColorMono
)

// ParseColorMode accepts the -color flag values.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "truecolor", "true", "24bit":
		return ColorTrue, nil
	case "256":
		return Color256, nil
	case "mono", "none":
		return ColorMono, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}

// resolve picks a concrete mode for a screen reporting colors colours.
func (m ColorMode) resolve(colors int) ColorMode {
	if m != ColorAuto {
		return m
	}
	switch {
	case colors >= 1<<24:
		return ColorTrue
	case colors >= 256:
		return Color256
	}
	return ColorMono
}

var palette256 = func() []tcell.Color {
	p := make([]tcell.Color, 256)
	for i := range p {
		p[i] = tcell.PaletteColor(i)
	}
	return p
}()

func (m ColorMode) color(c game.RGB) tcell.Color {
	rgb := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	switch m {
	case ColorTrue:
		return rgb
	case Color256:
		return tcell.FindColor(rgb, palette256)
	}
	return tcell.ColorDefault
}

// fade blends c toward bg by alpha in [0,1].
func fade(c, bg game.RGB, alpha float64) game.RGB {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	mix := func(a, b uint8) uint8 { return uint8(float64(b) + (float64(a)-float64(b))*alpha + 0.5) }
	return game.RGB{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B)}
}
