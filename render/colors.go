package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/glowchase/core"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Status line colors
var (
	RgbStatusText   = tcell.NewRGBColor(200, 200, 200)
	RgbStatusPaused = tcell.NewRGBColor(255, 165, 0)
	RgbStatusBg     = tcell.NewRGBColor(20, 20, 20)
)

// PounceHighlight is how far a pouncing spider's color is pushed toward white
const PounceHighlight = 0.45

// ToTcell converts an explicit RGB to a tcell true color
func ToTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func toColorful(c core.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) core.RGB {
	r, g, b := c.Clamped().RGB255()
	return core.RGB{R: r, G: g, B: b}
}

// BlendGlow mixes glow light into a base color in linear RGB, t in [0, 1]
// Linear blending keeps the halo falloff from darkening midway the way sRGB lerp does
func BlendGlow(base, glow core.RGB, t float64) core.RGB {
	if t <= 0 {
		return base
	}
	if t >= 1 {
		return glow
	}
	return fromColorful(toColorful(base).BlendLinearRgb(toColorful(glow), t))
}

// Highlight pushes a color toward white in Lab space, preserving hue perception
func Highlight(c core.RGB, t float64) core.RGB {
	return fromColorful(toColorful(c).BlendLab(toColorful(core.RGBWhite), t))
}
