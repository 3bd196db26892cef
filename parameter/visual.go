package parameter

import "github.com/lixenwraith/glowchase/core"

// Palette
var (
	// SpiderColors is the pool each spider draws its color from at creation
	SpiderColors = []core.RGB{core.RGBRed, core.RGBBlue}

	GlowColor       = core.RGBYellow
	BackgroundColor = core.RGBBlack
)

// Terminal rendering
const (
	// GlowHaloScale is the halo radius as a multiple of GlowRadius
	GlowHaloScale = 2.0

	// GlowHaloAlpha is the halo intensity at the glow edge, fading to zero outward
	GlowHaloAlpha = 0.35

	// StatusBarHeight reserves bottom rows for the status line
	StatusBarHeight = 1
)

// Window
const (
	WindowTitle = "Realistic Spiders Chasing Glow"
)
