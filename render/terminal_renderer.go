package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/glowchase/core"
	"github.com/lixenwraith/glowchase/parameter"
	"github.com/lixenwraith/glowchase/sim"
)

const (
	cellFull = '█'
)

// Status carries the host-side values shown in the status line
type Status struct {
	Seed    uint64
	Paused  bool
	Spiders []sim.State
}

// TerminalRenderer draws frames onto a tcell screen
// The world rectangle is stretched over the play area, circles become ellipses in cell space
type TerminalRenderer struct {
	screen tcell.Screen
	world  core.Bounds
	width  int
	height int

	background core.RGB
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen, world core.Bounds) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen:     screen,
		world:      world,
		width:      w,
		height:     h,
		background: parameter.BackgroundColor,
	}
}

// Resize updates the cell dimensions
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// playHeight is the number of rows available to the world
func (r *TerminalRenderer) playHeight() int {
	return max(r.height-parameter.StatusBarHeight, 0)
}

// cellScale returns cells per world unit on each axis
func (r *TerminalRenderer) cellScale() (sx, sy float64) {
	return float64(r.width) / r.world.Width, float64(r.playHeight()) / r.world.Height
}

// WorldToCell maps a world coordinate to the cell containing it
func (r *TerminalRenderer) WorldToCell(x, y float64) (int, int) {
	sx, sy := r.cellScale()
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

// RenderFrame clears the screen, draws shapes and the status line, and shows the result
// Spiders are drawn before the glow so the glow sits on top
func (r *TerminalRenderer) RenderFrame(frame sim.Frame, status Status) {
	bgStyle := tcell.StyleDefault.Background(ToTcell(r.background))
	r.screen.Fill(' ', bgStyle)

	if r.width > 0 && r.playHeight() > 0 {
		var glows []sim.Shape
		for _, s := range frame.Shapes {
			if s.Role == sim.RoleGlow {
				glows = append(glows, s)
			}
		}

		for _, g := range glows {
			r.drawHalo(g)
		}
		for _, s := range frame.Shapes {
			if s.Role == sim.RoleSpider {
				color := s.Color
				if s.State == sim.StatePouncing {
					color = Highlight(color, PounceHighlight)
				}
				r.drawCircle(s, color)
			}
		}
		for _, g := range glows {
			r.drawCircle(g, g.Color)
		}
	}

	r.drawStatus(frame.Tick, status)
	r.screen.Show()
}

// drawCircle fills every cell whose centre lies inside the shape, plus the centre cell
func (r *TerminalRenderer) drawCircle(s sim.Shape, color core.RGB) {
	style := tcell.StyleDefault.Foreground(ToTcell(color)).Background(ToTcell(r.background))
	radius := float64(s.Radius)
	cx, cy := float64(s.X), float64(s.Y)

	r.forCellsWithin(cx, cy, radius, func(col, row int, dist float64) {
		if dist <= radius {
			r.screen.SetContent(col, row, cellFull, nil, style)
		}
	})

	col, row := r.WorldToCell(cx, cy)
	r.setCell(col, row, cellFull, style)
}

// drawHalo tints background cells around a glow, fading to nothing at GlowHaloScale radii
func (r *TerminalRenderer) drawHalo(s sim.Shape) {
	inner := float64(s.Radius)
	outer := inner * parameter.GlowHaloScale
	if outer <= inner {
		return
	}

	r.forCellsWithin(float64(s.X), float64(s.Y), outer, func(col, row int, dist float64) {
		if dist > outer {
			return
		}
		falloff := 1.0
		if dist > inner {
			falloff = 1 - (dist-inner)/(outer-inner)
		}
		tint := BlendGlow(r.background, s.Color, parameter.GlowHaloAlpha*falloff)
		r.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(ToTcell(tint)))
	})
}

// forCellsWithin visits on-screen cells of the bounding box of a world circle
// dist is the world-space distance from the cell centre to (cx, cy)
func (r *TerminalRenderer) forCellsWithin(cx, cy, radius float64, fn func(col, row int, dist float64)) {
	sx, sy := r.cellScale()
	if sx <= 0 || sy <= 0 {
		return
	}

	minCol := max(int(math.Floor((cx-radius)*sx)), 0)
	maxCol := min(int(math.Floor((cx+radius)*sx)), r.width-1)
	minRow := max(int(math.Floor((cy-radius)*sy)), 0)
	maxRow := min(int(math.Floor((cy+radius)*sy)), r.playHeight()-1)

	for row := minRow; row <= maxRow; row++ {
		wy := (float64(row) + 0.5) / sy
		for col := minCol; col <= maxCol; col++ {
			wx := (float64(col) + 0.5) / sx
			fn(col, row, math.Hypot(wx-cx, wy-cy))
		}
	}
}

// setCell writes a cell if it falls inside the play area
func (r *TerminalRenderer) setCell(col, row int, ch rune, style tcell.Style) {
	if col < 0 || col >= r.width || row < 0 || row >= r.playHeight() {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

// drawStatus writes the status line on the last row
func (r *TerminalRenderer) drawStatus(tick uint64, status Status) {
	if r.height <= 0 {
		return
	}
	row := r.height - 1
	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBg)

	var sb strings.Builder
	fmt.Fprintf(&sb, " tick %d  seed %d ", tick, status.Seed)
	for i, st := range status.Spiders {
		fmt.Fprintf(&sb, " [%d] %-9s", i, st)
	}

	x := 0
	for _, ch := range sb.String() {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, row, ch, nil, style)
		x++
	}
	for ; x < r.width; x++ {
		r.screen.SetContent(x, row, ' ', nil, style)
	}

	if status.Paused {
		label := " PAUSED "
		start := r.width - len(label)
		if start < 0 {
			return
		}
		pausedStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(RgbStatusPaused)
		for i, ch := range label {
			r.screen.SetContent(start+i, row, ch, nil, pausedStyle)
		}
	}
}
