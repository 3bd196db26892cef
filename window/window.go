//go:build !nowindow

package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/glowchase/core"
	"github.com/lixenwraith/glowchase/engine"
	"github.com/lixenwraith/glowchase/parameter"
	"github.com/lixenwraith/glowchase/render"
	"github.com/lixenwraith/glowchase/sim"
)

// Game adapts a Controller to ebiten's Update/Draw/Layout cycle
// ebiten calls Update at the TPS rate, so one Update is one tick
type Game struct {
	ctrl *engine.Controller
	ctx  context.Context

	width, height int
	background    color.RGBA
}

// NewGame creates a window game over a new session
func NewGame(ctx context.Context, opts engine.Options) *Game {
	return &Game{
		ctrl:       engine.NewController(opts),
		ctx:        ctx,
		width:      int(opts.Sim.Bounds.Width),
		height:     int(opts.Sim.Bounds.Height),
		background: toRGBA(parameter.BackgroundColor),
	}
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.ctrl.RequestStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}

	g.ctrl.Update()
	return nil
}

// Draw paints spiders first and the glow last so the glow stays on top
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	frame := g.ctrl.CurrentFrame()
	for _, s := range frame.Shapes {
		if s.Role == sim.RoleSpider {
			c := s.Color
			if s.State == sim.StatePouncing {
				c = render.Highlight(c, render.PounceHighlight)
			}
			drawCircle(screen, s, c)
		}
	}
	for _, s := range frame.Shapes {
		if s.Role == sim.RoleGlow {
			drawCircle(screen, s, s.Color)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func drawCircle(screen *ebiten.Image, s sim.Shape, c core.RGB) {
	vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.Radius), toRGBA(c), true)
}

func toRGBA(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Run opens the window and blocks until it closes, a quit key is pressed, or ctx is cancelled
func Run(ctx context.Context, opts engine.Options) error {
	g := NewGame(ctx, opts)
	tps := g.ctrl.Options().TickRate

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(parameter.WindowTitle)
	ebiten.SetTPS(tps)

	g.ctrl.Logger().Info("window host started",
		"seed", opts.Seed,
		"tick_rate", tps,
		"trigger", opts.Sim.ChaseTrigger.String(),
	)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window host: %w", err)
	}

	g.ctrl.Logger().Info("window host closed", "tick", g.ctrl.World().TickCount())
	return nil
}
