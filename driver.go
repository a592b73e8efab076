package modesto

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run. Zero fields take defaults.
type RunConfig struct {
	Title   string // window title, default "DESKTOP"
	Width   int    // logical screen width in pixels, default 720
	Height  int    // logical screen height in pixels, default 480
	Scale   int    // window pixels per logical pixel, default 2
	TPS     int    // ticks per second, default 60
	ShowFPS bool   // overlay ebiten's FPS/TPS counters
}

// Defaults for RunConfig.
const (
	DefaultTitle  = "DESKTOP"
	DefaultWidth  = 720
	DefaultHeight = 480
	DefaultScale  = 2
	DefaultTPS    = 60
)

// withDefaults fills zero fields.
func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Scale <= 0 {
		c.Scale = DefaultScale
	}
	if c.TPS <= 0 {
		c.TPS = DefaultTPS
	}
	return c
}

// SetUpdateFunc sets a function called once per tick by Run, before the
// desktop processes input.
func (d *Desktop) SetUpdateFunc(fn func() error) {
	d.onUpdate = fn
}

// Run opens a window and drives d until the window is closed or Alt+F4 is
// pressed. Every tick samples the mouse, feeds the desktop and uploads the
// frame when it changed.
func Run(d *Desktop, cfg RunConfig) error {
	if d == nil {
		panic("modesto: cannot run nil desktop")
	}
	cfg = cfg.withDefaults()
	d.size = Bounds{cfg.Width, cfg.Height}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetScreenClearedEveryFrame(false)

	err := ebiten.RunGame(&game{desktop: d, cfg: cfg})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// game adapts a Desktop to ebiten.Game.
type game struct {
	desktop *Desktop
	cfg     RunConfig
	tracker PointerTracker
	last    *Buffer
}

func (g *game) Update() error {
	alt := ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	if alt && inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		return ebiten.Termination
	}
	if fn := g.desktop.onUpdate; fn != nil {
		if err := fn(); err != nil {
			return err
		}
	}

	mx, my := ebiten.CursorPosition()
	pos := Position{
		X: min(max(mx, 0), g.cfg.Width-1),
		Y: min(max(my, 0), g.cfg.Height-1),
	}
	_, wheelY := ebiten.Wheel()
	ps := g.tracker.Sample(pos,
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		wheelY,
	)
	g.desktop.Update(ps, 1/float32(g.cfg.TPS))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	frame := g.desktop.Draw(g.cfg.Width, g.cfg.Height)
	// The screen keeps its contents between frames, so an unchanged frame
	// needs no upload unless the overlay has to be redrawn over it.
	if frame != g.last || g.cfg.ShowFPS {
		screen.WritePixels(frame.RGBABytes())
		g.last = frame
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
