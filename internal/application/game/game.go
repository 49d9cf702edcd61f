// Package game runs the ebiten loop over a current scene.
package game

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/zgame/internal/application/scene"
)

// Game implements ebiten.Game and switches between scenes
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ticks   int
}

// New creates a game that starts in initial and steps at fps ticks per
// second. A non-positive fps means 60.
func New(initial scene.Scene, screenW, screenH, fps int) *Game {
	if fps <= 0 {
		fps = 60
	}
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(fps),
	}
	g.current.OnEnter()
	return g
}

// Update steps the current scene and performs a requested switch
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		if errors.Is(err, ebiten.Termination) {
			slog.Info("game quit", "ticks", g.ticks)
			g.current.OnExit()
		}
		return err
	}
	g.ticks++

	if next != nil {
		slog.Debug("scene switch", "tick", g.ticks)
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene
func (g *Game) Current() scene.Scene { return g.current }

// DT returns the fixed step in seconds
func (g *Game) DT() float64 { return g.dt }

// Ticks returns the number of completed updates
func (g *Game) Ticks() int { return g.ticks }
