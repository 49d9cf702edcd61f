// Package scene defines the screens the game loop switches between.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one game screen. The loop calls Update once per tick with the
// fixed step and Draw once per frame.
type Scene interface {
	// Update advances the scene by dt seconds. A non-nil next scene replaces
	// this one; an error ends the game (ebiten.Termination for a clean quit).
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter and OnExit run when the loop switches to or away from the scene
	OnEnter()
	OnExit()
}
