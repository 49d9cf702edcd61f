package entity

import "github.com/younwookim/zgame/internal/domain/physics"

// Body represents the physical body of an entity.
// Positions are in pixels, velocity in pixels per second.
type Body struct {
	Rect     physics.Rect // current position and size
	Prev     physics.Rect // position before the last move
	Velocity physics.Vector
	Material physics.Material // the body's own surface

	// Touching holds the sides resting against solid tiles after the
	// last resolution; Floor is the surface under the body.
	Touching physics.Side
	Floor    physics.Material

	FacingRight bool
}

// NewBody creates a body at pixel position x, y
func NewBody(x, y, w, h float64, m physics.Material) Body {
	r := physics.Rect{X: x, Y: y, W: w, H: h}
	return Body{
		Rect:        r,
		Prev:        r,
		Material:    m,
		Floor:       physics.Default,
		FacingRight: true,
	}
}

func (b *Body) OnGround() bool    { return b.Touching.Has(physics.SideBottom) }
func (b *Body) OnCeiling() bool   { return b.Touching.Has(physics.SideTop) }
func (b *Body) OnWallLeft() bool  { return b.Touching.Has(physics.SideLeft) }
func (b *Body) OnWallRight() bool { return b.Touching.Has(physics.SideRight) }

// Center returns the middle of the body
func (b *Body) Center() (float64, float64) {
	c := b.Rect.Center()
	return c.X(), c.Y()
}

// Step moves the body by its velocity for dt seconds and remembers where it
// came from. It returns the new rectangle, which may overlap tiles.
func (b *Body) Step(dt float64) physics.Rect {
	b.Prev = b.Rect
	b.Rect = b.Rect.Translated(b.Velocity.X()*dt, b.Velocity.Y()*dt)
	return b.Rect
}

// Teleport places the body without leaving a trail for collision
func (b *Body) Teleport(x, y float64) {
	b.Rect.X, b.Rect.Y = x, y
	b.Prev = b.Rect
}

// SetTouching replaces the touch flags and returns the sides that were
// newly touched and the sides that were left
func (b *Body) SetTouching(now physics.Side) (touched, left physics.Side) {
	touched = now &^ b.Touching
	left = b.Touching &^ now
	b.Touching = now
	return touched, left
}

// Effective returns the material governing movement: the floor combined
// with the body's own material while grounded, the body alone in the air
func (b *Body) Effective() physics.Material {
	if b.OnGround() {
		return physics.Combine(b.Floor, b.Material)
	}
	return b.Material
}
