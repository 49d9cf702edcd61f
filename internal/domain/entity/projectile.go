package entity

import (
	"math"

	"github.com/younwookim/zgame/internal/domain/physics"
	"github.com/younwookim/zgame/internal/domain/spell"
)

// Projectile carries a spell effect until it hits a mob, a wall or runs out
// of range
type Projectile struct {
	Body
	ID        EntityID
	Owner     EntityID
	Caster    spell.Caster
	Effect    spell.Effect
	RangeLeft float64
	Active    bool
}

// NewProjectile creates a square projectile centered on x, y moving along
// dir (+1 right, -1 left)
func NewProjectile(owner EntityID, caster spell.Caster, x, y, size, speed float64, dir int, rng float64, e spell.Effect) *Projectile {
	b := NewBody(x-size/2, y-size/2, size, size, physics.Default)
	b.Velocity = physics.NewVector(float64(dir)*speed, 0)
	b.FacingRight = dir >= 0
	return &Projectile{
		Body:      b,
		Owner:     owner,
		Caster:    caster,
		Effect:    e,
		RangeLeft: rng,
		Active:    true,
	}
}

// Advance moves the projectile for dt seconds and spends range.
// The projectile deactivates once its range is used up.
func (p *Projectile) Advance(dt float64) physics.Rect {
	if !p.Active {
		return p.Rect
	}
	r := p.Step(dt)
	p.RangeLeft -= math.Abs(p.Velocity.Magnitude() * dt)
	if p.RangeLeft <= 0 {
		p.Active = false
	}
	return r
}

// Rotation returns the rotation angle of the velocity
func (p *Projectile) Rotation() float64 {
	return p.Velocity.Angle()
}

// Deactivate marks the projectile as inactive
func (p *Projectile) Deactivate() {
	p.Active = false
}
