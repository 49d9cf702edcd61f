package physics

import (
	"errors"
	"fmt"
)

// ErrUnknownMaterial is returned when a material name is not registered
var ErrUnknownMaterial = errors.New("unknown material")

// Material holds the physical constants of a surface or body.
// Values are fixed at construction; share them freely.
type Material struct {
	name string

	friction  float64 // ground deceleration multiplier
	slipSpeed float64 // walk speed cap multiplier
	slipAccel float64 // walk acceleration multiplier

	wallBounce    float64
	floorBounce   float64
	ceilingBounce float64
}

// NewMaterial creates a material. Bounce ratios are expected in [0, 1].
func NewMaterial(name string, friction, slipSpeed, slipAccel, wallBounce, floorBounce, ceilingBounce float64) Material {
	return Material{
		name:          name,
		friction:      friction,
		slipSpeed:     slipSpeed,
		slipAccel:     slipAccel,
		wallBounce:    wallBounce,
		floorBounce:   floorBounce,
		ceilingBounce: ceilingBounce,
	}
}

// Predefined materials
var (
	Default      = NewMaterial("default", 1, 1, 1, 0, 0, 0)
	HighFriction = NewMaterial("highFriction", 4, 0.6, 1.5, 0, 0, 0)
	Ice          = NewMaterial("ice", 0.1, 1.4, 0.25, 0, 0, 0)
	Bouncy       = NewMaterial("bouncy", 1, 1, 1, 0.8, 0.9, 0.6)
	Boundary     = NewMaterial("boundary", 1, 1, 1, 0, 0, 0)
)

var materials = map[string]Material{
	Default.name:      Default,
	HighFriction.name: HighFriction,
	Ice.name:          Ice,
	Bouncy.name:       Bouncy,
	Boundary.name:     Boundary,
}

// MaterialByName returns a predefined material
func MaterialByName(name string) (Material, error) {
	m, ok := materials[name]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return m, nil
}

func (m Material) Name() string           { return m.name }
func (m Material) Friction() float64      { return m.friction }
func (m Material) SlipSpeed() float64     { return m.slipSpeed }
func (m Material) SlipAccel() float64     { return m.slipAccel }
func (m Material) WallBounce() float64    { return m.wallBounce }
func (m Material) FloorBounce() float64   { return m.floorBounce }
func (m Material) CeilingBounce() float64 { return m.ceilingBounce }

// Combine returns the effective material of a body touching a surface.
// Friction and slipperiness multiply; bounce takes the livelier of the two.
func Combine(surface, body Material) Material {
	return Material{
		name:          surface.name + "+" + body.name,
		friction:      surface.friction * body.friction,
		slipSpeed:     surface.slipSpeed * body.slipSpeed,
		slipAccel:     surface.slipAccel * body.slipAccel,
		wallBounce:    max(surface.wallBounce, body.wallBounce),
		floorBounce:   max(surface.floorBounce, body.floorBounce),
		ceilingBounce: max(surface.ceilingBounce, body.ceilingBounce),
	}
}
