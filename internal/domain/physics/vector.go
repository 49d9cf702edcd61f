// Package physics holds the value types shared by movement and collision:
// vectors, rectangles, materials and collision responses.
package physics

import "math"

const twoPi = 2 * math.Pi

// Vector is an immutable 2D vector stored in both cartesian and polar form.
// Both forms are computed once at construction and never change.
type Vector struct {
	x, y      float64
	angle     float64 // radians, [0, 2π)
	magnitude float64
}

// Zero is the zero vector. Its angle is 0 by convention.
var Zero = Vector{}

// NewVector creates a vector from cartesian components.
func NewVector(x, y float64) Vector {
	return Vector{
		x:         x,
		y:         y,
		angle:     normalizeAngle(math.Atan2(y, x)),
		magnitude: math.Hypot(x, y),
	}
}

// NewPolar creates a vector from an angle (radians) and a magnitude.
// A negative magnitude flips the angle by π so the stored magnitude stays >= 0.
func NewPolar(angle, magnitude float64) Vector {
	if magnitude < 0 {
		magnitude = -magnitude
		angle += math.Pi
	}
	angle = normalizeAngle(angle)
	if magnitude == 0 {
		return Zero
	}
	return Vector{
		x:         math.Cos(angle) * magnitude,
		y:         math.Sin(angle) * magnitude,
		angle:     angle,
		magnitude: magnitude,
	}
}

// X returns the horizontal component
func (v Vector) X() float64 { return v.x }

// Y returns the vertical component (positive is down, screen space)
func (v Vector) Y() float64 { return v.y }

// Angle returns the direction in radians, in [0, 2π)
func (v Vector) Angle() float64 { return v.angle }

// Magnitude returns the length
func (v Vector) Magnitude() float64 { return v.magnitude }

// Add returns the component-wise sum
func (v Vector) Add(other Vector) Vector {
	return NewVector(v.x+other.x, v.y+other.y)
}

// Scale returns the vector multiplied by k
func (v Vector) Scale(k float64) Vector {
	return NewVector(v.x*k, v.y*k)
}

// WithX returns a copy with the horizontal component replaced
func (v Vector) WithX(x float64) Vector {
	return NewVector(x, v.y)
}

// WithY returns a copy with the vertical component replaced
func (v Vector) WithY(y float64) Vector {
	return NewVector(v.x, y)
}

// IsZero reports whether both components are zero
func (v Vector) IsZero() bool {
	return v.x == 0 && v.y == 0
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	// Mod can round up to exactly 2π for tiny negative inputs
	if a >= twoPi {
		a = 0
	}
	return a
}
