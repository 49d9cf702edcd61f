// Package tile models the room grid: tile types, tiles and collision
// resolution of moving rectangles against them.
package tile

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/younwookim/zgame/internal/domain/physics"
)

// DefaultSize is the tile edge length in pixels
const DefaultSize = 16

// ErrUnknownType is returned when a tile type name is not registered
var ErrUnknownType = errors.New("unknown tile type")

// Type describes what a tile is: its shape, material and how it is drawn.
// Types are immutable and shared by every tile that points at them; to
// change a tile's look or behavior point it at another Type.
type Type struct {
	name     string
	hitbox   Hitbox
	material physics.Material
	render   color.RGBA
}

// NewType creates a tile type
func NewType(name string, hitbox Hitbox, material physics.Material, render color.RGBA) *Type {
	if hitbox == nil {
		hitbox = NoHitbox{}
	}
	return &Type{name: name, hitbox: hitbox, material: material, render: render}
}

func (t *Type) Name() string               { return t.name }
func (t *Type) Hitbox() Hitbox             { return t.hitbox }
func (t *Type) Material() physics.Material { return t.material }
func (t *Type) Render() color.RGBA         { return t.render }

// Solid reports whether the type can collide at all
func (t *Type) Solid() bool {
	_, none := t.hitbox.(NoHitbox)
	return !none
}

// Predefined tile types
var (
	Empty    = NewType("empty", NoHitbox{}, physics.Default, color.RGBA{})
	Wall     = NewType("wall", FullHitbox{}, physics.Default, color.RGBA{80, 80, 100, 255})
	Rough    = NewType("rough", FullHitbox{}, physics.HighFriction, color.RGBA{120, 90, 60, 255})
	IceBlock = NewType("ice", FullHitbox{}, physics.Ice, color.RGBA{160, 210, 240, 255})
	Bounce   = NewType("bounce", FullHitbox{}, physics.Bouncy, color.RGBA{220, 120, 200, 255})
	Boundary = NewType("boundary", FullHitbox{}, physics.Boundary, color.RGBA{30, 30, 40, 255})
)

var types = map[string]*Type{
	Empty.name:    Empty,
	Wall.name:     Wall,
	Rough.name:    Rough,
	IceBlock.name: IceBlock,
	Bounce.name:   Bounce,
	Boundary.name: Boundary,
}

// TypeByName returns a predefined tile type
func TypeByName(name string) (*Type, error) {
	t, ok := types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return t, nil
}

// Tile is one grid cell. Its pixel position is always index * size.
type Tile struct {
	x, y int
	size float64
	typ  *Type
}

// New creates a tile at grid index (x, y)
func New(x, y int, size float64, typ *Type) *Tile {
	if typ == nil {
		typ = Empty
	}
	return &Tile{x: x, y: y, size: size, typ: typ}
}

// Index returns the grid coordinates
func (t *Tile) Index() (int, int) { return t.x, t.y }

// Type returns the current tile type
func (t *Tile) Type() *Type { return t.typ }

// SetType re-points the tile at another type
func (t *Tile) SetType(typ *Type) {
	if typ == nil {
		typ = Empty
	}
	t.typ = typ
}

// Rect returns the pixel-space rectangle
func (t *Tile) Rect() physics.Rect {
	return physics.Rect{
		X: float64(t.x) * t.size,
		Y: float64(t.y) * t.size,
		W: t.size,
		H: t.size,
	}
}

// Collide resolves a moving rectangle against this tile
func (t *Tile) Collide(cur, prev physics.Rect) physics.Response {
	return t.typ.hitbox.Collide(cur, prev, t.Rect())
}
