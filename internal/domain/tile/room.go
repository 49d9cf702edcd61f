package tile

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"
	"github.com/younwookim/zgame/internal/domain/physics"
)

// Resolv tags used in a room's space
const (
	TagSolid = "solid"
	TagProbe = "probe"
	TagMob   = "mob"
)

// Room is a rectangular grid of tiles plus a broadphase index of the solid ones.
// Cells outside the grid behave as Boundary tiles.
type Room struct {
	name          string
	width, height int // in tiles
	size          float64
	tiles         [][]*Tile
	spawnX        float64
	spawnY        float64

	space   *resolv.Space
	objects map[*Tile]*resolv.Object
	probe   *resolv.Object
}

// NewRoom creates a room filled with Empty tiles
func NewRoom(name string, width, height int, size float64) *Room {
	if size <= 0 {
		size = DefaultSize
	}
	cell := int(size)
	r := &Room{
		name:    name,
		width:   width,
		height:  height,
		size:    size,
		tiles:   make([][]*Tile, height),
		space:   resolv.NewSpace(width*cell, height*cell, cell, cell),
		objects: make(map[*Tile]*resolv.Object),
		probe:   resolv.NewObject(0, 0, 1, 1, TagProbe),
	}
	for y := 0; y < height; y++ {
		r.tiles[y] = make([]*Tile, width)
		for x := 0; x < width; x++ {
			r.tiles[y][x] = New(x, y, size, Empty)
		}
	}
	r.space.Add(r.probe)
	return r
}

func (r *Room) Name() string         { return r.name }
func (r *Room) Width() int           { return r.width }
func (r *Room) Height() int          { return r.height }
func (r *Room) TileSize() float64    { return r.size }
func (r *Room) Space() *resolv.Space { return r.space }
func (r *Room) PixelWidth() float64  { return float64(r.width) * r.size }
func (r *Room) PixelHeight() float64 { return float64(r.height) * r.size }

// Spawn returns the player spawn point in pixels
func (r *Room) Spawn() (float64, float64) { return r.spawnX, r.spawnY }

// SetSpawn sets the player spawn point in pixels
func (r *Room) SetSpawn(x, y float64) {
	r.spawnX = x
	r.spawnY = y
}

// InBounds reports whether (x, y) is a grid index
func (r *Room) InBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// Tile returns the tile at grid index (x, y).
// Out of range indices return a fresh Boundary tile at that index.
func (r *Room) Tile(x, y int) *Tile {
	if !r.InBounds(x, y) {
		return New(x, y, r.size, Boundary)
	}
	return r.tiles[y][x]
}

// TileAtPixel returns the tile containing the pixel point
func (r *Room) TileAtPixel(px, py float64) *Tile {
	return r.Tile(int(math.Floor(px/r.size)), int(math.Floor(py/r.size)))
}

// SetTileType re-points a tile at another type and keeps the broadphase in sync
func (r *Room) SetTileType(x, y int, typ *Type) {
	if !r.InBounds(x, y) {
		return
	}
	t := r.tiles[y][x]
	t.SetType(typ)

	obj, indexed := r.objects[t]
	switch {
	case t.Type().Solid() && !indexed:
		rect := t.Rect()
		obj = resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, TagSolid)
		obj.Data = t
		r.space.Add(obj)
		r.objects[t] = obj
	case !t.Type().Solid() && indexed:
		r.space.Remove(obj)
		delete(r.objects, t)
	}
}

// Each calls fn for every in-bounds tile, row by row
func (r *Room) Each(fn func(t *Tile)) {
	for _, row := range r.tiles {
		for _, t := range row {
			fn(t)
		}
	}
}

// Candidates returns the solid tiles that may touch rect: indexed tiles found
// through the broadphase plus Boundary tiles for cells outside the grid.
func (r *Room) Candidates(rect physics.Rect) []*Tile {
	// Grow by a pixel so cells the rect only partially covers are included
	r.probe.X = rect.X - 1
	r.probe.Y = rect.Y - 1
	r.probe.W = rect.W + 2
	r.probe.H = rect.H + 2
	r.probe.Update()

	var out []*Tile
	if check := r.probe.Check(0, 0, TagSolid); check != nil {
		for _, obj := range check.ObjectsByTags(TagSolid) {
			if t, ok := obj.Data.(*Tile); ok {
				out = append(out, t)
			}
		}
	}

	x0 := int(math.Floor(rect.Left() / r.size))
	x1 := int(math.Floor((rect.Right() - 1e-9) / r.size))
	y0 := int(math.Floor(rect.Top() / r.size))
	y1 := int(math.Floor((rect.Bottom() - 1e-9) / r.size))
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			if !r.InBounds(tx, ty) {
				out = append(out, New(tx, ty, r.size, Boundary))
			}
		}
	}
	return out
}

// Result is the outcome of resolving a moving rectangle against a room
type Result struct {
	Rect    physics.Rect
	Touched physics.Side

	// Surface materials of the tiles touched on each side
	Floor   physics.Material
	Ceiling physics.Material
	Wall    physics.Material
}

// Resolve pushes cur out of every solid tile it overlaps. prev is the
// rectangle before this tick's movement. Deeper overlaps are resolved first.
func (r *Room) Resolve(cur, prev physics.Rect) Result {
	res := Result{Rect: cur}

	candidates := r.Candidates(cur)
	sort.SliceStable(candidates, func(i, j int) bool {
		return overlapArea(cur, candidates[i].Rect()) > overlapArea(cur, candidates[j].Rect())
	})

	for _, t := range candidates {
		resp := t.Collide(res.Rect, prev)
		if !resp.Collided {
			continue
		}
		res.Rect = res.Rect.Moved(resp.X, resp.Y)
		res.Touched |= resp.Touched

		m := t.Type().Material()
		switch {
		case resp.Touched.Has(physics.SideBottom):
			res.Floor = m
		case resp.Touched.Has(physics.SideTop):
			res.Ceiling = m
		case resp.Touched.Wall():
			res.Wall = m
		}
	}
	return res
}

// Touching reports which sides of rect rest exactly against solid tiles.
// Used to keep ground contact for bodies that did not move into the floor.
func (r *Room) Touching(rect physics.Rect) (physics.Side, physics.Material) {
	var side physics.Side
	floor := physics.Default
	probe := func(p physics.Rect, s physics.Side) {
		for _, t := range r.Candidates(p) {
			if t.Type().Solid() && p.Overlaps(t.Rect()) {
				side |= s
				if s == physics.SideBottom {
					floor = t.Type().Material()
				}
				return
			}
		}
	}
	const skin = 0.5
	probe(physics.Rect{X: rect.X, Y: rect.Bottom(), W: rect.W, H: skin}, physics.SideBottom)
	probe(physics.Rect{X: rect.X, Y: rect.Y - skin, W: rect.W, H: skin}, physics.SideTop)
	probe(physics.Rect{X: rect.X - skin, Y: rect.Y, W: skin, H: rect.H}, physics.SideLeft)
	probe(physics.Rect{X: rect.Right(), Y: rect.Y, W: skin, H: rect.H}, physics.SideRight)
	return side, floor
}

func overlapArea(a, b physics.Rect) float64 {
	ox := a.OverlapX(b)
	oy := a.OverlapY(b)
	if ox <= 0 || oy <= 0 {
		return 0
	}
	return ox * oy
}
