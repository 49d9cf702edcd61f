package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/zgame/internal/domain/physics"
)

// createTestRoom builds a 5x5 room of 16px tiles with a floor row and a
// wall column on the right
func createTestRoom() *Room {
	r := NewRoom("test", 5, 5, 16)
	for x := 0; x < 5; x++ {
		r.SetTileType(x, 4, Wall)
	}
	for y := 0; y < 4; y++ {
		r.SetTileType(4, y, Wall)
	}
	return r
}

func TestNewRoom(t *testing.T) {
	r := NewRoom("empty", 3, 2, 0)

	assert.Equal(t, "empty", r.Name())
	assert.Equal(t, 3, r.Width())
	assert.Equal(t, 2, r.Height())
	assert.Equal(t, float64(DefaultSize), r.TileSize())
	assert.Equal(t, 48.0, r.PixelWidth())
	assert.Equal(t, 32.0, r.PixelHeight())

	r.Each(func(tl *Tile) {
		assert.Equal(t, Empty, tl.Type())
	})
}

func TestTile_Rect(t *testing.T) {
	tl := New(3, 2, 16, Wall)

	x, y := tl.Index()
	assert.Equal(t, 3, x)
	assert.Equal(t, 2, y)
	assert.Equal(t, physics.Rect{X: 48, Y: 32, W: 16, H: 16}, tl.Rect())

	tl.SetType(IceBlock)
	assert.Equal(t, IceBlock, tl.Type())
	assert.Equal(t, physics.Rect{X: 48, Y: 32, W: 16, H: 16}, tl.Rect(), "type swap keeps position")
}

func TestTypeByName(t *testing.T) {
	typ, err := TypeByName("ice")
	require.NoError(t, err)
	assert.Equal(t, IceBlock, typ)
	assert.True(t, typ.Solid())
	assert.False(t, Empty.Solid())

	_, err = TypeByName("lava")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestRoom_TileOutOfBounds(t *testing.T) {
	r := createTestRoom()

	assert.Equal(t, Boundary, r.Tile(-1, 0).Type())
	assert.Equal(t, Boundary, r.Tile(0, 5).Type())
	assert.Equal(t, Wall, r.Tile(2, 4).Type())
	assert.Equal(t, Wall, r.TileAtPixel(70, 10).Type())
	assert.Equal(t, Empty, r.TileAtPixel(10, 10).Type())
}

func TestRoom_Candidates(t *testing.T) {
	r := createTestRoom()

	t.Run("open space has none", func(t *testing.T) {
		assert.Empty(t, r.Candidates(physics.Rect{X: 20, Y: 20, W: 8, H: 8}))
	})

	t.Run("finds floor tiles through the broadphase", func(t *testing.T) {
		found := r.Candidates(physics.Rect{X: 20, Y: 58, W: 10, H: 10})
		require.NotEmpty(t, found)
		for _, tl := range found {
			assert.True(t, tl.Type().Solid())
		}
	})

	t.Run("adds boundary tiles outside the grid", func(t *testing.T) {
		found := r.Candidates(physics.Rect{X: -10, Y: 20, W: 8, H: 8})
		require.NotEmpty(t, found)
		assert.Equal(t, Boundary, found[len(found)-1].Type())
	})

	t.Run("type swap updates the broadphase", func(t *testing.T) {
		r := createTestRoom()
		r.SetTileType(1, 4, Empty)
		r.SetTileType(0, 4, Empty)

		for _, tl := range r.Candidates(physics.Rect{X: 2, Y: 58, W: 10, H: 10}) {
			x, y := tl.Index()
			assert.False(t, x < 2 && y == 4, "emptied tile (%d,%d) still indexed", x, y)
		}
	})
}

func TestRoom_Resolve(t *testing.T) {
	r := createTestRoom()

	t.Run("lands on floor", func(t *testing.T) {
		res := r.Resolve(physics.Rect{X: 20, Y: 58, W: 10, H: 10}, physics.Rect{X: 20, Y: 50, W: 10, H: 10})

		assert.InDelta(t, 54, res.Rect.Y, 1e-9)
		assert.InDelta(t, 20, res.Rect.X, 1e-9)
		assert.True(t, res.Touched.Has(physics.SideBottom))
		assert.Equal(t, physics.Default, res.Floor)
	})

	t.Run("pushed out of right wall", func(t *testing.T) {
		res := r.Resolve(physics.Rect{X: 57, Y: 20, W: 10, H: 10}, physics.Rect{X: 50, Y: 20, W: 10, H: 10})

		assert.InDelta(t, 54, res.Rect.X, 1e-9)
		assert.True(t, res.Touched.Has(physics.SideRight))
	})

	t.Run("corner with floor and wall", func(t *testing.T) {
		res := r.Resolve(physics.Rect{X: 57, Y: 57, W: 10, H: 10}, physics.Rect{X: 53, Y: 53, W: 10, H: 10})

		assert.LessOrEqual(t, res.Rect.Right(), 64.0)
		assert.LessOrEqual(t, res.Rect.Bottom(), 64.0)
		assert.False(t, res.Rect.Overlaps(r.Tile(4, 4).Rect()))
	})

	t.Run("free space untouched", func(t *testing.T) {
		cur := physics.Rect{X: 20, Y: 20, W: 10, H: 10}
		res := r.Resolve(cur, cur)

		assert.Equal(t, cur, res.Rect)
		assert.Equal(t, physics.SideNone, res.Touched)
	})

	t.Run("surface material is reported", func(t *testing.T) {
		r := createTestRoom()
		r.SetTileType(1, 4, IceBlock)
		r.SetTileType(2, 4, IceBlock)

		res := r.Resolve(physics.Rect{X: 20, Y: 58, W: 10, H: 10}, physics.Rect{X: 20, Y: 50, W: 10, H: 10})
		assert.Equal(t, physics.Ice, res.Floor)
	})
}

func TestRoom_Touching(t *testing.T) {
	r := createTestRoom()

	side, floor := r.Touching(physics.Rect{X: 20, Y: 54, W: 10, H: 10})
	assert.True(t, side.Has(physics.SideBottom))
	assert.False(t, side.Wall())
	assert.Equal(t, physics.Default, floor)

	side, _ = r.Touching(physics.Rect{X: 54, Y: 20, W: 10, H: 10})
	assert.True(t, side.Has(physics.SideRight))
	assert.False(t, side.Has(physics.SideBottom))

	side, _ = r.Touching(physics.Rect{X: 20, Y: 20, W: 10, H: 10})
	assert.Equal(t, physics.SideNone, side)
}
