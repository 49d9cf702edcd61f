package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/zgame/internal/domain/physics"
)

func TestBody_Step(t *testing.T) {
	b := NewBody(10, 20, 8, 12, physics.Default)
	b.Velocity = physics.NewVector(100, -50)

	r := b.Step(0.1)

	assert.InDelta(t, 20.0, r.X, 1e-9)
	assert.InDelta(t, 15.0, r.Y, 1e-9)
	assert.Equal(t, physics.Rect{X: 10, Y: 20, W: 8, H: 12}, b.Prev)
	assert.Equal(t, r, b.Rect)
}

func TestBody_Step_Accumulates(t *testing.T) {
	b := NewBody(100, 50, 8, 8, physics.Default)
	b.Velocity = physics.NewVector(60, 30)

	for range 10 {
		b.Step(0.1)
	}

	assert.InDelta(t, 160.0, b.Rect.X, 1e-9)
	assert.InDelta(t, 80.0, b.Rect.Y, 1e-9)
	assert.InDelta(t, 154.0, b.Prev.X, 1e-9)
	assert.InDelta(t, 77.0, b.Prev.Y, 1e-9)
}

func TestBody_Teleport(t *testing.T) {
	b := NewBody(0, 0, 8, 8, physics.Default)
	b.Teleport(40, 50)

	assert.Equal(t, b.Rect, b.Prev)
	x, y := b.Center()
	assert.Equal(t, 44.0, x)
	assert.Equal(t, 54.0, y)
}

func TestBody_SetTouching(t *testing.T) {
	tests := []struct {
		name        string
		before      physics.Side
		now         physics.Side
		wantTouched physics.Side
		wantLeft    physics.Side
	}{
		{"landing", physics.SideNone, physics.SideBottom, physics.SideBottom, physics.SideNone},
		{"jumping off", physics.SideBottom, physics.SideNone, physics.SideNone, physics.SideBottom},
		{"sliding into a wall", physics.SideBottom, physics.SideBottom | physics.SideRight, physics.SideRight, physics.SideNone},
		{"no change", physics.SideLeft, physics.SideLeft, physics.SideNone, physics.SideNone},
		{"corner swap", physics.SideLeft | physics.SideTop, physics.SideTop | physics.SideRight, physics.SideRight, physics.SideLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(0, 0, 8, 8, physics.Default)
			b.Touching = tt.before

			touched, left := b.SetTouching(tt.now)
			assert.Equal(t, tt.wantTouched, touched)
			assert.Equal(t, tt.wantLeft, left)
			assert.Equal(t, tt.now, b.Touching)
		})
	}
}

func TestBody_Flags(t *testing.T) {
	b := NewBody(0, 0, 8, 8, physics.Default)
	b.Touching = physics.SideBottom | physics.SideLeft

	assert.True(t, b.OnGround())
	assert.True(t, b.OnWallLeft())
	assert.False(t, b.OnWallRight())
	assert.False(t, b.OnCeiling())
}

func TestBody_Effective(t *testing.T) {
	b := NewBody(0, 0, 8, 8, physics.Bouncy)
	b.Floor = physics.Ice

	assert.Equal(t, physics.Bouncy, b.Effective(), "airborne uses the body alone")

	b.Touching = physics.SideBottom
	m := b.Effective()
	assert.InDelta(t, physics.Ice.Friction()*physics.Bouncy.Friction(), m.Friction(), 1e-9)
	assert.Equal(t, physics.Bouncy.FloorBounce(), m.FloorBounce())
}
