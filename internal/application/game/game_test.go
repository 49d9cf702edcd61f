package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/zgame/internal/application/scene"
)

type fakeScene struct {
	updates, draws int
	enters, exits  int
	lastDT         float64
	next           scene.Scene
	err            error
}

func (s *fakeScene) Update(dt float64) (scene.Scene, error) {
	s.updates++
	s.lastDT = dt
	return s.next, s.err
}

func (s *fakeScene) Draw(*ebiten.Image) { s.draws++ }
func (s *fakeScene) OnEnter()           { s.enters++ }
func (s *fakeScene) OnExit()            { s.exits++ }

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		fps    int
		wantDT float64
	}{
		{"60 fps", 60, 1.0 / 60},
		{"30 fps", 30, 1.0 / 30},
		{"zero falls back to 60", 0, 1.0 / 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeScene{}
			g := New(s, 480, 240, tt.fps)
			assert.Equal(t, 1, s.enters)
			assert.Equal(t, tt.wantDT, g.DT())
			assert.Same(t, s, g.Current())
		})
	}
}

func TestGame_Update(t *testing.T) {
	s := &fakeScene{}
	g := New(s, 480, 240, 60)

	for range 3 {
		require.NoError(t, g.Update())
	}
	assert.Equal(t, 3, s.updates)
	assert.Equal(t, 1.0/60, s.lastDT)
	assert.Equal(t, 3, g.Ticks())
	assert.Zero(t, s.exits)
}

func TestGame_Switch(t *testing.T) {
	second := &fakeScene{}
	first := &fakeScene{next: second}
	g := New(first, 480, 240, 60)

	require.NoError(t, g.Update())
	assert.Equal(t, 1, first.exits)
	assert.Equal(t, 1, second.enters)
	assert.Same(t, second, g.Current())

	require.NoError(t, g.Update())
	assert.Equal(t, 1, first.updates)
	assert.Equal(t, 1, second.updates)
}

func TestGame_UpdateError(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		s := &fakeScene{err: assert.AnError}
		g := New(s, 480, 240, 60)
		assert.ErrorIs(t, g.Update(), assert.AnError)
		assert.Zero(t, g.Ticks())
		assert.Zero(t, s.exits)
	})

	t.Run("termination exits the scene", func(t *testing.T) {
		s := &fakeScene{err: ebiten.Termination}
		g := New(s, 480, 240, 60)
		assert.ErrorIs(t, g.Update(), ebiten.Termination)
		assert.Equal(t, 1, s.exits)
	})
}

func TestGame_DrawAndLayout(t *testing.T) {
	s := &fakeScene{}
	g := New(s, 480, 240, 60)

	g.Draw(ebiten.NewImage(480, 240))
	assert.Equal(t, 1, s.draws)

	w, h := g.Layout(1440, 720)
	assert.Equal(t, 480, w)
	assert.Equal(t, 240, h)
}
