package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/zgame/internal/domain/entity"
	"github.com/younwookim/zgame/internal/domain/physics"
	"github.com/younwookim/zgame/internal/domain/spell"
	"github.com/younwookim/zgame/internal/domain/stat"
	"github.com/younwookim/zgame/internal/domain/tile"
)

func newTestMob(name string, x, y float64) *entity.Mob {
	body := entity.NewBody(x, y, 10, 14, physics.Default)
	return entity.NewMob(0, name, entity.KindPatrol, body, stat.NewStats(stat.Zusass), 1)
}

func TestNewEntityID(t *testing.T) {
	w := NewWorld(nil)

	assert.Equal(t, entity.EntityID(1), w.NewEntityID())
	assert.Equal(t, entity.EntityID(2), w.NewEntityID())
}

func TestWorld_CreatePlayer(t *testing.T) {
	w := NewWorld(nil)
	assert.Nil(t, w.Player())

	hero := newTestMob("hero", 0, 0)
	id := w.CreatePlayer(hero)
	assert.Equal(t, hero.ID, id)
	assert.Same(t, hero, w.Player())

	again := newTestMob("hero2", 0, 0)
	w.CreatePlayer(again)
	assert.Same(t, again, w.Player())
	_, ok := w.FindMob(id)
	assert.False(t, ok, "previous player is replaced")
}

func TestWorld_MobsAndIteration(t *testing.T) {
	w := NewWorld(nil)
	w.CreatePlayer(newTestMob("hero", 0, 0))
	a := w.CreateMob(newTestMob("slime", 50, 0))
	w.CreateMob(newTestMob("bat", 80, 0))

	assert.Equal(t, 2, w.CountEnemies())

	var names []string
	w.EachMob(func(m *entity.Mob) { names = append(names, m.Name) })
	assert.ElementsMatch(t, []string{"hero", "slime", "bat"}, names)

	m, ok := w.FindMob(a)
	require.True(t, ok)
	assert.Equal(t, "slime", m.Name)

	assert.True(t, w.Destroy(a))
	assert.False(t, w.Destroy(a))
	assert.Equal(t, 1, w.CountEnemies())
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld(nil)
	id1 := w.CreateMob(newTestMob("a", 0, 0))
	w.Destroy(id1)
	id2 := w.CreateMob(newTestMob("b", 0, 0))

	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
}

func TestWorld_SpawnProjectile(t *testing.T) {
	w := NewWorld(nil)
	hero := newTestMob("hero", 100, 50)
	w.CreatePlayer(hero)

	hit := spell.ResourceChange{Stat: stat.Health, Amount: -5}
	w.SpawnProjectile(spell.Launch{Caster: hero, Speed: 200, Range: 100, Size: 4, Effect: hit})

	require.Equal(t, 1, w.CountProjectiles())
	w.EachProjectile(func(p *entity.Projectile) {
		assert.Equal(t, hero.ID, p.Owner)
		assert.Equal(t, 108.0, p.Rect.X) // muzzle at 110, size 4
		assert.Equal(t, 200.0, p.Velocity.X())
		assert.Equal(t, hit, p.Effect)
		p.Deactivate()
	})

	assert.Equal(t, 1, w.RemoveInactiveProjectiles())
	assert.Zero(t, w.CountProjectiles())
}

func TestWorld_MobsOverlapping(t *testing.T) {
	room := tile.NewRoom("test", 10, 10, 16)

	for _, tt := range []struct {
		name string
		w    *World
	}{
		{"broadphase", NewWorld(room.Space())},
		{"linear scan", NewWorld(nil)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			near := newTestMob("near", 20, 20)
			far := newTestMob("far", 120, 120)
			tt.w.CreateMob(near)
			tt.w.CreateMob(far)

			got := tt.w.MobsOverlapping(physics.Rect{X: 25, Y: 25, W: 4, H: 4})
			assert.Equal(t, []*entity.Mob{near}, got)

			far.Teleport(24, 24)
			tt.w.SyncBroadphase()
			got = tt.w.MobsOverlapping(physics.Rect{X: 25, Y: 25, W: 4, H: 4})
			assert.ElementsMatch(t, []*entity.Mob{near, far}, got)

			assert.Empty(t, tt.w.MobsOverlapping(physics.Rect{X: 140, Y: 10, W: 4, H: 4}))
		})
	}
}

func TestWorld_Sources(t *testing.T) {
	w := NewWorld(nil)
	assert.NotEqual(t, w.Sources().Next(), w.Sources().Next())
}

func TestWorld_Close(t *testing.T) {
	room := tile.NewRoom("test", 10, 10, 16)
	w := NewWorld(room.Space())
	w.CreatePlayer(newTestMob("hero", 20, 20))
	w.CreateMob(newTestMob("slime", 40, 20))

	w.Close()

	assert.Nil(t, w.Player())
	assert.Zero(t, w.CountEnemies())

	// A new world over the same space starts clean
	next := NewWorld(room.Space())
	assert.Empty(t, next.MobsOverlapping(physics.Rect{X: 0, Y: 0, W: 160, H: 160}))
}
