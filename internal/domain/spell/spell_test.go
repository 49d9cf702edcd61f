package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/zgame/internal/domain/effect"
	"github.com/younwookim/zgame/internal/domain/stat"
)

type testMob struct {
	stats   *stat.Stats
	effects *effect.List
}

func newTestMob(mana float64) *testMob {
	m := &testMob{stats: stat.NewStats(stat.Zusass), effects: effect.NewList()}
	m.stats.SetCurrent(stat.Mana, mana)
	return m
}

func (m *testMob) Stats() *stat.Stats              { return m.stats }
func (m *testMob) Effects() *effect.List           { return m.effects }
func (m *testMob) Muzzle() (float64, float64, int) { return 10, 20, 1 }

type recordingSpawner struct {
	launches []Launch
}

func (s *recordingSpawner) SpawnProjectile(l Launch) {
	s.launches = append(s.launches, l)
}

func newTestContext() (*Context, *recordingSpawner) {
	sp := &recordingSpawner{}
	return &Context{Spawner: sp, Sources: &stat.Sources{}}, sp
}

func TestCastAttempt_NotEnoughMana(t *testing.T) {
	ctx, _ := newTestContext()
	caster := newTestMob(5)
	s := NewSelf("heal", 10, ResourceChange{Stat: stat.Health, Amount: 10})

	assert.False(t, s.CastAttempt(ctx, caster))
	assert.Equal(t, 5.0, caster.stats.Current(stat.Mana))
}

func TestSelf_CastAttempt(t *testing.T) {
	ctx, _ := newTestContext()
	caster := newTestMob(30)
	caster.stats.SetCurrent(stat.Health, 50)
	s := NewSelf("heal", 10, ResourceChange{Stat: stat.Health, Amount: 8})

	require.True(t, s.CastAttempt(ctx, caster))
	assert.Equal(t, 20.0, caster.stats.Current(stat.Mana))
	assert.InDelta(t, 60.0, caster.stats.Current(stat.Health), 1e-9) // 8 * 1.25
}

func TestStatusEffectDelivery(t *testing.T) {
	ctx, _ := newTestContext()
	caster := newTestMob(45)
	tmpl := effect.NewStatModifying(0, "might", 5,
		effect.StatChange{Stat: stat.Strength, Value: 5, Type: stat.Add})
	s := NewSelf("might", 15, StatusEffectDelivery{Template: tmpl})

	require.True(t, s.CastAttempt(ctx, caster))
	require.True(t, s.CastAttempt(ctx, caster))

	assert.Equal(t, 2, caster.effects.Len(), "each cast tracks its own instance")
	var sources []stat.SourceID
	caster.effects.Each(func(e effect.StatusEffect) { sources = append(sources, e.Source()) })
	assert.NotEqual(t, sources[0], sources[1])
	assert.Equal(t, 10.0, caster.stats.Value(stat.Strength))
	assert.Equal(t, 15.0, caster.stats.Current(stat.Mana))
}

func TestProjectile_CastAttempt(t *testing.T) {
	ctx, sp := newTestContext()
	caster := newTestMob(20)
	hit := ResourceChange{Stat: stat.Health, Amount: -10}
	s := NewProjectile("bolt", 5, hit, 300, 200, 6)

	require.True(t, s.CastAttempt(ctx, caster))
	require.Len(t, sp.launches, 1)
	l := sp.launches[0]
	assert.Equal(t, 300.0, l.Speed)
	assert.Equal(t, 200.0, l.Range)
	assert.Equal(t, 6.0, l.Size)
	assert.Same(t, caster, l.Caster.(*testMob))

	target := newTestMob(0)
	l.Effect.Apply(ctx, l.Caster, target)
	assert.InDelta(t, 87.5, target.stats.Current(stat.Health), 1e-9)

	noSpawner := &Context{Sources: ctx.Sources}
	assert.False(t, s.CastAttempt(noSpawner, caster))
	assert.Equal(t, 15.0, caster.stats.Current(stat.Mana))
}

func TestCastAttempt_NilContext(t *testing.T) {
	bolt := NewProjectile("bolt", 5, ResourceChange{Stat: stat.Health, Amount: -10}, 300, 200, 6)
	tmpl := effect.NewStatModifying(0, "might", 5,
		effect.StatChange{Stat: stat.Strength, Value: 5, Type: stat.Add})
	might := NewSelf("might", 5, StatusEffectDelivery{Template: tmpl})
	heal := NewSelf("heal", 5, ResourceChange{Stat: stat.Health, Amount: 8})

	for _, ctx := range []*Context{nil, {}} {
		caster := newTestMob(20)
		caster.stats.SetCurrent(stat.Health, 50)

		assert.False(t, bolt.CastAttempt(ctx, caster))
		assert.Equal(t, 20.0, caster.stats.Current(stat.Mana), "a failed cast costs nothing")

		require.NotPanics(t, func() { assert.True(t, might.CastAttempt(ctx, caster)) })
		assert.Zero(t, caster.effects.Len())
		assert.Equal(t, 5.0, caster.stats.Value(stat.Strength))

		require.True(t, heal.CastAttempt(ctx, caster))
		assert.InDelta(t, 60.0, caster.stats.Current(stat.Health), 1e-9)
		assert.Equal(t, 10.0, caster.stats.Current(stat.Mana))
	}
}

func TestMulti_CastAttempt(t *testing.T) {
	ctx, sp := newTestContext()
	bolt := NewProjectile("bolt", 5, ResourceChange{Stat: stat.Health, Amount: -1}, 100, 100, 4)
	nova := NewProjectile("nova", 50, ResourceChange{Stat: stat.Health, Amount: -1}, 100, 100, 4)
	m := NewMulti("volley", 2, bolt, nova, bolt)

	t.Run("partial success", func(t *testing.T) {
		caster := newTestMob(20)
		assert.True(t, m.CastAttempt(ctx, caster))
		assert.Len(t, sp.launches, 2, "nova is too expensive")
		assert.Equal(t, 8.0, caster.stats.Current(stat.Mana))
	})

	t.Run("own cost unpaid", func(t *testing.T) {
		caster := newTestMob(1)
		assert.False(t, m.CastAttempt(ctx, caster))
		assert.Equal(t, 1.0, caster.stats.Current(stat.Mana))
	})
}

func TestNone(t *testing.T) {
	ctx, _ := newTestContext()
	caster := newTestMob(40)
	assert.False(t, NewNone().CastAttempt(ctx, caster))
	assert.Equal(t, 40.0, caster.stats.Current(stat.Mana))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(NewSelf("heal", 10, ResourceChange{Stat: stat.Health, Amount: 5}))

	s, err := r.Get("heal")
	require.NoError(t, err)
	assert.Equal(t, 10.0, s.Cost())
	assert.Equal(t, []string{"heal", "none"}, r.Names())

	_, err = r.Get("fireball")
	assert.ErrorIs(t, err, ErrUnknownSpell)
}
