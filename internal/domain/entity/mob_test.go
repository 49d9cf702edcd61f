package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/zgame/internal/domain/effect"
	"github.com/younwookim/zgame/internal/domain/physics"
	"github.com/younwookim/zgame/internal/domain/spell"
	"github.com/younwookim/zgame/internal/domain/stat"
)

func newTestMob() *Mob {
	return NewMob(1, "hero", KindPlayer, NewBody(32, 32, 10, 14, physics.Default), stat.NewStats(stat.Zusass), 2)
}

func TestMob_Jumps(t *testing.T) {
	m := newTestMob()

	assert.True(t, m.TryJump())
	m.OnLeave(physics.SideBottom)
	assert.Equal(t, 1, m.JumpsLeft, "jumping off does not cost twice")
	assert.True(t, m.TryJump())
	assert.False(t, m.TryJump())

	m.OnTouch(physics.SideBottom, physics.Default)
	assert.Equal(t, 2, m.JumpsLeft)
	assert.Equal(t, 1, m.Landings)

	m.OnTouch(physics.SideLeft, physics.Default)
	assert.Equal(t, 1, m.Landings, "walls do not count as landing")
}

func TestMob_WalkOffLedge(t *testing.T) {
	m := newTestMob()
	m.OnLeave(physics.SideBottom)
	assert.Equal(t, 1, m.JumpsLeft)
}

func TestMob_Muzzle(t *testing.T) {
	m := newTestMob()

	x, y, dir := m.Muzzle()
	assert.Equal(t, 42.0, x)
	assert.Equal(t, 39.0, y)
	assert.Equal(t, 1, dir)

	m.FacingRight = false
	x, _, dir = m.Muzzle()
	assert.Equal(t, 32.0, x)
	assert.Equal(t, -1, dir)
}

func TestMob_TakeDamage(t *testing.T) {
	m := newTestMob()
	require.True(t, m.Alive())

	assert.False(t, m.TakeDamage(40))
	assert.Equal(t, 60.0, m.Stats().Current(stat.Health))
	assert.Greater(t, m.HitTimer, 0.0)

	assert.True(t, m.TakeDamage(500))
	assert.False(t, m.Alive())
	assert.Equal(t, 0.0, m.Stats().Current(stat.Health))
}

func TestMob_Tick(t *testing.T) {
	m := newTestMob()
	m.Stats().SetCurrent(stat.Mana, 0)
	m.Effects().Add(m, effect.NewStatModifying(9, "slow", 1,
		effect.StatChange{Stat: stat.MoveSpeed, Value: -0.5, Type: stat.MultAdd}))
	require.Equal(t, 40.0, m.Stats().Value(stat.MoveSpeed))

	m.Tick(1)

	assert.Zero(t, m.Effects().Len())
	assert.Equal(t, 80.0, m.Stats().Value(stat.MoveSpeed))
	assert.InDelta(t, 1.5, m.Stats().Current(stat.Mana), 1e-9)
}

func TestMob_IsSpellCaster(t *testing.T) {
	var _ spell.Caster = newTestMob()
	var _ TouchListener = newTestMob()
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("chase")
	assert.True(t, ok)
	assert.Equal(t, KindChase, k)

	k, ok = ParseKind("dragon")
	assert.False(t, ok)
	assert.Equal(t, KindPatrol, k)
}
