package entity

import (
	"github.com/younwookim/zgame/internal/domain/effect"
	"github.com/younwookim/zgame/internal/domain/physics"
	"github.com/younwookim/zgame/internal/domain/stat"
)

// Mob is a living entity: the player or an enemy.
// It carries stats, status effects and a spell book, and reacts to touch
// events from the physics system.
type Mob struct {
	ID   EntityID
	Name string
	Kind Kind
	Body

	stats   *stat.Stats
	effects *effect.List
	Book    *SpellBook

	Controls Controls

	// Jumps
	MaxJumps  int
	JumpsLeft int

	// AI
	PatrolStartX   float64
	PatrolDir      int
	PatrolDistance float64
	DetectRange    float64
	CastCooldown   float64
	CastTimer      float64
	ContactDamage  float64

	HitTimer float64
	Landings int
}

// Controls is what the mob's controller (input or AI) asks for this tick
type Controls struct {
	WalkDir      int     // -1 left, 0 idle, 1 right
	JumpBuffer   float64 // seconds a jump request stays pending
	JumpReleased bool    // jump button let go this tick
}

// NewMob creates a mob with full resources and jumps
func NewMob(id EntityID, name string, kind Kind, body Body, stats *stat.Stats, maxJumps int) *Mob {
	return &Mob{
		ID:           id,
		Name:         name,
		Kind:         kind,
		Body:         body,
		stats:        stats,
		effects:      effect.NewList(),
		Book:         NewSpellBook(),
		MaxJumps:     maxJumps,
		JumpsLeft:    maxJumps,
		PatrolStartX: body.Rect.X,
		PatrolDir:    -1,
	}
}

func (m *Mob) Stats() *stat.Stats    { return m.stats }
func (m *Mob) Effects() *effect.List { return m.effects }

// Muzzle returns the point in front of the mob where projectiles start
func (m *Mob) Muzzle() (float64, float64, int) {
	cx, cy := m.Center()
	if m.FacingRight {
		return cx + m.Rect.W/2, cy, 1
	}
	return cx - m.Rect.W/2, cy, -1
}

// Alive reports whether the mob has health left
func (m *Mob) Alive() bool {
	return m.stats.Current(stat.Health) > 0
}

// TakeDamage removes health and returns true when the mob died
func (m *Mob) TakeDamage(amount float64) bool {
	m.stats.AddCurrent(stat.Health, -amount)
	m.HitTimer = 0.2
	return !m.Alive()
}

// TryJump spends a jump if one is left
func (m *Mob) TryJump() bool {
	if m.JumpsLeft <= 0 {
		return false
	}
	m.JumpsLeft--
	return true
}

// OnTouch resets jumps on landing
func (m *Mob) OnTouch(side physics.Side, _ physics.Material) {
	if side.Has(physics.SideBottom) {
		m.JumpsLeft = m.MaxJumps
		m.Landings++
	}
}

// OnLeave costs the ground jump when walking off a ledge
func (m *Mob) OnLeave(side physics.Side) {
	if side.Has(physics.SideBottom) && m.JumpsLeft == m.MaxJumps && m.JumpsLeft > 0 {
		m.JumpsLeft--
	}
}

// Tick advances the mob's status effects, regen and timers by dt seconds
func (m *Mob) Tick(dt float64) {
	m.effects.Tick(m, dt)
	m.stats.Tick(dt)
	if m.HitTimer > 0 {
		m.HitTimer -= dt
	}
	if m.CastTimer > 0 {
		m.CastTimer -= dt
	}
	if m.Controls.JumpBuffer > 0 {
		m.Controls.JumpBuffer -= dt
	}
}
