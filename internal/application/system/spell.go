package system

import (
	"log/slog"

	"github.com/younwookim/zgame/internal/domain/entity"
	"github.com/younwookim/zgame/internal/domain/physics"
	"github.com/younwookim/zgame/internal/domain/spell"
	"github.com/younwookim/zgame/internal/domain/tile"
	"github.com/younwookim/zgame/internal/ecs"
	"github.com/younwookim/zgame/internal/infrastructure/config"
)

// SpellSystem casts spells and flies their projectiles
type SpellSystem struct {
	config *config.PhysicsConfig
	room   *tile.Room
	world  *ecs.World
	ctx    *spell.Context

	// OnHit is called when a projectile delivers its effect
	OnHit func(p *entity.Projectile, target *entity.Mob)
}

// NewSpellSystem creates a new spell system. The world is the spawner for
// projectile spells.
func NewSpellSystem(cfg *config.PhysicsConfig, room *tile.Room, world *ecs.World) *SpellSystem {
	return &SpellSystem{
		config: cfg,
		room:   room,
		world:  world,
		ctx: &spell.Context{
			Spawner: world,
			Sources: world.Sources(),
		},
	}
}

// Context returns the cast context shared by all casts
func (s *SpellSystem) Context() *spell.Context { return s.ctx }

// Cast attempts the mob's selected spell. It fails while the mob's cast
// cooldown runs or when it cannot pay.
func (s *SpellSystem) Cast(m *entity.Mob) bool {
	if m.CastTimer > 0 {
		return false
	}
	sp := m.Book.Selected()
	if sp == nil {
		return false
	}
	if !sp.CastAttempt(s.ctx, m) {
		return false
	}
	m.CastTimer = s.cooldown(m)
	slog.Debug("spell cast", "mob", m.Name, "spell", sp.Name(), "cost", sp.Cost())
	return true
}

func (s *SpellSystem) cooldown(m *entity.Mob) float64 {
	if m.CastCooldown > 0 {
		return m.CastCooldown
	}
	return s.config.Spell.CastCooldown
}

// Update moves projectiles, delivers effects on impact and removes spent
// projectiles
func (s *SpellSystem) Update(dt float64) {
	s.world.EachProjectile(func(p *entity.Projectile) {
		s.updateProjectile(p, dt)
	})
	s.world.RemoveInactiveProjectiles()
}

func (s *SpellSystem) updateProjectile(p *entity.Projectile, dt float64) {
	if !p.Active {
		return
	}
	r := p.Advance(dt)

	for _, m := range s.world.MobsOverlapping(r) {
		if m.ID == p.Owner || !m.Alive() {
			continue
		}
		if p.Effect != nil && p.Caster != nil {
			p.Effect.Apply(s.ctx, p.Caster, m)
		}
		if s.OnHit != nil {
			s.OnHit(p, m)
		}
		p.Deactivate()
		return
	}

	if s.hitsWall(r) {
		p.Deactivate()
	}
}

func (s *SpellSystem) hitsWall(r physics.Rect) bool {
	for _, t := range s.room.Candidates(r) {
		if t.Type().Solid() && r.Overlaps(t.Rect()) {
			return true
		}
	}
	return false
}
