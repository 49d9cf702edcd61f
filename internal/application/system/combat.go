package system

import (
	"log/slog"
	"math"

	"github.com/younwookim/zgame/internal/domain/entity"
	"github.com/younwookim/zgame/internal/domain/physics"
	"github.com/younwookim/zgame/internal/ecs"
)

// Knockback applied to a mob hurt by contact, in pixels per second
const (
	knockbackForce   = 140.0
	knockbackUpForce = 120.0
)

// CombatSystem drives enemy AI, contact damage and deaths
type CombatSystem struct {
	world *ecs.World

	// OnPlayerHit is called when contact damage lands on the player
	OnPlayerHit func(damage float64)
	// OnKill is called when an enemy dies, before it is removed
	OnKill func(m *entity.Mob)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(world *ecs.World) *CombatSystem {
	return &CombatSystem{world: world}
}

// Intents decides what every enemy wants to do this tick
func (s *CombatSystem) Intents() []Intent {
	player := s.world.Player()
	var intents []Intent
	s.world.EachEnemy(func(m *entity.Mob) {
		if !m.Alive() || m.HitTimer > 0 {
			intents = append(intents, MoveIntent{EntityID: m.ID, Dir: 0})
			return
		}
		switch m.Kind {
		case entity.KindChase:
			intents = append(intents, s.chase(m, player)...)
		default:
			intents = append(intents, s.patrol(m))
		}
	})
	return intents
}

// patrol walks back and forth around the spawn point and turns at walls
func (s *CombatSystem) patrol(m *entity.Mob) Intent {
	if m.PatrolDir == 0 {
		m.PatrolDir = -1
	}
	dist := m.Rect.X - m.PatrolStartX
	switch {
	case m.PatrolDir < 0 && (m.OnWallLeft() || (m.PatrolDistance > 0 && dist < -m.PatrolDistance)):
		m.PatrolDir = 1
	case m.PatrolDir > 0 && (m.OnWallRight() || (m.PatrolDistance > 0 && dist > m.PatrolDistance)):
		m.PatrolDir = -1
	}
	return MoveIntent{EntityID: m.ID, Dir: m.PatrolDir}
}

// chase walks toward the player inside the detect range and casts when the
// player is roughly level with it
func (s *CombatSystem) chase(m *entity.Mob, player *entity.Mob) []Intent {
	if player == nil || !player.Alive() {
		return []Intent{MoveIntent{EntityID: m.ID, Dir: 0}}
	}
	mx, my := m.Center()
	px, py := player.Center()
	dx, dy := px-mx, py-my
	if math.Hypot(dx, dy) > m.DetectRange {
		return []Intent{MoveIntent{EntityID: m.ID, Dir: 0}}
	}

	dir := 1
	if dx < 0 {
		dir = -1
	}
	intents := []Intent{MoveIntent{EntityID: m.ID, Dir: dir}}
	if m.Book.Len() > 0 && m.CastTimer <= 0 && math.Abs(dy) < player.Rect.H {
		intents = append(intents, CastIntent{EntityID: m.ID})
	}
	return intents
}

// Update applies contact damage to the player and removes dead enemies.
// It returns false once the player is dead.
func (s *CombatSystem) Update() bool {
	player := s.world.Player()
	if player != nil && player.Alive() && player.HitTimer <= 0 {
		s.world.EachEnemy(func(m *entity.Mob) {
			if m.ContactDamage <= 0 || !m.Alive() || player.HitTimer > 0 {
				return
			}
			if !m.Rect.Overlaps(player.Rect) {
				return
			}
			player.TakeDamage(m.ContactDamage)
			knockback(player, m)
			if s.OnPlayerHit != nil {
				s.OnPlayerHit(m.ContactDamage)
			}
		})
	}

	var dead []*entity.Mob
	s.world.EachEnemy(func(m *entity.Mob) {
		if !m.Alive() {
			dead = append(dead, m)
		}
	})
	for _, m := range dead {
		if s.OnKill != nil {
			s.OnKill(m)
		}
		m.Effects().ClearAll(m)
		s.world.Destroy(m.ID)
		slog.Info("mob died", "mob", m.Name, "id", m.ID)
	}

	return player == nil || player.Alive()
}

func knockback(target, from *entity.Mob) {
	tx, _ := target.Center()
	fx, _ := from.Center()
	dir := 1.0
	if fx > tx {
		dir = -1.0
	}
	target.Velocity = physics.NewVector(dir*knockbackForce, -knockbackUpForce)
}
