package system

import (
	"log/slog"

	"github.com/younwookim/zgame/internal/domain/entity"
	"github.com/younwookim/zgame/internal/ecs"
	"github.com/younwookim/zgame/internal/infrastructure/config"
)

// Intent represents an action that an entity wants to perform
type Intent interface {
	Actor() entity.EntityID
}

// MoveIntent asks a mob to walk in a direction (-1 left, 0 stop, 1 right)
type MoveIntent struct {
	EntityID entity.EntityID
	Dir      int
}

// JumpIntent asks a mob to jump, or to cut a rising jump short when Released
type JumpIntent struct {
	EntityID entity.EntityID
	Released bool
}

// CastIntent asks a mob to cast its selected spell
type CastIntent struct {
	EntityID entity.EntityID
}

// SelectSpellIntent picks a spell from the mob's book: Index when it is not
// negative, otherwise the selection moves by Delta
type SelectSpellIntent struct {
	EntityID entity.EntityID
	Index    int
	Delta    int
}

func (i MoveIntent) Actor() entity.EntityID        { return i.EntityID }
func (i JumpIntent) Actor() entity.EntityID        { return i.EntityID }
func (i CastIntent) Actor() entity.EntityID        { return i.EntityID }
func (i SelectSpellIntent) Actor() entity.EntityID { return i.EntityID }

// minJumpBuffer keeps a jump request alive for at least one frame
const minJumpBuffer = 1.0 / 60

// IntentSystem applies intents to the mobs they name
type IntentSystem struct {
	config *config.PhysicsConfig
	world  *ecs.World
	spells *SpellSystem
}

// NewIntentSystem creates a new intent system
func NewIntentSystem(cfg *config.PhysicsConfig, world *ecs.World, spells *SpellSystem) *IntentSystem {
	return &IntentSystem{config: cfg, world: world, spells: spells}
}

// Apply dispatches intents in order. Intents for unknown or dead mobs are
// dropped.
func (s *IntentSystem) Apply(intents []Intent) {
	for _, in := range intents {
		m, ok := s.world.FindMob(in.Actor())
		if !ok || !m.Alive() {
			slog.Warn("intent dropped", "actor", in.Actor(), "intent", in)
			continue
		}

		switch in := in.(type) {
		case MoveIntent:
			m.Controls.WalkDir = in.Dir
			if in.Dir > 0 {
				m.FacingRight = true
			} else if in.Dir < 0 {
				m.FacingRight = false
			}
		case JumpIntent:
			if in.Released {
				m.Controls.JumpReleased = true
			} else {
				m.Controls.JumpBuffer = max(s.config.Jump.JumpBuffer, minJumpBuffer)
			}
		case CastIntent:
			s.spells.Cast(m)
		case SelectSpellIntent:
			if in.Index >= 0 {
				m.Book.Select(in.Index)
			} else {
				m.Book.Cycle(in.Delta)
			}
		}
	}
}
