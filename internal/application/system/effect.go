package system

import (
	"github.com/younwookim/zgame/internal/domain/entity"
	"github.com/younwookim/zgame/internal/ecs"
)

// EffectSystem ticks status effects, resource regen and mob timers
type EffectSystem struct{}

// NewEffectSystem creates a new effect system
func NewEffectSystem() *EffectSystem {
	return &EffectSystem{}
}

// Update advances every mob by dt seconds
func (s *EffectSystem) Update(w *ecs.World, dt float64) {
	w.EachMob(func(m *entity.Mob) {
		m.Tick(dt)
	})
}
