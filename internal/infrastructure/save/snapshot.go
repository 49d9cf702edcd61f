package save

import (
	"fmt"

	"github.com/younwookim/zgame/internal/domain/effect"
	"github.com/younwookim/zgame/internal/domain/entity"
	"github.com/younwookim/zgame/internal/domain/stat"
)

// EffectSnapshot is an active status effect, stored by template name
type EffectSnapshot struct {
	Name      string  `json:"name"`
	Remaining float64 `json:"remaining"`
	Duration  float64 `json:"duration"`
}

// MobSnapshot is the persisted state of a mob
type MobSnapshot struct {
	Name        string           `json:"name"`
	X           float64          `json:"x"`
	Y           float64          `json:"y"`
	FacingRight bool             `json:"facingRight"`
	Stats       stat.Snapshot    `json:"stats"`
	Effects     []EffectSnapshot `json:"effects,omitempty"`
	Spell       int              `json:"spell"`
}

// Game is one save slot
type Game struct {
	Room   string      `json:"room"`
	Player MobSnapshot `json:"player"`
}

// Capture takes a snapshot of m. Modifiers owned by status effects are left
// out; the effects put them back when they are re-applied.
func Capture(m *entity.Mob) MobSnapshot {
	snap := MobSnapshot{
		Name:        m.Name,
		X:           m.Rect.X,
		Y:           m.Rect.Y,
		FacingRight: m.FacingRight,
		Stats:       m.Stats().Snapshot(),
		Spell:       m.Book.SelectedIndex(),
	}

	owned := make(map[uint64]bool)
	m.Effects().Each(func(e effect.StatusEffect) {
		owned[uint64(e.Source())] = true
		snap.Effects = append(snap.Effects, EffectSnapshot{
			Name:      e.Name(),
			Remaining: e.Remaining(),
			Duration:  e.Duration(),
		})
	})

	mods := snap.Stats.Modifiers[:0:0]
	for _, ms := range snap.Stats.Modifiers {
		if !owned[ms.Source] {
			mods = append(mods, ms)
		}
	}
	snap.Stats.Modifiers = mods
	return snap
}

// Restore puts the snapshot's state onto m. Effects are rebuilt from the
// registry with fresh sources and their remaining time.
func (s MobSnapshot) Restore(m *entity.Mob, effects *effect.Registry, sources *stat.Sources) error {
	m.Effects().ClearAll(m)
	if err := m.Stats().Restore(s.Stats); err != nil {
		return fmt.Errorf("mob %s: %w", s.Name, err)
	}
	// Restored modifiers keep their sources; new effects must not reuse them
	sources.Reserve(s.Stats.MaxSource())

	for _, es := range s.Effects {
		tmpl, err := effects.Get(es.Name)
		if err != nil {
			return fmt.Errorf("mob %s: %w", s.Name, err)
		}
		e := tmpl.ResetCopy(sources.Next())
		if !e.Permanent() {
			e.Tick(e.Duration() - es.Remaining)
		}
		m.Effects().Add(m, e)
	}

	// Effects may have raised resource maximums after the currents clamped
	for name, v := range s.Stats.Currents {
		t, err := stat.ParseType(name)
		if err != nil {
			return fmt.Errorf("mob %s: %w", s.Name, err)
		}
		m.Stats().SetCurrent(t, v)
	}

	m.Teleport(s.X, s.Y)
	m.FacingRight = s.FacingRight
	m.Book.Select(s.Spell)
	return nil
}
