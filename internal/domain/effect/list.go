package effect

import (
	"log/slog"
	"slices"
)

// List holds the active status effects of one entity
type List struct {
	effects []StatusEffect
}

// NewList creates an empty list
func NewList() *List {
	return &List{}
}

// Len returns the number of active effects
func (l *List) Len() int { return len(l.effects) }

// Each calls fn for every active effect in application order
func (l *List) Each(fn func(StatusEffect)) {
	for _, e := range l.effects {
		fn(e)
	}
}

// Add applies e to the target and tracks it
func (l *List) Add(t Target, e StatusEffect) {
	e.Apply(t)
	l.effects = append(l.effects, e)
}

// Remove clears e from the target. It returns false when e is not active.
func (l *List) Remove(t Target, e StatusEffect) bool {
	i := slices.Index(l.effects, e)
	if i < 0 {
		return false
	}
	l.effects = slices.Delete(l.effects, i, i+1)
	e.Clear(t)
	return true
}

// Tick advances every effect by dt seconds and removes the expired ones.
// It walks a snapshot so effects may add or remove others while clearing.
func (l *List) Tick(t Target, dt float64) {
	snapshot := slices.Clone(l.effects)
	for _, e := range snapshot {
		if e.Tick(dt) {
			if l.Remove(t, e) {
				slog.Debug("effect expired", "effect", e.Name(), "source", e.Source())
			}
		}
	}
}

// ClearAll removes every effect from the target
func (l *List) ClearAll(t Target) {
	snapshot := l.effects
	l.effects = nil
	for _, e := range snapshot {
		e.Clear(t)
	}
}
