// Package effect implements timed status effects applied to mobs.
package effect

import (
	"errors"
	"log/slog"

	"github.com/younwookim/zgame/internal/domain/stat"
)

// ErrUnknownEffect is returned when a content file names an undefined effect
var ErrUnknownEffect = errors.New("unknown status effect")

// Target is anything status effects can be applied to
type Target interface {
	Stats() *stat.Stats
}

// StatusEffect is a timed effect on a target. A negative duration makes it
// permanent: it never expires by ticking and must be removed explicitly.
// Definitions loaded from content are templates: apply a ResetCopy so each
// instance gets its own source ID and a full timer.
type StatusEffect interface {
	Source() stat.SourceID
	Name() string
	Duration() float64
	Remaining() float64
	Permanent() bool
	Apply(t Target)
	Clear(t Target)
	// Tick advances the timer by dt seconds and reports whether the effect
	// expired and should be removed
	Tick(dt float64) bool
	ResetCopy(source stat.SourceID) StatusEffect
}

// timer is the shared duration bookkeeping of every effect variant
type timer struct {
	source    stat.SourceID
	name      string
	duration  float64
	remaining float64
}

func newTimer(source stat.SourceID, name string, duration float64) timer {
	return timer{
		source:    source,
		name:      name,
		duration:  duration,
		remaining: duration,
	}
}

func (t *timer) Source() stat.SourceID { return t.source }
func (t *timer) Name() string          { return t.name }
func (t *timer) Duration() float64     { return t.duration }
func (t *timer) Remaining() float64    { return t.remaining }
func (t *timer) Permanent() bool       { return t.duration < 0 }

func (t *timer) Tick(dt float64) bool {
	if t.Permanent() {
		return false
	}
	t.remaining -= dt
	return t.remaining <= 0
}

func (t timer) reset(source stat.SourceID) timer {
	t.source = source
	t.remaining = t.duration
	return t
}

// NoOp does nothing besides counting down
type NoOp struct {
	timer
}

// NewNoOp creates an effect with no payload
func NewNoOp(source stat.SourceID, name string, duration float64) *NoOp {
	return &NoOp{timer: newTimer(source, name, duration)}
}

func (e *NoOp) Apply(Target) {}
func (e *NoOp) Clear(Target) {}

func (e *NoOp) ResetCopy(source stat.SourceID) StatusEffect {
	return &NoOp{timer: e.timer.reset(source)}
}

// StatChange is one modifier an effect places on one stat
type StatChange struct {
	Stat  stat.Type
	Value float64
	Type  stat.ModifierType
}

// StatModifying adds modifiers while active and removes them when cleared
type StatModifying struct {
	timer
	changes []StatChange
}

// NewStatModifying creates an effect placing the given changes on its target.
// Every modifier carries the effect's source ID.
func NewStatModifying(source stat.SourceID, name string, duration float64, changes ...StatChange) *StatModifying {
	return &StatModifying{
		timer:   newTimer(source, name, duration),
		changes: changes,
	}
}

// Changes returns the stat changes of the effect
func (e *StatModifying) Changes() []StatChange {
	return append([]StatChange(nil), e.changes...)
}

func (e *StatModifying) modifier(c StatChange) stat.Modifier {
	return stat.NewModifier(e.source, c.Value, c.Type)
}

func (e *StatModifying) Apply(t Target) {
	stats := t.Stats()
	for _, c := range e.changes {
		stats.AddModifier(c.Stat, e.modifier(c))
	}
	slog.Debug("effect applied", "effect", e.name, "source", e.source, "changes", len(e.changes))
}

func (e *StatModifying) Clear(t Target) {
	stats := t.Stats()
	for _, c := range e.changes {
		stats.RemoveModifier(c.Stat, e.modifier(c))
	}
	slog.Debug("effect cleared", "effect", e.name, "source", e.source)
}

func (e *StatModifying) ResetCopy(source stat.SourceID) StatusEffect {
	return &StatModifying{
		timer:   e.timer.reset(source),
		changes: e.changes,
	}
}
