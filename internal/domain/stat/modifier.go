package stat

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrUnknownModifierType is returned when parsing an unknown modifier type name
var ErrUnknownModifierType = errors.New("unknown modifier type")

// SourceID identifies whatever applied a modifier (effect instance, item, spell)
type SourceID uint64

// Sources hands out unique source IDs. The zero value is ready to use; ID 0
// is never returned.
type Sources struct {
	next SourceID
}

// Next returns a fresh source ID
func (s *Sources) Next() SourceID {
	s.next++
	return s.next
}

// Reserve makes sure later IDs from Next are greater than id
func (s *Sources) Reserve(id SourceID) {
	if id > s.next {
		s.next = id
	}
}

// ModifierType decides how a modifier combines into a stat value
type ModifierType int

const (
	Add      ModifierType = iota // added to the base value
	MultAdd                      // summed into a (1 + x) multiplier
	MultMult                     // multiplied directly

	numModifierTypes
)

// String returns the content-file name of the modifier type
func (t ModifierType) String() string {
	switch t {
	case Add:
		return "add"
	case MultAdd:
		return "multAdd"
	case MultMult:
		return "multMult"
	default:
		return "unknown"
	}
}

// ParseModifierType parses the content-file name of a modifier type
func ParseModifierType(name string) (ModifierType, error) {
	for t := Add; t < numModifierTypes; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModifierType, name)
}

// Default returns the value of an empty list of this type
func (t ModifierType) Default() float64 {
	if t == MultMult {
		return 1
	}
	return 0
}

// Modifier is a tagged adjustment to a stat
type Modifier struct {
	Source SourceID
	Value  float64
	Type   ModifierType
}

// NewModifier creates a modifier
func NewModifier(source SourceID, value float64, typ ModifierType) Modifier {
	return Modifier{Source: source, Value: value, Type: typ}
}

// ModifierList holds all modifiers of one type on one stat.
// Only the dominant modifier applies: the one with the largest absolute
// value, ties going to the larger raw value. The result is cached until the
// list changes.
type ModifierList struct {
	typ     ModifierType
	mods    []Modifier
	current float64
	dirty   bool
}

// NewModifierList creates an empty list of the given type
func NewModifierList(typ ModifierType) *ModifierList {
	return &ModifierList{typ: typ, current: typ.Default()}
}

// Type returns the list's modifier type
func (l *ModifierList) Type() ModifierType { return l.typ }

// Len returns the number of modifiers
func (l *ModifierList) Len() int { return len(l.mods) }

// Dirty reports whether Current will recalculate
func (l *ModifierList) Dirty() bool { return l.dirty }

// Modifiers returns a copy of the modifiers in insertion order
func (l *ModifierList) Modifiers() []Modifier {
	return slices.Clone(l.mods)
}

// Add appends a modifier
func (l *ModifierList) Add(m Modifier) {
	l.mods = append(l.mods, m)
	l.dirty = true
}

// Remove removes the first modifier equal to m.
// It returns false when no such modifier is present.
func (l *ModifierList) Remove(m Modifier) bool {
	i := slices.Index(l.mods, m)
	if i < 0 {
		return false
	}
	l.mods = slices.Delete(l.mods, i, i+1)
	l.dirty = true
	return true
}

// RemoveSource removes every modifier from source and returns how many went
func (l *ModifierList) RemoveSource(source SourceID) int {
	before := len(l.mods)
	l.mods = slices.DeleteFunc(l.mods, func(m Modifier) bool { return m.Source == source })
	removed := before - len(l.mods)
	if removed > 0 {
		l.dirty = true
	}
	return removed
}

// Current returns the dominant modifier's raw value, or the type default
// when the list is empty
func (l *ModifierList) Current() float64 {
	if l.dirty {
		l.recalculate()
	}
	return l.current
}

func (l *ModifierList) recalculate() {
	l.dirty = false
	if len(l.mods) == 0 {
		l.current = l.typ.Default()
		return
	}
	best := l.mods[0].Value
	for _, m := range l.mods[1:] {
		a, b := math.Abs(m.Value), math.Abs(best)
		if b < a || (a == b && m.Value > best) {
			best = m.Value
		}
	}
	l.current = best
}
