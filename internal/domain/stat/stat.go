// Package stat implements entity stats: named values derived from a base,
// other stats and modifiers, recalculated lazily when marked dirty.
package stat

// Part names one independently cached value of a stat
type Part int

const (
	PartValue Part = iota
	PartMin
	PartMax
	PartRegen
)

// Stat is one named value in a Stats collection.
// Resource stats additionally track a current amount bounded by min and max
// and a regen rate; for them modifiers apply to max.
type Stat struct {
	owner *Stats
	typ   Type
	def   Definition
	base  float64

	value float64
	dirty bool

	mods [numModifierTypes]*ModifierList
	res  *resource
}

type resource struct {
	current float64
	min     cached
	max     cached
	regen   cached
}

type cached struct {
	value float64
	dirty bool
}

func newStat(owner *Stats, typ Type, def Definition) *Stat {
	s := &Stat{
		owner: owner,
		typ:   typ,
		def:   def,
		base:  def.Base,
		dirty: true,
	}
	for mt := Add; mt < numModifierTypes; mt++ {
		s.mods[mt] = NewModifierList(mt)
	}
	if def.Resource != nil {
		s.res = &resource{
			min:   cached{dirty: true},
			max:   cached{dirty: true},
			regen: cached{dirty: true},
		}
	}
	return s
}

// Type returns the stat's type
func (s *Stat) Type() Type { return s.typ }

// Base returns the base value fed into the formula
func (s *Stat) Base() float64 { return s.base }

// IsResource reports whether the stat tracks a current amount
func (s *Stat) IsResource() bool { return s.res != nil }

// Value returns the stat value, recalculating first if dirty.
// For resources this is the current amount.
func (s *Stat) Value() float64 { return s.owner.Value(s.typ) }

// Dirty reports whether any cached part of the stat is stale
func (s *Stat) Dirty() bool {
	if s.res != nil {
		return s.res.min.dirty || s.res.max.dirty || s.res.regen.dirty
	}
	return s.dirty
}

// Modifiers returns the list of one modifier type
func (s *Stat) Modifiers(t ModifierType) *ModifierList {
	return s.mods[t]
}

// modified runs x through the dominant modifier of every list
func (s *Stat) modified(x float64) float64 {
	return (x + s.mods[Add].Current()) * (1 + s.mods[MultAdd].Current()) * s.mods[MultMult].Current()
}

// part returns the dirty flag of one cached part
func (s *Stat) part(p Part) *bool {
	if s.res == nil {
		return &s.dirty
	}
	switch p {
	case PartMin:
		return &s.res.min.dirty
	case PartMax:
		return &s.res.max.dirty
	case PartRegen:
		return &s.res.regen.dirty
	default:
		// resources have no value formula; their max absorbs value changes
		return &s.res.max.dirty
	}
}
