package stat

import "math"

type dependent struct {
	typ  Type
	part Part
}

// Stats is the stat collection of one entity.
// Reads recalculate dirty values on demand; writes mark the changed stat and
// everything that depends on it dirty. The definition table must be acyclic
// (see ValidateDefinitions).
type Stats struct {
	defs       Definitions
	stats      [numTypes]*Stat
	dependents [numTypes][]dependent
}

// NewStats creates a collection from a definition table. Resources start full.
func NewStats(defs Definitions) *Stats {
	s := &Stats{defs: defs}
	for _, t := range Types() {
		s.stats[t] = newStat(s, t, defs[t])
	}
	for _, t := range Types() {
		d := defs[t]
		for _, dep := range d.Deps {
			s.dependents[dep] = append(s.dependents[dep], dependent{t, PartValue})
		}
		if d.Resource != nil {
			for _, dep := range d.Resource.Min.Deps {
				s.dependents[dep] = append(s.dependents[dep], dependent{t, PartMin})
			}
			for _, dep := range d.Resource.Max.Deps {
				s.dependents[dep] = append(s.dependents[dep], dependent{t, PartMax})
			}
			for _, dep := range d.Resource.Regen.Deps {
				s.dependents[dep] = append(s.dependents[dep], dependent{t, PartRegen})
			}
		}
	}
	s.FillAll()
	return s
}

// Get returns the stat of type t
func (s *Stats) Get(t Type) *Stat {
	return s.stats[t]
}

// Value returns the value of t, recalculating it if dirty.
// Resources return their current amount.
func (s *Stats) Value(t Type) float64 {
	st := s.stats[t]
	if st.res != nil {
		return s.Current(t)
	}
	if st.dirty {
		x := st.base
		if st.def.Formula != nil {
			x = st.def.Formula(st.base, s.Value)
		}
		st.value = st.modified(x)
		st.dirty = false
	}
	return st.value
}

// SetBase changes the base value of t
func (s *Stats) SetBase(t Type, base float64) {
	st := s.stats[t]
	if st.base == base {
		return
	}
	st.base = base
	s.invalidate(t, PartValue)
}

// AddModifier adds a modifier to t
func (s *Stats) AddModifier(t Type, m Modifier) {
	s.stats[t].mods[m.Type].Add(m)
	s.invalidate(t, PartValue)
}

// RemoveModifier removes a modifier previously added to t.
// It returns false when the modifier is not present.
func (s *Stats) RemoveModifier(t Type, m Modifier) bool {
	if !s.stats[t].mods[m.Type].Remove(m) {
		return false
	}
	s.invalidate(t, PartValue)
	return true
}

// RemoveSource removes every modifier from source across all stats and
// returns how many were removed
func (s *Stats) RemoveSource(source SourceID) int {
	total := 0
	for _, st := range s.stats {
		n := 0
		for _, l := range st.mods {
			n += l.RemoveSource(source)
		}
		if n > 0 {
			s.invalidate(st.typ, PartValue)
		}
		total += n
	}
	return total
}

// Min returns the lower bound of a resource (0 for plain stats)
func (s *Stats) Min(t Type) float64 {
	st := s.stats[t]
	if st.res == nil {
		return 0
	}
	s.refreshBounds(st)
	return st.res.min.value
}

// Max returns the upper bound of a resource (the value for plain stats)
func (s *Stats) Max(t Type) float64 {
	st := s.stats[t]
	if st.res == nil {
		return s.Value(t)
	}
	s.refreshBounds(st)
	return st.res.max.value
}

// Regen returns the per-second regeneration of a resource (0 for plain stats)
func (s *Stats) Regen(t Type) float64 {
	st := s.stats[t]
	if st.res == nil {
		return 0
	}
	s.refreshBounds(st)
	return st.res.regen.value
}

// Current returns the current amount of a resource, always within [Min, Max].
// Plain stats return their value.
func (s *Stats) Current(t Type) float64 {
	st := s.stats[t]
	if st.res == nil {
		return s.Value(t)
	}
	s.refreshBounds(st)
	return st.res.current
}

// SetCurrent sets the current amount of a resource, clamped into [Min, Max].
// It returns false for plain stats.
func (s *Stats) SetCurrent(t Type, v float64) bool {
	st := s.stats[t]
	if st.res == nil {
		return false
	}
	s.refreshBounds(st)
	v = clamp(v, st.res.min.value, st.res.max.value)
	if v != st.res.current {
		st.res.current = v
		s.invalidateDependents(t)
	}
	return true
}

// AddCurrent shifts the current amount of a resource by delta
func (s *Stats) AddCurrent(t Type, delta float64) bool {
	return s.SetCurrent(t, s.Current(t)+delta)
}

// Fill sets a resource to its max
func (s *Stats) Fill(t Type) bool {
	return s.SetCurrent(t, s.Max(t))
}

// FillAll sets every resource to its max
func (s *Stats) FillAll() {
	for _, st := range s.stats {
		if st.res != nil {
			s.Fill(st.typ)
		}
	}
}

// Tick applies dt seconds of regeneration to every resource
func (s *Stats) Tick(dt float64) {
	for _, st := range s.stats {
		if st.res == nil {
			continue
		}
		if r := s.Regen(st.typ); r != 0 {
			s.AddCurrent(st.typ, r*dt)
		}
	}
}

// refreshBounds recalculates every dirty part of a resource and clamps
// current into the bounds, so a read leaves the stat clean
func (s *Stats) refreshBounds(st *Stat) {
	r := st.res
	def := st.def.Resource
	if r.regen.dirty {
		r.regen.value = eval(def.Regen, st.base, s.Value, 0)
		r.regen.dirty = false
	}
	if !r.min.dirty && !r.max.dirty {
		return
	}
	if r.min.dirty {
		r.min.value = eval(def.Min, st.base, s.Value, 0)
		r.min.dirty = false
	}
	if r.max.dirty {
		r.max.value = st.modified(eval(def.Max, st.base, s.Value, st.base))
		r.max.dirty = false
	}
	r.current = clamp(r.current, r.min.value, r.max.value)
}

func eval(b Bound, base float64, v Lookup, fallback float64) float64 {
	if b.Formula == nil {
		return fallback
	}
	return b.Formula(base, v)
}

// invalidate marks part p of t dirty and propagates to its dependents.
// Propagation stops at parts that are already dirty: their dependents were
// marked when they became dirty.
func (s *Stats) invalidate(t Type, p Part) {
	flag := s.stats[t].part(p)
	if *flag {
		return
	}
	*flag = true
	s.invalidateDependents(t)
}

func (s *Stats) invalidateDependents(t Type) {
	for _, d := range s.dependents[t] {
		s.invalidate(d.typ, d.part)
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(v, hi))
}
