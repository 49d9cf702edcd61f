package stat

import "fmt"

// ModifierSnapshot is the serializable form of one applied modifier
type ModifierSnapshot struct {
	Stat   string  `json:"stat"`
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
	Source uint64  `json:"source"`
}

// Snapshot is the serializable state of a Stats collection.
// Derived values are not stored; they are recalculated after Restore.
type Snapshot struct {
	Bases     map[string]float64 `json:"bases"`
	Currents  map[string]float64 `json:"currents"`
	Modifiers []ModifierSnapshot `json:"modifiers,omitempty"`
}

// Snapshot captures bases, resource amounts and modifiers
func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		Bases:    make(map[string]float64, numTypes),
		Currents: make(map[string]float64),
	}
	for _, st := range s.stats {
		name := st.typ.String()
		snap.Bases[name] = st.base
		if st.res != nil {
			snap.Currents[name] = s.Current(st.typ)
		}
		for _, l := range st.mods {
			for _, m := range l.mods {
				snap.Modifiers = append(snap.Modifiers, ModifierSnapshot{
					Stat:   name,
					Type:   m.Type.String(),
					Value:  m.Value,
					Source: uint64(m.Source),
				})
			}
		}
	}
	return snap
}

// MaxSource returns the largest modifier source in the snapshot (0 when
// there are no modifiers)
func (snap Snapshot) MaxSource() SourceID {
	var id SourceID
	for _, ms := range snap.Modifiers {
		id = max(id, SourceID(ms.Source))
	}
	return id
}

// Restore replaces the collection's state with a snapshot.
// Existing modifiers are dropped. Currents are applied after bases and
// modifiers so they clamp against the restored bounds.
func (s *Stats) Restore(snap Snapshot) error {
	bases := make(map[Type]float64, len(snap.Bases))
	for name, v := range snap.Bases {
		t, err := ParseType(name)
		if err != nil {
			return fmt.Errorf("restore base: %w", err)
		}
		bases[t] = v
	}
	mods := make([]struct {
		t Type
		m Modifier
	}, 0, len(snap.Modifiers))
	for _, ms := range snap.Modifiers {
		t, err := ParseType(ms.Stat)
		if err != nil {
			return fmt.Errorf("restore modifier: %w", err)
		}
		mt, err := ParseModifierType(ms.Type)
		if err != nil {
			return fmt.Errorf("restore modifier on %s: %w", t, err)
		}
		mods = append(mods, struct {
			t Type
			m Modifier
		}{t, NewModifier(SourceID(ms.Source), ms.Value, mt)})
	}
	currents := make(map[Type]float64, len(snap.Currents))
	for name, v := range snap.Currents {
		t, err := ParseType(name)
		if err != nil {
			return fmt.Errorf("restore current: %w", err)
		}
		currents[t] = v
	}

	for _, st := range s.stats {
		for _, l := range st.mods {
			if l.Len() > 0 {
				l.mods = nil
				l.dirty = true
				s.invalidate(st.typ, PartValue)
			}
		}
	}
	for t, v := range bases {
		s.SetBase(t, v)
	}
	for _, e := range mods {
		s.AddModifier(e.t, e.m)
	}
	for t, v := range currents {
		s.SetCurrent(t, v)
	}
	return nil
}
