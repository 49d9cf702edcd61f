package stat

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStat is returned when a stat name does not match any Type
	ErrUnknownStat = errors.New("unknown stat")
	// ErrCycle is returned when stat formulas depend on each other in a loop
	ErrCycle = errors.New("stat dependency cycle")
)

// Type is the closed set of stats a Zusass mob carries
type Type int

const (
	Strength Type = iota
	Intelligence
	Endurance
	Agility
	MoveSpeed
	JumpPower
	CastPower
	Health
	Mana
	Stamina

	numTypes
)

var typeNames = [numTypes]string{
	Strength:     "strength",
	Intelligence: "intelligence",
	Endurance:    "endurance",
	Agility:      "agility",
	MoveSpeed:    "moveSpeed",
	JumpPower:    "jumpPower",
	CastPower:    "castPower",
	Health:       "health",
	Mana:         "mana",
	Stamina:      "stamina",
}

func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return "unknown"
	}
	return typeNames[t]
}

// Valid reports whether t is one of the declared types
func (t Type) Valid() bool {
	return t >= 0 && t < numTypes
}

// ParseType returns the Type with the given content-file name
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStat, name)
}

// Types returns every declared type in order
func Types() []Type {
	out := make([]Type, numTypes)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// Lookup returns the current value of another stat
type Lookup func(Type) float64

// Formula computes a value from the stat's base and its dependencies.
// It may only read the types listed next to it.
type Formula func(base float64, v Lookup) float64

// Bound describes one derived sub-value of a resource
type Bound struct {
	Deps    []Type
	Formula Formula
}

// ResourceDefinition declares the min, max and regen sub-values of a resource.
// A nil Min or Regen formula means 0; a nil Max formula means the base value.
type ResourceDefinition struct {
	Min   Bound
	Max   Bound
	Regen Bound
}

// Definition declares how a stat is calculated
type Definition struct {
	Base     float64
	Deps     []Type
	Formula  Formula // nil means the base value
	Resource *ResourceDefinition
}

// Definitions maps every stat type to its declaration
type Definitions map[Type]Definition

// Zusass is the stat table of the sample game
var Zusass = Definitions{
	Strength:     {Base: 5},
	Intelligence: {Base: 5},
	Endurance:    {Base: 5},
	Agility:      {Base: 5},
	MoveSpeed: {
		Base: 60,
		Deps: []Type{Agility},
		Formula: func(base float64, v Lookup) float64 {
			return base + 4*v(Agility)
		},
	},
	JumpPower: {
		Base: 220,
		Deps: []Type{Strength},
		Formula: func(base float64, v Lookup) float64 {
			return base + 6*v(Strength)
		},
	},
	CastPower: {
		Base: 1,
		Deps: []Type{Intelligence},
		Formula: func(base float64, v Lookup) float64 {
			return base + 0.05*v(Intelligence)
		},
	},
	Health: {
		Base: 50,
		Resource: &ResourceDefinition{
			Max: Bound{Deps: []Type{Endurance}, Formula: func(base float64, v Lookup) float64 {
				return base + 10*v(Endurance)
			}},
			Regen: Bound{Deps: []Type{Endurance}, Formula: func(_ float64, v Lookup) float64 {
				return 0.1 * v(Endurance)
			}},
		},
	},
	Mana: {
		Base: 20,
		Resource: &ResourceDefinition{
			Max: Bound{Deps: []Type{Intelligence}, Formula: func(base float64, v Lookup) float64 {
				return base + 5*v(Intelligence)
			}},
			Regen: Bound{Deps: []Type{Intelligence}, Formula: func(_ float64, v Lookup) float64 {
				return 0.5 + 0.2*v(Intelligence)
			}},
		},
	},
	Stamina: {
		Base: 30,
		Resource: &ResourceDefinition{
			Max: Bound{Deps: []Type{Endurance, Agility}, Formula: func(base float64, v Lookup) float64 {
				return base + 5*v(Endurance) + 2*v(Agility)
			}},
			Regen: Bound{Deps: []Type{Agility}, Formula: func(_ float64, v Lookup) float64 {
				return 2 + 0.5*v(Agility)
			}},
		},
	},
}

// allDeps returns every type a definition reads, across all sub-values
func (d Definition) allDeps() []Type {
	deps := append([]Type(nil), d.Deps...)
	if d.Resource != nil {
		deps = append(deps, d.Resource.Min.Deps...)
		deps = append(deps, d.Resource.Max.Deps...)
		deps = append(deps, d.Resource.Regen.Deps...)
	}
	return deps
}

// ValidateDefinitions checks that every type is declared, every dependency
// is a declared type and the dependency graph has no cycle
func ValidateDefinitions(defs Definitions) error {
	for _, t := range Types() {
		if _, ok := defs[t]; !ok {
			return fmt.Errorf("%w: %s has no definition", ErrUnknownStat, t)
		}
	}
	for t, d := range defs {
		if !t.Valid() {
			return fmt.Errorf("%w: %d", ErrUnknownStat, int(t))
		}
		for _, dep := range d.allDeps() {
			if !dep.Valid() {
				return fmt.Errorf("%w: %s depends on %d", ErrUnknownStat, t, int(dep))
			}
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[Type]int, len(defs))
	var visit func(t Type, path []Type) error
	visit = func(t Type, path []Type) error {
		switch state[t] {
		case visiting:
			return fmt.Errorf("%w: %v", ErrCycle, append(path, t))
		case done:
			return nil
		}
		state[t] = visiting
		for _, dep := range defs[t].allDeps() {
			if err := visit(dep, append(path, t)); err != nil {
				return err
			}
		}
		state[t] = done
		return nil
	}
	for _, t := range Types() {
		if err := visit(t, nil); err != nil {
			return err
		}
	}
	return nil
}
