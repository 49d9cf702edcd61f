package spell

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/younwookim/zgame/internal/domain/stat"
)

// ErrUnknownSpell is returned when a content file names an undefined spell
var ErrUnknownSpell = errors.New("unknown spell")

// Launch describes a projectile a spell asks the world to create
type Launch struct {
	Caster Caster
	Speed  float64
	Range  float64
	Size   float64
	Effect Effect
}

// Spawner creates projectile entities
type Spawner interface {
	SpawnProjectile(l Launch)
}

// Context is what a cast needs from the surrounding world.
// A nil Context, or one with nil fields, is valid: projectile spells then
// fail to cast and status effects are not delivered.
type Context struct {
	Spawner Spawner
	Sources *stat.Sources
}

func (c *Context) spawner() Spawner {
	if c == nil {
		return nil
	}
	return c.Spawner
}

func (c *Context) nextSource() (stat.SourceID, bool) {
	if c == nil || c.Sources == nil {
		return 0, false
	}
	return c.Sources.Next(), true
}

// Spell is a castable action paid for with mana
type Spell interface {
	Name() string
	Cost() float64
	// CastAttempt pays the cost and casts. When the caster lacks mana
	// nothing happens and it returns false.
	CastAttempt(ctx *Context, caster Caster) bool
}

type base struct {
	name string
	cost float64
}

func (b base) Name() string  { return b.name }
func (b base) Cost() float64 { return b.cost }

// pay deducts the cost from the caster's mana if there is enough
func (b base) pay(caster Caster) bool {
	stats := caster.Stats()
	if stats.Current(stat.Mana) < b.cost {
		slog.Debug("cast failed", "spell", b.name, "mana", stats.Current(stat.Mana), "cost", b.cost)
		return false
	}
	stats.AddCurrent(stat.Mana, -b.cost)
	return true
}

// None never casts
type None struct{ base }

// NewNone creates a placeholder spell
func NewNone() *None { return &None{base{name: "none"}} }

func (s *None) CastAttempt(*Context, Caster) bool { return false }

// Self applies its effect to the caster
type Self struct {
	base
	effect Effect
}

// NewSelf creates a self-targeted spell
func NewSelf(name string, cost float64, e Effect) *Self {
	return &Self{base: base{name, cost}, effect: e}
}

func (s *Self) CastAttempt(ctx *Context, caster Caster) bool {
	if !s.pay(caster) {
		return false
	}
	s.effect.Apply(ctx, caster, caster)
	return true
}

// Projectile launches a projectile that applies its effect on impact
type Projectile struct {
	base
	effect Effect
	speed  float64
	rng    float64
	size   float64
}

// NewProjectile creates a projectile spell. Range is the distance in pixels
// the projectile travels before fizzling.
func NewProjectile(name string, cost float64, e Effect, speed, rng, size float64) *Projectile {
	return &Projectile{
		base:   base{name, cost},
		effect: e,
		speed:  speed,
		rng:    rng,
		size:   size,
	}
}

func (s *Projectile) CastAttempt(ctx *Context, caster Caster) bool {
	sp := ctx.spawner()
	if sp == nil {
		return false
	}
	if !s.pay(caster) {
		return false
	}
	sp.SpawnProjectile(Launch{
		Caster: caster,
		Speed:  s.speed,
		Range:  s.rng,
		Size:   s.size,
		Effect: s.effect,
	})
	return true
}

// Multi casts several spells at once. Its own cost is paid first, then every
// sub-spell attempts its own cast and pays its own cost; some may fail.
type Multi struct {
	base
	spells []Spell
}

// NewMulti creates a spell casting all of spells
func NewMulti(name string, cost float64, spells ...Spell) *Multi {
	return &Multi{base: base{name, cost}, spells: spells}
}

func (s *Multi) CastAttempt(ctx *Context, caster Caster) bool {
	if !s.pay(caster) {
		return false
	}
	for _, sub := range s.spells {
		sub.CastAttempt(ctx, caster)
	}
	return true
}

// Registry holds named spells loaded from content
type Registry struct {
	spells map[string]Spell
}

// NewRegistry creates a registry holding only the "none" spell
func NewRegistry() *Registry {
	r := &Registry{spells: make(map[string]Spell)}
	r.Register(NewNone())
	return r
}

// Register adds or replaces a spell under its name
func (r *Registry) Register(s Spell) {
	r.spells[s.Name()] = s
}

// Get returns the spell with the given name
func (r *Registry) Get(name string) (Spell, error) {
	s, ok := r.spells[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpell, name)
	}
	return s, nil
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.spells))
	for n := range r.spells {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
