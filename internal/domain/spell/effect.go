// Package spell implements castable spells and the effects they deliver.
package spell

import (
	"log/slog"

	"github.com/younwookim/zgame/internal/domain/effect"
	"github.com/younwookim/zgame/internal/domain/stat"
)

// Target is anything a spell effect can land on
type Target interface {
	effect.Target
	Effects() *effect.List
}

// Caster is a Target that can cast spells
type Caster interface {
	Target
	// Muzzle returns where projectiles leave the caster and the facing
	// direction (+1 right, -1 left)
	Muzzle() (x, y float64, dir int)
}

// Effect is what a spell does to its target
type Effect interface {
	Apply(ctx *Context, caster Caster, target Target)
}

// StatusEffectDelivery applies a fresh copy of a status effect template
type StatusEffectDelivery struct {
	Template effect.StatusEffect
}

func (d StatusEffectDelivery) Apply(ctx *Context, _ Caster, target Target) {
	source, ok := ctx.nextSource()
	if !ok {
		slog.Warn("status effect dropped: no source allocator", "effect", d.Template.Name())
		return
	}
	target.Effects().Add(target, d.Template.ResetCopy(source))
}

// ResourceChange adds Amount to a resource of the target, scaled by the
// caster's cast power. Negative amounts deal damage.
type ResourceChange struct {
	Stat   stat.Type
	Amount float64
}

func (r ResourceChange) Apply(_ *Context, caster Caster, target Target) {
	amount := r.Amount * caster.Stats().Value(stat.CastPower)
	if !target.Stats().AddCurrent(r.Stat, amount) {
		slog.Warn("resource change on plain stat", "stat", r.Stat)
	}
}

// Effects bundles several effects into one
type Effects []Effect

func (es Effects) Apply(ctx *Context, caster Caster, target Target) {
	for _, e := range es {
		e.Apply(ctx, caster, target)
	}
}
