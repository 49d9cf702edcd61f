package system

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/younwookim/zgame/internal/domain/effect"
	"github.com/younwookim/zgame/internal/domain/entity"
	"github.com/younwookim/zgame/internal/domain/physics"
	"github.com/younwookim/zgame/internal/domain/spell"
	"github.com/younwookim/zgame/internal/domain/stat"
	"github.com/younwookim/zgame/internal/infrastructure/config"
)

var (
	// ErrUnknownMob is returned when a room spawns an undefined archetype
	ErrUnknownMob = errors.New("unknown mob archetype")
	// ErrSpellCycle is returned when multi spells contain each other
	ErrSpellCycle = errors.New("multi spell contains itself")
)

// Content is the game content built from content.yaml
type Content struct {
	Materials map[string]physics.Material
	Effects   *effect.Registry
	Spells    *spell.Registry
	Mobs      map[string]config.MobConfig
	Stats     stat.Definitions
}

// LoadContent builds materials, status effects, spells and mob archetypes.
// The stat table is validated first so cycles fail at startup.
func LoadContent(cfg *config.ContentConfig, defs stat.Definitions) (*Content, error) {
	if err := stat.ValidateDefinitions(defs); err != nil {
		return nil, fmt.Errorf("stat definitions: %w", err)
	}

	c := &Content{
		Materials: make(map[string]physics.Material),
		Effects:   effect.NewRegistry(),
		Spells:    spell.NewRegistry(),
		Mobs:      cfg.Mobs,
		Stats:     defs,
	}

	for name, m := range cfg.Materials {
		c.Materials[name] = physics.NewMaterial(name, m.Friction, m.SlipSpeed, m.SlipAccel, m.WallBounce, m.FloorBounce, m.CeilingBounce)
	}

	for _, name := range sortedKeys(cfg.Effects) {
		e, err := buildEffect(name, cfg.Effects[name])
		if err != nil {
			return nil, err
		}
		c.Effects.Register(e)
	}

	b := spellBuilder{cfg: cfg.Spells, content: c, visiting: make(map[string]bool)}
	for _, name := range sortedKeys(cfg.Spells) {
		if _, err := b.build(name); err != nil {
			return nil, err
		}
	}

	for _, name := range sortedKeys(cfg.Mobs) {
		if err := c.validateMob(name, cfg.Mobs[name]); err != nil {
			return nil, err
		}
	}

	slog.Info("content loaded",
		"materials", len(c.Materials),
		"effects", len(cfg.Effects),
		"spells", len(cfg.Spells),
		"mobs", len(cfg.Mobs))
	return c, nil
}

func buildEffect(name string, cfg config.EffectConfig) (effect.StatusEffect, error) {
	if len(cfg.Changes) == 0 {
		return effect.NewNoOp(0, name, cfg.Duration), nil
	}
	changes := make([]effect.StatChange, 0, len(cfg.Changes))
	for _, ch := range cfg.Changes {
		t, err := stat.ParseType(ch.Stat)
		if err != nil {
			return nil, fmt.Errorf("effect %s: %w", name, err)
		}
		mt, err := stat.ParseModifierType(ch.Type)
		if err != nil {
			return nil, fmt.Errorf("effect %s: %w", name, err)
		}
		changes = append(changes, effect.StatChange{Stat: t, Value: ch.Value, Type: mt})
	}
	return effect.NewStatModifying(0, name, cfg.Duration, changes...), nil
}

type spellBuilder struct {
	cfg      map[string]config.SpellDef
	content  *Content
	visiting map[string]bool
}

// build creates and registers a spell, building the sub-spells of multi
// spells first
func (b *spellBuilder) build(name string) (spell.Spell, error) {
	if s, err := b.content.Spells.Get(name); err == nil {
		return s, nil
	}
	def, ok := b.cfg[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", spell.ErrUnknownSpell, name)
	}
	if b.visiting[name] {
		return nil, fmt.Errorf("spell %s: %w", name, ErrSpellCycle)
	}
	b.visiting[name] = true
	defer delete(b.visiting, name)

	var s spell.Spell
	switch def.Kind {
	case "self", "projectile":
		e, err := b.effects(name, def.Effects)
		if err != nil {
			return nil, err
		}
		if def.Kind == "self" {
			s = spell.NewSelf(name, def.Cost, e)
		} else {
			s = spell.NewProjectile(name, def.Cost, e, def.Speed, def.Range, def.Size)
		}
	case "multi":
		subs := make([]spell.Spell, 0, len(def.Spells))
		for _, sub := range def.Spells {
			sp, err := b.build(sub)
			if err != nil {
				return nil, fmt.Errorf("spell %s: %w", name, err)
			}
			subs = append(subs, sp)
		}
		s = spell.NewMulti(name, def.Cost, subs...)
	default:
		return nil, fmt.Errorf("spell %s: unknown kind %q", name, def.Kind)
	}

	b.content.Spells.Register(s)
	return s, nil
}

func (b *spellBuilder) effects(name string, cfgs []config.SpellEffectConfig) (spell.Effect, error) {
	out := make(spell.Effects, 0, len(cfgs))
	for _, ec := range cfgs {
		switch ec.Kind {
		case "status":
			tmpl, err := b.content.Effects.Get(ec.Effect)
			if err != nil {
				return nil, fmt.Errorf("spell %s: %w", name, err)
			}
			out = append(out, spell.StatusEffectDelivery{Template: tmpl})
		case "resource":
			t, err := stat.ParseType(ec.Stat)
			if err != nil {
				return nil, fmt.Errorf("spell %s: %w", name, err)
			}
			out = append(out, spell.ResourceChange{Stat: t, Amount: ec.Amount})
		default:
			return nil, fmt.Errorf("spell %s: unknown effect kind %q", name, ec.Kind)
		}
	}
	if len(out) == 1 {
		return out[0], nil
	}
	return out, nil
}

func (c *Content) validateMob(name string, m config.MobConfig) error {
	if _, err := c.Material(m.Material); err != nil {
		return fmt.Errorf("mob %s: %w", name, err)
	}
	for s := range m.Bases {
		if _, err := stat.ParseType(s); err != nil {
			return fmt.Errorf("mob %s: %w", name, err)
		}
	}
	for _, s := range m.Spells {
		if _, err := c.Spells.Get(s); err != nil {
			return fmt.Errorf("mob %s: %w", name, err)
		}
	}
	return nil
}

// Material returns a content material, falling back to the built-in ones.
// An empty name is the default material.
func (c *Content) Material(name string) (physics.Material, error) {
	if name == "" {
		return physics.Default, nil
	}
	if m, ok := c.Materials[name]; ok {
		return m, nil
	}
	return physics.MaterialByName(name)
}

// NewMob creates a mob from an archetype with its top-left corner at x, y
func (c *Content) NewMob(archetype string, x, y float64, facingRight bool) (*entity.Mob, error) {
	cfg, ok := c.Mobs[archetype]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMob, archetype)
	}
	mat, err := c.Material(cfg.Material)
	if err != nil {
		return nil, fmt.Errorf("mob %s: %w", archetype, err)
	}

	stats := stat.NewStats(c.Stats)
	for name, v := range cfg.Bases {
		t, err := stat.ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("mob %s: %w", archetype, err)
		}
		stats.SetBase(t, v)
	}
	stats.FillAll()

	kind, _ := entity.ParseKind(cfg.Kind)
	body := entity.NewBody(x, y, cfg.Width, cfg.Height, mat)
	body.FacingRight = facingRight
	m := entity.NewMob(0, archetype, kind, body, stats, max(cfg.MaxJumps, 1))
	m.PatrolDistance = cfg.AI.PatrolDistance
	m.DetectRange = cfg.AI.DetectRange
	m.CastCooldown = cfg.AI.CastCooldown
	m.ContactDamage = cfg.AI.ContactDamage
	if facingRight {
		m.PatrolDir = 1
	}

	for _, name := range cfg.Spells {
		s, err := c.Spells.Get(name)
		if err != nil {
			return nil, fmt.Errorf("mob %s: %w", archetype, err)
		}
		m.Book.Learn(s)
	}
	return m, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
