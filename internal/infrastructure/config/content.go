package config

// ContentConfig is the root config for content.yaml: the game's materials,
// status effects, spells and mob archetypes
type ContentConfig struct {
	Materials map[string]MaterialConfig `yaml:"materials"`
	Effects   map[string]EffectConfig   `yaml:"effects"`
	Spells    map[string]SpellDef       `yaml:"spells"`
	Mobs      map[string]MobConfig      `yaml:"mobs"`
}

type MaterialConfig struct {
	Friction      float64 `yaml:"friction"`
	SlipSpeed     float64 `yaml:"slipSpeed"`
	SlipAccel     float64 `yaml:"slipAccel"`
	WallBounce    float64 `yaml:"wallBounce"`
	FloorBounce   float64 `yaml:"floorBounce"`
	CeilingBounce float64 `yaml:"ceilingBounce"`
}

// EffectConfig defines a status effect template. A negative duration makes
// the effect permanent; an effect without changes is a no-op.
type EffectConfig struct {
	Duration float64            `yaml:"duration"`
	Changes  []StatChangeConfig `yaml:"changes"`
}

type StatChangeConfig struct {
	Stat  string  `yaml:"stat"`
	Type  string  `yaml:"type"` // add, multAdd, multMult
	Value float64 `yaml:"value"`
}

// SpellDef defines a spell. Kind is one of self, projectile, multi; the
// spell "none" always exists.
type SpellDef struct {
	Kind    string              `yaml:"kind"`
	Cost    float64             `yaml:"cost"`
	Effects []SpellEffectConfig `yaml:"effects"`

	// projectile
	Speed float64 `yaml:"speed,omitempty"`
	Range float64 `yaml:"range,omitempty"`
	Size  float64 `yaml:"size,omitempty"`

	// multi
	Spells []string `yaml:"spells,omitempty"`
}

// SpellEffectConfig is one effect of a spell. Kind is status (deliver the
// named status effect) or resource (change a resource by amount).
type SpellEffectConfig struct {
	Kind   string  `yaml:"kind"`
	Effect string  `yaml:"effect,omitempty"`
	Stat   string  `yaml:"stat,omitempty"`
	Amount float64 `yaml:"amount,omitempty"`
}

// MobConfig is a mob archetype
type MobConfig struct {
	Kind     string             `yaml:"kind"` // player, patrol, chase
	Width    float64            `yaml:"width"`
	Height   float64            `yaml:"height"`
	Material string             `yaml:"material"`
	MaxJumps int                `yaml:"maxJumps"`
	Bases    map[string]float64 `yaml:"bases"`
	Spells   []string           `yaml:"spells"`
	AI       AIConfig           `yaml:"ai"`
}

type AIConfig struct {
	DetectRange    float64 `yaml:"detectRange,omitempty"`
	PatrolDistance float64 `yaml:"patrolDistance,omitempty"`
	CastCooldown   float64 `yaml:"castCooldown,omitempty"`
	ContactDamage  float64 `yaml:"contactDamage,omitempty"`
}
