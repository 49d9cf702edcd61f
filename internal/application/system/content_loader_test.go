package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/zgame/internal/domain/effect"
	"github.com/younwookim/zgame/internal/domain/entity"
	"github.com/younwookim/zgame/internal/domain/physics"
	"github.com/younwookim/zgame/internal/domain/spell"
	"github.com/younwookim/zgame/internal/domain/stat"
	"github.com/younwookim/zgame/internal/infrastructure/config"
)

func loadTestContent(t *testing.T) *Content {
	t.Helper()
	cfg, err := config.NewLoader(configDir).LoadContent()
	require.NoError(t, err)
	c, err := LoadContent(cfg, stat.Zusass)
	require.NoError(t, err)
	return c
}

func TestLoadContent(t *testing.T) {
	c := loadTestContent(t)

	assert.Equal(t, []string{"blessing", "daze", "haste", "might", "slow"}, c.Effects.Names())
	assert.Equal(t, []string{"bolt", "frost", "haste", "heal", "none", "volley"}, c.Spells.Names())

	daze, err := c.Effects.Get("daze")
	require.NoError(t, err)
	assert.IsType(t, &effect.NoOp{}, daze)

	blessing, err := c.Effects.Get("blessing")
	require.NoError(t, err)
	assert.True(t, blessing.Permanent())

	haste, err := c.Effects.Get("haste")
	require.NoError(t, err)
	require.IsType(t, &effect.StatModifying{}, haste)
	assert.Equal(t, []effect.StatChange{
		{Stat: stat.Agility, Value: 5, Type: stat.Add},
		{Stat: stat.MoveSpeed, Value: 0.25, Type: stat.MultAdd},
	}, haste.(*effect.StatModifying).Changes())

	volley, err := c.Spells.Get("volley")
	require.NoError(t, err)
	assert.IsType(t, &spell.Multi{}, volley)
	assert.Equal(t, 2.0, volley.Cost())

	rubber, err := c.Material("rubber")
	require.NoError(t, err)
	assert.Equal(t, 0.6, rubber.FloorBounce())

	ice, err := c.Material("ice")
	require.NoError(t, err)
	assert.Equal(t, physics.Ice, ice, "built-in materials are available")

	def, err := c.Material("")
	require.NoError(t, err)
	assert.Equal(t, physics.Default, def)
}

func TestContent_NewMob(t *testing.T) {
	c := loadTestContent(t)

	hero, err := c.NewMob("hero", 32, 160, true)
	require.NoError(t, err)

	assert.Equal(t, "hero", hero.Name)
	assert.Equal(t, entity.KindPlayer, hero.Kind)
	assert.Equal(t, 2, hero.MaxJumps)
	assert.Equal(t, physics.Rect{X: 32, Y: 160, W: 10, H: 14}, hero.Rect)
	assert.True(t, hero.FacingRight)
	assert.Equal(t, []string{"bolt", "frost", "heal", "haste", "volley"}, hero.Book.Names())

	st := hero.Stats()
	assert.Equal(t, 256.0, st.Value(stat.JumpPower), "220 + 6*strength 6")
	assert.InDelta(t, 1.4, st.Value(stat.CastPower), 1e-9)
	assert.Equal(t, 60.0, st.Current(stat.Mana), "resources start full")

	slime, err := c.NewMob("slime", 200, 192, false)
	require.NoError(t, err)
	assert.Equal(t, entity.KindPatrol, slime.Kind)
	assert.Equal(t, "rubber", slime.Material.Name())
	assert.Equal(t, 48.0, slime.PatrolDistance)
	assert.Equal(t, 8.0, slime.ContactDamage)
	assert.Equal(t, -1, slime.PatrolDir)
	assert.Equal(t, 70.0, slime.Stats().Max(stat.Health))
	assert.Zero(t, slime.Book.Len())

	imp, err := c.NewMob("imp", 0, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 1, imp.PatrolDir)
	assert.Equal(t, 1.5, imp.CastCooldown)
	assert.Equal(t, 140.0, imp.DetectRange)

	_, err = c.NewMob("dragon", 0, 0, false)
	assert.ErrorIs(t, err, ErrUnknownMob)
}

func TestLoadContent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.ContentConfig
		wantErr error
	}{
		{
			name: "spell cycle",
			cfg: config.ContentConfig{Spells: map[string]config.SpellDef{
				"a": {Kind: "multi", Spells: []string{"b"}},
				"b": {Kind: "multi", Spells: []string{"a"}},
			}},
			wantErr: ErrSpellCycle,
		},
		{
			name: "unknown sub-spell",
			cfg: config.ContentConfig{Spells: map[string]config.SpellDef{
				"a": {Kind: "multi", Spells: []string{"ghost"}},
			}},
			wantErr: spell.ErrUnknownSpell,
		},
		{
			name: "unknown status effect",
			cfg: config.ContentConfig{Spells: map[string]config.SpellDef{
				"curse": {Kind: "self", Effects: []config.SpellEffectConfig{{Kind: "status", Effect: "doom"}}},
			}},
			wantErr: effect.ErrUnknownEffect,
		},
		{
			name: "unknown stat in effect",
			cfg: config.ContentConfig{Effects: map[string]config.EffectConfig{
				"odd": {Duration: 1, Changes: []config.StatChangeConfig{{Stat: "luck", Type: "add", Value: 1}}},
			}},
			wantErr: stat.ErrUnknownStat,
		},
		{
			name: "mob with unknown spell",
			cfg: config.ContentConfig{Mobs: map[string]config.MobConfig{
				"wizard": {Spells: []string{"fireball"}},
			}},
			wantErr: spell.ErrUnknownSpell,
		},
		{
			name: "mob with unknown material",
			cfg: config.ContentConfig{Mobs: map[string]config.MobConfig{
				"blob": {Material: "jelly"},
			}},
			wantErr: physics.ErrUnknownMaterial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadContent(&tt.cfg, stat.Zusass)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("cyclic stat table", func(t *testing.T) {
		defs := stat.Definitions{}
		for k, v := range stat.Zusass {
			defs[k] = v
		}
		defs[stat.Strength] = stat.Definition{Deps: []stat.Type{stat.Strength}, Formula: func(_ float64, v stat.Lookup) float64 { return v(stat.Strength) }}
		_, err := LoadContent(&config.ContentConfig{}, defs)
		assert.ErrorIs(t, err, stat.ErrCycle)
	})
}
