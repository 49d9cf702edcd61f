// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/zgame/internal/application/replay"
	"github.com/younwookim/zgame/internal/application/scene"
	"github.com/younwookim/zgame/internal/application/state"
	"github.com/younwookim/zgame/internal/application/system"
	"github.com/younwookim/zgame/internal/domain/entity"
	"github.com/younwookim/zgame/internal/domain/tile"
	"github.com/younwookim/zgame/internal/ecs"
	"github.com/younwookim/zgame/internal/infrastructure/config"
	"github.com/younwookim/zgame/internal/infrastructure/save"
)

// PlayerArchetype is the content mob the player is built from
const PlayerArchetype = "hero"

const (
	shakeIntensity = 4.0
	shakeDecay     = 0.85
	messageTime    = 2.0
)

// Keys are the scene commands read each tick
type Keys struct {
	Pause   bool
	Restart bool
	Save    bool
	Load    bool
	Quit    bool
}

func readKeys() Keys {
	return Keys{
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Save:    inpututil.IsKeyJustPressed(ebiten.KeyF5),
		Load:    inpututil.IsKeyJustPressed(ebiten.KeyF9),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyF10),
	}
}

// Options configure optional scene features
type Options struct {
	Store *save.Store // nil disables saving
	Slot  int

	Record string           // file the input recording is written to on exit
	Replay *replay.Replayer // plays recorded input instead of the keyboard

	// Input sources; nil reads ebiten
	Input func() system.InputState
	Keys  func() Keys
}

// Playing is the main gameplay scene: one room with its mobs
type Playing struct {
	cfg      *config.PhysicsConfig
	content  *system.Content
	roomName string
	room     *tile.Room
	spawns   []system.MobSpawn
	opts     Options

	world   *ecs.World
	state   state.GameState
	input   *system.InputSystem
	intents *system.IntentSystem
	physics *system.PhysicsSystem
	spells  *system.SpellSystem
	combat  *system.CombatSystem
	effects *system.EffectSystem

	recorder *replay.Recorder

	kills        int
	ticks        int
	shake        float64
	message      string
	messageTimer float64
	screenW      int
	screenH      int
}

// New creates the scene for a loaded room
func New(cfg *config.PhysicsConfig, content *system.Content, roomName string, room *tile.Room, spawns []system.MobSpawn, opts Options) (*Playing, error) {
	p := &Playing{
		cfg:      cfg,
		content:  content,
		roomName: roomName,
		room:     room,
		spawns:   spawns,
		opts:     opts,
		input:    system.NewInputSystem(),
		screenW:  cfg.Display.ScreenWidth,
		screenH:  cfg.Display.ScreenHeight,
	}
	if p.opts.Input == nil {
		p.opts.Input = p.input.GetInput
	}
	if p.opts.Keys == nil {
		p.opts.Keys = readKeys
	}
	if err := p.reset(); err != nil {
		return nil, err
	}
	return p, nil
}

// reset rebuilds the world from the room's spawns. A running recording
// starts over with it.
func (p *Playing) reset() error {
	if p.world != nil {
		p.world.Close()
	}
	w := ecs.NewWorld(p.room.Space())

	sx, sy := p.room.Spawn()
	player, err := p.content.NewMob(PlayerArchetype, sx, sy, true)
	if err != nil {
		return fmt.Errorf("room %s: %w", p.roomName, err)
	}
	w.CreatePlayer(player)
	for _, s := range p.spawns {
		m, err := p.content.NewMob(s.Type, s.X, s.Y, s.FacingRight)
		if err != nil {
			return fmt.Errorf("room %s: %w", p.roomName, err)
		}
		w.CreateMob(m)
	}

	p.world = w
	p.physics = system.NewPhysicsSystem(p.cfg, p.room)
	p.spells = system.NewSpellSystem(p.cfg, p.room, w)
	p.intents = system.NewIntentSystem(p.cfg, w, p.spells)
	p.combat = system.NewCombatSystem(w)
	p.effects = system.NewEffectSystem()

	p.combat.OnPlayerHit = func(float64) { p.shake = shakeIntensity }
	p.combat.OnKill = func(*entity.Mob) { p.kills++ }

	p.state = state.StatePlaying
	p.kills = 0
	p.ticks = 0
	p.shake = 0
	if p.opts.Record != "" {
		p.recorder = replay.NewRecorder(p.roomName)
	}
	return nil
}

// Update handles scene keys and steps the world (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	keys := p.opts.Keys()
	if keys.Quit {
		return nil, ebiten.Termination
	}
	if keys.Pause {
		p.state = p.state.Next(state.EventPause)
	}
	if keys.Restart {
		if err := p.reset(); err != nil {
			return nil, err
		}
		p.notify("restarted")
	}
	if keys.Save {
		p.save()
	}
	if keys.Load {
		p.load()
	}

	if p.state.Simulating() {
		in, ok := p.nextInput()
		if !ok {
			slog.Info("replay finished", "ticks", p.ticks)
			return nil, ebiten.Termination
		}
		p.Step(in, dt)
	}

	p.shake *= shakeDecay
	if p.messageTimer > 0 {
		p.messageTimer -= dt
	}
	return nil, nil
}

func (p *Playing) nextInput() (system.InputState, bool) {
	if p.opts.Replay != nil {
		return p.opts.Replay.Next()
	}
	return p.opts.Input(), true
}

// Step advances the world by one tick of input
func (p *Playing) Step(in system.InputState, dt float64) {
	if p.recorder != nil {
		p.recorder.Record(in)
	}
	p.ticks++

	var intents []system.Intent
	if player := p.world.Player(); player != nil {
		intents = p.input.Intents(player.ID, in)
	}
	intents = append(intents, p.combat.Intents()...)
	p.intents.Apply(intents)

	p.physics.Update(p.world, dt)
	p.spells.Update(dt)
	alive := p.combat.Update()
	p.effects.Update(p.world, dt)

	switch {
	case !alive:
		p.state = p.state.Next(state.EventPlayerDied)
		slog.Info("player died", "room", p.roomName, "kills", p.kills)
	case len(p.spawns) > 0 && p.world.CountEnemies() == 0:
		next := p.state.Next(state.EventRoomCleared)
		if next != p.state {
			slog.Info("room cleared", "room", p.roomName, "ticks", p.ticks)
		}
		p.state = next
	}
}

func (p *Playing) save() {
	player := p.world.Player()
	switch {
	case p.opts.Store == nil:
		p.notify("saving disabled")
		return
	case player == nil || !player.Alive():
		p.notify("nothing to save")
		return
	}
	g := save.Game{Room: p.roomName, Player: save.Capture(player)}
	if err := p.opts.Store.Save(p.opts.Slot, g); err != nil {
		slog.Warn("save failed", "slot", p.opts.Slot, "err", err)
		p.notify("save failed")
		return
	}
	p.notify("saved")
}

func (p *Playing) load() {
	if p.opts.Store == nil {
		p.notify("saving disabled")
		return
	}
	g, err := p.opts.Store.Load(p.opts.Slot)
	if err != nil {
		slog.Warn("load failed", "slot", p.opts.Slot, "err", err)
		p.notify("no save")
		return
	}
	if g.Room != p.roomName {
		p.notify("save is for room " + g.Room)
		return
	}
	if err := p.reset(); err != nil {
		slog.Error("reset failed", "err", err)
		return
	}
	player := p.world.Player()
	if err := g.Player.Restore(player, p.content.Effects, p.world.Sources()); err != nil {
		slog.Warn("restore failed", "slot", p.opts.Slot, "err", err)
		p.notify("save is damaged")
		return
	}
	p.world.SyncBroadphase()
	p.notify("loaded")
}

func (p *Playing) notify(msg string) {
	p.message = msg
	p.messageTimer = messageTime
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	slog.Info("entering room", "room", p.roomName, "enemies", p.world.CountEnemies())
}

// OnExit writes the input recording if one is running
func (p *Playing) OnExit() {
	if p.recorder == nil || p.recorder.Len() == 0 {
		return
	}
	p.recorder.Stop()
	if err := p.recorder.Save(p.opts.Record); err != nil {
		slog.Error("recording not saved", "file", p.opts.Record, "err", err)
		return
	}
	slog.Info("recording saved", "file", p.opts.Record, "frames", p.recorder.Len())
}

// State returns the scene's game state
func (p *Playing) State() state.GameState { return p.state }

// World returns the current world. Restarting and loading replace it.
func (p *Playing) World() *ecs.World { return p.world }

// Kills returns the enemies killed since the last restart
func (p *Playing) Kills() int { return p.kills }
