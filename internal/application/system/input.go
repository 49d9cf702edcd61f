package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/zgame/internal/domain/entity"
)

// InputSystem turns player input into intents
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left         bool
	Right        bool
	JumpPressed  bool
	JumpReleased bool
	Cast         bool
	NextSpell    bool
	PrevSpell    bool
	SpellSlot    int // 0 when no slot key was pressed, else 1-based
}

var slotKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	state := InputState{
		Left:         ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:        ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		JumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		JumpReleased: inpututil.IsKeyJustReleased(ebiten.KeyW) || inpututil.IsKeyJustReleased(ebiten.KeySpace),
		Cast:         inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		NextSpell:    inpututil.IsKeyJustPressed(ebiten.KeyE),
		PrevSpell:    inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
	for i, k := range slotKeys {
		if inpututil.IsKeyJustPressed(k) {
			state.SpellSlot = i + 1
		}
	}
	return state
}

// Intents converts an input state into intents for the player
func (s *InputSystem) Intents(player entity.EntityID, input InputState) []Intent {
	dir := 0
	if input.Left {
		dir--
	}
	if input.Right {
		dir++
	}
	intents := []Intent{MoveIntent{EntityID: player, Dir: dir}}

	if input.JumpPressed {
		intents = append(intents, JumpIntent{EntityID: player})
	}
	if input.JumpReleased {
		intents = append(intents, JumpIntent{EntityID: player, Released: true})
	}

	switch {
	case input.SpellSlot > 0:
		intents = append(intents, SelectSpellIntent{EntityID: player, Index: input.SpellSlot - 1})
	case input.NextSpell:
		intents = append(intents, SelectSpellIntent{EntityID: player, Index: -1, Delta: 1})
	case input.PrevSpell:
		intents = append(intents, SelectSpellIntent{EntityID: player, Index: -1, Delta: -1})
	}

	if input.Cast {
		intents = append(intents, CastIntent{EntityID: player})
	}
	return intents
}
