package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/zgame/internal/domain/entity"
)

func TestInputSystem_Intents(t *testing.T) {
	const player entity.EntityID = 7
	sys := NewInputSystem()

	tests := []struct {
		name  string
		input InputState
		want  []Intent
	}{
		{
			name:  "idle",
			input: InputState{},
			want:  []Intent{MoveIntent{EntityID: player}},
		},
		{
			name:  "left",
			input: InputState{Left: true},
			want:  []Intent{MoveIntent{EntityID: player, Dir: -1}},
		},
		{
			name:  "both directions cancel",
			input: InputState{Left: true, Right: true},
			want:  []Intent{MoveIntent{EntityID: player}},
		},
		{
			name:  "jump and release",
			input: InputState{Right: true, JumpPressed: true, JumpReleased: true},
			want: []Intent{
				MoveIntent{EntityID: player, Dir: 1},
				JumpIntent{EntityID: player},
				JumpIntent{EntityID: player, Released: true},
			},
		},
		{
			name:  "slot wins over cycling",
			input: InputState{SpellSlot: 3, NextSpell: true},
			want: []Intent{
				MoveIntent{EntityID: player},
				SelectSpellIntent{EntityID: player, Index: 2},
			},
		},
		{
			name:  "previous spell then cast",
			input: InputState{PrevSpell: true, Cast: true},
			want: []Intent{
				MoveIntent{EntityID: player},
				SelectSpellIntent{EntityID: player, Index: -1, Delta: -1},
				CastIntent{EntityID: player},
			},
		},
		{
			name:  "next spell",
			input: InputState{NextSpell: true},
			want: []Intent{
				MoveIntent{EntityID: player},
				SelectSpellIntent{EntityID: player, Index: -1, Delta: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sys.Intents(player, tt.input))
		})
	}
}
