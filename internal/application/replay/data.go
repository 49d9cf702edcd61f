// Package replay records player input frame by frame and plays it back.
// The simulation is deterministic, so a room and its input frames
// reproduce a session.
package replay

import (
	"errors"

	"github.com/younwookim/zgame/internal/application/system"
)

// Version is the format version written by Recorder
const Version = "zgame-1"

// ErrVersion is returned when loading a replay of another format version
var ErrVersion = errors.New("unsupported replay version")

// Frame is the input of one tick
type Frame struct {
	F    int  `json:"f"`              // tick number
	L    bool `json:"l,omitempty"`    // left
	R    bool `json:"r,omitempty"`    // right
	JP   bool `json:"jp,omitempty"`   // jump pressed
	JR   bool `json:"jr,omitempty"`   // jump released
	C    bool `json:"c,omitempty"`    // cast
	Next bool `json:"next,omitempty"` // next spell
	Prev bool `json:"prev,omitempty"` // previous spell
	Slot int  `json:"slot,omitempty"` // spell slot, 1-based
}

// Data is a recorded session
type Data struct {
	Version   string  `json:"version"`
	Room      string  `json:"room"`
	StartTime string  `json:"startTime"`
	Frames    []Frame `json:"frames"`
}

func frameOf(tick int, in system.InputState) Frame {
	return Frame{
		F:    tick,
		L:    in.Left,
		R:    in.Right,
		JP:   in.JumpPressed,
		JR:   in.JumpReleased,
		C:    in.Cast,
		Next: in.NextSpell,
		Prev: in.PrevSpell,
		Slot: in.SpellSlot,
	}
}

func (f Frame) input() system.InputState {
	return system.InputState{
		Left:         f.L,
		Right:        f.R,
		JumpPressed:  f.JP,
		JumpReleased: f.JR,
		Cast:         f.C,
		NextSpell:    f.Next,
		PrevSpell:    f.Prev,
		SpellSlot:    f.Slot,
	}
}
