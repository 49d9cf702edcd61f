package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/zgame/internal/application/system"
)

// Replayer feeds recorded input back one tick at a time
type Replayer struct {
	data  Data
	frame int
}

// NewReplayer creates a replayer positioned at the first frame
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// Read decodes a recording
func Read(r io.Reader) (*Data, error) {
	var data Data
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("%w: %q", ErrVersion, data.Version)
	}
	return &data, nil
}

// Load reads a recording from a file
func Load(filename string) (*Data, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Read(f)
}

// Next returns the input of the next tick. It returns false once every
// frame was played.
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}
	f := r.data.Frames[r.frame]
	r.frame++
	return f.input(), true
}

func (r *Replayer) Room() string { return r.data.Room }
func (r *Replayer) Frame() int   { return r.frame }
func (r *Replayer) Len() int     { return len(r.data.Frames) }
func (r *Replayer) Done() bool   { return r.frame >= len(r.data.Frames) }

// Reset rewinds to the first frame
func (r *Replayer) Reset() { r.frame = 0 }
