package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/zgame/internal/application/system"
)

// Recorder collects input frames
type Recorder struct {
	data    Data
	stopped bool
}

// NewRecorder starts a recording of room
func NewRecorder(room string) *Recorder {
	return &Recorder{
		data: Data{
			Version:   Version,
			Room:      room,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]Frame, 0, 3600),
		},
	}
}

// Record appends the input of the next tick
func (r *Recorder) Record(in system.InputState) {
	if r.stopped {
		return
	}
	r.data.Frames = append(r.data.Frames, frameOf(len(r.data.Frames), in))
}

// Stop ends the recording; later frames are ignored
func (r *Recorder) Stop() { r.stopped = true }

// Len returns the number of recorded frames
func (r *Recorder) Len() int { return len(r.data.Frames) }

// Data returns the recorded session
func (r *Recorder) Data() Data { return r.data }

// Write encodes the recording as JSON
func (r *Recorder) Write(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return errors.New("no frames recorded")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	if err := enc.Encode(r.data); err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}
	return nil
}

// Save writes the recording to a file
func (r *Recorder) Save(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create replay: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return r.Write(f)
}

// Filename returns a timestamped file name for a recording of room
func Filename(room string) string {
	return fmt.Sprintf("replay_%s_%s.json", room, time.Now().Format("20060102_150405"))
}
