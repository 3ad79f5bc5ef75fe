package replay

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/input"
)

// FormatVersion is written into every recorded file
const FormatVersion = "2.0"

// Frame records the action set sampled for a single tick
type Frame struct {
	F int    `json:"f"`           // Tick index
	A string `json:"a,omitempty"` // Actions, e.g. "right,jump"
}

// Set parses the recorded actions
func (f Frame) Set() (input.Set, error) {
	return input.ParseSet(f.A)
}

// ReplayData contains everything needed to re-run a session. With the same
// level files, stepping a fresh world with Seed through Frames reproduces
// the recorded run exactly.
type ReplayData struct {
	Version   string    `json:"version"`
	ID        uuid.UUID `json:"id"`
	Seed      int64     `json:"seed"`
	Level     int       `json:"level"`
	StartTime string    `json:"startTime"`
	Frames    []Frame   `json:"frames"`

	// Filled in when recording stops
	FinalScore  int    `json:"finalScore,omitempty"`
	FinalStatus string `json:"finalStatus,omitempty"`
}

// Sets decodes every frame in order
func (d *ReplayData) Sets() ([]input.Set, error) {
	sets := make([]input.Set, len(d.Frames))
	for i, f := range d.Frames {
		s, err := f.Set()
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", f.F, err)
		}
		sets[i] = s
	}
	return sets, nil
}
