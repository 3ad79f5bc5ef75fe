package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/input"
)

// ErrUnsupportedVersion is returned for files written by another format
var ErrUnsupportedVersion = errors.New("unsupported replay version")

// Replayer plays recorded action sets back one tick at a time
type Replayer struct {
	data  ReplayData
	sets  []input.Set
	frame int
}

// NewReplayer creates a replayer, decoding every frame up front
func NewReplayer(data ReplayData) (*Replayer, error) {
	sets, err := data.Sets()
	if err != nil {
		return nil, err
	}
	return &Replayer{data: data, sets: sets}, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, data.Version)
	}

	return &data, nil
}

// Next returns the set for the current frame and advances
func (r *Replayer) Next() (input.Set, bool) {
	if r.frame >= len(r.sets) {
		return input.None, false
	}
	s := r.sets[r.frame]
	r.frame++
	return s, true
}

// Poll returns the next recorded set, or no actions once exhausted
func (r *Replayer) Poll() input.Set {
	s, _ := r.Next()
	return s
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.sets)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.sets)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Data returns the underlying recording
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
