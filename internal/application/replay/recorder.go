package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/input"
)

// ErrNoFrames is returned when saving an empty recording
var ErrNoFrames = errors.New("no frames to save")

// Source is anything that yields one action set per tick
type Source interface {
	Poll() input.Set
}

// Recorder captures the action set of every tick
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a recorder for a run starting at level with seed
func NewRecorder(seed int64, level int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			ID:        uuid.New(),
			Seed:      seed,
			Level:     level,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]Frame, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame appends one tick's actions
func (r *Recorder) RecordFrame(s input.Set) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, Frame{F: len(r.data.Frames), A: s.String()})
}

// Wrap returns a source that records everything src yields
func (r *Recorder) Wrap(src Source) Source {
	return recordingSource{src: src, rec: r}
}

type recordingSource struct {
	src Source
	rec *Recorder
}

func (s recordingSource) Poll() input.Set {
	in := s.src.Poll()
	s.rec.RecordFrame(in)
	return in
}

// Finish stops recording and stores the outcome
func (r *Recorder) Finish(score int, status string) {
	r.recording = false
	r.data.FinalScore = score
	r.data.FinalStatus = status
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// ID returns the run identifier
func (r *Recorder) ID() uuid.UUID {
	return r.data.ID
}

// GetData returns the replay data
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
