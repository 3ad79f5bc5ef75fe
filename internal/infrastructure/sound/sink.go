// Package sound delivers simulation cues outside the tick.
package sound

import (
	"context"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/audio"
)

// ChannelSink buffers cues for a consumer goroutine. Play never blocks;
// cues arriving while the buffer is full are dropped and counted.
type ChannelSink struct {
	ch      chan audio.Cue
	dropped atomic.Uint64
}

// NewChannelSink creates a sink buffering up to size cues
func NewChannelSink(size int) *ChannelSink {
	if size < 1 {
		size = 1
	}
	return &ChannelSink{ch: make(chan audio.Cue, size)}
}

// Play enqueues cue or drops it
func (s *ChannelSink) Play(cue audio.Cue) {
	select {
	case s.ch <- cue:
	default:
		s.dropped.Add(1)
	}
}

// Cues returns the receive side
func (s *ChannelSink) Cues() <-chan audio.Cue {
	return s.ch
}

// Dropped returns the number of cues lost to a full buffer
func (s *ChannelSink) Dropped() uint64 {
	return s.dropped.Load()
}

// Forward passes buffered cues to out until ctx is done
func (s *ChannelSink) Forward(ctx context.Context, out audio.Sink) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cue := <-s.ch:
			out.Play(cue)
		}
	}
}

// LogSink writes one debug line per cue
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink logging to l
func NewLogSink(l *log.Logger) *LogSink {
	return &LogSink{logger: l}
}

// Play logs the cue
func (s *LogSink) Play(cue audio.Cue) {
	s.logger.Debug("cue", "name", cue)
}
