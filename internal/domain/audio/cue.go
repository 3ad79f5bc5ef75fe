// Package audio defines the sound cue stream emitted by the simulation.
package audio

//go:generate go tool mockgen -destination=./mocks/sink_mock.go -package=mocks . Sink

// Cue is a discrete sound event
type Cue int

const (
	CueJump Cue = iota
	CueCoin
	CuePowerUp
	CueStomp
	CueDeath
	CueBreak
	CueFireball
	CueShrink
)

var cueNames = [...]string{
	CueJump:     "jump",
	CueCoin:     "coin",
	CuePowerUp:  "powerup",
	CueStomp:    "stomp",
	CueDeath:    "death",
	CueBreak:    "break",
	CueFireball: "fireball",
	CueShrink:   "shrink",
}

// String returns the cue name
func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// Cues lists every cue in declaration order
func Cues() []Cue {
	out := make([]Cue, len(cueNames))
	for i := range cueNames {
		out[i] = Cue(i)
	}
	return out
}

// Sink receives cues synchronously from inside a tick.
// Implementations must return immediately.
type Sink interface {
	Play(cue Cue)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(cue Cue)

// Play calls f(cue)
func (f SinkFunc) Play(cue Cue) { f(cue) }

// Discard drops every cue
var Discard Sink = SinkFunc(func(Cue) {})

type tee []Sink

func (t tee) Play(cue Cue) {
	for _, s := range t {
		s.Play(cue)
	}
}

// Tee fans cues out to every non-nil sink
func Tee(sinks ...Sink) Sink {
	out := make(tee, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
