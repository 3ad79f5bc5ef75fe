package sound

import (
	"encoding/binary"
	"math"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/audio"
)

// SampleRate of generated tones
const SampleRate = 44100

type note struct {
	freq float64 // Hz, 0 is a rest
	ms   int
}

// Short square-wave phrases, one per cue
var phrases = map[audio.Cue][]note{
	audio.CueJump:     {{440, 40}, {660, 60}},
	audio.CueCoin:     {{988, 50}, {1319, 150}},
	audio.CuePowerUp:  {{523, 60}, {659, 60}, {784, 60}, {1047, 120}},
	audio.CueStomp:    {{220, 40}, {165, 60}},
	audio.CueDeath:    {{494, 120}, {0, 40}, {370, 120}, {0, 40}, {247, 240}},
	audio.CueBreak:    {{110, 30}, {90, 30}, {70, 60}},
	audio.CueFireball: {{880, 20}, {1320, 30}},
	audio.CueShrink:   {{660, 60}, {440, 60}, {330, 90}},
}

// Tone renders a cue as 16-bit little-endian stereo PCM
func Tone(cue audio.Cue) []byte {
	var buf []byte
	for _, n := range phrases[cue] {
		samples := SampleRate * n.ms / 1000
		for i := 0; i < samples; i++ {
			var v int16
			if n.freq > 0 {
				period := float64(SampleRate) / n.freq
				if math.Mod(float64(i), period) < period/2 {
					v = 3000
				} else {
					v = -3000
				}
			}
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
		}
	}
	return buf
}

// ToneSink plays cues through an ebiten audio context
type ToneSink struct {
	ctx   *ebitenaudio.Context
	tones map[audio.Cue][]byte
}

// NewToneSink renders every phrase up front. Only one context may exist per process.
func NewToneSink(ctx *ebitenaudio.Context) *ToneSink {
	tones := make(map[audio.Cue][]byte, len(phrases))
	for _, c := range audio.Cues() {
		tones[c] = Tone(c)
	}
	return &ToneSink{ctx: ctx, tones: tones}
}

// Play starts the cue's phrase. Must be called from the game goroutine.
func (s *ToneSink) Play(cue audio.Cue) {
	pcm, ok := s.tones[cue]
	if !ok || len(pcm) == 0 {
		return
	}
	s.ctx.NewPlayerFromBytes(pcm).Play()
}
