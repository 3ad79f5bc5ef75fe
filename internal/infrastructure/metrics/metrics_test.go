package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/audio"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
)

func TestCollector_Play(t *testing.T) {
	c := New()

	c.Play(audio.CueCoin)
	c.Play(audio.CueCoin)
	c.Play(audio.CueJump)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.cues.WithLabelValues("coin")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.cues.WithLabelValues("jump")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.cues.WithLabelValues("death")))
}

func TestCollector_Present(t *testing.T) {
	c := New()

	c.Present(world.Snapshot{Tick: 1, Score: 100, Lives: 3, Coins: 4, Level: 1, Entities: make([]world.EntityView, 5)})
	c.Present(world.Snapshot{Tick: 4, Score: 300, Lives: 2, Coins: 5, Level: 2, Entities: make([]world.EntityView, 3)})

	assert.Equal(t, 4.0, testutil.ToFloat64(c.ticks))
	assert.Equal(t, 300.0, testutil.ToFloat64(c.score))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.lives))
	assert.Equal(t, 5.0, testutil.ToFloat64(c.coins))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.level))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.entities))
}

func TestCollector_CountsFinishedRunsOnce(t *testing.T) {
	c := New()

	c.Present(world.Snapshot{Tick: 1})
	c.Present(world.Snapshot{Tick: 2, Status: world.StatusGameOver})
	c.Present(world.Snapshot{Tick: 2, Status: world.StatusGameOver})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues("gameover")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.runs.WithLabelValues("won")))
}

func TestCollector_TickRestart(t *testing.T) {
	c := New()

	c.Present(world.Snapshot{Tick: 10})
	c.Present(world.Snapshot{Tick: 0})
	c.Present(world.Snapshot{Tick: 2})

	assert.Equal(t, 12.0, testutil.ToFloat64(c.ticks))
}

func TestCollector_Handler(t *testing.T) {
	c := New()
	c.Play(audio.CueStomp)
	c.Present(world.Snapshot{Tick: 1, Score: 100})

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.Contains(text, `goomba_cues_total{cue="stomp"} 1`), text)
	assert.Contains(t, text, "goomba_score 100")
	assert.Contains(t, text, "goomba_ticks_total 1")
}
