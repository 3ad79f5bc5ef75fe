// Package metrics exports simulation counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/audio"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
)

const namespace = "goomba"

// Collector is both an audio sink and a snapshot presenter, so it can be
// teed into the engine and the runner without touching the simulation.
type Collector struct {
	registry *prometheus.Registry

	cues     *prometheus.CounterVec
	ticks    prometheus.Counter
	runs     *prometheus.CounterVec
	score    prometheus.Gauge
	lives    prometheus.Gauge
	coins    prometheus.Gauge
	level    prometheus.Gauge
	entities prometheus.Gauge

	lastStatus world.Status
	lastTick   uint64
}

// New creates a collector with its own registry
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		cues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cues_total",
			Help:      "Sound cues emitted by the simulation.",
		}, []string{"cue"}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation steps presented.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_finished_total",
			Help:      "Runs that reached a final status.",
		}, []string{"status"}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Current score.",
		}),
		lives: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lives",
			Help:      "Lives remaining.",
		}),
		coins: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "coins",
			Help:      "Coins toward the next extra life.",
		}),
		level: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "level",
			Help:      "Current level id.",
		}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities",
			Help:      "Live entities including the player.",
		}),
	}
	c.registry.MustRegister(c.cues, c.ticks, c.runs, c.score, c.lives, c.coins, c.level, c.entities)
	for _, cue := range audio.Cues() {
		c.cues.WithLabelValues(cue.String())
	}
	return c
}

// Play counts a cue
func (c *Collector) Play(cue audio.Cue) {
	c.cues.WithLabelValues(cue.String()).Inc()
}

// Present updates the gauges from a snapshot. Call from one goroutine.
func (c *Collector) Present(s world.Snapshot) {
	if s.Tick > c.lastTick {
		c.ticks.Add(float64(s.Tick - c.lastTick))
	}
	c.lastTick = s.Tick

	c.score.Set(float64(s.Score))
	c.lives.Set(float64(s.Lives))
	c.coins.Set(float64(s.Coins))
	c.level.Set(float64(s.Level))
	c.entities.Set(float64(len(s.Entities)))

	if s.Status != world.StatusRunning && c.lastStatus == world.StatusRunning {
		c.runs.WithLabelValues(s.Status.String()).Inc()
	}
	c.lastStatus = s.Status
}

// Registry exposes the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
