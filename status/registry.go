// Package status collects named counters and gauges published by the simulation
package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Metric keys
const (
	TraceCalls     = "trace.calls"
	TraceSteps     = "trace.steps"
	TraceSlides    = "trace.slides"
	AnimEnds       = "anim.ends"
	UnknownEffects = "anim.unknown_effects"
	ChainDispatch  = "chain.dispatched"
	SecretsFound   = "chain.secrets"
	SoundsPlayed   = "audio.played"
	SoundsDropped  = "audio.dropped"
	CameraDistance = "camera.distance"
	CameraMode     = "camera.mode"
	SceneTicks     = "scene.ticks"
	SceneTimeScale = "scene.time_scale"
)

// Registry groups metrics by kind
// Methods are nil-safe so components run without one
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Gauges *MetricMap[Gauge]
	Labels *MetricMap[Label]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Gauges: NewMetricMap[Gauge](),
		Labels: NewMetricMap[Label](),
	}
}

// Inc adds one to counter key
func (r *Registry) Inc(key string) {
	r.Add(key, 1)
}

// Add adds n to counter key
func (r *Registry) Add(key string, n int64) {
	if r == nil {
		return
	}
	r.Ints.Get(key).Add(n)
}

// Count returns counter key
func (r *Registry) Count(key string) int64 {
	if r == nil {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// SetGauge stores gauge key
func (r *Registry) SetGauge(key string, v float64) {
	if r == nil {
		return
	}
	r.Gauges.Get(key).Set(v)
}

// SetLabel stores label key
func (r *Registry) SetLabel(key, v string) {
	if r == nil {
		return
	}
	r.Labels.Get(key).Set(v)
}

// Lines renders every metric as key=value, counters first, each kind in key order
func (r *Registry) Lines() []string {
	if r == nil {
		return nil
	}
	lines := make([]string, 0, r.Ints.Count()+r.Gauges.Count()+r.Labels.Count())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, k+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Gauges.Range(func(k string, v *Gauge) {
		lines = append(lines, fmt.Sprintf("%s=%.1f", k, v.Get()))
	})
	r.Labels.Range(func(k string, v *Label) {
		lines = append(lines, k+"="+v.Get())
	})
	return lines
}
