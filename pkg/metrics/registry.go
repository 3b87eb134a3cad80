package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry is a prometheus.Registerer-backed implementation of
// internal/iohook.MetricsRecorder: counters and gauges are registered
// lazily by name on first use, so call sites never need to
// pre-declare every metric they might emit.
type Registry struct {
	reg *prometheus.Registry

	mu      sync.Mutex
	counters map[string]*prometheus.CounterVec
	gauges   map[string]*prometheus.GaugeVec
}

// NewRegistry builds an empty registry with the standard process and
// Go runtime collectors attached, matching the default
// promhttp.Handler() exposition set.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	reg.MustRegister(prometheus.NewGoCollector())
	return &Registry{
		reg:      reg,
		counters: make(map[string]*prometheus.CounterVec),
		gauges:   make(map[string]*prometheus.GaugeVec),
	}
}

// Prometheus exposes the underlying *prometheus.Registry for mounting
// via promhttp.HandlerFor.
func (r *Registry) Prometheus() *prometheus.Registry { return r.reg }

func labelNames(labels map[string]string) []string {
	names := make([]string, 0, len(labels))
	for k := range labels {
		names = append(names, k)
	}
	return names
}

func (r *Registry) counterVec(name string, labels map[string]string) *prometheus.CounterVec {
	r.mu.Lock()
	defer r.mu.Unlock()
	cv, ok := r.counters[name]
	if !ok {
		cv = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: name + " (decoder counter)",
		}, labelNames(labels))
		r.reg.MustRegister(cv)
		r.counters[name] = cv
	}
	return cv
}

func (r *Registry) gaugeVec(name string, labels map[string]string) *prometheus.GaugeVec {
	r.mu.Lock()
	defer r.mu.Unlock()
	gv, ok := r.gauges[name]
	if !ok {
		gv = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: name,
			Help: name + " (decoder gauge)",
		}, labelNames(labels))
		r.reg.MustRegister(gv)
		r.gauges[name] = gv
	}
	return gv
}

// IncCounter implements internal/iohook.MetricsRecorder.
func (r *Registry) IncCounter(name string, labels map[string]string) {
	r.counterVec(name, labels).With(prometheus.Labels(labels)).Inc()
}

// ObserveGauge implements internal/iohook.MetricsRecorder.
func (r *Registry) ObserveGauge(name string, value float64, labels map[string]string) {
	r.gaugeVec(name, labels).With(prometheus.Labels(labels)).Set(value)
}
