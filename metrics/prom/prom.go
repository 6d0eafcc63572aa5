// Package prom exports list pool metrics to Prometheus.
package prom

import (
	"github.com/IvanBrykalov/pooledlist/list"
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements list.Metrics and exports Prometheus counters/gauges.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe, so
// one Adapter may serve many lists (the gauges then show the last writer).
type Adapter struct {
	acquired *prometheus.CounterVec
	fromPool prometheus.Counter
	fromHeap prometheus.Counter
	released prometheus.Counter
	dropped  prometheus.Counter
	active   prometheus.Gauge
	cached   prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		acquired: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "acquisitions_total",
				Help:        "Nodes handed to an active sequence, by source",
				ConstLabels: constLabels,
			},
			[]string{"source"},
		),
		released: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "releases_total",
			Help:        "Nodes retired into the pool",
			ConstLabels: constLabels,
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "drops_total",
			Help:        "Nodes discarded instead of pooled",
			ConstLabels: constLabels,
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "active_nodes",
			Help:        "Nodes in the active sequence",
			ConstLabels: constLabels,
		}),
		cached: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "cached_nodes",
			Help:        "Retired nodes waiting for reuse",
			ConstLabels: constLabels,
		}),
	}
	// Resolve the label children once; Acquire runs on every add.
	a.fromPool = a.acquired.WithLabelValues(source(true))
	a.fromHeap = a.acquired.WithLabelValues(source(false))

	reg.MustRegister(a.acquired, a.released, a.dropped, a.active, a.cached)
	return a
}

// Acquire increments the acquisition counter for the node's source.
func (a *Adapter) Acquire(reused bool) {
	if reused {
		a.fromPool.Inc()
		return
	}
	a.fromHeap.Inc()
}

// Release increments the release counter.
func (a *Adapter) Release() { a.released.Inc() }

// Drop adds n to the drop counter.
func (a *Adapter) Drop(n int) { a.dropped.Add(float64(n)) }

// Size updates gauges for the active and cached node counts.
func (a *Adapter) Size(active, cached int) {
	a.active.Set(float64(active))
	a.cached.Set(float64(cached))
}

// source maps the reuse flag to a stable label value.
func source(reused bool) string {
	if reused {
		return "pool"
	}
	return "heap"
}

// Compile-time check: ensure Adapter implements list.Metrics.
var _ list.Metrics = (*Adapter)(nil)
