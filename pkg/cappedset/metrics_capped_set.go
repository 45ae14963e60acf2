package cappedset

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"google.golang.org/grpc/status"
)

var (
	cappedSetPrometheusMetrics sync.Once

	cappedSetOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "capped_set",
			Name:      "operations_total",
			Help:      "Total number of operations against capped sets.",
		},
		[]string{"name", "operation", "grpc_code"})
	cappedSetEvictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "capped_set",
			Name:      "evictions_total",
			Help:      "Total number of entries evicted from capped sets to make room for new entries.",
		},
		[]string{"name"})
	cappedSetEntries = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "buildbarn",
			Subsystem: "capped_set",
			Name:      "entries",
			Help:      "Number of entries currently stored in capped sets.",
		},
		[]string{"name"})
	cappedSetCapacity = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "buildbarn",
			Subsystem: "capped_set",
			Name:      "capacity",
			Help:      "Maximum number of entries that can be stored in capped sets.",
		},
		[]string{"name"})
)

type metricsCappedSet[K comparable] struct {
	base CappedSet[K]
	name string

	evictions prometheus.Counter
	entries   prometheus.Gauge
}

// NewMetricsCappedSet is a decorator for CappedSet that exposes the
// number of operations, evictions and entries of the underlying
// CappedSet through Prometheus.
//
// Calls to Insert() and Len() on the underlying CappedSet are not
// performed atomically. Place this decorator below a locking
// decorator to get exact eviction counts.
func NewMetricsCappedSet[K comparable](base CappedSet[K], name string) CappedSet[K] {
	cappedSetPrometheusMetrics.Do(func() {
		prometheus.MustRegister(cappedSetOperationsTotal)
		prometheus.MustRegister(cappedSetEvictionsTotal)
		prometheus.MustRegister(cappedSetEntries)
		prometheus.MustRegister(cappedSetCapacity)
	})

	cappedSetCapacity.WithLabelValues(name).Set(float64(base.Capacity()))
	entries := cappedSetEntries.WithLabelValues(name)
	entries.Set(float64(base.Len()))
	return &metricsCappedSet[K]{
		base: base,
		name: name,

		evictions: cappedSetEvictionsTotal.WithLabelValues(name),
		entries:   entries,
	}
}

func (cs *metricsCappedSet[K]) observe(operation string, err error) {
	cappedSetOperationsTotal.WithLabelValues(cs.name, operation, status.Code(err).String()).Inc()
	cs.entries.Set(float64(cs.base.Len()))
}

func (cs *metricsCappedSet[K]) Capacity() int {
	return cs.base.Capacity()
}

func (cs *metricsCappedSet[K]) Len() int {
	return cs.base.Len()
}

func (cs *metricsCappedSet[K]) Insert(key K, value uint64) (Entry[K], error) {
	full := cs.base.Len() >= cs.base.Capacity()
	entry, err := cs.base.Insert(key, value)
	if err == nil && full {
		cs.evictions.Inc()
	}
	cs.observe("Insert", err)
	return entry, err
}

func (cs *metricsCappedSet[K]) Update(key K, value uint64) (Entry[K], error) {
	entry, err := cs.base.Update(key, value)
	cs.observe("Update", err)
	return entry, err
}

func (cs *metricsCappedSet[K]) Remove(key K) (Entry[K], error) {
	entry, err := cs.base.Remove(key)
	cs.observe("Remove", err)
	return entry, err
}

func (cs *metricsCappedSet[K]) GetValue(key K) (uint64, error) {
	value, err := cs.base.GetValue(key)
	cs.observe("GetValue", err)
	return value, err
}
