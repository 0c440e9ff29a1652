package ringline

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	removeTypeSingle = "single"
	removeTypeAll    = "all"
)

type metrics struct {
	items         prometheus.Gauge
	capacity      prometheus.Gauge
	itemsInserted prometheus.Counter
	itemsRemoved  *prometheus.CounterVec
	grows         prometheus.Counter
	emptyErrors   *prometheus.CounterVec
}

func (m *metrics) recordInsert(size, capacityBefore, capacityAfter int) {
	m.itemsInserted.Inc()
	m.items.Set(float64(size))
	if capacityAfter > capacityBefore {
		m.grows.Inc()
		m.capacity.Set(float64(capacityAfter))
	}
}

func (m *metrics) recordRemove(removeType string, removed, size int) {
	m.itemsRemoved.WithLabelValues(removeType).Add(float64(removed))
	m.items.Set(float64(size))
}

func (m *metrics) recordEmpty(removeType string) {
	m.emptyErrors.WithLabelValues(removeType).Inc()
}

func (m *metrics) updateSize(size, capacity int) {
	m.items.Set(float64(size))
	m.capacity.Set(float64(capacity))
}
