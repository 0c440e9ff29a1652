package ringline

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusConfig is a config of the Prometheus metrics provided by an instrumented line.
//
// An instance can be created only by the [Prometheus] function. The zero value is invalid.
type PrometheusConfig struct {
	// Namespace of the metrics.
	Namespace string
	// Subsystem of the metrics.
	Subsystem string
	// Options for the items gauge.
	Items prometheus.GaugeOpts
	// Options for the capacity gauge.
	Capacity prometheus.GaugeOpts
	// Options for the inserted items counter.
	ItemsInserted prometheus.CounterOpts
	// Options for the removed items counter.
	ItemsRemoved prometheus.CounterOpts
	// Options for the grows counter.
	Grows prometheus.CounterOpts
	// Options for the empty errors counter.
	EmptyErrors prometheus.CounterOpts

	registerer prometheus.Registerer
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If registerer is nil,
// metrics will not be registered. Many default parameters can be configured by passing
// configuration functions.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = "ringline"
		subsystem = ""
	)

	c := PrometheusConfig{
		registerer: registerer,
		Namespace:  namespace,
		Subsystem:  subsystem,
		Items: prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items",
			Help:      "Number of items in line",
		},
		Capacity: prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "capacity",
			Help:      "Number of items line holds before it grows",
		},
		ItemsInserted: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items_inserted",
			Help:      "Number of items inserted into line",
		},
		ItemsRemoved: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items_removed",
			Help:      "Number of items removed from line",
		},
		Grows: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "grows",
			Help:      "Number of times line doubled its capacity",
		},
		EmptyErrors: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "empty_errors",
			Help:      "Number of removals attempted on empty line",
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

func (c *PrometheusConfig) metrics() *metrics {
	m := metrics{
		items:         prometheus.NewGauge(c.Items),
		capacity:      prometheus.NewGauge(c.Capacity),
		itemsInserted: prometheus.NewCounter(c.ItemsInserted),
		itemsRemoved:  prometheus.NewCounterVec(c.ItemsRemoved, []string{"type"}),
		grows:         prometheus.NewCounter(c.Grows),
		emptyErrors:   prometheus.NewCounterVec(c.EmptyErrors, []string{"type"}),
	}

	if c.registerer != nil {
		c.registerer.MustRegister(
			m.items,
			m.capacity,
			m.itemsInserted,
			m.itemsRemoved,
			m.grows,
			m.emptyErrors,
		)
	}

	return &m
}
