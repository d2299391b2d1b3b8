// Package prometheus implements propgraph.MetricsCollector on top of the
// Prometheus client library.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/propgraph"
)

// Collector implements propgraph.MetricsCollector.
type Collector struct {
	commits           prometheus.Counter
	mutationsCommitted prometheus.Counter
	reverts           *prometheus.CounterVec
	mutationsReverted prometheus.Counter
	mutations         *prometheus.CounterVec
	opLatency         *prometheus.HistogramVec
}

var _ propgraph.MetricsCollector = (*Collector)(nil)

// Options configure a Collector.
type Options struct {
	// Namespace prefixes every metric name. Defaults to "propgraph".
	Namespace string
	// ConstLabels are attached to every metric, e.g. to tell graphs apart.
	ConstLabels prometheus.Labels
	// Buckets are the operator latency histogram buckets in seconds.
	// Defaults to prometheus.DefBuckets.
	Buckets []float64
}

// New creates a Collector and registers its metrics with reg.
func New(reg prometheus.Registerer, optFns ...func(o *Options)) (*Collector, error) {
	opts := Options{
		Namespace: "propgraph",
		Buckets:   prometheus.DefBuckets,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Collector{
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "commits_total",
			Help:        "Total transaction commits",
			ConstLabels: opts.ConstLabels,
		}),
		mutationsCommitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "committed_mutations_total",
			Help:        "Total mutations made durable by commits",
			ConstLabels: opts.ConstLabels,
		}),
		reverts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "reverts_total",
			Help:        "Total transaction reverts",
			ConstLabels: opts.ConstLabels,
		}, []string{"status"}),
		mutationsReverted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "reverted_mutations_total",
			Help:        "Total mutations undone by reverts",
			ConstLabels: opts.ConstLabels,
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Name:        "mutations_total",
			Help:        "Total mutating operations",
			ConstLabels: opts.ConstLabels,
		}, []string{"op", "status"}),
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   opts.Namespace,
			Name:        "operator_latency_seconds",
			Help:        "Latency of graph operators",
			ConstLabels: opts.ConstLabels,
			Buckets:     opts.Buckets,
		}, []string{"op", "status"}),
	}

	for _, m := range []prometheus.Collector{
		c.commits, c.mutationsCommitted, c.reverts, c.mutationsReverted, c.mutations, c.opLatency,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordCommit implements propgraph.MetricsCollector.
func (c *Collector) RecordCommit(mutations int) {
	c.commits.Inc()
	c.mutationsCommitted.Add(float64(mutations))
}

// RecordRevert implements propgraph.MetricsCollector.
func (c *Collector) RecordRevert(mutations int, err error) {
	c.reverts.WithLabelValues(status(err)).Inc()
	c.mutationsReverted.Add(float64(mutations))
}

// RecordMutation implements propgraph.MetricsCollector.
func (c *Collector) RecordMutation(op string, err error) {
	c.mutations.WithLabelValues(op, status(err)).Inc()
}

// RecordOperator implements propgraph.MetricsCollector.
func (c *Collector) RecordOperator(op string, d time.Duration, err error) {
	c.opLatency.WithLabelValues(op, status(err)).Observe(d.Seconds())
}
