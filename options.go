package propgraph

import (
	"log/slog"
)

type options struct {
	metricsCollector   MetricsCollector
	logger             *Logger
	vertexCapacity     int
	vertexTypeCapacity int
	edgeTypeCapacity   int
	maxWorkers         int64
}

// Option configures a Graph.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring
// transactions and operators. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &propgraph.BasicMetricsCollector{}
//	g := propgraph.New(propgraph.WithMetricsCollector(metrics))
//	// ... use g ...
//	stats := metrics.GetStats()
//	fmt.Printf("Commits: %d, Reverts: %d\n", stats.CommitCount, stats.RevertCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for transactions and operators.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := propgraph.NewJSONLogger(slog.LevelDebug)
//	g := propgraph.New(propgraph.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithInitialVertexCapacity sets the number of vertex slots allocated up
// front. Capacity doubles on demand, resizing every vertex and edge type.
func WithInitialVertexCapacity(n int) Option {
	return func(o *options) {
		o.vertexCapacity = n
	}
}

// WithInitialVertexTypeCapacity sets the number of vertex type slots
// allocated up front.
func WithInitialVertexTypeCapacity(n int) Option {
	return func(o *options) {
		o.vertexTypeCapacity = n
	}
}

// WithInitialEdgeTypeCapacity sets the number of edge type slots allocated
// up front.
func WithInitialEdgeTypeCapacity(n int) Option {
	return func(o *options) {
		o.edgeTypeCapacity = n
	}
}

// WithMaxWorkers bounds the goroutines used by parallel read queries such
// as OutDegree and Stats. If n <= 0, GOMAXPROCS is used.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.maxWorkers = int64(n)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector:   NoopMetricsCollector{},
		logger:             NoopLogger(),
		vertexCapacity:     DefaultVertexCapacity,
		vertexTypeCapacity: DefaultTypeCapacity,
		edgeTypeCapacity:   DefaultTypeCapacity,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
