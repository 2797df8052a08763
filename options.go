package labelvec

import "github.com/hupe1980/labelvec/subset"

type options struct {
	view    subset.View
	logger  *Logger
	metrics MetricsCollector
}

func defaultOptions() options {
	return options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// Option configures a DenseLabels.
type Option func(*options)

// WithView injects the subset view consulted on every access.
// By default each store gets its own subset.Active.
func WithView(v subset.View) Option {
	return func(o *options) {
		o.view = v
	}
}

// WithLogger sets the logger. nil disables logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. nil disables metrics.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
