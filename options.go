package bayesgo

import "github.com/hupe1980/bayesgo/countstore"

type options struct {
	weight       float64
	readOnly     bool
	logger       *Logger
	metrics      MetricsCollector
	storeOptions []countstore.BadgerOption
}

func defaultOptions() options {
	return options{
		weight:  1.0,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// Option configures a Classifier at construction time.
type Option func(*options)

// ReadOnly opens the classifier in classification-only mode. The underlying
// store is opened for reading, so any number of read-only classifiers may
// share one model directory. Train returns ErrReadOnly.
func ReadOnly() Option {
	return func(o *options) {
		o.readOnly = true
	}
}

// WithWeight sets the smoothing weight used by WeightedProbability. The
// default of 1.0 gives an unseen feature the pull of one neutral sample;
// larger weights damp rarely-seen features harder.
func WithWeight(weight float64) Option {
	return func(o *options) {
		o.weight = weight
	}
}

// WithLogger configures structured logging. The default discards all output.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}

// WithStoreOptions passes options through to the Badger store opened by
// Open. Ignored by New.
func WithStoreOptions(optFns ...countstore.BadgerOption) Option {
	return func(o *options) {
		o.storeOptions = append(o.storeOptions, optFns...)
	}
}

type classifyOptions struct {
	limit int
}

// ClassifyOption configures a single Classify call.
type ClassifyOption func(*classifyOptions)

// WithLimit caps the number of ranked categories Classify returns. Zero or
// negative means no cap.
func WithLimit(limit int) ClassifyOption {
	return func(o *classifyOptions) {
		o.limit = limit
	}
}
