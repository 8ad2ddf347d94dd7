package assoc

import "log/slog"

// DefaultCapacity is the number of slots a KeyedSequence starts with
// when WithCapacity is not given.
const DefaultCapacity = 16

type options struct {
	capacity int
	logger   *slog.Logger
	name     string // metrics label, empty means not instrumented
}

// Option configures a KeyedSequence at construction time.
type Option func(*options)

// WithCapacity sets the starting capacity. Values below 1 are raised to 1.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = max(1, capacity)
	}
}

// WithLogger sets the logger used for debug output about growth and clearing.
// Without it the sequence logs through logger.Get().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics turns on prometheus instrumentation, reporting under the given
// sequence label. Two live sequences should not share a label, since the size
// and capacity gauges would overwrite each other.
func WithMetrics(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts []Option) options {
	o := options{
		capacity: DefaultCapacity,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
