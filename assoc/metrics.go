package assoc

import (
	"errors"

	errors2 "github.com/amp-labs/amp-assoc/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opSet    = "set"
	opGet    = "get"
	opFind   = "find"
	opRemove = "remove"
	opAt     = "at"
)

var (
	sequenceOperations = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "keyed_sequence_operations_total",
		Help: "The total number of operations performed on a keyed sequence",
	}, []string{"sequence", "op"})

	sequenceErrors = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "keyed_sequence_errors_total",
		Help: "The total number of failed keyed sequence operations, by error kind",
	}, []string{"sequence", "kind"})

	sequenceExpansions = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "keyed_sequence_expansions_total",
		Help: "The total number of times a keyed sequence grew its backing buffer",
	}, []string{"sequence"})

	sequenceSize = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "keyed_sequence_size",
		Help: "The number of live pairs in a keyed sequence",
	}, []string{"sequence"})

	sequenceCapacity = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "keyed_sequence_capacity",
		Help: "The number of slots in a keyed sequence's backing buffer",
	}, []string{"sequence"})
)

// errorKind maps an error onto the kind label used by keyed_sequence_errors_total.
func errorKind(err error) string {
	switch {
	case errors.Is(err, errors2.ErrKeyNotFound):
		return "key_not_found"
	case errors.Is(err, errors2.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, errors2.ErrEmptyCollection):
		return "empty_collection"
	case errors.Is(err, errors2.ErrIndexOutOfRange):
		return "index_out_of_range"
	default:
		return "other"
	}
}

func (o options) instrumented() bool {
	return o.name != ""
}

func (o options) recordOp(op string) {
	if o.instrumented() {
		sequenceOperations.WithLabelValues(o.name, op).Inc()
	}
}

func (o options) recordError(err error) {
	if o.instrumented() {
		sequenceErrors.WithLabelValues(o.name, errorKind(err)).Inc()
	}
}

func (o options) recordExpansion() {
	if o.instrumented() {
		sequenceExpansions.WithLabelValues(o.name).Inc()
	}
}

func (o options) recordShape(size, capacity int) {
	if o.instrumented() {
		sequenceSize.WithLabelValues(o.name).Set(float64(size))
		sequenceCapacity.WithLabelValues(o.name).Set(float64(capacity))
	}
}
