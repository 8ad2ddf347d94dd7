package assoc

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	errors2 "github.com/amp-labs/amp-assoc/errors"
	"github.com/amp-labs/amp-assoc/logger"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMetrics verifies that an instrumented sequence reports its operations.
// Each test uses its own sequence label, but the vectors are package globals.
//
//nolint:paralleltest // Test reads global Prometheus metric state
func TestMetrics(t *testing.T) {
	const name = "metrics-test"

	s := New[string, int](WithCapacity(2), WithMetrics(name))

	require.NoError(t, s.Set("a", 1))
	require.NoError(t, s.Set("b", 2))
	require.NoError(t, s.Set("c", 3))

	_, err := s.Get("missing")
	require.ErrorIs(t, err, errors2.ErrKeyNotFound)

	require.NoError(t, s.Remove("a"))

	assert.InDelta(t, 3, testutil.ToFloat64(sequenceOperations.WithLabelValues(name, opSet)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(sequenceOperations.WithLabelValues(name, opGet)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(sequenceOperations.WithLabelValues(name, opRemove)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(sequenceErrors.WithLabelValues(name, "key_not_found")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(sequenceExpansions.WithLabelValues(name)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(sequenceSize.WithLabelValues(name)), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(sequenceCapacity.WithLabelValues(name)), 0)

	s.Clear()
	assert.InDelta(t, 0, testutil.ToFloat64(sequenceSize.WithLabelValues(name)), 0)
}

//nolint:paralleltest // Test reads global Prometheus metric state
func TestMetrics_ErrorKinds(t *testing.T) {
	const name = "metrics-error-kinds"

	s := New[string, *int](WithMetrics(name))

	require.ErrorIs(t, s.Remove("a"), errors2.ErrEmptyCollection)
	require.ErrorIs(t, s.Set("a", nil), errors2.ErrInvalidArgument)

	_, err := s.At(3)
	require.ErrorIs(t, err, errors2.ErrIndexOutOfRange)

	_, err = s.Find("a")
	require.ErrorIs(t, err, errors2.ErrKeyNotFound)

	for _, kind := range []string{"empty_collection", "invalid_argument", "index_out_of_range", "key_not_found"} {
		assert.InDelta(t, 1, testutil.ToFloat64(sequenceErrors.WithLabelValues(name, kind)), 0, kind)
	}
}

//nolint:paralleltest // Test reads global Prometheus metric state
func TestMetrics_NotInstrumented(t *testing.T) {
	before := testutil.CollectAndCount(sequenceOperations)

	s := New[string, int]()
	require.NoError(t, s.Set("a", 1))
	_, _ = s.Get("b")

	assert.Equal(t, before, testutil.CollectAndCount(sequenceOperations))
}

//nolint:paralleltest // Test reads global Prometheus metric state
func TestMetrics_CloneIsNotInstrumented(t *testing.T) {
	const name = "metrics-clone"

	s := New[string, int](WithMetrics(name))
	require.NoError(t, s.Set("a", 1))

	c := s.Clone()
	require.NoError(t, c.Set("b", 2))

	assert.InDelta(t, 1, testutil.ToFloat64(sequenceOperations.WithLabelValues(name, opSet)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(sequenceSize.WithLabelValues(name)), 0)
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "key_not_found", errorKind(fmt.Errorf("wrapped: %w", errors2.ErrKeyNotFound)))
	assert.Equal(t, "other", errorKind(assert.AnError))
}

func TestFailures_AreAnnotated(t *testing.T) {
	t.Parallel()

	s := New[string, int](WithMetrics("annotated"))

	_, err := s.Get("zz")
	require.Error(t, err)

	attrs := logger.Attrs(err)
	require.Len(t, attrs, 3)
	assert.Equal(t, "sequence", attrs[0].Key)
	assert.Equal(t, "annotated", attrs[0].Value.String())
	assert.Equal(t, "op", attrs[1].Key)
	assert.Equal(t, opGet, attrs[1].Value.String())
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := New[int, int](WithCapacity(1), WithLogger(log), WithMetrics("logging"))
	require.NoError(t, s.Set(1, 1))
	require.NoError(t, s.Set(2, 2))

	assert.Contains(t, buf.String(), "expanded keyed sequence")
	assert.Contains(t, buf.String(), "sequence=logging")
	assert.Contains(t, buf.String(), "from=1 to=2")

	s.Clear()
	assert.Contains(t, buf.String(), "cleared keyed sequence")
	assert.Contains(t, buf.String(), "removed=2")
}
