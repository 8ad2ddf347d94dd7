package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError wraps an error with structured logging attributes (slog key-value pairs).
// When the returned error is logged through a handler installed by ConfigureLoggingWithOptions,
// the attributes are pulled out of the error and added to the log record.
//
// The wrapper unwraps to err, so errors.Is and errors.As keep working.
//
// Example:
//
//	if !found {
//	    return AnnotateError(fmt.Errorf("%w: %v", ErrKeyNotFound, key), "sequence", name)
//	}
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var errAttrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		errAttrs = append(errAttrs, attr)

		return true
	})

	return &annotatedError{
		err:   err,
		attrs: errAttrs,
	}
}

// Attrs returns the attributes attached to err by AnnotateError, searching the
// whole wrap chain. Returns nil if err carries none.
func Attrs(err error) []slog.Attr {
	var ae *annotatedError

	if !errors.As(err, &ae) {
		return nil
	}

	return ae.attrs
}

type annotatedError struct {
	err   error
	attrs []slog.Attr
}

func (a *annotatedError) Error() string {
	return a.err.Error()
}

func (a *annotatedError) Unwrap() error {
	return a.err
}

var _ error = (*annotatedError)(nil)

// annotatedErrorHandler is a slog.Handler decorator. For every error attribute
// built by AnnotateError it logs the underlying error under the same key and
// appends the annotation's attributes to the record.
type annotatedErrorHandler struct {
	inner slog.Handler
}

var _ slog.Handler = (*annotatedErrorHandler)(nil)

func (h *annotatedErrorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *annotatedErrorHandler) Handle(ctx context.Context, record slog.Record) error {
	var (
		baseAttrs []slog.Attr
		errAttrs  []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok {
			var ae *annotatedError

			if errors.As(err, &ae) {
				baseAttrs = append(baseAttrs, slog.Any(attr.Key, ae.err))
				errAttrs = append(errAttrs, ae.attrs...)

				return true
			}
		}

		baseAttrs = append(baseAttrs, attr)

		return true
	})

	if len(errAttrs) == 0 {
		return h.inner.Handle(ctx, record)
	}

	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	r.AddAttrs(baseAttrs...)
	r.AddAttrs(errAttrs...)

	return h.inner.Handle(ctx, r)
}

func (h *annotatedErrorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &annotatedErrorHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *annotatedErrorHandler) WithGroup(name string) slog.Handler {
	return &annotatedErrorHandler{inner: h.inner.WithGroup(name)}
}
