package seqkit

import (
	"context"
	"sync/atomic"

	"go.llib.dev/traverse/pkg/cursorkit"
	"go.llib.dev/traverse/pkg/errorkit"
	"go.llib.dev/traverse/pkg/logger"
)

// Logged returns a sequence that traces the traversals of seq at debug level.
// Every cursor gets a sequential id, and each Next, Remove and the exhaustion is logged with it.
// Failures are logged with the protocol step they happened at.
// Use WithLogger to send the trace somewhere else than logger.Default.
func Logged[T any](seq Sequence[T], name string, opts ...Option) (Sequence[T], error) {
	c, absent, err := prepare("Logged", seq, opts)
	if err != nil {
		return nil, err
	}
	if absent {
		return empty[T](), nil
	}
	var (
		l     = c.Logger
		count atomic.Int64
	)
	failed := func(ctx context.Context, msg string, err error) {
		ds := []logger.LoggingDetail{logger.ErrField(err)}
		if op, ok := errorkit.OpOf(err); ok {
			ds = append(ds, logger.Field("op", string(op)))
		}
		l.Debug(ctx, msg, ds...)
	}
	trace := func(direction string, src cursorkit.Cursor[T]) cursorkit.Cursor[T] {
		ctx := logger.ContextWith(context.Background(), logger.Fields{
			"sequence":  name,
			"cursor":    count.Add(1),
			"direction": direction,
		})
		l.Debug(ctx, "cursor created")
		return cursorkit.WithCallback(src, cursorkit.Callback[T]{
			OnNext: func(v T, err error) {
				if err != nil {
					failed(ctx, "next failed", err)
					return
				}
				l.Debug(ctx, "next", logger.Field("value", v))
			},
			OnRemove: func(err error) {
				if err != nil {
					failed(ctx, "remove failed", err)
					return
				}
				l.Debug(ctx, "removed")
			},
			OnExhausted: func() {
				l.Debug(ctx, "cursor exhausted")
			},
		})
	}
	var backward func() cursorkit.Cursor[T]
	if r, ok := seq.(ReversibleSequence[T]); ok {
		backward = func() cursorkit.Cursor[T] { return trace("backward", r.Backward()) }
	}
	return newSequence(CapabilitiesOf(seq), func() cursorkit.Cursor[T] {
		return trace("forward", seq.Cursor())
	}, backward), nil
}
