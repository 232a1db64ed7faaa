// Package cursorkit provides traversal cursors.
//
// # Summary
//
// A Cursor is a single-pass, forward-only reader over some data.
// It is created for one traversal and discarded once it is exhausted;
// it is never reset.
// Cursors are either leaf adapters, which read a concrete data source such as a slice,
// or decorators, which wrap another cursor and alter what it yields.
//
// Every cursor follows the same state machine:
//
//	not-started -> positioned -> exhausted
//	positioned  -> removed (one Remove is allowed before the next Next)
//
// Removal on a decorator is always forwarded exactly one level down, to the cursor it wraps.
// Values a decorator invented itself, like an infix or a suffix, cannot be removed.
//
// Cursors are not safe for concurrent use.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Decorator_pattern
package cursorkit

import "go.llib.dev/traverse/pkg/errorkit"

//go:generate mockgen -destination=../../internal/mocks/mock_cursor.go -package=mocks go.llib.dev/traverse/pkg/cursorkit Cursor

const (
	// ErrExhausted is returned by Next when the cursor has no more element.
	ErrExhausted errorkit.Error = "cursor is exhausted"
	// ErrIllegalState is returned by Remove when it is not called right after a Next.
	ErrIllegalState errorkit.Error = "remove is only allowed once after a Next"
	// ErrUnsupported is returned when the backing source cannot support the operation.
	ErrUnsupported errorkit.Error = "operation is not supported by the cursor"
	// ErrNilArgument is returned when a required argument is absent.
	ErrNilArgument errorkit.Error = "required argument is nil"
	// ErrConversion wraps the failure of a conversion callback.
	ErrConversion errorkit.Error = "conversion failed"
	// ErrProvisioning wraps the failure of a supplier callback.
	ErrProvisioning errorkit.Error = "provisioning failed"
)

// Cursor is a single-pass, stateful, forward-only traversal.
type Cursor[T any] interface {
	// HasNext reports whether Next would yield a value or a failure.
	// It is idempotent between two Next calls.
	HasNext() bool
	// Next returns the next value.
	// It fails with ErrExhausted when HasNext would report false.
	Next() (T, error)
	// Remove removes the last value returned by Next from the backing source.
	// It fails with ErrIllegalState when it is not preceded by a Next,
	// and with ErrUnsupported when the source cannot remove.
	Remove() error
}

// BidirectionalCursor is a Cursor that can also walk backwards.
// Remove removes the last value returned by either Next or Previous.
type BidirectionalCursor[T any] interface {
	Cursor[T]
	HasPrevious() bool
	Previous() (T, error)
}

// buffered is a value (or a failure) a decorator already pulled out of the cursor it wraps.
type buffered[T any] struct {
	value T
	err   error
	ok    bool
}

func pull[T any](c Cursor[T]) buffered[T] {
	v, err := c.Next()
	return buffered[T]{value: v, err: err, ok: true}
}
