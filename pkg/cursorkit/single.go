package cursorkit

import "go.llib.dev/traverse/internal/reflectkit"

// Single returns a cursor that yields exactly one value.
func Single[T any](v T) Cursor[T] {
	return &singleCursor[T]{value: v, pending: true}
}

// Optional returns a cursor that yields the value when it is present,
// and nothing when it is nil.
func Optional[T any](v T) Cursor[T] {
	return &singleCursor[T]{value: v, pending: !reflectkit.IsNil(v)}
}

type singleCursor[T any] struct {
	value   T
	pending bool
	taken   bool
}

func (c *singleCursor[T]) HasNext() bool { return c.pending }

func (c *singleCursor[T]) Next() (T, error) {
	if !c.pending {
		var zero T
		return zero, ErrExhausted
	}
	c.pending = false
	c.taken = true
	return c.value, nil
}

func (c *singleCursor[T]) Remove() error {
	if !c.taken {
		return ErrIllegalState
	}
	return ErrUnsupported
}

// Pair returns a cursor over the two values of a pair, first then second.
func Pair[T any](first, second T) Cursor[T] {
	return Slice([]T{first, second})
}

// Triple returns a cursor over the three values of a triple, in order.
func Triple[T any](first, second, third T) Cursor[T] {
	return Slice([]T{first, second, third})
}
