package cursorkit

import "go.llib.dev/traverse/internal/reflectkit"

// Filter returns a cursor that only yields the elements of src for which keep reports true.
// When invert is set, it yields the elements for which keep reports false instead.
//
// HasNext looks ahead eagerly and caches the element it found.
// A failure from src is yielded in place, so the caller sees it through Next.
// Remove is delegated to src, unless HasNext already read past the last returned element,
// in which case src no longer points at it and Remove fails with ErrIllegalState.
func Filter[T any](src Cursor[T], keep func(T) bool, invert bool) Cursor[T] {
	return &filterCursor[T]{src: src, keep: keep, invert: invert}
}

// NullFree returns a cursor that skips the nil elements of src.
func NullFree[T any](src Cursor[T]) Cursor[T] {
	return Filter(src, func(v T) bool { return !reflectkit.IsNil(v) }, false)
}

type filterCursor[T any] struct {
	src    Cursor[T]
	keep   func(T) bool
	invert bool

	next     buffered[T]
	advanced bool
	taken    bool
}

func (c *filterCursor[T]) HasNext() bool {
	if c.next.ok {
		return true
	}
	for c.src.HasNext() {
		b := pull(c.src)
		c.advanced = true
		if b.err != nil || c.keep(b.value) != c.invert {
			c.next = b
			return true
		}
	}
	return false
}

func (c *filterCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, ErrExhausted
	}
	n := c.next
	c.next = buffered[T]{}
	c.advanced = false
	c.taken = n.err == nil
	return n.value, n.err
}

func (c *filterCursor[T]) Remove() error {
	if !c.taken || c.advanced {
		return ErrIllegalState
	}
	if err := c.src.Remove(); err != nil {
		return err
	}
	c.taken = false
	return nil
}
