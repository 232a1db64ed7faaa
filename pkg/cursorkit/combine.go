package cursorkit

// Combine returns a cursor that exhausts each of the given cursors in turn.
// With no cursor, the result is exhausted from the start.
func Combine[T any](cs ...Cursor[T]) Cursor[T] {
	return Flatten[T](Slice(cs))
}

// Flatten returns a cursor over the elements of every cursor src yields, in supply order.
// A nil inner cursor is skipped.
// Remove is delegated to the inner cursor that yielded the last element.
func Flatten[T any](src Cursor[Cursor[T]]) Cursor[T] {
	return &flattenCursor[T]{src: src}
}

type flattenCursor[T any] struct {
	src     Cursor[Cursor[T]]
	current Cursor[T]
	last    Cursor[T]
	err     error
}

func (c *flattenCursor[T]) HasNext() bool {
	for {
		if c.err != nil {
			return true
		}
		if c.current != nil && c.current.HasNext() {
			return true
		}
		if !c.src.HasNext() {
			return false
		}
		next, err := c.src.Next()
		if err != nil {
			c.err = err
			continue
		}
		c.current = next
	}
}

func (c *flattenCursor[T]) Next() (T, error) {
	var zero T
	if !c.HasNext() {
		return zero, ErrExhausted
	}
	if c.err != nil {
		err := c.err
		c.err = nil
		return zero, err
	}
	c.last = c.current
	return c.current.Next()
}

func (c *flattenCursor[T]) Remove() error {
	if c.last == nil {
		return ErrIllegalState
	}
	return c.last.Remove()
}
