package cursorkit

// Reverse turns a BidirectionalCursor around:
// Next walks backwards and Previous walks forward.
// Remove is forwarded unchanged.
func Reverse[T any](c BidirectionalCursor[T]) BidirectionalCursor[T] {
	if r, ok := c.(*reverseCursor[T]); ok {
		return r.src
	}
	return &reverseCursor[T]{src: c}
}

type reverseCursor[T any] struct {
	src BidirectionalCursor[T]
}

func (c *reverseCursor[T]) HasNext() bool { return c.src.HasPrevious() }
func (c *reverseCursor[T]) Next() (T, error) { return c.src.Previous() }
func (c *reverseCursor[T]) HasPrevious() bool { return c.src.HasNext() }
func (c *reverseCursor[T]) Previous() (T, error) { return c.src.Next() }
func (c *reverseCursor[T]) Remove() error { return c.src.Remove() }
