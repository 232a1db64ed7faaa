package cursorkit

// Window is the element a LookAhead cursor is positioned at, along with the one that follows it.
// Upcoming is only meaningful when HasUpcoming is true.
type Window[T any] struct {
	Current     T
	Upcoming    T
	HasUpcoming bool
}

// LookAhead returns a cursor whose every element pairs an element of src with the next one.
// HasNext only reflects whether a current element exists.
// The pairs are made by the cursor itself, so Remove is unsupported.
func LookAhead[T any](src Cursor[T]) Cursor[Window[T]] {
	return &lookAheadCursor[T]{src: src}
}

type lookAheadCursor[T any] struct {
	src     Cursor[T]
	current buffered[T]
	primed  bool
	taken   bool
}

func (c *lookAheadCursor[T]) HasNext() bool {
	if !c.primed {
		c.primed = true
		if c.src.HasNext() {
			c.current = pull(c.src)
		}
	}
	return c.current.ok
}

func (c *lookAheadCursor[T]) Next() (Window[T], error) {
	if !c.HasNext() {
		return Window[T]{}, ErrExhausted
	}
	cur := c.current
	c.current = buffered[T]{}
	c.taken = true
	if cur.err != nil {
		c.primed = false
		return Window[T]{}, cur.err
	}
	w := Window[T]{Current: cur.value}
	if c.src.HasNext() {
		c.current = pull(c.src)
		if c.current.err == nil {
			w.Upcoming = c.current.value
			w.HasUpcoming = true
		}
	}
	return w, nil
}

func (c *lookAheadCursor[T]) Remove() error {
	if !c.taken {
		return ErrIllegalState
	}
	return ErrUnsupported
}
