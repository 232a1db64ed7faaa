package cursorkit

// Callback holds the hooks of WithCallback. Any of them may be nil.
type Callback[T any] struct {
	// OnNext receives the outcome of every Next call.
	OnNext func(v T, err error)
	// OnRemove receives the outcome of every Remove call.
	OnRemove func(err error)
	// OnExhausted is called once, the first time HasNext reports false.
	OnExhausted func()
}

// WithCallback returns a cursor that behaves like src while reporting its calls to the callback.
func WithCallback[T any](src Cursor[T], cb Callback[T]) Cursor[T] {
	return &callbackCursor[T]{src: src, cb: cb}
}

type callbackCursor[T any] struct {
	src       Cursor[T]
	cb        Callback[T]
	exhausted bool
}

func (c *callbackCursor[T]) HasNext() bool {
	ok := c.src.HasNext()
	if !ok && !c.exhausted {
		c.exhausted = true
		if c.cb.OnExhausted != nil {
			c.cb.OnExhausted()
		}
	}
	return ok
}

func (c *callbackCursor[T]) Next() (T, error) {
	v, err := c.src.Next()
	if c.cb.OnNext != nil {
		c.cb.OnNext(v, err)
	}
	return v, err
}

func (c *callbackCursor[T]) Remove() error {
	err := c.src.Remove()
	if c.cb.OnRemove != nil {
		c.cb.OnRemove(err)
	}
	return err
}
