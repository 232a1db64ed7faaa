package cursorkit

// Empty returns a cursor that is exhausted from the start.
func Empty[T any]() Cursor[T] {
	return emptyCursor[T]{}
}

type emptyCursor[T any] struct{}

func (emptyCursor[T]) HasNext() bool { return false }

func (emptyCursor[T]) Next() (T, error) {
	var zero T
	return zero, ErrExhausted
}

func (emptyCursor[T]) Remove() error { return ErrIllegalState }

// Error returns a cursor which yields the given failure once from Next, then becomes exhausted.
// It is useful when a sequence cannot build its cursor but the caller expects one.
func Error[T any](err error) Cursor[T] {
	return &errorCursor[T]{err: err}
}

type errorCursor[T any] struct {
	err  error
	done bool
}

func (c *errorCursor[T]) HasNext() bool {
	return !c.done && c.err != nil
}

func (c *errorCursor[T]) Next() (T, error) {
	var zero T
	if !c.HasNext() {
		return zero, ErrExhausted
	}
	c.done = true
	return zero, c.err
}

func (c *errorCursor[T]) Remove() error { return ErrIllegalState }
