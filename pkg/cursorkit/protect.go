package cursorkit

// Protect returns a cursor that reads src but refuses every Remove with ErrUnsupported.
func Protect[T any](src Cursor[T]) Cursor[T] {
	return &protectCursor[T]{src: src}
}

type protectCursor[T any] struct {
	src Cursor[T]
}

func (c *protectCursor[T]) HasNext() bool { return c.src.HasNext() }
func (c *protectCursor[T]) Next() (T, error) { return c.src.Next() }
func (c *protectCursor[T]) Remove() error { return ErrUnsupported }

// RemoveHandler returns a cursor that reads src,
// and hands the last returned element to handler on Remove instead of removing it from src.
// The handler's error is returned unchanged.
func RemoveHandler[T any](src Cursor[T], handler func(T) error) Cursor[T] {
	return &removeHandlerCursor[T]{src: src, handler: handler}
}

type removeHandlerCursor[T any] struct {
	src     Cursor[T]
	handler func(T) error
	last    buffered[T]
}

func (c *removeHandlerCursor[T]) HasNext() bool {
	return c.src.HasNext()
}

func (c *removeHandlerCursor[T]) Next() (T, error) {
	v, err := c.src.Next()
	c.last = buffered[T]{value: v, ok: err == nil}
	return v, err
}

func (c *removeHandlerCursor[T]) Remove() error {
	if !c.last.ok {
		return ErrIllegalState
	}
	v := c.last.value
	c.last = buffered[T]{}
	return c.handler(v)
}
