package cursorkit

// Infix returns a cursor that yields the infix value strictly between two consecutive elements of src.
// Removing an element is delegated to src, removing the infix is unsupported.
func Infix[T any](src Cursor[T], infix T) Cursor[T] {
	return &infixCursor[T]{src: src, infix: infix}
}

type infixCursor[T any] struct {
	src   Cursor[T]
	infix T

	infixNext bool
	lastInfix bool
	taken     bool
}

func (c *infixCursor[T]) HasNext() bool {
	return c.src.HasNext()
}

func (c *infixCursor[T]) Next() (T, error) {
	if !c.src.HasNext() {
		var zero T
		return zero, ErrExhausted
	}
	if c.infixNext {
		c.infixNext = false
		c.lastInfix = true
		return c.infix, nil
	}
	v, err := c.src.Next()
	c.lastInfix = false
	c.taken = err == nil
	c.infixNext = err == nil
	return v, err
}

func (c *infixCursor[T]) Remove() error {
	if c.lastInfix {
		return ErrUnsupported
	}
	if !c.taken {
		return ErrIllegalState
	}
	return c.src.Remove()
}

// Suffix returns a cursor that yields every element of src, then the suffix values in order.
// Removing an element is delegated to src, removing a suffix value is unsupported.
func Suffix[T any](src Cursor[T], suffixes ...T) Cursor[T] {
	return &suffixCursor[T]{src: src, suffixes: suffixes}
}

type suffixCursor[T any] struct {
	src      Cursor[T]
	suffixes []T
	index    int
	inSuffix bool
	taken    bool
}

func (c *suffixCursor[T]) HasNext() bool {
	return c.index < len(c.suffixes) || c.src.HasNext()
}

func (c *suffixCursor[T]) Next() (T, error) {
	if c.index == 0 && c.src.HasNext() {
		v, err := c.src.Next()
		c.taken = err == nil
		return v, err
	}
	if c.index < len(c.suffixes) {
		v := c.suffixes[c.index]
		c.index++
		c.inSuffix = true
		return v, nil
	}
	var zero T
	return zero, ErrExhausted
}

func (c *suffixCursor[T]) Remove() error {
	if c.inSuffix {
		return ErrUnsupported
	}
	if !c.taken {
		return ErrIllegalState
	}
	return c.src.Remove()
}
