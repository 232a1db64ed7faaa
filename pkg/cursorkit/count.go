package cursorkit

import "golang.org/x/exp/constraints"

// CountUp returns a cursor over the integers from `from` to `to`, both inclusive, in ascending order.
// When from is greater than to, the cursor is empty.
func CountUp[T constraints.Integer](from, to T) BidirectionalCursor[T] {
	if to < from {
		return &rangeCursor[T]{empty: true, end: true}
	}
	return &rangeCursor[T]{from: from, span: uint64(to) - uint64(from)}
}

// CountDown returns a cursor over the integers from `from` down to `to`, both inclusive.
// When from is less than to, the cursor is empty.
func CountDown[T constraints.Integer](from, to T) BidirectionalCursor[T] {
	if from < to {
		return &rangeCursor[T]{empty: true, end: true}
	}
	return &rangeCursor[T]{from: from, span: uint64(from) - uint64(to), down: true}
}

// rangeCursor walks the positions 0..span of an arithmetic range.
// The span is kept as an unsigned distance so the full range of any integer type fits.
// When end is set, the cursor sits after position span.
type rangeCursor[T constraints.Integer] struct {
	from  T
	span  uint64
	down  bool
	empty bool

	index uint64
	end   bool
}

func (c *rangeCursor[T]) at(i uint64) T {
	if c.down {
		return c.from - T(i)
	}
	return c.from + T(i)
}

func (c *rangeCursor[T]) HasNext() bool {
	return !c.end
}

func (c *rangeCursor[T]) Next() (T, error) {
	if c.end {
		return 0, ErrExhausted
	}
	v := c.at(c.index)
	if c.index == c.span {
		c.end = true
	} else {
		c.index++
	}
	return v, nil
}

func (c *rangeCursor[T]) HasPrevious() bool {
	if c.empty {
		return false
	}
	return c.end || 0 < c.index
}

func (c *rangeCursor[T]) Previous() (T, error) {
	if !c.HasPrevious() {
		return 0, ErrExhausted
	}
	if c.end {
		c.end = false
		return c.at(c.index), nil
	}
	c.index--
	return c.at(c.index), nil
}

func (c *rangeCursor[T]) Remove() error {
	return ErrUnsupported
}
