package cursorkit

// Slice returns a cursor over the elements of a slice, in index order.
// The cursor reads the slice it was given, not a copy,
// so it observes writes made to the backing array.
//
// Removal is not supported, since a slice cannot shrink in place.
// Use SliceWithReplacement when removal should overwrite the slot instead.
func Slice[T any](values []T) *SliceCursor[T] {
	return &SliceCursor[T]{values: values, last: -1}
}

// SliceWithReplacement returns a cursor over the elements of a slice,
// whose Remove overwrites the slot of the last returned element with the replacement value.
// The write goes to the slice's backing array, so it is visible to every holder of the slice.
func SliceWithReplacement[T any](values []T, replacement T) *SliceCursor[T] {
	return &SliceCursor[T]{
		values:         values,
		replacement:    replacement,
		hasReplacement: true,
		last:           -1,
	}
}

// SliceBackward returns a cursor that walks a slice from its last element to its first.
func SliceBackward[T any](values []T) Cursor[T] {
	return Reverse[T](&SliceCursor[T]{values: values, index: len(values), last: -1})
}

// SliceBackwardWithReplacement is the backward counterpart of SliceWithReplacement.
func SliceBackwardWithReplacement[T any](values []T, replacement T) Cursor[T] {
	return Reverse[T](&SliceCursor[T]{
		values:         values,
		replacement:    replacement,
		hasReplacement: true,
		index:          len(values),
		last:           -1,
	})
}

// SliceCursor is a bidirectional cursor over a slice.
// It sits between two elements: index is the position of the element Next would return.
type SliceCursor[T any] struct {
	values         []T
	replacement    T
	hasReplacement bool

	index int
	last  int
}

func (c *SliceCursor[T]) HasNext() bool {
	return c.index < len(c.values)
}

func (c *SliceCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, ErrExhausted
	}
	c.last = c.index
	c.index++
	return c.values[c.last], nil
}

func (c *SliceCursor[T]) HasPrevious() bool {
	return 0 < c.index && c.index <= len(c.values)
}

func (c *SliceCursor[T]) Previous() (T, error) {
	if !c.HasPrevious() {
		var zero T
		return zero, ErrExhausted
	}
	c.index--
	c.last = c.index
	return c.values[c.last], nil
}

func (c *SliceCursor[T]) Remove() error {
	if !c.hasReplacement {
		return ErrUnsupported
	}
	if c.last < 0 {
		return ErrIllegalState
	}
	c.values[c.last] = c.replacement
	c.last = -1
	return nil
}
