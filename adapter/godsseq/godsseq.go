// Package godsseq exposes a gods list as a sequence.
package godsseq

import (
	"github.com/emirpasic/gods/lists"

	"go.llib.dev/traverse/internal/reflectkit"
	"go.llib.dev/traverse/pkg/cursorkit"
	"go.llib.dev/traverse/pkg/errorkit"
	"go.llib.dev/traverse/pkg/seqkit"
)

// ErrElementType is returned by Next when an element of the list is not of the expected type.
const ErrElementType errorkit.Error = "list element has an unexpected type"

// New returns a reversible, removable sequence over l.
// The cursors read the live list: Remove removes the element from it,
// and elements added in front of the cursor are visited.
func New[T any](l lists.List) (*List[T], error) {
	if reflectkit.IsNil(l) {
		return nil, errorkit.At(errorkit.OpConstruct, "godsseq.New", cursorkit.ErrNilArgument.F("list is absent"))
	}
	return &List[T]{list: l}, nil
}

type List[T any] struct {
	list lists.List
}

func (l *List[T]) Cursor() cursorkit.Cursor[T] {
	return &listCursor[T]{list: l.list, last: -1}
}

func (l *List[T]) Backward() cursorkit.Cursor[T] {
	return cursorkit.Reverse[T](&listCursor[T]{list: l.list, index: l.list.Size(), last: -1})
}

func (l *List[T]) Capabilities() seqkit.Capability {
	return seqkit.Removable | seqkit.Reversible | seqkit.Repeatable
}

type listCursor[T any] struct {
	list  lists.List
	index int
	last  int
}

func (c *listCursor[T]) HasNext() bool {
	return c.index < c.list.Size()
}

func (c *listCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, cursorkit.ErrExhausted
	}
	c.last = c.index
	c.index++
	return c.get(errorkit.OpNext, c.last)
}

func (c *listCursor[T]) HasPrevious() bool {
	return 0 < c.index && c.index <= c.list.Size()
}

func (c *listCursor[T]) Previous() (T, error) {
	if !c.HasPrevious() {
		var zero T
		return zero, cursorkit.ErrExhausted
	}
	c.index--
	c.last = c.index
	return c.get(errorkit.OpPrevious, c.last)
}

func (c *listCursor[T]) Remove() error {
	if c.last < 0 {
		return cursorkit.ErrIllegalState
	}
	c.list.Remove(c.last)
	if c.last < c.index {
		c.index--
	}
	c.last = -1
	return nil
}

func (c *listCursor[T]) get(op errorkit.Op, i int) (T, error) {
	var zero T
	raw, ok := c.list.Get(i)
	if !ok {
		return zero, cursorkit.ErrExhausted
	}
	if raw == nil {
		return zero, nil
	}
	v, ok := raw.(T)
	if !ok {
		return zero, errorkit.At(op, "godsseq", ErrElementType.F("%T at index %d", raw, i))
	}
	return v, nil
}
