package cursorkit

import "bufio"

// Enumerator is an external, enumeration-like source.
type Enumerator[T any] interface {
	HasMoreElements() bool
	NextElement() (T, error)
}

// Enumeration returns a cursor over an Enumerator.
// Enumerations are read-only, so Remove is unsupported.
func Enumeration[T any](e Enumerator[T]) Cursor[T] {
	return &enumerationCursor[T]{src: e}
}

type enumerationCursor[T any] struct {
	src   Enumerator[T]
	taken bool
}

func (c *enumerationCursor[T]) HasNext() bool {
	return c.src.HasMoreElements()
}

func (c *enumerationCursor[T]) Next() (T, error) {
	if !c.src.HasMoreElements() {
		var zero T
		return zero, ErrExhausted
	}
	c.taken = true
	return c.src.NextElement()
}

func (c *enumerationCursor[T]) Remove() error {
	if !c.taken {
		return ErrIllegalState
	}
	return ErrUnsupported
}

// Indexer is a node-list-like source: a length and positional access.
type Indexer[T any] interface {
	Len() int
	Item(i int) T
}

// Indexed returns a cursor over an Indexer, from position 0 to Len()-1.
// The length is read on every HasNext, so the cursor follows a live source.
func Indexed[T any](src Indexer[T]) Cursor[T] {
	return &indexedCursor[T]{src: src}
}

type indexedCursor[T any] struct {
	src   Indexer[T]
	index int
	taken bool
}

func (c *indexedCursor[T]) HasNext() bool {
	return c.index < c.src.Len()
}

func (c *indexedCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, ErrExhausted
	}
	v := c.src.Item(c.index)
	c.index++
	c.taken = true
	return v, nil
}

func (c *indexedCursor[T]) Remove() error {
	if !c.taken {
		return ErrIllegalState
	}
	return ErrUnsupported
}

// Tokens returns a cursor over the tokens of a bufio.Scanner.
// The scanner's split function decides what a token is.
// A scanning failure is returned by the Next call that would have yielded the next token.
func Tokens(s *bufio.Scanner) Cursor[string] {
	return &tokenCursor{scanner: s}
}

type tokenCursor struct {
	scanner *bufio.Scanner
	next    buffered[string]
	done    bool
	taken   bool
}

func (c *tokenCursor) HasNext() bool {
	if c.next.ok {
		return true
	}
	if c.done {
		return false
	}
	if c.scanner.Scan() {
		c.next = buffered[string]{value: c.scanner.Text(), ok: true}
		return true
	}
	c.done = true
	if err := c.scanner.Err(); err != nil {
		c.next = buffered[string]{err: err, ok: true}
		return true
	}
	return false
}

func (c *tokenCursor) Next() (string, error) {
	if !c.HasNext() {
		return "", ErrExhausted
	}
	n := c.next
	c.next = buffered[string]{}
	c.taken = true
	return n.value, n.err
}

func (c *tokenCursor) Remove() error {
	if !c.taken {
		return ErrIllegalState
	}
	return ErrUnsupported
}

// MapKeys returns a cursor over the keys of a map.
// The keys are captured when the cursor is created, in the map's iteration order.
// Remove deletes the last returned key from the map.
func MapKeys[K comparable, V any](m map[K]V) Cursor[K] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return &mapKeysCursor[K, V]{m: m, keys: keys, last: -1}
}

type mapKeysCursor[K comparable, V any] struct {
	m     map[K]V
	keys  []K
	index int
	last  int
}

func (c *mapKeysCursor[K, V]) HasNext() bool {
	return c.index < len(c.keys)
}

func (c *mapKeysCursor[K, V]) Next() (K, error) {
	if !c.HasNext() {
		var zero K
		return zero, ErrExhausted
	}
	c.last = c.index
	c.index++
	return c.keys[c.last], nil
}

func (c *mapKeysCursor[K, V]) Remove() error {
	if c.last < 0 {
		return ErrIllegalState
	}
	delete(c.m, c.keys[c.last])
	c.last = -1
	return nil
}

// FromPull returns a cursor over a pull function, like the one iter.Pull returns.
// stop is optional, and it is called once the pull function reports no more value.
func FromPull[T any](next func() (T, bool), stop func()) Cursor[T] {
	return &pullCursor[T]{next: next, stop: stop}
}

type pullCursor[T any] struct {
	next  func() (T, bool)
	stop  func()
	value buffered[T]
	done  bool
	taken bool
}

func (c *pullCursor[T]) HasNext() bool {
	if c.value.ok {
		return true
	}
	if c.done {
		return false
	}
	v, ok := c.next()
	if !ok {
		c.done = true
		if c.stop != nil {
			c.stop()
		}
		return false
	}
	c.value = buffered[T]{value: v, ok: true}
	return true
}

func (c *pullCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, ErrExhausted
	}
	v := c.value.value
	c.value = buffered[T]{}
	c.taken = true
	return v, nil
}

func (c *pullCursor[T]) Remove() error {
	if !c.taken {
		return ErrIllegalState
	}
	return ErrUnsupported
}
