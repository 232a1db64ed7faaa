// Package seqkit provides sequence producers.
//
// A Sequence is a re-invokable reference to some data.
// Every call to its Cursor method returns a fresh cursorkit.Cursor,
// bound to the data as it is at that moment.
// Producing a cursor never changes the sequence, nor the cursors already in flight.
//
// Leaf sequences read a concrete source, such as a slice, a map or a scanner.
// Decorator sequences wrap other sequences,
// and build a decorator cursor around the inner cursor on every traversal.
//
// Constructors that receive a backing source follow a single null policy.
// In the default, strict mode an absent source is an argument error.
// With the Lenient option, an absent source stands for an empty sequence.
// An absent callback is an argument error in both modes.
package seqkit

import (
	"iter"

	"go.llib.dev/traverse/pkg/cursorkit"
)

// Sequence is a producer of traversal cursors.
type Sequence[T any] interface {
	// Cursor returns a new cursor over the current data of the sequence.
	Cursor() cursorkit.Cursor[T]
}

// ReversibleSequence is a Sequence that can also be traversed from its end.
type ReversibleSequence[T any] interface {
	Sequence[T]
	// Backward returns a new cursor that walks the data from the last element to the first.
	Backward() cursorkit.Cursor[T]
}

// Capability flags declare what the cursors of a sequence support.
type Capability uint8

const (
	// Removable means Remove may succeed on the cursors of the sequence.
	Removable Capability = 1 << iota
	// Reversible means the sequence implements ReversibleSequence.
	Reversible
	// Repeatable means consecutive cursors yield the same elements,
	// given the backing data did not change in between.
	Repeatable
)

// Has reports whether every flag of oth is set in c.
func (c Capability) Has(oth Capability) bool { return c&oth == oth }

func (c Capability) String() string {
	var out string
	for _, f := range []struct {
		flag Capability
		name string
	}{{Removable, "removable"}, {Reversible, "reversible"}, {Repeatable, "repeatable"}} {
		if !c.Has(f.flag) {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += f.name
	}
	if out == "" {
		return "none"
	}
	return out
}

// Capable is implemented by sequences that declare their capabilities.
type Capable interface {
	Capabilities() Capability
}

// CapabilitiesOf returns the capabilities a sequence declares.
// A sequence that declares none has none.
func CapabilitiesOf[T any](seq Sequence[T]) Capability {
	if c, ok := seq.(Capable); ok {
		return c.Capabilities()
	}
	return 0
}

// All returns a range-over-func iterator, which traverses a new cursor of seq every time it is ranged over.
func All[T any](seq Sequence[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		cursorkit.Seq(seq.Cursor())(yield)
	}
}

// Collect traverses seq once and returns its elements.
func Collect[T any](seq Sequence[T]) ([]T, error) {
	return cursorkit.Collect(seq.Cursor())
}

// sequence is the Sequence implementation every constructor of the package builds on.
type sequence[T any] struct {
	forward func() cursorkit.Cursor[T]
	caps    Capability
}

func (s sequence[T]) Cursor() cursorkit.Cursor[T] { return s.forward() }

func (s sequence[T]) Capabilities() Capability { return s.caps &^ Reversible }

type reversibleSequence[T any] struct {
	sequence[T]
	backward func() cursorkit.Cursor[T]
}

func (s reversibleSequence[T]) Backward() cursorkit.Cursor[T] { return s.backward() }

func (s reversibleSequence[T]) Capabilities() Capability { return s.caps | Reversible }

// newSequence makes a Sequence out of cursor factories.
// When backward is given, the result is a ReversibleSequence.
func newSequence[T any](caps Capability, forward, backward func() cursorkit.Cursor[T]) Sequence[T] {
	s := sequence[T]{forward: forward, caps: caps}
	if backward == nil {
		return s
	}
	return reversibleSequence[T]{sequence: s, backward: backward}
}

func empty[T any]() Sequence[T] {
	return newSequence(Repeatable|Reversible, cursorkit.Empty[T], cursorkit.Empty[T])
}
