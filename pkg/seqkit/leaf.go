package seqkit

import (
	"bufio"

	"golang.org/x/exp/constraints"

	"go.llib.dev/traverse/internal/reflectkit"
	"go.llib.dev/traverse/pkg/cursorkit"
	"go.llib.dev/traverse/pkg/errorkit"
)

// Slice returns a reversible sequence over the elements of vs.
// The sequence reads vs itself, so its cursors observe later writes to the backing array.
//
// With WithReplacement, Remove overwrites the slot of the removed element with the replacement value,
// and the sequence is Removable.
func Slice[T any](vs []T, opts ...Option) (Sequence[T], error) {
	c, absent, err := prepare("Slice", vs, opts)
	if err != nil {
		return nil, err
	}
	if absent {
		return empty[T](), nil
	}
	replacement, ok, err := replacementOf[T](c)
	if err != nil {
		return nil, errorkit.At(errorkit.OpConstruct, "Slice", err)
	}
	if !ok {
		return newSequence(Repeatable,
			func() cursorkit.Cursor[T] { return cursorkit.Slice(vs) },
			func() cursorkit.Cursor[T] { return cursorkit.SliceBackward(vs) }), nil
	}
	return newSequence(Repeatable|Removable,
		func() cursorkit.Cursor[T] { return cursorkit.SliceWithReplacement(vs, replacement) },
		func() cursorkit.Cursor[T] { return cursorkit.SliceBackwardWithReplacement(vs, replacement) }), nil
}

// Values returns a read-only, reversible sequence over the given values.
func Values[T any](vs ...T) Sequence[T] {
	return newSequence(Repeatable,
		func() cursorkit.Cursor[T] { return cursorkit.Slice(vs) },
		func() cursorkit.Cursor[T] { return cursorkit.SliceBackward(vs) })
}

// Single returns a sequence that yields v once.
func Single[T any](v T) Sequence[T] {
	return newSequence(Repeatable, func() cursorkit.Cursor[T] { return cursorkit.Single(v) }, nil)
}

// Optional returns a sequence that yields v when it is present, and nothing when it is nil.
func Optional[T any](v T) Sequence[T] {
	return newSequence(Repeatable, func() cursorkit.Cursor[T] { return cursorkit.Optional(v) }, nil)
}

// FromPair returns a sequence over the two values of a pair.
func FromPair[T any](first, second T) Sequence[T] {
	return Values(first, second)
}

// FromTriple returns a sequence over the three values of a triple.
func FromTriple[T any](first, second, third T) Sequence[T] {
	return Values(first, second, third)
}

// CountUp returns a reversible sequence over the integers from `from` to `to`, both inclusive.
func CountUp[T constraints.Integer](from, to T) Sequence[T] {
	return newSequence(Repeatable,
		func() cursorkit.Cursor[T] { return cursorkit.CountUp(from, to) },
		func() cursorkit.Cursor[T] { return cursorkit.CountDown(to, from) })
}

// CountDown returns a reversible sequence over the integers from `from` down to `to`, both inclusive.
func CountDown[T constraints.Integer](from, to T) Sequence[T] {
	return newSequence(Repeatable,
		func() cursorkit.Cursor[T] { return cursorkit.CountDown(from, to) },
		func() cursorkit.Cursor[T] { return cursorkit.CountUp(to, from) })
}

// Infinite returns a sequence whose cursors never exhaust and take every element from the provider.
func Infinite[T any](provider func() (T, error)) (Sequence[T], error) {
	if err := checkCallback("Infinite", "provider", provider); err != nil {
		return nil, err
	}
	return newSequence(0, func() cursorkit.Cursor[T] { return cursorkit.Infinite(provider) }, nil), nil
}

// Enumeration returns a sequence over an enumeration-like source.
// The cursors share the state of the enumeration, so the sequence is not Repeatable.
func Enumeration[T any](e cursorkit.Enumerator[T], opts ...Option) (Sequence[T], error) {
	_, absent, err := prepare("Enumeration", e, opts)
	if err != nil {
		return nil, err
	}
	if absent {
		return empty[T](), nil
	}
	return newSequence(0, func() cursorkit.Cursor[T] { return cursorkit.Enumeration(e) }, nil), nil
}

// Indexed returns a sequence over a node-list-like source.
func Indexed[T any](src cursorkit.Indexer[T], opts ...Option) (Sequence[T], error) {
	_, absent, err := prepare("Indexed", src, opts)
	if err != nil {
		return nil, err
	}
	if absent {
		return empty[T](), nil
	}
	return newSequence(Repeatable, func() cursorkit.Cursor[T] { return cursorkit.Indexed(src) }, nil), nil
}

// Tokens returns a sequence over the tokens of the scanners open creates, one scanner per cursor.
// When open fails, the cursor yields the failure wrapped in cursorkit.ErrProvisioning.
func Tokens(open func() (*bufio.Scanner, error)) (Sequence[string], error) {
	if err := checkCallback("Tokens", "open", open); err != nil {
		return nil, err
	}
	return newSequence(Repeatable, func() cursorkit.Cursor[string] {
		sc, err := open()
		if err != nil {
			return cursorkit.Error[string](errorkit.At(errorkit.OpNext, "Tokens", cursorkit.ErrProvisioning.Wrap(err)))
		}
		if sc == nil {
			return cursorkit.Empty[string]()
		}
		return cursorkit.Tokens(sc)
	}, nil), nil
}

// MapKeys returns a sequence over the keys of m.
// Remove deletes the key from m.
func MapKeys[K comparable, V any](m map[K]V, opts ...Option) (Sequence[K], error) {
	_, absent, err := prepare("MapKeys", m, opts)
	if err != nil {
		return nil, err
	}
	if absent {
		return empty[K](), nil
	}
	return newSequence(Removable, func() cursorkit.Cursor[K] { return cursorkit.MapKeys(m) }, nil), nil
}

// Func returns a sequence that asks fn for every new cursor.
// A nil cursor from fn stands for an empty one.
func Func[T any](fn func() cursorkit.Cursor[T]) (Sequence[T], error) {
	if err := checkCallback("Func", "fn", fn); err != nil {
		return nil, err
	}
	return newSequence(0, func() cursorkit.Cursor[T] {
		c := fn()
		if reflectkit.IsNil(c) {
			return cursorkit.Empty[T]()
		}
		return c
	}, nil), nil
}
