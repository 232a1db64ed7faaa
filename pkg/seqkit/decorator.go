package seqkit

import (
	"strconv"

	"go.llib.dev/traverse/internal/reflectkit"
	"go.llib.dev/traverse/pkg/cursorkit"
	"go.llib.dev/traverse/pkg/errorkit"
)

// Filter returns a sequence of the elements of seq for which keep reports true.
func Filter[T any](seq Sequence[T], keep func(T) bool, opts ...Option) (Sequence[T], error) {
	return filter(seq, keep, false, "Filter", opts)
}

// FilterNot returns a sequence of the elements of seq for which keep reports false.
func FilterNot[T any](seq Sequence[T], keep func(T) bool, opts ...Option) (Sequence[T], error) {
	return filter(seq, keep, true, "FilterNot", opts)
}

func filter[T any](seq Sequence[T], keep func(T) bool, invert bool, constructor string, opts []Option) (Sequence[T], error) {
	if err := checkCallback(constructor, "predicate", keep); err != nil {
		return nil, err
	}
	_, absent, err := prepare(constructor, seq, opts)
	if err != nil {
		return nil, err
	}
	if absent {
		return empty[T](), nil
	}
	return newSequence(CapabilitiesOf(seq)&(Removable|Repeatable), func() cursorkit.Cursor[T] {
		return cursorkit.Filter(seq.Cursor(), keep, invert)
	}, nil), nil
}

// NullFree returns a sequence of the present elements of seq.
func NullFree[T any](seq Sequence[T], opts ...Option) (Sequence[T], error) {
	return filter(seq, func(v T) bool { return !reflectkit.IsNil(v) }, false, "NullFree", opts)
}

// Convert returns a sequence of fn applied to every element of seq.
// The failures of fn surface from the cursor's Next, wrapped in cursorkit.ErrConversion.
func Convert[From, To any](seq Sequence[From], fn func(From) (To, error), opts ...Option) (Sequence[To], error) {
	if err := checkCallback("Convert", "converter", fn); err != nil {
		return nil, err
	}
	_, absent, err := prepare("Convert", seq, opts)
	if err != nil {
		return nil, err
	}
	if absent {
		return empty[To](), nil
	}
	return newSequence(CapabilitiesOf(seq)&(Removable|Repeatable), func() cursorkit.Cursor[To] {
		return cursorkit.Convert(seq.Cursor(), fn)
	}, nil), nil
}

// Combine returns the concatenation of the given sequences, in order.
// An absent sequence is an argument error in strict mode, and skipped in lenient mode.
// In strict mode every absent position is reported.
func Combine[T any](seqs []Sequence[T], opts ...Option) (Sequence[T], error) {
	c, err := toConfig("Combine", opts)
	if err != nil {
		return nil, err
	}
	var (
		present []Sequence[T]
		errs    []error
	)
	caps := Removable | Repeatable
	for i, seq := range seqs {
		absent, err := c.checkSource("Combine#"+strconv.Itoa(i), seq)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if absent {
			continue
		}
		present = append(present, seq)
		caps &= CapabilitiesOf(seq)
	}
	if err := errorkit.Merge(errs...); err != nil {
		return nil, err
	}
	if len(present) == 0 {
		return empty[T](), nil
	}
	return newSequence(caps, func() cursorkit.Cursor[T] {
		return cursorkit.Flatten[T](cursorkit.Convert[Sequence[T], cursorkit.Cursor[T]](cursorkit.Slice(present), toCursor[T]))
	}, nil), nil
}

// Flatten returns the concatenation of the sequences seq yields.
// The inner sequences are traversed lazily, one after the other; absent ones are skipped.
func Flatten[T any](seq Sequence[Sequence[T]], opts ...Option) (Sequence[T], error) {
	_, absent, err := prepare("Flatten", seq, opts)
	if err != nil {
		return nil, err
	}
	if absent {
		return empty[T](), nil
	}
	return newSequence(CapabilitiesOf(seq)&Repeatable, func() cursorkit.Cursor[T] {
		return cursorkit.Flatten(cursorkit.Convert(seq.Cursor(), toCursor[T]))
	}, nil), nil
}

func toCursor[T any](seq Sequence[T]) (cursorkit.Cursor[T], error) {
	if reflectkit.IsNil(seq) {
		return nil, nil
	}
	return seq.Cursor(), nil
}

// NullSafe returns a sequence that delegates to seq, or is empty when seq is absent.
// The reference is checked every time a cursor is requested.
func NullSafe[T any](seq Sequence[T]) Sequence[T] {
	return nullSafe[T]{src: seq}
}

type nullSafe[T any] struct {
	src Sequence[T]
}

func (s nullSafe[T]) Cursor() cursorkit.Cursor[T] {
	if reflectkit.IsNil(s.src) {
		return cursorkit.Empty[T]()
	}
	return s.src.Cursor()
}

func (s nullSafe[T]) Capabilities() Capability {
	if reflectkit.IsNil(s.src) {
		return Repeatable
	}
	return CapabilitiesOf(s.src) &^ Reversible
}

// LookAhead returns a sequence that pairs every element of seq with the one that follows it.
func LookAhead[T any](seq Sequence[T], opts ...Option) (Sequence[cursorkit.Window[T]], error) {
	_, absent, err := prepare("LookAhead", seq, opts)
	if err != nil {
		return nil, err
	}
	if absent {
		return empty[cursorkit.Window[T]](), nil
	}
	return newSequence(CapabilitiesOf(seq)&Repeatable, func() cursorkit.Cursor[cursorkit.Window[T]] {
		return cursorkit.LookAhead(seq.Cursor())
	}, nil), nil
}

// Infix returns a sequence that yields infix between every two consecutive elements of seq.
func Infix[T any](seq Sequence[T], infix T, opts ...Option) (Sequence[T], error) {
	_, absent, err := prepare("Infix", seq, opts)
	if err != nil {
		return nil, err
	}
	if absent {
		return empty[T](), nil
	}
	return newSequence(CapabilitiesOf(seq)&(Removable|Repeatable), func() cursorkit.Cursor[T] {
		return cursorkit.Infix(seq.Cursor(), infix)
	}, nil), nil
}

// Suffix returns a sequence that yields the elements of seq, then the suffixes.
// When seq is absent in lenient mode, the sequence only yields the suffixes.
func Suffix[T any](seq Sequence[T], suffixes []T, opts ...Option) (Sequence[T], error) {
	_, absent, err := prepare("Suffix", seq, opts)
	if err != nil {
		return nil, err
	}
	if absent {
		seq = empty[T]()
	}
	return newSequence(CapabilitiesOf(seq)&(Removable|Repeatable), func() cursorkit.Cursor[T] {
		return cursorkit.Suffix(seq.Cursor(), suffixes...)
	}, nil), nil
}

// Protect returns a sequence that reads seq but whose cursors refuse to remove.
func Protect[T any](seq Sequence[T], opts ...Option) (Sequence[T], error) {
	_, absent, err := prepare("Protect", seq, opts)
	if err != nil {
		return nil, err
	}
	if absent {
		return empty[T](), nil
	}
	caps := CapabilitiesOf(seq) &^ Removable
	var backward func() cursorkit.Cursor[T]
	if r, ok := seq.(ReversibleSequence[T]); ok {
		backward = func() cursorkit.Cursor[T] { return cursorkit.Protect(r.Backward()) }
	}
	return newSequence(caps, func() cursorkit.Cursor[T] {
		return cursorkit.Protect(seq.Cursor())
	}, backward), nil
}

// RemoveHandler returns a sequence whose cursors hand the element to be removed to handler,
// instead of removing it from seq.
func RemoveHandler[T any](seq Sequence[T], handler func(T) error, opts ...Option) (Sequence[T], error) {
	if err := checkCallback("RemoveHandler", "handler", handler); err != nil {
		return nil, err
	}
	_, absent, err := prepare("RemoveHandler", seq, opts)
	if err != nil {
		return nil, err
	}
	if absent {
		return empty[T](), nil
	}
	return newSequence(CapabilitiesOf(seq)&Repeatable|Removable, func() cursorkit.Cursor[T] {
		return cursorkit.RemoveHandler(seq.Cursor(), handler)
	}, nil), nil
}

// Reverse returns seq traversed from its end.
// It fails with cursorkit.ErrUnsupported when seq is not a ReversibleSequence.
func Reverse[T any](seq Sequence[T]) (Sequence[T], error) {
	if reflectkit.IsNil(seq) {
		return nil, errorkit.At(errorkit.OpConstruct, "Reverse", cursorkit.ErrNilArgument.F("backing source is absent"))
	}
	r, ok := seq.(ReversibleSequence[T])
	if !ok {
		return nil, errorkit.At(errorkit.OpConstruct, "Reverse", cursorkit.ErrUnsupported.F("sequence is not reversible"))
	}
	return newSequence(CapabilitiesOf(seq), r.Backward, r.Cursor), nil
}
