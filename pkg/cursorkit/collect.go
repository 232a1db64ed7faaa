package cursorkit

import (
	"errors"
	"iter"

	"go.llib.dev/traverse/pkg/errorkit"
)

// Break can be returned from a ForEach block to stop the traversal without an error.
const Break errorkit.Error = "cursorkit:break"

// Collect reads every remaining element of c into a slice.
// It stops at the first failure and returns the elements read so far along with it.
func Collect[T any](c Cursor[T]) ([]T, error) {
	var vs []T
	for c.HasNext() {
		v, err := c.Next()
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// ForEach calls fn with every remaining element of c.
// The traversal stops at the first failure of c or fn.
// Returning Break from fn ends the traversal early, and ForEach reports no error.
func ForEach[T any](c Cursor[T], fn func(T) error) error {
	for c.HasNext() {
		v, err := c.Next()
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			if errors.Is(err, Break) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Seq adapts c into a range-over-func iterator.
// A failure is yielded alongside the zero value, and the traversal continues
// as long as the loop body does.
// The result reads c itself, so it can only be ranged over once.
func Seq[T any](c Cursor[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for c.HasNext() {
			if !yield(c.Next()) {
				return
			}
		}
	}
}
