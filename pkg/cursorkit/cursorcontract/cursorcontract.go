// Package cursorcontract holds the behaviour every cursorkit.Cursor implementation must honour.
package cursorcontract

import (
	"errors"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/traverse/pkg/cursorkit"
)

// Subject is what a contract run is made of.
type Subject[T any] struct {
	// Cursor is a fresh cursor under test.
	Cursor cursorkit.Cursor[T]
	// Expected is what the cursor must yield, in order.
	Expected []T
	// Removable tells whether Remove right after a Next must succeed.
	Removable bool
}

// Make creates a new Subject for every test case.
type Make[T any] func(tb testing.TB) Subject[T]

// Run verifies the traversal protocol against the subjects make creates.
func Run[T any](t *testing.T, make Make[T]) {
	s := testcase.NewSpec(t)
	Spec(s, make)
}

// Spec registers the contract's test cases on an existing spec.
func Spec[T any](s *testcase.Spec, make Make[T]) {
	subject := testcase.Let(s, func(t *testcase.T) Subject[T] {
		return make(t)
	})

	s.Test("it yields the expected elements in order, exactly once", func(t *testcase.T) {
		sub := subject.Get(t)
		var got []T
		for sub.Cursor.HasNext() {
			v, err := sub.Cursor.Next()
			assert.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, len(sub.Expected), len(got))
		if len(sub.Expected) != 0 {
			assert.Equal(t, sub.Expected, got)
		}
	})

	s.Test("HasNext is idempotent between two Next calls", func(t *testcase.T) {
		c := subject.Get(t).Cursor
		for range len(subject.Get(t).Expected) + 1 {
			exp := c.HasNext()
			for range t.Random.IntBetween(1, 5) {
				assert.Equal(t, exp, c.HasNext())
			}
			if !exp {
				return
			}
			_, err := c.Next()
			assert.NoError(t, err)
		}
	})

	s.Test("Next on an exhausted cursor fails with ErrExhausted", func(t *testcase.T) {
		c := subject.Get(t).Cursor
		for c.HasNext() {
			_, err := c.Next()
			assert.NoError(t, err)
		}
		_, err := c.Next()
		assert.ErrorIs(t, err, cursorkit.ErrExhausted)
		assert.False(t, c.HasNext())
	})

	s.Test("Remove before any Next is refused", func(t *testcase.T) {
		err := subject.Get(t).Cursor.Remove()
		assert.Error(t, err)
		assert.True(t, errors.Is(err, cursorkit.ErrIllegalState) || errors.Is(err, cursorkit.ErrUnsupported),
			"expected illegal-state or unsupported-operation")
	})

	s.When("the cursor has elements", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			if len(subject.Get(t).Expected) == 0 {
				t.Skip("the subject yields no element")
			}
		})

		s.Test("Remove right after Next follows the removability of the cursor", func(t *testcase.T) {
			sub := subject.Get(t)
			_, err := sub.Cursor.Next()
			assert.NoError(t, err)

			if !sub.Removable {
				assert.ErrorIs(t, sub.Cursor.Remove(), cursorkit.ErrUnsupported)
				return
			}
			assert.NoError(t, sub.Cursor.Remove())
			assert.ErrorIs(t, sub.Cursor.Remove(), cursorkit.ErrIllegalState,
				"a second Remove in a row should be refused")
		})
	})
}
