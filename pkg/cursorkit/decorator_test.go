package cursorkit_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.uber.org/mock/gomock"

	"go.llib.dev/traverse/internal/mocks"
	"go.llib.dev/traverse/pkg/cursorkit"
	"go.llib.dev/traverse/pkg/cursorkit/cursorcontract"
	"go.llib.dev/traverse/pkg/errorkit"
)

func isEven(n int) bool { return n%2 == 0 }

func TestFilter(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Context("keeping matches", func(s *testcase.Spec) {
		cursorcontract.Spec(s, func(tb testing.TB) cursorcontract.Subject[int] {
			return cursorcontract.Subject[int]{
				Cursor:    cursorkit.Filter[int](cursorkit.SliceWithReplacement([]int{1, 2, 3, 4, 5, 6}, 0), isEven, false),
				Expected:  []int{2, 4, 6},
				Removable: true,
			}
		})
	})

	s.Context("inverted", func(s *testcase.Spec) {
		cursorcontract.Spec(s, func(tb testing.TB) cursorcontract.Subject[int] {
			return cursorcontract.Subject[int]{
				Cursor:   cursorkit.Filter[int](cursorkit.Slice([]int{1, 2, 3, 4, 5, 6}), isEven, true),
				Expected: []int{1, 3, 5},
			}
		})
	})

	s.Test("removal is delegated to the inner cursor", func(t *testcase.T) {
		vs := []int{1, 2, 3}
		c := cursorkit.Filter[int](cursorkit.SliceWithReplacement(vs, -1), isEven, false)
		v, err := c.Next()
		assert.NoError(t, err)
		assert.Equal(t, 2, v)
		assert.NoError(t, c.Remove())
		assert.Equal(t, []int{1, -1, 3}, vs)
	})

	s.Test("removal after the look-ahead moved the inner cursor is an illegal state", func(t *testcase.T) {
		vs := []int{2, 3, 4}
		c := cursorkit.Filter[int](cursorkit.SliceWithReplacement(vs, -1), isEven, false)
		_, err := c.Next()
		assert.NoError(t, err)
		assert.True(t, c.HasNext())
		assert.ErrorIs(t, c.Remove(), cursorkit.ErrIllegalState)
		assert.Equal(t, []int{2, 3, 4}, vs)
	})

	s.Test("a failure of the inner cursor is yielded in place", func(t *testcase.T) {
		expErr := errors.New("boom")
		c := cursorkit.Filter(cursorkit.Combine[int](cursorkit.Slice([]int{2}), cursorkit.Error[int](expErr)), isEven, false)
		got, err := cursorkit.Collect(c)
		assert.ErrorIs(t, err, expErr)
		assert.Equal(t, []int{2}, got)
	})
}

func TestNullFree(t *testing.T) {
	a, b := "a", "b"
	cursorcontract.Run(t, func(tb testing.TB) cursorcontract.Subject[*string] {
		return cursorcontract.Subject[*string]{
			Cursor:   cursorkit.NullFree[*string](cursorkit.Slice([]*string{nil, &a, nil, &b})),
			Expected: []*string{&a, &b},
		}
	})
}

func TestConvert(t *testing.T) {
	s := testcase.NewSpec(t)

	cursorcontract.Spec(s, func(tb testing.TB) cursorcontract.Subject[string] {
		return cursorcontract.Subject[string]{
			Cursor: cursorkit.Convert[int, string](cursorkit.SliceWithReplacement([]int{1, 2, 3}, 0), func(n int) (string, error) {
				return strconv.Itoa(n), nil
			}),
			Expected:  []string{"1", "2", "3"},
			Removable: true,
		}
	})

	s.Test("a conversion failure is reported and the cursor moves on", func(t *testcase.T) {
		expErr := errors.New("boom")
		c := cursorkit.Convert[string, int](cursorkit.Slice([]string{"1", "x", "3"}), func(s string) (int, error) {
			n, err := strconv.Atoi(s)
			if err != nil {
				return 0, expErr
			}
			return n, nil
		})
		v, err := c.Next()
		assert.NoError(t, err)
		assert.Equal(t, 1, v)
		_, err = c.Next()
		assert.ErrorIs(t, err, cursorkit.ErrConversion)
		assert.ErrorIs(t, err, expErr)
		op, ok := errorkit.OpOf(err)
		assert.True(t, ok)
		assert.Equal(t, errorkit.OpNext, op)
		v, err = c.Next()
		assert.NoError(t, err)
		assert.Equal(t, 3, v)
	})
}

func TestCombine(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Context("two sources", func(s *testcase.Spec) {
		cursorcontract.Spec(s, func(tb testing.TB) cursorcontract.Subject[string] {
			return cursorcontract.Subject[string]{
				Cursor:    cursorkit.Combine[string](cursorkit.SliceWithReplacement([]string{"a", "b"}, ""), cursorkit.SliceWithReplacement([]string{"c"}, "")),
				Expected:  []string{"a", "b", "c"},
				Removable: true,
			}
		})
	})

	s.Context("no source", func(s *testcase.Spec) {
		cursorcontract.Spec(s, func(tb testing.TB) cursorcontract.Subject[string] {
			return cursorcontract.Subject[string]{Cursor: cursorkit.Combine[string]()}
		})
	})

	s.Context("empty sources in between", func(s *testcase.Spec) {
		cursorcontract.Spec(s, func(tb testing.TB) cursorcontract.Subject[int] {
			return cursorcontract.Subject[int]{
				Cursor:   cursorkit.Combine(cursorkit.Empty[int](), cursorkit.Single(1), cursorkit.Empty[int](), cursorkit.Single(2)),
				Expected: []int{1, 2},
			}
		})
	})

	s.Test("removal goes to the source that yielded the last element", func(t *testcase.T) {
		first, second := []string{"a"}, []string{"b"}
		c := cursorkit.Combine[string](cursorkit.SliceWithReplacement(first, "-"), cursorkit.SliceWithReplacement(second, "-"))
		_, _ = c.Next()
		assert.True(t, c.HasNext())
		assert.NoError(t, c.Remove())
		assert.Equal(t, []string{"-"}, first)
		assert.Equal(t, []string{"b"}, second)
	})
}

func TestLookAhead(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("every element is paired with the next one", func(t *testcase.T) {
		got, err := cursorkit.Collect(cursorkit.LookAhead[int](cursorkit.Slice([]int{1, 2, 3})))
		assert.NoError(t, err)
		exp := []cursorkit.Window[int]{
			{Current: 1, Upcoming: 2, HasUpcoming: true},
			{Current: 2, Upcoming: 3, HasUpcoming: true},
			{Current: 3},
		}
		if diff := cmp.Diff(exp, got); diff != "" {
			t.Fatalf("unexpected windows (-want +got):\n%s", diff)
		}
	})

	s.Test("removal is unsupported", func(t *testcase.T) {
		c := cursorkit.LookAhead[int](cursorkit.SliceWithReplacement([]int{1}, 0))
		assert.ErrorIs(t, c.Remove(), cursorkit.ErrIllegalState)
		_, err := c.Next()
		assert.NoError(t, err)
		assert.ErrorIs(t, c.Remove(), cursorkit.ErrUnsupported)
	})

	s.Test("an empty source has no window", func(t *testcase.T) {
		c := cursorkit.LookAhead(cursorkit.Empty[int]())
		assert.False(t, c.HasNext())
	})
}

func TestInfix(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Context("several elements", func(s *testcase.Spec) {
		cursorcontract.Spec(s, func(tb testing.TB) cursorcontract.Subject[string] {
			return cursorcontract.Subject[string]{
				Cursor:    cursorkit.Infix[string](cursorkit.SliceWithReplacement([]string{"a", "b", "c"}, ""), "I"),
				Expected:  []string{"a", "I", "b", "I", "c"},
				Removable: true,
			}
		})
	})

	s.Context("single element", func(s *testcase.Spec) {
		cursorcontract.Spec(s, func(tb testing.TB) cursorcontract.Subject[string] {
			return cursorcontract.Subject[string]{Cursor: cursorkit.Infix(cursorkit.Single("a"), ","), Expected: []string{"a"}}
		})
	})

	s.Test("the infix cannot be removed", func(t *testcase.T) {
		c := cursorkit.Infix[string](cursorkit.SliceWithReplacement([]string{"a", "b"}, ""), ",")
		_, _ = c.Next()
		v, err := c.Next()
		assert.NoError(t, err)
		assert.Equal(t, ",", v)
		assert.ErrorIs(t, c.Remove(), cursorkit.ErrUnsupported)
	})
}

func TestSuffix(t *testing.T) {
	s := testcase.NewSpec(t)

	cursorcontract.Spec(s, func(tb testing.TB) cursorcontract.Subject[string] {
		return cursorcontract.Subject[string]{
			Cursor:    cursorkit.Suffix[string](cursorkit.SliceWithReplacement([]string{"a", "b"}, ""), "y", "z"),
			Expected:  []string{"a", "b", "y", "z"},
			Removable: true,
		}
	})

	s.Test("a suffix value cannot be removed", func(t *testcase.T) {
		c := cursorkit.Suffix(cursorkit.Empty[string](), "z")
		_, err := c.Next()
		assert.NoError(t, err)
		assert.ErrorIs(t, c.Remove(), cursorkit.ErrUnsupported)
	})
}

func TestProtect(t *testing.T) {
	cursorcontract.Run(t, func(tb testing.TB) cursorcontract.Subject[int] {
		return cursorcontract.Subject[int]{
			Cursor:   cursorkit.Protect[int](cursorkit.SliceWithReplacement([]int{1, 2}, 0)),
			Expected: []int{1, 2},
		}
	})
}

func TestRemoveHandler(t *testing.T) {
	s := testcase.NewSpec(t)

	cursorcontract.Spec(s, func(tb testing.TB) cursorcontract.Subject[int] {
		return cursorcontract.Subject[int]{
			Cursor:    cursorkit.RemoveHandler[int](cursorkit.Slice([]int{1, 2}), func(int) error { return nil }),
			Expected:  []int{1, 2},
			Removable: true,
		}
	})

	s.Test("the handler receives the last returned element", func(t *testcase.T) {
		var removed []int
		c := cursorkit.RemoveHandler[int](cursorkit.Slice([]int{1, 2, 3}), func(v int) error {
			removed = append(removed, v)
			return nil
		})
		_, _ = c.Next()
		_, _ = c.Next()
		assert.NoError(t, c.Remove())
		assert.Equal(t, []int{2}, removed)
	})
}

func TestWithCallback(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("every call is reported", func(t *testcase.T) {
		var (
			nexts     []int
			removes   int
			exhausted int
		)
		c := cursorkit.WithCallback[int](cursorkit.SliceWithReplacement([]int{1, 2}, 0), cursorkit.Callback[int]{
			OnNext:      func(v int, err error) { nexts = append(nexts, v) },
			OnRemove:    func(err error) { removes++ },
			OnExhausted: func() { exhausted++ },
		})
		_, _ = c.Next()
		_ = c.Remove()
		_, err := cursorkit.Collect(c)
		assert.NoError(t, err)
		assert.False(t, c.HasNext())
		assert.Equal(t, []int{1, 2}, nexts)
		assert.Equal(t, 1, removes)
		assert.Equal(t, 1, exhausted)
	})
}

func TestDecorators_removalIsForwardedOneLevelDown(t *testing.T) {
	s := testcase.NewSpec(t)

	decorators := map[string]func(cursorkit.Cursor[int]) cursorkit.Cursor[int]{
		"Convert": func(c cursorkit.Cursor[int]) cursorkit.Cursor[int] {
			return cursorkit.Convert(c, func(n int) (int, error) { return n, nil })
		},
		"Combine": func(c cursorkit.Cursor[int]) cursorkit.Cursor[int] { return cursorkit.Combine(c) },
		"Infix":   func(c cursorkit.Cursor[int]) cursorkit.Cursor[int] { return cursorkit.Infix(c, 0) },
		"Suffix":  func(c cursorkit.Cursor[int]) cursorkit.Cursor[int] { return cursorkit.Suffix(c, 0) },
		"Filter": func(c cursorkit.Cursor[int]) cursorkit.Cursor[int] {
			return cursorkit.Filter(c, func(int) bool { return true }, false)
		},
	}

	for name, decorate := range decorators {
		s.Test(name, func(t *testcase.T) {
			ctrl := gomock.NewController(t)
			inner := mocks.NewMockCursor[int](ctrl)
			inner.EXPECT().HasNext().Return(true).AnyTimes()
			inner.EXPECT().Next().Return(42, nil).Times(1)
			inner.EXPECT().Remove().Return(nil).Times(1)

			c := decorate(inner)
			v, err := c.Next()
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
			assert.NoError(t, c.Remove())
		})
	}
}

func TestReverse(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("reversing twice gives back the original cursor", func(t *testcase.T) {
		c := cursorkit.Slice([]int{1})
		assert.Equal[cursorkit.BidirectionalCursor[int]](t, c, cursorkit.Reverse(cursorkit.Reverse[int](c)))
	})
}
