package cursorkit

import "go.llib.dev/traverse/pkg/errorkit"

// Infinite returns a cursor that never exhausts.
// Every Next asks the provider for a fresh value.
// A provider failure is returned wrapped in ErrProvisioning,
// and the cursor stays usable for the next call.
func Infinite[T any](provider func() (T, error)) Cursor[T] {
	return &infiniteCursor[T]{provider: provider}
}

type infiniteCursor[T any] struct {
	provider func() (T, error)
	taken    bool
}

func (c *infiniteCursor[T]) HasNext() bool { return true }

func (c *infiniteCursor[T]) Next() (T, error) {
	c.taken = true
	v, err := c.provider()
	if err != nil {
		var zero T
		return zero, errorkit.At(errorkit.OpNext, "Infinite", ErrProvisioning.Wrap(err))
	}
	return v, nil
}

func (c *infiniteCursor[T]) Remove() error {
	if !c.taken {
		return ErrIllegalState
	}
	return ErrUnsupported
}
