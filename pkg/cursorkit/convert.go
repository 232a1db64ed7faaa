package cursorkit

import "go.llib.dev/traverse/pkg/errorkit"

// Convert returns a cursor that yields fn applied to every element of src, one to one.
// A failure of fn is returned wrapped in ErrConversion; a failure of src is returned unchanged.
// Either way the cursor stays positioned, and the caller may keep reading.
// Remove is delegated to src.
func Convert[From, To any](src Cursor[From], fn func(From) (To, error)) Cursor[To] {
	return &convertCursor[From, To]{src: src, fn: fn}
}

type convertCursor[From, To any] struct {
	src Cursor[From]
	fn  func(From) (To, error)
}

func (c *convertCursor[From, To]) HasNext() bool {
	return c.src.HasNext()
}

func (c *convertCursor[From, To]) Next() (To, error) {
	var zero To
	v, err := c.src.Next()
	if err != nil {
		return zero, err
	}
	out, err := c.fn(v)
	if err != nil {
		return zero, errorkit.At(errorkit.OpNext, "Convert", ErrConversion.Wrap(err))
	}
	return out, nil
}

func (c *convertCursor[From, To]) Remove() error {
	return c.src.Remove()
}
