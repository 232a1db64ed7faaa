// Package errorkit holds the error values of the cursor protocol.
package errorkit

import (
	"errors"
	"fmt"
)

// Error is an error kind that can be declared with the `const` keyword.
//
//	const ErrExhausted errorkit.Error = "cursor is exhausted"
type Error string

func (err Error) Error() string { return string(err) }

// Wrap returns an error that matches both the kind and the cause.
// A nil cause yields the kind itself.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return &kindError{kind: err, cause: cause}
}

// F is Wrap with a formatted cause.
func (err Error) F(format string, a ...any) error { return err.Wrap(fmt.Errorf(format, a...)) }

type kindError struct {
	kind  Error
	cause error
}

func (e *kindError) Error() string { return string(e.kind) + ": " + e.cause.Error() }

func (e *kindError) Unwrap() []error { return []error{e.kind, e.cause} }

// Merge combines the non nil errors.
// It returns nil when there are none, and the error itself when there is only one.
func Merge(errs ...error) error {
	var present []error
	for _, err := range errs {
		if err != nil {
			present = append(present, err)
		}
	}
	switch len(present) {
	case 0:
		return nil
	case 1:
		return present[0]
	default:
		return errors.Join(present...)
	}
}
