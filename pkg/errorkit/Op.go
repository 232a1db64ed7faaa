package errorkit

import "errors"

// Op is a step of the cursor protocol.
type Op string

const (
	OpConstruct Op = "construct"
	OpNext      Op = "next"
	OpPrevious  Op = "previous"
	OpRemove    Op = "remove"
)

// OpError tells which step of which source failed.
type OpError struct {
	Op     Op
	Source string
	Err    error
}

func (e *OpError) Error() string {
	if e.Source == "" {
		return string(e.Op) + ": " + e.Err.Error()
	}
	return e.Source + ": " + string(e.Op) + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }

// At records that err happened at op of source.
// Nil stays nil, and an error that already carries a step keeps it,
// so the innermost source is the one reported.
func At(op Op, source string, err error) error {
	if err == nil {
		return nil
	}
	var oe *OpError
	if errors.As(err, &oe) {
		return err
	}
	return &OpError{Op: op, Source: source, Err: err}
}

// OpOf returns the step err happened at.
func OpOf(err error) (Op, bool) {
	var oe *OpError
	if !errors.As(err, &oe) {
		return "", false
	}
	return oe.Op, true
}
