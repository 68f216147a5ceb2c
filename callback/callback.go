package callback

import (
	"errors"
	"io"
	"strconv"
)

// ErrNilCallback is returned when a nil Procedure is invoked through Invoke.
var ErrNilCallback = errors.New("callback: nil procedure")

// Procedure performs a side effect with a single text argument.
type Procedure func(s string) error

// StringFunc transforms text into text.
type StringFunc func(s string) string

// Combinator reduces two values of the same type into one.
type Combinator[T any] func(a, b T) T

// BiFunc maps two values of type T into a value of type R.
type BiFunc[T, R any] func(a, b T) R

// Predicate reports whether v satisfies a condition.
type Predicate[T any] func(v T) bool

// Action performs a side effect with two arguments of the same type.
type Action[T any] func(a, b T) error

// InvocationError is returned by a Multicast when one of its procedures fails.
//
// Index is the zero-based position of the failing procedure.
type InvocationError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e InvocationError) Error() string {
	// Example: callback: procedure 1 failed: short write
	return "callback: procedure " + strconv.Itoa(e.Index) + " failed: " + e.Err.Error()
}

// Unwrap returns the underlying procedure error.
func (e InvocationError) Unwrap() error { return e.Err }

// Invoke calls p with s exactly once.
func Invoke(p Procedure, s string) error {
	if p == nil {
		return ErrNilCallback
	}
	return p(s)
}

// Printer returns a Procedure writing s as a single line to w.
func Printer(w io.Writer) Procedure {
	return func(s string) error {
		_, err := io.WriteString(w, s+"\n")
		return err
	}
}

// Multicast is an ordered list of procedures invoked with the same argument.
type Multicast []Procedure

// Compose returns a Procedure that invokes procs in order.
//
// Nil entries are skipped.
func Compose(procs ...Procedure) Procedure {
	return Multicast(nil).Append(procs...).Invoke
}

// Append returns a new Multicast with the non-nil procs added at the end.
// The receiver is left unchanged.
func (m Multicast) Append(procs ...Procedure) Multicast {
	out := make(Multicast, 0, len(m)+len(procs))
	out = append(out, m...)
	for _, p := range procs {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of procedures in m.
func (m Multicast) Len() int { return len(m) }

// Invoke calls every procedure in order with s.
//
// It stops at the first error and returns it wrapped in an InvocationError;
// the remaining procedures are not called.
func (m Multicast) Invoke(s string) error {
	for i, p := range m {
		if err := p(s); err != nil {
			return InvocationError{Index: i, Err: err}
		}
	}
	return nil
}

// Combine returns op(a, b).
func Combine[T any](a, b T, op Combinator[T]) T {
	return op(a, b)
}

// Transform returns op(a, b), whose type may differ from the inputs.
func Transform[T, R any](a, b T, op BiFunc[T, R]) R {
	return op(a, b)
}

// Identity returns s unchanged.
func Identity(s string) string { return s }
