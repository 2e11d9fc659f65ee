package nn

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/bvisness/nonnull/handle"
)

// ErrNil is what every *CheckError unwraps to.
var ErrNil = errors.New("nn: nil pointer")

// Pos is a call site. The Go runtime reports lines, not columns.
type Pos struct {
	File string
	Line int
	Func string
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// CheckError is the panic value raised when an NN is built from a nil
// pointer. It marks a bug in the caller, which promised a non-nil value, and
// is not meant to be recovered as part of normal control flow.
type CheckError struct {
	At Pos
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("nn check failed at %s", e.At)
}

func (e *CheckError) Unwrap() error {
	return ErrNil
}

type nillable interface {
	IsNil() bool
}

// check panics if ptr is nil. skip is the number of frames between check's
// caller and the call site to blame.
func check(ptr nillable, skip int) {
	if ptr.IsNil() {
		panic(&CheckError{At: callerPos(skip + 1)})
	}
}

func callerPos(skip int) Pos {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Pos{File: "???"}
	}
	pos := Pos{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		pos.Func = fn.Name()
	}
	return pos
}

// New wraps ptr, panicking with a *CheckError if it is nil.
func New[P Pointer[E], E any](ptr P) NN[P, E] {
	check(ptr, 1)
	return NN[P, E]{ptr: ptr}
}

func FromPtr[T any](p *T) Ptr[T] {
	r := handle.RawOf(p)
	check(r, 1)
	return Ptr[T]{ptr: r}
}

func FromUnique[T any](u handle.Unique[T]) UniquePtr[T] {
	check(u, 1)
	return UniquePtr[T]{ptr: u}
}

func FromShared[T any](s handle.Shared[T]) SharedPtr[T] {
	check(s, 1)
	return SharedPtr[T]{ptr: s}
}
