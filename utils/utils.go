package utils

import "fmt"

// Must panics if err is set. For errors that can only come from a bug, like
// looking up a flag that was registered a few lines up.
func Must[E comparableError](err E) {
	var zero E
	if err != zero {
		panic(err)
	}
}

// Must1 is Must for a (value, error) return.
func Must1[T any, E comparableError](v T, err E) T {
	Must(err)
	return v
}

// Or returns v, or vElse if v is the zero value.
func Or[T comparable](v T, vElse T) T {
	var zero T
	if v == zero {
		return vElse
	}
	return v
}

// Assert panics with a formatted message if v is the zero value (false, nil,
// 0, ""). Use it for invariants only the program itself can break.
func Assert[T comparable](v T, msg string, args ...any) {
	var zero T
	if v == zero {
		panic(fmt.Sprintf("Assert failed: "+msg, args...))
	}
}

// A nil *SomeError stored in an error interface is not == nil, so Must takes
// the concrete error type instead of error.
type comparableError interface {
	comparable
	error
}
