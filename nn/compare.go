package nn

import (
	"github.com/bvisness/nonnull/handle"
	"golang.org/x/exp/constraints"
)

// Two wrappers, or a wrapper and a plain representation, compare like the
// pointers they hold: equality is identity of the pointee, and ordering is
// by address with nil first. Only == and < are primitive; the other four
// relations are derived from them the same way for every operand shape.

type relation int

const (
	relEq relation = iota
	relNe
	relLt
	relGt
	relLe
	relGe
)

func equal[E any](l, r *E) bool {
	return l == r
}

func less[E any](l, r *E) bool {
	return cmpOrdered(handle.Addr(l), handle.Addr(r)) < 0
}

func cmpOrdered[K constraints.Ordered](l, r K) int {
	switch {
	case l < r:
		return -1
	case r < l:
		return 1
	default:
		return 0
	}
}

func compare[E any](rel relation, l, r *E) bool {
	switch rel {
	case relEq:
		return equal(l, r)
	case relNe:
		return !equal(l, r)
	case relLt:
		return less(l, r)
	case relGt:
		return less(r, l)
	case relLe:
		return !less(r, l)
	case relGe:
		return !less(l, r)
	default:
		panic("unknown relation")
	}
}

// Wrapper against wrapper.

func Equal[L Pointer[E], R Pointer[E], E any](l NN[L, E], r NN[R, E]) bool {
	return compare(relEq, l.Get(), r.Get())
}

func NotEqual[L Pointer[E], R Pointer[E], E any](l NN[L, E], r NN[R, E]) bool {
	return compare(relNe, l.Get(), r.Get())
}

func Less[L Pointer[E], R Pointer[E], E any](l NN[L, E], r NN[R, E]) bool {
	return compare(relLt, l.Get(), r.Get())
}

func Greater[L Pointer[E], R Pointer[E], E any](l NN[L, E], r NN[R, E]) bool {
	return compare(relGt, l.Get(), r.Get())
}

func LessEqual[L Pointer[E], R Pointer[E], E any](l NN[L, E], r NN[R, E]) bool {
	return compare(relLe, l.Get(), r.Get())
}

func GreaterEqual[L Pointer[E], R Pointer[E], E any](l NN[L, E], r NN[R, E]) bool {
	return compare(relGe, l.Get(), r.Get())
}

// Compare returns -1, 0 or +1 in address order, for slices.SortFunc and
// friends.
func Compare[L Pointer[E], R Pointer[E], E any](l NN[L, E], r NN[R, E]) int {
	return cmpOrdered(handle.Addr(l.Get()), handle.Addr(r.Get()))
}

// Wrapper against a plain, possibly nil, representation.

func EqualRaw[L Pointer[E], R Pointer[E], E any](l NN[L, E], r R) bool {
	return compare(relEq, l.Get(), r.Get())
}

func NotEqualRaw[L Pointer[E], R Pointer[E], E any](l NN[L, E], r R) bool {
	return compare(relNe, l.Get(), r.Get())
}

func LessRaw[L Pointer[E], R Pointer[E], E any](l NN[L, E], r R) bool {
	return compare(relLt, l.Get(), r.Get())
}

func GreaterRaw[L Pointer[E], R Pointer[E], E any](l NN[L, E], r R) bool {
	return compare(relGt, l.Get(), r.Get())
}

func LessEqualRaw[L Pointer[E], R Pointer[E], E any](l NN[L, E], r R) bool {
	return compare(relLe, l.Get(), r.Get())
}

func GreaterEqualRaw[L Pointer[E], R Pointer[E], E any](l NN[L, E], r R) bool {
	return compare(relGe, l.Get(), r.Get())
}

// Plain representation against wrapper.

func RawEqual[L Pointer[E], R Pointer[E], E any](l L, r NN[R, E]) bool {
	return compare(relEq, l.Get(), r.Get())
}

func RawNotEqual[L Pointer[E], R Pointer[E], E any](l L, r NN[R, E]) bool {
	return compare(relNe, l.Get(), r.Get())
}

func RawLess[L Pointer[E], R Pointer[E], E any](l L, r NN[R, E]) bool {
	return compare(relLt, l.Get(), r.Get())
}

func RawGreater[L Pointer[E], R Pointer[E], E any](l L, r NN[R, E]) bool {
	return compare(relGt, l.Get(), r.Get())
}

func RawLessEqual[L Pointer[E], R Pointer[E], E any](l L, r NN[R, E]) bool {
	return compare(relLe, l.Get(), r.Get())
}

func RawGreaterEqual[L Pointer[E], R Pointer[E], E any](l L, r NN[R, E]) bool {
	return compare(relGe, l.Get(), r.Get())
}
