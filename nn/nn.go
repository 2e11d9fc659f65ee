// Package nn provides NN, a wrapper around a pointer-like value that is
// guaranteed never to be nil. NN works with plain pointers and with the
// owning handles in package handle:
//
//	nn.Ptr[Foo]       // NN[handle.Raw[Foo], Foo]
//	nn.UniquePtr[Foo] // NN[handle.Unique[Foo], Foo]
//	nn.SharedPtr[Foo] // NN[handle.Shared[Foo], Foo]
//
// Any other type with IsNil and Get methods can be wrapped too.
//
// An NN is checked once, when it is built, and can then be dereferenced
// without further nil checks. There is deliberately no way to test an NN
// for nil. The zero value is the one hole Go leaves open: an NN that was
// never constructed (var p nn.Ptr[T], nn.Ptr[T]{}) or that has been moved
// out of with Take is empty. The nnlint command reports the former.
package nn

import "github.com/bvisness/nonnull/handle"

// Pointer is what a representation must provide to be wrapped by NN.
type Pointer[E any] interface {
	IsNil() bool
	Get() *E
}

// NN wraps a P that is never nil. NN has no IsNil method, so it is not a
// Pointer itself and cannot be nested.
type NN[P Pointer[E], E any] struct {
	ptr P
}

type (
	Ptr[T any]       = NN[handle.Raw[T], T]
	UniquePtr[T any] = NN[handle.Unique[T], T]
	SharedPtr[T any] = NN[handle.Shared[T], T]
)

// Get returns the pointee. Field access goes through it: p.Get().Name.
func (n NN[P, E]) Get() *E {
	return n.ptr.Get()
}

// Value returns a copy of the pointee.
func (n NN[P, E]) Value() E {
	return *n.ptr.Get()
}

// Nullable returns the wrapped representation. n keeps its ownership; for an
// owning handle the result is an alias, not a new owner.
func (n NN[P, E]) Nullable() P {
	return n.ptr
}

// Take moves the representation out of n, leaving n empty.
func (n *NN[P, E]) Take() P {
	p := n.ptr
	var zero P
	n.ptr = zero
	return p
}

// Close takes the representation out of n and releases it if it owns
// anything. Plain pointers are just dropped.
func (n *NN[P, E]) Close() error {
	p := n.Take()
	if r, ok := any(&p).(interface{ Reset() error }); ok {
		return r.Reset()
	}
	return nil
}
