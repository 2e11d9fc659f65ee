package nn

import (
	"reflect"
	"unsafe"

	"github.com/bvisness/nonnull/handle"
	"github.com/bvisness/nonnull/utils"
)

// The factories in this file build wrappers from operations that
// cannot yield nil, so they skip the check.

// MakeUnique allocates a copy of v under exclusive ownership.
func MakeUnique[T any](v T) UniquePtr[T] {
	p := new(T)
	*p = v
	return UniquePtr[T]{ptr: handle.NewUnique(p)}
}

// MakeShared allocates a copy of v under shared ownership. If T embeds
// EnableSharedFromThis, the new object can hand out owners of itself.
func MakeShared[T any](v T) SharedPtr[T] {
	p := new(T)
	*p = v
	return SharedPtr[T]{ptr: handle.NewShared(p)}
}

// Addr wraps the address of an existing value, so writes through the result
// reach the caller's variable. Unlike the factories above, it panics with a
// *CheckError if v is nil.
func Addr[T any](v *T) Ptr[T] {
	r := handle.RawOf(v)
	check(r, 1)
	return Ptr[T]{ptr: r}
}

// EnableSharedFromThis is handle.EnableSharedFromThis returning wrappers.
type EnableSharedFromThis[T any] struct {
	handle.EnableSharedFromThis[T]
}

// SharedFromThis returns a new owner of the object. It fails with
// handle.ErrNoOwner if the object is not under shared ownership.
func (e *EnableSharedFromThis[T]) SharedFromThis() (SharedPtr[T], error) {
	s, err := e.EnableSharedFromThis.SharedFromThis()
	if err != nil {
		return SharedPtr[T]{}, err
	}
	return SharedPtr[T]{ptr: s}, nil
}

// StaticCast projects src's pointee with cast, typically to a field or to an
// interface it implements, and returns a wrapper sharing src's ownership.
// cast must not return nil.
func StaticCast[T, U any](src SharedPtr[U], cast func(*U) *T) SharedPtr[T] {
	p := cast(src.Get())
	check(handle.RawOf(p), 1)
	return SharedPtr[T]{ptr: handle.Alias(src.ptr, p)}
}

// DynamicCast looks for a *T in src's pointee: either the pointee itself, or
// the dynamic value of a pointee of interface type. On a match the result
// shares src's ownership; otherwise it is an empty handle. A miss is not an
// error, so the result is not wrapped.
func DynamicCast[T, U any](src SharedPtr[U]) handle.Shared[T] {
	var target *T
	if p, ok := any(*src.Get()).(*T); ok && p != nil {
		target = p
	} else if p, ok := any(src.Get()).(*T); ok {
		target = p
	}
	if target == nil {
		return handle.Shared[T]{}
	}
	return handle.Alias(src.ptr, target)
}

// ConstCast views src's pointee as a T sharing src's ownership. T and U must
// differ only by name: a defined type and its underlying type, or two defined
// types over the same one. Anything else panics.
func ConstCast[T, U any](src SharedPtr[U]) SharedPtr[T] {
	t, u := reflect.TypeFor[T](), reflect.TypeFor[U]()
	utils.Assert(sameRepresentation(t, u), "ConstCast from %v to %v changes representation", u, t)
	p := (*T)(unsafe.Pointer(src.Get()))
	return SharedPtr[T]{ptr: handle.Alias(src.ptr, p)}
}

// sameRepresentation reports whether a value of type a can be read as b in
// place. Go allows conversions between numeric kinds, so the kinds must match
// as well as the conversions.
func sameRepresentation(a, b reflect.Type) bool {
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() || a.Kind() == reflect.Interface {
		return false
	}
	if !a.ConvertibleTo(b) || !b.ConvertibleTo(a) {
		return false
	}
	return a.Size() == b.Size() && a.Align() == b.Align()
}
