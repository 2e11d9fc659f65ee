package nn

import (
	"fmt"

	"github.com/bvisness/nonnull/handle"
)

// Conversion classifies how one wrapper can be built from another. It
// follows the representations: a wrapper converts exactly when its
// representation does, copying when the source may be duplicated and
// consuming it when ownership has to move.
type Conversion int

const (
	ImplicitCopy Conversion = iota + 1
	ImplicitMove
	ExplicitCopy
	ExplicitMove
)

func (c Conversion) String() string {
	switch c {
	case ImplicitCopy:
		return "implicit copy"
	case ImplicitMove:
		return "implicit move"
	case ExplicitCopy:
		return "explicit copy"
	case ExplicitMove:
		return "explicit move"
	default:
		return fmt.Sprintf("Conversion(%d)", int(c))
	}
}

// Explicit conversions change what the caller is responsible for, such as
// adopting a plain pointer into ownership.
func (c Conversion) Explicit() bool {
	return c == ExplicitCopy || c == ExplicitMove
}

// Consumes reports whether the source is left empty.
func (c Conversion) Consumes() bool {
	return c == ImplicitMove || c == ExplicitMove
}

type conversionKey struct {
	from, to handle.Kind
	consume  bool
}

var conversions = map[conversionKey]Conversion{
	{handle.KindRaw, handle.KindRaw, false}:       ImplicitCopy,
	{handle.KindShared, handle.KindShared, false}: ImplicitCopy,
	{handle.KindShared, handle.KindShared, true}:  ImplicitMove,
	{handle.KindUnique, handle.KindUnique, true}:  ImplicitMove,
	{handle.KindUnique, handle.KindShared, true}:  ImplicitMove,
	{handle.KindRaw, handle.KindUnique, false}:    ExplicitCopy,
	{handle.KindRaw, handle.KindShared, false}:    ExplicitCopy,
	{handle.KindUnique, handle.KindRaw, false}:    ExplicitCopy,
	{handle.KindShared, handle.KindRaw, false}:    ExplicitCopy,
}

// Classify reports how a wrapper of kind from converts to kind to, and
// whether it converts at all. consume asks for the consuming form. A plain
// pointer has nothing to move out, so consuming it is the same as copying.
func Classify(from, to handle.Kind, consume bool) (Conversion, bool) {
	if from == handle.KindRaw {
		consume = false
	}
	c, ok := conversions[conversionKey{from, to, consume}]
	return c, ok
}

// Move moves n into a new wrapper, leaving n empty. Exclusive handles are
// moved to a fresh ownership cell, so stale copies of n's handle go empty
// too.
func Move[P Pointer[E], E any](n *NN[P, E]) NN[P, E] {
	p := n.Take()
	if m, ok := any(p).(interface{ Move() P }); ok {
		p = m.Move()
	}
	return NN[P, E]{ptr: p}
}

// CloneShared adds an owner.
func CloneShared[T any](n SharedPtr[T]) SharedPtr[T] {
	return SharedPtr[T]{ptr: n.ptr.Clone()}
}

// ToShared moves exclusive ownership into shared ownership, keeping the
// deleter. n is left empty.
func ToShared[T any](n *UniquePtr[T]) SharedPtr[T] {
	u := n.Take()
	return SharedPtr[T]{ptr: u.Share()}
}

// AdoptUnique takes exclusive ownership of p's pointee.
func AdoptUnique[T any](p Ptr[T]) UniquePtr[T] {
	return UniquePtr[T]{ptr: handle.NewUnique(p.Get())}
}

// AdoptShared takes shared ownership of p's pointee.
func AdoptShared[T any](p Ptr[T]) SharedPtr[T] {
	return SharedPtr[T]{ptr: handle.NewShared(p.Get())}
}

// Borrow returns a non-owning view of n's pointee. It is valid only as long
// as n's owners keep the pointee alive.
func Borrow[P Pointer[E], E any](n NN[P, E]) Ptr[E] {
	return Ptr[E]{ptr: handle.RawOf(n.Get())}
}

// ConvertCopy builds a wrapper of another representation from a copy of
// src's. It is how representations outside package handle get conversions.
// conv must not return nil; if it does, ConvertCopy panics like New.
func ConvertCopy[A Pointer[E], B Pointer[E], E any](src NN[B, E], conv func(B) A) NN[A, E] {
	a := conv(src.ptr)
	check(a, 1)
	return NN[A, E]{ptr: a}
}

// Owner is implemented by representations that own their pointee.
type Owner interface {
	UseCount() int
}

// ConvertMove is ConvertCopy for sources whose ownership has to be handed
// over. src is left empty. Plain pointers are not Owners and cannot be
// moved from.
func ConvertMove[A Pointer[E], B interface {
	Pointer[E]
	Owner
}, E any](src *NN[B, E], conv func(B) A) NN[A, E] {
	a := conv(src.Take())
	check(a, 1)
	return NN[A, E]{ptr: a}
}

// Alias returns a shared wrapper for target that keeps owner's pointee
// alive. target is normally part of owner's pointee:
//
//	wheel := nn.Alias(car, nn.FromPtr(&car.Get().Wheels[0]))
func Alias[T, U any](owner SharedPtr[U], target Ptr[T]) SharedPtr[T] {
	return SharedPtr[T]{ptr: handle.Alias(owner.ptr, target.Get())}
}
