package handle

import "fmt"

// Unique is an exclusively owned pointer. Copies of a Unique value refer to
// the same ownership cell, so ownership is never duplicated: Move hands it
// to a new cell and leaves every copy of the old one empty.
type Unique[T any] struct {
	c *uniqueCell[T]
}

type uniqueCell[T any] struct {
	p       *T
	deleter func(*T) error
}

// NewUnique takes ownership of p. Reset closes p if it is an io.Closer.
func NewUnique[T any](p *T) Unique[T] {
	return NewUniqueFunc(p, closeDeleter[T])
}

// NewUniqueFunc takes ownership of p, releasing it with deleter. A nil
// deleter makes Reset a no-op beyond emptying the handle.
func NewUniqueFunc[T any](p *T, deleter func(*T) error) Unique[T] {
	if p == nil {
		return Unique[T]{}
	}
	return Unique[T]{c: &uniqueCell[T]{p: p, deleter: deleter}}
}

func (u Unique[T]) IsNil() bool {
	return u.c == nil || u.c.p == nil
}

func (u Unique[T]) Get() *T {
	if u.c == nil {
		return nil
	}
	return u.c.p
}

// Move transfers ownership to a new handle.
func (u Unique[T]) Move() Unique[T] {
	if u.IsNil() {
		return Unique[T]{}
	}
	moved := &uniqueCell[T]{p: u.c.p, deleter: u.c.deleter}
	u.c.p, u.c.deleter = nil, nil
	return Unique[T]{c: moved}
}

// Release gives up ownership without running the deleter.
func (u Unique[T]) Release() *T {
	if u.IsNil() {
		return nil
	}
	p := u.c.p
	u.c.p, u.c.deleter = nil, nil
	return p
}

// Reset runs the deleter on the owned pointer and leaves the handle empty.
func (u Unique[T]) Reset() error {
	if u.IsNil() {
		return nil
	}
	p, deleter := u.c.p, u.c.deleter
	u.c.p, u.c.deleter = nil, nil
	if deleter == nil {
		return nil
	}
	return deleter(p)
}

// Share moves ownership, deleter included, into a new Shared.
func (u Unique[T]) Share() Shared[T] {
	if u.IsNil() {
		return Shared[T]{}
	}
	deleter := u.c.deleter
	return NewSharedFunc(u.Release(), deleter)
}

func (u Unique[T]) UseCount() int {
	if u.IsNil() {
		return 0
	}
	return 1
}

func (u Unique[T]) Kind() Kind {
	return KindUnique
}

func (u Unique[T]) Hash() uint64 {
	return HashAddr(u.Get())
}

func (u Unique[T]) Format(f fmt.State, verb rune) {
	formatPtr(f, verb, u.Get())
}
