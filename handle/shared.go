package handle

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrNoOwner is returned by SharedFromThis when the object is not (or no
// longer) under shared ownership.
var ErrNoOwner = errors.New("handle: object has no shared owner")

type control struct {
	strong  atomic.Int64
	release func() error
}

// acquire adds an owner, unless the last one is already gone.
func (c *control) acquire() bool {
	for {
		n := c.strong.Load()
		if n <= 0 {
			return false
		}
		if c.strong.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (c *control) drop() error {
	if c.strong.Add(-1) == 0 && c.release != nil {
		return c.release()
	}
	return nil
}

// Shared is a reference-counted pointer. Copy it with Clone; each owner
// calls Reset once, and the last Reset runs the deleter. Counting is safe
// for concurrent use.
type Shared[T any] struct {
	p *T
	c *control
}

// NewShared takes shared ownership of p. The last Reset closes p if it is an
// io.Closer.
func NewShared[T any](p *T) Shared[T] {
	return NewSharedFunc(p, closeDeleter[T])
}

func NewSharedFunc[T any](p *T, deleter func(*T) error) Shared[T] {
	if p == nil {
		return Shared[T]{}
	}
	c := &control{}
	c.strong.Store(1)
	if deleter != nil {
		c.release = func() error { return deleter(p) }
	}
	if b, ok := any(p).(selfBinder); ok {
		b.bindSelf(c, p)
	}
	return Shared[T]{p: p, c: c}
}

// Alias returns a handle that shares owner's reference count but points at
// p, usually a field of owner's pointee. An empty owner yields a
// non-owning handle.
func Alias[T, U any](owner Shared[U], p *T) Shared[T] {
	if owner.c != nil {
		owner.c.strong.Add(1)
	}
	return Shared[T]{p: p, c: owner.c}
}

// SameOwner reports whether a and b share a reference count.
func SameOwner[T, U any](a Shared[T], b Shared[U]) bool {
	return a.c != nil && a.c == b.c
}

func (s Shared[T]) IsNil() bool {
	return s.p == nil
}

func (s Shared[T]) Get() *T {
	return s.p
}

func (s Shared[T]) Clone() Shared[T] {
	if s.c != nil {
		s.c.strong.Add(1)
	}
	return s
}

// Reset drops this owner and empties the handle.
func (s *Shared[T]) Reset() error {
	c := s.c
	s.p, s.c = nil, nil
	if c == nil {
		return nil
	}
	return c.drop()
}

func (s Shared[T]) UseCount() int {
	if s.c == nil {
		return 0
	}
	return int(s.c.strong.Load())
}

func (s Shared[T]) Kind() Kind {
	return KindShared
}

func (s Shared[T]) Hash() uint64 {
	return HashAddr(s.p)
}

func (s Shared[T]) Format(f fmt.State, verb rune) {
	formatPtr(f, verb, s.p)
}
