package handle

type selfBinder interface {
	bindSelf(c *control, self any)
}

// EnableSharedFromThis lets an object hand out new shared owners of itself.
// Embed it in T; once a *T is adopted by NewShared or NewSharedFunc,
// SharedFromThis works until the last owner is gone.
//
//	type conn struct {
//		handle.EnableSharedFromThis[conn]
//	}
type EnableSharedFromThis[T any] struct {
	weak *control
	self *T
}

func (e *EnableSharedFromThis[T]) bindSelf(c *control, self any) {
	p, ok := self.(*T)
	if !ok {
		return
	}
	// A value copied out of another shared object carries a stale link.
	if e.self == p && e.weak != nil && e.weak.strong.Load() > 0 {
		return
	}
	e.weak, e.self = c, p
}

func (e *EnableSharedFromThis[T]) SharedFromThis() (Shared[T], error) {
	if e.weak == nil || !e.weak.acquire() {
		return Shared[T]{}, ErrNoOwner
	}
	return Shared[T]{p: e.self, c: e.weak}, nil
}
