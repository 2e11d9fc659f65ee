package handle

import "fmt"

// Raw is a plain, non-owning pointer.
type Raw[T any] struct {
	p *T
}

func RawOf[T any](p *T) Raw[T] {
	return Raw[T]{p: p}
}

func (r Raw[T]) IsNil() bool {
	return r.p == nil
}

func (r Raw[T]) Get() *T {
	return r.p
}

func (r Raw[T]) Kind() Kind {
	return KindRaw
}

func (r Raw[T]) Hash() uint64 {
	return HashAddr(r.p)
}

func (r Raw[T]) Format(f fmt.State, verb rune) {
	formatPtr(f, verb, r.p)
}
