// Package handle provides the pointer-like representations wrapped by nn:
// plain pointers (Raw), exclusive ownership (Unique) and reference-counted
// shared ownership (Shared).
//
// Ownership here is about deterministic release of resources (the deleter,
// by default Close on an io.Closer), not about memory. Memory is still the
// garbage collector's job.
package handle

import "fmt"

type Kind int

const (
	KindRaw Kind = iota + 1
	KindUnique
	KindShared
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindUnique:
		return "unique"
	case KindShared:
		return "shared"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
