package handle

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// HashAddr hashes the address p holds. Every handle hashes through this, so
// two handles referring to the same object hash the same regardless of kind.
func HashAddr[T any](p *T) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(Addr(p)))
	return xxhash.Sum64(b[:])
}

// Addr returns the address p holds, or 0 for nil.
func Addr[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}

func formatPtr[T any](f fmt.State, verb rune, p *T) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), p)
}

// closeDeleter is the default deleter: it closes pointees that are
// io.Closers and does nothing otherwise.
func closeDeleter[T any](p *T) error {
	if c, ok := any(p).(io.Closer); ok {
		return c.Close()
	}
	return nil
}
