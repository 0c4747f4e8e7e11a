// Package memory provides the fixed-budget allocation substrate: bump-pointer
// arenas with three lifetime scopes (global, level, frame) and no
// per-allocation deallocation. Memory is reclaimed in bulk via Reset.
package memory

import (
	"errors"
	"unsafe"
)

// ErrOutOfMemory is returned when an allocation does not fit in the arena's
// remaining capacity. A failed allocation leaves the arena unchanged.
var ErrOutOfMemory = errors.New("memory: arena out of memory")

// Arena is a fixed-capacity bump allocator over a flat byte buffer.
//
// Allocations are valid until the next Reset of the same arena. Reset does
// not zero or free the buffer; it only rewinds the offset, silently
// invalidating everything handed out before. Callers must not retain
// allocations across a Reset.
type Arena struct {
	buffer []byte
	offset int
}

// NewArena creates an arena with the given capacity in bytes. The buffer is
// allocated once and never grows.
func NewArena(capacity int) *Arena {
	return &Arena{buffer: make([]byte, capacity)}
}

// AlignUp returns the smallest multiple of align that is >= addr.
// align must be a power of two.
func AlignUp(addr, align int) int {
	return (addr + align - 1) &^ (align - 1)
}

// Alloc reserves size bytes at the given alignment and returns the backing
// slice. The returned bytes are zeroed. Returns ErrOutOfMemory if the
// request does not fit; the offset is not advanced on failure.
func (a *Arena) Alloc(size, align int) ([]byte, error) {
	start := AlignUp(a.offset, align)
	end := start + size
	if end > len(a.buffer) {
		return nil, ErrOutOfMemory
	}
	a.offset = end

	b := a.buffer[start:end:end]
	clear(b)
	return b, nil
}

// Reset rewinds the arena to empty. The buffer is kept and not zeroed.
// All previously returned allocations become invalid.
func (a *Arena) Reset() {
	a.offset = 0
}

// Used returns the number of bytes currently allocated.
func (a *Arena) Used() int {
	return a.offset
}

// Remaining returns the number of bytes left before the arena is exhausted.
func (a *Arena) Remaining() int {
	return len(a.buffer) - a.offset
}

// Capacity returns the fixed size of the arena's buffer.
func (a *Arena) Capacity() int {
	return len(a.buffer)
}

// New carves out an aligned *T from the arena and initializes it with value.
//
// T must not contain Go pointers: the arena's buffer is opaque to the
// garbage collector, so pointers stored inside it keep nothing alive.
// The returned pointer is invalidated by the arena's next Reset.
func New[T any](a *Arena, value T) (*T, error) {
	var zero T
	start := AlignUp(a.offset, int(unsafe.Alignof(zero)))
	end := start + int(unsafe.Sizeof(zero))
	if end > len(a.buffer) {
		return nil, ErrOutOfMemory
	}
	a.offset = end

	p := (*T)(unsafe.Pointer(unsafe.SliceData(a.buffer[start:])))
	*p = value
	return p, nil
}

// MakeSlice carves out an aligned []T of the given length. Elements are
// zero-initialized, so replaying an identical allocation sequence after a
// Reset observes identical contents.
//
// The same pointer-free constraint and Reset invalidation contract as New
// apply.
func MakeSlice[T any](a *Arena, count int) ([]T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero)) * count
	start := AlignUp(a.offset, int(unsafe.Alignof(zero)))
	end := start + size
	if end > len(a.buffer) {
		return nil, ErrOutOfMemory
	}
	a.offset = end

	clear(a.buffer[start:end])
	s := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(a.buffer[start:]))), count)
	return s, nil
}
