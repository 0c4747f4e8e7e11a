// Package pool provides a fixed-capacity, unordered entity collection with
// O(1) spawn and O(1) swap-remove despawn.
package pool

import (
	"errors"

	"github.com/jackmiller2708/bit-bound/internal/memory"
)

// ErrFull is returned by Spawn when the pool is at capacity. The usual
// caller policy is to drop the new entity; there is no queueing.
var ErrFull = errors.New("pool: capacity exceeded")

// FixedPool holds up to cap(items) live elements in the prefix [0, len).
// Live elements are unordered: Despawn moves the last element into the freed
// slot, so insertion order is not preserved across removals.
type FixedPool[T any] struct {
	items []T
	len   int
}

// New creates a pool with the given fixed capacity.
func New[T any](capacity int) *FixedPool[T] {
	return &FixedPool[T]{items: make([]T, capacity)}
}

// NewIn creates a pool whose element storage lives in the given arena.
// The pool follows the arena's lifetime: it must not be used after the
// arena is reset.
func NewIn[T any](a *memory.Arena, capacity int) (*FixedPool[T], error) {
	items, err := memory.MakeSlice[T](a, capacity)
	if err != nil {
		return nil, err
	}
	return &FixedPool[T]{items: items}, nil
}

// Spawn adds an item to the pool. Returns ErrFull if the pool is at
// capacity, leaving it unchanged. The new item's position relative to the
// other live elements is unspecified.
func (p *FixedPool[T]) Spawn(item T) error {
	if p.len >= len(p.items) {
		return ErrFull
	}
	p.items[p.len] = item
	p.len++
	return nil
}

// Despawn removes the element at index by overwriting it with the current
// last live element and shrinking the length. Out-of-range indexes are
// silently ignored.
//
// Because the former last element moves into the freed slot, callers
// iterating by index must re-examine the same index after a removal rather
// than advancing past it.
func (p *FixedPool[T]) Despawn(index int) {
	if index < 0 || index >= p.len {
		return
	}
	p.len--
	p.items[index] = p.items[p.len]
}

// Items returns the live prefix. The slice aliases pool storage and is
// invalidated by Spawn and Despawn.
func (p *FixedPool[T]) Items() []T {
	return p.items[:p.len]
}

// Len returns the number of live elements.
func (p *FixedPool[T]) Len() int {
	return p.len
}

// Cap returns the pool's fixed capacity.
func (p *FixedPool[T]) Cap() int {
	return len(p.items)
}
