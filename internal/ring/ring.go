// Package ring contains the backing store shared by the line implementations.
//
// A Ring keeps its items in a fixed-length slice of slots and tracks the occupied run with two
// cursors: start points at the oldest item and end at the item written last. The run wraps
// through index 0 when start > end. One slot is always kept free, so a ring with n slots holds
// at most n-1 items.
package ring

import (
	"fmt"
	"iter"
	"strings"

	"github.com/teenjuna/ringline/internal"
)

type Ring[Item any] struct {
	slots []Item
	start int
	end   int
	count int
}

// New returns an empty ring with the given number of slots.
func New[Item any](slots int) *Ring[Item] {
	if slots < 2 {
		panic("slots can't be < 2")
	}
	return &Ring[Item]{
		slots: make([]Item, slots),
		start: 0,
		end:   slots - 1,
	}
}

// Slots returns the length of the backing store.
func (r *Ring[Item]) Slots() int {
	return len(r.slots)
}

// Cap returns the number of items the ring accepts before it has to grow.
func (r *Ring[Item]) Cap() int {
	return len(r.slots) - 1
}

func (r *Ring[Item]) Len() int {
	return r.count
}

func (r *Ring[Item]) Empty() bool {
	return r.count == 0
}

func (r *Ring[Item]) Full() bool {
	return r.count == r.Cap()
}

func (r *Ring[Item]) Start() int {
	return r.start
}

func (r *Ring[Item]) End() int {
	return r.end
}

// Advance returns the slot index following i.
func (r *Ring[Item]) Advance(i int) int {
	return (i + 1) % len(r.slots)
}

// Retreat returns the slot index preceding i.
func (r *Ring[Item]) Retreat(i int) int {
	return (i - 1 + len(r.slots)) % len(r.slots)
}

// At returns the raw content of slot i.
func (r *Ring[Item]) At(i int) Item {
	return r.slots[i]
}

// Set overwrites slot i without touching the cursors.
func (r *Ring[Item]) Set(i int, item Item) {
	r.slots[i] = item
}

// Extend marks the slot after end as occupied. The caller must have written it already.
func (r *Ring[Item]) Extend() {
	r.end = r.Advance(r.end)
	r.count++
}

// Append writes item right after end. It doesn't grow the ring.
func (r *Ring[Item]) Append(item Item) {
	r.slots[r.Advance(r.end)] = item
	r.Extend()
}

// Front returns the item at start. The zero value and false are returned if the ring is empty.
func (r *Ring[Item]) Front() (zero Item, _ bool) {
	if r.count == 0 {
		return zero, false
	}
	return r.slots[r.start], true
}

// Back returns the item at end. The zero value and false are returned if the ring is empty.
func (r *Ring[Item]) Back() (zero Item, _ bool) {
	if r.count == 0 {
		return zero, false
	}
	return r.slots[r.end], true
}

// PopFront removes the item at start and returns it.
func (r *Ring[Item]) PopFront() (zero Item, _ error) {
	if r.count == 0 {
		return zero, internal.ErrEmpty
	}

	item := r.slots[r.start]
	r.slots[r.start] = zero
	r.start = r.Advance(r.start)
	r.count--

	return item, nil
}

// Clear drops all items and reallocates the store with the current number of slots.
func (r *Ring[Item]) Clear() error {
	if r.count == 0 {
		return internal.ErrEmpty
	}

	r.slots = make([]Item, len(r.slots))
	r.start = 0
	r.end = len(r.slots) - 1
	r.count = 0

	return nil
}

// Grow doubles the number of slots and moves the items to the beginning of the new store in
// their logical order, so the ring is never wrapped right after it grows.
func (r *Ring[Item]) Grow() {
	slots := make([]Item, 2*len(r.slots))

	n := 0
	if r.count > 0 {
		if r.start <= r.end {
			n += copy(slots, r.slots[r.start:r.end+1])
		} else {
			n += copy(slots, r.slots[r.start:])
			n += copy(slots[n:], r.slots[:r.end+1])
		}
	}

	r.slots = slots
	r.start = 0
	r.end = (n - 1 + len(slots)) % len(slots)
}

// Iter returns a sequence of the items from start to end.
func (r *Ring[Item]) Iter() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for i, n := r.start, 0; n < r.count; i, n = r.Advance(i), n+1 {
			if !yield(r.slots[i]) {
				return
			}
		}
	}
}

func (r *Ring[Item]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for item := range r.Iter() {
		if !first {
			b.WriteByte(',')
		}
		first = false
		fmt.Fprint(&b, item)
	}
	b.WriteByte(']')
	return b.String()
}
