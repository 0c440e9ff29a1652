// This package contains the first-in-first-out [Line] implementation.
package fifo

import (
	"iter"

	"github.com/teenjuna/ringline/internal"
	"github.com/teenjuna/ringline/internal/ring"
)

var _ internal.Line[any] = (*Line[any])(nil)

// Line is a circular queue that serves items in the order they were inserted. It doubles its
// capacity instead of rejecting an insert when it's full.
//
// Line is not safe for concurrent use.
type Line[Item any] struct {
	ring *ring.Ring[Item]
}

func New[Item any](options ...internal.Option) *Line[Item] {
	cfg := internal.NewConfig(options...)
	return &Line[Item]{
		ring: ring.New[Item](cfg.Slots),
	}
}

func (l *Line[Item]) Insert(item Item) {
	if l.ring.Full() {
		l.ring.Grow()
	}
	l.ring.Append(item)
}

func (l *Line[Item]) Remove() (Item, error) {
	return l.ring.PopFront()
}

func (l *Line[Item]) RemoveAll() error {
	return l.ring.Clear()
}

func (l *Line[Item]) PeekFront() (Item, bool) {
	return l.ring.Front()
}

func (l *Line[Item]) PeekBack() (Item, bool) {
	return l.ring.Back()
}

// Grow doubles the capacity of the line.
func (l *Line[Item]) Grow() {
	l.ring.Grow()
}

func (l *Line[Item]) Capacity() int {
	return l.ring.Cap()
}

func (l *Line[Item]) Size() int {
	return l.ring.Len()
}

func (l *Line[Item]) IsEmpty() bool {
	return l.ring.Empty()
}

func (l *Line[Item]) IsFull() bool {
	return l.ring.Full()
}

func (l *Line[Item]) Iter() iter.Seq[Item] {
	return l.ring.Iter()
}

func (l *Line[Item]) String() string {
	return l.ring.String()
}
