// This package contains the priority [Line] implementation.
package priority

import (
	"cmp"
	"iter"

	"github.com/teenjuna/ringline/internal"
	"github.com/teenjuna/ringline/internal/ring"
)

var _ internal.Line[any] = (*Line[any])(nil)

// Line is a circular buffer that keeps its items sorted in ascending order. Remove always
// returns the lowest item. Items that compare equal are served in the order they were inserted.
//
// Line is not safe for concurrent use.
type Line[Item any] struct {
	ring    *ring.Ring[Item]
	compare func(a, b Item) int
}

// New returns a line ordered by [cmp.Compare].
func New[Item cmp.Ordered](options ...internal.Option) *Line[Item] {
	return NewFunc(cmp.Compare[Item], options...)
}

// NewFunc returns a line ordered by compare, which must return a negative number when a < b, a
// positive number when a > b and zero when they are equal.
func NewFunc[Item any](compare func(a, b Item) int, options ...internal.Option) *Line[Item] {
	if compare == nil {
		panic("compare can't be nil")
	}
	cfg := internal.NewConfig(options...)
	return &Line[Item]{
		ring:    ring.New[Item](cfg.Slots),
		compare: compare,
	}
}

func (l *Line[Item]) Insert(item Item) {
	if l.ring.Full() {
		l.ring.Grow()
	}

	if l.ring.Empty() {
		l.ring.Append(item)
		return
	}

	if back := l.ring.At(l.ring.End()); l.compare(item, back) > 0 {
		l.ring.Append(item)
		return
	}

	if front := l.ring.At(l.ring.Start()); l.compare(item, front) < 0 {
		l.shuffle(l.ring.Start(), l.ring.End())
		l.ring.Set(l.ring.Start(), item)
		l.ring.Extend()
		return
	}

	i, ok := l.findInsertionIndex(item)
	if !ok {
		panic("priority: no insertion index between front and back")
	}
	if i != l.ring.Advance(l.ring.End()) {
		l.shuffle(i, l.ring.End())
	}
	l.ring.Set(i, item)
	l.ring.Extend()
}

// findInsertionIndex walks from end towards start and returns the slot right after the first
// item that is not greater than item. It requires the front to be not greater than item.
func (l *Line[Item]) findInsertionIndex(item Item) (int, bool) {
	for i, n := l.ring.End(), 0; n < l.ring.Len(); i, n = l.ring.Retreat(i), n+1 {
		if l.compare(l.ring.At(i), item) <= 0 {
			return l.ring.Advance(i), true
		}
	}
	return -1, false
}

// shuffle moves every item in the circular range [lo, hi] one slot forward, which leaves slot lo
// free to be overwritten. The slot after hi must be free.
func (l *Line[Item]) shuffle(lo, hi int) {
	for i := hi; ; i = l.ring.Retreat(i) {
		l.ring.Set(l.ring.Advance(i), l.ring.At(i))
		if i == lo {
			return
		}
	}
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
