package ringline

import (
	"iter"
	"slices"
	"sync"
)

var _ Line[any] = (*SynchronizedLine[any])(nil)

// SynchronizedLine serializes access to the wrapped line with a mutex.
//
// An instance can be created only by the [Synchronized] function.
type SynchronizedLine[Item any] struct {
	mu   sync.Mutex
	line Line[Item]
}

// Synchronized wraps line so it can be shared between goroutines. The wrapped line must not be
// used directly afterwards.
func Synchronized[Item any](line Line[Item]) *SynchronizedLine[Item] {
	if line == nil {
		panic("line can't be nil")
	}
	return &SynchronizedLine[Item]{line: line}
}

func (l *SynchronizedLine[Item]) Insert(item Item) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.line.Insert(item)
}

func (l *SynchronizedLine[Item]) Remove() (Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.line.Remove()
}

func (l *SynchronizedLine[Item]) RemoveAll() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.line.RemoveAll()
}

func (l *SynchronizedLine[Item]) PeekFront() (Item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.line.PeekFront()
}

func (l *SynchronizedLine[Item]) PeekBack() (Item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.line.PeekBack()
}

func (l *SynchronizedLine[Item]) Capacity() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.line.Capacity()
}

func (l *SynchronizedLine[Item]) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.line.Size()
}

func (l *SynchronizedLine[Item]) IsEmpty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.line.IsEmpty()
}

func (l *SynchronizedLine[Item]) IsFull() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.line.IsFull()
}

// Iter returns a sequence over a copy of the items taken when Iter is called.
func (l *SynchronizedLine[Item]) Iter() iter.Seq[Item] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Values(slices.Collect(l.line.Iter()))
}

func (l *SynchronizedLine[Item]) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.line.String()
}

// Drain removes all items from the line under a single lock and returns them in the order they
// were served.
func (l *SynchronizedLine[Item]) Drain() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]Item, 0, l.line.Size())
	for !l.line.IsEmpty() {
		item, err := l.line.Remove()
		if err != nil {
			break
		}
		items = append(items, item)
	}
	return items
}
