package ringline

import (
	"errors"
	"iter"
)

var _ Line[any] = (*InstrumentedLine[any])(nil)

// InstrumentedLine records Prometheus metrics about the operations of the wrapped line.
//
// An instance can be created only by the [Instrument] function. Like the line it wraps, it's
// not safe for concurrent use unless the wrapped line is.
type InstrumentedLine[Item any] struct {
	line    Line[Item]
	metrics *metrics
}

// Instrument wraps line with metrics described by config. If config is nil, metrics are created
// with default options and aren't registered.
func Instrument[Item any](line Line[Item], config *PrometheusConfig) *InstrumentedLine[Item] {
	if line == nil {
		panic("line can't be nil")
	}
	if config == nil {
		config = Prometheus(nil)
	}

	l := InstrumentedLine[Item]{
		line:    line,
		metrics: config.metrics(),
	}
	l.metrics.updateSize(line.Size(), line.Capacity())

	return &l
}

func (l *InstrumentedLine[Item]) Insert(item Item) {
	capacity := l.line.Capacity()
	l.line.Insert(item)
	l.metrics.recordInsert(l.line.Size(), capacity, l.line.Capacity())
}

func (l *InstrumentedLine[Item]) Remove() (Item, error) {
	item, err := l.line.Remove()
	if errors.Is(err, ErrEmpty) {
		l.metrics.recordEmpty(removeTypeSingle)
		return item, err
	} else if err != nil {
		return item, err
	}
	l.metrics.recordRemove(removeTypeSingle, 1, l.line.Size())
	return item, nil
}

func (l *InstrumentedLine[Item]) RemoveAll() error {
	size := l.line.Size()
	err := l.line.RemoveAll()
	if errors.Is(err, ErrEmpty) {
		l.metrics.recordEmpty(removeTypeAll)
		return err
	} else if err != nil {
		return err
	}
	l.metrics.recordRemove(removeTypeAll, size, l.line.Size())
	return nil
}

func (l *InstrumentedLine[Item]) PeekFront() (Item, bool) {
	return l.line.PeekFront()
}

func (l *InstrumentedLine[Item]) PeekBack() (Item, bool) {
	return l.line.PeekBack()
}

func (l *InstrumentedLine[Item]) Capacity() int {
	return l.line.Capacity()
}

func (l *InstrumentedLine[Item]) Size() int {
	return l.line.Size()
}

func (l *InstrumentedLine[Item]) IsEmpty() bool {
	return l.line.IsEmpty()
}

func (l *InstrumentedLine[Item]) IsFull() bool {
	return l.line.IsFull()
}

func (l *InstrumentedLine[Item]) Iter() iter.Seq[Item] {
	return l.line.Iter()
}

func (l *InstrumentedLine[Item]) String() string {
	return l.line.String()
}
