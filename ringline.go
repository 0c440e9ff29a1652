// Package ringline provides bounded, auto-growing circular lines.
//
// Two disciplines are available in subpackages: [fifo.Line] serves items in insertion order and
// [priority.Line] serves the lowest item first. Both grow by doubling their capacity when an
// insert would overflow them, so Insert never fails.
//
// Lines are not considered thread-safe. Wrap a line with [Synchronized] to share it between
// goroutines.
package ringline

import (
	"github.com/teenjuna/ringline/fifo"
	"github.com/teenjuna/ringline/internal"
	"github.com/teenjuna/ringline/priority"
)

// ErrEmpty is returned by Remove and RemoveAll when the line holds no items.
var ErrEmpty = internal.ErrEmpty

// Line is the set of operations shared by all line implementations.
//
// The interface is only an alias, so implementations don't need to import this package:
//
//	Insert(item Item)          // stores item, growing the line if it's full
//	Remove() (Item, error)     // removes the front item or returns ErrEmpty
//	RemoveAll() error          // clears the line, keeping its capacity, or returns ErrEmpty
//	PeekFront() (Item, bool)   // front item, or the zero value and false if empty
//	PeekBack() (Item, bool)    // back item, or the zero value and false if empty
//	Capacity() int             // number of items the line holds before it grows
//	Size() int                 // number of items in the line
//	IsEmpty() bool
//	IsFull() bool
//	Iter() iter.Seq[Item]      // items from front to back
//	String() string            // items from front to back as "[a,b,c]"
type Line[Item any] = internal.Line[Item]

var (
	_ Line[any] = (*fifo.Line[any])(nil)
	_ Line[any] = (*priority.Line[any])(nil)
)
