package internal

import (
	"errors"
	"iter"
)

var ErrEmpty = errors.New("ringline: line is empty")

type Line[Item any] interface {
	Insert(item Item)
	Remove() (Item, error)
	RemoveAll() error
	PeekFront() (Item, bool)
	PeekBack() (Item, bool)
	Capacity() int
	Size() int
	IsEmpty() bool
	IsFull() bool
	Iter() iter.Seq[Item]
	String() string
}
