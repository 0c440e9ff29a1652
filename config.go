package ringline

import "github.com/teenjuna/ringline/internal"

// DefaultSlots is the number of slots a line is created with when no option is provided. It
// results in a capacity of DefaultSlots-1 items.
const DefaultSlots = internal.DefaultSlots

// Option configures a line created by [fifo.New], [priority.New] or [priority.NewFunc].
type Option = internal.Option

// WithCapacity sets the number of items a line holds before it has to grow.
func WithCapacity(capacity int) Option {
	return internal.WithCapacity(capacity)
}

// WithSlots sets the length of the backing store of a line. One slot is always kept free, so
// the line holds slots-1 items before it has to grow.
func WithSlots(slots int) Option {
	return internal.WithSlots(slots)
}
