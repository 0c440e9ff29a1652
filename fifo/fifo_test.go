package fifo_test

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/teenjuna/ringline"
	"github.com/teenjuna/ringline/fifo"
	"github.com/teenjuna/ringline/internal/testing/require"
)

var _ ringline.Line[any] = (*fifo.Line[any])(nil)

func TestLineScenario(t *testing.T) {
	line := fifo.New[int](ringline.WithCapacity(3))
	require.Equal(t, line.Capacity(), 3)

	line.Insert(1)
	line.Insert(2)
	line.Insert(3)
	require.True(t, line.IsFull())

	item, err := line.Remove()
	require.Nil(t, err)
	require.Equal(t, item, 1)
	require.Equal(t, line.Size(), 2)

	line.Insert(4)
	require.Equal(t, line.Capacity(), 3)
	require.True(t, line.IsFull())

	for _, expected := range []int{2, 3, 4} {
		item, err := line.Remove()
		require.Nil(t, err)
		require.Equal(t, item, expected)
	}

	_, err = line.Remove()
	require.ErrorIs(t, err, ringline.ErrEmpty)
	require.True(t, line.IsEmpty())
}

func TestLineDefaults(t *testing.T) {
	line := fifo.New[string]()
	require.Equal(t, line.Capacity(), ringline.DefaultSlots-1)
	require.Equal(t, line.Size(), 0)
	require.True(t, line.IsEmpty())
	require.False(t, line.IsFull())
	require.Equal(t, line.String(), "[]")

	line = fifo.New[string](ringline.WithSlots(4))
	require.Equal(t, line.Capacity(), 3)
}

func TestLineOrder(t *testing.T) {
	type Item struct {
		ID string
		N1 int
	}

	var input []Item
	for i := range 1000 {
		input = append(input, Item{
			ID: strconv.Itoa(i),
			N1: rand.IntN(1000),
		})
	}

	line := fifo.New[Item](ringline.WithCapacity(7))
	for i, item := range input {
		line.Insert(item)
		require.Equal(t, line.Size(), i+1)
	}
	require.True(t, line.Capacity() >= len(input))
	require.Equal(t, slices.Collect(line.Iter()), input)

	var output []Item
	for !line.IsEmpty() {
		item, err := line.Remove()
		require.Nil(t, err)
		output = append(output, item)
	}
	require.Equal(t, output, input)
	require.Equal(t, line.Size(), 0)
}

func TestLineGrowPreservesOrder(t *testing.T) {
	line := fifo.New[int](ringline.WithCapacity(4))

	// Move the cursors so the contents wrap through index 0 before growing.
	for i := range 3 {
		line.Insert(i)
	}
	for range 3 {
		_, err := line.Remove()
		require.Nil(t, err)
	}
	for i := range 4 {
		line.Insert(10 + i)
	}
	require.True(t, line.IsFull())
	require.Equal(t, line.String(), "[10,11,12,13]")

	line.Insert(14)
	require.Equal(t, line.Capacity(), 9)
	require.Equal(t, line.Size(), 5)
	require.Equal(t, line.String(), "[10,11,12,13,14]")

	front, ok := line.PeekFront()
	require.True(t, ok)
	require.Equal(t, front, 10)
	back, ok := line.PeekBack()
	require.True(t, ok)
	require.Equal(t, back, 14)
}

func TestLineGrow(t *testing.T) {
	line := fifo.New[int](ringline.WithCapacity(2))
	line.Insert(1)

	line.Grow()
	require.Equal(t, line.Capacity(), 5)
	require.Equal(t, line.String(), "[1]")

	line.Insert(2)
	require.Equal(t, line.String(), "[1,2]")
}

func TestLineSizeAfterRemovals(t *testing.T) {
	line := fifo.New[int](ringline.WithCapacity(10))
	for n := range 10 {
		for m := range n + 1 {
			require.Nil(t, removeAllIfAny(line))
			for i := range n {
				line.Insert(i)
			}
			for range m {
				_, err := line.Remove()
				require.Nil(t, err)
			}
			require.Equal(t, line.Size(), n-m)
			require.Equal(t, line.IsEmpty(), n == m)
			require.Equal(t, line.IsFull(), n-m == line.Capacity())
		}
	}
	require.Equal(t, line.Capacity(), 10)
}

func TestLinePeekEmpty(t *testing.T) {
	line := fifo.New[*int]()

	front, ok := line.PeekFront()
	require.False(t, ok)
	require.Nil(t, front)

	back, ok := line.PeekBack()
	require.False(t, ok)
	require.Nil(t, back)

	n := 1
	line.Insert(&n)
	_, err := line.Remove()
	require.Nil(t, err)

	_, ok = line.PeekFront()
	require.False(t, ok)
}

func TestLineRemoveAll(t *testing.T) {
	line := fifo.New[int](ringline.WithCapacity(3))
	require.ErrorIs(t, line.RemoveAll(), ringline.ErrEmpty)

	for i := range 5 {
		line.Insert(i)
	}
	capacity := line.Capacity()

	require.Nil(t, line.RemoveAll())
	require.Equal(t, line.Size(), 0)
	require.Equal(t, line.Capacity(), capacity)
	require.Equal(t, line.String(), "[]")
	require.ErrorIs(t, line.RemoveAll(), ringline.ErrEmpty)

	line.Insert(42)
	item, err := line.Remove()
	require.Nil(t, err)
	require.Equal(t, item, 42)
}

func removeAllIfAny(line *fifo.Line[int]) error {
	if line.IsEmpty() {
		return nil
	}
	return line.RemoveAll()
}
