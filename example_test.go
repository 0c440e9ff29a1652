package ringline_test

import (
	"errors"
	"fmt"

	"github.com/teenjuna/ringline"
	"github.com/teenjuna/ringline/fifo"
	"github.com/teenjuna/ringline/priority"
)

func Example() {
	queue := fifo.New[int](ringline.WithCapacity(3))
	queue.Insert(1)
	queue.Insert(2)
	queue.Insert(3)
	fmt.Println(queue, queue.IsFull())

	item, _ := queue.Remove()
	fmt.Println(item, queue.Size())

	queue.Insert(4)
	fmt.Println(queue, queue.Capacity())

	var items []int
	for !queue.IsEmpty() {
		item, _ := queue.Remove()
		items = append(items, item)
	}
	fmt.Println(items)

	_, err := queue.Remove()
	fmt.Println(errors.Is(err, ringline.ErrEmpty))

	// Output:
	// [1,2,3] true
	// 1 2
	// [2,3,4] 3
	// [2 3 4]
	// true
}

func Example_priority() {
	line := priority.New[int]()
	line.Insert(5)
	line.Insert(1)
	line.Insert(3)
	fmt.Println(line)

	front, _ := line.PeekFront()
	back, _ := line.PeekBack()
	fmt.Println(front, back)

	// Output:
	// [1,3,5]
	// 1 5
}
