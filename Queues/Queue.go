package Queues

// Queue is a FIFO.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns EmptyQueueError when there's nothing to pop.
	Pop() (T, error)
	//Peek at the oldest item without removing it. Returns the zero value when empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a single growable array. It can be cleared and reused
// without giving the array back, which is what traversals use to avoid allocating per call.
type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
