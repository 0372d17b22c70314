package queue

import (
	"github.com/goose-lang/primitive"

	"interview_code/stack"
)

// CheapDequeue keeps the oldest element on top of primary, so Dequeue and
// Peek are O(1) and Enqueue is O(n).
type CheapDequeue[T any] struct {
	primary *stack.Stack[T]
	scratch *stack.Stack[T]
}

func NewCheapDequeue[T any]() *CheapDequeue[T] {
	return &CheapDequeue[T]{
		primary: stack.New[T](),
		scratch: stack.New[T](),
	}
}

// Enqueue places x underneath every element already in the queue.
func (q *CheapDequeue[T]) Enqueue(x T) {
	q.primary.MoveTo(q.scratch)
	q.primary.Push(x)
	q.scratch.MoveTo(q.primary)
	primitive.Assert(q.scratch.IsEmpty())
}

func (q *CheapDequeue[T]) Dequeue() (T, error) {
	x, ok := q.primary.Pop()
	if !ok {
		return x, ErrEmpty
	}
	return x, nil
}

func (q *CheapDequeue[T]) Peek() (T, error) {
	x, ok := q.primary.Peek()
	if !ok {
		return x, ErrEmpty
	}
	return x, nil
}

func (q *CheapDequeue[T]) IsEmpty() bool {
	return q.primary.IsEmpty()
}

func (q *CheapDequeue[T]) Len() int {
	return q.primary.Len()
}

var _ Queue[int] = &CheapDequeue[int]{}
