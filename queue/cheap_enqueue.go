package queue

import (
	"github.com/goose-lang/primitive"

	"interview_code/stack"
)

// CheapEnqueue keeps the newest element on top of primary, so Enqueue is O(1)
// and Dequeue and Peek are O(n).
type CheapEnqueue[T any] struct {
	primary *stack.Stack[T]
	scratch *stack.Stack[T]
}

func NewCheapEnqueue[T any]() *CheapEnqueue[T] {
	return &CheapEnqueue[T]{
		primary: stack.New[T](),
		scratch: stack.New[T](),
	}
}

func (q *CheapEnqueue[T]) Enqueue(x T) {
	q.primary.Push(x)
}

// oldest reverses primary into scratch and calls f with the oldest element,
// which is now on top of scratch, before moving everything back. f may pop
// from scratch.
func (q *CheapEnqueue[T]) oldest(f func(s *stack.Stack[T]) T) (T, error) {
	if q.primary.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	q.primary.MoveTo(q.scratch)
	x := f(q.scratch)
	q.scratch.MoveTo(q.primary)
	primitive.Assert(q.scratch.IsEmpty())
	return x, nil
}

func (q *CheapEnqueue[T]) Dequeue() (T, error) {
	return q.oldest(func(s *stack.Stack[T]) T {
		x, _ := s.Pop()
		return x
	})
}

func (q *CheapEnqueue[T]) Peek() (T, error) {
	return q.oldest(func(s *stack.Stack[T]) T {
		x, _ := s.Peek()
		return x
	})
}

func (q *CheapEnqueue[T]) IsEmpty() bool {
	return q.primary.IsEmpty()
}

func (q *CheapEnqueue[T]) Len() int {
	return q.primary.Len()
}

var _ Queue[int] = &CheapEnqueue[int]{}
