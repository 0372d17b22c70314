// Package queue provides FIFO queues built from two LIFO stacks.
//
// Both implementations keep every element in a primary stack and only use the
// second, scratch, stack while reordering; scratch is empty between calls.
// CheapDequeue pays for the reordering on Enqueue, CheapEnqueue pays for it on
// Dequeue and Peek.
package queue

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned by Dequeue and Peek on an empty queue.
var ErrEmpty = errors.New("queue: empty")

// Queue is a first-in first-out sequence. Implementations are not safe for
// concurrent use.
type Queue[T any] interface {
	Enqueue(x T)
	// Dequeue removes and returns the oldest element.
	Dequeue() (T, error)
	// Peek returns the oldest element without removing it.
	Peek() (T, error)
	IsEmpty() bool
	Len() int
}

// Variant selects a Queue implementation.
type Variant int

const (
	CheapEnqueueVariant Variant = iota
	CheapDequeueVariant
)

func (v Variant) String() string {
	switch v {
	case CheapEnqueueVariant:
		return "cheap-enqueue"
	case CheapDequeueVariant:
		return "cheap-dequeue"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant is the inverse of Variant.String.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "cheap-enqueue":
		return CheapEnqueueVariant, nil
	case "cheap-dequeue":
		return CheapDequeueVariant, nil
	}
	return 0, fmt.Errorf("queue: unknown variant %q", s)
}

// New returns an empty queue of the given variant.
func New[T any](v Variant) (Queue[T], error) {
	switch v {
	case CheapEnqueueVariant:
		return NewCheapEnqueue[T](), nil
	case CheapDequeueVariant:
		return NewCheapDequeue[T](), nil
	}
	return nil, fmt.Errorf("queue: unknown variant %v", v)
}

// Choose picks the variant with the lower expected total cost. Reads counts
// both Dequeue and Peek calls.
func Choose[T any](expectedEnqueues, expectedReads uint64) Queue[T] {
	if expectedReads > expectedEnqueues {
		return NewCheapDequeue[T]()
	}
	return NewCheapEnqueue[T]()
}
