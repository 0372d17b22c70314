package stack

// Stack is a LIFO sequence backed by a slice. It is not safe for concurrent
// use.
type Stack[T any] struct {
	elements []T
}

func New[T any]() *Stack[T] {
	return &Stack[T]{
		elements: []T{},
	}
}

func (s *Stack[T]) Push(x T) {
	s.elements = append(s.elements, x)
}

// Pop returns the most recently pushed element. The boolean indicates success,
// which is false if the stack was empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.elements) == 0 {
		return zero, false
	}
	x := s.elements[len(s.elements)-1]
	// clear the slot so the slice doesn't keep the value alive
	s.elements[len(s.elements)-1] = zero
	s.elements = s.elements[:len(s.elements)-1]
	return x, true
}

// Peek is like Pop but leaves the element in place.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.elements) == 0 {
		var zero T
		return zero, false
	}
	return s.elements[len(s.elements)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.elements)
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

// MoveTo pops every element of s and pushes it onto dst, which reverses their
// order. It returns the number of elements moved.
func (s *Stack[T]) MoveTo(dst *Stack[T]) int {
	var n = 0
	for {
		x, ok := s.Pop()
		if !ok {
			break
		}
		dst.Push(x)
		n++
	}
	return n
}
