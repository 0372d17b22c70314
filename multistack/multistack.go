package multistack

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// partition is one logical stack: the slots [start, limit) of the backing
// array, of which the first n are in use.
type partition struct {
	start uint64
	limit uint64
	n     uint64
}

func (p *partition) capacity() uint64 {
	return p.limit - p.start
}

// top returns the index of the most recently pushed value. Only valid when
// n > 0.
func (p *partition) top() uint64 {
	return p.start + p.n - 1
}

// MultiStack emulates several stacks inside one fixed-size array. It is not
// safe for concurrent use.
type MultiStack[T comparable] struct {
	values []T
	stacks []partition
	log    *slog.Logger
}

// partitionWidth returns size/numStacks rounded to the nearest integer, with
// halves rounded up.
func partitionWidth(numStacks, size uint64) uint64 {
	return std.SumAssumeNoOverflow(std.SumAssumeNoOverflow(size, size), numStacks) / (2 * numStacks)
}

// New creates numStacks stacks over a backing array of size slots. Every
// stack starts at a multiple of round(size/numStacks); the last one extends to
// the end of the array. Because of the rounding, trailing stacks may end up
// with no slots at all, in which case every push to them fails with ErrFull.
func New[T comparable](numStacks, size uint64, opts ...Option) (*MultiStack[T], error) {
	if numStacks == 0 {
		return nil, ErrNoStacks
	}
	if numStacks > size {
		return nil, fmt.Errorf("%w: %d stacks, %d slots", ErrTooManyStacks, numStacks, size)
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	div := partitionWidth(numStacks, size)
	stacks := make([]partition, numStacks)
	for i := uint64(0); i < numStacks; i++ {
		stacks[i].start = min(i*div, size)
	}
	for i := uint64(0); i+1 < numStacks; i++ {
		stacks[i].limit = stacks[i+1].start
	}
	stacks[numStacks-1].limit = size

	return &MultiStack[T]{
		values: make([]T, size),
		stacks: stacks,
		log:    o.logger,
	}, nil
}

// NumStacks returns the number of logical stacks.
func (m *MultiStack[T]) NumStacks() uint64 {
	return uint64(len(m.stacks))
}

// Size returns the number of slots in the backing array.
func (m *MultiStack[T]) Size() uint64 {
	return uint64(len(m.values))
}

func (m *MultiStack[T]) partition(i uint64) (*partition, error) {
	if i >= uint64(len(m.stacks)) {
		m.log.Debug("invalid stack", "stack", i, "stacks", len(m.stacks))
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, i, len(m.stacks))
	}
	return &m.stacks[i], nil
}

// Push places x on top of stack i.
func (m *MultiStack[T]) Push(i uint64, x T) error {
	m.log.Debug("push", "stack", i, "value", x)
	p, err := m.partition(i)
	if err != nil {
		return err
	}
	if p.n == p.capacity() {
		m.log.Debug("stack full", "stack", i, "capacity", p.capacity())
		return fmt.Errorf("%w: stack %d holds %d values", ErrFull, i, p.n)
	}
	p.n++
	m.values[p.top()] = x
	primitive.Assert(p.top() < p.limit)
	return nil
}

// Pop removes and returns the top of stack i. The freed slot is reset to the
// zero value.
func (m *MultiStack[T]) Pop(i uint64) (T, error) {
	var zero T
	m.log.Debug("pop", "stack", i)
	p, err := m.partition(i)
	if err != nil {
		return zero, err
	}
	if p.n == 0 {
		m.log.Debug("stack empty", "stack", i)
		return zero, fmt.Errorf("%w: stack %d", ErrEmpty, i)
	}
	top := p.top()
	x := m.values[top]
	m.values[top] = zero
	p.n--
	return x, nil
}

// Peek returns the top of stack i without removing it.
func (m *MultiStack[T]) Peek(i uint64) (T, error) {
	var zero T
	p, err := m.partition(i)
	if err != nil {
		return zero, err
	}
	if p.n == 0 {
		return zero, fmt.Errorf("%w: stack %d", ErrEmpty, i)
	}
	return m.values[p.top()], nil
}

// Len returns the number of values on stack i.
func (m *MultiStack[T]) Len(i uint64) (uint64, error) {
	p, err := m.partition(i)
	if err != nil {
		return 0, err
	}
	return p.n, nil
}

// Cap returns the number of slots reserved for stack i.
func (m *MultiStack[T]) Cap(i uint64) (uint64, error) {
	p, err := m.partition(i)
	if err != nil {
		return 0, err
	}
	return p.capacity(), nil
}

// AvailableStack returns the lowest-numbered stack that can accept a push.
// Unlike the exercise it comes from, the last stack is a candidate too.
func (m *MultiStack[T]) AvailableStack() (uint64, error) {
	for i := range m.stacks {
		if m.stacks[i].n < m.stacks[i].capacity() {
			return uint64(i), nil
		}
	}
	m.log.Debug("all stacks full", "stacks", len(m.stacks))
	return 0, ErrNoCapacity
}

// String renders the backing array, with a '|' in front of the first slot of
// every stack but the first.
func (m *MultiStack[T]) String() string {
	starts := make(map[uint64]bool, len(m.stacks))
	for _, p := range m.stacks {
		if p.start != 0 {
			starts[p.start] = true
		}
	}
	var b strings.Builder
	for i, x := range m.values {
		if i > 0 {
			b.WriteByte(' ')
		}
		if starts[uint64(i)] {
			b.WriteString("| ")
		}
		fmt.Fprint(&b, x)
	}
	return b.String()
}
