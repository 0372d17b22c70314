package multistack

import (
	"fmt"

	"cloudeng.io/errors"
)

// State describes how much of a stack's partition is in use.
type State int

const (
	Empty State = iota
	HasData
	Full
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case HasData:
		return "has-data"
	case Full:
		return "full"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// State returns the state of stack i. A stack with no slots is Full.
func (m *MultiStack[T]) State(i uint64) (State, error) {
	p, err := m.partition(i)
	if err != nil {
		return Empty, err
	}
	switch {
	case p.n == p.capacity():
		return Full, nil
	case p.n == 0:
		return Empty, nil
	}
	return HasData, nil
}

// CheckInvariants reports every way in which the partitions and the backing
// array disagree. It returns nil for any MultiStack only modified through its
// methods.
func (m *MultiStack[T]) CheckInvariants() error {
	var zero T
	errs := &errors.M{}
	size := uint64(len(m.values))
	for i, p := range m.stacks {
		if p.start > p.limit || p.limit > size {
			errs.Append(fmt.Errorf("stack %d: bad bounds [%d, %d) for size %d", i, p.start, p.limit, size))
			continue
		}
		if p.n > p.capacity() {
			errs.Append(fmt.Errorf("stack %d: %d values exceed capacity %d", i, p.n, p.capacity()))
			continue
		}
		if i+1 < len(m.stacks) && p.limit != m.stacks[i+1].start {
			errs.Append(fmt.Errorf("stack %d: limit %d overlaps or leaves a gap before %d", i, p.limit, m.stacks[i+1].start))
		}
		for j := p.start + p.n; j < p.limit; j++ {
			if m.values[j] != zero {
				errs.Append(fmt.Errorf("stack %d: unused slot %d holds %v", i, j, m.values[j]))
			}
		}
	}
	return errs.Err()
}
