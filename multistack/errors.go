package multistack

import "cloudeng.io/errors"

var (
	// ErrNoStacks indicates a MultiStack was requested with zero stacks.
	ErrNoStacks = errors.New("multistack: at least one stack is required")
	// ErrTooManyStacks indicates more stacks than slots in the backing array.
	ErrTooManyStacks = errors.New("multistack: more stacks than slots, use fewer stacks or a larger size")
	// ErrInvalidIndex indicates a stack index outside [0, NumStacks()).
	ErrInvalidIndex = errors.New("multistack: invalid stack index")
	// ErrFull indicates the partition of the chosen stack has no free slot.
	ErrFull = errors.New("multistack: stack full")
	// ErrEmpty indicates the chosen stack holds no values.
	ErrEmpty = errors.New("multistack: stack empty")
	// ErrNoCapacity indicates every stack is full.
	ErrNoCapacity = errors.New("multistack: all stacks full")
)
