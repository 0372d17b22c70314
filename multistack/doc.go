// Package multistack implements several fixed-capacity stacks that share one
// backing array.
//
// The array is split into equal partitions when the MultiStack is created,
// one per stack, and the boundaries never move: a full stack is full even if
// its neighbours are empty. Each partition tracks its own item count, so the
// zero value is ordinary data and popping is the same operation at every
// position.
//
// Failures are reported with the sentinel errors ErrInvalidIndex, ErrFull,
// ErrEmpty and ErrNoCapacity, wrapped with the stack index where one applies.
package multistack
