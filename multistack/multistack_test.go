package multistack_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"cloudeng.io/logging/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview_code/multistack"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	_, err := multistack.New[int](0, 8)
	assert.ErrorIs(err, multistack.ErrNoStacks)

	_, err = multistack.New[int](9, 8)
	assert.ErrorIs(err, multistack.ErrTooManyStacks)

	m, err := multistack.New[int](3, 8)
	require.NoError(t, err)
	assert.Equal(uint64(3), m.NumStacks())
	assert.Equal(uint64(8), m.Size())
	for i, expected := range []uint64{3, 3, 2} {
		c, err := m.Cap(uint64(i))
		assert.NoError(err)
		assert.Equal(expected, c, "capacity of stack %d", i)
	}
}

func TestPartitionRounding(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		stacks uint64
		size   uint64
		caps   []uint64
	}{
		{1, 1, []uint64{1}},
		{2, 3, []uint64{2, 1}},
		{4, 10, []uint64{3, 3, 3, 1}},
		{7, 10, []uint64{1, 1, 1, 1, 1, 1, 4}},
		// round(9/6) = 2 runs past the end of the array
		{6, 9, []uint64{2, 2, 2, 2, 1, 0}},
	}
	for _, test := range tests {
		m, err := multistack.New[int](test.stacks, test.size)
		require.NoError(t, err)
		var total uint64
		for i, expected := range test.caps {
			c, _ := m.Cap(uint64(i))
			assert.Equal(expected, c, "New(%d, %d): capacity of stack %d", test.stacks, test.size, i)
			total += c
		}
		assert.Equal(test.size, total, "New(%d, %d): capacities must cover the array", test.stacks, test.size)
		assert.NoError(m.CheckInvariants())
	}
}

func TestPushPop(t *testing.T) {
	assert := assert.New(t)
	m, err := multistack.New[int](3, 8)
	require.NoError(t, err)

	_, err = m.Pop(0)
	assert.ErrorIs(err, multistack.ErrEmpty)

	assert.NoError(m.Push(1, 1))
	assert.NoError(m.Push(1, 2))
	assert.NoError(m.Push(2, 3))
	assert.NoError(m.Push(1, 3))
	assert.Equal("0 0 0 | 1 2 3 | 3 0", m.String())

	x, err := m.Pop(1)
	assert.NoError(err)
	assert.Equal(3, x)
	x, err = m.Pop(1)
	assert.NoError(err)
	assert.Equal(2, x)

	assert.NoError(m.Push(1, 4))
	x, _ = m.Pop(1)
	assert.Equal(4, x)

	assert.ErrorIs(m.Push(3, 10), multistack.ErrInvalidIndex)
	_, err = m.Pop(3)
	assert.ErrorIs(err, multistack.ErrInvalidIndex)

	assert.NoError(m.Push(0, 2))
	x, _ = m.Pop(0)
	assert.Equal(2, x)
	assert.NoError(m.Push(2, 4))
	x, _ = m.Pop(2)
	assert.Equal(4, x)
	assert.Equal("0 0 0 | 1 0 0 | 3 0", m.String())

	i, err := m.AvailableStack()
	assert.NoError(err)
	assert.Equal(uint64(0), i)
	assert.NoError(m.CheckInvariants())
}

func TestZeroIsData(t *testing.T) {
	assert := assert.New(t)
	m, err := multistack.New[int](2, 4)
	require.NoError(t, err)

	assert.NoError(m.Push(0, 0))
	assert.NoError(m.Push(0, 0))
	n, _ := m.Len(0)
	assert.Equal(uint64(2), n)

	for range 2 {
		x, err := m.Pop(0)
		assert.NoError(err)
		assert.Equal(0, x)
	}
	_, err = m.Pop(0)
	assert.ErrorIs(err, multistack.ErrEmpty, "zero values do not count as empty")
}

func TestPeekAndState(t *testing.T) {
	assert := assert.New(t)
	m, err := multistack.New[string](2, 4)
	require.NoError(t, err)

	s, _ := m.State(0)
	assert.Equal(multistack.Empty, s)
	_, err = m.Peek(0)
	assert.ErrorIs(err, multistack.ErrEmpty)

	assert.NoError(m.Push(0, "a"))
	s, _ = m.State(0)
	assert.Equal(multistack.HasData, s)

	assert.NoError(m.Push(0, "b"))
	s, _ = m.State(0)
	assert.Equal(multistack.Full, s)
	assert.Equal("full", s.String())

	x, err := m.Peek(0)
	assert.NoError(err)
	assert.Equal("b", x)
	n, _ := m.Len(0)
	assert.Equal(uint64(2), n, "peek must not pop")

	_, err = m.State(2)
	assert.ErrorIs(err, multistack.ErrInvalidIndex)
	_, err = m.Len(2)
	assert.ErrorIs(err, multistack.ErrInvalidIndex)
	_, err = m.Cap(2)
	assert.ErrorIs(err, multistack.ErrInvalidIndex)
}

func TestAvailableStack(t *testing.T) {
	assert := assert.New(t)
	m, err := multistack.New[int](2, 4)
	require.NoError(t, err)

	for range 2 {
		assert.NoError(m.Push(0, 1))
	}
	i, err := m.AvailableStack()
	assert.NoError(err)
	assert.Equal(uint64(1), i, "the last stack is eligible")

	for range 2 {
		assert.NoError(m.Push(1, 1))
	}
	assert.ErrorIs(m.Push(1, 1), multistack.ErrFull)
	_, err = m.AvailableStack()
	assert.ErrorIs(err, multistack.ErrNoCapacity)
}

func TestDebugLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := ctxlog.NewJSONLogger(context.Background(), buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	m, err := multistack.New[int](1, 1, multistack.WithLogger(ctxlog.Logger(ctx)))
	require.NoError(t, err)

	assert.NoError(t, m.Push(0, 7))
	assert.Error(t, m.Push(0, 8))
	assert.Contains(t, buf.String(), `"msg":"push"`)
	assert.Contains(t, buf.String(), `"msg":"stack full"`)
}
