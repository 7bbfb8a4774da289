package Queues

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[int](0)
	assert.True(t, q.Empty())
	assert.Equal(t, 0, q.Peek())
	_, err := q.Pop()
	var eqe *EmptyQueueError
	require.ErrorAs(t, err, &eqe)
}

func TestArrayQueue_FIFO(t *testing.T) {
	for _, initCap := range []uint{0, 1, 2, 7} {
		q := MakeArrayQueue[int](initCap)
		for i := range 100 {
			q.Push(i)
		}
		require.Equal(t, uint(100), q.Size())
		for i := range 100 {
			assert.Equal(t, i, q.Peek())
			v, err := q.Pop()
			require.NoError(t, err)
			assert.Equal(t, i, v)
		}
		assert.True(t, q.Empty())
	}
}

func TestArrayQueue_Wrap(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	q := MakeArrayQueue[int](4)
	var model []int
	next := 0
	for range 10000 {
		if rg.Intn(3) > 0 {
			q.Push(next)
			model = append(model, next)
			next++
		} else if v, err := q.Pop(); len(model) == 0 {
			require.Error(t, err)
		} else {
			require.NoError(t, err)
			require.Equal(t, model[0], v)
			model = model[1:]
		}
		require.Equal(t, uint(len(model)), q.Size())
	}
	q.Shrink()
	for _, want := range model {
		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
}

func TestArrayQueue_ClearReuse(t *testing.T) {
	q := MakeArrayQueue[uint16](2)
	q.Push(1)
	q.Push(2)
	q.Push(3)
	q.Clear()
	assert.True(t, q.Empty())
	q.Push(4)
	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, uint16(4), v)
}
