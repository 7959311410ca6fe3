package frontier_test

import (
	"testing"

	"github.com/aretw0/statespace/pkg/frontier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFO(t *testing.T) {
	q := frontier.NewQueue(1, 2)
	q.Push(3)
	require.Equal(t, 3, q.Len())

	for _, want := range []int{1, 2, 3} {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := q.Pop()
	assert.False(t, ok, "Pop on empty queue must report false")
	assert.Equal(t, 0, q.Len())
}

func TestQueue_CompactsConsumedPrefix(t *testing.T) {
	q := frontier.NewQueue[int]()
	for i := 0; i < 1000; i++ {
		q.Push(i)
	}
	for i := 0; i < 900; i++ {
		got, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, i, got)
	}
	q.Push(1000)
	assert.Equal(t, 101, q.Len())

	next, _ := q.Pop()
	assert.Equal(t, 900, next, "order must survive compaction")
}

func TestPriorityQueue_Order(t *testing.T) {
	type entry struct {
		prio int
		seq  int
	}
	pq := frontier.NewPriorityQueue(func(a, b entry) bool {
		if a.prio != b.prio {
			return a.prio < b.prio
		}
		return a.seq < b.seq
	})

	pq.Push(entry{prio: 5, seq: 0})
	pq.Push(entry{prio: 1, seq: 1})
	pq.Push(entry{prio: 3, seq: 2})
	pq.Push(entry{prio: 1, seq: 3})

	top, ok := pq.Peek()
	require.True(t, ok)
	assert.Equal(t, entry{prio: 1, seq: 1}, top)

	var got []entry
	for pq.Len() > 0 {
		e, _ := pq.Pop()
		got = append(got, e)
	}
	assert.Equal(t, []entry{{1, 1}, {1, 3}, {3, 2}, {5, 0}}, got)

	_, ok = pq.Pop()
	assert.False(t, ok)
	_, ok = pq.Peek()
	assert.False(t, ok)
}
