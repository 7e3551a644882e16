package uid

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_StartsAtOne(t *testing.T) {
	g := newGenerator()
	assert.Equal(t, uint64(0), g.last.Load())
	first := g.next("")
	assert.Equal(t, uint64(1), first.ID())
	second := g.next("second")
	assert.Equal(t, uint64(2), second.ID())
	assert.Equal(t, "second", second.Label())
}

func TestNew_Concurrent(t *testing.T) {
	const workers, perWorker = 16, 500

	var wg sync.WaitGroup
	ids := make(chan uint64, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if w%2 == 0 {
					ids <- New().ID()
				} else {
					ids <- NewNamed("worker").ID()
				}
			}
		}(w)
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool, workers*perWorker)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestNew_ProcessWideIncreasing(t *testing.T) {
	prev := New().ID()
	assert.Equal(t, prev, Last())
	for i := 0; i < 10; i++ {
		next := NewNamed("x").ID()
		assert.Greater(t, next, prev)
		prev = next
	}
	assert.Equal(t, prev, Last())
}

func TestNew_IndependentCallsNeverEqual(t *testing.T) {
	a, b := New(), New()
	c, d := NewNamed("same"), NewNamed("same")
	assert.False(t, a.Equal(b))
	assert.False(t, c.Equal(d))
	assert.False(t, a.Equal(c))
}
