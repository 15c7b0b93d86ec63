package scatter

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkSizes(t *testing.T) {
	items := make([]int, 12)

	chunks := Chunk(items, 10)
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], 10)
	assert.Len(t, chunks[1], 2)

	assert.Len(t, Chunk(items, 12), 1)
	assert.Len(t, Chunk(items, 5), 3)
	assert.Empty(t, Chunk([]int{}, 10))
}

func TestChunkClampsSize(t *testing.T) {
	chunks := Chunk([]int{1, 2, 3}, 0)
	require.Len(t, chunks, 3)
}

func TestRunVisitsEveryItemOnce(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	var mu sync.Mutex
	seen := map[string]int{}
	calls := 0

	err := Run(context.Background(), items, 3, func(ctx context.Context, chunk []string) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		for _, it := range chunk {
			seen[it]++
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 3, calls)
	for _, it := range items {
		assert.Equal(t, 1, seen[it], it)
	}
}

func TestRunJoinsBeforeReturningAndReportsError(t *testing.T) {
	boom := errors.New("boom")
	var completed sync.WaitGroup
	completed.Add(4)

	err := Run(context.Background(), []int{0, 1, 2, 3}, 1, func(ctx context.Context, chunk []int) error {
		defer completed.Done()
		if len(chunk) == 1 && chunk[0] == 0 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)

	// all chunk tasks must have finished by the time Run returns
	done := make(chan struct{})
	go func() {
		completed.Wait()
		close(done)
	}()
	<-done
}
