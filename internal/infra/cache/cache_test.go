package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGet(t *testing.T) {
	m := New[string, int]()

	_, ok := m.Get("a")
	assert.False(t, ok)

	m.Put("a", 1)
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	m.Put("a", 2)
	v, _ = m.Get("a")
	assert.Equal(t, 2, v)
}

func TestPutIfAbsentKeepsExisting(t *testing.T) {
	m := New[string, string]()

	require.True(t, m.PutIfAbsent("h1", "real"))
	assert.False(t, m.PutIfAbsent("h1", "placeholder"))

	v, ok := m.Get("h1")
	require.True(t, ok)
	assert.Equal(t, "real", v)
}

func TestDeleteAndClear(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)

	m.Delete("a")
	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())

	m.Clear()
	assert.Equal(t, 0, m.Len())
}

func TestConcurrentWritersDistinctKeys(t *testing.T) {
	m := New[string, int]()

	const writers = 16
	const perWriter = 200

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				key := fmt.Sprintf("w%d-%d", w, i)
				m.Put(key, i)
				if v, ok := m.Get(key); !ok || v != i {
					t.Errorf("lost write for %s", key)
				}
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, m.Len())
}
