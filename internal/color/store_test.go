package color

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_CreatesOncePerID(t *testing.T) {
	s := NewStore()
	var mu sync.Mutex
	calls := 0
	create := func() Assignment {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return Assignment{Color: "red", Bucket: 0, Index: calls}
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.getOrCreate("ev1", create)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
	a, ok := s.get("ev1")
	assert.True(t, ok)
	assert.Equal(t, 1, a.Index)
	_, ok = s.get("ev2")
	assert.False(t, ok)
}
