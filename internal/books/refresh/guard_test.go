package refresh

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard_LatestWins(t *testing.T) {
	var g Guard

	first := g.Next()
	second := g.Next()

	// the slow first recompute resolves after the second started
	assert.False(t, g.Accept(first))
	assert.True(t, g.Accept(second))
}

func TestGuard_SingleGeneration(t *testing.T) {
	var g Guard
	gen := g.Next()
	assert.True(t, g.Accept(gen))
	// accepting is not consuming
	assert.True(t, g.Accept(gen))
}

func TestGuard_Concurrent(t *testing.T) {
	var g Guard
	var wg sync.WaitGroup

	gens := make([]Generation, 100)
	for i := range gens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			gens[i] = g.Next()
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, gen := range gens {
		if g.Accept(gen) {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted)
}
