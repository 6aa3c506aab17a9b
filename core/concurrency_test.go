// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every arc is recorded.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make(chan error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Len(t, g.Neighbors("X"), num)
	require.Equal(t, 2*num, g.ArcCount())
}

// TestConcurrentReaders validates that concurrent Neighbors/Position/Nodes calls
// do not race with each other.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge("Hub", fmt.Sprintf("N%d", i), 1))
	}

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			_ = g.Neighbors("Hub")
			_, _ = g.Position("Hub")
			_ = g.Nodes()
		}()
	}
	wg.Wait()
}
