package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSimilarityGraph(t *testing.T) {
	snap := newSnapshot().
		customer(1, 2, 3, 4, 5).
		dish(10, 5, true).dish(11, 5, true).
		rate(2, 10, 5).rate(1, 10, 4).rate(3, 10, 3).
		rate(1, 11, 5).rate(2, 11, 4).rate(4, 11, 5).
		build()

	g := BuildSimilarityGraph(snap)

	t.Run("canonical edges without duplicates", func(t *testing.T) {
		assert.Equal(t, []Edge{{A: 1, B: 2}, {A: 1, B: 4}, {A: 2, B: 4}}, g.Edges())
	})

	t.Run("low scores do not link", func(t *testing.T) {
		assert.Empty(t, g.Neighbors(3))
	})

	t.Run("neighbors", func(t *testing.T) {
		assert.Equal(t, []int{2, 4}, g.Neighbors(1))
	})
}

func TestReachable(t *testing.T) {
	// 1-2 share dish 10, 2-3 share dish 11, 3-4 share dish 12, 5-6 share dish 13.
	snap := newSnapshot().
		rate(1, 10, 5).rate(2, 10, 4).
		rate(2, 11, 4).rate(3, 11, 4).
		rate(3, 12, 5).rate(4, 12, 5).
		rate(5, 13, 4).rate(6, 13, 4).
		rate(7, 13, 2).
		build()

	g := BuildSimilarityGraph(snap)

	t.Run("transitive closure excludes the source", func(t *testing.T) {
		assert.Equal(t, []int{2, 3, 4}, g.Reachable(1))
		assert.Equal(t, []int{1, 2, 3}, g.Reachable(4))
		assert.Equal(t, []int{6}, g.Reachable(5))
	})

	t.Run("isolated and unknown customers", func(t *testing.T) {
		assert.Empty(t, g.Reachable(7))
		assert.Empty(t, g.Reachable(99))
	})

	t.Run("connectivity is symmetric", func(t *testing.T) {
		for a := 1; a <= 7; a++ {
			for _, b := range g.Reachable(a) {
				assert.True(t, g.Connected(b, a), "%d reaches %d but not the reverse", a, b)
			}
		}
		assert.False(t, g.Connected(1, 5))
		assert.False(t, g.Connected(1, 1))
	})
}
