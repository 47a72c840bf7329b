package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecommendations(t *testing.T) {
	t.Run("similar customer's favourite is suggested", func(t *testing.T) {
		snap := newSnapshot().
			customer(1, 2).
			dish(10, 5, true).dish(11, 5, true).
			rate(1, 10, 5).rate(2, 10, 5).
			order(1, day(2024, time.June, 1), 0, 2).line(1, 11, 1, 5).
			rate(2, 11, 5).
			build()

		assert.Contains(t, snap.Recommendations(1), 11)
	})

	t.Run("dishes already ordered are removed", func(t *testing.T) {
		snap := newSnapshot().
			customer(1, 2, 3).
			rate(1, 10, 4).rate(2, 10, 4).
			rate(2, 12, 5).rate(3, 12, 5).
			rate(3, 13, 4).rate(3, 14, 5).rate(2, 15, 3).
			order(1, day(2024, time.June, 1), 0, 1).line(1, 13, 1, 5).line(1, 10, 1, 5).
			build()

		got := snap.Recommendations(1)
		// 3 is reachable through 2; 15 is only rated 3; 10 and 13 were ordered.
		assert.Equal(t, []int{12, 14}, got)
		ordered := snap.dishesOrderedBy(1)
		for _, dishID := range got {
			_, done := ordered[dishID]
			assert.False(t, done)
		}
	})

	t.Run("isolated or unknown customer", func(t *testing.T) {
		snap := newSnapshot().customer(1, 2).rate(1, 10, 5).rate(2, 11, 5).build()
		assert.Empty(t, snap.Recommendations(1))
		assert.Empty(t, snap.Recommendations(42))
		assert.NotNil(t, snap.Recommendations(42))
	})
}
