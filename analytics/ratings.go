package analytics

import (
	"sort"
)

const (
	// NeutralRating stands in for the average of a dish nobody rated.
	NeutralRating = 3.0
	// rankedDishCount is the size of the top and bottom rated dish sets.
	rankedDishCount = 5
	// poorRating is the exclusive upper bound of a poor score.
	poorRating = 3
)

// DishRating is the average score of a dish.
type DishRating struct {
	DishID  int     `json:"dish_id"`
	Average float64 `json:"average"`
}

// AverageRatings maps every dish in the snapshot to its mean score, or
// NeutralRating when it has no ratings.
func (s *Snapshot) AverageRatings() map[int]float64 {
	sums := make(map[int]int)
	counts := make(map[int]int)
	for _, r := range s.Ratings {
		sums[r.DishID] += r.Score
		counts[r.DishID]++
	}

	averages := make(map[int]float64, len(s.Dishes))
	for _, d := range s.Dishes {
		if n := counts[d.ID]; n > 0 {
			averages[d.ID] = float64(sums[d.ID]) / float64(n)
		} else {
			averages[d.ID] = NeutralRating
		}
	}
	return averages
}

// DishAverageRating returns the average of one dish. found is false for a dish
// missing from the snapshot.
func (s *Snapshot) DishAverageRating(dishID int) (avg float64, found bool) {
	avg, found = s.AverageRatings()[dishID]
	return avg, found
}

// DishRatings lists all dish averages ordered by dish id.
func (s *Snapshot) DishRatings() []DishRating {
	averages := s.AverageRatings()
	result := make([]DishRating, 0, len(averages))
	for id, avg := range averages {
		result = append(result, DishRating{DishID: id, Average: avg})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DishID < result[j].DishID })
	return result
}

// rankDishes orders dishes by average rating (descending when best is true,
// ascending otherwise), breaking ties by ascending dish id, and keeps at most n.
func (s *Snapshot) rankDishes(n int, best bool) []DishRating {
	ranked := s.DishRatings()
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Average != b.Average {
			if best {
				return a.Average > b.Average
			}
			return a.Average < b.Average
		}
		return a.DishID < b.DishID
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopRatedDishes returns the n highest rated dishes.
func (s *Snapshot) TopRatedDishes(n int) []DishRating {
	return s.rankDishes(n, true)
}

// LowestRatedDishes returns the n lowest rated dishes.
func (s *Snapshot) LowestRatedDishes(n int) []DishRating {
	return s.rankDishes(n, false)
}

// OrderedTopRated reports whether the customer ever ordered one of the five
// highest rated dishes. Unknown customers never did.
func (s *Snapshot) OrderedTopRated(custID int) bool {
	if !s.hasCustomer(custID) {
		return false
	}

	ordered := s.dishesOrderedBy(custID)
	for _, d := range s.TopRatedDishes(rankedDishCount) {
		if _, ok := ordered[d.DishID]; ok {
			return true
		}
	}
	return false
}

// CustomersRatedButNotOrdered returns the customers who gave one of the five
// lowest rated dishes a score below 3 without ever ordering that dish.
func (s *Snapshot) CustomersRatedButNotOrdered() []int {
	lowest := make(map[int]struct{})
	for _, d := range s.LowestRatedDishes(rankedDishCount) {
		lowest[d.DishID] = struct{}{}
	}

	customers := make(map[int]struct{})
	ordered := make(map[int]map[int]struct{})
	for _, r := range s.Ratings {
		if r.Score >= poorRating {
			continue
		}
		if _, ok := lowest[r.DishID]; !ok {
			continue
		}
		dishes, ok := ordered[r.CustomerID]
		if !ok {
			dishes = s.dishesOrderedBy(r.CustomerID)
			ordered[r.CustomerID] = dishes
		}
		if _, done := dishes[r.DishID]; !done {
			customers[r.CustomerID] = struct{}{}
		}
	}
	return sortedKeys(customers)
}
