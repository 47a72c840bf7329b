package analytics

// Recommendations suggests dishes to custID: everything rated HighRating or
// more by a customer reachable in the similarity graph, minus what custID has
// already ordered. Ascending by dish id; empty for unknown or isolated customers.
func (s *Snapshot) Recommendations(custID int) []int {
	reachable := BuildSimilarityGraph(s).Reachable(custID)
	if len(reachable) == 0 {
		return []int{}
	}

	similar := make(map[int]struct{}, len(reachable))
	for _, id := range reachable {
		similar[id] = struct{}{}
	}

	ordered := s.dishesOrderedBy(custID)
	candidates := make(map[int]struct{})
	for _, r := range s.Ratings {
		if r.Score < HighRating {
			continue
		}
		if _, ok := similar[r.CustomerID]; !ok {
			continue
		}
		if _, done := ordered[r.DishID]; done {
			continue
		}
		candidates[r.DishID] = struct{}{}
	}
	return sortedKeys(candidates)
}
