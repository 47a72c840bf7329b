package analytics

import (
	"sort"
)

// PricePoint summarises the order lines of one dish recorded at one price.
type PricePoint struct {
	Price         float64 `json:"price"`
	AverageAmount float64 `json:"average_amount"`
	ProfitProxy   float64 `json:"profit_proxy"`
	Lines         int     `json:"lines"`
}

// PriceHistory groups the order lines of a dish by their price snapshot,
// ascending by price.
func (s *Snapshot) PriceHistory(dishID int) []PricePoint {
	amounts := make(map[float64]int)
	counts := make(map[float64]int)
	for _, l := range s.OrderLines {
		if l.DishID != dishID {
			continue
		}
		amounts[l.Price] += l.Amount
		counts[l.Price]++
	}

	points := make([]PricePoint, 0, len(counts))
	for price, n := range counts {
		avg := float64(amounts[price]) / float64(n)
		points = append(points, PricePoint{
			Price:         price,
			AverageAmount: avg,
			ProfitProxy:   avg * price,
			Lines:         n,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Price < points[j].Price })
	return points
}

// NonWorthPriceIncreases returns the active dishes whose profit proxy at the
// current price is lower than at some cheaper historical price. Dishes with no
// line at the current price have nothing to compare and are never flagged.
func (s *Snapshot) NonWorthPriceIncreases() []int {
	flagged := make(map[int]struct{})
	for _, d := range s.Dishes {
		if !d.IsActive {
			continue
		}

		history := s.PriceHistory(d.ID)
		var current *PricePoint
		for i := range history {
			if history[i].Price == d.Price {
				current = &history[i]
				break
			}
		}
		if current == nil {
			continue
		}

		for _, p := range history {
			if p.Price < d.Price && current.ProfitProxy < p.ProfitProxy {
				flagged[d.ID] = struct{}{}
				break
			}
		}
	}
	return sortedKeys(flagged)
}
