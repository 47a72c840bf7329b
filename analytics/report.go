package analytics

import (
	"context"
	"time"

	"github.com/yeremiapane/yummy-app/models"
)

// YearReport gathers the figures of one calendar year computed over a single
// snapshot.
type YearReport struct {
	Year                  int             `json:"year"`
	Orders                int             `json:"orders"`
	MonthlyProfit         []MonthlyProfit `json:"monthly_profit"`
	CumulativeProfit      []MonthlyProfit `json:"cumulative_profit"`
	TotalProfit           float64         `json:"total_profit"`
	TopSpenders           []int           `json:"top_spenders"`
	MostOrderedDish       *models.Dish    `json:"most_ordered_dish"`
	TopRatedDishes        []DishRating    `json:"top_rated_dishes"`
	LowestRatedDishes     []DishRating    `json:"lowest_rated_dishes"`
	NonWorthPriceIncrease []int           `json:"non_worth_price_increase"`
	RatedButNotOrdered    []int           `json:"rated_but_not_ordered"`
}

// Report builds the year report. MonthlyProfit runs January to December;
// CumulativeProfit keeps the December-first order of CumulativeProfitPerMonth.
// The all-time figures (spenders, ratings, prices) are not restricted to year.
func (s *Snapshot) Report(year int) *YearReport {
	report := &YearReport{
		Year:                  year,
		MonthlyProfit:         make([]MonthlyProfit, 0, 12),
		CumulativeProfit:      s.CumulativeProfit(year),
		TopSpenders:           s.CustomersWithMaxAverageSpend(),
		TopRatedDishes:        s.TopRatedDishes(rankedDishCount),
		LowestRatedDishes:     s.LowestRatedDishes(rankedDishCount),
		NonWorthPriceIncrease: s.NonWorthPriceIncreases(),
		RatedButNotOrdered:    s.CustomersRatedButNotOrdered(),
	}

	for _, o := range s.Orders {
		if o.Date.Year() == year {
			report.Orders++
		}
	}
	for m := time.January; m <= time.December; m++ {
		profit := s.MonthlyProfit(year, m)
		report.MonthlyProfit = append(report.MonthlyProfit, MonthlyProfit{Month: int(m), Profit: profit})
		report.TotalProfit += profit
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	if dish, found := s.MostOrderedDish(start, end); found {
		report.MostOrderedDish = &dish
	}
	return report
}

// YearReport computes the year report over one snapshot.
func (e *Engine) YearReport(ctx context.Context, year int) (*YearReport, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	snap, err := e.load(ctx, "year_report")
	if err != nil {
		return nil, err
	}
	return snap.Report(year), nil
}
