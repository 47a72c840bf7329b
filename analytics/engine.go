package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/yummy-app/models"
)

// Engine answers analytics queries. Each call loads a fresh snapshot from its
// source; an Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	source SnapshotSource
	log    logrus.FieldLogger
}

// NewEngine creates an engine over source. A nil logger falls back to the
// standard logrus logger.
func NewEngine(source SnapshotSource, logger logrus.FieldLogger) *Engine {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Engine{
		source: source,
		log:    logger,
	}
}

func (e *Engine) load(ctx context.Context, op string) (*Snapshot, error) {
	start := time.Now()
	snap, err := e.source.Snapshot(ctx)
	if err != nil {
		e.log.WithError(err).WithField("op", op).Error("failed to load snapshot")
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	e.log.WithFields(logrus.Fields{
		"op":        op,
		"customers": len(snap.Customers),
		"orders":    len(snap.Orders),
		"lines":     len(snap.OrderLines),
		"ratings":   len(snap.Ratings),
		"took":      time.Since(start),
	}).Debug("snapshot loaded")
	return snap, nil
}

// OrderTotal returns the total price of an order; 0 when it does not exist.
func (e *Engine) OrderTotal(ctx context.Context, orderID int) (float64, error) {
	if err := requirePositive("order id", orderID); err != nil {
		return 0, err
	}
	snap, err := e.load(ctx, "order_total")
	if err != nil {
		return 0, err
	}
	return snap.OrderTotal(orderID), nil
}

// OrderTotals lists every order with its total.
func (e *Engine) OrderTotals(ctx context.Context) ([]OrderTotal, error) {
	snap, err := e.load(ctx, "order_totals")
	if err != nil {
		return nil, err
	}
	return snap.OrderTotals(), nil
}

// CustomersSpentMaxAvgAmount returns the customers with the highest average
// order total, ascending by id.
func (e *Engine) CustomersSpentMaxAvgAmount(ctx context.Context) ([]int, error) {
	snap, err := e.load(ctx, "max_avg_spend")
	if err != nil {
		return nil, err
	}
	return snap.CustomersWithMaxAverageSpend(), nil
}

// MostOrderedDishInPeriod returns the most ordered dish in [start, end].
// found is false when nothing was ordered in the period.
func (e *Engine) MostOrderedDishInPeriod(ctx context.Context, start, end time.Time) (dish models.Dish, found bool, err error) {
	if start.After(end) {
		return models.Dish{}, false, fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidArgument, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	snap, err := e.load(ctx, "most_ordered_dish")
	if err != nil {
		return models.Dish{}, false, err
	}
	dish, found = snap.MostOrderedDish(start, end)
	return dish, found, nil
}

// DishAverageRatings lists the average rating of every dish.
func (e *Engine) DishAverageRatings(ctx context.Context) ([]DishRating, error) {
	snap, err := e.load(ctx, "dish_ratings")
	if err != nil {
		return nil, err
	}
	return snap.DishRatings(), nil
}

// AverageDishRating returns one dish average; found is false for unknown dishes.
func (e *Engine) AverageDishRating(ctx context.Context, dishID int) (avg float64, found bool, err error) {
	if err := requirePositive("dish id", dishID); err != nil {
		return 0, false, err
	}
	snap, err := e.load(ctx, "dish_rating")
	if err != nil {
		return 0, false, err
	}
	avg, found = snap.DishAverageRating(dishID)
	return avg, found, nil
}

// MonthlyProfit returns the profit of one calendar month.
func (e *Engine) MonthlyProfit(ctx context.Context, year, month int) (float64, error) {
	if err := validateYear(year); err != nil {
		return 0, err
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month must be within 1..12, got %d", ErrInvalidArgument, month)
	}
	snap, err := e.load(ctx, "monthly_profit")
	if err != nil {
		return 0, err
	}
	return snap.MonthlyProfit(year, time.Month(month)), nil
}

// CumulativeProfitPerMonth returns the running profit of each month of year,
// December first.
func (e *Engine) CumulativeProfitPerMonth(ctx context.Context, year int) ([]MonthlyProfit, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	snap, err := e.load(ctx, "cumulative_profit")
	if err != nil {
		return nil, err
	}
	return snap.CumulativeProfit(year), nil
}

// SimilarCustomers returns every customer transitively similar to custID.
func (e *Engine) SimilarCustomers(ctx context.Context, custID int) ([]int, error) {
	if err := requirePositive("customer id", custID); err != nil {
		return nil, err
	}
	snap, err := e.load(ctx, "similar_customers")
	if err != nil {
		return nil, err
	}
	return BuildSimilarityGraph(snap).Reachable(custID), nil
}

// PotentialDishRecommendations returns the dishes to suggest to custID.
func (e *Engine) PotentialDishRecommendations(ctx context.Context, custID int) ([]int, error) {
	if err := requirePositive("customer id", custID); err != nil {
		return nil, err
	}
	snap, err := e.load(ctx, "recommendations")
	if err != nil {
		return nil, err
	}
	dishes := snap.Recommendations(custID)
	e.log.WithFields(logrus.Fields{"customer": custID, "dishes": len(dishes)}).Debug("recommendations computed")
	return dishes, nil
}

// NonWorthPriceIncrease returns the dishes whose price increase lowered the profit proxy.
func (e *Engine) NonWorthPriceIncrease(ctx context.Context) ([]int, error) {
	snap, err := e.load(ctx, "non_worth_price_increase")
	if err != nil {
		return nil, err
	}
	return snap.NonWorthPriceIncreases(), nil
}

// DishPriceHistory returns the price points recorded for a dish.
func (e *Engine) DishPriceHistory(ctx context.Context, dishID int) ([]PricePoint, error) {
	if err := requirePositive("dish id", dishID); err != nil {
		return nil, err
	}
	snap, err := e.load(ctx, "price_history")
	if err != nil {
		return nil, err
	}
	return snap.PriceHistory(dishID), nil
}

// DidCustomerOrderTopRatedDishes reports whether custID ordered one of the
// five best rated dishes.
func (e *Engine) DidCustomerOrderTopRatedDishes(ctx context.Context, custID int) (bool, error) {
	if err := requirePositive("customer id", custID); err != nil {
		return false, err
	}
	snap, err := e.load(ctx, "ordered_top_rated")
	if err != nil {
		return false, err
	}
	return snap.OrderedTopRated(custID), nil
}

// CustomersRatedButNotOrdered returns the customers who rated one of the five
// worst dishes poorly without ordering it.
func (e *Engine) CustomersRatedButNotOrdered(ctx context.Context) ([]int, error) {
	snap, err := e.load(ctx, "rated_not_ordered")
	if err != nil {
		return nil, err
	}
	return snap.CustomersRatedButNotOrdered(), nil
}

func validateYear(year int) error {
	if year <= 0 {
		return fmt.Errorf("%w: year must be positive, got %d", ErrInvalidArgument, year)
	}
	return nil
}
