package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/yeremiapane/yummy-app/models"
)

// spendEpsilon absorbs float noise when comparing averages against the maximum.
const spendEpsilon = 1e-9

// OrderTotal pairs an order id with its total price.
type OrderTotal struct {
	OrderID int     `json:"order_id"`
	Total   float64 `json:"total"`
}

// MonthlyProfit is one (month, cumulative profit) entry of a yearly report.
type MonthlyProfit struct {
	Month  int     `json:"month"`
	Profit float64 `json:"profit"`
}

// orderTotals returns lines subtotal + delivery fee for every order.
// Orders without lines total their delivery fee.
func (s *Snapshot) orderTotals() map[int]float64 {
	lines := s.linesByOrder()
	totals := make(map[int]float64, len(s.Orders))
	for _, o := range s.Orders {
		total := o.DeliveryFee
		for _, l := range lines[o.ID] {
			total += l.Subtotal()
		}
		totals[o.ID] = total
	}
	return totals
}

// OrderTotal returns the total price of an order, or 0 when the order is unknown.
func (s *Snapshot) OrderTotal(orderID int) float64 {
	return s.orderTotals()[orderID]
}

// OrderTotals lists the total of every order, ascending by order id.
func (s *Snapshot) OrderTotals() []OrderTotal {
	totals := s.orderTotals()
	result := make([]OrderTotal, 0, len(totals))
	for id, total := range totals {
		result = append(result, OrderTotal{OrderID: id, Total: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].OrderID < result[j].OrderID })
	return result
}

// AverageSpend maps every customer with at least one placed order to the mean
// total of their orders.
func (s *Snapshot) AverageSpend() map[int]float64 {
	totals := s.orderTotals()
	averages := make(map[int]float64)
	for custID, orderIDs := range s.ordersByCustomer() {
		var sum float64
		for _, id := range orderIDs {
			sum += totals[id]
		}
		averages[custID] = sum / float64(len(orderIDs))
	}
	return averages
}

// CustomersWithMaxAverageSpend returns every customer whose average order total
// equals the global maximum, ascending by id. Customers without orders are
// not considered.
func (s *Snapshot) CustomersWithMaxAverageSpend() []int {
	averages := s.AverageSpend()
	result := make([]int, 0)
	if len(averages) == 0 {
		return result
	}

	best := math.Inf(-1)
	for _, avg := range averages {
		if avg > best {
			best = avg
		}
	}

	for custID, avg := range averages {
		if math.Abs(avg-best) <= spendEpsilon {
			result = append(result, custID)
		}
	}
	sort.Ints(result)
	return result
}

// MostOrderedDish returns the dish with the largest ordered quantity across
// orders dated within [start, end]; ties go to the smallest dish id. found is
// false when no order line qualifies.
func (s *Snapshot) MostOrderedDish(start, end time.Time) (dish models.Dish, found bool) {
	inPeriod := make(map[int]struct{})
	for _, o := range s.Orders {
		if !o.Date.Before(start) && !o.Date.After(end) {
			inPeriod[o.ID] = struct{}{}
		}
	}

	quantities := make(map[int]int)
	for _, l := range s.OrderLines {
		if _, ok := inPeriod[l.OrderID]; ok {
			quantities[l.DishID] += l.Amount
		}
	}

	dishes := s.dishByID()
	bestQty := 0
	for dishID, qty := range quantities {
		d, ok := dishes[dishID]
		if !ok {
			continue
		}
		if !found || qty > bestQty || (qty == bestQty && dishID < dish.ID) {
			dish, bestQty, found = d, qty, true
		}
	}
	return dish, found
}

// MonthlyProfit sums the totals of the orders dated in the given month.
// Each order counts once, whatever its delivery fee.
func (s *Snapshot) MonthlyProfit(year int, month time.Month) float64 {
	var profit float64
	totals := s.orderTotals()
	for _, o := range s.Orders {
		if o.Date.Year() == year && o.Date.Month() == month {
			profit += totals[o.ID]
		}
	}
	return profit
}

// CumulativeProfit returns, for every month of the year, the profit of all
// months up to and including it. Entries are ordered from December to January.
func (s *Snapshot) CumulativeProfit(year int) []MonthlyProfit {
	var perMonth [13]float64
	totals := s.orderTotals()
	for _, o := range s.Orders {
		if o.Date.Year() == year {
			perMonth[o.Date.Month()] += totals[o.ID]
		}
	}

	var cumulative [13]float64
	for m := 1; m <= 12; m++ {
		cumulative[m] = cumulative[m-1] + perMonth[m]
	}

	result := make([]MonthlyProfit, 0, 12)
	for m := 12; m >= 1; m-- {
		result = append(result, MonthlyProfit{Month: m, Profit: cumulative[m]})
	}
	return result
}
