package analytics

import (
	"context"
	"sort"

	"github.com/yeremiapane/yummy-app/models"
)

// Snapshot is a point-in-time copy of every domain table. It is read-only for
// the duration of a computation.
type Snapshot struct {
	Customers  []models.Customer
	Dishes     []models.Dish
	Orders     []models.Order
	Placements []models.Placement
	OrderLines []models.OrderLine
	Ratings    []models.Rating
}

// SnapshotSource hands out one coherent snapshot per call.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

func (s *Snapshot) orderByID() map[int]models.Order {
	orders := make(map[int]models.Order, len(s.Orders))
	for _, o := range s.Orders {
		orders[o.ID] = o
	}
	return orders
}

func (s *Snapshot) dishByID() map[int]models.Dish {
	dishes := make(map[int]models.Dish, len(s.Dishes))
	for _, d := range s.Dishes {
		dishes[d.ID] = d
	}
	return dishes
}

func (s *Snapshot) hasCustomer(custID int) bool {
	for _, c := range s.Customers {
		if c.ID == custID {
			return true
		}
	}
	return false
}

// linesByOrder groups order lines by order id.
func (s *Snapshot) linesByOrder() map[int][]models.OrderLine {
	lines := make(map[int][]models.OrderLine)
	for _, l := range s.OrderLines {
		lines[l.OrderID] = append(lines[l.OrderID], l)
	}
	return lines
}

// ordersByCustomer maps a customer id to the ids of the orders they placed.
// Placements pointing at orders missing from the snapshot are dropped.
func (s *Snapshot) ordersByCustomer() map[int][]int {
	known := s.orderByID()
	placed := make(map[int][]int)
	for _, p := range s.Placements {
		if _, ok := known[p.OrderID]; !ok {
			continue
		}
		placed[p.CustomerID] = append(placed[p.CustomerID], p.OrderID)
	}
	return placed
}

// dishesOrderedBy returns the set of dish ids found in any order placed by custID.
func (s *Snapshot) dishesOrderedBy(custID int) map[int]struct{} {
	orderIDs := make(map[int]struct{})
	for _, p := range s.Placements {
		if p.CustomerID == custID {
			orderIDs[p.OrderID] = struct{}{}
		}
	}

	dishes := make(map[int]struct{})
	for _, l := range s.OrderLines {
		if _, ok := orderIDs[l.OrderID]; ok {
			dishes[l.DishID] = struct{}{}
		}
	}
	return dishes
}

func sortedKeys(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
