package analytics

import (
	"time"

	"github.com/yeremiapane/yummy-app/models"
)

// snapshotBuilder keeps test fixtures short.
type snapshotBuilder struct {
	snap Snapshot
}

func newSnapshot() *snapshotBuilder {
	return &snapshotBuilder{}
}

func (b *snapshotBuilder) customer(ids ...int) *snapshotBuilder {
	for _, id := range ids {
		b.snap.Customers = append(b.snap.Customers, models.Customer{
			ID: id, FullName: "Customer", Age: 30, Phone: "0501234567",
		})
	}
	return b
}

func (b *snapshotBuilder) dish(id int, price float64, active bool) *snapshotBuilder {
	b.snap.Dishes = append(b.snap.Dishes, models.Dish{ID: id, Name: "Dish name", Price: price, IsActive: active})
	return b
}

func (b *snapshotBuilder) order(id int, date time.Time, fee float64, custID int) *snapshotBuilder {
	b.snap.Orders = append(b.snap.Orders, models.Order{ID: id, Date: date, DeliveryFee: fee, DeliveryAddress: "Main street 1"})
	if custID > 0 {
		b.snap.Placements = append(b.snap.Placements, models.Placement{OrderID: id, CustomerID: custID})
	}
	return b
}

func (b *snapshotBuilder) line(orderID, dishID, amount int, price float64) *snapshotBuilder {
	b.snap.OrderLines = append(b.snap.OrderLines, models.OrderLine{OrderID: orderID, DishID: dishID, Amount: amount, Price: price})
	return b
}

func (b *snapshotBuilder) rate(custID, dishID, score int) *snapshotBuilder {
	b.snap.Ratings = append(b.snap.Ratings, models.Rating{CustomerID: custID, DishID: dishID, Score: score})
	return b
}

func (b *snapshotBuilder) build() *Snapshot {
	s := b.snap
	return &s
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}
