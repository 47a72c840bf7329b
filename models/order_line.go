package models

// OrderLine is one dish inside an order. Price is the dish price at the moment
// the line was added and is not touched by later price updates.
type OrderLine struct {
	OrderID int     `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	DishID  int     `gorm:"primaryKey;autoIncrement:false;index" json:"dish_id"`
	Amount  int     `gorm:"not null;check:amount > 0" json:"amount" validate:"gt=0"`
	Price   float64 `gorm:"type:decimal(10,2);not null;check:price > 0" json:"price" validate:"gt=0"`
}

// Subtotal returns amount x frozen price.
func (l OrderLine) Subtotal() float64 {
	return float64(l.Amount) * l.Price
}
