package models

// Rating is a customer's score for a dish, one per (customer, dish).
type Rating struct {
	CustomerID int `gorm:"primaryKey;autoIncrement:false" json:"cust_id"`
	DishID     int `gorm:"primaryKey;autoIncrement:false;index" json:"dish_id"`
	Score      int `gorm:"column:rating;not null;check:rating >= 1 AND rating <= 5" json:"rating" validate:"gte=1,lte=5"`
}
