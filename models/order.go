package models

import (
	"time"
)

type Order struct {
	ID              int       `gorm:"primaryKey;autoIncrement:false" json:"order_id" validate:"gt=0"`
	Date            time.Time `gorm:"not null;index" json:"date" validate:"required"`
	DeliveryFee     float64   `gorm:"type:decimal(10,2);not null;check:delivery_fee >= 0" json:"delivery_fee" validate:"gte=0"`
	DeliveryAddress string    `gorm:"type:text;not null;check:length(delivery_address) >= 5" json:"delivery_address" validate:"min=5"`
}

// Placement links an order to the single customer who placed it.
type Placement struct {
	OrderID    int `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	CustomerID int `gorm:"not null;index" json:"cust_id"`
}
