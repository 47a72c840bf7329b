package models

// Dish is a menu entry. Price is always the current price; order lines keep
// their own copy taken when the line was added.
type Dish struct {
	ID       int     `gorm:"primaryKey;autoIncrement:false" json:"dish_id" validate:"gt=0"`
	Name     string  `gorm:"type:varchar(255);not null;check:length(name) >= 4" json:"name" validate:"min=4"`
	Price    float64 `gorm:"type:decimal(10,2);not null;check:price > 0" json:"price" validate:"gt=0"`
	IsActive bool    `gorm:"not null" json:"is_active"`
}
