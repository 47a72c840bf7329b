package models

// Customer is a registered buyer. IDs are assigned by the caller and never change.
type Customer struct {
	ID       int    `gorm:"primaryKey;autoIncrement:false" json:"cust_id" validate:"gt=0"`
	FullName string `gorm:"type:varchar(255);not null" json:"full_name"`
	Age      int    `gorm:"not null;check:age >= 18 AND age <= 120" json:"age" validate:"gte=18,lte=120"`
	Phone    string `gorm:"type:varchar(10);not null;check:length(phone) = 10" json:"phone" validate:"len=10,numeric"`
}
