package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a line snapshot taken at submission time; immutable afterwards.
type OrderItem struct {
	gorm.Model
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`
	Note      string `json:"note"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	FoodItemID uint     `json:"foodItemId"`
	FoodItem   FoodItem `json:"-"`

	// 0 = no size
	SizeID uint `json:"sizeId"`
}
