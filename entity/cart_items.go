package entity

import (
	"gorm.io/gorm"
)

// CartItem identity is (cart, food item, size); additions with the same
// identity merge into one line. SizeID 0 means "no size".
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	FoodItemID uint     `json:"foodItemId"`
	FoodItem   FoodItem `json:"-"`

	SizeID uint `json:"sizeId"`

	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // price in effect at add time
	Total     int64  `json:"total"`
	Note      string `json:"note"`
}
