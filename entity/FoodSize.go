package entity

import (
	"gorm.io/gorm"
)

// FoodSize is a per-item size variant; PriceDelta is added to the item's base price.
type FoodSize struct {
	gorm.Model
	Name       string `json:"name"`
	PriceDelta int64  `json:"priceDelta"` // minor units
	SortOrder  int    `json:"sortOrder"`

	FoodItemID uint     `json:"foodItemId"`
	FoodItem   FoodItem `json:"-"`
}
