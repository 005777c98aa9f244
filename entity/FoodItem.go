package entity

import (
	"gorm.io/gorm"
)

type FoodItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // minor units
	Picture     string `json:"picture"`
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// preloaded on menu endpoints
	Sizes []FoodSize `json:"sizes"`

	OrderItems []OrderItem `json:"-"`
}
