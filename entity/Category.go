package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	FoodItems []FoodItem `json:"-"`
}
