package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	IsOpen      bool   `gorm:"default:true" json:"isOpen"`

	UserID uint `json:"userId"` // owner
	User   User `json:"-"`

	Categories []Category `json:"-"`
	FoodItems  []FoodItem `json:"-"`
	Orders     []Order    `json:"-"`
}
