package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Number string `gorm:"uniqueIndex" json:"number"` // public receipt/lookup code

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Address       string `json:"address"` // snapshot at checkout, delivery only

	OrderType     string `json:"orderType"`     // delivery | pickup
	PaymentMethod string `json:"paymentMethod"` // cash | card
	Source        string `json:"source"`        // online | kiosk | pos
	OrderStatus   string `gorm:"index" json:"orderStatus"`

	Subtotal int64 `json:"subtotal"`
	Total    int64 `json:"total"`

	UserID uint `json:"userId"` // 0 for kiosk/pos walk-ins
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// preload only on detail
	OrderItems   []OrderItem   `json:"-"`
	Cancellation *Cancellation `gorm:"foreignKey:OrderID" json:"-"`
}
