package entity

import (
	"gorm.io/gorm"
)

// Cancellation is written once alongside the status flip to cancelled,
// never mutated or deleted.
type Cancellation struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex" json:"orderId"`
	Order   Order `json:"-"`

	Reason    string `json:"reason"`
	ActorID   uint   `gorm:"index" json:"actorId"`
	ActorRole string `json:"actorRole"`
}
