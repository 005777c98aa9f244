package repository

import (
	"time"

	"github.com/dennxbot/food-ordering-system-sub000/entity"

	"gorm.io/gorm"
)

type CancellationRepository struct{ DB *gorm.DB }

func NewCancellationRepository(db *gorm.DB) *CancellationRepository {
	return &CancellationRepository{DB: db}
}

func (r *CancellationRepository) Create(tx *gorm.DB, rec *entity.Cancellation) error {
	return tx.Create(rec).Error
}

// CountForActorSince counts cancellations by the actor from `since` on; the
// quota check passes the start of the calendar day.
func (r *CancellationRepository) CountForActorSince(actorID uint, since time.Time) (int, error) {
	var count int64
	err := r.DB.Model(&entity.Cancellation{}).
		Where("actor_id = ? AND created_at >= ?", actorID, since).
		Count(&count).Error
	return int(count), err
}

func (r *CancellationRepository) GetForOrder(orderID uint) (*entity.Cancellation, error) {
	var rec entity.Cancellation
	if err := r.DB.Where("order_id = ?", orderID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
