package repository

import (
	"github.com/dennxbot/food-ordering-system-sub000/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *RestaurantRepository) Exists(restID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", restID).Count(&count).Error
	return count > 0, err
}

func (r *RestaurantRepository) Get(restID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, restID).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) List(page, limit int) ([]entity.Restaurant, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := r.DB.Model(&entity.Restaurant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []entity.Restaurant
	err := r.DB.Order("id").Limit(limit).Offset((page - 1) * limit).Find(&rows).Error
	return rows, total, err
}

func (r *RestaurantRepository) ListOwnedBy(userID uint) ([]entity.Restaurant, error) {
	var rows []entity.Restaurant
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&rows).Error
	return rows, err
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Save(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}
