package repository

import (
	"github.com/dennxbot/food-ordering-system-sub000/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// GetFoodItemBasics loads just what pricing needs.
func (r *MenuRepository) GetFoodItemBasics(id uint) (*entity.FoodItem, error) {
	var m entity.FoodItem
	if err := r.DB.Select("id, price, restaurant_id, is_available").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetSizeForItem returns the size only if it belongs to the given item.
func (r *MenuRepository) GetSizeForItem(sizeID, foodItemID uint) (*entity.FoodSize, error) {
	var s entity.FoodSize
	err := r.DB.Where("id = ? AND food_item_id = ?", sizeID, foodItemID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MenuRepository) ListForRestaurant(restID uint) ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("sort_order").
		Preload("FoodItems", "is_available = ?", true).
		Preload("FoodItems.Sizes", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) GetFoodItem(id uint) (*entity.FoodItem, error) {
	var m entity.FoodItem
	if err := r.DB.Preload("Sizes").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *MenuRepository) CreateFoodItem(m *entity.FoodItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) SaveFoodItem(m *entity.FoodItem) error {
	return r.DB.Save(m).Error
}
