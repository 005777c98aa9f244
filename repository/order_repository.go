package repository

import (
	"strings"
	"time"

	"github.com/dennxbot/food-ordering-system-sub000/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Writes ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// UpdateStatusGuard is the authoritative transition: a compare-and-swap
// UPDATE that only fires when the order is still in `from`. Zero affected
// rows means the order moved concurrently or `from` was wrong.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status = ?", orderID, from).
		Update("order_status", to)
	return res.RowsAffected, res.Error
}

// SetStatus updates unconditionally; admin-only. Jump validation is the
// store's concern, and the store here accepts what the admin says.
func (r *OrderRepository) SetStatus(tx *gorm.DB, orderID uint, to string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("order_status", to).Error
}

// ---------------- Reads ----------------

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderByNumber(number string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("number = ?", number).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, qty, unit_price, total, note, food_item_id, size_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

type OrderSummary struct {
	ID           uint      `json:"id"`
	Number       string    `json:"number"`
	RestaurantID uint      `json:"restaurantId"`
	Total        int64     `json:"total"`
	OrderStatus  string    `json:"orderStatus"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, number, restaurant_id, total, order_status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

type RestaurantOrderSummary struct {
	ID           uint      `json:"id"`
	Number       string    `json:"number"`
	CustomerName string    `json:"customerName"`
	OrderType    string    `json:"orderType"`
	Source       string    `json:"source"`
	Total        int64     `json:"total"`
	OrderStatus  string    `json:"orderStatus"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForRestaurant(restID uint, status string, page, limit int) ([]RestaurantOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID)
	if s := strings.TrimSpace(status); s != "" {
		q = q.Where("order_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []RestaurantOrderSummary
	err := q.
		Select("id, number, customer_name, order_type, source, total, order_status, created_at").
		Order("id DESC").Limit(limit).Offset(offset).
		Scan(&rows).Error
	return rows, total, err
}
