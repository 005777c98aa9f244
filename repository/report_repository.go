package repository

import (
	"time"

	"github.com/dennxbot/food-ordering-system-sub000/entity"

	"gorm.io/gorm"
)

type ReportRepository struct{ DB *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

type StatusCount struct {
	OrderStatus string `json:"orderStatus"`
	Count       int64  `json:"count"`
}

type DailySales struct {
	Day     string `json:"day"`
	Orders  int64  `json:"orders"`
	Revenue int64  `json:"revenue"`
}

// Revenue counts completed orders only.
func (r *ReportRepository) Revenue(restID uint, from, to time.Time) (int64, error) {
	var revenue int64
	err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND order_status = ? AND created_at >= ? AND created_at < ?",
			restID, entity.StatusCompleted, from, to).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue).Error
	return revenue, err
}

func (r *ReportRepository) CountByStatus(restID uint, from, to time.Time) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.DB.Model(&entity.Order{}).
		Select("order_status, COUNT(*) AS count").
		Where("restaurant_id = ? AND created_at >= ? AND created_at < ?", restID, from, to).
		Group("order_status").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) DailySeries(restID uint, from, to time.Time) ([]DailySales, error) {
	var rows []DailySales
	err := r.DB.Raw(`
		SELECT DATE(created_at) AS day,
		       COUNT(*) AS orders,
		       COALESCE(SUM(CASE WHEN order_status = ? THEN total ELSE 0 END), 0) AS revenue
		  FROM orders
		 WHERE restaurant_id = ?
		   AND created_at >= ? AND created_at < ?
		   AND deleted_at IS NULL
		 GROUP BY DATE(created_at)
		 ORDER BY day
	`, entity.StatusCompleted, restID, from, to).Scan(&rows).Error
	return rows, err
}

type DashboardCounts struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalRestaurants int64 `json:"totalRestaurants"`
	OrdersToday      int64 `json:"ordersToday"`
	CancelledToday   int64 `json:"cancelledToday"`
}

func (r *ReportRepository) Dashboard(startOfDay time.Time) (*DashboardCounts, error) {
	var out DashboardCounts
	if err := r.DB.Model(&entity.User{}).Count(&out.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.Restaurant{}).Count(&out.TotalRestaurants).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.Order{}).
		Where("created_at >= ?", startOfDay).
		Count(&out.OrdersToday).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.Cancellation{}).
		Where("created_at >= ?", startOfDay).
		Count(&out.CancelledToday).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
