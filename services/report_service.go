package services

import (
	"time"

	"github.com/dennxbot/food-ordering-system-sub000/repository"
)

type ReportService struct {
	repo     *repository.ReportRepository
	restRepo *repository.RestaurantRepository
}

func NewReportService(repo *repository.ReportRepository, restRepo *repository.RestaurantRepository) *ReportService {
	return &ReportService{repo: repo, restRepo: restRepo}
}

type SalesSummary struct {
	RestaurantID uint                     `json:"restaurantId"`
	From         time.Time                `json:"from"`
	To           time.Time                `json:"to"`
	Revenue      int64                    `json:"revenue"`
	ByStatus     []repository.StatusCount `json:"byStatus"`
	Daily        []repository.DailySales  `json:"daily"`
}

func (s *ReportService) SummaryForRestaurant(userID uint, isAdmin bool, restID uint, from, to time.Time) (*SalesSummary, error) {
	if !isAdmin {
		ok, err := s.restRepo.IsOwnedBy(restID, userID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrForbidden
		}
	}

	revenue, err := s.repo.Revenue(restID, from, to)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.repo.CountByStatus(restID, from, to)
	if err != nil {
		return nil, err
	}
	daily, err := s.repo.DailySeries(restID, from, to)
	if err != nil {
		return nil, err
	}

	return &SalesSummary{
		RestaurantID: restID, From: from, To: to,
		Revenue: revenue, ByStatus: byStatus, Daily: daily,
	}, nil
}

func (s *ReportService) Dashboard() (*repository.DashboardCounts, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.repo.Dashboard(start)
}
