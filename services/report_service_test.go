package services

import (
	"errors"
	"testing"
	"time"

	"github.com/dennxbot/food-ordering-system-sub000/entity"
	"github.com/dennxbot/food-ordering-system-sub000/repository"

	"gorm.io/gorm"
)

func newReportFixture(t *testing.T) (*ReportService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewReportService(
		repository.NewReportRepository(db),
		repository.NewRestaurantRepository(db),
	)
	return svc, db
}

func setTotal(t *testing.T, db *gorm.DB, o *entity.Order, total int64) {
	t.Helper()
	if err := db.Model(o).Updates(map[string]any{"subtotal": total, "total": total}).Error; err != nil {
		t.Fatalf("set total: %v", err)
	}
}

func TestSummaryRevenueCountsCompletedOnly(t *testing.T) {
	svc, db := newReportFixture(t)
	rest, _, _, _ := seedCatalog(t, db)
	cust := seedCustomer(t, db)
	var owner entity.User
	if err := db.Where("email = ?", "owner@test.local").First(&owner).Error; err != nil {
		t.Fatalf("find owner: %v", err)
	}

	done1 := createOrder(t, db, cust.ID, rest.ID, entity.StatusCompleted, time.Minute)
	setTotal(t, db, done1, 1000)
	done2 := createOrder(t, db, cust.ID, rest.ID, entity.StatusCompleted, 48*time.Hour)
	setTotal(t, db, done2, 2000)
	pending := createOrder(t, db, cust.ID, rest.ID, entity.StatusPending, time.Minute)
	setTotal(t, db, pending, 5000)
	cancelled := createOrder(t, db, cust.ID, rest.ID, entity.StatusCancelled, time.Minute)
	setTotal(t, db, cancelled, 700)

	now := time.Now()
	sum, err := svc.SummaryForRestaurant(owner.ID, false, rest.ID, now.AddDate(0, 0, -30), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if sum.Revenue != 3000 {
		t.Errorf("revenue = %d, want 3000 (completed orders only)", sum.Revenue)
	}

	byStatus := make(map[string]int64, len(sum.ByStatus))
	for _, sc := range sum.ByStatus {
		byStatus[sc.OrderStatus] = sc.Count
	}
	want := map[string]int64{
		entity.StatusCompleted: 2,
		entity.StatusPending:   1,
		entity.StatusCancelled: 1,
	}
	for status, n := range want {
		if byStatus[status] != n {
			t.Errorf("count[%s] = %d, want %d", status, byStatus[status], n)
		}
	}
}

func TestSummaryDailySeriesBucketsByDay(t *testing.T) {
	svc, db := newReportFixture(t)
	rest, _, _, _ := seedCatalog(t, db)
	cust := seedCustomer(t, db)
	var owner entity.User
	if err := db.Where("email = ?", "owner@test.local").First(&owner).Error; err != nil {
		t.Fatalf("find owner: %v", err)
	}

	today := createOrder(t, db, cust.ID, rest.ID, entity.StatusCompleted, time.Minute)
	setTotal(t, db, today, 1000)
	pendingToday := createOrder(t, db, cust.ID, rest.ID, entity.StatusPending, time.Minute)
	setTotal(t, db, pendingToday, 400)
	earlier := createOrder(t, db, cust.ID, rest.ID, entity.StatusCompleted, 48*time.Hour)
	setTotal(t, db, earlier, 2000)

	now := time.Now()
	sum, err := svc.SummaryForRestaurant(owner.ID, false, rest.ID, now.AddDate(0, 0, -30), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if len(sum.Daily) != 2 {
		t.Fatalf("expected 2 day buckets, got %d: %+v", len(sum.Daily), sum.Daily)
	}
	var orders, revenue int64
	for _, d := range sum.Daily {
		orders += d.Orders
		revenue += d.Revenue
	}
	if orders != 3 {
		t.Errorf("orders across days = %d, want 3", orders)
	}
	// pending orders are counted but contribute no revenue
	if revenue != 3000 {
		t.Errorf("revenue across days = %d, want 3000", revenue)
	}
	if sum.Daily[0].Day >= sum.Daily[1].Day {
		t.Errorf("days not ascending: %q, %q", sum.Daily[0].Day, sum.Daily[1].Day)
	}
}

func TestSummaryForbiddenForStranger(t *testing.T) {
	svc, db := newReportFixture(t)
	rest, _, _, _ := seedCatalog(t, db)
	stranger := entity.User{Email: "stranger@test.local", Password: "x", Role: "owner"}
	if err := db.Create(&stranger).Error; err != nil {
		t.Fatalf("seed stranger: %v", err)
	}

	now := time.Now()
	if _, err := svc.SummaryForRestaurant(stranger.ID, false, rest.ID, now.AddDate(0, 0, -7), now); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// admin reads any restaurant's report
	if _, err := svc.SummaryForRestaurant(stranger.ID, true, rest.ID, now.AddDate(0, 0, -7), now); err != nil {
		t.Fatalf("admin summary: %v", err)
	}
}
