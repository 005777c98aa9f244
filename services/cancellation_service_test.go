package services

import (
	"errors"
	"testing"
	"time"

	"github.com/dennxbot/food-ordering-system-sub000/entity"
	"github.com/dennxbot/food-ordering-system-sub000/pkg/cache"
	"github.com/dennxbot/food-ordering-system-sub000/repository"
	"github.com/dennxbot/food-ordering-system-sub000/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestCanCancel(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fresh := func(status string) *entity.Order {
		o := &entity.Order{OrderStatus: status}
		o.CreatedAt = now.Add(-5 * time.Minute)
		return o
	}
	stale := fresh(entity.StatusPending)
	stale.CreatedAt = now.Add(-16 * time.Minute)

	tests := []struct {
		name        string
		order       *entity.Order
		role        string
		todaysCount int
		wantReason  string // "" = allowed
	}{
		{"admin overrides ready status", fresh(entity.StatusReady), "admin", 0, ""},
		{"admin overrides window and quota", stale, "admin", 99, ""},
		{"customer pending within window", fresh(entity.StatusPending), "customer", 0, ""},
		{"customer preparing within window", fresh(entity.StatusPreparing), "customer", 2, ""},
		{"customer ready denied", fresh(entity.StatusReady), "customer", 0, "status not cancellable"},
		{"customer completed denied", fresh(entity.StatusCompleted), "customer", 0, "status not cancellable"},
		{"customer cancelled denied", fresh(entity.StatusCancelled), "customer", 0, "status not cancellable"},
		{"window expired at 16 minutes", stale, "customer", 0, "cancellation window expired"},
		{"fourth cancellation of the day denied", fresh(entity.StatusPending), "customer", 3, "daily cancellation limit reached"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanCancel(tt.order, tt.role, tt.todaysCount, now)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("expected allowed, got %v", err)
				}
				return
			}
			var denied *PolicyDenied
			if !errors.As(err, &denied) {
				t.Fatalf("expected PolicyDenied, got %v", err)
			}
			if denied.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", denied.Reason, tt.wantReason)
			}
		})
	}
}

func newCancelFixture(t *testing.T) (*CancellationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewCancellationService(db,
		repository.NewOrderRepository(db),
		repository.NewCancellationRepository(db),
		repository.NewRestaurantRepository(db),
		cache.New(30*time.Second),
		ws.NewOrderFeed(),
	)
	return svc, db
}

func createOrder(t *testing.T, db *gorm.DB, userID, restID uint, status string, age time.Duration) *entity.Order {
	t.Helper()
	o := &entity.Order{
		Number: uuid.NewString(), OrderType: entity.OrderTypePickup,
		PaymentMethod: entity.PaymentCash, Source: entity.SourceOnline,
		OrderStatus: status, Subtotal: 1000, Total: 1000,
		UserID: userID, RestaurantID: restID,
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
	created := time.Now().Add(-age)
	if err := db.Model(o).Update("created_at", created).Error; err != nil {
		t.Fatalf("backdate order: %v", err)
	}
	o.CreatedAt = created
	return o
}

func TestCancelWritesRecordAndFlipsStatus(t *testing.T) {
	svc, db := newCancelFixture(t)
	rest, _, _, _ := seedCatalog(t, db)
	cust := seedCustomer(t, db)
	o := createOrder(t, db, cust.ID, rest.ID, entity.StatusPending, 5*time.Minute)

	got, err := svc.Cancel(cust.ID, "customer", o.ID, "changed my mind")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.OrderStatus != entity.StatusCancelled {
		t.Errorf("status = %q, want cancelled", got.OrderStatus)
	}

	var rec entity.Cancellation
	if err := db.Where("order_id = ?", o.ID).First(&rec).Error; err != nil {
		t.Fatalf("expected cancellation record: %v", err)
	}
	if rec.Reason != "changed my mind" || rec.ActorID != cust.ID || rec.ActorRole != "customer" {
		t.Errorf("record = %+v", rec)
	}
}

func TestCancelRequiresReason(t *testing.T) {
	svc, db := newCancelFixture(t)
	rest, _, _, _ := seedCatalog(t, db)
	cust := seedCustomer(t, db)
	o := createOrder(t, db, cust.ID, rest.ID, entity.StatusPending, time.Minute)

	var vErr *ValidationError
	if _, err := svc.Cancel(cust.ID, "customer", o.ID, "  "); !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCancelDeniedOutsideWindow(t *testing.T) {
	svc, db := newCancelFixture(t)
	rest, _, _, _ := seedCatalog(t, db)
	cust := seedCustomer(t, db)
	o := createOrder(t, db, cust.ID, rest.ID, entity.StatusPending, 16*time.Minute)

	var denied *PolicyDenied
	if _, err := svc.Cancel(cust.ID, "customer", o.ID, "too slow"); !errors.As(err, &denied) {
		t.Fatalf("expected PolicyDenied, got %v", err)
	}
	if denied.Reason != "cancellation window expired" {
		t.Errorf("reason = %q", denied.Reason)
	}
}

func TestCancelEnforcesDailyQuota(t *testing.T) {
	svc, db := newCancelFixture(t)
	rest, _, _, _ := seedCatalog(t, db)
	cust := seedCustomer(t, db)

	for i := 0; i < DailyCancelQuota; i++ {
		o := createOrder(t, db, cust.ID, rest.ID, entity.StatusPending, time.Minute)
		if _, err := svc.Cancel(cust.ID, "customer", o.ID, "dup"); err != nil {
			t.Fatalf("cancel %d: %v", i+1, err)
		}
	}

	o := createOrder(t, db, cust.ID, rest.ID, entity.StatusPending, time.Minute)
	var denied *PolicyDenied
	if _, err := svc.Cancel(cust.ID, "customer", o.ID, "one too many"); !errors.As(err, &denied) {
		t.Fatalf("expected PolicyDenied on 4th cancel, got %v", err)
	}
	if denied.Reason != "daily cancellation limit reached" {
		t.Errorf("reason = %q", denied.Reason)
	}
}

func TestAdminCancelBypassesPolicy(t *testing.T) {
	svc, db := newCancelFixture(t)
	rest, _, _, _ := seedCatalog(t, db)
	cust := seedCustomer(t, db)
	admin := entity.User{Email: "admin@test.local", Password: "x", Role: "admin"}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	o := createOrder(t, db, cust.ID, rest.ID, entity.StatusReady, 2*time.Hour)
	got, err := svc.Cancel(admin.ID, "admin", o.ID, "kitchen flooded")
	if err != nil {
		t.Fatalf("admin cancel: %v", err)
	}
	if got.OrderStatus != entity.StatusCancelled {
		t.Errorf("status = %q, want cancelled", got.OrderStatus)
	}
}

func TestOwnerCancelsRestaurantOrder(t *testing.T) {
	svc, db := newCancelFixture(t)
	rest, _, _, _ := seedCatalog(t, db)
	cust := seedCustomer(t, db)
	var owner entity.User
	if err := db.Where("email = ?", "owner@test.local").First(&owner).Error; err != nil {
		t.Fatalf("find owner: %v", err)
	}

	o := createOrder(t, db, cust.ID, rest.ID, entity.StatusPreparing, 5*time.Minute)
	got, err := svc.Cancel(owner.ID, "owner", o.ID, "out of stock")
	if err != nil {
		t.Fatalf("owner cancel: %v", err)
	}
	if got.OrderStatus != entity.StatusCancelled {
		t.Errorf("status = %q, want cancelled", got.OrderStatus)
	}
}

func TestCustomerCannotCancelForeignOrder(t *testing.T) {
	svc, db := newCancelFixture(t)
	rest, _, _, _ := seedCatalog(t, db)
	cust := seedCustomer(t, db)
	other := entity.User{Email: "other@test.local", Password: "x", Role: "customer"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed other: %v", err)
	}

	o := createOrder(t, db, cust.ID, rest.ID, entity.StatusPending, time.Minute)
	if _, err := svc.Cancel(other.ID, "customer", o.ID, "not mine"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
