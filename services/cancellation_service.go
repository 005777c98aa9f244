package services

import (
	"strings"
	"time"

	"github.com/dennxbot/food-ordering-system-sub000/entity"
	"github.com/dennxbot/food-ordering-system-sub000/pkg/cache"
	"github.com/dennxbot/food-ordering-system-sub000/repository"
	"github.com/dennxbot/food-ordering-system-sub000/ws"

	"gorm.io/gorm"
)

const (
	CancelWindow     = 15 * time.Minute
	DailyCancelQuota = 3
)

// CanCancel evaluates the cancellation policy in order: admin override,
// cancellable status, time window, daily quota. It does no I/O; the order
// and today's count are fetched by the caller.
func CanCancel(o *entity.Order, actorRole string, todaysCount int, now time.Time) error {
	if actorRole == "admin" {
		return nil
	}
	switch o.OrderStatus {
	case entity.StatusPending, entity.StatusPreparing:
	default:
		return &PolicyDenied{Reason: "status not cancellable"}
	}
	if now.Sub(o.CreatedAt) > CancelWindow {
		return &PolicyDenied{Reason: "cancellation window expired"}
	}
	if todaysCount >= DailyCancelQuota {
		return &PolicyDenied{Reason: "daily cancellation limit reached"}
	}
	return nil
}

type CancellationService struct {
	DB         *gorm.DB
	OrderRepo  *repository.OrderRepository
	CancelRepo *repository.CancellationRepository
	RestRepo   *repository.RestaurantRepository

	Cache *cache.Cache
	Feed  *ws.OrderFeed

	Now func() time.Time // injectable for tests
}

func NewCancellationService(db *gorm.DB, or *repository.OrderRepository, cr *repository.CancellationRepository, rr *repository.RestaurantRepository, oc *cache.Cache, feed *ws.OrderFeed) *CancellationService {
	return &CancellationService{DB: db, OrderRepo: or, CancelRepo: cr, RestRepo: rr, Cache: oc, Feed: feed, Now: time.Now}
}

// Cancel flips the order to cancelled and records who did it and why, in
// one transaction. Customers may only cancel their own orders; the policy
// check runs against a count fetched just beforehand, so two concurrent
// cancellations by the same actor can each see the pre-increment count.
func (s *CancellationService) Cancel(actorID uint, actorRole string, orderID uint, reason string) (*entity.Order, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, &ValidationError{Fields: []string{"reason"}}
	}

	o, err := s.OrderRepo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	// customers cancel their own orders, owners those of their restaurant
	if actorRole != "admin" && o.UserID != actorID {
		owns, err := s.RestRepo.IsOwnedBy(o.RestaurantID, actorID)
		if err != nil {
			return nil, err
		}
		if !owns {
			return nil, ErrForbidden
		}
	}

	todaysCount := 0
	if actorRole != "admin" {
		now := s.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		todaysCount, err = s.CancelRepo.CountForActorSince(actorID, startOfDay)
		if err != nil {
			return nil, err
		}
	}

	if err := CanCancel(o, actorRole, todaysCount, s.Now()); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.OrderRepo.UpdateStatusGuard(tx, o.ID, o.OrderStatus, entity.StatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		rec := entity.Cancellation{
			OrderID:   o.ID,
			Reason:    reason,
			ActorID:   actorID,
			ActorRole: actorRole,
		}
		return s.CancelRepo.Create(tx, &rec)
	})
	if err != nil {
		return nil, err
	}

	o.OrderStatus = entity.StatusCancelled
	s.Cache.Invalidate(orderKey(o.ID))
	if o.UserID != 0 {
		s.Cache.Invalidate(userListKey(o.UserID))
	}
	s.Feed.Publish(ws.OrderEvent{
		Type: "cancelled", OrderID: o.ID, Number: o.Number,
		RestaurantID: o.RestaurantID, OrderStatus: o.OrderStatus, Total: o.Total,
	})
	return o, nil
}
