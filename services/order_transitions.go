package services

import (
	"errors"

	"github.com/dennxbot/food-ordering-system-sub000/entity"
	"github.com/dennxbot/food-ordering-system-sub000/ws"

	"gorm.io/gorm"
)

// NextStatus suggests the single next step for an order's action button.
// It returns "" when the order has nowhere left to go. Kiosk orders jump
// straight to completed: payment and fulfillment happen face-to-face at
// the cashier, so there is nothing to display between.
func NextStatus(current, orderType, source string) string {
	switch current {
	case entity.StatusPending:
		if source == entity.SourceKiosk {
			return entity.StatusCompleted
		}
		return entity.StatusPreparing
	case entity.StatusPreparing:
		if orderType == entity.OrderTypeDelivery {
			return entity.StatusOutForDelivery
		}
		return entity.StatusReady
	case entity.StatusReady, entity.StatusOutForDelivery:
		return entity.StatusCompleted
	}
	return ""
}

// Advance moves the order one step along NextStatus, guarded so a
// concurrent transition makes this one fail instead of double-applying.
func (s *OrderService) Advance(userID uint, isAdmin bool, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		ok, err := s.RestRepo.IsOwnedBy(o.RestaurantID, userID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrForbidden
		}
	}

	next := NextStatus(o.OrderStatus, o.OrderType, o.Source)
	if next == "" {
		return nil, ErrNoTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.OrderStatus, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.OrderStatus = next
	s.invalidateOrder(o)
	s.Feed.Publish(ws.OrderEvent{
		Type: "status_changed", OrderID: o.ID, Number: o.Number,
		RestaurantID: o.RestaurantID, OrderStatus: next, Total: o.Total,
	})
	return o, nil
}

// SetStatus is the admin escape hatch: an explicit target status with no
// guard on the source state.
func (s *OrderService) SetStatus(orderID uint, target string) (*entity.Order, error) {
	switch target {
	case entity.StatusPending, entity.StatusPreparing, entity.StatusReady,
		entity.StatusOutForDelivery, entity.StatusCompleted, entity.StatusCancelled:
	default:
		return nil, errors.New("unknown status")
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.SetStatus(tx, o.ID, target)
	})
	if err != nil {
		return nil, err
	}

	o.OrderStatus = target
	s.invalidateOrder(o)
	s.Feed.Publish(ws.OrderEvent{
		Type: "status_changed", OrderID: o.ID, Number: o.Number,
		RestaurantID: o.RestaurantID, OrderStatus: target, Total: o.Total,
	})
	return o, nil
}
