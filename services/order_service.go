package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dennxbot/food-ordering-system-sub000/entity"
	"github.com/dennxbot/food-ordering-system-sub000/pkg/cache"
	"github.com/dennxbot/food-ordering-system-sub000/repository"
	"github.com/dennxbot/food-ordering-system-sub000/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	CartRepo   *repository.CartRepository
	MenuRepo   *repository.MenuRepository
	RestRepo   *repository.RestaurantRepository
	CancelRepo *repository.CancellationRepository

	Cache     *cache.Cache // order lists/detail, short TTL
	CartCache *cache.Cache // the cart cache, invalidated after checkout
	Feed      *ws.OrderFeed
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	menuRepo *repository.MenuRepository,
	restRepo *repository.RestaurantRepository,
	cancelRepo *repository.CancellationRepository,
	orderCache, cartCache *cache.Cache,
	feed *ws.OrderFeed,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo, MenuRepo: menuRepo,
		RestRepo: restRepo, CancelRepo: cancelRepo,
		Cache: orderCache, CartCache: cartCache, Feed: feed,
	}
}

func orderKey(orderID uint) string   { return fmt.Sprintf("order:%d", orderID) }
func userListKey(userID uint) string { return fmt.Sprintf("orders:user:%d", userID) }

func (s *OrderService) invalidateOrder(o *entity.Order) {
	s.Cache.Invalidate(orderKey(o.ID))
	if o.UserID != 0 {
		s.Cache.Invalidate(userListKey(o.UserID))
	}
}

// ----- DTOs -----

type CheckoutReq struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Address       string `json:"address"`
	OrderType     string `json:"orderType" binding:"required,oneof=delivery pickup"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=cash card"`
}

type CreateOrderRes struct {
	ID     uint   `json:"id"`
	Number string `json:"number"`
	Total  int64  `json:"total"`
}

// CreateFromCart is the single atomic submission: order header + line items
// materialized from the cart, cart cleared on success. On any failure the
// transaction rolls back and the cart is left untouched.
func (s *OrderService) CreateFromCart(userID uint, in *CheckoutReq) (*CreateOrderRes, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 || cart.RestaurantID == 0 {
		return nil, ErrEmptyCart
	}

	var missing []string
	if strings.TrimSpace(in.CustomerName) == "" {
		missing = append(missing, "customerName")
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		missing = append(missing, "customerPhone")
	}
	if in.OrderType == entity.OrderTypeDelivery && strings.TrimSpace(in.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	var subtotal int64
	for _, it := range cart.Items {
		subtotal += it.Total
	}

	var out CreateOrderRes
	var restID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Number:        uuid.NewString(),
			CustomerName:  in.CustomerName,
			CustomerPhone: in.CustomerPhone,
			Address:       in.Address,
			OrderType:     in.OrderType,
			PaymentMethod: in.PaymentMethod,
			Source:        entity.SourceOnline,
			OrderStatus:   entity.StatusPending,
			Subtotal:      subtotal,
			Total:         subtotal,
			UserID:        userID,
			RestaurantID:  cart.RestaurantID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				FoodItemID: it.FoodItemID,
				SizeID:     it.SizeID,
				Qty:        it.Qty,
				UnitPrice:  it.UnitPrice,
				Total:      it.Total,
				Note:       it.Note,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		if err := s.CartRepo.ClearCart(tx, userID); err != nil {
			return err
		}

		out = CreateOrderRes{ID: order.ID, Number: order.Number, Total: order.Total}
		restID = order.RestaurantID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.CartCache.Invalidate(cartKey(userID))
	s.Cache.Invalidate(userListKey(userID))
	s.Feed.Publish(ws.OrderEvent{
		Type: "created", OrderID: out.ID, Number: out.Number,
		RestaurantID: restID, OrderStatus: entity.StatusPending, Total: out.Total,
	})
	return &out, nil
}

// ----- Kiosk / POS direct orders -----

type DirectOrderItemIn struct {
	FoodItemID uint   `json:"foodItemId" binding:"required"`
	SizeID     uint   `json:"sizeId"`
	Qty        int    `json:"qty" binding:"required,min=1"`
	Note       string `json:"note"`
}

type DirectOrderReq struct {
	RestaurantID  uint                `json:"restaurantId" binding:"required"`
	Items         []DirectOrderItemIn `json:"items" binding:"required,min=1"`
	CustomerName  string              `json:"customerName"`
	PaymentMethod string              `json:"paymentMethod" binding:"required,oneof=cash card"`
}

// CreateDirect serves the kiosk and POS surfaces: items come inline, always
// pickup, prices resolved from the catalog at submission time.
func (s *OrderService) CreateDirect(source string, in *DirectOrderReq) (*CreateOrderRes, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyCart
	}

	ok, err := s.RestRepo.Exists(in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("restaurant not found")
	}

	type row struct {
		foodItemID uint
		sizeID     uint
		qty        int
		unitPrice  int64
		note       string
	}
	var subtotal int64
	rows := make([]row, 0, len(in.Items))

	for _, it := range in.Items {
		m, err := s.MenuRepo.GetFoodItemBasics(it.FoodItemID)
		if err != nil {
			return nil, errors.New("item not found")
		}
		if m.RestaurantID != in.RestaurantID {
			return nil, errors.New("item not in this restaurant")
		}
		if !m.IsAvailable {
			return nil, errors.New("item not available")
		}
		unit := m.Price
		if it.SizeID != 0 {
			size, err := s.MenuRepo.GetSizeForItem(it.SizeID, m.ID)
			if err != nil {
				return nil, errors.New("invalid size for item")
			}
			unit += size.PriceDelta
		}
		subtotal += unit * int64(it.Qty)
		rows = append(rows, row{m.ID, it.SizeID, it.Qty, unit, it.Note})
	}

	var out CreateOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Number:        uuid.NewString(),
			CustomerName:  in.CustomerName,
			OrderType:     entity.OrderTypePickup,
			PaymentMethod: in.PaymentMethod,
			Source:        source,
			OrderStatus:   entity.StatusPending,
			Subtotal:      subtotal,
			Total:         subtotal,
			RestaurantID:  in.RestaurantID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, r := range rows {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				FoodItemID: r.foodItemID,
				SizeID:     r.sizeID,
				Qty:        r.qty,
				UnitPrice:  r.unitPrice,
				Total:      r.unitPrice * int64(r.qty),
				Note:       r.note,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		out = CreateOrderRes{ID: order.ID, Number: order.Number, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Feed.Publish(ws.OrderEvent{
		Type: "created", OrderID: out.ID, Number: out.Number,
		RestaurantID: in.RestaurantID, OrderStatus: entity.StatusPending, Total: out.Total,
	})
	return &out, nil
}

// ----- Reads (cached) -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	v, err := s.Cache.GetOrLoad(userListKey(userID), func() (any, error) {
		return s.Repo.ListOrdersForUser(userID, limit)
	})
	if err != nil {
		return nil, err
	}
	return v.([]repository.OrderSummary), nil
}

type OrderDetail struct {
	Order        entity.Order         `json:"order"`
	Items        []entity.OrderItem   `json:"items"`
	Cancellation *entity.Cancellation `json:"cancellation,omitempty"`
}

func (s *OrderService) detail(orderID uint) (*OrderDetail, error) {
	v, err := s.Cache.GetOrLoad(orderKey(orderID), func() (any, error) {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return nil, err
		}
		items, err := s.Repo.GetOrderItems(o.ID)
		if err != nil {
			return nil, err
		}
		d := &OrderDetail{Order: *o, Items: items}
		if o.OrderStatus == entity.StatusCancelled {
			rec, err := s.CancelRepo.GetForOrder(o.ID)
			switch {
			case err == nil:
				d.Cancellation = rec
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return nil, err
			}
		}
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*OrderDetail), nil
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	d, err := s.detail(orderID)
	if err != nil {
		return nil, err
	}
	if d.Order.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

// DetailByNumber backs the kiosk pickup screen.
func (s *OrderService) DetailByNumber(number string) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderByNumber(number)
	if err != nil {
		return nil, err
	}
	return s.detail(o.ID)
}

func (s *OrderService) OwnerCheck(restID, userID uint) (bool, error) {
	return s.RestRepo.IsOwnedBy(restID, userID)
}

// ----- Back-office reads -----

type RestaurantOrderListOut struct {
	Items []repository.RestaurantOrderSummary `json:"items"`
	Total int64                               `json:"total"`
	Page  int                                 `json:"page"`
	Limit int                                 `json:"limit"`
}

func (s *OrderService) ListForRestaurant(userID uint, isAdmin bool, restID uint, status string, page, limit int) (*RestaurantOrderListOut, error) {
	if !isAdmin {
		ok, err := s.RestRepo.IsOwnedBy(restID, userID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrForbidden
		}
	}

	items, total, err := s.Repo.ListOrdersForRestaurant(restID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &RestaurantOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForRestaurant(userID uint, isAdmin bool, orderID uint) (*OrderDetail, error) {
	d, err := s.detail(orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		ok, err := s.RestRepo.IsOwnedBy(d.Order.RestaurantID, userID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrForbidden
		}
	}
	return d, nil
}
