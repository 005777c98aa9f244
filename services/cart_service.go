package services

import (
	"errors"
	"fmt"

	"github.com/dennxbot/food-ordering-system-sub000/entity"
	"github.com/dennxbot/food-ordering-system-sub000/pkg/cache"
	"github.com/dennxbot/food-ordering-system-sub000/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository

	// no TTL; invalidated on every cart mutation
	Cache *cache.Cache
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, cc *cache.Cache) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, Cache: cc}
}

type AddLineIn struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	FoodItemID   uint   `json:"foodItemId" binding:"required"`
	SizeID       uint   `json:"sizeId"` // 0 = no size
	Qty          int    `json:"qty" binding:"min=0"`
	Note         string `json:"note"`
}

// CartView is what the storefront renders: the cart plus aggregates
// recomputed as sums over the remaining lines.
type CartView struct {
	Cart     *entity.Cart `json:"cart"`
	Subtotal int64        `json:"subtotal"`
	Count    int          `json:"count"`
}

func cartKey(userID uint) string { return fmt.Sprintf("cart:%d", userID) }

func (s *CartService) Get(userID uint) (*CartView, error) {
	v, err := s.Cache.GetOrLoad(cartKey(userID), func() (any, error) {
		c, err := s.CartRepo.GetCartWithItems(userID)
		if err != nil {
			return nil, err
		}
		view := &CartView{Cart: c}
		for _, it := range c.Items {
			view.Subtotal += it.Total
			view.Count += it.Qty
		}
		return view, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*CartView), nil
}

// AddLine consolidates into an existing (item, size) line or appends a new
// one. The unit price is recomputed from the catalog at add time; lines
// already in the cart keep the price they were added at.
func (s *CartService) AddLine(userID uint, in *AddLineIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	c, err := s.CartRepo.GetOrCreateCart(userID, in.RestaurantID)
	if err != nil {
		return err
	}

	// a cart stays locked to one restaurant until emptied
	if c.RestaurantID != 0 && c.RestaurantID != in.RestaurantID {
		return errors.New("cart has another restaurant")
	}
	if c.RestaurantID == 0 {
		c.RestaurantID = in.RestaurantID
		if err := s.CartRepo.DB.Save(c).Error; err != nil {
			return err
		}
	}

	m, err := s.MenuRepo.GetFoodItemBasics(in.FoodItemID)
	if err != nil {
		return err
	}
	if m.RestaurantID != in.RestaurantID {
		return errors.New("item not in this restaurant")
	}
	if !m.IsAvailable {
		return errors.New("item not available")
	}

	unit := m.Price
	if in.SizeID != 0 {
		size, err := s.MenuRepo.GetSizeForItem(in.SizeID, m.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("invalid size for item")
			}
			return err
		}
		unit += size.PriceDelta
	}

	line := &entity.CartItem{
		FoodItemID: m.ID,
		SizeID:     in.SizeID,
		Qty:        in.Qty,
		UnitPrice:  unit,
		Total:      unit * int64(in.Qty),
		Note:       in.Note,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertLine(tx, c.ID, line)
	})
	if err != nil {
		return err
	}
	s.Cache.Invalidate(cartKey(userID))
	return nil
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
	if err != nil {
		return err
	}
	s.Cache.Invalidate(cartKey(userID))
	return nil
}

func (s *CartService) RemoveLine(userID, itemID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveLine(tx, userID, itemID)
	})
	if err != nil {
		return err
	}
	s.Cache.Invalidate(cartKey(userID))
	return nil
}

func (s *CartService) Clear(userID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		return err
	}
	s.Cache.Invalidate(cartKey(userID))
	return nil
}
