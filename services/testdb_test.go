package services

import (
	"path/filepath"
	"testing"

	"github.com/dennxbot/food-ordering-system-sub000/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Category{},
		&entity.FoodItem{}, &entity.FoodSize{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Cancellation{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// seedCatalog creates one restaurant with a sized item (base 1000, large
// +300) and a plain item (250), returning them for tests to reference.
func seedCatalog(t *testing.T, db *gorm.DB) (rest entity.Restaurant, pizza entity.FoodItem, large entity.FoodSize, tea entity.FoodItem) {
	t.Helper()

	owner := entity.User{Email: "owner@test.local", Password: "x", Role: "owner"}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("seed owner: %v", err)
	}

	rest = entity.Restaurant{Name: "Test Diner", UserID: owner.ID}
	if err := db.Create(&rest).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}

	cat := entity.Category{Name: "Mains", RestaurantID: rest.ID}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	pizza = entity.FoodItem{
		Name: "Pizza", Price: 1000, IsAvailable: true,
		CategoryID: cat.ID, RestaurantID: rest.ID,
	}
	if err := db.Create(&pizza).Error; err != nil {
		t.Fatalf("seed pizza: %v", err)
	}
	large = entity.FoodSize{Name: "Large", PriceDelta: 300, FoodItemID: pizza.ID}
	if err := db.Create(&large).Error; err != nil {
		t.Fatalf("seed size: %v", err)
	}

	tea = entity.FoodItem{
		Name: "Iced Tea", Price: 250, IsAvailable: true,
		CategoryID: cat.ID, RestaurantID: rest.ID,
	}
	if err := db.Create(&tea).Error; err != nil {
		t.Fatalf("seed tea: %v", err)
	}
	return rest, pizza, large, tea
}

func seedCustomer(t *testing.T, db *gorm.DB) entity.User {
	t.Helper()
	u := entity.User{Email: "cust@test.local", Password: "x", Role: "customer"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return u
}
