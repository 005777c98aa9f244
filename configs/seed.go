package configs

import (
	"log"

	"github.com/dennxbot/food-ordering-system-sub000/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedDemo loads a small demo restaurant with a menu when SEED_DEMO=1.
func SeedDemo() error {
	if getEnv("SEED_DEMO", "") != "1" {
		return nil
	}
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	owner := entity.User{
		Email: "owner@demo.local", Password: string(hash),
		FirstName: "Demo", LastName: "Owner", Role: "owner",
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	rest := entity.Restaurant{Name: "Demo Diner", Address: "1 Demo St", UserID: owner.ID}
	if err := db.Create(&rest).Error; err != nil {
		return err
	}

	mains := entity.Category{Name: "Mains", RestaurantID: rest.ID, SortOrder: 1}
	drinks := entity.Category{Name: "Drinks", RestaurantID: rest.ID, SortOrder: 2}
	if err := db.Create(&mains).Error; err != nil {
		return err
	}
	if err := db.Create(&drinks).Error; err != nil {
		return err
	}

	items := []entity.FoodItem{
		{Name: "Margherita Pizza", Price: 1000, CategoryID: mains.ID, RestaurantID: rest.ID,
			Sizes: []entity.FoodSize{
				{Name: "Regular", PriceDelta: 0, SortOrder: 1},
				{Name: "Large", PriceDelta: 300, SortOrder: 2},
			}},
		{Name: "Iced Tea", Price: 250, CategoryID: drinks.ID, RestaurantID: rest.ID},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	log.Println("seeded demo restaurant:", rest.Name)
	return nil
}
