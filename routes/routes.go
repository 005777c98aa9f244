package routes

import (
	"time"

	"github.com/dennxbot/food-ordering-system-sub000/configs"
	"github.com/dennxbot/food-ordering-system-sub000/controllers"
	"github.com/dennxbot/food-ordering-system-sub000/middlewares"
	"github.com/dennxbot/food-ordering-system-sub000/pkg/cache"
	"github.com/dennxbot/food-ordering-system-sub000/repository"
	"github.com/dennxbot/food-ordering-system-sub000/services"
	"github.com/dennxbot/food-ordering-system-sub000/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const orderCacheTTL = 30 * time.Second

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cancelRepo := repository.NewCancellationRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Caches: carts live until invalidated, order reads expire on their own
	cartCache := cache.New(0)
	orderCache := cache.New(orderCacheTTL)

	// Live order feed for back-office screens
	feed := ws.NewOrderFeed()
	go feed.Run()

	// Services
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, cartCache)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, menuRepo, restRepo, cancelRepo, orderCache, cartCache, feed)
	cancelSvc := services.NewCancellationService(db, orderRepo, cancelRepo, restRepo, orderCache, feed)
	reportSvc := services.NewReportService(reportRepo, restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(userRepo, cfg)
	restCtrl := controllers.NewRestaurantController(restRepo)
	menuCtrl := controllers.NewMenuController(menuRepo, restRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, cancelSvc)
	kioskCtrl := controllers.NewKioskController(orderSvc)
	boCtrl := controllers.NewBackofficeOrderController(orderSvc, cancelSvc, reportSvc)
	adminCtrl := controllers.NewAdminController(reportSvc)

	secret := cfg.JWTSecret

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(secret), authCtrl.Me)

	// Storefront (public browse)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu", menuCtrl.ListByRestaurant)
	r.GET("/items/:id", menuCtrl.GetItem)

	// Cart (customer)
	cart := r.Group("/cart", middlewares.AuthMiddleware(secret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/qty", cartCtrl.UpdateQty)
		cart.DELETE("/items", cartCtrl.RemoveLine)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (customer)
	u := r.Group("/", middlewares.AuthMiddleware(secret))
	{
		u.POST("/orders/checkout", orderCtrl.Checkout)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/cancel", orderCtrl.Cancel)
	}
	profile := r.Group("/profile", middlewares.AuthMiddleware(secret))
	{
		profile.GET("/orders", orderCtrl.ListForMe)
	}

	// Kiosk (dedicated device accounts)
	kiosk := r.Group("/kiosk", middlewares.AuthMiddleware(secret, "kiosk", "admin"))
	{
		kiosk.POST("/orders", kioskCtrl.Create)
		kiosk.GET("/orders/:number", kioskCtrl.Lookup)
	}

	// Back-office (owner/admin)
	partner := r.Group("/partner", middlewares.AuthMiddleware(secret, "owner", "admin"))
	{
		partner.GET("/restaurants", restCtrl.Mine)
		partner.PATCH("/restaurants/:id", restCtrl.Update)
		partner.POST("/restaurants/:id/categories", menuCtrl.CreateCategory)
		partner.POST("/restaurants/:id/items", menuCtrl.CreateItem)
		partner.PATCH("/items/:id", menuCtrl.UpdateItem)

		partner.GET("/restaurants/:id/orders", boCtrl.List)
		partner.GET("/restaurants/:id/report", boCtrl.SalesReport)
		partner.POST("/restaurants/:id/pos-orders", boCtrl.CreatePOS)
		partner.GET("/orders/:id", boCtrl.Detail)
		partner.PATCH("/orders/:id/advance", boCtrl.Advance)
		partner.POST("/orders/:id/cancel", boCtrl.Cancel)
	}

	// Live order feed
	r.GET("/ws/restaurants/:id/orders",
		middlewares.WSAuthMiddleware(secret, "owner", "admin"),
		feed.HandleWebSocket)

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(secret, "admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.POST("/restaurants", restCtrl.Create)
		admin.PATCH("/orders/:id/status", boCtrl.SetStatus)
	}
}
