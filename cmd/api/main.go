package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-poultrigo/internal/config"
	"go-poultrigo/internal/handler"
	"go-poultrigo/internal/middleware"
	"go-poultrigo/internal/model"
	"go-poultrigo/internal/repository"
	"go-poultrigo/internal/service"
	"go-poultrigo/internal/ws"
	"go-poultrigo/pkg/database"
	"go-poultrigo/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()
	jwt.SetSecret(cfg.SessionSecret)

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Kandang{},
		&model.KandangHistory{},
		&model.News{},
	)

	// 3. Seed default admin account
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	cartRepo := repository.NewCartRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	kandangRepo := repository.NewKandangRepo(db)
	newsRepo := repository.NewNewsRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, wsHub)
	shopService := service.NewShopService(productRepo, cartRepo, orderRepo, db, wsHub)
	orderService := service.NewOrderService(orderRepo)
	kandangService := service.NewKandangService(kandangRepo, db, wsHub)
	newsService := service.NewNewsService(newsRepo)
	predictionService := service.NewPredictionService(cfg.PredictionURL)
	dashService := service.NewDashboardService(orderRepo)

	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	shopHandler := handler.NewShopHandler(shopService, orderService)
	orderHandler := handler.NewOrderHandler(orderService)
	kandangHandler := handler.NewKandangHandler(kandangService, predictionService)
	newsHandler := handler.NewNewsHandler(newsService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Poultrigo v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Session Guard: gates every route below by cookie + role prefix
	app.Use(middleware.SessionGuard())

	// ============ PUBLIC ROUTES ============
	app.Post("/login", authHandler.Login)
	app.Post("/register", authHandler.Register)
	app.Post("/logout", authHandler.Logout)

	public := app.Group("/api/public")
	public.Get("/products", shopHandler.GetProducts)
	public.Get("/news", newsHandler.GetPublishedNews)
	public.Get("/news/:id", newsHandler.GetNewsByID)

	// ============ GUEST AREA ============
	guest := app.Group("/guest")
	guest.Get("/products", shopHandler.GetProducts)
	guest.Get("/cart", shopHandler.GetCart)
	guest.Post("/cart", shopHandler.AddToCart)
	guest.Put("/cart/:id", shopHandler.UpdateCartItem)
	guest.Delete("/cart/:id", shopHandler.RemoveFromCart)
	guest.Post("/checkout", shopHandler.Checkout)
	guest.Get("/orders", shopHandler.GetMyOrders)

	// ============ OPERATOR AREA ============
	operator := app.Group("/operator")
	operator.Get("/kandang", kandangHandler.GetKandangs)
	operator.Post("/kandang", kandangHandler.CreateKandang)
	operator.Put("/kandang/:id", kandangHandler.UpdateKandang)
	operator.Delete("/kandang/:id", kandangHandler.DeleteKandang)
	operator.Get("/kandang/:id/history", kandangHandler.GetKandangHistory)
	operator.Get("/history", kandangHandler.GetAllHistory)
	operator.Post("/predict", kandangHandler.PredictFeed)

	// ============ ADMIN AREA ============
	admin := app.Group("/admin")
	admin.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	admin.Get("/dashboard/order-volume", dashHandler.GetOrderVolume)

	admin.Get("/products", productHandler.GetProducts)
	admin.Post("/products", productHandler.CreateProduct)
	admin.Put("/products/:id", productHandler.UpdateProduct)
	admin.Delete("/products/:id", productHandler.DeleteProduct)

	admin.Get("/users", userHandler.GetUsers)
	admin.Post("/users", userHandler.CreateUser)
	admin.Put("/users/:id", userHandler.UpdateUser)
	admin.Delete("/users/:id", userHandler.DeleteUser)

	admin.Get("/orders", orderHandler.GetOrders)
	admin.Put("/orders/:id/status", orderHandler.UpdateOrderStatus)

	admin.Get("/news", newsHandler.GetAllNews)
	admin.Post("/news", newsHandler.CreateNews)
	admin.Put("/news/:id", newsHandler.UpdateNews)
	admin.Delete("/news/:id", newsHandler.DeleteNews)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin account if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := "admin@poultrigo.local"
	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	admin := &model.User{
		Name:  "Administrator",
		Email: email,
		Role:  model.RoleAdmin,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("✅ Admin user created: %s / admin123", email)
	}
}
