package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-store-pos/internal/handler"
	"go-store-pos/internal/middleware"
	"go-store-pos/internal/model"
	"go-store-pos/internal/repository"
	"go-store-pos/internal/service"
	"go-store-pos/internal/ws"
	"go-store-pos/pkg/database"
	"go-store-pos/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	log := logger.Must(logger.New())
	defer log.Sync()

	if err := godotenv.Load(); err != nil {
		log.Info(".env file not found, using environment")
	}

	db := database.ConnectDB(log)
	if err := db.AutoMigrate(
		&model.Seller{},
		&model.Customer{},
		&model.Product{},
		&model.Inventory{},
		&model.Sale{},
		&model.SaleItem{},
		&model.User{},
	); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	seedOperator(db, log)

	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// Wiring
	sellerRepo := repository.NewSellerRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	productRepo := repository.NewProductRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	userRepo := repository.NewUserRepo(db)

	catalogService := service.NewCatalogService(sellerRepo, customerRepo, productRepo)
	inventoryService := service.NewInventoryService(productRepo, inventoryRepo, db, wsHub, log)
	saleService := service.NewSaleService(productRepo, inventoryRepo, saleRepo, db, wsHub, log)
	reportService := service.NewReportService(saleRepo)
	authService := service.NewAuthService(userRepo)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	saleHandler := handler.NewSaleHandler(saleService)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)

	app := fiber.New(fiber.Config{
		AppName: "Store POS v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api/v1")

	// Public routes
	api.Post("/auth/login", authHandler.Login)

	// Everything else needs an operator token
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Post("/sellers", catalogHandler.CreateSeller)
	protected.Get("/sellers", catalogHandler.GetSellers)
	protected.Post("/customers", catalogHandler.CreateCustomer)
	protected.Get("/customers", catalogHandler.GetCustomers)
	protected.Post("/products", catalogHandler.CreateProduct)
	protected.Get("/products", catalogHandler.GetProducts)

	protected.Post("/inventory/restock", inventoryHandler.Restock)
	protected.Get("/inventory", inventoryHandler.GetInventory)

	protected.Post("/sales/sessions", saleHandler.CreateSession)
	protected.Get("/sales/sessions/:id", saleHandler.GetSession)
	protected.Post("/sales/sessions/:id/items", saleHandler.AddItem)
	protected.Delete("/sales/sessions/:id/items/:index", saleHandler.RemoveItem)
	protected.Delete("/sales/sessions/:id", saleHandler.ResetSession)
	protected.Post("/sales/sessions/:id/commit", saleHandler.Commit)

	protected.Get("/sales", reportHandler.GetSales)
	protected.Get("/sales/:id", saleHandler.GetSale)
	protected.Get("/reports/summary", reportHandler.GetSummary)

	// WebSocket stock feed
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
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Fatal("forced shutdown", zap.Error(err))
	}
	log.Info("server exited")
}

// seedOperator creates the default operator account on first run.
func seedOperator(db *gorm.DB, log *zap.Logger) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	operator := &model.User{
		Email:    email,
		FullName: "Store Operator",
	}
	if err := operator.SetPassword(password); err != nil {
		log.Warn("failed to hash operator password", zap.Error(err))
		return
	}
	if err := userRepo.Create(operator); err != nil {
		log.Warn("failed to create operator account", zap.Error(err))
		return
	}
	log.Info("operator account created", zap.String("email", email))
}
