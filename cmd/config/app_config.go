package config

import (
	"WasteLess-API/internal/api/handlers"
	"WasteLess-API/internal/api/routes"
	"WasteLess-API/internal/middleware"
	"WasteLess-API/internal/utils"
	"WasteLess-API/internal/utils/storage"
	"WasteLess-API/pkg/fridge"
	"WasteLess-API/pkg/item"
	"WasteLess-API/pkg/notification"
	"WasteLess-API/pkg/product"
	"WasteLess-API/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	fridgeRepository := fridge.NewFridgeRepository(db)
	productRepository := product.NewProductRepository(db)
	itemRepository := item.NewItemRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)

	// Service
	userService := user.NewUserService(userRepository)
	fridgeService := fridge.NewFridgeService(fridgeRepository, userRepository)
	productService := product.NewProductService(productRepository)
	itemService := item.NewItemService(itemRepository, fridgeRepository, productRepository, s3)
	notificationService := notification.NewNotificationService(notificationRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, notificationService, validator)
	fridgeHandler := handlers.NewFridgeHandler(fridgeService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	itemHandler := handlers.NewItemHandler(itemService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FridgeHandler:       fridgeHandler,
		ItemHandler:         itemHandler,
		ProductHandler:      productHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
