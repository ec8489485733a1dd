package routes

import (
	"WasteLess-API/internal/api/handlers"
	"WasteLess-API/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FridgeHandler       handlers.FridgeHandler
	ItemHandler         handlers.ItemHandler
	ProductHandler      handlers.ProductHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.Fridges()
	c.Items()
	c.Products()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users")
	{
		users.Post("", c.UserHandler.Register)
		users.Get("", c.UserHandler.GetUsers)
		users.Get("/:id", c.UserHandler.GetUser)
		users.Put("/:id", c.UserHandler.UpdateUser)
		users.Delete("/:id", c.UserHandler.DeleteUser)
		users.Get("/:id/notifications", c.UserHandler.GetUserNotifications)
	}
}

func (c *Config) Fridges() {
	fridges := c.App.Group("/api/v1/fridges")
	{
		fridges.Post("", c.FridgeHandler.CreateFridge)
		fridges.Get("", c.FridgeHandler.GetFridges)
		fridges.Get("/:id", c.FridgeHandler.GetFridge)
		fridges.Put("/:id", c.FridgeHandler.UpdateFridge)
		fridges.Delete("/:id", c.FridgeHandler.DeleteFridge)

		// sharing
		fridges.Post("/:id/users", c.FridgeHandler.ShareFridge)
		fridges.Get("/:id/users", c.FridgeHandler.GetFridgeShares)
		fridges.Delete("/:id/users/:user_id", c.FridgeHandler.UnshareFridge)

		// items scoped to a fridge
		fridges.Post("/:id/items", c.ItemHandler.AddFridgeItem)
		fridges.Get("/:id/items", c.ItemHandler.GetFridgeItems)
	}
}

func (c *Config) Items() {
	items := c.App.Group("/api/v1/items")
	{
		items.Get("/:id", c.ItemHandler.GetFridgeItem)
		items.Put("/:id", c.ItemHandler.UpdateFridgeItem)
		items.Delete("/:id", c.ItemHandler.DeleteFridgeItem)
		items.Post("/:id/image", c.ItemHandler.UploadItemImage)
	}
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products")
	{
		products.Post("", c.ProductHandler.CreateProduct)
		products.Get("", c.ProductHandler.GetProducts)
		products.Get("/:id", c.ProductHandler.GetProduct)
	}

	qrCodes := c.App.Group("/api/v1/qr-codes")
	{
		qrCodes.Post("", c.ProductHandler.CreateQRCode)
		qrCodes.Get("/:code", c.ProductHandler.GetQRCode)
	}
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications")
	{
		notifications.Post("/generate", c.NotificationHandler.GenerateNotifications)
		notifications.Post("/:id/send", c.NotificationHandler.SendNotification)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
