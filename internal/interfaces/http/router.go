package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

// Handlers agrupa los handlers de la API para el registro de rutas.
type Handlers struct {
	Orders    *OrderHandler
	Products  *ProductHandler
	Inventory *InventoryHandler
	Partners  *PartnerHandler
}

// NewApp crea la aplicación Fiber con middlewares y rutas registradas.
func NewApp(h Handlers, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "stock-ledger",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Msg("request")
		return err
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	products := api.Group("/products")
	products.Post("/", h.Products.Create)
	products.Get("/", h.Products.List)
	products.Get("/low-stock", h.Products.LowStock)
	products.Get("/:id", h.Products.Get)
	products.Put("/:id", h.Products.Update)
	products.Delete("/:id", h.Products.Delete)
	products.Get("/:id/movements", h.Products.Movements)

	api.Post("/inventory/adjustments", h.Inventory.RegisterAdjustment)

	ordersGroup := api.Group("/orders")
	ordersGroup.Post("/", h.Orders.Create)
	ordersGroup.Get("/", h.Orders.List)
	ordersGroup.Get("/:id", h.Orders.Get)
	ordersGroup.Post("/:id/cancel", h.Orders.Cancel)

	customers := api.Group("/customers")
	customers.Post("/", h.Partners.CreateCustomer)
	customers.Get("/", h.Partners.ListCustomers)
	customers.Get("/:id", h.Partners.GetCustomer)
	customers.Put("/:id", h.Partners.UpdateCustomer)

	suppliers := api.Group("/suppliers")
	suppliers.Post("/", h.Partners.CreateSupplier)
	suppliers.Get("/", h.Partners.ListSuppliers)
	suppliers.Get("/:id", h.Partners.GetSupplier)
	suppliers.Put("/:id", h.Partners.UpdateSupplier)

	return app
}
