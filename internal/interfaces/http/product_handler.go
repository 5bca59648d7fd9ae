package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/catalog"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
)

// ProductHandler endpoints del catálogo de productos, stock bajo y auditoría
// de movimientos.
type ProductHandler struct {
	products *catalog.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(products *catalog.ProductUseCase) *ProductHandler {
	return &ProductHandler{products: products}
}

// Create maneja POST /api/products.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	resp, err := h.products.CreateProduct(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update maneja PUT /api/products/:id. El stock no se edita por acá.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	resp, err := h.products.UpdateProduct(c.Context(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Get maneja GET /api/products/:id.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	resp, err := h.products.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List maneja GET /api/products.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.products.ListProducts(c.Context(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

// LowStock maneja GET /api/products/low-stock.
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.products.ListLowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

// Delete maneja DELETE /api/products/:id. Con historia asociada responde 409.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.products.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Movements maneja GET /api/products/:id/movements (auditoría del ledger).
func (h *ProductHandler) Movements(c *fiber.Ctx) error {
	list, err := h.products.ListMovements(c.Context(), c.Params("id"), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}
