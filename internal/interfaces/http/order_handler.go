package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/orders"
)

// OrderHandler endpoints de órdenes: commit, cancelación y consultas.
type OrderHandler struct {
	commit  *orders.CommitOrderUseCase
	queries *orders.QueryUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(commit *orders.CommitOrderUseCase, queries *orders.QueryUseCase) *OrderHandler {
	return &OrderHandler{commit: commit, queries: queries}
}

// Create maneja POST /api/orders: valida, confirma la orden (stock + ledger +
// orden en una transacción) y devuelve la orden confirmada.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	resp, err := h.commit.CreateOrder(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Cancel maneja POST /api/orders/:id/cancel: revierte una orden COMPLETED.
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	resp, err := h.commit.CancelOrder(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Get maneja GET /api/orders/:id.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	resp, err := h.queries.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List maneja GET /api/orders?kind=SALE|PURCHASE.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	kind := c.Query("kind")
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	list, err := h.queries.ListOrders(c.Context(), kind, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}
