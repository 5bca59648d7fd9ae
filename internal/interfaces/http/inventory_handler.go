package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
)

// InventoryHandler endpoints de ajustes manuales de stock.
type InventoryHandler struct {
	adjustments *inventory.AdjustmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjustments *inventory.AdjustmentUseCase) *InventoryHandler {
	return &InventoryHandler{adjustments: adjustments}
}

// RegisterAdjustment maneja POST /api/inventory/adjustments.
func (h *InventoryHandler) RegisterAdjustment(c *fiber.Ctx) error {
	var req dto.AdjustmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	if err := h.adjustments.RegisterAdjustment(c.Context(), req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}
