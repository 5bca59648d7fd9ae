package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
)

// mapError traduce errores de dominio a status HTTP y cuerpo de error.
// Errores del caller -> 4xx; fallos al confirmar la transacción -> 500 con
// código COMMIT_FAILED (el estado no cambió, se puede reintentar).
func mapError(err error) (int, dto.ErrorResponse) {
	var insufficient *domain.InsufficientStockError
	var invalidLine *domain.InvalidLineError
	switch {
	case errors.As(err, &insufficient):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: insufficient.Error()}
	case errors.As(err, &invalidLine):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_LINE", Message: invalidLine.Error()}
	case errors.Is(err, domain.ErrEmptyOrder):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "EMPTY_ORDER", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()}
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()}
	case errors.Is(err, domain.ErrCommitFailed):
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "COMMIT_FAILED", Message: err.Error()}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
	}
}

// respondError escribe la respuesta de error mapeada.
func respondError(c *fiber.Ctx, err error) error {
	status, body := mapError(err)
	return c.Status(status).JSON(body)
}

// badRequest respuesta 400 para bodies que no parsean.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: message})
}
