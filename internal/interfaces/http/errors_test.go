package http

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/stock-ledger/internal/domain"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "stock insuficiente con detalle de línea",
			err:    &domain.InsufficientStockError{ProductID: "p1", LineIndex: 2, Requested: 5, Available: 1},
			status: fiber.StatusConflict,
			code:   "INSUFFICIENT_STOCK",
		},
		{
			name:   "línea inválida",
			err:    &domain.InvalidLineError{Index: 0, Reason: "la cantidad debe ser un número entero"},
			status: fiber.StatusBadRequest,
			code:   "INVALID_LINE",
		},
		{
			name:   "orden vacía",
			err:    domain.ErrEmptyOrder,
			status: fiber.StatusBadRequest,
			code:   "EMPTY_ORDER",
		},
		{
			name:   "entrada inválida",
			err:    domain.ErrInvalidInput,
			status: fiber.StatusBadRequest,
			code:   "INVALID_INPUT",
		},
		{
			name:   "no encontrado",
			err:    domain.ErrNotFound,
			status: fiber.StatusNotFound,
			code:   "NOT_FOUND",
		},
		{
			name:   "duplicado",
			err:    domain.ErrDuplicate,
			status: fiber.StatusConflict,
			code:   "DUPLICATE",
		},
		{
			name:   "conflicto de estado",
			err:    domain.ErrConflict,
			status: fiber.StatusConflict,
			code:   "CONFLICT",
		},
		{
			name:   "fallo al confirmar",
			err:    &domain.CommitFailedError{Cause: errors.New("conexión caída")},
			status: fiber.StatusInternalServerError,
			code:   "COMMIT_FAILED",
		},
		{
			name:   "error desconocido no filtra detalle",
			err:    errors.New("detalle interno"),
			status: fiber.StatusInternalServerError,
			code:   "INTERNAL",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := mapError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body.Code)
			if tc.code == "INTERNAL" {
				assert.NotContains(t, body.Message, "detalle interno")
			}
		})
	}
}
