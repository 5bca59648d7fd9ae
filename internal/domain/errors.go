package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrEmptyOrder        = errors.New("la orden no tiene líneas")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrCommitFailed      = errors.New("no se pudo confirmar la transacción")
)

// InsufficientStockError indica que un producto no tiene stock suficiente
// para la salida solicitada. LineIndex lo completa el protocolo de commit
// para señalar la línea ofensora (-1 si no aplica, ej. ajustes manuales).
type InsufficientStockError struct {
	ProductID string
	LineIndex int
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s: solicitado %d, disponible %d",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// InvalidLineError indica que una línea de la orden no pasó validación
// (cantidad no positiva o no entera, precio inválido).
type InvalidLineError struct {
	Index  int
	Reason string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("línea %d inválida: %s", e.Index, e.Reason)
}

func (e *InvalidLineError) Unwrap() error { return ErrInvalidInput }

// CommitFailedError envuelve un fallo de infraestructura al confirmar la
// transacción (violación de constraint, timeout, caída de conexión).
// La transacción ya hizo rollback: el estado quedó como antes de la llamada.
type CommitFailedError struct {
	Cause error
}

func (e *CommitFailedError) Error() string {
	return fmt.Sprintf("no se pudo confirmar la transacción: %v", e.Cause)
}

func (e *CommitFailedError) Unwrap() []error { return []error{ErrCommitFailed, e.Cause} }
