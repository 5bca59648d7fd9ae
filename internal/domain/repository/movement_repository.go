package repository

import "github.com/tu-usuario/stock-ledger/internal/domain/entity"

// MovementRepository define el puerto de persistencia del ledger de
// movimientos. El ledger es append-only: no existe Update ni Delete.
type MovementRepository interface {
	Append(movement *entity.Movement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error)
	ListByOrder(orderID string) ([]*entity.Movement, error)
}
