package repository

import "github.com/tu-usuario/stock-ledger/internal/domain/entity"

// OrderRepository define el puerto de persistencia para órdenes y sus líneas.
// Create persiste cabecera y líneas juntas (misma transacción del caller).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByKind(kind string, limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
}
