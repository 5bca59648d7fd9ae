package orders

import (
	"context"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El protocolo de commit de órdenes depende de
// esta garantía: mutación de stock, ledger y orden se confirman juntos o
// ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// EventPublisher publica los eventos posteriores al commit ("orden
// confirmada", "stock bajo"). Se invoca estrictamente después de confirmar
// la transacción; un fallo aquí se reporta pero nunca revierte ni enmascara
// un commit exitoso.
type EventPublisher interface {
	OrderCommitted(ctx context.Context, order *entity.Order) error
	LowStock(ctx context.Context, product *entity.Product, remaining int64) error
}
