package repository

import "github.com/tu-usuario/stock-ledger/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y solo tiene sentido
// dentro de una transacción; UpdateStock es el único camino para mutar
// StockQuantity y debe invocarse con la fila ya bloqueada.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, quantity int64) error
	List(limit, offset int) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	Delete(id string) error
}
