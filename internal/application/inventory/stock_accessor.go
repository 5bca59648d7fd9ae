package inventory

import (
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// StockAccessor es el único punto de mutación de Product.StockQuantity.
// Sus métodos reciben un ProductRepository atado a la transacción del caller
// y bloquean la fila del producto (SELECT FOR UPDATE) antes de leer, de modo
// que el check "disponible >= solicitado" y el decremento son atómicos frente
// a commits concurrentes sobre el mismo producto. Productos distintos no se
// bloquean entre sí.
type StockAccessor struct{}

// NewStockAccessor construye el accessor.
func NewStockAccessor() *StockAccessor {
	return &StockAccessor{}
}

// ReserveOutbound descuenta quantity del stock del producto. Si el stock
// disponible es menor retorna InsufficientStockError sin mutar nada.
// Retorna la cantidad resultante tras el decremento.
func (a *StockAccessor) ReserveOutbound(productRepo repository.ProductRepository, productID string, quantity int64) (int64, error) {
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return 0, err
	}
	if product.StockQuantity < quantity {
		return 0, &domain.InsufficientStockError{
			ProductID: productID,
			LineIndex: -1,
			Requested: quantity,
			Available: product.StockQuantity,
		}
	}
	newQty := product.StockQuantity - quantity
	if err := productRepo.UpdateStock(productID, newQty); err != nil {
		return 0, err
	}
	return newQty, nil
}

// ReceiveInbound suma quantity al stock del producto. Las entradas siempre
// proceden en cuanto a stock; solo falla si el producto no existe o por
// error de almacenamiento. Retorna la cantidad resultante.
func (a *StockAccessor) ReceiveInbound(productRepo repository.ProductRepository, productID string, quantity int64) (int64, error) {
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return 0, err
	}
	newQty := product.StockQuantity + quantity
	if err := productRepo.UpdateStock(productID, newQty); err != nil {
		return 0, err
	}
	return newQty, nil
}
