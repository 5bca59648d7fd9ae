package orders

import (
	"context"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// QueryUseCase lecturas de órdenes (cabecera + líneas), fuera del protocolo
// de commit.
type QueryUseCase struct {
	orderRepo repository.OrderRepository
}

// NewQueryUseCase construye el caso de uso de consulta.
func NewQueryUseCase(orderRepo repository.OrderRepository) *QueryUseCase {
	return &QueryUseCase{orderRepo: orderRepo}
}

// GetOrder obtiene una orden por ID con sus líneas y totales.
func (uc *QueryUseCase) GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListOrders lista órdenes de un tipo, más recientes primero.
func (uc *QueryUseCase) ListOrders(ctx context.Context, kind string, limit, offset int) ([]*dto.OrderResponse, error) {
	if kind != entity.OrderKindPurchase && kind != entity.OrderKindSale {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.orderRepo.ListByKind(kind, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, order := range list {
		out = append(out, toOrderResponse(order))
	}
	return out, nil
}
