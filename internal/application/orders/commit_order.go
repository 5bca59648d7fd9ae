package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

// CommitOrderUseCase implementa el protocolo de commit de órdenes: arma las
// líneas, abre una transacción, muta el stock línea por línea, apendea los
// movimientos del ledger y persiste la orden, todo o nada. Expone también el
// reverso (cancelación) con la misma garantía.
type CommitOrderUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
	accessor     *inventory.StockAccessor
	events       EventPublisher
	log          *logger.Logger
}

// NewCommitOrderUseCase construye el caso de uso.
func NewCommitOrderUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
	accessor *inventory.StockAccessor,
	events EventPublisher,
	log *logger.Logger,
) *CommitOrderUseCase {
	return &CommitOrderUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		accessor:     accessor,
		events:       events,
		log:          log,
	}
}

// lowStockHit producto que quedó en o bajo su umbral de alerta tras el commit.
type lowStockHit struct {
	product   *entity.Product
	remaining int64
}

// CreateOrder valida el request, construye las líneas y ejecuta el commit en
// una sola transacción. Las líneas se procesan secuencialmente en el orden
// del request: la primera que falle por stock insuficiente aborta la orden
// completa (las anteriores tampoco surten efecto) y el error identifica esa
// línea. No hay pre-chequeo global: es fail-fast deliberado.
func (uc *CommitOrderUseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Kind != entity.OrderKindPurchase && in.Kind != entity.OrderKindSale {
		return nil, domain.ErrInvalidInput
	}
	if in.CounterpartyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Discount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind == entity.OrderKindPurchase && !in.Discount.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	// Contraparte según tipo: proveedor para compras, cliente para ventas.
	if in.Kind == entity.OrderKindPurchase {
		if _, err := uc.supplierRepo.GetByID(in.CounterpartyID); err != nil {
			return nil, err
		}
	} else {
		if _, err := uc.customerRepo.GetByID(in.CounterpartyID); err != nil {
			return nil, err
		}
	}

	// Resolver productos fuera de la transacción (solo lectura).
	productsByID := make(map[string]*entity.Product)
	for _, line := range in.Lines {
		if line.ProductID == "" || productsByID[line.ProductID] != nil {
			continue
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		productsByID[line.ProductID] = product
	}

	lines, subtotal, err := BuildLines(in.Kind, productsByID, in.Lines)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		Kind:      in.Kind,
		Status:    entity.OrderStatusPending,
		Date:      now,
		Subtotal:  subtotal,
		Discount:  in.Discount,
		Lines:     lines,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Kind == entity.OrderKindPurchase {
		order.SupplierID = in.CounterpartyID
	} else {
		order.CustomerID = in.CounterpartyID
	}
	for i := range order.Lines {
		order.Lines[i].OrderID = order.ID
	}
	order.RecomputeTotals()

	var lowStock []lowStockHit
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		orderRepo repository.OrderRepository,
	) error {
		lowByID := make(map[string]lowStockHit)
		for i, line := range order.Lines {
			var remaining int64
			var err error
			if order.Kind == entity.OrderKindSale {
				remaining, err = uc.accessor.ReserveOutbound(productRepo, line.ProductID, line.Quantity)
			} else {
				remaining, err = uc.accessor.ReceiveInbound(productRepo, line.ProductID, line.Quantity)
			}
			if err != nil {
				var insufficient *domain.InsufficientStockError
				if errors.As(err, &insufficient) {
					insufficient.LineIndex = i
				}
				return err
			}
			if err := movRepo.Append(&entity.Movement{
				ID:            uuid.New().String(),
				ProductID:     line.ProductID,
				Direction:     order.MovementDirection(),
				Quantity:      line.Quantity,
				ReferenceKind: entity.ReferenceOrder,
				ReferenceID:   order.ID,
				Note:          movementNote(order),
				CreatedAt:     now,
			}); err != nil {
				return err
			}
			if order.Kind == entity.OrderKindSale {
				product := productsByID[line.ProductID]
				if remaining <= product.MinStockAlert {
					lowByID[line.ProductID] = lowStockHit{product: product, remaining: remaining}
				}
			}
		}

		order.Status = entity.OrderStatusCompleted
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, hit := range lowByID {
			lowStock = append(lowStock, hit)
		}
		return nil
	})
	if err != nil {
		order.Status = entity.OrderStatusPending
		return nil, uc.classify(err)
	}

	uc.log.Info().
		Str("order_id", order.ID).
		Str("kind", order.Kind).
		Int("lines", len(order.Lines)).
		Str("grand_total", order.GrandTotal.String()).
		Msg("orden confirmada")

	uc.publishAfterCommit(ctx, order, lowStock)
	return toOrderResponse(order), nil
}

// classify separa errores del caller (pasan tal cual) de fallos de
// infraestructura al confirmar (se reportan como CommitFailed: la
// transacción ya hizo rollback y el caller puede reintentar sin riesgo).
func (uc *CommitOrderUseCase) classify(err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict):
		return err
	default:
		return &domain.CommitFailedError{Cause: err}
	}
}

// publishAfterCommit emite los eventos post-commit. Cualquier fallo se
// loguea y se descarta: la orden ya quedó confirmada y la notificación no
// puede revertirla ni enmascararla.
func (uc *CommitOrderUseCase) publishAfterCommit(ctx context.Context, order *entity.Order, lowStock []lowStockHit) {
	if uc.events == nil {
		return
	}
	if err := uc.events.OrderCommitted(ctx, order); err != nil {
		uc.log.Warn().Err(err).Str("order_id", order.ID).Msg("no se pudo encolar la notificación de orden")
	}
	for _, hit := range lowStock {
		if err := uc.events.LowStock(ctx, hit.product, hit.remaining); err != nil {
			uc.log.Warn().Err(err).Str("product_id", hit.product.ID).Msg("no se pudo encolar la alerta de stock bajo")
		}
	}
}

// movementNote descripción del movimiento según la contraparte.
func movementNote(order *entity.Order) string {
	if order.Kind == entity.OrderKindPurchase {
		return fmt.Sprintf("compra a proveedor %s", order.SupplierID)
	}
	return fmt.Sprintf("venta a cliente %s", order.CustomerID)
}

func toOrderResponse(order *entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:             order.ID,
		Kind:           order.Kind,
		CounterpartyID: order.CounterpartyID(),
		Status:         order.Status,
		Date:           order.Date.Format(time.RFC3339),
		Subtotal:       order.Subtotal,
		Discount:       order.Discount,
		GrandTotal:     order.GrandTotal,
		Lines:          make([]dto.OrderLineResponse, 0, len(order.Lines)),
	}
	for _, line := range order.Lines {
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		})
	}
	return resp
}
