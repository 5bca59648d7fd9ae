package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// CancelOrder revierte una orden COMPLETED: por cada línea aplica la mutación
// de stock opuesta y apendea un movimiento compensatorio con referencia
// REVERSAL, luego marca la orden CANCELLED. Todo en una transacción. La
// historia nunca se borra: los movimientos originales quedan intactos.
//
// Revertir una compra descuenta stock, así que puede fallar con
// InsufficientStock si parte de lo comprado ya se vendió; en ese caso la
// cancelación completa se aborta sin efectos.
func (uc *CommitOrderUseCase) CancelOrder(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}

	var cancelled *entity.Order
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		orderRepo repository.OrderRepository,
	) error {
		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order.Status != entity.OrderStatusCompleted {
			return domain.ErrConflict
		}

		now := time.Now()
		reverseDirection := entity.DirectionIN
		if order.Kind == entity.OrderKindPurchase {
			reverseDirection = entity.DirectionOUT
		}
		for i, line := range order.Lines {
			if order.Kind == entity.OrderKindPurchase {
				_, err = uc.accessor.ReserveOutbound(productRepo, line.ProductID, line.Quantity)
			} else {
				_, err = uc.accessor.ReceiveInbound(productRepo, line.ProductID, line.Quantity)
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
				Direction:     reverseDirection,
				Quantity:      line.Quantity,
				ReferenceKind: entity.ReferenceReversal,
				ReferenceID:   order.ID,
				Note:          fmt.Sprintf("reverso por cancelación de orden %s", order.ID),
				CreatedAt:     now,
			}); err != nil {
				return err
			}
		}

		if err := orderRepo.UpdateStatus(order.ID, entity.OrderStatusCancelled); err != nil {
			return err
		}
		order.Status = entity.OrderStatusCancelled
		order.UpdatedAt = now
		cancelled = order
		return nil
	})
	if err != nil {
		return nil, uc.classify(err)
	}

	uc.log.Info().
		Str("order_id", cancelled.ID).
		Str("kind", cancelled.Kind).
		Msg("orden cancelada y stock restaurado")
	return toOrderResponse(cancelled), nil
}
