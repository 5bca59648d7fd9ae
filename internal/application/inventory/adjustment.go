package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

// AdjustmentUseCase registra ajustes manuales de stock (conteos físicos,
// mermas, correcciones) de forma transaccional: delta de stock + entrada en
// el ledger con referencia ADJUSTMENT, en una sola transacción.
type AdjustmentUseCase struct {
	txRunner TxRunner
	accessor *StockAccessor
	log      *logger.Logger
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(txRunner TxRunner, accessor *StockAccessor, log *logger.Logger) *AdjustmentUseCase {
	return &AdjustmentUseCase{txRunner: txRunner, accessor: accessor, log: log}
}

// RegisterAdjustment valida y aplica un ajuste. La cantidad debe ser un
// entero positivo; la dirección IN suma y OUT resta (OUT puede fallar con
// stock insuficiente, nunca deja el stock negativo).
func (uc *AdjustmentUseCase) RegisterAdjustment(ctx context.Context, in dto.AdjustmentRequest) error {
	if in.ProductID == "" {
		return domain.ErrInvalidInput
	}
	if in.Direction != entity.DirectionIN && in.Direction != entity.DirectionOUT {
		return domain.ErrInvalidInput
	}
	if !in.Quantity.IsPositive() || !in.Quantity.IsInteger() {
		return domain.ErrInvalidInput
	}
	quantity := in.Quantity.IntPart()
	now := time.Now()

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		_ repository.OrderRepository,
	) error {
		var err error
		if in.Direction == entity.DirectionOUT {
			_, err = uc.accessor.ReserveOutbound(productRepo, in.ProductID, quantity)
		} else {
			_, err = uc.accessor.ReceiveInbound(productRepo, in.ProductID, quantity)
		}
		if err != nil {
			return err
		}
		return movRepo.Append(&entity.Movement{
			ID:            uuid.New().String(),
			ProductID:     in.ProductID,
			Direction:     in.Direction,
			Quantity:      quantity,
			ReferenceKind: entity.ReferenceAdjustment,
			Note:          in.Note,
			CreatedAt:     now,
		})
	})
	if err != nil {
		return err
	}

	uc.log.Info().
		Str("product_id", in.ProductID).
		Str("direction", in.Direction).
		Int64("quantity", quantity).
		Msg("ajuste de stock registrado")
	return nil
}
