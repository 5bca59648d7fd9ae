package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

// stubMovementRepo recorder de entradas del ledger.
type stubMovementRepo struct {
	appended []*entity.Movement
}

func (r *stubMovementRepo) Append(m *entity.Movement) error {
	cp := *m
	r.appended = append(r.appended, &cp)
	return nil
}

func (r *stubMovementRepo) ListByProduct(string, int, int) ([]*entity.Movement, error) {
	return r.appended, nil
}

func (r *stubMovementRepo) ListByOrder(string) ([]*entity.Movement, error) {
	return r.appended, nil
}

// stubTxRunner ejecuta fn directo con los stubs; si fn falla, restaura el
// stock previo (rollback simulado).
type stubTxRunner struct {
	products  *stubProductRepo
	movements *stubMovementRepo
}

func (r *stubTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	orderRepo repository.OrderRepository,
) error) error {
	before := make(map[string]int64, len(r.products.products))
	for id, p := range r.products.products {
		before[id] = p.StockQuantity
	}
	movCount := len(r.movements.appended)
	if err := fn(r.products, r.movements, nil); err != nil {
		for id, stock := range before {
			r.products.products[id].StockQuantity = stock
		}
		r.movements.appended = r.movements.appended[:movCount]
		return err
	}
	return nil
}

func newAdjustmentEnv(stock int64) (*AdjustmentUseCase, *stubProductRepo, *stubMovementRepo) {
	products := newStubRepo("p1", stock)
	movements := &stubMovementRepo{}
	runner := &stubTxRunner{products: products, movements: movements}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return NewAdjustmentUseCase(runner, NewStockAccessor(), log), products, movements
}

func TestRegisterAdjustment_EntradaSumaStock(t *testing.T) {
	uc, products, movements := newAdjustmentEnv(5)

	err := uc.RegisterAdjustment(context.Background(), dto.AdjustmentRequest{
		ProductID: "p1",
		Direction: entity.DirectionIN,
		Quantity:  decimal.NewFromInt(3),
		Note:      "conteo físico",
	})
	require.NoError(t, err)

	assert.EqualValues(t, 8, products.products["p1"].StockQuantity)
	require.Len(t, movements.appended, 1)
	mov := movements.appended[0]
	assert.Equal(t, entity.DirectionIN, mov.Direction)
	assert.Equal(t, entity.ReferenceAdjustment, mov.ReferenceKind)
	assert.Equal(t, "conteo físico", mov.Note)
}

func TestRegisterAdjustment_SalidaConStockInsuficienteAborta(t *testing.T) {
	uc, products, movements := newAdjustmentEnv(2)

	err := uc.RegisterAdjustment(context.Background(), dto.AdjustmentRequest{
		ProductID: "p1",
		Direction: entity.DirectionOUT,
		Quantity:  decimal.NewFromInt(5),
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.EqualValues(t, 2, products.products["p1"].StockQuantity)
	assert.Empty(t, movements.appended, "sin delta no hay entrada en el ledger")
}

func TestRegisterAdjustment_ValidaEntrada(t *testing.T) {
	uc, _, _ := newAdjustmentEnv(5)

	cases := []dto.AdjustmentRequest{
		{Direction: entity.DirectionIN, Quantity: decimal.NewFromInt(1)},                       // sin producto
		{ProductID: "p1", Direction: "SIDEWAYS", Quantity: decimal.NewFromInt(1)},              // dirección inválida
		{ProductID: "p1", Direction: entity.DirectionIN, Quantity: decimal.Zero},               // cantidad cero
		{ProductID: "p1", Direction: entity.DirectionIN, Quantity: decimal.NewFromInt(-2)},     // negativa
		{ProductID: "p1", Direction: entity.DirectionIN, Quantity: decimal.RequireFromString("1.5")}, // no entera
	}
	for _, in := range cases {
		err := uc.RegisterAdjustment(context.Background(), in)
		require.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}
}
