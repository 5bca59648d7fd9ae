package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

func productMap(products ...*entity.Product) map[string]*entity.Product {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return m
}

func TestBuildLines_SinLineasEsOrdenVacia(t *testing.T) {
	_, _, err := BuildLines(entity.OrderKindSale, nil, nil)
	require.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestBuildLines_VentaUsaPrecioDelProducto(t *testing.T) {
	p := &entity.Product{ID: "p1", SellingPrice: decimal.NewFromInt(50)}

	lines, subtotal, err := BuildLines(entity.OrderKindSale, productMap(p), []dto.OrderLineRequest{
		{ProductID: "p1", Quantity: decimal.NewFromInt(3)},
	})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].UnitPrice.Equal(decimal.NewFromInt(50)))
	assert.True(t, lines[0].LineTotal.Equal(decimal.NewFromInt(150)))
	assert.True(t, subtotal.Equal(decimal.NewFromInt(150)))
}

func TestBuildLines_VentaRechazaPrecioDelCaller(t *testing.T) {
	p := &entity.Product{ID: "p1", SellingPrice: decimal.NewFromInt(50)}
	price := decimal.NewFromInt(1)

	_, _, err := BuildLines(entity.OrderKindSale, productMap(p), []dto.OrderLineRequest{
		{ProductID: "p1", Quantity: decimal.NewFromInt(1), UnitPrice: &price},
	})
	var invalid *domain.InvalidLineError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, invalid.Index)
}

func TestBuildLines_CompraExigePrecioPositivo(t *testing.T) {
	p := &entity.Product{ID: "p1"}

	// Sin precio.
	_, _, err := BuildLines(entity.OrderKindPurchase, productMap(p), []dto.OrderLineRequest{
		{ProductID: "p1", Quantity: decimal.NewFromInt(1)},
	})
	var invalid *domain.InvalidLineError
	require.ErrorAs(t, err, &invalid)

	// Precio cero.
	zero := decimal.Zero
	_, _, err = BuildLines(entity.OrderKindPurchase, productMap(p), []dto.OrderLineRequest{
		{ProductID: "p1", Quantity: decimal.NewFromInt(1), UnitPrice: &zero},
	})
	require.ErrorAs(t, err, &invalid)
}

func TestBuildLines_CantidadNoEnteraEsLineaInvalida(t *testing.T) {
	p := &entity.Product{ID: "p1", SellingPrice: decimal.NewFromInt(10)}

	_, _, err := BuildLines(entity.OrderKindSale, productMap(p), []dto.OrderLineRequest{
		{ProductID: "p1", Quantity: decimal.RequireFromString("2.5")},
	})
	var invalid *domain.InvalidLineError
	require.ErrorAs(t, err, &invalid)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildLines_CantidadNoPositivaEsLineaInvalida(t *testing.T) {
	p := &entity.Product{ID: "p1", SellingPrice: decimal.NewFromInt(10)}

	for _, q := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-3)} {
		_, _, err := BuildLines(entity.OrderKindSale, productMap(p), []dto.OrderLineRequest{
			{ProductID: "p1", Quantity: q},
		})
		var invalid *domain.InvalidLineError
		require.ErrorAs(t, err, &invalid, "cantidad %s", q)
	}
}

func TestBuildLines_ProductoDesconocidoEsNotFound(t *testing.T) {
	_, _, err := BuildLines(entity.OrderKindSale, productMap(), []dto.OrderLineRequest{
		{ProductID: "no-existe", Quantity: decimal.NewFromInt(1)},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuildLines_IndiceSenalaLaLineaOfensora(t *testing.T) {
	p := &entity.Product{ID: "p1", SellingPrice: decimal.NewFromInt(10)}

	_, _, err := BuildLines(entity.OrderKindSale, productMap(p), []dto.OrderLineRequest{
		{ProductID: "p1", Quantity: decimal.NewFromInt(1)},
		{ProductID: "p1", Quantity: decimal.NewFromInt(-1)},
	})
	var invalid *domain.InvalidLineError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 1, invalid.Index)
}
