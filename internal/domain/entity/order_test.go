package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecomputeTotals_VentaAplicaDescuento(t *testing.T) {
	order := &Order{
		Kind:     OrderKindSale,
		Discount: decimal.NewFromInt(10),
		Lines: []OrderLine{
			{LineTotal: decimal.NewFromInt(60)},
			{LineTotal: decimal.NewFromInt(40)},
		},
	}
	order.RecomputeTotals()

	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(100)), "subtotal = %s", order.Subtotal)
	assert.True(t, order.GrandTotal.Equal(decimal.NewFromInt(90)), "grand_total = %s", order.GrandTotal)
}

func TestRecomputeTotals_CompraIgnoraDescuento(t *testing.T) {
	order := &Order{
		Kind: OrderKindPurchase,
		Lines: []OrderLine{
			{LineTotal: decimal.NewFromInt(100)},
		},
	}
	order.RecomputeTotals()

	assert.True(t, order.GrandTotal.Equal(order.Subtotal))
	assert.True(t, order.GrandTotal.Equal(decimal.NewFromInt(100)))
}

func TestMovementDirection(t *testing.T) {
	assert.Equal(t, DirectionIN, (&Order{Kind: OrderKindPurchase}).MovementDirection())
	assert.Equal(t, DirectionOUT, (&Order{Kind: OrderKindSale}).MovementDirection())
}

func TestCounterpartyID(t *testing.T) {
	purchase := &Order{Kind: OrderKindPurchase, SupplierID: "s1"}
	sale := &Order{Kind: OrderKindSale, CustomerID: "c1"}
	assert.Equal(t, "s1", purchase.CounterpartyID())
	assert.Equal(t, "c1", sale.CounterpartyID())
}
