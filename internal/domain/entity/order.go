package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipo de orden.
const (
	OrderKindPurchase = "PURCHASE"
	OrderKindSale     = "SALE"
)

// Estado de una orden.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// Order es la cabecera de una orden de compra o venta. Según Kind se llena
// SupplierID (PURCHASE) o CustomerID (SALE), exactamente uno. Las líneas son
// inmutables una vez la orden queda COMPLETED.
type Order struct {
	ID         string
	Kind       string // PURCHASE | SALE
	SupplierID string
	CustomerID string
	Status     string // PENDING | COMPLETED | CANCELLED
	Date       time.Time
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	GrandTotal decimal.Decimal
	Lines      []OrderLine
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderLine es una línea de la orden. LineTotal = Quantity × UnitPrice.
type OrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// CounterpartyID devuelve el ID de la contraparte según el tipo de orden.
func (o *Order) CounterpartyID() string {
	if o.Kind == OrderKindPurchase {
		return o.SupplierID
	}
	return o.CustomerID
}

// MovementDirection devuelve la dirección de los movimientos que genera el
// commit de la orden: IN para compras, OUT para ventas.
func (o *Order) MovementDirection() string {
	if o.Kind == OrderKindPurchase {
		return DirectionIN
	}
	return DirectionOUT
}

// RecomputeTotals recalcula Subtotal y GrandTotal desde las líneas.
// GrandTotal = Subtotal − Discount para ventas; las compras no llevan descuento.
func (o *Order) RecomputeTotals() {
	subtotal := decimal.Zero
	for _, line := range o.Lines {
		subtotal = subtotal.Add(line.LineTotal)
	}
	o.Subtotal = subtotal
	if o.Kind == OrderKindSale {
		o.GrandTotal = subtotal.Sub(o.Discount)
		return
	}
	o.GrandTotal = subtotal
}
