package dto

import "github.com/shopspring/decimal"

// OrderLineRequest una línea del body de creación de orden.
// Quantity viaja como decimal para poder rechazar valores no enteros con un
// error de línea en vez de un error de parseo genérico. UnitPrice solo se
// acepta en compras; en ventas el precio sale siempre del producto.
type OrderLineRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	Kind           string             `json:"kind"` // PURCHASE | SALE
	CounterpartyID string             `json:"counterparty_id"`
	Discount       decimal.Decimal    `json:"discount,omitempty"`
	Lines          []OrderLineRequest `json:"lines"`
}

// OrderLineResponse una línea en la respuesta de orden.
type OrderLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderResponse representación de una orden con sus líneas y totales.
type OrderResponse struct {
	ID             string              `json:"id"`
	Kind           string              `json:"kind"`
	CounterpartyID string              `json:"counterparty_id"`
	Status         string              `json:"status"`
	Date           string              `json:"date"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	Discount       decimal.Decimal     `json:"discount"`
	GrandTotal     decimal.Decimal     `json:"grand_total"`
	Lines          []OrderLineResponse `json:"lines"`
}
