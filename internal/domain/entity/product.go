package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. StockQuantity es entero y
// nunca negativo; solo se muta a través del motor de stock dentro de una
// transacción, nunca con updates directos.
type Product struct {
	ID            string
	Code          string // código único
	Name          string
	Category      string
	Brand         string
	Unit          string // Kg, Paquete, Caja
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	StockQuantity int64
	MinStockAlert int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BelowMinStock indica si el producto está en o por debajo del umbral de alerta.
func (p *Product) BelowMinStock() bool {
	return p.StockQuantity <= p.MinStockAlert
}
