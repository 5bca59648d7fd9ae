package dto

import "github.com/shopspring/decimal"

// ProductRequest body para crear o actualizar un producto.
// InitialStock solo se respeta en la creación; después el stock se mueve
// únicamente vía órdenes y ajustes.
type ProductRequest struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Category      string          `json:"category,omitempty"`
	Brand         string          `json:"brand,omitempty"`
	Unit          string          `json:"unit,omitempty"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	InitialStock  int64           `json:"initial_stock,omitempty"`
	MinStockAlert int64           `json:"min_stock_alert,omitempty"`
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Category      string          `json:"category,omitempty"`
	Brand         string          `json:"brand,omitempty"`
	Unit          string          `json:"unit,omitempty"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	StockQuantity int64           `json:"stock_quantity"`
	MinStockAlert int64           `json:"min_stock_alert"`
}
