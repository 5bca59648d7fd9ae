package dto

import "github.com/shopspring/decimal"

// AdjustmentRequest body para POST /api/inventory/adjustments.
type AdjustmentRequest struct {
	ProductID string          `json:"product_id"`
	Direction string          `json:"direction"` // IN | OUT
	Quantity  decimal.Decimal `json:"quantity"`
	Note      string          `json:"note,omitempty"`
}

// MovementResponse una entrada del ledger en la vista de auditoría.
type MovementResponse struct {
	ID            string `json:"id"`
	ProductID     string `json:"product_id"`
	Direction     string `json:"direction"`
	Quantity      int64  `json:"quantity"`
	ReferenceKind string `json:"reference_kind"`
	ReferenceID   string `json:"reference_id,omitempty"`
	Note          string `json:"note,omitempty"`
	CreatedAt     string `json:"created_at"`
}
