package entity

import "time"

// Dirección de un movimiento de inventario.
const (
	DirectionIN  = "IN"  // entrada
	DirectionOUT = "OUT" // salida
)

// Tipo de referencia que originó el movimiento.
const (
	ReferenceOrder      = "ORDER"      // commit de una orden
	ReferenceReversal   = "REVERSAL"   // reverso por cancelación de orden
	ReferenceAdjustment = "ADJUSTMENT" // ajuste manual de stock
)

// Movement es una entrada del libro de movimientos (ledger append-only).
// Una vez escrito nunca se actualiza ni se borra; su existencia implica que
// el delta de stock correspondiente quedó aplicado en la misma transacción.
type Movement struct {
	ID            string
	ProductID     string
	Direction     string // IN | OUT
	Quantity      int64  // siempre > 0; la dirección da el signo
	ReferenceKind string // ORDER | REVERSAL | ADJUSTMENT
	ReferenceID   string // ID de la orden (vacío en ajustes sin referencia)
	Note          string
	CreatedAt     time.Time
}
