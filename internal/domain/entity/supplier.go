package entity

import "time"

// Supplier representa un proveedor (contraparte de órdenes de compra).
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	TaxID         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
