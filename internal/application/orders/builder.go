package orders

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// BuildLines convierte las líneas crudas del request en OrderLines validadas
// y con precio, y acumula el subtotal.
//
// Reglas de precio: en ventas el precio unitario sale siempre de
// Product.SellingPrice y un precio enviado por el caller se rechaza (evita
// manipulación de precios); en compras el precio es el negociado con el
// proveedor, lo envía el caller y debe ser mayor que cero.
//
// products debe contener todos los productos referenciados; el caller los
// resuelve antes (un producto desconocido es ErrNotFound, no una línea
// inválida).
func BuildLines(kind string, products map[string]*entity.Product, lines []dto.OrderLineRequest) ([]entity.OrderLine, decimal.Decimal, error) {
	if len(lines) == 0 {
		return nil, decimal.Zero, domain.ErrEmptyOrder
	}

	built := make([]entity.OrderLine, 0, len(lines))
	subtotal := decimal.Zero
	for i, in := range lines {
		if in.ProductID == "" {
			return nil, decimal.Zero, &domain.InvalidLineError{Index: i, Reason: "product_id requerido"}
		}
		product, ok := products[in.ProductID]
		if !ok {
			return nil, decimal.Zero, domain.ErrNotFound
		}
		if !in.Quantity.IsInteger() {
			return nil, decimal.Zero, &domain.InvalidLineError{Index: i, Reason: "la cantidad debe ser un número entero"}
		}
		if !in.Quantity.IsPositive() {
			return nil, decimal.Zero, &domain.InvalidLineError{Index: i, Reason: "la cantidad debe ser mayor que cero"}
		}

		var unitPrice decimal.Decimal
		switch kind {
		case entity.OrderKindSale:
			if in.UnitPrice != nil {
				return nil, decimal.Zero, &domain.InvalidLineError{Index: i, Reason: "en ventas el precio lo fija el producto"}
			}
			unitPrice = product.SellingPrice
		case entity.OrderKindPurchase:
			if in.UnitPrice == nil || !in.UnitPrice.IsPositive() {
				return nil, decimal.Zero, &domain.InvalidLineError{Index: i, Reason: "en compras el precio unitario es obligatorio y mayor que cero"}
			}
			unitPrice = *in.UnitPrice
		default:
			return nil, decimal.Zero, domain.ErrInvalidInput
		}

		quantity := in.Quantity.IntPart()
		lineTotal := decimal.NewFromInt(quantity).Mul(unitPrice)
		built = append(built, entity.OrderLine{
			ID:        uuid.New().String(),
			ProductID: in.ProductID,
			Quantity:  quantity,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}
	return built, subtotal, nil
}
