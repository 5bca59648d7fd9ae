package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

// Umbral de alerta por defecto cuando el caller no envía uno.
const defaultMinStockAlert = 10

// ProductUseCase CRUD del catálogo de productos más las vistas de stock bajo
// y de auditoría del ledger. El stock no se edita por acá: nace con el
// producto (movimiento inicial en el ledger) y después solo se mueve vía
// órdenes y ajustes.
type ProductUseCase struct {
	txRunner    inventory.TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	log         *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner inventory.TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo, movRepo: movRepo, log: log}
}

// CreateProduct valida y persiste un producto nuevo. Si trae stock inicial,
// el alta del producto y el movimiento ADJUSTMENT "stock inicial" se
// escriben en la misma transacción para que el ledger explique todo el stock.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock < 0 || in.MinStockAlert < 0 {
		return nil, domain.ErrInvalidInput
	}
	minAlert := in.MinStockAlert
	if minAlert == 0 {
		minAlert = defaultMinStockAlert
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Name:          in.Name,
		Category:      in.Category,
		Brand:         in.Brand,
		Unit:          in.Unit,
		CostPrice:     in.CostPrice,
		SellingPrice:  in.SellingPrice,
		StockQuantity: in.InitialStock,
		MinStockAlert: minAlert,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		_ repository.OrderRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if product.StockQuantity == 0 {
			return nil
		}
		return movRepo.Append(&entity.Movement{
			ID:            uuid.New().String(),
			ProductID:     product.ID,
			Direction:     entity.DirectionIN,
			Quantity:      product.StockQuantity,
			ReferenceKind: entity.ReferenceAdjustment,
			Note:          "stock inicial",
			CreatedAt:     now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("product_id", product.ID).Str("code", product.Code).Msg("producto creado")
	return toProductResponse(product), nil
}

// UpdateProduct actualiza los datos del producto. StockQuantity se ignora
// deliberadamente: se muta solo vía movimientos.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Code = in.Code
	product.Name = in.Name
	product.Category = in.Category
	product.Brand = in.Brand
	product.Unit = in.Unit
	product.CostPrice = in.CostPrice
	product.SellingPrice = in.SellingPrice
	if in.MinStockAlert > 0 {
		product.MinStockAlert = in.MinStockAlert
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetProduct obtiene un producto por ID.
func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListProducts lista el catálogo con paginación.
func (uc *ProductUseCase) ListProducts(ctx context.Context, limit, offset int) ([]*dto.ProductResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// ListLowStock lista productos en o por debajo de su umbral de alerta.
func (uc *ProductUseCase) ListLowStock(ctx context.Context) ([]*dto.ProductResponse, error) {
	list, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// DeleteProduct elimina un producto sin historia. Si tiene movimientos u
// órdenes asociadas el almacén lo rechaza y se reporta como conflicto: la
// historia del ledger nunca se pierde por borrar el producto.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(id); err != nil {
		return err
	}
	return uc.productRepo.Delete(id)
}

// ListMovements vista de auditoría: entradas del ledger de un producto,
// más recientes primero.
func (uc *ProductUseCase) ListMovements(ctx context.Context, productID string, limit, offset int) ([]*dto.MovementResponse, error) {
	if _, err := uc.productRepo.GetByID(productID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	movements, err := uc.movRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, &dto.MovementResponse{
			ID:            m.ID,
			ProductID:     m.ProductID,
			Direction:     m.Direction,
			Quantity:      m.Quantity,
			ReferenceKind: m.ReferenceKind,
			ReferenceID:   m.ReferenceID,
			Note:          m.Note,
			CreatedAt:     m.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Category:      p.Category,
		Brand:         p.Brand,
		Unit:          p.Unit,
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		StockQuantity: p.StockQuantity,
		MinStockAlert: p.MinStockAlert,
	}
}
