package partners

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// UseCase registro de contrapartes: clientes (ventas) y proveedores (compras).
type UseCase struct {
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(customerRepo repository.CustomerRepository, supplierRepo repository.SupplierRepository) *UseCase {
	return &UseCase{customerRepo: customerRepo, supplierRepo: supplierRepo}
}

// CreateCustomer registra un cliente nuevo.
func (uc *UseCase) CreateCustomer(ctx context.Context, in dto.CustomerRequest) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		TaxID:     in.TaxID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateCustomer actualiza un cliente existente.
func (uc *UseCase) UpdateCustomer(ctx context.Context, id string, in dto.CustomerRequest) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	customer.Name = in.Name
	customer.Phone = in.Phone
	customer.Email = in.Email
	customer.Address = in.Address
	customer.TaxID = in.TaxID
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer obtiene un cliente por ID.
func (uc *UseCase) GetCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	return uc.customerRepo.GetByID(id)
}

// ListCustomers lista clientes con paginación.
func (uc *UseCase) ListCustomers(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.customerRepo.List(limit, offset)
}

// CreateSupplier registra un proveedor nuevo.
func (uc *UseCase) CreateSupplier(ctx context.Context, in dto.SupplierRequest) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		TaxID:         in.TaxID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// UpdateSupplier actualiza un proveedor existente.
func (uc *UseCase) UpdateSupplier(ctx context.Context, id string, in dto.SupplierRequest) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	supplier.Name = in.Name
	supplier.ContactPerson = in.ContactPerson
	supplier.Phone = in.Phone
	supplier.Email = in.Email
	supplier.Address = in.Address
	supplier.TaxID = in.TaxID
	supplier.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier obtiene un proveedor por ID.
func (uc *UseCase) GetSupplier(ctx context.Context, id string) (*entity.Supplier, error) {
	return uc.supplierRepo.GetByID(id)
}

// ListSuppliers lista proveedores con paginación.
func (uc *UseCase) ListSuppliers(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.supplierRepo.List(limit, offset)
}
