package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/partners"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// PartnerHandler endpoints de contrapartes: clientes y proveedores.
type PartnerHandler struct {
	partners *partners.UseCase
}

// NewPartnerHandler construye el handler.
func NewPartnerHandler(uc *partners.UseCase) *PartnerHandler {
	return &PartnerHandler{partners: uc}
}

// CreateCustomer maneja POST /api/customers.
func (h *PartnerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	customer, err := h.partners.CreateCustomer(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCustomerResponse(customer))
}

// UpdateCustomer maneja PUT /api/customers/:id.
func (h *PartnerHandler) UpdateCustomer(c *fiber.Ctx) error {
	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	customer, err := h.partners.UpdateCustomer(c.Context(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCustomerResponse(customer))
}

// GetCustomer maneja GET /api/customers/:id.
func (h *PartnerHandler) GetCustomer(c *fiber.Ctx) error {
	customer, err := h.partners.GetCustomer(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCustomerResponse(customer))
}

// ListCustomers maneja GET /api/customers.
func (h *PartnerHandler) ListCustomers(c *fiber.Ctx) error {
	list, err := h.partners.ListCustomers(c.Context(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, customer := range list {
		out = append(out, toCustomerResponse(customer))
	}
	return c.JSON(fiber.Map{"data": out})
}

// CreateSupplier maneja POST /api/suppliers.
func (h *PartnerHandler) CreateSupplier(c *fiber.Ctx) error {
	var req dto.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	supplier, err := h.partners.CreateSupplier(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSupplierResponse(supplier))
}

// UpdateSupplier maneja PUT /api/suppliers/:id.
func (h *PartnerHandler) UpdateSupplier(c *fiber.Ctx) error {
	var req dto.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	supplier, err := h.partners.UpdateSupplier(c.Context(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSupplierResponse(supplier))
}

// GetSupplier maneja GET /api/suppliers/:id.
func (h *PartnerHandler) GetSupplier(c *fiber.Ctx) error {
	supplier, err := h.partners.GetSupplier(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSupplierResponse(supplier))
}

// ListSuppliers maneja GET /api/suppliers.
func (h *PartnerHandler) ListSuppliers(c *fiber.Ctx) error {
	list, err := h.partners.ListSuppliers(c.Context(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.SupplierResponse, 0, len(list))
	for _, supplier := range list {
		out = append(out, toSupplierResponse(supplier))
	}
	return c.JSON(fiber.Map{"data": out})
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
		TaxID:   c.TaxID,
	}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		TaxID:         s.TaxID,
	}
}
