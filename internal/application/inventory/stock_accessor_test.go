package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// stubProductRepo fake mínimo para el accessor: solo lectura con bloqueo
// simulado y escritura de stock.
type stubProductRepo struct {
	products map[string]*entity.Product
}

func (r *stubProductRepo) Create(*entity.Product) error                      { return nil }
func (r *stubProductRepo) Update(*entity.Product) error                      { return nil }
func (r *stubProductRepo) List(int, int) ([]*entity.Product, error)          { return nil, nil }
func (r *stubProductRepo) ListLowStock() ([]*entity.Product, error)          { return nil, nil }
func (r *stubProductRepo) Delete(string) error                               { return nil }
func (r *stubProductRepo) GetByCode(string) (*entity.Product, error)         { return nil, domain.ErrNotFound }

func (r *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *stubProductRepo) UpdateStock(id string, quantity int64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = quantity
	return nil
}

func newStubRepo(id string, stock int64) *stubProductRepo {
	return &stubProductRepo{products: map[string]*entity.Product{
		id: {ID: id, StockQuantity: stock},
	}}
}

func TestReserveOutbound_DescuentaYRetornaRestante(t *testing.T) {
	repo := newStubRepo("p1", 10)
	accessor := NewStockAccessor()

	remaining, err := accessor.ReserveOutbound(repo, "p1", 4)
	require.NoError(t, err)
	assert.EqualValues(t, 6, remaining)
	assert.EqualValues(t, 6, repo.products["p1"].StockQuantity)
}

func TestReserveOutbound_PermiteVaciarElStock(t *testing.T) {
	repo := newStubRepo("p1", 4)
	accessor := NewStockAccessor()

	remaining, err := accessor.ReserveOutbound(repo, "p1", 4)
	require.NoError(t, err)
	assert.EqualValues(t, 0, remaining)
}

func TestReserveOutbound_StockInsuficienteNoMuta(t *testing.T) {
	repo := newStubRepo("p1", 3)
	accessor := NewStockAccessor()

	_, err := accessor.ReserveOutbound(repo, "p1", 4)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.EqualValues(t, 4, insufficient.Requested)
	assert.EqualValues(t, 3, insufficient.Available)
	assert.Equal(t, -1, insufficient.LineIndex)

	assert.EqualValues(t, 3, repo.products["p1"].StockQuantity, "el stock queda intacto")
}

func TestReserveOutbound_ProductoInexistente(t *testing.T) {
	repo := newStubRepo("p1", 3)
	accessor := NewStockAccessor()

	_, err := accessor.ReserveOutbound(repo, "otro", 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceiveInbound_SumaSiempre(t *testing.T) {
	repo := newStubRepo("p1", 0)
	accessor := NewStockAccessor()

	remaining, err := accessor.ReceiveInbound(repo, "p1", 7)
	require.NoError(t, err)
	assert.EqualValues(t, 7, remaining)

	remaining, err = accessor.ReceiveInbound(repo, "p1", 3)
	require.NoError(t, err)
	assert.EqualValues(t, 10, remaining)
}
