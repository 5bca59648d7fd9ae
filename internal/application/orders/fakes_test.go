package orders

import (
	"context"
	"errors"
	"sync"

	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var errInjectedStorage = errors.New("fallo de almacenamiento inyectado")

// memStore estado compartido de los fakes. El acceso se serializa vía el
// mutex del fakeTxRunner (equivale al bloqueo de fila del almacén real a
// granularidad gruesa).
type memStore struct {
	products        map[string]*entity.Product
	movements       []*entity.Movement
	orders          map[string]*entity.Order
	failOrderCreate bool
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]*entity.Product),
		orders:   make(map[string]*entity.Order),
	}
}

type memSnapshot struct {
	products  map[string]*entity.Product
	movements []*entity.Movement
	orders    map[string]*entity.Order
}

func (s *memStore) snapshot() *memSnapshot {
	snap := &memSnapshot{
		products:  make(map[string]*entity.Product, len(s.products)),
		movements: make([]*entity.Movement, len(s.movements)),
		orders:    make(map[string]*entity.Order, len(s.orders)),
	}
	for id, p := range s.products {
		cp := *p
		snap.products[id] = &cp
	}
	for i, m := range s.movements {
		cm := *m
		snap.movements[i] = &cm
	}
	for id, o := range s.orders {
		snap.orders[id] = copyOrder(o)
	}
	return snap
}

func (s *memStore) restore(snap *memSnapshot) {
	s.products = snap.products
	s.movements = snap.movements
	s.orders = snap.orders
}

func copyOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.Lines = make([]entity.OrderLine, len(o.Lines))
	copy(cp.Lines, o.Lines)
	return &cp
}

// fakeTxRunner serializa las "transacciones" con un mutex y restaura un
// snapshot del estado cuando fn falla, imitando el rollback real.
type fakeTxRunner struct {
	mu sync.Mutex
	s  *memStore
}

func newFakeTxRunner(s *memStore) *fakeTxRunner {
	return &fakeTxRunner{s: s}
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	orderRepo repository.OrderRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := r.s.snapshot()
	err := fn(
		&fakeProductRepo{s: r.s},
		&fakeMovementRepo{s: r.s},
		&fakeOrderRepo{s: r.s},
	)
	if err != nil {
		r.s.restore(snap)
	}
	return err
}

// fakeProductRepo con mu nil opera dentro de una tx (el runner ya tiene el
// lock); con mu no nil es el repo "de pool" y toma el lock por operación.
type fakeProductRepo struct {
	s  *memStore
	mu *sync.Mutex
}

func (r *fakeProductRepo) lock() func() {
	if r.mu == nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	defer r.lock()()
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	defer r.lock()()
	p, ok := r.s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	defer r.lock()()
	for _, p := range r.s.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	defer r.lock()()
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(id string, quantity int64) error {
	defer r.lock()()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = quantity
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	defer r.lock()()
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	defer r.lock()()
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.StockQuantity <= p.MinStockAlert {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	defer r.lock()()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

type fakeMovementRepo struct {
	s *memStore
}

func (r *fakeMovementRepo) Append(movement *entity.Movement) error {
	cp := *movement
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			cm := *m
			out = append(out, &cm)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByOrder(orderID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if m.ReferenceID == orderID {
			cm := *m
			out = append(out, &cm)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	s *memStore
}

func (r *fakeOrderRepo) Create(order *entity.Order) error {
	if r.s.failOrderCreate {
		return errInjectedStorage
	}
	r.s.orders[order.ID] = copyOrder(order)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyOrder(o), nil
}

func (r *fakeOrderRepo) ListByKind(kind string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.s.orders {
		if o.Kind == kind {
			out = append(out, copyOrder(o))
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(id, status string) error {
	o, ok := r.s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.customers[c.ID] = c
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (r *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	if _, ok := r.suppliers[s.ID]; !ok {
		return domain.ErrNotFound
	}
	r.suppliers[s.ID] = s
	return nil
}

// eventRecorder captura los eventos post-commit publicados.
type eventRecorder struct {
	mu        sync.Mutex
	committed []string
	lowStock  []string
	failAll   bool
}

func (r *eventRecorder) OrderCommitted(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return errors.New("cola caída")
	}
	r.committed = append(r.committed, order.ID)
	return nil
}

func (r *eventRecorder) LowStock(_ context.Context, product *entity.Product, _ int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return errors.New("cola caída")
	}
	r.lowStock = append(r.lowStock, product.ID)
	return nil
}
