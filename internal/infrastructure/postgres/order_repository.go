package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, kind, supplier_id, customer_id, status, date, subtotal, discount, grand_total, created_at, updated_at`

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera y todas las líneas de la orden. Invocar dentro
// de la transacción del protocolo de commit.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	supplierID := nullable(order.SupplierID)
	customerID := nullable(order.CustomerID)
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Kind, supplierID, customerID, order.Status, order.Date,
		order.Subtotal, order.Discount, order.GrandTotal, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}

	lineQuery := `
		INSERT INTO order_lines (id, order_id, position, product_id, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, line := range order.Lines {
		if _, err := r.q.Exec(context.Background(), lineQuery,
			line.ID, order.ID, i, line.ProductID, line.Quantity, line.UnitPrice, line.LineTotal,
		); err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden con sus líneas en orden de inserción.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := r.scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, err
	}
	lines, err := r.linesByOrder(id)
	if err != nil {
		return nil, err
	}
	order.Lines = lines
	return order, nil
}

// ListByKind lista órdenes de un tipo con sus líneas, más recientes primero.
func (r *OrderRepo) ListByKind(kind string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE kind = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		order, err := r.scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, order := range list {
		lines, err := r.linesByOrder(order.ID)
		if err != nil {
			return nil, err
		}
		order.Lines = lines
	}
	return list, nil
}

// UpdateStatus cambia el estado de la orden (único campo mutable tras el
// commit; las líneas y los totales son inmutables).
func (r *OrderRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) linesByOrder(orderID string) ([]entity.OrderLine, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price, line_total
		FROM order_lines WHERE order_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.OrderLine
	for rows.Next() {
		var line entity.OrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.ProductID, &line.Quantity, &line.UnitPrice, &line.LineTotal); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *OrderRepo) scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var supplierID, customerID *string
	err := row.Scan(
		&o.ID, &o.Kind, &supplierID, &customerID, &o.Status, &o.Date,
		&o.Subtotal, &o.Discount, &o.GrandTotal, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if supplierID != nil {
		o.SupplierID = *supplierID
	}
	if customerID != nil {
		o.CustomerID = *customerID
	}
	return &o, nil
}

func (r *OrderRepo) scanOrderRow(rows pgx.Rows) (*entity.Order, error) {
	var o entity.Order
	var supplierID, customerID *string
	err := rows.Scan(
		&o.ID, &o.Kind, &supplierID, &customerID, &o.Status, &o.Date,
		&o.Subtotal, &o.Discount, &o.GrandTotal, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan order: %w", err)
	}
	if supplierID != nil {
		o.SupplierID = *supplierID
	}
	if customerID != nil {
		o.CustomerID = *customerID
	}
	return &o, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
