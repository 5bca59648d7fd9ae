package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/tu-usuario/stock-ledger/internal/application/orders"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// Tipos de tarea encolados tras el commit de una orden.
const (
	TaskOrderCommitted = "order:committed"
	TaskLowStock       = "stock:low"
)

// OrderCommittedPayload datos de la tarea de orden confirmada.
type OrderCommittedPayload struct {
	OrderID        string `json:"order_id"`
	Kind           string `json:"kind"`
	CounterpartyID string `json:"counterparty_id"`
	GrandTotal     string `json:"grand_total"`
	Lines          int    `json:"lines"`
}

// LowStockPayload datos de la alerta de stock bajo.
type LowStockPayload struct {
	ProductID   string `json:"product_id"`
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	Remaining   int64  `json:"remaining"`
	MinStock    int64  `json:"min_stock"`
}

var _ orders.EventPublisher = (*Enqueuer)(nil)

// Enqueuer publica los eventos post-commit en la cola Redis (asynq). El
// worker los consume fuera de la transacción y del request HTTP.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer construye el publicador sobre un cliente asynq.
func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

// OrderCommitted encola la notificación de orden confirmada.
func (e *Enqueuer) OrderCommitted(ctx context.Context, order *entity.Order) error {
	payload, err := json.Marshal(OrderCommittedPayload{
		OrderID:        order.ID,
		Kind:           order.Kind,
		CounterpartyID: order.CounterpartyID(),
		GrandTotal:     order.GrandTotal.String(),
		Lines:          len(order.Lines),
	})
	if err != nil {
		return fmt.Errorf("serializar payload de orden: %w", err)
	}
	task := asynq.NewTask(TaskOrderCommitted, payload,
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("encolar %s: %w", TaskOrderCommitted, err)
	}
	return nil
}

// LowStock encola la alerta de stock bajo para un producto.
func (e *Enqueuer) LowStock(ctx context.Context, product *entity.Product, remaining int64) error {
	payload, err := json.Marshal(LowStockPayload{
		ProductID:   product.ID,
		ProductCode: product.Code,
		ProductName: product.Name,
		Remaining:   remaining,
		MinStock:    product.MinStockAlert,
	})
	if err != nil {
		return fmt.Errorf("serializar payload de stock bajo: %w", err)
	}
	task := asynq.NewTask(TaskLowStock, payload,
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("encolar %s: %w", TaskLowStock, err)
	}
	return nil
}
