package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/hibiken/asynq"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/notify"
	"github.com/tu-usuario/stock-ledger/pkg/config"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

// NotificationProcessor consume las tareas de notificación encoladas por la
// API tras el commit de una orden. En development no envía correos: loguea
// el contenido y marca la tarea como procesada.
type NotificationProcessor struct {
	cfg *config.Config
	log *logger.Logger
}

// NewNotificationProcessor construye el procesador.
func NewNotificationProcessor(cfg *config.Config, log *logger.Logger) *NotificationProcessor {
	return &NotificationProcessor{cfg: cfg, log: log}
}

// Register registra los handlers en el mux de asynq.
func (p *NotificationProcessor) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(notify.TaskOrderCommitted, p.HandleOrderCommitted)
	mux.HandleFunc(notify.TaskLowStock, p.HandleLowStock)
}

// HandleOrderCommitted procesa la notificación de orden confirmada.
func (p *NotificationProcessor) HandleOrderCommitted(ctx context.Context, t *asynq.Task) error {
	var payload notify.OrderCommittedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("payload de %s inválido: %w", notify.TaskOrderCommitted, err)
	}

	subject := fmt.Sprintf("Orden %s confirmada", payload.OrderID)
	body := fmt.Sprintf(
		"Orden %s (%s) confirmada.\nContraparte: %s\nLíneas: %d\nTotal: %s\n",
		payload.OrderID, payload.Kind, payload.CounterpartyID, payload.Lines, payload.GrandTotal,
	)
	return p.deliver(subject, body, map[string]string{"order_id": payload.OrderID})
}

// HandleLowStock procesa la alerta de stock bajo.
func (p *NotificationProcessor) HandleLowStock(ctx context.Context, t *asynq.Task) error {
	var payload notify.LowStockPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("payload de %s inválido: %w", notify.TaskLowStock, err)
	}

	subject := fmt.Sprintf("Stock bajo: %s (%s)", payload.ProductName, payload.ProductCode)
	body := fmt.Sprintf(
		"El producto %s (%s) quedó en %d unidades, umbral de alerta %d.\nReabastecer pronto.\n",
		payload.ProductName, payload.ProductCode, payload.Remaining, payload.MinStock,
	)
	return p.deliver(subject, body, map[string]string{"product_id": payload.ProductID})
}

// deliver envía el correo por SMTP, o solo loguea en development o si no hay
// SMTP configurado.
func (p *NotificationProcessor) deliver(subject, body string, fields map[string]string) error {
	if p.cfg.App.Env == "development" || p.cfg.SMTP.Host == "" {
		ev := p.log.Info().Str("subject", subject)
		for k, v := range fields {
			ev = ev.Str(k, v)
		}
		ev.Msg("notificación (modo desarrollo, sin envío)")
		return nil
	}

	to := p.cfg.SMTP.AlertsTo
	if to == "" {
		p.log.Warn().Str("subject", subject).Msg("SMTP_ALERTS_TO no configurado, notificación descartada")
		return nil
	}

	msg := strings.Join([]string{
		"From: " + p.cfg.SMTP.From,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if p.cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", p.cfg.SMTP.Username, p.cfg.SMTP.Password, p.cfg.SMTP.Host)
	}
	if err := smtp.SendMail(p.cfg.SMTP.Addr(), auth, p.cfg.SMTP.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("enviar correo: %w", err)
	}
	p.log.Info().Str("subject", subject).Str("to", to).Msg("notificación enviada")
	return nil
}
