package payments

import (
	"context"
	"strings"
)

const (
	stubPaymentPrefix = "demo_payment_"
	stubSecretPrefix  = "demo_secret_"
)

// StubClient выдает демонстрационные платежные намерения без обращения к шлюзу
type StubClient struct {
	log Logger
}

// NewStubClient создает заглушку платежного клиента
func NewStubClient(log Logger) *StubClient {
	return &StubClient{log: log}
}

// CreateIntent возвращает детерминированные ссылки на основе ID бронирования.
// Ссылка на платеж содержит полный ID, чтобы оставаться уникальной.
func (c *StubClient) CreateIntent(_ context.Context, reservationID string, amount float64) (*Intent, error) {
	compact := strings.ReplaceAll(reservationID, "-", "")
	short := compact
	if len(short) > 8 {
		short = short[:8]
	}

	intent := &Intent{
		ID:           stubPaymentPrefix + compact,
		ClientSecret: stubSecretPrefix + short,
		Amount:       amount,
	}

	c.log.Info("Payments stub: intent %s created for reservation %s, amount=%.2f", intent.ID, reservationID, amount)
	return intent, nil
}
