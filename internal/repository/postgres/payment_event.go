package postgres

import (
	"context"
	"fmt"

	"github.com/avc/plantstore/internal/domain"
)

// PaymentEventRepository реализует domain.PaymentEventRepository
type PaymentEventRepository struct {
	db DBTX
}

// NewPaymentEventRepository создает новый PaymentEventRepository
func NewPaymentEventRepository(db DBTX) *PaymentEventRepository {
	return &PaymentEventRepository{db: db}
}

// RecordEvent сохраняет событие шлюза. false означает, что transaction id уже обработан.
func (r *PaymentEventRepository) RecordEvent(ctx context.Context, ev domain.PaymentEvent) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO payment_events (transaction_id, payment_id, status, received_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (transaction_id) DO NOTHING`,
		ev.TransactionID, ev.PaymentID, ev.Status, ev.ReceivedAt,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to record payment event %q: %w", ev.TransactionID, err)
	}
	return tag.RowsAffected() == 1, nil
}
