package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/plantstore/internal/domain"
	"github.com/jackc/pgx/v5"
)

const topupColumns = `id, user_id, amount, payment_method, payment_id, payment_url, status, proof_url,
	admin_comment, created_at, updated_at`

// TopupRepository реализует domain.TopupRepository
type TopupRepository struct {
	db DBTX
}

// NewTopupRepository создает новый TopupRepository
func NewTopupRepository(db DBTX) *TopupRepository {
	return &TopupRepository{db: db}
}

func scanTopup(row pgx.Row) (*domain.BalanceTopup, error) {
	t := &domain.BalanceTopup{}
	err := row.Scan(&t.ID, &t.UserID, &t.Amount, &t.PaymentMethod, &t.PaymentID, &t.PaymentURL, &t.Status,
		&t.ProofURL, &t.AdminComment, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTopup создает заявку на пополнение в статусе pending
func (r *TopupRepository) CreateTopup(ctx context.Context, t *domain.BalanceTopup) (*domain.BalanceTopup, error) {
	created, err := scanTopup(r.db.QueryRow(ctx,
		`INSERT INTO balance_topups (user_id, amount, payment_method, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+topupColumns,
		t.UserID, t.Amount, t.PaymentMethod, domain.TopupStatusPending,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to create topup for user %d: %w", t.UserID, err)
	}
	return created, nil
}

func (r *TopupRepository) getOne(ctx context.Context, where string, arg any) (*domain.BalanceTopup, error) {
	t, err := scanTopup(r.db.QueryRow(ctx, `SELECT `+topupColumns+` FROM balance_topups WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTopupNotFound
		}
		return nil, fmt.Errorf("repository: failed to get topup %v: %w", arg, err)
	}
	return t, nil
}

// GetTopupByID получает пополнение по ID
func (r *TopupRepository) GetTopupByID(ctx context.Context, id int64) (*domain.BalanceTopup, error) {
	return r.getOne(ctx, `id = $1`, id)
}

// GetTopupByPaymentID получает пополнение по идентификатору платежа шлюза
func (r *TopupRepository) GetTopupByPaymentID(ctx context.Context, paymentID string) (*domain.BalanceTopup, error) {
	return r.getOne(ctx, `payment_id = $1`, paymentID)
}

func (r *TopupRepository) queryTopups(ctx context.Context, sql string, args ...any) ([]*domain.BalanceTopup, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list topups: %w", err)
	}
	defer rows.Close()

	var topups []*domain.BalanceTopup
	for rows.Next() {
		t, err := scanTopup(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan topup: %w", err)
		}
		topups = append(topups, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating topups: %w", err)
	}

	return topups, nil
}

// ListTopupsByUser возвращает пополнения пользователя, новые первыми
func (r *TopupRepository) ListTopupsByUser(ctx context.Context, userID int64) ([]*domain.BalanceTopup, error) {
	return r.queryTopups(ctx,
		`SELECT `+topupColumns+` FROM balance_topups WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
}

// ListTopups возвращает пополнения с указанным статусом, пустой статус означает все
func (r *TopupRepository) ListTopups(ctx context.Context, status domain.TopupStatus) ([]*domain.BalanceTopup, error) {
	if status == "" {
		return r.queryTopups(ctx, `SELECT `+topupColumns+` FROM balance_topups ORDER BY created_at DESC, id DESC`)
	}
	return r.queryTopups(ctx,
		`SELECT `+topupColumns+` FROM balance_topups WHERE status = $1 ORDER BY created_at DESC, id DESC`, status)
}

// SetTopupPayment сохраняет данные платежа шлюза
func (r *TopupRepository) SetTopupPayment(ctx context.Context, id int64, paymentID, paymentURL string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE balance_topups SET payment_id = $2, payment_url = $3, updated_at = NOW() WHERE id = $1`,
		id, paymentID, paymentURL,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to set payment of topup %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTopupNotFound
	}
	return nil
}

// SetTopupProof сохраняет ссылку на подтверждение перевода
func (r *TopupRepository) SetTopupProof(ctx context.Context, id int64, url string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE balance_topups SET proof_url = $2, updated_at = NOW() WHERE id = $1 AND status = $3`,
		id, url, domain.TopupStatusPending,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to set proof of topup %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTopupNotPending
	}
	return nil
}

// FinishTopup переводит пополнение из pending в итоговый статус одним условным запросом
func (r *TopupRepository) FinishTopup(ctx context.Context, id int64, status domain.TopupStatus, comment string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE balance_topups SET status = $2, admin_comment = $3, updated_at = NOW()
		 WHERE id = $1 AND status = $4`,
		id, status, comment, domain.TopupStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to finish topup %d: %w", id, err)
	}
	return tag.RowsAffected() == 1, nil
}
