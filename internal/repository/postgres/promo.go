package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/plantstore/internal/domain"
	"github.com/jackc/pgx/v5"
)

const promoColumns = `id, code, discount_type, discount_value, min_order_amount, start_date, end_date,
	max_uses, current_uses, is_active, created_at`

// PromoRepository реализует domain.PromoRepository
type PromoRepository struct {
	db DBTX
}

// NewPromoRepository создает новый PromoRepository
func NewPromoRepository(db DBTX) *PromoRepository {
	return &PromoRepository{db: db}
}

func scanPromo(row pgx.Row) (*domain.PromoCode, error) {
	p := &domain.PromoCode{}
	err := row.Scan(&p.ID, &p.Code, &p.DiscountType, &p.DiscountValue, &p.MinOrderAmount, &p.StartDate,
		&p.EndDate, &p.MaxUses, &p.CurrentUses, &p.IsActive, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreatePromo создает промокод
func (r *PromoRepository) CreatePromo(ctx context.Context, p *domain.PromoCode) (*domain.PromoCode, error) {
	created, err := scanPromo(r.db.QueryRow(ctx,
		`INSERT INTO promo_codes (code, discount_type, discount_value, min_order_amount, start_date, end_date,
			max_uses, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+promoColumns,
		p.Code, p.DiscountType, p.DiscountValue, p.MinOrderAmount, p.StartDate, p.EndDate, p.MaxUses, p.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err, "") {
			return nil, domain.ErrPromoExists
		}
		return nil, fmt.Errorf("repository: failed to create promo code %q: %w", p.Code, err)
	}
	return created, nil
}

func (r *PromoRepository) getOne(ctx context.Context, where string, arg any) (*domain.PromoCode, error) {
	p, err := scanPromo(r.db.QueryRow(ctx, `SELECT `+promoColumns+` FROM promo_codes WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPromoNotFound
		}
		return nil, fmt.Errorf("repository: failed to get promo code %v: %w", arg, err)
	}
	return p, nil
}

// GetPromoByID получает промокод по ID
func (r *PromoRepository) GetPromoByID(ctx context.Context, id int64) (*domain.PromoCode, error) {
	return r.getOne(ctx, `id = $1`, id)
}

// GetPromoByCode получает промокод по коду без учета регистра
func (r *PromoRepository) GetPromoByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	return r.getOne(ctx, `lower(code) = lower($1)`, code)
}

// ListPromos возвращает все промокоды, включая деактивированные
func (r *PromoRepository) ListPromos(ctx context.Context) ([]*domain.PromoCode, error) {
	rows, err := r.db.Query(ctx, `SELECT `+promoColumns+` FROM promo_codes ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list promo codes: %w", err)
	}
	defer rows.Close()

	var promos []*domain.PromoCode
	for rows.Next() {
		p, err := scanPromo(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan promo code: %w", err)
		}
		promos = append(promos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating promo codes: %w", err)
	}

	return promos, nil
}

// UpdatePromo обновляет определение промокода. Счетчик использований не меняется.
func (r *PromoRepository) UpdatePromo(ctx context.Context, p *domain.PromoCode) (*domain.PromoCode, error) {
	updated, err := scanPromo(r.db.QueryRow(ctx,
		`UPDATE promo_codes SET code = $2, discount_type = $3, discount_value = $4, min_order_amount = $5,
			start_date = $6, end_date = $7, max_uses = $8, is_active = $9
		 WHERE id = $1
		 RETURNING `+promoColumns,
		p.ID, p.Code, p.DiscountType, p.DiscountValue, p.MinOrderAmount, p.StartDate, p.EndDate, p.MaxUses, p.IsActive,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPromoNotFound
		}
		if isUniqueViolation(err, "") {
			return nil, domain.ErrPromoExists
		}
		if isCheckViolation(err) {
			return nil, domain.Validation("max uses is below current uses")
		}
		return nil, fmt.Errorf("repository: failed to update promo code %d: %w", p.ID, err)
	}
	return updated, nil
}

// DeactivatePromo мягко удаляет промокод
func (r *PromoRepository) DeactivatePromo(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE promo_codes SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to deactivate promo code %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPromoNotFound
	}
	return nil
}

// IncrementUses увеличивает счетчик использований, если лимит не исчерпан
func (r *PromoRepository) IncrementUses(ctx context.Context, code string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE promo_codes SET current_uses = current_uses + 1
		 WHERE lower(code) = lower($1) AND (max_uses IS NULL OR current_uses < max_uses)`,
		code,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to increment uses of promo code %q: %w", code, err)
	}
	return tag.RowsAffected() == 1, nil
}
