package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/plantstore/internal/domain"
	"github.com/shopspring/decimal"
)

// PromoService реализует domain.PromoService
type PromoService struct {
	store domain.Store
	now   func() time.Time
}

// NewPromoService создает новый PromoService
func NewPromoService(store domain.Store) *PromoService {
	return &PromoService{
		store: store,
		now:   time.Now,
	}
}

// Evaluate проверяет промокод для суммы позиций. Использование не учитывается.
func (s *PromoService) Evaluate(ctx context.Context, code string, subtotal decimal.Decimal) (domain.PromoResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.PromoResult{}, domain.Validation("promo code is required")
	}
	if subtotal.IsNegative() {
		return domain.PromoResult{}, domain.ErrInvalidAmount
	}

	promo, err := s.store.Promos().GetPromoByCode(ctx, code)
	if err != nil && !errors.Is(err, domain.ErrPromoNotFound) {
		return domain.PromoResult{}, fmt.Errorf("promo service: failed to get promo code %q: %w", code, err)
	}

	return domain.EvaluatePromo(promo, code, subtotal, s.now()), nil
}

// CreatePromo создает промокод
func (s *PromoService) CreatePromo(ctx context.Context, p *domain.PromoCode) (*domain.PromoCode, error) {
	p.Code = strings.TrimSpace(p.Code)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.Promos().CreatePromo(ctx, p)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("promo service: failed to create promo code %q: %w", p.Code, err)
	}

	return created, nil
}

// UpdatePromo изменяет определение промокода. Счетчик использований не меняется.
func (s *PromoService) UpdatePromo(ctx context.Context, p *domain.PromoCode) (*domain.PromoCode, error) {
	p.Code = strings.TrimSpace(p.Code)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.store.Promos().UpdatePromo(ctx, p)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("promo service: failed to update promo code %d: %w", p.ID, err)
	}

	return updated, nil
}

// DeactivatePromo мягко удаляет промокод
func (s *PromoService) DeactivatePromo(ctx context.Context, id int64) error {
	if err := s.store.Promos().DeactivatePromo(ctx, id); err != nil {
		if isDomainError(err) {
			return err
		}
		return fmt.Errorf("promo service: failed to deactivate promo code %d: %w", id, err)
	}
	return nil
}

// ListPromos возвращает все промокоды
func (s *PromoService) ListPromos(ctx context.Context) ([]*domain.PromoCode, error) {
	promos, err := s.store.Promos().ListPromos(ctx)
	if err != nil {
		return nil, fmt.Errorf("promo service: failed to list promo codes: %w", err)
	}
	return promos, nil
}

// GetPromo возвращает промокод по идентификатору
func (s *PromoService) GetPromo(ctx context.Context, id int64) (*domain.PromoCode, error) {
	promo, err := s.store.Promos().GetPromoByID(ctx, id)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("promo service: failed to get promo code %d: %w", id, err)
	}
	return promo, nil
}
