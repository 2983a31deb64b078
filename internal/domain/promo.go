package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType тип скидки промокода
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// PromoCode промокод. Удаление мягкое: IsActive = false.
type PromoCode struct {
	ID             int64            `json:"id"`
	Code           string           `json:"code"`
	DiscountType   DiscountType     `json:"discount_type"`
	DiscountValue  decimal.Decimal  `json:"discount_value"`
	MinOrderAmount *decimal.Decimal `json:"min_order_amount,omitempty"`
	StartDate      time.Time        `json:"start_date"`
	EndDate        time.Time        `json:"end_date"`
	MaxUses        *int             `json:"max_uses,omitempty"`
	CurrentUses    int              `json:"current_uses"`
	IsActive       bool             `json:"is_active"`
	CreatedAt      time.Time        `json:"created_at"`
}

// Validate проверяет корректность определения промокода
func (p *PromoCode) Validate() error {
	if p.Code == "" {
		return Validation("promo code is required")
	}
	switch p.DiscountType {
	case DiscountPercentage:
		if !p.DiscountValue.IsPositive() || p.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
			return Validation("percentage discount must be in (0, 100]")
		}
	case DiscountFixed:
		if !p.DiscountValue.IsPositive() {
			return Validation("fixed discount must be positive")
		}
	default:
		return Validation("unknown discount type")
	}
	if p.EndDate.Before(p.StartDate) {
		return Validation("end date is before start date")
	}
	if p.MaxUses != nil && *p.MaxUses < 0 {
		return Validation("max uses must not be negative")
	}
	return nil
}

// PromoReason причина отказа в применении промокода
type PromoReason string

const (
	PromoReasonNotFound     PromoReason = "not_found"
	PromoReasonInactive     PromoReason = "inactive"
	PromoReasonOutOfWindow  PromoReason = "out_of_window"
	PromoReasonBelowMinimum PromoReason = "below_minimum"
	PromoReasonExhausted    PromoReason = "exhausted"
)

// PromoResult результат проверки промокода
type PromoResult struct {
	Code           string          `json:"code"`
	Valid          bool            `json:"valid"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Reason         PromoReason     `json:"reason,omitempty"`
}

// Err возвращает ошибку, соответствующую причине отказа, или nil
func (r PromoResult) Err() error {
	if r.Valid {
		return nil
	}
	switch r.Reason {
	case PromoReasonNotFound:
		return ErrPromoNotFound
	case PromoReasonInactive:
		return ErrPromoInactive
	case PromoReasonOutOfWindow:
		return ErrPromoExpired
	case PromoReasonBelowMinimum:
		return ErrPromoBelowMinimum
	case PromoReasonExhausted:
		return ErrPromoExhausted
	}
	return ErrPromoNotFound
}

var hundred = decimal.NewFromInt(100)

// EvaluatePromo проверяет промокод для суммы заказа и считает скидку.
// promo == nil означает, что код не найден. Использование не учитывается:
// счетчик увеличивается только при подтверждении заказа.
func EvaluatePromo(promo *PromoCode, code string, subtotal decimal.Decimal, now time.Time) PromoResult {
	res := PromoResult{Code: code, DiscountAmount: decimal.Zero}

	switch {
	case promo == nil:
		res.Reason = PromoReasonNotFound
	case !promo.IsActive:
		res.Reason = PromoReasonInactive
	case now.Before(promo.StartDate) || now.After(promo.EndDate):
		res.Reason = PromoReasonOutOfWindow
	case promo.MinOrderAmount != nil && subtotal.LessThan(*promo.MinOrderAmount):
		res.Reason = PromoReasonBelowMinimum
	case promo.MaxUses != nil && promo.CurrentUses >= *promo.MaxUses:
		res.Reason = PromoReasonExhausted
	}
	if res.Reason != "" {
		return res
	}

	res.Code = promo.Code
	res.Valid = true

	var discount decimal.Decimal
	if promo.DiscountType == DiscountPercentage {
		discount = subtotal.Mul(promo.DiscountValue).Div(hundred).Round(0)
	} else {
		discount = promo.DiscountValue
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	res.DiscountAmount = discount

	return res
}
