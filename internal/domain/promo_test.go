package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func activePromo(now time.Time) *PromoCode {
	minOrder := dec(1000)
	return &PromoCode{
		ID:             1,
		Code:           "SAVE10",
		DiscountType:   DiscountPercentage,
		DiscountValue:  dec(10),
		MinOrderAmount: &minOrder,
		StartDate:      now.Add(-24 * time.Hour),
		EndDate:        now.Add(24 * time.Hour),
		IsActive:       true,
	}
}

func TestEvaluatePromo(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("SAVE10 on 2000 with delivery 300", func(t *testing.T) {
		res := EvaluatePromo(activePromo(now), "save10", dec(2000), now)
		assert.True(t, res.Valid)
		assert.True(t, dec(200).Equal(res.DiscountAmount), res.DiscountAmount.String())
		assert.Equal(t, "SAVE10", res.Code)
		assert.NoError(t, res.Err())

		items := []OrderItem{{ProductID: 1, UnitPrice: dec(1000), Quantity: 2}}
		total := Price(items, dec(300), &res)
		assert.True(t, dec(2100).Equal(total), total.String())
	})

	t.Run("Not found", func(t *testing.T) {
		res := EvaluatePromo(nil, "NOPE", dec(2000), now)
		assert.False(t, res.Valid)
		assert.Equal(t, PromoReasonNotFound, res.Reason)
		assert.ErrorIs(t, res.Err(), ErrPromoNotFound)
	})

	t.Run("Inactive", func(t *testing.T) {
		p := activePromo(now)
		p.IsActive = false
		res := EvaluatePromo(p, "SAVE10", dec(2000), now)
		assert.Equal(t, PromoReasonInactive, res.Reason)
	})

	t.Run("Out of window", func(t *testing.T) {
		p := activePromo(now)
		p.EndDate = now.Add(-time.Minute)
		res := EvaluatePromo(p, "SAVE10", dec(2000), now)
		assert.Equal(t, PromoReasonOutOfWindow, res.Reason)
		assert.ErrorIs(t, res.Err(), ErrPromoExpired)

		p = activePromo(now)
		p.StartDate = now.Add(time.Minute)
		res = EvaluatePromo(p, "SAVE10", dec(2000), now)
		assert.Equal(t, PromoReasonOutOfWindow, res.Reason)
	})

	t.Run("Below minimum", func(t *testing.T) {
		res := EvaluatePromo(activePromo(now), "SAVE10", dec(999), now)
		assert.Equal(t, PromoReasonBelowMinimum, res.Reason)
		assert.True(t, res.DiscountAmount.IsZero())
	})

	t.Run("Exhausted", func(t *testing.T) {
		p := activePromo(now)
		maxUses := 3
		p.MaxUses = &maxUses
		p.CurrentUses = 3
		res := EvaluatePromo(p, "SAVE10", dec(2000), now)
		assert.Equal(t, PromoReasonExhausted, res.Reason)
		assert.ErrorIs(t, res.Err(), ErrConflict)
	})

	t.Run("Inactive wins over out of window", func(t *testing.T) {
		p := activePromo(now)
		p.IsActive = false
		p.EndDate = now.Add(-time.Hour)
		res := EvaluatePromo(p, "SAVE10", dec(2000), now)
		assert.Equal(t, PromoReasonInactive, res.Reason)
	})

	t.Run("Fixed discount capped by subtotal", func(t *testing.T) {
		p := activePromo(now)
		p.DiscountType = DiscountFixed
		p.DiscountValue = dec(5000)
		p.MinOrderAmount = nil
		res := EvaluatePromo(p, "SAVE10", dec(1500), now)
		assert.True(t, res.Valid)
		assert.True(t, dec(1500).Equal(res.DiscountAmount))
	})

	t.Run("Percentage rounded to whole units", func(t *testing.T) {
		p := activePromo(now)
		p.DiscountValue = dec(15)
		p.MinOrderAmount = nil
		res := EvaluatePromo(p, "SAVE10", dec(333), now)
		// 333 * 15% = 49.95
		assert.True(t, dec(50).Equal(res.DiscountAmount), res.DiscountAmount.String())
	})

	t.Run("Evaluation does not consume uses", func(t *testing.T) {
		p := activePromo(now)
		EvaluatePromo(p, "SAVE10", dec(2000), now)
		assert.Equal(t, 0, p.CurrentUses)
	})
}

func TestPromoCode_Validate(t *testing.T) {
	now := time.Now()

	p := activePromo(now)
	assert.NoError(t, p.Validate())

	p = activePromo(now)
	p.DiscountValue = dec(101)
	assert.ErrorIs(t, p.Validate(), ErrValidation)

	p = activePromo(now)
	p.DiscountType = "bogo"
	assert.ErrorIs(t, p.Validate(), ErrValidation)

	p = activePromo(now)
	p.EndDate = p.StartDate.Add(-time.Second)
	assert.ErrorIs(t, p.Validate(), ErrValidation)
}
