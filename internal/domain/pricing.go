package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Subtotal считает сумму позиций заказа
func Subtotal(items []OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// Price считает итоговую сумму заказа: позиции + доставка - скидка, не меньше нуля.
// promo может быть nil.
func Price(items []OrderItem, deliveryAmount decimal.Decimal, promo *PromoResult) decimal.Decimal {
	total := Subtotal(items).Add(deliveryAmount)
	if promo != nil && promo.Valid {
		total = total.Sub(promo.DiscountAmount)
	}
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// ParseDeliveryType разбирает способ доставки
func ParseDeliveryType(s string) (DeliveryType, error) {
	switch t := DeliveryType(strings.ToLower(strings.TrimSpace(s))); t {
	case DeliveryPickup, DeliveryCourier, DeliveryPost:
		return t, nil
	}
	return "", ErrInvalidDelivery
}

// ParseDeliverySpeed разбирает скорость доставки, пустое значение означает standard
func ParseDeliverySpeed(s string) (DeliverySpeed, error) {
	switch v := DeliverySpeed(strings.ToLower(strings.TrimSpace(s))); v {
	case "", DeliveryStandard:
		return DeliveryStandard, nil
	case DeliveryExpress:
		return DeliveryExpress, nil
	}
	return "", ErrInvalidDelivery
}

// DeliveryTariffs тарифы доставки
type DeliveryTariffs struct {
	CourierStandard decimal.Decimal
	CourierExpress  decimal.Decimal
	PostStandard    decimal.Decimal
	PostExpress     decimal.Decimal
	// FreeFrom сумма позиций, начиная с которой доставка бесплатна. Ноль отключает.
	FreeFrom decimal.Decimal
}

// DeliveryCost считает стоимость доставки для суммы позиций
func (t DeliveryTariffs) DeliveryCost(dt DeliveryType, speed DeliverySpeed, subtotal decimal.Decimal) (decimal.Decimal, error) {
	var cost decimal.Decimal
	switch dt {
	case DeliveryPickup:
		return decimal.Zero, nil
	case DeliveryCourier:
		cost = t.CourierStandard
		if speed == DeliveryExpress {
			cost = t.CourierExpress
		}
	case DeliveryPost:
		cost = t.PostStandard
		if speed == DeliveryExpress {
			cost = t.PostExpress
		}
	default:
		return decimal.Zero, ErrInvalidDelivery
	}

	if t.FreeFrom.IsPositive() && subtotal.GreaterThanOrEqual(t.FreeFrom) {
		return decimal.Zero, nil
	}
	return cost, nil
}
