package service

import (
	"fmt"
	"strings"

	"github.com/avc/plantstore/internal/domain"
	"github.com/shopspring/decimal"
)

func formatMoney(d decimal.Decimal) string {
	return d.Round(2).String() + " ₽"
}

func orderCreatedMessage(o *domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Заказ №%d оформлен на сумму %s.\n", o.ID, formatMoney(o.TotalAmount))
	switch o.PaymentMethod {
	case domain.PaymentMethodBankTransfer:
		b.WriteString("Ожидаем подтверждение банковского перевода.")
	case domain.PaymentMethodGateway:
		b.WriteString("Ожидаем оплату через Ozon Pay.")
	default:
		fmt.Fprintf(&b, "Статус: %s.", o.Status.Label())
	}
	return b.String()
}

func statusChangedMessage(o *domain.Order) string {
	msg := fmt.Sprintf("Статус заказа №%d: %s.", o.ID, o.Status.Label())
	if o.TrackingNumber != nil && *o.TrackingNumber != "" {
		msg += "\nТрек-номер: " + *o.TrackingNumber
	}
	return msg
}

func topupCompletedMessage(t *domain.BalanceTopup) string {
	return fmt.Sprintf("Баланс пополнен на %s.", formatMoney(t.Amount))
}

func newProductMessage(p *domain.Product) string {
	msg := fmt.Sprintf("Новинка в магазине: %s за %s.", p.Name, formatMoney(p.Price))
	if p.Description != "" {
		msg += "\n" + p.Description
	}
	return msg
}
