package domain

import "strings"

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusFailed         OrderStatus = "failed"

	// legacyStatusCompleted встречается в старых данных и клиентах, хранится как paid
	legacyStatusCompleted = "completed"
)

// statusRank задает порядок движения заказа вперед, отмена и ошибка вне порядка
var statusRank = map[OrderStatus]int{
	OrderStatusPending:        0,
	OrderStatusPendingPayment: 1,
	OrderStatusPaid:           2,
	OrderStatusProcessing:     3,
	OrderStatusShipped:        4,
	OrderStatusDelivered:      5,
}

var statusLabels = map[OrderStatus]string{
	OrderStatusPending:        "Ожидает оплаты",
	OrderStatusPendingPayment: "Проверка оплаты",
	OrderStatusPaid:           "Оплачен",
	OrderStatusProcessing:     "Собирается",
	OrderStatusShipped:        "Отправлен",
	OrderStatusDelivered:      "Доставлен",
	OrderStatusCancelled:      "Отменен",
	OrderStatusFailed:         "Ошибка оплаты",
}

// ParseOrderStatus разбирает статус, приводя синоним completed к paid
func ParseOrderStatus(s string) (OrderStatus, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == legacyStatusCompleted {
		return OrderStatusPaid, nil
	}
	status := OrderStatus(v)
	if _, ok := statusLabels[status]; !ok {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Label возвращает человекочитаемое название статуса
func (s OrderStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// IsConfirmed сообщает, подтверждена ли оплата заказа в этом статусе.
// Первый переход в такой статус списывает остатки товаров.
func (s OrderStatus) IsConfirmed() bool {
	switch s {
	case OrderStatusPaid, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// IsTerminal сообщает, является ли статус конечным. Конечность мягкая:
// администратор может вывести заказ из такого статуса.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// IsForward сообщает, двигает ли переход заказ вперед по жизненному циклу
func IsForward(from, to OrderStatus) bool {
	if to == OrderStatusCancelled || to == OrderStatusFailed {
		return !from.IsTerminal() && from != OrderStatusFailed
	}
	fr, ok1 := statusRank[from]
	tr, ok2 := statusRank[to]
	return ok1 && ok2 && tr > fr
}

// TransitionPolicyMode определяет строгость проверки переходов
type TransitionPolicyMode string

const (
	PolicyPermissive TransitionPolicyMode = "permissive"
	PolicyStrict     TransitionPolicyMode = "strict"
)

var strictTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending: {
		OrderStatusPendingPayment: true, OrderStatusPaid: true,
		OrderStatusCancelled: true, OrderStatusFailed: true,
	},
	OrderStatusPendingPayment: {
		OrderStatusPaid: true, OrderStatusCancelled: true, OrderStatusFailed: true,
	},
	OrderStatusPaid: {
		OrderStatusProcessing: true, OrderStatusShipped: true, OrderStatusCancelled: true,
	},
	OrderStatusProcessing: {OrderStatusShipped: true, OrderStatusCancelled: true},
	OrderStatusShipped:    {OrderStatusDelivered: true},

	// Шлюз может подтвердить оплату после неудачной попытки
	OrderStatusFailed:    {OrderStatusPending: true, OrderStatusPaid: true, OrderStatusCancelled: true},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// TransitionCheck результат проверки перехода
type TransitionCheck struct {
	Allowed bool
	// Audit выставляется для переходов назад и выходов из конечных статусов
	Audit bool
}

// TransitionPolicy проверяет допустимость смены статуса
type TransitionPolicy struct {
	Mode TransitionPolicyMode
}

// ParseTransitionPolicy создает политику по названию режима, по умолчанию permissive
func ParseTransitionPolicy(mode string) TransitionPolicy {
	if TransitionPolicyMode(strings.ToLower(mode)) == PolicyStrict {
		return TransitionPolicy{Mode: PolicyStrict}
	}
	return TransitionPolicy{Mode: PolicyPermissive}
}

// Check проверяет переход from -> to
func (p TransitionPolicy) Check(from, to OrderStatus) TransitionCheck {
	audit := from != to && !IsForward(from, to)
	if p.Mode == PolicyStrict {
		return TransitionCheck{Allowed: from == to || strictTransitions[from][to], Audit: audit}
	}
	return TransitionCheck{Allowed: true, Audit: audit}
}
