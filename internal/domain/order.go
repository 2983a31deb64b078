package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod способ оплаты заказа или пополнения
type PaymentMethod string

const (
	PaymentMethodGateway      PaymentMethod = "ozon_pay"
	PaymentMethodBalance      PaymentMethod = "balance"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// ParsePaymentMethod разбирает способ оплаты
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case PaymentMethodGateway, PaymentMethodBalance, PaymentMethodBankTransfer:
		return m, nil
	}
	return "", ErrInvalidPaymentMethod
}

// PaymentStatus статус оплаты заказа
type PaymentStatus string

const (
	PaymentStatusPending      PaymentStatus = "pending"
	PaymentStatusVerification PaymentStatus = "verification"
	PaymentStatusPaid         PaymentStatus = "paid"
	PaymentStatusFailed       PaymentStatus = "failed"
)

// DeliveryType способ доставки
type DeliveryType string

const (
	DeliveryPickup  DeliveryType = "pickup"
	DeliveryCourier DeliveryType = "courier"
	DeliveryPost    DeliveryType = "post"
)

// DeliverySpeed скорость доставки
type DeliverySpeed string

const (
	DeliveryStandard DeliverySpeed = "standard"
	DeliveryExpress  DeliverySpeed = "express"
)

// OrderItem позиция заказа. Название и цена фиксируются на момент оформления.
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// StatusEntry запись истории статусов заказа
type StatusEntry struct {
	Status    OrderStatus `json:"status"`
	Comment   string      `json:"comment,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// Order представляет заказ покупателя
type Order struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	Items           []OrderItem     `json:"items"`
	SubtotalAmount  decimal.Decimal `json:"subtotal_amount"`
	DeliveryAmount  decimal.Decimal `json:"delivery_amount"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PromoCode       *string         `json:"promo_code,omitempty"`
	FullName        string          `json:"full_name"`
	Phone           string          `json:"phone"`
	Address         string          `json:"address"`
	DeliveryType    DeliveryType    `json:"delivery_type"`
	DeliverySpeed   DeliverySpeed   `json:"delivery_speed"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	Status          OrderStatus     `json:"order_status"`
	PaymentID       *string         `json:"payment_id,omitempty"`
	PaymentProofURL *string         `json:"payment_proof_url,omitempty"`
	TrackingNumber  *string         `json:"tracking_number,omitempty"`
	StockReduced    bool            `json:"stock_reduced"`
	PromoConsumed   bool            `json:"-"`
	History         []StatusEntry   `json:"status_history"`
	CreatedAt       time.Time       `json:"created_at"`
	LastStatusAt    time.Time       `json:"last_status_change_at"`
}

// OrderFilter параметры постраничного списка заказов для администратора
type OrderFilter struct {
	Page   int
	Limit  int
	Status OrderStatus
	// Search ищет по номеру заказа, имени, телефону и адресу
	Search string
}

// Offset смещение для выбранной страницы
func (f OrderFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// OrderPage страница списка заказов
type OrderPage struct {
	Orders []*Order `json:"orders"`
	Total  int      `json:"total"`
	Page   int      `json:"page"`
	Limit  int      `json:"limit"`
}

// StatusChange запрошенная смена статуса заказа
type StatusChange struct {
	Status  OrderStatus
	Comment string
	// PaymentStatus при необходимости меняется вместе со статусом заказа
	PaymentStatus  PaymentStatus
	TrackingNumber *string
	Actor          string
}

// OrderEdit изменения заказа администратором. nil поля не меняются.
type OrderEdit struct {
	FullName       *string
	Phone          *string
	Address        *string
	TrackingNumber *string
}

// IsEmpty сообщает, что изменений нет
func (e OrderEdit) IsEmpty() bool {
	return e.FullName == nil && e.Phone == nil && e.Address == nil && e.TrackingNumber == nil
}
