package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// UserRepository определяет методы работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByPhone(ctx context.Context, phone string) (*User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*User, int, error)
	ListUsersWithChat(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, id int64, upd UserUpdate) (*User, error)
	SetTelegramChat(ctx context.Context, id, chatID int64) error
	// DebitBalance списывает сумму, если баланса достаточно, иначе ErrInsufficientBalance
	DebitBalance(ctx context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error)
	CreditBalance(ctx context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error)
}

// ProductRepository определяет методы работы с каталогом
type ProductRepository interface {
	CreateProduct(ctx context.Context, p *Product) (*Product, error)
	GetProductByID(ctx context.Context, id int64) (*Product, error)
	ListProducts(ctx context.Context, f ProductFilter) ([]*Product, int, error)
	UpdateProduct(ctx context.Context, p *Product) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	// DecrementStock уменьшает остаток, не опуская его ниже нуля
	DecrementStock(ctx context.Context, id int64, qty int) error
}

// OrderRepository определяет методы работы с заказами
type OrderRepository interface {
	// CreateOrder сохраняет заказ, его позиции и первую запись истории
	CreateOrder(ctx context.Context, order *Order) (*Order, error)
	GetOrderByID(ctx context.Context, id int64) (*Order, error)
	// LockOrder читает заказ с позициями под блокировкой строки до конца транзакции
	LockOrder(ctx context.Context, id int64) (*Order, error)
	GetOrderByPaymentID(ctx context.Context, paymentID string) (*Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]*Order, error)
	ListOrders(ctx context.Context, f OrderFilter) ([]*Order, int, error)
	UpdateStatus(ctx context.Context, id int64, status OrderStatus, payment PaymentStatus, at time.Time) error
	AppendHistory(ctx context.Context, id int64, entry StatusEntry) error
	// MarkStockReduced выставляет флаг списания остатков, true только для первого вызова
	MarkStockReduced(ctx context.Context, id int64) (bool, error)
	// MarkPromoConsumed выставляет флаг учета промокода, true только для первого вызова
	MarkPromoConsumed(ctx context.Context, id int64) (bool, error)
	SetPaymentID(ctx context.Context, id int64, paymentID string) error
	SetPaymentProof(ctx context.Context, id int64, url string) error
	UpdateOrderDetails(ctx context.Context, id int64, edit OrderEdit) error
	DeleteOrder(ctx context.Context, id int64) error
	ListStaleOrders(ctx context.Context, status OrderStatus, before time.Time) ([]int64, error)
}

// PromoRepository определяет методы работы с промокодами
type PromoRepository interface {
	CreatePromo(ctx context.Context, p *PromoCode) (*PromoCode, error)
	GetPromoByID(ctx context.Context, id int64) (*PromoCode, error)
	// GetPromoByCode ищет промокод без учета регистра
	GetPromoByCode(ctx context.Context, code string) (*PromoCode, error)
	ListPromos(ctx context.Context) ([]*PromoCode, error)
	UpdatePromo(ctx context.Context, p *PromoCode) (*PromoCode, error)
	DeactivatePromo(ctx context.Context, id int64) error
	// IncrementUses увеличивает счетчик, если лимит не исчерпан. false означает исчерпание.
	IncrementUses(ctx context.Context, code string) (bool, error)
}

// RegistrationRepository определяет методы работы с незавершенными регистрациями
type RegistrationRepository interface {
	// UpsertRegistration создает регистрацию или заменяет токен существующей
	UpsertRegistration(ctx context.Context, reg *PendingRegistration) error
	GetRegistration(ctx context.Context, phone string) (*PendingRegistration, error)
	GetRegistrationByToken(ctx context.Context, token string) (*PendingRegistration, error)
	GetRegistrationByChat(ctx context.Context, chatID int64) (*PendingRegistration, error)
	AttachChat(ctx context.Context, token string, chatID int64) (*PendingRegistration, error)
	// MarkVerified выставляет verified при совпадении токена, true только для первого вызова
	MarkVerified(ctx context.Context, phone, token string) (bool, error)
	DeleteRegistration(ctx context.Context, phone string) error
	DeleteRegistrationsBefore(ctx context.Context, before time.Time) (int64, error)
}

// TopupRepository определяет методы работы с пополнениями баланса
type TopupRepository interface {
	CreateTopup(ctx context.Context, t *BalanceTopup) (*BalanceTopup, error)
	GetTopupByID(ctx context.Context, id int64) (*BalanceTopup, error)
	GetTopupByPaymentID(ctx context.Context, paymentID string) (*BalanceTopup, error)
	ListTopupsByUser(ctx context.Context, userID int64) ([]*BalanceTopup, error)
	ListTopups(ctx context.Context, status TopupStatus) ([]*BalanceTopup, error)
	SetTopupPayment(ctx context.Context, id int64, paymentID, paymentURL string) error
	SetTopupProof(ctx context.Context, id int64, url string) error
	// FinishTopup переводит пополнение из pending в итоговый статус, true только для первого вызова
	FinishTopup(ctx context.Context, id int64, status TopupStatus, comment string) (bool, error)
}

// PaymentEventRepository хранит обработанные события платежного шлюза
type PaymentEventRepository interface {
	// RecordEvent сохраняет событие, false означает повтор transaction id
	RecordEvent(ctx context.Context, ev PaymentEvent) (bool, error)
}

// ReviewRepository определяет методы работы с отзывами
type ReviewRepository interface {
	CreateReview(ctx context.Context, r *Review) (*Review, error)
	ListReviewsByProduct(ctx context.Context, productID int64) ([]*Review, error)
	ListReviews(ctx context.Context, limit, offset int) ([]*Review, int, error)
	DeleteReview(ctx context.Context, id int64) error
}

// Store объединяет репозитории над одним соединением или транзакцией
type Store interface {
	Users() UserRepository
	Products() ProductRepository
	Orders() OrderRepository
	Promos() PromoRepository
	Registrations() RegistrationRepository
	Topups() TopupRepository
	PaymentEvents() PaymentEventRepository
	Reviews() ReviewRepository
	// WithinTx выполняет fn в транзакции. Ошибка fn откатывает транзакцию.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

// PaymentRequest запрос на создание платежа во внешнем шлюзе
type PaymentRequest struct {
	Reference   string
	Amount      decimal.Decimal
	Description string
}

// PaymentSession созданный во внешнем шлюзе платеж
type PaymentSession struct {
	PaymentID   string
	RedirectURL string
}

// PaymentGateway внешний платежный шлюз
type PaymentGateway interface {
	CreatePayment(ctx context.Context, req PaymentRequest) (*PaymentSession, error)
}

// MessageSender отправляет сообщения в мессенджер по идентификатору чата
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// OrderEvent событие смены статуса заказа
type OrderEvent struct {
	ID        string      `json:"id"`
	OrderID   int64       `json:"order_id"`
	UserID    int64       `json:"user_id"`
	From      OrderStatus `json:"from"`
	To        OrderStatus `json:"to"`
	Total     string      `json:"total"`
	Actor     string      `json:"actor,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// EventPublisher публикует события заказов
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, ev OrderEvent) error
}

// Deduplicator быстрая проверка повторных ключей до обращения к базе
type Deduplicator interface {
	Seen(ctx context.Context, key string) (bool, error)
	Remember(ctx context.Context, key string) error
}

// RateLimiter ограничивает частоту операций по ключу
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
