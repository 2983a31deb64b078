package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// RegisterRequest данные для начала регистрации
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// RegistrationTicket выдается после начала регистрации для перехода в бот
type RegistrationTicket struct {
	Phone   string `json:"phone"`
	Token   string `json:"token"`
	BotLink string `json:"bot_link,omitempty"`
}

// NewUser данные пользователя, создаваемого администратором
type NewUser struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	IsAdmin  bool    `json:"is_admin"`
}

// AuthService определяет методы аутентификации и регистрации
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegistrationTicket, error)
	CompleteRegistration(ctx context.Context, phone, token string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID int64) (*User, error)
}

// ContactResult итог обработки контакта, присланного в бот
type ContactResult string

const (
	ContactRegistrationConfirmed ContactResult = "registration_confirmed"
	ContactChatLinked            ContactResult = "chat_linked"
	ContactMismatch              ContactResult = "mismatch"
	ContactUnknown               ContactResult = "unknown"
)

// VerificationService хранилище токенов подтверждения телефона
type VerificationService interface {
	RequestVerification(ctx context.Context, phone string, payload RegistrationPayload) (string, error)
	Confirm(ctx context.Context, phone, token string) (bool, error)
	Promote(ctx context.Context, phone string) (*User, error)
	Pending(ctx context.Context, phone string) (*PendingRegistration, error)
	AttachChat(ctx context.Context, token string, chatID int64) (*PendingRegistration, error)
	ConfirmContact(ctx context.Context, chatID int64, phone string) (ContactResult, error)
}

// CatalogService определяет методы работы с каталогом
type CatalogService interface {
	ListProducts(ctx context.Context, f ProductFilter) ([]*Product, int, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	CreateProduct(ctx context.Context, p *Product, announce bool) (*Product, error)
	UpdateProduct(ctx context.Context, p *Product) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// ReviewService определяет методы работы с отзывами
type ReviewService interface {
	CreateReview(ctx context.Context, userID, productID int64, rating int, text string) (*Review, error)
	ListProductReviews(ctx context.Context, productID int64) ([]*Review, error)
	ListReviews(ctx context.Context, page, limit int) ([]*Review, int, error)
	DeleteReview(ctx context.Context, id int64) error
}

// PromoService определяет методы работы с промокодами
type PromoService interface {
	Evaluate(ctx context.Context, code string, subtotal decimal.Decimal) (PromoResult, error)
	CreatePromo(ctx context.Context, p *PromoCode) (*PromoCode, error)
	UpdatePromo(ctx context.Context, p *PromoCode) (*PromoCode, error)
	DeactivatePromo(ctx context.Context, id int64) error
	ListPromos(ctx context.Context) ([]*PromoCode, error)
	GetPromo(ctx context.Context, id int64) (*PromoCode, error)
}

// CartItem позиция корзины
type CartItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CheckoutRequest данные оформления заказа
type CheckoutRequest struct {
	Items         []CartItem `json:"items"`
	PromoCode     string     `json:"promo_code,omitempty"`
	FullName      string     `json:"full_name"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	DeliveryType  string     `json:"delivery_type"`
	DeliverySpeed string     `json:"delivery_speed"`
	PaymentMethod string     `json:"payment_method"`
}

// Quote предварительный расчет заказа
type Quote struct {
	Items          []OrderItem     `json:"items"`
	SubtotalAmount decimal.Decimal `json:"subtotal_amount"`
	DeliveryAmount decimal.Decimal `json:"delivery_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Promo          *PromoResult    `json:"promo,omitempty"`
}

// CheckoutResult результат оформления заказа
type CheckoutResult struct {
	Order       *Order `json:"order"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// OrderService определяет методы оформления и просмотра заказов
type OrderService interface {
	Quote(ctx context.Context, req CheckoutRequest) (*Quote, error)
	PlaceOrder(ctx context.Context, userID int64, req CheckoutRequest) (*CheckoutResult, error)
	ListUserOrders(ctx context.Context, userID int64) ([]*Order, error)
	GetUserOrder(ctx context.Context, userID, orderID int64) (*Order, error)
	UploadPaymentProof(ctx context.Context, userID, orderID int64, url string) (*Order, error)

	ListOrders(ctx context.Context, f OrderFilter) (*OrderPage, error)
	GetOrder(ctx context.Context, id int64) (*Order, error)
	EditOrder(ctx context.Context, id int64, edit OrderEdit, change *StatusChange) (*Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// StatusService смена статусов заказа
type StatusService interface {
	Transition(ctx context.Context, orderID int64, change StatusChange) (*Order, error)
}

// PaymentService обработка оплаты заказов
type PaymentService interface {
	HandleWebhook(ctx context.Context, body []byte, signature string) error
	ApproveManual(ctx context.Context, orderID int64, comment string) (*Order, error)
	RejectManual(ctx context.Context, orderID int64, comment string) (*Order, error)
}

// TopupService пополнения баланса
type TopupService interface {
	RequestTopup(ctx context.Context, userID int64, amount decimal.Decimal, method string) (*BalanceTopup, error)
	ListUserTopups(ctx context.Context, userID int64) ([]*BalanceTopup, error)
	UploadTopupProof(ctx context.Context, userID, topupID int64, url string) (*BalanceTopup, error)
	ListTopups(ctx context.Context, status TopupStatus) ([]*BalanceTopup, error)
	ApproveTopup(ctx context.Context, topupID int64, comment string) (*BalanceTopup, error)
	RejectTopup(ctx context.Context, topupID int64, comment string) (*BalanceTopup, error)
}

// UserService администрирование пользователей
type UserService interface {
	ListUsers(ctx context.Context, page, limit int) ([]*User, int, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, u NewUser) (*User, error)
	UpdateUser(ctx context.Context, id int64, upd UserUpdate) (*User, error)
	CreditBalance(ctx context.Context, id int64, amount decimal.Decimal) (*User, error)
}

// BroadcastResult итог рассылки
type BroadcastResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// Notifier доставка уведомлений пользователям
type Notifier interface {
	Notify(ctx context.Context, userID int64, message string) bool
	NotifyAsync(userID int64, message string)
	BroadcastNewProduct(ctx context.Context, p *Product) BroadcastResult
	// AnnounceProduct запускает рассылку о новом товаре в фоне
	AnnounceProduct(p *Product)
}
