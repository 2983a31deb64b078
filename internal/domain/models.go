package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User представляет пользователя магазина
type User struct {
	ID             int64           `json:"id"`
	Email          string          `json:"email"`
	PasswordHash   string          `json:"-"`
	FullName       string          `json:"full_name"`
	Phone          *string         `json:"phone,omitempty"`
	PhoneVerified  bool            `json:"phone_verified"`
	TelegramChatID *int64          `json:"telegram_chat_id,omitempty"`
	Balance        decimal.Decimal `json:"balance"`
	IsAdmin        bool            `json:"is_admin"`
	CreatedAt      time.Time       `json:"created_at"`
}

// UserUpdate изменяемые администратором поля пользователя
type UserUpdate struct {
	FullName *string
	Phone    *string
	IsAdmin  *bool
}

// Product товар каталога
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductFilter параметры списка товаров
type ProductFilter struct {
	Page       int
	Limit      int
	Category   string
	Search     string
	OnlyActive bool
}

// Review отзыв о товаре
type Review struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	UserID    int64     `json:"user_id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// RegistrationPayload данные будущего пользователя, сохраненные до подтверждения телефона
type RegistrationPayload struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	FullName     string `json:"full_name"`
}

// PendingRegistration незавершенная регистрация, ожидающая подтверждения телефона
type PendingRegistration struct {
	Phone             string              `json:"phone"`
	Payload           RegistrationPayload `json:"-"`
	VerificationToken string              `json:"-"`
	ChatID            *int64              `json:"-"`
	Verified          bool                `json:"verified"`
	CreatedAt         time.Time           `json:"created_at"`
}

// TopupStatus статус пополнения баланса
type TopupStatus string

const (
	TopupStatusPending   TopupStatus = "pending"
	TopupStatusCompleted TopupStatus = "completed"
	TopupStatusFailed    TopupStatus = "failed"
)

// BalanceTopup заявка на пополнение баланса
type BalanceTopup struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	PaymentID     *string         `json:"payment_id,omitempty"`
	PaymentURL    *string         `json:"payment_url,omitempty"`
	Status        TopupStatus     `json:"status"`
	ProofURL      *string         `json:"proof_url,omitempty"`
	AdminComment  string          `json:"admin_comment,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PaymentEvent входящее событие платежного шлюза
type PaymentEvent struct {
	TransactionID string
	PaymentID     string
	Status        string
	ReceivedAt    time.Time
}
