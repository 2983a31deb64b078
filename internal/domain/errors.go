package domain

import "errors"

// Виды ошибок. Конкретные ошибки ниже разворачиваются в один из них,
// поэтому обработчики сопоставляют только вид через errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrExternalService = errors.New("external service error")
	ErrTokenMismatch   = errors.New("token mismatch")
	ErrUnauthorized    = errors.New("unauthorized")
)

// Error описывает конкретную ошибку предметной области определенного вида
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Validation создает ошибку валидации с произвольным сообщением
func Validation(msg string) error {
	return newError(ErrValidation, msg)
}

// Ошибки пользователей
var (
	ErrUserExists         = newError(ErrConflict, "user already exists")
	ErrUserNotFound       = newError(ErrNotFound, "user not found")
	ErrInvalidCredentials = newError(ErrUnauthorized, "invalid credentials")
	ErrPhoneTaken         = newError(ErrConflict, "phone number already registered")
)

// Ошибки каталога и отзывов
var (
	ErrProductNotFound   = newError(ErrNotFound, "product not found")
	ErrProductInactive   = newError(ErrConflict, "product is not available")
	ErrOutOfStock        = newError(ErrConflict, "not enough stock")
	ErrReviewNotFound    = newError(ErrNotFound, "review not found")
	ErrReviewExists      = newError(ErrConflict, "review already exists")
	ErrInvalidPagination = newError(ErrValidation, "invalid pagination")
)

// Ошибки заказов
var (
	ErrOrderNotFound        = newError(ErrNotFound, "order not found")
	ErrEmptyOrder           = newError(ErrValidation, "order has no items")
	ErrInvalidStatus        = newError(ErrValidation, "unknown order status")
	ErrInvalidTransition    = newError(ErrConflict, "status transition is not allowed")
	ErrInvalidPaymentMethod = newError(ErrValidation, "unknown payment method")
	ErrInvalidDelivery      = newError(ErrValidation, "unknown delivery type")
	ErrNotManualPayment     = newError(ErrConflict, "order is not awaiting manual payment")
	ErrOrderAlreadyPaid     = newError(ErrConflict, "order already paid")
)

// Ошибки промокодов
var (
	ErrPromoNotFound     = newError(ErrNotFound, "promo code not found")
	ErrPromoInactive     = newError(ErrConflict, "promo code is inactive")
	ErrPromoExpired      = newError(ErrConflict, "promo code expired or not started yet")
	ErrPromoBelowMinimum = newError(ErrConflict, "order total is below promo code minimum")
	ErrPromoExhausted    = newError(ErrConflict, "promo code usage limit reached")
	ErrPromoExists       = newError(ErrConflict, "promo code already exists")
)

// Ошибки баланса и платежей
var (
	ErrInsufficientBalance   = newError(ErrConflict, "insufficient balance")
	ErrInvalidAmount         = newError(ErrValidation, "amount must be positive")
	ErrTopupNotFound         = newError(ErrNotFound, "topup not found")
	ErrTopupNotPending       = newError(ErrConflict, "topup is not pending")
	ErrInvalidSignature      = newError(ErrUnauthorized, "invalid webhook signature")
	ErrPaymentNotFound       = newError(ErrNotFound, "payment not found")
	ErrPaymentGatewayFailure = newError(ErrExternalService, "payment gateway unavailable")
)

// Ошибки верификации телефона
var (
	ErrInvalidPhone         = newError(ErrValidation, "invalid phone number")
	ErrRegistrationNotFound = newError(ErrNotFound, "pending registration not found")
	ErrNotVerified          = newError(ErrConflict, "phone number is not verified")
	ErrVerificationMismatch = newError(ErrTokenMismatch, "verification token does not match")
	ErrTooManyVerifications = newError(ErrConflict, "too many verification requests")
)
