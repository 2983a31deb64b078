package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/plantstore/internal/domain"
	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
)

const verificationTokenLength = 21

// VerificationService реализует domain.VerificationService. Источник истины
// только хранилище: токен ищется по нормализованному телефону при каждом обращении.
type VerificationService struct {
	store    domain.Store
	limiter  domain.RateLimiter
	newToken func() string
	logger   *zap.Logger
}

// NewVerificationService создает новый VerificationService. limiter может быть nil.
func NewVerificationService(store domain.Store, limiter domain.RateLimiter, logger *zap.Logger) (*VerificationService, error) {
	gen, err := nanoid.Standard(verificationTokenLength)
	if err != nil {
		return nil, fmt.Errorf("verification service: failed to create token generator: %w", err)
	}

	return &VerificationService{
		store:    store,
		limiter:  limiter,
		newToken: gen,
		logger:   logger,
	}, nil
}

// RequestVerification сохраняет данные регистрации и выдает новый токен.
// Повторный запрос для того же телефона заменяет прежний токен.
func (s *VerificationService) RequestVerification(ctx context.Context, phone string, payload domain.RegistrationPayload) (string, error) {
	phone, err := domain.NormalizePhone(phone)
	if err != nil {
		return "", err
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, "verify:"+phone)
		if err != nil {
			// Лимитер недоступен: не блокируем регистрацию
			s.logger.Warn("verification rate limiter unavailable", zap.Error(err))
		} else if !allowed {
			return "", domain.ErrTooManyVerifications
		}
	}

	token := s.newToken()
	err = s.store.Registrations().UpsertRegistration(ctx, &domain.PendingRegistration{
		Phone:             phone,
		Payload:           payload,
		VerificationToken: token,
	})
	if err != nil {
		return "", fmt.Errorf("verification service: failed to save registration for %s: %w", phone, err)
	}

	return token, nil
}

// Confirm отмечает телефон подтвержденным, если токен совпадает.
// Несовпадение и отсутствие регистрации дают false без ошибки.
func (s *VerificationService) Confirm(ctx context.Context, phone, token string) (bool, error) {
	phone, err := domain.NormalizePhone(phone)
	if err != nil || token == "" {
		return false, nil
	}

	regs := s.store.Registrations()
	flipped, err := regs.MarkVerified(ctx, phone, token)
	if err != nil {
		return false, fmt.Errorf("verification service: failed to confirm %s: %w", phone, err)
	}
	if flipped {
		return true, nil
	}

	// Повторное подтверждение той же пары остается успешным
	reg, err := regs.GetRegistration(ctx, phone)
	if err != nil {
		if errors.Is(err, domain.ErrRegistrationNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("verification service: failed to get registration %s: %w", phone, err)
	}

	return reg.Verified && reg.VerificationToken == token, nil
}

// Promote создает пользователя из подтвержденной регистрации и удаляет ее в одной транзакции
func (s *VerificationService) Promote(ctx context.Context, phone string) (*domain.User, error) {
	phone, err := domain.NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	var user *domain.User
	err = s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Store) error {
		reg, err := tx.Registrations().GetRegistration(ctx, phone)
		if err != nil {
			return err
		}
		if !reg.Verified {
			return domain.ErrNotVerified
		}

		user, err = tx.Users().CreateUser(ctx, &domain.User{
			Email:          reg.Payload.Email,
			PasswordHash:   reg.Payload.PasswordHash,
			FullName:       reg.Payload.FullName,
			Phone:          &reg.Phone,
			PhoneVerified:  true,
			TelegramChatID: reg.ChatID,
		})
		if err != nil {
			return err
		}

		return tx.Registrations().DeleteRegistration(ctx, phone)
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("verification service: failed to promote registration %s: %w", phone, err)
	}

	s.logger.Info("registration promoted", zap.Int64("user_id", user.ID))

	return user, nil
}

// Pending возвращает незавершенную регистрацию по телефону
func (s *VerificationService) Pending(ctx context.Context, phone string) (*domain.PendingRegistration, error) {
	phone, err := domain.NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	reg, err := s.store.Registrations().GetRegistration(ctx, phone)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("verification service: failed to get registration %s: %w", phone, err)
	}

	return reg, nil
}

// AttachChat связывает чат бота с регистрацией по токену из ссылки
func (s *VerificationService) AttachChat(ctx context.Context, token string, chatID int64) (*domain.PendingRegistration, error) {
	if token == "" {
		return nil, domain.ErrRegistrationNotFound
	}

	reg, err := s.store.Registrations().AttachChat(ctx, token, chatID)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("verification service: failed to attach chat %d: %w", chatID, err)
	}

	return reg, nil
}

// ConfirmContact обрабатывает контакт, присланный в бот. Телефон контакта должен совпасть
// с телефоном регистрации, привязанной к чату. Без регистрации контакт привязывает чат
// к пользователю с подтвержденным телефоном.
func (s *VerificationService) ConfirmContact(ctx context.Context, chatID int64, phone string) (domain.ContactResult, error) {
	phone, err := domain.NormalizePhone(phone)
	if err != nil {
		return domain.ContactMismatch, nil
	}

	reg, err := s.store.Registrations().GetRegistrationByChat(ctx, chatID)
	switch {
	case err == nil:
		if reg.Phone != phone {
			s.logger.Info("contact phone does not match registration", zap.Int64("chat_id", chatID))
			return domain.ContactMismatch, nil
		}
		ok, err := s.Confirm(ctx, reg.Phone, reg.VerificationToken)
		if err != nil {
			return "", err
		}
		if !ok {
			return domain.ContactMismatch, nil
		}
		return domain.ContactRegistrationConfirmed, nil
	case !errors.Is(err, domain.ErrRegistrationNotFound):
		return "", fmt.Errorf("verification service: failed to get registration for chat %d: %w", chatID, err)
	}

	user, err := s.store.Users().GetUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ContactUnknown, nil
		}
		return "", fmt.Errorf("verification service: failed to get user by phone: %w", err)
	}
	if !user.PhoneVerified {
		return domain.ContactUnknown, nil
	}

	if err := s.store.Users().SetTelegramChat(ctx, user.ID, chatID); err != nil {
		return "", fmt.Errorf("verification service: failed to link chat for user %d: %w", user.ID, err)
	}

	return domain.ContactChatLinked, nil
}
