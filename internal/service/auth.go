package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/avc/plantstore/internal/domain"
	"github.com/avc/plantstore/internal/utils/jwt"
	"github.com/avc/plantstore/internal/utils/password"
)

// AuthService реализует domain.AuthService
type AuthService struct {
	store          domain.Store
	verification   domain.VerificationService
	passwordHasher password.Hasher
	passwordPolicy password.Policy
	jwtManager     *jwt.Manager
	botName        string
}

// NewAuthService создает новый AuthService
func NewAuthService(
	store domain.Store,
	verification domain.VerificationService,
	passwordHasher password.Hasher,
	passwordPolicy password.Policy,
	jwtManager *jwt.Manager,
	botName string,
) *AuthService {
	return &AuthService{
		store:          store,
		verification:   verification,
		passwordHasher: passwordHasher,
		passwordPolicy: passwordPolicy,
		jwtManager:     jwtManager,
		botName:        botName,
	}
}

// Register начинает регистрацию: сохраняет данные до подтверждения телефона в боте
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegistrationTicket, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, domain.Validation("full name is required")
	}
	if err := s.passwordPolicy.Validate(req.Password); err != nil {
		return nil, domain.Validation(err.Error())
	}
	phone, err := domain.NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	users := s.store.Users()
	if _, err := users.GetUserByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("auth service: failed to check email %q: %w", email, err)
	}
	if _, err := users.GetUserByPhone(ctx, phone); err == nil {
		return nil, domain.ErrPhoneTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("auth service: failed to check phone: %w", err)
	}

	// Хеширование пароля
	hash, err := s.passwordHasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("auth service: failed to hash password for user %q: %w", email, err)
	}

	token, err := s.verification.RequestVerification(ctx, phone, domain.RegistrationPayload{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
	})
	if err != nil {
		return nil, err
	}

	ticket := &domain.RegistrationTicket{Phone: phone, Token: token}
	if s.botName != "" {
		ticket.BotLink = "https://t.me/" + s.botName + "?start=" + url.QueryEscape(token)
	}

	return ticket, nil
}

// CompleteRegistration создает пользователя после подтверждения телефона в боте и выдает токен
func (s *AuthService) CompleteRegistration(ctx context.Context, phone, token string) (string, error) {
	reg, err := s.verification.Pending(ctx, phone)
	if err != nil {
		return "", err
	}
	if token == "" || reg.VerificationToken != token {
		return "", domain.ErrVerificationMismatch
	}

	user, err := s.verification.Promote(ctx, reg.Phone)
	if err != nil {
		return "", err
	}

	// Генерация JWT токена
	jwtToken, err := s.jwtManager.Generate(user.ID, user.IsAdmin)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %d: %w", user.ID, err)
	}

	return jwtToken, nil
}

// Login аутентифицирует пользователя
func (s *AuthService) Login(ctx context.Context, email, userPassword string) (string, error) {
	// Валидация входных данных
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || userPassword == "" {
		return "", domain.Validation("empty email or password")
	}

	// Получение пользователя по email
	user, err := s.store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: failed to get user %q: %w", email, err)
	}

	// Проверка пароля
	if err := s.passwordHasher.Check(user.PasswordHash, userPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: failed to check password for user %d: %w", user.ID, err)
	}

	// Генерация JWT токена
	token, err := s.jwtManager.Generate(user.ID, user.IsAdmin)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %d: %w", user.ID, err)
	}

	return token, nil
}

// Profile возвращает профиль пользователя
func (s *AuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to get user %d: %w", userID, err)
	}
	return user, nil
}
