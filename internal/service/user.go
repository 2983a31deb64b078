package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/avc/plantstore/internal/domain"
	"github.com/avc/plantstore/internal/utils/password"
	"github.com/shopspring/decimal"
)

// UserService реализует domain.UserService для администратора
type UserService struct {
	store          domain.Store
	passwordHasher password.Hasher
	passwordPolicy password.Policy
}

// NewUserService создает новый UserService
func NewUserService(store domain.Store, passwordHasher password.Hasher, passwordPolicy password.Policy) *UserService {
	return &UserService{
		store:          store,
		passwordHasher: passwordHasher,
		passwordPolicy: passwordPolicy,
	}
}

// normalizeEmail проверяет адрес и приводит его к нижнему регистру
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", domain.Validation("invalid email")
	}
	return email, nil
}

// ListUsers возвращает страницу пользователей
func (s *UserService) ListUsers(ctx context.Context, page, limit int) ([]*domain.User, int, error) {
	page, limit, err := normalizePage(page, limit)
	if err != nil {
		return nil, 0, err
	}

	users, total, err := s.store.Users().ListUsers(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("user service: failed to list users: %w", err)
	}

	return users, total, nil
}

// GetUser возвращает пользователя
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.store.Users().GetUserByID(ctx, id)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("user service: failed to get user %d: %w", id, err)
	}
	return u, nil
}

// CreateUser создает пользователя напрямую, без подтверждения телефона
func (s *UserService) CreateUser(ctx context.Context, nu domain.NewUser) (*domain.User, error) {
	email, err := normalizeEmail(nu.Email)
	if err != nil {
		return nil, err
	}
	fullName := strings.TrimSpace(nu.FullName)
	if fullName == "" {
		return nil, domain.Validation("full name is required")
	}
	if err := s.passwordPolicy.Validate(nu.Password); err != nil {
		return nil, domain.Validation(err.Error())
	}

	var phone *string
	if nu.Phone != nil && strings.TrimSpace(*nu.Phone) != "" {
		p, err := domain.NormalizePhone(*nu.Phone)
		if err != nil {
			return nil, err
		}
		phone = &p
	}

	hash, err := s.passwordHasher.Hash(nu.Password)
	if err != nil {
		return nil, fmt.Errorf("user service: failed to hash password for user %q: %w", email, err)
	}

	u, err := s.store.Users().CreateUser(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Phone:        phone,
		Balance:      decimal.Zero,
		IsAdmin:      nu.IsAdmin,
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("user service: failed to create user %q: %w", email, err)
	}

	return u, nil
}

// UpdateUser изменяет профиль пользователя. Смена телефона снимает его подтверждение.
func (s *UserService) UpdateUser(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	if upd.FullName != nil {
		name := strings.TrimSpace(*upd.FullName)
		if name == "" {
			return nil, domain.Validation("full name is required")
		}
		upd.FullName = &name
	}
	if upd.Phone != nil {
		p, err := domain.NormalizePhone(*upd.Phone)
		if err != nil {
			return nil, err
		}
		upd.Phone = &p
	}

	u, err := s.store.Users().UpdateUser(ctx, id, upd)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("user service: failed to update user %d: %w", id, err)
	}

	return u, nil
}

// CreditBalance зачисляет сумму на баланс пользователя
func (s *UserService) CreditBalance(ctx context.Context, id int64, amount decimal.Decimal) (*domain.User, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	var u *domain.User
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Store) error {
		if _, err := tx.Users().CreditBalance(ctx, id, amount); err != nil {
			return err
		}
		var err error
		u, err = tx.Users().GetUserByID(ctx, id)
		return err
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("user service: failed to credit balance of user %d: %w", id, err)
	}

	return u, nil
}
