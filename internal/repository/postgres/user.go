package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/plantstore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const userColumns = `id, email, password_hash, full_name, phone, phone_verified, telegram_chat_id, balance, is_admin, created_at`

// UserRepository реализует domain.UserRepository
type UserRepository struct {
	db DBTX
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone, &u.PhoneVerified,
		&u.TelegramChatID, &u.Balance, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser создает нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	created, err := scanUser(r.db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, full_name, phone, phone_verified, telegram_chat_id, balance, is_admin)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+userColumns,
		strings.ToLower(user.Email), user.PasswordHash, user.FullName, user.Phone, user.PhoneVerified,
		user.TelegramChatID, user.Balance, user.IsAdmin,
	))
	if err != nil {
		if isUniqueViolation(err, "users_phone_key") {
			return nil, domain.ErrPhoneTaken
		}
		if isUniqueViolation(err, "") {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("repository: failed to create user %q: %w", user.Email, err)
	}

	return created, nil
}

func (r *UserRepository) getOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by %v: %w", arg, err)
	}
	return u, nil
}

// GetUserByID получает пользователя по ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, `id = $1`, id)
}

// GetUserByEmail получает пользователя по email без учета регистра
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `lower(email) = lower($1)`, email)
}

// GetUserByPhone получает пользователя по нормализованному телефону
func (r *UserRepository) GetUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.getOne(ctx, `phone = $1`, phone)
}

func (r *UserRepository) queryUsers(ctx context.Context, sql string, args ...any) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating users: %w", err)
	}

	return users, nil
}

// ListUsers возвращает страницу пользователей и их общее количество
func (r *UserRepository) ListUsers(ctx context.Context, limit, offset int) ([]*domain.User, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repository: failed to count users: %w", err)
	}

	users, err := r.queryUsers(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListUsersWithChat возвращает пользователей с привязанным чатом
func (r *UserRepository) ListUsersWithChat(ctx context.Context) ([]*domain.User, error) {
	return r.queryUsers(ctx,
		`SELECT `+userColumns+` FROM users WHERE telegram_chat_id IS NOT NULL ORDER BY id`)
}

// UpdateUser обновляет изменяемые поля пользователя
func (r *UserRepository) UpdateUser(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`UPDATE users SET
			full_name = COALESCE($2, full_name),
			phone = COALESCE($3, phone),
			phone_verified = phone_verified AND ($3::text IS NULL OR $3 = phone),
			is_admin = COALESCE($4, is_admin)
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, upd.FullName, upd.Phone, upd.IsAdmin,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		if isUniqueViolation(err, "users_phone_key") {
			return nil, domain.ErrPhoneTaken
		}
		return nil, fmt.Errorf("repository: failed to update user %d: %w", id, err)
	}
	return u, nil
}

// SetTelegramChat привязывает чат Telegram к пользователю
func (r *UserRepository) SetTelegramChat(ctx context.Context, id, chatID int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET telegram_chat_id = $2 WHERE id = $1`, id, chatID)
	if err != nil {
		return fmt.Errorf("repository: failed to link chat for user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// DebitBalance списывает сумму одним условным запросом, баланс не уходит в минус
func (r *UserRepository) DebitBalance(ctx context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx,
		`UPDATE users SET balance = balance - $2
		 WHERE id = $1 AND balance >= $2
		 RETURNING balance`,
		id, amount,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetUserByID(ctx, id); getErr != nil {
				return decimal.Zero, getErr
			}
			return decimal.Zero, domain.ErrInsufficientBalance
		}
		if isCheckViolation(err) {
			return decimal.Zero, domain.ErrInsufficientBalance
		}
		return decimal.Zero, fmt.Errorf("repository: failed to debit balance of user %d: %w", id, err)
	}
	return balance, nil
}

// CreditBalance зачисляет сумму на баланс
func (r *UserRepository) CreditBalance(ctx context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx,
		`UPDATE users SET balance = balance + $2 WHERE id = $1 RETURNING balance`,
		id, amount,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("repository: failed to credit balance of user %d: %w", id, err)
	}
	return balance, nil
}
