package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avc/plantstore/internal/domain"
	"github.com/jackc/pgx/v5"
)

const registrationColumns = `phone, payload, verification_token, chat_id, verified, created_at`

// RegistrationRepository реализует domain.RegistrationRepository
type RegistrationRepository struct {
	db DBTX
}

// NewRegistrationRepository создает новый RegistrationRepository
func NewRegistrationRepository(db DBTX) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func scanRegistration(row pgx.Row) (*domain.PendingRegistration, error) {
	reg := &domain.PendingRegistration{}
	var payload []byte
	err := row.Scan(&reg.Phone, &payload, &reg.VerificationToken, &reg.ChatID, &reg.Verified, &reg.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &reg.Payload); err != nil {
		return nil, fmt.Errorf("invalid registration payload: %w", err)
	}
	return reg, nil
}

func (r *RegistrationRepository) getOne(ctx context.Context, where string, arg any) (*domain.PendingRegistration, error) {
	reg, err := scanRegistration(r.db.QueryRow(ctx,
		`SELECT `+registrationColumns+` FROM pending_registrations WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("repository: failed to get pending registration: %w", err)
	}
	return reg, nil
}

// UpsertRegistration создает регистрацию или заменяет токен и данные существующей.
// Замена сбрасывает подтверждение и привязку чата.
func (r *RegistrationRepository) UpsertRegistration(ctx context.Context, reg *domain.PendingRegistration) error {
	payload, err := json.Marshal(reg.Payload)
	if err != nil {
		return fmt.Errorf("repository: failed to encode registration payload: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO pending_registrations (phone, payload, verification_token, chat_id, verified, created_at)
		 VALUES ($1, $2, $3, NULL, FALSE, $4)
		 ON CONFLICT (phone) DO UPDATE SET
			payload = EXCLUDED.payload,
			verification_token = EXCLUDED.verification_token,
			chat_id = NULL,
			verified = FALSE,
			created_at = EXCLUDED.created_at`,
		reg.Phone, payload, reg.VerificationToken, reg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to save pending registration for %s: %w", reg.Phone, err)
	}
	return nil
}

// GetRegistration получает регистрацию по нормализованному телефону
func (r *RegistrationRepository) GetRegistration(ctx context.Context, phone string) (*domain.PendingRegistration, error) {
	return r.getOne(ctx, `phone = $1`, phone)
}

// GetRegistrationByToken получает регистрацию по токену подтверждения
func (r *RegistrationRepository) GetRegistrationByToken(ctx context.Context, token string) (*domain.PendingRegistration, error) {
	return r.getOne(ctx, `verification_token = $1`, token)
}

// GetRegistrationByChat получает последнюю регистрацию, привязанную к чату
func (r *RegistrationRepository) GetRegistrationByChat(ctx context.Context, chatID int64) (*domain.PendingRegistration, error) {
	return r.getOne(ctx, `chat_id = $1 ORDER BY created_at DESC LIMIT 1`, chatID)
}

// AttachChat привязывает чат бота к регистрации по токену
func (r *RegistrationRepository) AttachChat(ctx context.Context, token string, chatID int64) (*domain.PendingRegistration, error) {
	reg, err := scanRegistration(r.db.QueryRow(ctx,
		`UPDATE pending_registrations SET chat_id = $2
		 WHERE verification_token = $1
		 RETURNING `+registrationColumns,
		token, chatID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("repository: failed to attach chat %d: %w", chatID, err)
	}
	return reg, nil
}

// MarkVerified подтверждает регистрацию, если токен совпадает и она еще не подтверждена
func (r *RegistrationRepository) MarkVerified(ctx context.Context, phone, token string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE pending_registrations SET verified = TRUE
		 WHERE phone = $1 AND verification_token = $2 AND verified = FALSE`,
		phone, token,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to verify registration for %s: %w", phone, err)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteRegistration удаляет регистрацию
func (r *RegistrationRepository) DeleteRegistration(ctx context.Context, phone string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pending_registrations WHERE phone = $1`, phone)
	if err != nil {
		return fmt.Errorf("repository: failed to delete registration for %s: %w", phone, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}

// DeleteRegistrationsBefore удаляет регистрации, созданные раньше указанного момента
func (r *RegistrationRepository) DeleteRegistrationsBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM pending_registrations WHERE created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to delete stale registrations: %w", err)
	}
	return tag.RowsAffected(), nil
}
