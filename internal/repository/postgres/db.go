package postgres

import (
	"context"
	"fmt"

	"github.com/avc/plantstore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX общий интерфейс пула соединений и транзакции
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store реализует domain.Store поверх пула или открытой транзакции
type Store struct {
	db   DBTX
	inTx bool
}

// NewStore создает новый Store
func NewStore(db DBTX) *Store {
	return &Store{db: db}
}

func (s *Store) Users() domain.UserRepository                 { return NewUserRepository(s.db) }
func (s *Store) Products() domain.ProductRepository           { return NewProductRepository(s.db) }
func (s *Store) Orders() domain.OrderRepository               { return NewOrderRepository(s.db) }
func (s *Store) Promos() domain.PromoRepository               { return NewPromoRepository(s.db) }
func (s *Store) Registrations() domain.RegistrationRepository { return NewRegistrationRepository(s.db) }
func (s *Store) Topups() domain.TopupRepository               { return NewTopupRepository(s.db) }
func (s *Store) PaymentEvents() domain.PaymentEventRepository { return NewPaymentEventRepository(s.db) }
func (s *Store) Reviews() domain.ReviewRepository             { return NewReviewRepository(s.db) }

// WithinTx выполняет fn в транзакции. Вложенный вызов переиспользует текущую транзакцию.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx domain.Store) error) error {
	if s.inTx {
		return fn(ctx, s)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	if err := fn(ctx, &Store{db: tx, inTx: true}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit transaction: %w", err)
	}

	return nil
}
