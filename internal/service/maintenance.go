package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avc/plantstore/internal/domain"
	"github.com/avc/plantstore/internal/metrics"
	"github.com/avc/plantstore/internal/worker"
	"go.uber.org/zap"
)

// MaintenanceService периодическая очистка устаревших данных.
// Нулевые сроки отключают соответствующую задачу.
type MaintenanceService struct {
	store           domain.Store
	status          *StatusMachine
	registrationTTL time.Duration
	paymentTimeout  time.Duration
	metrics         *metrics.Metrics
	logger          *zap.Logger
	now             func() time.Time
}

// NewMaintenanceService создает новый MaintenanceService
func NewMaintenanceService(
	store domain.Store,
	status *StatusMachine,
	registrationTTL time.Duration,
	paymentTimeout time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		store:           store,
		status:          status,
		registrationTTL: registrationTTL,
		paymentTimeout:  paymentTimeout,
		metrics:         m,
		logger:          logger,
		now:             time.Now,
	}
}

// Tasks возвращает включенные задачи для Sweeper
func (s *MaintenanceService) Tasks() []worker.Task {
	var tasks []worker.Task
	if s.registrationTTL > 0 {
		tasks = append(tasks, worker.Task{Name: "purge_registrations", Run: func(ctx context.Context) error {
			_, err := s.PurgeRegistrations(ctx)
			return err
		}})
	}
	if s.paymentTimeout > 0 {
		tasks = append(tasks, worker.Task{Name: "cancel_stale_orders", Run: func(ctx context.Context) error {
			_, err := s.CancelStaleManualOrders(ctx)
			return err
		}})
	}
	return tasks
}

// PurgeRegistrations удаляет незавершенные регистрации старше TTL
func (s *MaintenanceService) PurgeRegistrations(ctx context.Context) (int64, error) {
	if s.registrationTTL <= 0 {
		return 0, nil
	}

	n, err := s.store.Registrations().DeleteRegistrationsBefore(ctx, s.now().Add(-s.registrationTTL))
	if err != nil {
		return 0, fmt.Errorf("maintenance: failed to purge registrations: %w", err)
	}
	if n > 0 {
		s.metrics.RecordSwept("registrations", int(n))
		s.logger.Info("stale registrations purged", zap.Int64("count", n))
	}
	return n, nil
}

// CancelStaleManualOrders отменяет заказы, ожидающие банковский перевод дольше таймаута
func (s *MaintenanceService) CancelStaleManualOrders(ctx context.Context) (int, error) {
	if s.paymentTimeout <= 0 {
		return 0, nil
	}

	ids, err := s.store.Orders().ListStaleOrders(ctx, domain.OrderStatusPendingPayment, s.now().Add(-s.paymentTimeout))
	if err != nil {
		return 0, fmt.Errorf("maintenance: failed to list stale orders: %w", err)
	}

	cancelled := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		ok, err := s.cancelStale(ctx, id)
		if err != nil {
			s.logger.Warn("failed to cancel stale order", zap.Int64("order_id", id), zap.Error(err))
			continue
		}
		if ok {
			cancelled++
		}
	}

	if cancelled > 0 {
		s.metrics.RecordSwept("orders", cancelled)
		s.logger.Info("stale manual orders cancelled", zap.Int("count", cancelled))
	}
	return cancelled, nil
}

// cancelStale отменяет заказ, если он все еще ожидает перевод. Заказ, подтвержденный
// администратором после выборки, не меняется.
func (s *MaintenanceService) cancelStale(ctx context.Context, id int64) (bool, error) {
	var tr *Transition
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Store) error {
		var err error
		tr, err = s.status.Apply(ctx, tx, id, domain.StatusChange{
			Status:        domain.OrderStatusCancelled,
			Comment:       "Оплата не поступила вовремя",
			PaymentStatus: domain.PaymentStatusFailed,
			Actor:         actorSweeper,
		}, func(o *domain.Order) error {
			if o.Status != domain.OrderStatusPendingPayment {
				return errSkip
			}
			return nil
		})
		return err
	})
	if err != nil {
		return false, err
	}

	s.status.Announce(tr)

	return tr.Recorded, nil
}
