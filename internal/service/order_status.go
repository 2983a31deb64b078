package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/plantstore/internal/domain"
	"github.com/avc/plantstore/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

// Инициаторы смены статуса
const (
	actorAdmin   = "admin"
	actorGateway = "ozon_pay"
	actorBalance = "balance"
	actorSweeper = "sweeper"
)

// Guard проверяет заблокированный заказ перед сменой статуса.
// errSkip завершает смену без изменений и без ошибки.
type Guard func(order *domain.Order) error

// Transition результат смены статуса внутри транзакции
type Transition struct {
	Order *domain.Order
	From  domain.OrderStatus
	Actor string
	// Changed статус заказа изменился
	Changed bool
	// Recorded в историю добавлена запись
	Recorded      bool
	TrackingAdded bool
	StockReduced  bool
	// PromoUse applied или exhausted, если промокод учитывался при этой смене
	PromoUse string
}

// StatusMachine реализует domain.StatusService: смену статуса заказа
// с историей, списанием остатков и учетом промокода
type StatusMachine struct {
	store     domain.Store
	policy    domain.TransitionPolicy
	notifier  domain.Notifier
	publisher domain.EventPublisher
	jobs      JobQueue
	metrics   *metrics.Metrics
	logger    *zap.Logger
	now       func() time.Time
}

// NewStatusMachine создает новый StatusMachine
func NewStatusMachine(
	store domain.Store,
	policy domain.TransitionPolicy,
	notifier domain.Notifier,
	publisher domain.EventPublisher,
	jobs JobQueue,
	m *metrics.Metrics,
	logger *zap.Logger,
) *StatusMachine {
	return &StatusMachine{
		store:     store,
		policy:    policy,
		notifier:  notifier,
		publisher: publisher,
		jobs:      jobs,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// Transition меняет статус заказа в отдельной транзакции и запускает побочные эффекты после фиксации
func (s *StatusMachine) Transition(ctx context.Context, orderID int64, change domain.StatusChange) (*domain.Order, error) {
	var tr *Transition
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Store) error {
		var err error
		tr, err = s.Apply(ctx, tx, orderID, change, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Announce(tr)

	return tr.Order, nil
}

// Apply меняет статус заказа внутри открытой транзакции tx. Строка заказа блокируется
// до конца транзакции. Побочные эффекты вне базы запускает Announce после фиксации.
func (s *StatusMachine) Apply(
	ctx context.Context,
	tx domain.Store,
	orderID int64,
	change domain.StatusChange,
	guard Guard,
) (*Transition, error) {
	if change.Status == "" {
		return nil, domain.ErrInvalidStatus
	}

	orders := tx.Orders()
	order, err := orders.LockOrder(ctx, orderID)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("status machine: failed to lock order %d: %w", orderID, err)
	}

	tr := &Transition{Order: order, From: order.Status, Actor: change.Actor}

	if guard != nil {
		if err := guard(order); err != nil {
			if errors.Is(err, errSkip) {
				return tr, nil
			}
			return nil, err
		}
	}

	to := change.Status
	check := s.policy.Check(order.Status, to)
	if !check.Allowed {
		return nil, domain.ErrInvalidTransition
	}

	// Повтор того же статуса без комментария и трек-номера ничего не меняет
	if order.Status == to && change.Comment == "" && change.TrackingNumber == nil {
		return tr, nil
	}

	if check.Audit {
		s.logger.Warn("non-forward order status transition",
			zap.Int64("order_id", order.ID),
			zap.String("from", string(order.Status)),
			zap.String("to", string(to)),
			zap.String("actor", change.Actor),
		)
	}

	at := s.now()
	if n := len(order.History); n > 0 && at.Before(order.History[n-1].CreatedAt) {
		at = order.History[n-1].CreatedAt
	}

	if change.TrackingNumber != nil {
		if err := orders.UpdateOrderDetails(ctx, order.ID, domain.OrderEdit{TrackingNumber: change.TrackingNumber}); err != nil {
			return nil, fmt.Errorf("status machine: failed to set tracking number for order %d: %w", order.ID, err)
		}
		tr.TrackingAdded = order.TrackingNumber == nil || *order.TrackingNumber != *change.TrackingNumber
		order.TrackingNumber = change.TrackingNumber
	}

	payment := change.PaymentStatus
	if payment == "" {
		payment = impliedPaymentStatus(order, to)
	}

	entry := domain.StatusEntry{Status: to, Comment: change.Comment, CreatedAt: at}
	if err := orders.AppendHistory(ctx, order.ID, entry); err != nil {
		return nil, fmt.Errorf("status machine: failed to append history for order %d: %w", order.ID, err)
	}
	if err := orders.UpdateStatus(ctx, order.ID, to, payment, at); err != nil {
		return nil, fmt.Errorf("status machine: failed to update status of order %d: %w", order.ID, err)
	}

	order.Status = to
	if payment != "" {
		order.PaymentStatus = payment
	}
	order.LastStatusAt = at
	order.History = append(order.History, entry)
	tr.Changed = tr.From != to
	tr.Recorded = true

	if to.IsConfirmed() {
		if err := s.confirm(ctx, tx, tr); err != nil {
			return nil, err
		}
	}

	return tr, nil
}

// impliedPaymentStatus статус оплаты, который следует из нового статуса заказа
func impliedPaymentStatus(order *domain.Order, to domain.OrderStatus) domain.PaymentStatus {
	switch {
	case to.IsConfirmed() && order.PaymentStatus != domain.PaymentStatusPaid:
		return domain.PaymentStatusPaid
	case to == domain.OrderStatusFailed:
		return domain.PaymentStatusFailed
	}
	return ""
}

// confirm списывает остатки и учитывает промокод при первом подтверждении заказа.
// Оба действия защищены условными флагами в строке заказа.
func (s *StatusMachine) confirm(ctx context.Context, tx domain.Store, tr *Transition) error {
	order := tr.Order

	reduced, err := tx.Orders().MarkStockReduced(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("status machine: failed to mark stock reduced for order %d: %w", order.ID, err)
	}
	if reduced {
		for _, it := range order.Items {
			err := tx.Products().DecrementStock(ctx, it.ProductID, it.Quantity)
			if errors.Is(err, domain.ErrProductNotFound) {
				s.logger.Warn("stock not reduced: product removed",
					zap.Int64("order_id", order.ID),
					zap.Int64("product_id", it.ProductID),
				)
				continue
			}
			if err != nil {
				return fmt.Errorf("status machine: failed to reduce stock of product %d: %w", it.ProductID, err)
			}
		}
		order.StockReduced = true
		tr.StockReduced = true
	}

	if order.PromoCode == nil {
		return nil
	}

	consumed, err := tx.Orders().MarkPromoConsumed(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("status machine: failed to mark promo consumed for order %d: %w", order.ID, err)
	}
	if !consumed {
		return nil
	}
	order.PromoConsumed = true

	ok, err := tx.Promos().IncrementUses(ctx, *order.PromoCode)
	if err != nil {
		return fmt.Errorf("status machine: failed to count promo code %q: %w", *order.PromoCode, err)
	}
	if !ok {
		// Лимит исчерпан другими заказами после оформления, оплаченный заказ не отменяем
		s.logger.Warn("promo code exhausted at confirmation",
			zap.Int64("order_id", order.ID),
			zap.String("promo_code", *order.PromoCode),
		)
		tr.PromoUse = "exhausted"
		return nil
	}
	tr.PromoUse = "applied"

	return nil
}

// Announce запускает побочные эффекты зафиксированной смены статуса:
// уведомление, событие и метрики. Ошибки не влияют на результат смены.
func (s *StatusMachine) Announce(tr *Transition) {
	if tr == nil || !tr.Recorded {
		return
	}
	order := tr.Order

	if tr.StockReduced {
		s.metrics.RecordStockReduced()
	}
	if tr.PromoUse != "" {
		s.metrics.RecordPromoUse(tr.PromoUse)
	}

	if !tr.Changed {
		if tr.TrackingAdded {
			s.notifier.NotifyAsync(order.UserID, statusChangedMessage(order))
		}
		return
	}

	s.metrics.RecordTransition(string(tr.From), string(order.Status), domain.IsForward(tr.From, order.Status))
	s.notifier.NotifyAsync(order.UserID, statusChangedMessage(order))

	ev := domain.OrderEvent{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		UserID:    order.UserID,
		From:      tr.From,
		To:        order.Status,
		Total:     order.TotalAmount.String(),
		Actor:     tr.Actor,
		CreatedAt: order.LastStatusAt,
	}
	ok := s.jobs.Submit(func(ctx context.Context) {
		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()

		if err := s.publisher.PublishOrderEvent(pubCtx, ev); err != nil {
			s.logger.Warn("failed to publish order event",
				zap.Int64("order_id", ev.OrderID),
				zap.String("event_id", ev.ID),
				zap.Error(err),
			)
		}
	})
	if !ok {
		s.logger.Warn("order event dropped: queue is full", zap.Int64("order_id", order.ID))
	}
}
