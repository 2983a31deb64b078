package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avc/plantstore/internal/domain"
	"github.com/avc/plantstore/internal/metrics"
	"go.uber.org/zap"
)

// Результаты обработки вебхука для метрик
const (
	webhookApplied   = "applied"
	webhookDuplicate = "duplicate"
	webhookNoop      = "noop"
	webhookIgnored   = "ignored"
	webhookRejected  = "rejected"
	webhookUnknown   = "unknown"
)

// webhookPayload тело уведомления Ozon Pay
type webhookPayload struct {
	TransactionID string `json:"transactionId"`
	PaymentID     string `json:"paymentId"`
	Status        string `json:"status"`
}

// gatewayOutcome приводит статус шлюза к статусу оплаты. Пустое значение означает, что событие не влияет на оплату.
func gatewayOutcome(status string) domain.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "succeeded", "paid", "completed", "success":
		return domain.PaymentStatusPaid
	case "failed", "cancelled", "canceled", "declined", "rejected":
		return domain.PaymentStatusFailed
	}
	return ""
}

// PaymentService реализует domain.PaymentService и оформление оплаты заказа
type PaymentService struct {
	store         domain.Store
	gateway       domain.PaymentGateway
	status        *StatusMachine
	topups        *TopupService
	dedup         domain.Deduplicator
	webhookSecret string
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewPaymentService создает новый PaymentService. dedup может быть nil.
func NewPaymentService(
	store domain.Store,
	gateway domain.PaymentGateway,
	status *StatusMachine,
	topups *TopupService,
	dedup domain.Deduplicator,
	webhookSecret string,
	m *metrics.Metrics,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		store:         store,
		gateway:       gateway,
		status:        status,
		topups:        topups,
		dedup:         dedup,
		webhookSecret: webhookSecret,
		metrics:       m,
		logger:        logger,
	}
}

func orderReference(id int64) string {
	return "order-" + strconv.FormatInt(id, 10)
}

// Checkout сохраняет заказ и проводит оплату выбранным способом
func (s *PaymentService) Checkout(ctx context.Context, order *domain.Order) (*domain.CheckoutResult, error) {
	switch order.PaymentMethod {
	case domain.PaymentMethodBalance:
		return s.checkoutBalance(ctx, order)
	case domain.PaymentMethodGateway:
		return s.checkoutGateway(ctx, order)
	case domain.PaymentMethodBankTransfer:
		return s.checkoutBankTransfer(ctx, order)
	}
	return nil, domain.ErrInvalidPaymentMethod
}

// checkoutBalance создает заказ и списывает баланс в одной транзакции.
// При нехватке средств заказ не сохраняется.
func (s *PaymentService) checkoutBalance(ctx context.Context, order *domain.Order) (*domain.CheckoutResult, error) {
	order.Status = domain.OrderStatusPending
	order.PaymentStatus = domain.PaymentStatusPending

	var tr *Transition
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Store) error {
		created, err := tx.Orders().CreateOrder(ctx, order)
		if err != nil {
			return err
		}
		if _, err := tx.Users().DebitBalance(ctx, created.UserID, created.TotalAmount); err != nil {
			return err
		}
		tr, err = s.status.Apply(ctx, tx, created.ID, domain.StatusChange{
			Status:        domain.OrderStatusPaid,
			Comment:       "Оплачено с баланса",
			PaymentStatus: domain.PaymentStatusPaid,
			Actor:         actorBalance,
		}, nil)
		return err
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("payment service: failed to pay order from balance: %w", err)
	}

	s.status.Announce(tr)

	return &domain.CheckoutResult{Order: tr.Order}, nil
}

// checkoutGateway создает заказ и платеж в Ozon Pay. Если шлюз недоступен,
// заказ остается в статусе failed.
func (s *PaymentService) checkoutGateway(ctx context.Context, order *domain.Order) (*domain.CheckoutResult, error) {
	order.Status = domain.OrderStatusPending
	order.PaymentStatus = domain.PaymentStatusPending

	created, err := s.store.Orders().CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("payment service: failed to create order: %w", err)
	}

	session, err := s.gateway.CreatePayment(ctx, domain.PaymentRequest{
		Reference:   orderReference(created.ID),
		Amount:      created.TotalAmount,
		Description: fmt.Sprintf("Заказ №%d", created.ID),
	})
	if err != nil {
		s.metrics.RecordGatewayRequest(false)
		s.logger.Error("failed to create order payment",
			zap.Int64("order_id", created.ID),
			zap.Error(err),
		)
		_, terr := s.status.Transition(ctx, created.ID, domain.StatusChange{
			Status:        domain.OrderStatusFailed,
			Comment:       "Не удалось создать платеж",
			PaymentStatus: domain.PaymentStatusFailed,
			Actor:         actorGateway,
		})
		if terr != nil {
			s.logger.Error("failed to mark order failed", zap.Int64("order_id", created.ID), zap.Error(terr))
		}
		return nil, domain.ErrPaymentGatewayFailure
	}
	s.metrics.RecordGatewayRequest(true)

	if err := s.store.Orders().SetPaymentID(ctx, created.ID, session.PaymentID); err != nil {
		return nil, fmt.Errorf("payment service: failed to save payment of order %d: %w", created.ID, err)
	}
	created.PaymentID = &session.PaymentID

	return &domain.CheckoutResult{Order: created, RedirectURL: session.RedirectURL}, nil
}

func (s *PaymentService) checkoutBankTransfer(ctx context.Context, order *domain.Order) (*domain.CheckoutResult, error) {
	order.Status = domain.OrderStatusPendingPayment
	order.PaymentStatus = domain.PaymentStatusVerification

	created, err := s.store.Orders().CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("payment service: failed to create order: %w", err)
	}
	return &domain.CheckoutResult{Order: created}, nil
}

// verifySignature проверяет HMAC-SHA256 тела в hex. Пустой секрет отклоняет все запросы.
func (s *PaymentService) verifySignature(body []byte, signature string) bool {
	if s.webhookSecret == "" {
		return false
	}
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(s.webhookSecret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

// HandleWebhook обрабатывает уведомление Ozon Pay. Повтор transaction id
// не меняет состояние и не считается ошибкой.
func (s *PaymentService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !s.verifySignature(body, signature) {
		s.metrics.RecordWebhook(webhookRejected)
		return domain.ErrInvalidSignature
	}

	var p webhookPayload
	if err := json.Unmarshal(body, &p); err != nil {
		s.metrics.RecordWebhook(webhookRejected)
		return domain.Validation("malformed webhook payload")
	}
	if p.TransactionID == "" || p.PaymentID == "" {
		s.metrics.RecordWebhook(webhookRejected)
		return domain.Validation("transactionId and paymentId are required")
	}

	dedupKey := "payment:" + p.TransactionID
	if s.dedup != nil {
		seen, err := s.dedup.Seen(ctx, dedupKey)
		if err != nil {
			s.logger.Warn("dedup lookup failed", zap.String("transaction_id", p.TransactionID), zap.Error(err))
		}
		if seen {
			s.metrics.RecordWebhook(webhookDuplicate)
			return nil
		}
	}

	ev := domain.PaymentEvent{
		TransactionID: p.TransactionID,
		PaymentID:     p.PaymentID,
		Status:        p.Status,
		ReceivedAt:    time.Now(),
	}
	outcome := gatewayOutcome(p.Status)

	result, err := s.dispatchWebhook(ctx, ev, outcome)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			s.metrics.RecordWebhook(webhookUnknown)
		}
		return err
	}
	s.metrics.RecordWebhook(result)

	s.logger.Info("payment webhook processed",
		zap.String("transaction_id", p.TransactionID),
		zap.String("payment_id", p.PaymentID),
		zap.String("status", p.Status),
		zap.String("result", result),
	)

	if s.dedup != nil {
		if err := s.dedup.Remember(ctx, dedupKey); err != nil {
			s.logger.Warn("failed to remember transaction", zap.String("transaction_id", p.TransactionID), zap.Error(err))
		}
	}

	return nil
}

// dispatchWebhook находит заказ или пополнение по payment id и применяет событие
func (s *PaymentService) dispatchWebhook(ctx context.Context, ev domain.PaymentEvent, outcome domain.PaymentStatus) (string, error) {
	order, err := s.store.Orders().GetOrderByPaymentID(ctx, ev.PaymentID)
	switch {
	case err == nil:
		return s.applyOrderPayment(ctx, order.ID, ev, outcome)
	case !errors.Is(err, domain.ErrOrderNotFound):
		return "", fmt.Errorf("payment service: failed to find order by payment %s: %w", ev.PaymentID, err)
	}

	topup, err := s.store.Topups().GetTopupByPaymentID(ctx, ev.PaymentID)
	switch {
	case err == nil:
		return s.topups.applyGatewayResult(ctx, topup.ID, ev, outcome)
	case errors.Is(err, domain.ErrTopupNotFound):
		s.logger.Warn("webhook for unknown payment", zap.String("payment_id", ev.PaymentID))
		return "", domain.ErrPaymentNotFound
	}
	return "", fmt.Errorf("payment service: failed to find topup by payment %s: %w", ev.PaymentID, err)
}

// applyOrderPayment записывает событие и меняет статус заказа в одной транзакции.
// Уже оплаченный заказ не меняется.
func (s *PaymentService) applyOrderPayment(ctx context.Context, orderID int64, ev domain.PaymentEvent, outcome domain.PaymentStatus) (string, error) {
	result := webhookApplied
	var tr *Transition

	err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Store) error {
		inserted, err := tx.PaymentEvents().RecordEvent(ctx, ev)
		if err != nil {
			return err
		}
		if !inserted {
			result = webhookDuplicate
			return nil
		}

		change := domain.StatusChange{PaymentStatus: outcome, Actor: actorGateway}
		switch outcome {
		case domain.PaymentStatusPaid:
			change.Status = domain.OrderStatusPaid
			change.Comment = "Оплачено через Ozon Pay"
		case domain.PaymentStatusFailed:
			change.Status = domain.OrderStatusFailed
			change.Comment = "Оплата отклонена Ozon Pay"
		default:
			result = webhookIgnored
			return nil
		}

		tr, err = s.status.Apply(ctx, tx, orderID, change, func(o *domain.Order) error {
			if o.Status.IsConfirmed() || o.PaymentStatus == domain.PaymentStatusPaid {
				return errSkip
			}
			if o.Status != domain.OrderStatusPending && o.Status != domain.OrderStatusFailed {
				return errSkip
			}
			return nil
		})
		if err != nil {
			return err
		}
		if !tr.Recorded {
			result = webhookNoop
		}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return "", err
		}
		return "", fmt.Errorf("payment service: failed to apply payment of order %d: %w", orderID, err)
	}

	s.status.Announce(tr)

	return result, nil
}

// manualGuard пропускает только заказы с банковским переводом, ожидающие подтверждения
func manualGuard(o *domain.Order) error {
	if o.PaymentMethod != domain.PaymentMethodBankTransfer {
		return domain.ErrNotManualPayment
	}
	if o.Status.IsConfirmed() || o.PaymentStatus == domain.PaymentStatusPaid {
		return domain.ErrOrderAlreadyPaid
	}
	if o.Status != domain.OrderStatusPendingPayment {
		return domain.ErrNotManualPayment
	}
	return nil
}

// ApproveManual подтверждает банковский перевод
func (s *PaymentService) ApproveManual(ctx context.Context, orderID int64, comment string) (*domain.Order, error) {
	if comment == "" {
		comment = "Оплата подтверждена"
	}
	return s.resolveManual(ctx, orderID, domain.StatusChange{
		Status:        domain.OrderStatusPaid,
		Comment:       comment,
		PaymentStatus: domain.PaymentStatusPaid,
		Actor:         actorAdmin,
	})
}

// RejectManual отклоняет банковский перевод и отменяет заказ
func (s *PaymentService) RejectManual(ctx context.Context, orderID int64, comment string) (*domain.Order, error) {
	if comment == "" {
		comment = "Оплата не подтверждена"
	}
	return s.resolveManual(ctx, orderID, domain.StatusChange{
		Status:        domain.OrderStatusCancelled,
		Comment:       comment,
		PaymentStatus: domain.PaymentStatusFailed,
		Actor:         actorAdmin,
	})
}

func (s *PaymentService) resolveManual(ctx context.Context, orderID int64, change domain.StatusChange) (*domain.Order, error) {
	var tr *Transition
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Store) error {
		var err error
		tr, err = s.status.Apply(ctx, tx, orderID, change, manualGuard)
		return err
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("payment service: failed to resolve manual payment of order %d: %w", orderID, err)
	}

	s.status.Announce(tr)

	return tr.Order, nil
}
