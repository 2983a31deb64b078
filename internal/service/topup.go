package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/avc/plantstore/internal/domain"
	"github.com/avc/plantstore/internal/metrics"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TopupService реализует domain.TopupService
type TopupService struct {
	store    domain.Store
	gateway  domain.PaymentGateway
	notifier domain.Notifier
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewTopupService создает новый TopupService
func NewTopupService(
	store domain.Store,
	gateway domain.PaymentGateway,
	notifier domain.Notifier,
	m *metrics.Metrics,
	logger *zap.Logger,
) *TopupService {
	return &TopupService{
		store:    store,
		gateway:  gateway,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

func topupReference(id int64) string {
	return "topup-" + strconv.FormatInt(id, 10)
}

// RequestTopup создает заявку на пополнение. Для оплаты через шлюз сразу создается платеж.
func (s *TopupService) RequestTopup(ctx context.Context, userID int64, amount decimal.Decimal, method string) (*domain.BalanceTopup, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	pm, err := domain.ParsePaymentMethod(method)
	if err != nil {
		return nil, err
	}
	if pm == domain.PaymentMethodBalance {
		return nil, domain.ErrInvalidPaymentMethod
	}

	topups := s.store.Topups()
	topup, err := topups.CreateTopup(ctx, &domain.BalanceTopup{
		UserID:        userID,
		Amount:        amount,
		PaymentMethod: pm,
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("topup service: failed to create topup for user %d: %w", userID, err)
	}

	if pm != domain.PaymentMethodGateway {
		return topup, nil
	}

	session, err := s.gateway.CreatePayment(ctx, domain.PaymentRequest{
		Reference:   topupReference(topup.ID),
		Amount:      amount,
		Description: "Пополнение баланса",
	})
	if err != nil {
		s.metrics.RecordGatewayRequest(false)
		s.logger.Error("failed to create topup payment",
			zap.Int64("topup_id", topup.ID),
			zap.Error(err),
		)
		if _, ferr := topups.FinishTopup(ctx, topup.ID, domain.TopupStatusFailed, "payment session failed"); ferr != nil {
			s.logger.Error("failed to mark topup failed", zap.Int64("topup_id", topup.ID), zap.Error(ferr))
		}
		return nil, domain.ErrPaymentGatewayFailure
	}
	s.metrics.RecordGatewayRequest(true)

	if err := topups.SetTopupPayment(ctx, topup.ID, session.PaymentID, session.RedirectURL); err != nil {
		return nil, fmt.Errorf("topup service: failed to save payment of topup %d: %w", topup.ID, err)
	}
	topup.PaymentID = &session.PaymentID
	topup.PaymentURL = &session.RedirectURL

	return topup, nil
}

// ListUserTopups возвращает пополнения пользователя
func (s *TopupService) ListUserTopups(ctx context.Context, userID int64) ([]*domain.BalanceTopup, error) {
	topups, err := s.store.Topups().ListTopupsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("topup service: failed to list topups of user %d: %w", userID, err)
	}
	return topups, nil
}

// UploadTopupProof сохраняет подтверждение банковского перевода
func (s *TopupService) UploadTopupProof(ctx context.Context, userID, topupID int64, proofURL string) (*domain.BalanceTopup, error) {
	if err := validateProofURL(proofURL); err != nil {
		return nil, err
	}

	topups := s.store.Topups()
	topup, err := topups.GetTopupByID(ctx, topupID)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("topup service: failed to get topup %d: %w", topupID, err)
	}
	if topup.UserID != userID {
		return nil, domain.ErrTopupNotFound
	}
	if topup.PaymentMethod != domain.PaymentMethodBankTransfer {
		return nil, domain.Validation("payment proof is accepted only for bank transfers")
	}

	if err := topups.SetTopupProof(ctx, topupID, proofURL); err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("topup service: failed to save proof of topup %d: %w", topupID, err)
	}
	topup.ProofURL = &proofURL

	return topup, nil
}

// ListTopups возвращает пополнения для администратора, пустой статус означает все
func (s *TopupService) ListTopups(ctx context.Context, status domain.TopupStatus) ([]*domain.BalanceTopup, error) {
	switch status {
	case "", domain.TopupStatusPending, domain.TopupStatusCompleted, domain.TopupStatusFailed:
	default:
		return nil, domain.Validation("unknown topup status")
	}

	topups, err := s.store.Topups().ListTopups(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("topup service: failed to list topups: %w", err)
	}
	return topups, nil
}

// ApproveTopup подтверждает пополнение и зачисляет сумму на баланс
func (s *TopupService) ApproveTopup(ctx context.Context, topupID int64, comment string) (*domain.BalanceTopup, error) {
	var topup *domain.BalanceTopup
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Store) error {
		var credited bool
		var err error
		topup, credited, err = s.credit(ctx, tx, topupID, comment)
		if err != nil {
			return err
		}
		if !credited {
			return domain.ErrTopupNotPending
		}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("topup service: failed to approve topup %d: %w", topupID, err)
	}

	s.announceCredit(topup)

	return topup, nil
}

// RejectTopup отклоняет пополнение
func (s *TopupService) RejectTopup(ctx context.Context, topupID int64, comment string) (*domain.BalanceTopup, error) {
	topups := s.store.Topups()
	topup, err := topups.GetTopupByID(ctx, topupID)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("topup service: failed to get topup %d: %w", topupID, err)
	}

	ok, err := topups.FinishTopup(ctx, topupID, domain.TopupStatusFailed, comment)
	if err != nil {
		return nil, fmt.Errorf("topup service: failed to reject topup %d: %w", topupID, err)
	}
	if !ok {
		return nil, domain.ErrTopupNotPending
	}

	s.metrics.RecordTopupFinished(string(domain.TopupStatusFailed), decimal.Zero)
	topup.Status = domain.TopupStatusFailed
	topup.AdminComment = comment

	return topup, nil
}

// credit переводит пополнение в completed и зачисляет сумму в транзакции tx.
// false означает, что пополнение уже завершено и баланс не менялся.
func (s *TopupService) credit(ctx context.Context, tx domain.Store, topupID int64, comment string) (*domain.BalanceTopup, bool, error) {
	topup, err := tx.Topups().GetTopupByID(ctx, topupID)
	if err != nil {
		return nil, false, err
	}

	ok, err := tx.Topups().FinishTopup(ctx, topupID, domain.TopupStatusCompleted, comment)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return topup, false, nil
	}

	if _, err := tx.Users().CreditBalance(ctx, topup.UserID, topup.Amount); err != nil {
		return nil, false, err
	}

	topup.Status = domain.TopupStatusCompleted
	topup.AdminComment = comment

	return topup, true, nil
}

// applyGatewayResult применяет результат оплаты пополнения из вебхука.
// Событие шлюза записывается в той же транзакции, что и зачисление.
func (s *TopupService) applyGatewayResult(ctx context.Context, topupID int64, ev domain.PaymentEvent, outcome domain.PaymentStatus) (string, error) {
	result := webhookApplied
	var credited *domain.BalanceTopup

	err := s.store.WithinTx(ctx, func(ctx context.Context, tx domain.Store) error {
		inserted, err := tx.PaymentEvents().RecordEvent(ctx, ev)
		if err != nil {
			return err
		}
		if !inserted {
			result = webhookDuplicate
			return nil
		}

		switch outcome {
		case domain.PaymentStatusPaid:
			topup, ok, err := s.credit(ctx, tx, topupID, "Оплачено через Ozon Pay")
			if err != nil {
				return err
			}
			if !ok {
				result = webhookNoop
				return nil
			}
			credited = topup
		case domain.PaymentStatusFailed:
			ok, err := tx.Topups().FinishTopup(ctx, topupID, domain.TopupStatusFailed, "Оплата отклонена Ozon Pay")
			if err != nil {
				return err
			}
			if !ok {
				result = webhookNoop
			}
		default:
			result = webhookIgnored
		}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return "", err
		}
		return "", fmt.Errorf("topup service: failed to apply payment of topup %d: %w", topupID, err)
	}

	if credited != nil {
		s.announceCredit(credited)
	}

	return result, nil
}

func (s *TopupService) announceCredit(topup *domain.BalanceTopup) {
	s.metrics.RecordTopupFinished(string(domain.TopupStatusCompleted), topup.Amount)
	s.notifier.NotifyAsync(topup.UserID, topupCompletedMessage(topup))
	s.logger.Info("balance topped up",
		zap.Int64("topup_id", topup.ID),
		zap.Int64("user_id", topup.UserID),
		zap.String("amount", topup.Amount.String()),
	)
}
