package service

import (
	"context"
	"time"

	"github.com/avc/plantstore/internal/domain"
	"github.com/avc/plantstore/internal/metrics"
	"github.com/avc/plantstore/internal/worker"
	"go.uber.org/zap"
)

const defaultSendTimeout = 5 * time.Second

// JobQueue очередь фоновых задач
type JobQueue interface {
	Submit(job worker.Job) bool
}

// NotificationService реализует domain.Notifier. Ошибки доставки логируются и не возвращаются.
type NotificationService struct {
	store       domain.Store
	sender      domain.MessageSender
	jobs        JobQueue
	delay       time.Duration
	sendTimeout time.Duration
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewNotificationService создает новый NotificationService. sender может быть nil,
// тогда уведомления пропускаются.
func NewNotificationService(
	store domain.Store,
	sender domain.MessageSender,
	jobs JobQueue,
	delay time.Duration,
	sendTimeout time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) *NotificationService {
	if sendTimeout <= 0 {
		sendTimeout = defaultSendTimeout
	}
	return &NotificationService{
		store:       store,
		sender:      sender,
		jobs:        jobs,
		delay:       delay,
		sendTimeout: sendTimeout,
		metrics:     m,
		logger:      logger,
	}
}

// Notify отправляет сообщение пользователю, если у него привязан чат
func (s *NotificationService) Notify(ctx context.Context, userID int64, message string) bool {
	if s.sender == nil {
		s.metrics.RecordNotification("skipped")
		return false
	}

	user, err := s.store.Users().GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Warn("notification skipped: failed to load user",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		s.metrics.RecordNotification("skipped")
		return false
	}

	if user.TelegramChatID == nil {
		s.logger.Debug("notification skipped: no linked chat", zap.Int64("user_id", userID))
		s.metrics.RecordNotification("skipped")
		return false
	}

	return s.send(ctx, *user.TelegramChatID, message, zap.Int64("user_id", userID))
}

// NotifyAsync ставит уведомление в очередь и не ждет доставки
func (s *NotificationService) NotifyAsync(userID int64, message string) {
	ok := s.jobs.Submit(func(ctx context.Context) {
		s.Notify(ctx, userID, message)
	})
	if !ok {
		s.logger.Warn("notification dropped: queue is full", zap.Int64("user_id", userID))
		s.metrics.RecordNotification("dropped")
	}
}

// BroadcastNewProduct последовательно рассылает анонс товара всем пользователям с привязанным чатом.
// Ошибка одного получателя не прерывает рассылку.
func (s *NotificationService) BroadcastNewProduct(ctx context.Context, p *domain.Product) domain.BroadcastResult {
	var res domain.BroadcastResult
	if s.sender == nil {
		return res
	}

	users, err := s.store.Users().ListUsersWithChat(ctx)
	if err != nil {
		s.logger.Error("broadcast aborted: failed to list recipients",
			zap.Int64("product_id", p.ID),
			zap.Error(err),
		)
		return res
	}

	message := newProductMessage(p)
	for i, u := range users {
		if i > 0 && s.delay > 0 {
			timer := time.NewTimer(s.delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				res.Failed += len(users) - i
				return res
			case <-timer.C:
			}
		}

		if s.send(ctx, *u.TelegramChatID, message, zap.Int64("user_id", u.ID)) {
			res.Sent++
		} else {
			res.Failed++
		}
	}

	return res
}

// AnnounceProduct запускает рассылку о новом товаре в пуле воркеров
func (s *NotificationService) AnnounceProduct(p *domain.Product) {
	product := *p
	ok := s.jobs.Submit(func(ctx context.Context) {
		res := s.BroadcastNewProduct(ctx, &product)
		s.logger.Info("new product broadcast finished",
			zap.Int64("product_id", product.ID),
			zap.Int("sent", res.Sent),
			zap.Int("failed", res.Failed),
		)
	})
	if !ok {
		s.logger.Warn("new product broadcast dropped: queue is full", zap.Int64("product_id", p.ID))
	}
}

func (s *NotificationService) send(ctx context.Context, chatID int64, message string, who zap.Field) bool {
	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	if err := s.sender.SendMessage(sendCtx, chatID, message); err != nil {
		s.logger.Warn("failed to deliver notification",
			who,
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		s.metrics.RecordNotification("failed")
		return false
	}

	s.metrics.RecordNotification("sent")
	return true
}
