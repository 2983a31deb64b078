package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/avc/plantstore/internal/domain"
	"github.com/avc/plantstore/internal/metrics"
	"github.com/avc/plantstore/internal/worker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// syncJobs выполняет задачи сразу в вызывающей горутине
type syncJobs struct {
	mu   sync.Mutex
	full bool
	runs int
}

func (q *syncJobs) Submit(job worker.Job) bool {
	q.mu.Lock()
	if q.full {
		q.mu.Unlock()
		return false
	}
	q.runs++
	q.mu.Unlock()

	job(context.Background())
	return true
}

type sentMessage struct {
	UserID  int64
	Message string
}

// recordingNotifier запоминает уведомления вместо доставки
type recordingNotifier struct {
	mu        sync.Mutex
	sent      []sentMessage
	announced []int64
}

func (n *recordingNotifier) Notify(_ context.Context, userID int64, message string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentMessage{UserID: userID, Message: message})
	return true
}

func (n *recordingNotifier) NotifyAsync(userID int64, message string) {
	n.Notify(context.Background(), userID, message)
}

func (n *recordingNotifier) BroadcastNewProduct(_ context.Context, _ *domain.Product) domain.BroadcastResult {
	return domain.BroadcastResult{}
}

func (n *recordingNotifier) AnnounceProduct(p *domain.Product) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.announced = append(n.announced, p.ID)
}

func (n *recordingNotifier) messages() []sentMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentMessage(nil), n.sent...)
}

// recordingPublisher запоминает опубликованные события
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.OrderEvent
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, ev domain.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) published() []domain.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.OrderEvent(nil), p.events...)
}

// memDedup дедупликатор в памяти
type memDedup struct {
	mu   sync.Mutex
	keys map[string]bool
}

func (d *memDedup) Seen(_ context.Context, key string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.keys[key], nil
}

func (d *memDedup) Remember(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.keys == nil {
		d.keys = map[string]bool{}
	}
	d.keys[key] = true
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

func testMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

// shop собирает сервисы заказов и оплаты над хранилищем в памяти
type shop struct {
	store     *memStore
	notifier  *recordingNotifier
	publisher *recordingPublisher
	jobs      *syncJobs
	dedup     *memDedup
	metrics   *metrics.Metrics
	status    *StatusMachine
	promos    *PromoService
	topups    *TopupService
	payments  *PaymentService
	orders    *OrderService
}

const testWebhookSecret = "webhook-secret"

func newShop(t *testing.T, gateway domain.PaymentGateway, policy domain.TransitionPolicy) *shop {
	t.Helper()

	s := &shop{
		store:     newMemStore(),
		notifier:  &recordingNotifier{},
		publisher: &recordingPublisher{},
		jobs:      &syncJobs{},
		dedup:     &memDedup{},
		metrics:   testMetrics(),
	}
	logger := zap.NewNop()
	store := s.store.view()

	s.status = NewStatusMachine(store, policy, s.notifier, s.publisher, s.jobs, s.metrics, logger)
	s.promos = NewPromoService(store)
	s.topups = NewTopupService(store, gateway, s.notifier, s.metrics, logger)
	s.payments = NewPaymentService(store, gateway, s.status, s.topups, s.dedup, testWebhookSecret, s.metrics, logger)
	s.orders = NewOrderService(store, s.promos, s.payments, s.status, testTariffs(), s.notifier, s.metrics, logger)

	return s
}

func testTariffs() domain.DeliveryTariffs {
	return domain.DeliveryTariffs{
		CourierStandard: dec("300"),
		CourierExpress:  dec("600"),
		PostStandard:    dec("350"),
		PostExpress:     dec("700"),
		FreeFrom:        dec("5000"),
	}
}

// tickingClock возвращает часы, которые сдвигаются на секунду при каждом вызове
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}
