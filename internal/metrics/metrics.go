package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Metrics содержит метрики магазина. Методы Record* безопасно вызывать на nil.
type Metrics struct {
	// Заказы
	OrdersCreatedTotal       *prometheus.CounterVec
	OrdersCreatedAmountTotal *prometheus.CounterVec
	OrderTransitionsTotal    *prometheus.CounterVec
	StockReductionsTotal     prometheus.Counter
	PromoUsesTotal           *prometheus.CounterVec

	// Платежи
	PaymentWebhooksTotal  *prometheus.CounterVec
	GatewayRequestsTotal  *prometheus.CounterVec
	BalanceTopupsTotal    *prometheus.CounterVec
	BalanceToppedUpAmount prometheus.Counter

	// Уведомления
	NotificationsTotal *prometheus.CounterVec

	// Обслуживание
	SweptTotal *prometheus.CounterVec

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		OrdersCreatedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantstore_orders_created_total",
				Help: "Количество оформленных заказов по способу оплаты",
			},
			[]string{"payment_method"},
		),

		OrdersCreatedAmountTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantstore_orders_created_amount_total",
				Help: "Сумма оформленных заказов по способу оплаты",
			},
			[]string{"payment_method"},
		),

		OrderTransitionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantstore_order_transitions_total",
				Help: "Количество смен статуса заказа",
			},
			[]string{"from", "to", "forward"},
		),

		StockReductionsTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "plantstore_stock_reductions_total",
				Help: "Количество списаний остатков по подтвержденным заказам",
			},
		),

		PromoUsesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantstore_promo_uses_total",
				Help: "Учтенные применения промокодов",
			},
			[]string{"result"},
		),

		PaymentWebhooksTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantstore_payment_webhooks_total",
				Help: "Входящие вебхуки платежного шлюза по результату обработки",
			},
			[]string{"result"},
		),

		GatewayRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantstore_gateway_requests_total",
				Help: "Запросы создания платежа в шлюзе",
			},
			[]string{"result"},
		),

		BalanceTopupsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantstore_balance_topups_total",
				Help: "Завершенные пополнения баланса по статусу",
			},
			[]string{"status"},
		),

		BalanceToppedUpAmount: f.NewCounter(
			prometheus.CounterOpts{
				Name: "plantstore_balance_topped_up_amount_total",
				Help: "Сумма зачисленных пополнений баланса",
			},
		),

		NotificationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantstore_notifications_total",
				Help: "Уведомления пользователям по результату доставки",
			},
			[]string{"result"},
		),

		SweptTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantstore_swept_total",
				Help: "Записи, удаленные или отмененные при обслуживании",
			},
			[]string{"kind"},
		),

		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantstore_http_requests_total",
				Help: "HTTP запросы по маршруту и коду ответа",
			},
			[]string{"method", "route", "status"},
		),

		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "plantstore_http_request_duration_seconds",
				Help:    "Время обработки HTTP запроса в секундах",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms, 10ms, 20ms...
			},
			[]string{"method", "route"},
		),
	}
}

func amount(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// RecordOrderCreated записывает оформленный заказ
func (m *Metrics) RecordOrderCreated(paymentMethod string, total decimal.Decimal) {
	if m == nil {
		return
	}
	m.OrdersCreatedTotal.WithLabelValues(paymentMethod).Inc()
	m.OrdersCreatedAmountTotal.WithLabelValues(paymentMethod).Add(amount(total))
}

// RecordTransition записывает смену статуса заказа
func (m *Metrics) RecordTransition(from, to string, forward bool) {
	if m == nil {
		return
	}
	m.OrderTransitionsTotal.WithLabelValues(from, to, strconv.FormatBool(forward)).Inc()
}

// RecordStockReduced записывает списание остатков по заказу
func (m *Metrics) RecordStockReduced() {
	if m == nil {
		return
	}
	m.StockReductionsTotal.Inc()
}

// RecordPromoUse записывает учет промокода: applied или exhausted
func (m *Metrics) RecordPromoUse(result string) {
	if m == nil {
		return
	}
	m.PromoUsesTotal.WithLabelValues(result).Inc()
}

// RecordWebhook записывает результат обработки вебхука
func (m *Metrics) RecordWebhook(result string) {
	if m == nil {
		return
	}
	m.PaymentWebhooksTotal.WithLabelValues(result).Inc()
}

// RecordGatewayRequest записывает результат создания платежа в шлюзе
func (m *Metrics) RecordGatewayRequest(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.GatewayRequestsTotal.WithLabelValues(result).Inc()
}

// RecordTopupFinished записывает завершенное пополнение
func (m *Metrics) RecordTopupFinished(status string, credited decimal.Decimal) {
	if m == nil {
		return
	}
	m.BalanceTopupsTotal.WithLabelValues(status).Inc()
	if credited.IsPositive() {
		m.BalanceToppedUpAmount.Add(amount(credited))
	}
}

// RecordNotification записывает результат доставки уведомления: sent, failed, skipped, dropped
func (m *Metrics) RecordNotification(result string) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(result).Inc()
}

// RecordSwept записывает количество обработанных при обслуживании записей
func (m *Metrics) RecordSwept(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SweptTotal.WithLabelValues(kind).Add(float64(n))
}

// RecordHTTPRequest записывает обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
