package ozonpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avc/plantstore/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const (
	paymentsPath = "/v1/payments"
	currencyRUB  = "RUB"
)

// Config параметры клиента Ozon Pay
type Config struct {
	BaseURL   string
	APIKey    string
	ReturnURL string
	Timeout   time.Duration
	RetryMax  int
	// RetryWaitMin и RetryWaitMax задают паузы между повторами, ноль означает значения библиотеки
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Client реализует domain.PaymentGateway поверх HTTP API Ozon Pay.
// Сетевые ошибки, 429 и 5xx повторяются с экспоненциальной паузой.
type Client struct {
	baseURL    string
	apiKey     string
	returnURL  string
	httpClient *retryablehttp.Client
}

var _ domain.PaymentGateway = (*Client)(nil)

// NewClient создает новый клиент платежного шлюза
func NewClient(cfg Config, logger *zap.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	if cfg.RetryWaitMin > 0 {
		rc.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		rc.RetryWaitMax = cfg.RetryWaitMax
	}
	if cfg.Timeout > 0 {
		rc.HTTPClient.Timeout = cfg.Timeout
	}
	rc.Logger = leveledLogger{logger.Named("ozonpay")}
	// После исчерпания повторов возвращаем последний ответ, чтобы разобрать код ошибки
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		returnURL:  cfg.ReturnURL,
		httpClient: rc,
	}
}

type createPaymentRequest struct {
	Reference   string `json:"reference"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
	ReturnURL   string `json:"returnUrl,omitempty"`
}

type createPaymentResponse struct {
	PaymentID   string `json:"paymentId"`
	RedirectURL string `json:"redirectUrl"`
}

// CreatePayment создает платеж и возвращает ссылку для перехода покупателя.
// Reference передается как ключ идемпотентности, поэтому повтор не создаст второй платеж.
func (c *Client) CreatePayment(ctx context.Context, pr domain.PaymentRequest) (*domain.PaymentSession, error) {
	body, err := json.Marshal(createPaymentRequest{
		Reference:   pr.Reference,
		Amount:      pr.Amount.StringFixed(2),
		Currency:    currencyRUB,
		Description: pr.Description,
		ReturnURL:   c.returnURL,
	})
	if err != nil {
		return nil, fmt.Errorf("ozonpay client: failed to encode request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+paymentsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ozonpay client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", pr.Reference)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ozonpay client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var out createPaymentResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("ozonpay client: failed to decode response: %w", err)
		}
		if out.PaymentID == "" || out.RedirectURL == "" {
			return nil, errors.New("ozonpay client: response without payment id or redirect url")
		}
		return &domain.PaymentSession{PaymentID: out.PaymentID, RedirectURL: out.RedirectURL}, nil

	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("ozonpay client: unexpected status code %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
}

// leveledLogger передает журнал повторов retryablehttp в zap
type leveledLogger struct {
	logger *zap.Logger
}

func fields(kv []interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		out = append(out, zap.Any(key, kv[i+1]))
	}
	return out
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.logger.Error(msg, fields(kv)...) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.logger.Debug(msg, fields(kv)...) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.logger.Debug(msg, fields(kv)...) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.logger.Warn(msg, fields(kv)...) }
