package telegram

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// botAPI часть клиента Bot API, которой пользуются бот и отправитель
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// longPollTimeout время ожидания обновлений в одном запросе, секунды
const longPollTimeout = 30

// NewAPI создает клиент Bot API. Таймаут HTTP клиента должен превышать время long polling.
func NewAPI(token string, timeout time.Duration) (*tgbotapi.BotAPI, error) {
	client := &http.Client{Timeout: timeout + longPollTimeout*time.Second}

	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}
	return api, nil
}

// Sender реализует domain.MessageSender поверх Bot API
type Sender struct {
	api botAPI
}

// NewSender создает Sender
func NewSender(api botAPI) *Sender {
	return &Sender{api: api}
}

// SendMessage отправляет текст в чат. Отмена контекста прекращает ожидание ответа.
func (s *Sender) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		_, err := s.api.Send(tgbotapi.NewMessage(chatID, text))
		done <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send message to chat %d: %w", chatID, err)
		}
		return nil
	}
}
