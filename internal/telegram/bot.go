package telegram

import (
	"context"
	"errors"

	"github.com/avc/plantstore/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	msgShareContact   = "Чтобы подтвердить номер телефона, нажмите кнопку «Поделиться номером» ниже."
	msgWelcome        = "Здравствуйте! Это бот магазина растений. Поделитесь номером, чтобы получать уведомления о заказах."
	msgLinkExpired    = "Ссылка устарела. Начните регистрацию на сайте заново."
	msgForeignContact = "Пожалуйста, отправьте свой собственный контакт."
	msgConfirmed      = "Номер подтвержден. Вернитесь на сайт, чтобы завершить регистрацию."
	msgLinked         = "Готово! Теперь уведомления о заказах будут приходить сюда."
	msgMismatch       = "Номер не совпадает с указанным при регистрации. Проверьте номер на сайте."
	msgUnknown        = "Не нашли аккаунт с этим номером. Зарегистрируйтесь на сайте."
	msgFailure        = "Что-то пошло не так. Попробуйте позже."
	buttonShare       = "Поделиться номером"
)

// Bot принимает обновления от Telegram и подтверждает телефоны пользователей.
// Сценарий: /start <токен> из ссылки регистрации, затем контакт пользователя.
type Bot struct {
	api          botAPI
	verification domain.VerificationService
	logger       *zap.Logger
}

// NewBot создает Bot
func NewBot(api botAPI, verification domain.VerificationService, logger *zap.Logger) *Bot {
	return &Bot{
		api:          api,
		verification: verification,
		logger:       logger,
	}
}

// Run читает обновления до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = longPollTimeout
	updates := b.api.GetUpdatesChan(cfg)

	b.logger.Info("telegram bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("telegram bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handle(ctx, update)
		}
	}
}

func (b *Bot) handle(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}

	switch {
	case msg.Contact != nil:
		b.handleContact(ctx, msg)
	case msg.IsCommand() && msg.Command() == "start":
		b.handleStart(ctx, msg)
	default:
		b.reply(msg.Chat.ID, msgShareContact, shareKeyboard())
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	token := msg.CommandArguments()
	if token == "" {
		b.reply(chatID, msgWelcome, shareKeyboard())
		return
	}

	if _, err := b.verification.AttachChat(ctx, token, chatID); err != nil {
		if errors.Is(err, domain.ErrRegistrationNotFound) {
			b.reply(chatID, msgLinkExpired, nil)
			return
		}
		b.logger.Error("failed to attach chat", zap.Int64("chat_id", chatID), zap.Error(err))
		b.reply(chatID, msgFailure, nil)
		return
	}

	b.reply(chatID, msgShareContact, shareKeyboard())
}

func (b *Bot) handleContact(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if msg.From == nil || msg.Contact.UserID != msg.From.ID {
		b.reply(chatID, msgForeignContact, shareKeyboard())
		return
	}

	res, err := b.verification.ConfirmContact(ctx, chatID, msg.Contact.PhoneNumber)
	if err != nil {
		b.logger.Error("failed to confirm contact", zap.Int64("chat_id", chatID), zap.Error(err))
		b.reply(chatID, msgFailure, nil)
		return
	}

	b.logger.Info("contact processed", zap.Int64("chat_id", chatID), zap.String("result", string(res)))

	switch res {
	case domain.ContactRegistrationConfirmed:
		b.reply(chatID, msgConfirmed, tgbotapi.NewRemoveKeyboard(false))
	case domain.ContactChatLinked:
		b.reply(chatID, msgLinked, tgbotapi.NewRemoveKeyboard(false))
	case domain.ContactMismatch:
		b.reply(chatID, msgMismatch, nil)
	default:
		b.reply(chatID, msgUnknown, tgbotapi.NewRemoveKeyboard(false))
	}
}

func shareKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonContact(buttonShare)))
	kb.OneTimeKeyboard = true
	kb.ResizeKeyboard = true
	return kb
}

// reply отправляет ответ. Ошибки отправки только логируются.
func (b *Bot) reply(chatID int64, text string, markup any) {
	out := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		out.ReplyMarkup = markup
	}
	if _, err := b.api.Send(out); err != nil {
		b.logger.Warn("failed to send bot reply", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
