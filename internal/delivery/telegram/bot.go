package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/LavaJover/shvark-order-intake/internal/config"
	"github.com/LavaJover/shvark-order-intake/internal/conversation"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, msg conversation.Message)
}

// Bot long-polls the Bot API and feeds incoming messages to a Dispatcher.
type Bot struct {
	api         *tgbotapi.BotAPI
	pollTimeout int
	logger      *slog.Logger
}

func NewBot(cfg config.Telegram, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	api.Debug = cfg.Debug

	logger.Info("authorized on telegram", "username", api.Self.UserName)
	return &Bot{
		api:         api,
		pollTimeout: cfg.PollTimeout,
		logger:      logger,
	}, nil
}

func (b *Bot) Send(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

// Run polls until ctx is cancelled.
func (b *Bot) Run(ctx context.Context, dispatcher Dispatcher) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	b.logger.Info("telegram polling started", "timeout", b.pollTimeout)
	for {
		select {
		case <-ctx.Done():
			b.logger.Info("telegram polling stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			msg, ok := toMessage(update)
			if !ok {
				continue
			}
			dispatcher.Dispatch(ctx, msg)
		}
	}
}

func toMessage(update tgbotapi.Update) (conversation.Message, bool) {
	if update.Message == nil || update.Message.Chat == nil {
		return conversation.Message{}, false
	}

	msg := conversation.Message{
		ChatID: update.Message.Chat.ID,
		Text:   update.Message.Text,
	}
	if from := update.Message.From; from != nil {
		msg.From = &conversation.User{
			ID:        from.ID,
			Username:  from.UserName,
			FirstName: from.FirstName,
			LastName:  from.LastName,
		}
	}
	return msg, true
}
