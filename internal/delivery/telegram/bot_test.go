package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestToMessage(t *testing.T) {
	update := tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: 100},
			From: &tgbotapi.User{ID: 7, UserName: "bob", FirstName: "Bob"},
			Text: "/start",
		},
	}

	msg, ok := toMessage(update)
	if !ok {
		t.Fatal("expected message")
	}
	if msg.ChatID != 100 || msg.Text != "/start" {
		t.Errorf("unexpected message: %+v", msg)
	}
	if msg.From == nil || msg.From.ID != 7 || msg.From.Username != "bob" || msg.From.FirstName != "Bob" {
		t.Errorf("unexpected sender: %+v", msg.From)
	}
}

func TestToMessageWithoutSender(t *testing.T) {
	msg, ok := toMessage(tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: -5}}})
	if !ok {
		t.Fatal("expected message")
	}
	if msg.From != nil || msg.Text != "" {
		t.Errorf("unexpected message: %+v", msg)
	}
}

func TestToMessageIgnoresOtherUpdates(t *testing.T) {
	if _, ok := toMessage(tgbotapi.Update{UpdateID: 3}); ok {
		t.Error("updates without a message should be skipped")
	}
}
