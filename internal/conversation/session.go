package conversation

import (
	"sync"

	"github.com/LavaJover/shvark-order-intake/internal/domain"
)

type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// Message is one inbound chat message. Text is empty for non-text content.
type Message struct {
	ChatID int64
	From   *User
	Text   string
}

// Session is one run of the order script for a single user. Only one reply
// is awaited at a time.
type Session struct {
	mu     sync.Mutex
	state  State
	chatID int64
	user   User
	draft  domain.CreateOrderInput
}

func newSession(chatID int64, user User) *Session {
	return &Session{
		state:  StateGreeting,
		chatID: chatID,
		user:   user,
		draft: domain.CreateOrderInput{
			TelegramChatID:   chatID,
			TelegramUserID:   user.ID,
			TelegramUsername: user.Username,
			FirstName:        user.FirstName,
			LastName:         user.LastName,
		},
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// start runs the greeting and moves to the first await state.
func (s *Session) start() []string {
	s.state = StateAwaitDevice
	return []string{greetingFor(s.user.FirstName), msgAskDevice}
}

// step consumes the reply awaited in the current state. It returns the
// prompts to send and whether the draft is ready for submission.
func (s *Session) step(text string) (replies []string, submit bool, deviceRetry bool) {
	switch s.state {
	case StateAwaitDevice:
		device, ok := ParseDevice(text)
		if !ok {
			return []string{msgDeviceRetry}, false, true
		}
		s.draft.Device = string(device)
		s.state = StateAwaitCountry
		return []string{msgAskCountry}, false, false

	case StateAwaitCountry:
		s.draft.Country = text
		s.state = StateAwaitEmail
		return []string{msgAskEmail}, false, false

	case StateAwaitEmail:
		s.draft.Email = text
		s.state = StateAwaitName
		return []string{msgAskName}, false, false

	case StateAwaitName:
		s.draft.FullName = text
		s.state = StateAcknowledge
		replies = []string{msgAcknowledge, processFor(s.user.FirstName), msgAskClarity}
		s.state = StateAwaitClarityConfirmation
		return replies, false, false

	case StateAwaitClarityConfirmation:
		s.state = StateAwaitGroupConsent
		return []string{msgAskGroup}, false, false

	case StateAwaitGroupConsent:
		s.draft.ConsentGroupInvite = ParseConsent(text)
		s.state = StateInstructions
		replies = []string{msgInstructions}
		s.state = StateSubmit
		return replies, true, false
	}
	return nil, false, false
}
