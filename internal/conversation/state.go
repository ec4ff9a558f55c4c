package conversation

import (
	"strings"

	"github.com/LavaJover/shvark-order-intake/internal/domain"
)

type State int

const (
	StateGreeting State = iota
	StateAwaitDevice
	StateAwaitCountry
	StateAwaitEmail
	StateAwaitName
	StateAcknowledge
	StateAwaitClarityConfirmation
	StateAwaitGroupConsent
	StateInstructions
	StateSubmit
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateGreeting:                 "greeting",
	StateAwaitDevice:              "await_device",
	StateAwaitCountry:             "await_country",
	StateAwaitEmail:               "await_email",
	StateAwaitName:                "await_name",
	StateAcknowledge:              "acknowledge",
	StateAwaitClarityConfirmation: "await_clarity_confirmation",
	StateAwaitGroupConsent:        "await_group_consent",
	StateInstructions:             "instructions",
	StateSubmit:                   "submit",
	StateDone:                     "done",
	StateFailed:                   "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the session has ended.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// ParseDevice finds the first supported device keyword in text, checked in
// the order iphone, ipad, mac.
func ParseDevice(text string) (domain.DeviceType, bool) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "iphone"):
		return domain.DeviceIPhone, true
	case strings.Contains(lower, "ipad"):
		return domain.DeviceIPad, true
	case strings.Contains(lower, "mac"):
		return domain.DeviceMac, true
	}
	return "", false
}

var consentWords = []string{"yes", "yeah", "yep", "sure"}

// ParseConsent treats a lone "y" or any reply containing an affirmative word as consent.
func ParseConsent(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "y" {
		return true
	}
	for _, word := range consentWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func isStartCommand(text string) bool {
	text = strings.TrimSpace(text)
	if text == "/start" {
		return true
	}
	return strings.HasPrefix(text, "/start ") || strings.HasPrefix(text, "/start@")
}
