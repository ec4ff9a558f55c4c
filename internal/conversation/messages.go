package conversation

import "fmt"

const (
	msgStartHint       = "Send /start to begin placing an order."
	msgUnidentified    = "Sorry, I couldn't identify you. Please start again."
	msgGreeting        = "Thanks for getting in touch. I'll collect a few details to set up your request."
	msgAskDevice       = "Which device is your request about: iPhone, iPad or Mac?"
	msgDeviceRetry     = "Please specify one of the supported devices: iPhone, iPad, or Mac."
	msgAskCountry      = "Which country are you in?"
	msgAskEmail        = "What email address should we use to reach you?"
	msgAskName         = "Please send your first name and last name."
	msgAcknowledge     = "Thanks, I have everything I need for now."
	msgAskClarity      = "Is everything clear so far, or is there anything else I can help you with?"
	msgAskGroup        = "Would you like to be invited to our customer updates group?"
	msgInstructions    = "Our team will review your request and reply in this chat. You don't need to do anything else in the meantime."
	msgSubmitFailed    = "Sorry, there was an error processing your request. Please send /start to try again."
	msgSubmitSucceeded = "Your request has been submitted successfully! Order ID: %s"
)

func greetingFor(firstName string) string {
	if firstName == "" {
		return msgGreeting
	}
	return fmt.Sprintf("Hi %s! %s", firstName, msgGreeting)
}

func processFor(firstName string) string {
	if firstName == "" {
		return "A team member will pick up your request within 24 hours."
	}
	return fmt.Sprintf("Alright %s, a team member will pick up your request within 24 hours.", firstName)
}

func submittedMessage(orderID string) string {
	return fmt.Sprintf(msgSubmitSucceeded, orderID)
}
