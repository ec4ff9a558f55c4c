package validation

// createOrderSchema is the normalized shape checked before an order reaches the store.
type createOrderSchema struct {
	TelegramChatID     int64          `json:"telegram_chat_id"`
	TelegramUserID     int64          `json:"telegram_user_id" validate:"required"`
	TelegramUsername   string         `json:"telegram_username"`
	FirstName          string         `json:"first_name"`
	LastName           string         `json:"last_name"`
	Device             string         `json:"device" validate:"required,oneof=iPhone iPad Mac"`
	Country            string         `json:"country" validate:"required"`
	Email              string         `json:"email" validate:"required,email"`
	FullName           string         `json:"full_name" validate:"required"`
	ConsentGroupInvite bool           `json:"consent_group_invite"`
	Meta               map[string]any `json:"meta"`
}

type updateOrderSchema struct {
	Status *string        `json:"status" validate:"omitempty,oneof=new in_review approved rejected"`
	Meta   map[string]any `json:"meta"`
}
