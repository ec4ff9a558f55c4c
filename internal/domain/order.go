package domain

import "time"

type OrderStatus string

const (
	StatusNew      OrderStatus = "new"
	StatusInReview OrderStatus = "in_review"
	StatusApproved OrderStatus = "approved"
	StatusRejected OrderStatus = "rejected"
)

var OrderStatuses = []OrderStatus{StatusNew, StatusInReview, StatusApproved, StatusRejected}

func (s OrderStatus) Valid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type DeviceType string

const (
	DeviceIPhone DeviceType = "iPhone"
	DeviceIPad   DeviceType = "iPad"
	DeviceMac    DeviceType = "Mac"
)

var DeviceTypes = []DeviceType{DeviceIPhone, DeviceIPad, DeviceMac}

func (d DeviceType) Valid() bool {
	for _, device := range DeviceTypes {
		if d == device {
			return true
		}
	}
	return false
}

type Order struct {
	ID                 string
	TelegramChatID     int64
	TelegramUserID     int64
	TelegramUsername   *string
	FirstName          *string
	LastName           *string
	Device             DeviceType
	Country            string
	Email              string
	FullName           string
	ConsentGroupInvite bool
	Status             OrderStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Meta               map[string]any
}

// CreateOrderRequest is an already validated and normalized order payload.
type CreateOrderRequest struct {
	TelegramChatID     int64
	TelegramUserID     int64
	TelegramUsername   *string
	FirstName          *string
	LastName           *string
	Device             DeviceType
	Country            string
	Email              string
	FullName           string
	ConsentGroupInvite bool
	Meta               map[string]any
}

// UpdateOrderRequest carries a partial patch. Nil fields are left untouched.
type UpdateOrderRequest struct {
	Status *OrderStatus
	Meta   map[string]any
}

func (r UpdateOrderRequest) Empty() bool {
	return r.Status == nil && r.Meta == nil
}
