package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/LavaJover/shvark-order-intake/internal/domain"
)

type OrderModel struct {
	ID                 string `gorm:"primaryKey;type:text"`
	TelegramChatID     int64  `gorm:"not null"`
	TelegramUserID     int64  `gorm:"not null;index:idx_orders_telegram_user_id"`
	TelegramUsername   *string
	FirstName          *string
	LastName           *string
	Device             domain.DeviceType  `gorm:"type:text;not null"`
	Country            string             `gorm:"not null"`
	Email              string             `gorm:"not null"`
	FullName           string             `gorm:"not null"`
	ConsentGroupInvite bool               `gorm:"not null"`
	Status             domain.OrderStatus `gorm:"type:text;not null;default:new"`
	CreatedAt          time.Time          `gorm:"not null;index:idx_orders_created_at"`
	UpdatedAt          time.Time          `gorm:"not null"`
	Meta               datatypes.JSONMap  `gorm:"type:jsonb"`
}

func (OrderModel) TableName() string {
	return "orders"
}
