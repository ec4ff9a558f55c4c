package mappers

import (
	"gorm.io/datatypes"

	"github.com/LavaJover/shvark-order-intake/internal/domain"
	"github.com/LavaJover/shvark-order-intake/internal/infrastructure/postgres/models"
)

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:                 order.ID,
		TelegramChatID:     order.TelegramChatID,
		TelegramUserID:     order.TelegramUserID,
		TelegramUsername:   order.TelegramUsername,
		FirstName:          order.FirstName,
		LastName:           order.LastName,
		Device:             order.Device,
		Country:            order.Country,
		Email:              order.Email,
		FullName:           order.FullName,
		ConsentGroupInvite: order.ConsentGroupInvite,
		Status:             order.Status,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
		Meta:               toJSONMap(order.Meta),
	}
}

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:                 model.ID,
		TelegramChatID:     model.TelegramChatID,
		TelegramUserID:     model.TelegramUserID,
		TelegramUsername:   model.TelegramUsername,
		FirstName:          model.FirstName,
		LastName:           model.LastName,
		Device:             model.Device,
		Country:            model.Country,
		Email:              model.Email,
		FullName:           model.FullName,
		ConsentGroupInvite: model.ConsentGroupInvite,
		Status:             model.Status,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
		Meta:               map[string]any(model.Meta),
	}
}

func ToDomainOrders(orderModels []*models.OrderModel) []*domain.Order {
	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = ToDomainOrder(orderModel)
	}
	return orders
}

func toJSONMap(m map[string]any) datatypes.JSONMap {
	if m == nil {
		return nil
	}
	return datatypes.JSONMap(m)
}
