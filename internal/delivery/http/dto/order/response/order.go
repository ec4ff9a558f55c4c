package response

import (
	"time"

	"github.com/LavaJover/shvark-order-intake/internal/domain"
	orderdto "github.com/LavaJover/shvark-order-intake/internal/usecase/dto/order"
)

type OrderResponse struct {
	ID                 string         `json:"id"`
	TelegramChatID     int64          `json:"telegram_chat_id"`
	TelegramUserID     int64          `json:"telegram_user_id"`
	TelegramUsername   *string        `json:"telegram_username"`
	FirstName          *string        `json:"first_name"`
	LastName           *string        `json:"last_name"`
	Device             string         `json:"device"`
	Country            string         `json:"country"`
	Email              string         `json:"email"`
	FullName           string         `json:"full_name"`
	ConsentGroupInvite bool           `json:"consent_group_invite"`
	Status             string         `json:"status"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	Meta               map[string]any `json:"meta,omitempty"`
}

type StatsResponse struct {
	New      int   `json:"new"`
	InReview int   `json:"in_review"`
	Approved int   `json:"approved"`
	Rejected int   `json:"rejected"`
	Total    int64 `json:"total"`
}

type OrdersPageResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
	Search     string          `json:"search"`
	Stats      StatsResponse   `json:"stats"`
}

type DeleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func FromOrder(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:                 order.ID,
		TelegramChatID:     order.TelegramChatID,
		TelegramUserID:     order.TelegramUserID,
		TelegramUsername:   order.TelegramUsername,
		FirstName:          order.FirstName,
		LastName:           order.LastName,
		Device:             string(order.Device),
		Country:            order.Country,
		Email:              order.Email,
		FullName:           order.FullName,
		ConsentGroupInvite: order.ConsentGroupInvite,
		Status:             string(order.Status),
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
		Meta:               order.Meta,
	}
}

func FromOrdersPage(page *orderdto.OrdersPage) OrdersPageResponse {
	orders := make([]OrderResponse, 0, len(page.Orders))
	for _, order := range page.Orders {
		orders = append(orders, FromOrder(order))
	}
	return OrdersPageResponse{
		Orders:     orders,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
		Search:     page.Search,
		Stats: StatsResponse{
			New:      page.Stats.New,
			InReview: page.Stats.InReview,
			Approved: page.Stats.Approved,
			Rejected: page.Stats.Rejected,
			Total:    page.Stats.Total,
		},
	}
}
