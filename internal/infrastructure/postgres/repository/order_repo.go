package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/LavaJover/shvark-order-intake/internal/domain"
	"github.com/LavaJover/shvark-order-intake/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-order-intake/internal/infrastructure/postgres/models"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

// postgres keeps microseconds; truncating keeps returned records equal to what a later read sees
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	ts := now()
	orderModel := mappers.ToGORMOrder(&domain.Order{
		ID:                 domain.NewOrderID(),
		TelegramChatID:     req.TelegramChatID,
		TelegramUserID:     req.TelegramUserID,
		TelegramUsername:   req.TelegramUsername,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Device:             req.Device,
		Country:            req.Country,
		Email:              req.Email,
		FullName:           req.FullName,
		ConsentGroupInvite: req.ConsentGroupInvite,
		Status:             domain.StatusNew,
		CreatedAt:          ts,
		UpdatedAt:          ts,
		Meta:               req.Meta,
	})

	result := r.DB.WithContext(ctx).Clauses(clause.Returning{}).Create(orderModel)
	if result.Error != nil {
		return nil, fmt.Errorf("insert order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrOrderNotCreated
	}

	return mappers.ToDomainOrder(orderModel), nil
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	if err := r.DB.WithContext(ctx).First(&orderModel, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}

	return mappers.ToDomainOrder(&orderModel), nil
}

func (r *DefaultOrderRepository) GetOrdersByTelegramUserID(ctx context.Context, telegramUserID int64) ([]*domain.Order, error) {
	var orderModels []*models.OrderModel
	if err := r.DB.WithContext(ctx).
		Where("telegram_user_id = ?", telegramUserID).
		Order("created_at DESC").Order("id DESC").
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("get orders by telegram user %d: %w", telegramUserID, err)
	}

	return mappers.ToDomainOrders(orderModels), nil
}

func (r *DefaultOrderRepository) GetAllOrders(ctx context.Context) ([]*domain.Order, error) {
	var orderModels []*models.OrderModel
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC").Order("id DESC").
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("get all orders: %w", err)
	}

	return mappers.ToDomainOrders(orderModels), nil
}

// GetOrdersPaginated returns one page (1-based) of orders, newest first, and the
// number of orders matching search. Count and page are separate queries, so
// under concurrent writes they may briefly disagree.
func (r *DefaultOrderRepository) GetOrdersPaginated(ctx context.Context, page, pageSize int, search string) ([]*domain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if maxPage := math.MaxInt / pageSize; page > maxPage {
		page = maxPage
	}

	query := r.DB.WithContext(ctx).Model(&models.OrderModel{})
	if term := strings.TrimSpace(search); term != "" {
		pattern := likePattern(term)
		query = query.Where("id ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	var orderModels []*models.OrderModel
	offset := (page - 1) * pageSize
	if err := query.
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(pageSize).
		Find(&orderModels).Error; err != nil {
		return nil, 0, fmt.Errorf("find orders: %w", err)
	}

	return mappers.ToDomainOrders(orderModels), total, nil
}

func (r *DefaultOrderRepository) UpdateOrder(ctx context.Context, orderID string, patch domain.UpdateOrderRequest) (*domain.Order, error) {
	updates := map[string]interface{}{
		"updated_at": now(),
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Meta != nil {
		updates["meta"] = datatypes.JSONMap(patch.Meta)
	}

	var orderModel models.OrderModel
	result := r.DB.WithContext(ctx).
		Model(&orderModel).
		Clauses(clause.Returning{}).
		Where("id = ?", orderID).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("update order %s: %w", orderID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return mappers.ToDomainOrder(&orderModel), nil
}

// DeleteOrder hard-deletes the row and reports whether one existed.
func (r *DefaultOrderRepository) DeleteOrder(ctx context.Context, orderID string) (bool, error) {
	result := r.DB.WithContext(ctx).Where("id = ?", orderID).Delete(&models.OrderModel{})
	if result.Error != nil {
		return false, fmt.Errorf("delete order %s: %w", orderID, result.Error)
	}
	return result.RowsAffected > 0, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
