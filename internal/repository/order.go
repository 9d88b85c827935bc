package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"razorpay-checkout/internal/model"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrDuplicateGatewayOrder = errors.New("gateway order id already used")
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Order, error)
	// UpdateIfPending applies the transition with a single conditional UPDATE and returns
	// the updated order from the same transaction. It returns (nil, nil) when no pending order matched.
	UpdateIfPending(ctx context.Context, gatewayOrderID string, transition model.OrderTransition) (*model.Order, error)
}

type orderRepoImpl struct {
	db  *gorm.DB
	now func() time.Time
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db:  db,
		now: time.Now,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	if order.GatewayOrderID == "" {
		return errors.New("gateway order id is empty")
	}

	err := r.db.WithContext(ctx).Create(order).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("create order %s: %w", order.GatewayOrderID, ErrDuplicateGatewayOrder)
	}
	return err
}

func (r *orderRepoImpl) FindByID(ctx context.Context, id string) (*model.Order, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *orderRepoImpl) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*model.Order, error) {
	return r.findOne(ctx, "gateway_order_id = ?", gatewayOrderID)
}

func (r *orderRepoImpl) findOne(ctx context.Context, query string, arg string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where(query, arg).
		First(&order).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) UpdateIfPending(ctx context.Context, gatewayOrderID string, transition model.OrderTransition) (*model.Order, error) {
	if err := transition.Validate(); err != nil {
		return nil, err
	}

	now := r.now()
	updates := map[string]interface{}{
		"status":     transition.Status,
		"updated_at": now,
	}
	if transition.Status == model.OrderStatusCompleted {
		updates["gateway_payment_id"] = transition.GatewayPaymentID
		updates["completed_at"] = now
	}

	var order *model.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Order{}).
			Where("gateway_order_id = ? AND status = ?", gatewayOrderID, model.OrderStatusPending).
			Updates(updates)

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		// read back in the same transaction so a failed read leaves the order pending
		var updated model.Order
		if err := tx.Where("gateway_order_id = ?", gatewayOrderID).First(&updated).Error; err != nil {
			return fmt.Errorf("reload order %s: %w", gatewayOrderID, err)
		}
		order = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}
