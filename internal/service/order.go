package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"razorpay-checkout/internal/client"
	"razorpay-checkout/internal/dto"
	"razorpay-checkout/internal/model"
	"razorpay-checkout/internal/repository"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type OrderService interface {
	// CreateIntent opens a razorpay order and stores the matching pending order.
	CreateIntent(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	ListUserOrders(ctx context.Context, userID string) ([]*dto.UserOrder, error)
}

type orderServiceImpl struct {
	logger      *slog.Logger
	gateway     client.PaymentGateway
	currency    string
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewOrderService(
	logger *slog.Logger,
	gateway client.PaymentGateway,
	currency string,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) OrderService {
	return &orderServiceImpl{
		logger:      logger,
		gateway:     gateway,
		currency:    currency,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (s *orderServiceImpl) CreateIntent(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if req == nil || strings.TrimSpace(req.ProductID) == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}

	// price comes from the client as-is; it is not checked against the catalog
	amount, err := ToMinorUnits(req.Variant.Price)
	if err != nil {
		return nil, err
	}

	orderID := uuid.NewString()
	intent, err := s.gateway.OpenPaymentIntent(ctx, amount, s.currency, orderID, map[string]string{
		"productId": req.ProductID,
		"userId":    userID,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "open payment intent failed", "order_id", orderID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if intent.Amount != 0 && intent.Amount != amount {
		s.logger.WarnContext(ctx, "gateway amount differs from local amount",
			"gateway_order_id", intent.GatewayOrderID,
			"local_amount", amount,
			"gateway_amount", intent.Amount,
		)
	}

	order := &model.Order{
		ID:               orderID,
		UserID:           userID,
		ProductID:        req.ProductID,
		Variant:          req.Variant,
		GatewayOrderID:   intent.GatewayOrderID,
		AmountMinorUnits: amount,
		Currency:         s.currency,
		Status:           model.OrderStatusPending,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		// the remote order exists but has no local record; a webhook for it will be unknown_order
		s.logger.ErrorContext(ctx, "orphaned payment intent",
			"gateway_order_id", intent.GatewayOrderID,
			"order_id", orderID,
			"error", err,
		)
		return nil, fmt.Errorf("%w: store order: %v", ErrInternal, err)
	}

	s.logger.InfoContext(ctx, "order intent created",
		"order_id", order.ID,
		"gateway_order_id", order.GatewayOrderID,
		"amount", amount,
		"currency", s.currency,
	)

	return &dto.CreateOrderResponse{
		OrderID:   order.GatewayOrderID,
		Amount:    order.AmountMinorUnits,
		Currency:  order.Currency,
		DBOrderID: order.ID,
	}, nil
}

func (s *orderServiceImpl) ListUserOrders(ctx context.Context, userID string) ([]*dto.UserOrder, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders of user %s: %w", userID, err)
	}

	productIDs := lo.Uniq(lo.Map(orders, func(o *model.Order, _ int) string { return o.ProductID }))
	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("get products of orders: %w", err)
	}
	productByID := lo.KeyBy(products, func(p *model.Product) string { return p.ID })

	return lo.Map(orders, func(o *model.Order, _ int) *dto.UserOrder {
		userOrder := &dto.UserOrder{
			ID:             o.ID,
			ProductID:      o.ProductID,
			Variant:        o.Variant,
			GatewayOrderID: o.GatewayOrderID,
			Amount:         o.AmountMinorUnits,
			Currency:       o.Currency,
			Status:         string(o.Status),
			CreatedAt:      o.CreatedAt,
			CompletedAt:    o.CompletedAt,
		}
		if product, ok := productByID[o.ProductID]; ok {
			userOrder.ProductName = product.Name
			userOrder.ProductImage = product.ImageURL
		}
		return userOrder
	}), nil
}
