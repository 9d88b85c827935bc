package service

import (
	"context"
	"fmt"

	"razorpay-checkout/internal/client"
	"razorpay-checkout/internal/model"
	"razorpay-checkout/internal/repository"
)

const orderCompletedSubject = "Order Completed"

type OrderNotifier interface {
	OrderCompleted(ctx context.Context, order *model.Order) error
}

type orderNotifierImpl struct {
	mailer      client.Mailer
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

func NewOrderNotifier(
	mailer client.Mailer,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
) OrderNotifier {
	return &orderNotifierImpl{
		mailer:      mailer,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

func (n *orderNotifierImpl) OrderCompleted(ctx context.Context, order *model.Order) error {
	user, err := n.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		return fmt.Errorf("get buyer %s: %w", order.UserID, err)
	}

	product, err := n.productRepo.FindByID(ctx, order.ProductID)
	if err != nil {
		return fmt.Errorf("get product %s: %w", order.ProductID, err)
	}

	body := fmt.Sprintf("Your order %s has been successfully placed", product.Name)
	if err := n.mailer.Send(ctx, user.Email, orderCompletedSubject, body); err != nil {
		return fmt.Errorf("send order completed mail: %w", err)
	}

	return nil
}
