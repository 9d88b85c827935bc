package testutil

import (
	"razorpay-checkout/internal/model"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RandomVariant returns a variant priced with two decimal places.
func RandomVariant() model.Variant {
	return model.Variant{
		Type:    gofakeit.RandomString([]string{"SQUARE", "WIDE", "PORTRAIT"}),
		License: gofakeit.RandomString([]string{"personal", "commercial"}),
		Price:   decimal.NewFromFloat(gofakeit.Price(1, 1000)).Round(2),
	}
}

// RandomPendingOrder returns an unsaved pending order with a fresh gateway order id.
func RandomPendingOrder() *model.Order {
	variant := RandomVariant()
	return &model.Order{
		ID:               uuid.NewString(),
		UserID:           uuid.NewString(),
		ProductID:        gofakeit.UUID(),
		Variant:          variant,
		GatewayOrderID:   "order_" + gofakeit.LetterN(14),
		AmountMinorUnits: variant.Price.Shift(2).IntPart(),
		Currency:         "INR",
		Status:           model.OrderStatusPending,
	}
}

func RandomUser() *model.User {
	return &model.User{
		ID:           uuid.NewString(),
		Email:        gofakeit.Email(),
		PasswordHash: "not-a-real-hash",
		Role:         "user",
	}
}

func RandomProduct() *model.Product {
	return &model.Product{
		ID:          gofakeit.UUID(),
		Name:        gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		ImageURL:    gofakeit.URL(),
	}
}
